package valdef

import (
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// token is a value token of raw property text. A value token is a maximal
// run of CSS tokens without whitespace at parenthesis depth 0, thus
// "rgba(1, 2, 3, 0.5)" or a quoted string are single tokens. Commas and
// slashes at depth 0 are tokens of their own.
type token struct {
	text       string
	start, end int // byte offsets into the raw text
}

// tokenize splits raw property text into value tokens.
func tokenize(text string) []token {
	lexer := css.NewLexer(parse.NewInputString(text))
	var toks []token
	offset, depth, start := 0, 0, -1
	flush := func(end int) {
		if start >= 0 {
			toks = append(toks, token{text: text[start:end], start: start, end: end})
			start = -1
		}
	}
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		pos := offset
		offset += len(data)
		if offset > len(text) {
			offset = len(text)
		}
		switch {
		case depth == 0 && (tt == css.WhitespaceToken || tt == css.CommentToken):
			flush(pos)
		case depth == 0 && (tt == css.CommaToken || tt == css.DelimToken && string(data) == "/"):
			flush(pos)
			toks = append(toks, token{text: text[pos:offset], start: pos, end: offset})
		default:
			if start < 0 {
				start = pos
			}
			switch tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				if depth > 0 {
					depth--
				}
			}
		}
	}
	flush(offset)
	return toks
}
