package value

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parser is a parse function for a single value token, e.g. "12px" or
// "rgba(0,0,0,0.5)". It reports false if the token is not acceptable.
type Parser func(token string) (Value, bool)

// ParseNumber parses a plain number.
func ParseNumber(token string) (Value, bool) {
	n, rest, ok := splitNumber(token)
	if !ok || rest != "" {
		return Value{}, false
	}
	return Num(n), true
}

// ParseInteger parses a number without fractional part.
func ParseInteger(token string) (Value, bool) {
	i, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return Value{}, false
	}
	return Num(float64(i)), true
}

// ParseLength parses an absolute or device relative length. A unitless
// zero is accepted as 0px.
func ParseLength(token string) (Value, bool) {
	n, suffix, ok := splitNumber(token)
	if !ok {
		return Value{}, false
	}
	if suffix == "" {
		if n == 0 {
			return Dim(0, PX), true
		}
		return Value{}, false
	}
	u, ok := UnitFromSuffix(suffix)
	if !ok || u == Percent || u == NoUnit {
		return Value{}, false
	}
	return Dim(n, u), true
}

// ParsePercentage parses a percentage, e.g. "50%".
func ParsePercentage(token string) (Value, bool) {
	n, suffix, ok := splitNumber(token)
	if !ok || suffix != "%" {
		return Value{}, false
	}
	return Dim(n, Percent), true
}

// ParseLengthPercentage accepts lengths and percentages.
func ParseLengthPercentage(token string) (Value, bool) {
	if v, ok := ParseLength(token); ok {
		return v, true
	}
	return ParsePercentage(token)
}

// ParseString parses a quoted string.
func ParseString(token string) (Value, bool) {
	s, ok := unquote(token)
	if !ok {
		return Value{}, false
	}
	return Str(s), true
}

// ParseURL parses url(…), with or without quotes around the location.
func ParseURL(token string) (Value, bool) {
	if len(token) < 5 || !strings.EqualFold(token[:4], "url(") || token[len(token)-1] != ')' {
		return Value{}, false
	}
	inner := strings.TrimSpace(token[4 : len(token)-1])
	if s, ok := unquote(inner); ok {
		return Str(s), true
	}
	if inner == "" || strings.ContainsAny(inner, "\"' ") {
		return Value{}, false
	}
	return Str(inner), true
}

// ParseIdent parses a CSS identifier into a string value.
func ParseIdent(token string) (Value, bool) {
	if !isIdent(token) {
		return Value{}, false
	}
	return Str(token), true
}

// ParseFamilyName parses a font family name, either quoted or as an identifier.
func ParseFamilyName(token string) (Value, bool) {
	if v, ok := ParseString(token); ok {
		return v, true
	}
	return ParseIdent(token)
}

// ParseColor parses hex colors, rgb()/rgba() functions, "transparent"
// and the CSS named colors.
func ParseColor(token string) (Value, bool) {
	c, ok := parseColor(token)
	if !ok {
		tracer().Debugf("not a color: %q", token)
		return Value{}, false
	}
	return Col(c), true
}

func parseColor(token string) (Color, bool) {
	if token == "" {
		return 0, false
	}
	if token[0] == '#' {
		return parseHexColor(token[1:])
	}
	lower := strings.ToLower(token)
	if lower == "transparent" {
		return Transparent, true
	}
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunction(lower)
	}
	if c, ok := colornames.Map[lower]; ok {
		return FromColor(c), true
	}
	return 0, false
}

func parseHexColor(hex string) (Color, bool) {
	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return 0, false
		}
		digits[i] = d
	}
	switch len(hex) {
	case 3, 4:
		a := uint8(0xff)
		if len(hex) == 4 {
			a = digits[3] * 17
		}
		return ARGB(a, digits[0]*17, digits[1]*17, digits[2]*17), true
	case 6, 8:
		a := uint8(0xff)
		if len(hex) == 8 {
			a = digits[6]<<4 | digits[7]
		}
		return ARGB(a, digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]), true
	}
	return 0, false
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// parseRGBFunction parses rgb(r,g,b) and rgba(r,g,b,a). Components may be
// separated by commas or whitespace.
func parseRGBFunction(fn string) (Color, bool) {
	open := strings.IndexByte(fn, '(')
	if open < 0 || fn[len(fn)-1] != ')' {
		return 0, false
	}
	args := strings.FieldsFunc(fn[open+1:len(fn)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return 0, false
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		c, ok := colorComponent(args[i])
		if !ok {
			return 0, false
		}
		rgb[i] = c
	}
	a := uint8(0xff)
	if len(args) == 4 {
		n, suffix, ok := splitNumber(args[3])
		if !ok {
			return 0, false
		}
		if suffix == "%" {
			n /= 100
		} else if suffix != "" {
			return 0, false
		}
		a = uint8(clamp(n, 0, 1)*255 + 0.5)
	}
	return ARGB(a, rgb[0], rgb[1], rgb[2]), true
}

func colorComponent(s string) (uint8, bool) {
	n, suffix, ok := splitNumber(s)
	if !ok {
		return 0, false
	}
	switch suffix {
	case "%":
		return uint8(clamp(n, 0, 100)*255/100 + 0.5), true
	case "":
		return uint8(clamp(n, 0, 255) + 0.5), true
	}
	return 0, false
}

func clamp(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// splitNumber splits a token into a leading number and a trailing suffix,
// e.g. "-1.5px" => (-1.5, "px").
func splitNumber(token string) (float64, string, bool) {
	i := 0
	if i < len(token) && (token[i] == '+' || token[i] == '-') {
		i++
	}
	digits := 0
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
		digits++
	}
	if i < len(token) && token[i] == '.' {
		i++
		for i < len(token) && token[i] >= '0' && token[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, "", false
	}
	n, err := strconv.ParseFloat(token[:i], 64)
	if err != nil {
		return 0, "", false
	}
	return n, token[i:], true
}

func unquote(token string) (string, bool) {
	if len(token) < 2 {
		return "", false
	}
	q := token[0]
	if (q != '"' && q != '\'') || token[len(token)-1] != q {
		return "", false
	}
	inner := token[1 : len(token)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner, true
	}
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String(), true
}

func isIdent(s string) bool {
	if s == "" || s == "-" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '-', c >= 0x80:
		case c >= '0' && c <= '9':
			if i == 0 || (i == 1 && s[0] == '-') {
				return false
			}
		default:
			return false
		}
	}
	return true
}
