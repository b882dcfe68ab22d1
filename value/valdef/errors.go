package valdef

import "fmt"

// SyntaxError is returned for grammars which cannot be compiled.
type SyntaxError struct {
	Grammar string // the grammar text
	Pos     int    // byte offset of the error
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("valdef: %s at position %d in %q", e.Msg, e.Pos, e.Grammar)
}
