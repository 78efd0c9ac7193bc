package parser

import "fmt"

// SyntaxError is raised at the exact token position where the parser
// could not continue.
type SyntaxError struct {
	Line    int32
	Column  int
	Message string
}

// CreateSyntaxError builds a SyntaxError at the given position.
func CreateSyntaxError(line int32, column int, message string) SyntaxError {
	return SyntaxError{
		Line:    line,
		Column:  column,
		Message: message,
	}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("💥 syntax error: line:%d, column:%d - %s", e.Line, e.Column, e.Message)
}
