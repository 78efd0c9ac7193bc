package main

import (
	"strconv"

	"covenant/value"
)

// parseInputValue turns one CLI-supplied argument into a runtime
// Value: an unsigned integer if it parses as one, a string otherwise.
// There is no CLI syntax for list-valued inputs — lists only ever
// arrive via a contract's own data table.
func parseInputValue(arg string) value.Value {
	if n, err := strconv.ParseUint(arg, 10, 64); err == nil {
		return value.Numeric(n)
	}
	return value.StringLike(arg)
}

func parseInputValues(args []string) []value.Value {
	values := make([]value.Value, len(args))
	for i, arg := range args {
		values[i] = parseInputValue(arg)
	}
	return values
}
