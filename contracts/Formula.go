package contracts

import "errors"

// ParsedFormula is the two-field record produced by the formula parser:
// the uppercased function name and the raw argument text between the
// parentheses. Immutable once produced.
type ParsedFormula struct {
	Function string `json:"function"`
	Argument string `json:"argument"`
}

type FormulaParser interface {
	Parse(formula string) (*ParsedFormula, error)
}

var MissingEqualsError = errors.New("formula must start with '='")

var MissingOpenParenError = errors.New("invalid formula syntax: expected function(arg)")

var MissingCloseParenError = errors.New("formula missing closing parenthesis")

var InvalidEncodingError = errors.New("invalid text encoding")
