package main

import (
	"columnCalc/contracts"
	"fmt"
	"strings"
	"unicode/utf8"
)

const FormulaPrefix = "="

// FormulaParser splits a formula of the shape `=FUNC(arg)` into an
// uppercased function name and a raw argument string. Only the first `(`
// and the final `)` act as delimiters; nested parentheses stay part of the
// argument text and the argument grammar is the caller's concern.
type FormulaParser struct {
}

func NewFormulaParser() *FormulaParser {
	return &FormulaParser{}
}

func (p *FormulaParser) Parse(formula string) (*contracts.ParsedFormula, error) {
	if !utf8.ValidString(formula) {
		return nil, fmt.Errorf("formula: %w", contracts.InvalidEncodingError)
	}

	trimmed := strings.TrimSpace(formula)
	if !strings.HasPrefix(trimmed, FormulaPrefix) {
		return nil, contracts.MissingEqualsError
	}

	body := strings.TrimSpace(strings.TrimPrefix(trimmed, FormulaPrefix))

	openIndex := strings.Index(body, "(")
	if openIndex < 0 {
		return nil, contracts.MissingOpenParenError
	}

	function := strings.ToUpper(strings.TrimSpace(body[:openIndex]))

	if !strings.HasSuffix(body, ")") {
		return nil, contracts.MissingCloseParenError
	}

	argument := strings.TrimSpace(body[openIndex+1 : len(body)-1])

	return &contracts.ParsedFormula{Function: function, Argument: argument}, nil
}
