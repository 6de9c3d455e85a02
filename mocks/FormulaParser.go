package mocks

import (
	"columnCalc/contracts"

	"github.com/stretchr/testify/mock"
)

// FormulaParser is a mock type for the contracts.FormulaParser interface
type FormulaParser struct {
	mock.Mock
}

func (_m *FormulaParser) Parse(formula string) (*contracts.ParsedFormula, error) {
	ret := _m.Called(formula)

	var r0 *contracts.ParsedFormula
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.ParsedFormula)
	}

	return r0, ret.Error(1)
}

// NewFormulaParser creates a new instance of FormulaParser. It also registers
// a testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewFormulaParser(t TestingT) *FormulaParser {
	m := &FormulaParser{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
