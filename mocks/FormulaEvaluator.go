package mocks

import (
	"columnCalc/contracts"

	"github.com/stretchr/testify/mock"
)

// FormulaEvaluator is a mock type for the contracts.FormulaEvaluator interface
type FormulaEvaluator struct {
	mock.Mock
}

func (_m *FormulaEvaluator) Evaluate(formula string, getValues contracts.ColumnValuesGetter) (*contracts.Evaluation, error) {
	ret := _m.Called(formula, getValues)

	var r0 *contracts.Evaluation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.Evaluation)
	}

	return r0, ret.Error(1)
}

// NewFormulaEvaluator creates a new instance of FormulaEvaluator. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewFormulaEvaluator(t TestingT) *FormulaEvaluator {
	m := &FormulaEvaluator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
