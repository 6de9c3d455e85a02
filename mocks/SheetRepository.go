package mocks

import (
	"columnCalc/contracts"

	"github.com/stretchr/testify/mock"
)

// SheetRepository is a mock type for the contracts.SheetRepository interface
type SheetRepository struct {
	mock.Mock
}

func (_m *SheetRepository) SetColumn(sheetId string, columnId string, values []*string) (*contracts.Column, error) {
	ret := _m.Called(sheetId, columnId, values)

	var r0 *contracts.Column
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.Column)
	}

	return r0, ret.Error(1)
}

func (_m *SheetRepository) GetColumn(sheetId string, columnId string) (*contracts.Column, error) {
	ret := _m.Called(sheetId, columnId)

	var r0 *contracts.Column
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.Column)
	}

	return r0, ret.Error(1)
}

func (_m *SheetRepository) Evaluate(sheetId string, formula string) (*contracts.Evaluation, error) {
	ret := _m.Called(sheetId, formula)

	var r0 *contracts.Evaluation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*contracts.Evaluation)
	}

	return r0, ret.Error(1)
}

// NewSheetRepository creates a new instance of SheetRepository. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewSheetRepository(t TestingT) *SheetRepository {
	m := &SheetRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
