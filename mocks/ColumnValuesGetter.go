package mocks

import "github.com/stretchr/testify/mock"

// ColumnValuesGetter is a mock type for the contracts.ColumnValuesGetter
// function type
type ColumnValuesGetter struct {
	mock.Mock
}

func (_m *ColumnValuesGetter) Execute(columnId string) ([]*string, error) {
	ret := _m.Called(columnId)

	var r0 []*string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*string)
	}

	return r0, ret.Error(1)
}

// NewColumnValuesGetter creates a new instance of ColumnValuesGetter. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewColumnValuesGetter(t TestingT) *ColumnValuesGetter {
	m := &ColumnValuesGetter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
