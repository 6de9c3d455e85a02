package mocks

import (
	"columnCalc/contracts"

	"github.com/stretchr/testify/mock"
)

// Aggregator is a mock type for the contracts.Aggregator interface
type Aggregator struct {
	mock.Mock
}

func (_m *Aggregator) Aggregate(function contracts.AggregateFunction, columnName string, values []*string) (float64, error) {
	ret := _m.Called(function, columnName, values)

	return ret.Get(0).(float64), ret.Error(1)
}

// NewAggregator creates a new instance of Aggregator. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewAggregator(t TestingT) *Aggregator {
	m := &Aggregator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
