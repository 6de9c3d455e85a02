package mocks

import "github.com/stretchr/testify/mock"

// ResultDispatcher is a mock type for the contracts.ResultDispatcher interface
type ResultDispatcher struct {
	mock.Mock
}

func (_m *ResultDispatcher) Subscribe(canonicalSheetId string, canonicalColumnId string, formula string, webhookUrl string) {
	_m.Called(canonicalSheetId, canonicalColumnId, formula, webhookUrl)
}

func (_m *ResultDispatcher) Notify(canonicalSheetId string, canonicalColumnId string) {
	_m.Called(canonicalSheetId, canonicalColumnId)
}

func (_m *ResultDispatcher) Start() {
	_m.Called()
}

func (_m *ResultDispatcher) Close() {
	_m.Called()
}

// NewResultDispatcher creates a new instance of ResultDispatcher. It also
// registers a testing interface on the mock and a cleanup function to assert
// the mocks expectations.
func NewResultDispatcher(t TestingT) *ResultDispatcher {
	m := &ResultDispatcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
