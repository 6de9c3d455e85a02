package mocks

import "github.com/stretchr/testify/mock"

// TestingT is the constructor contract shared by all mocks in this package.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}
