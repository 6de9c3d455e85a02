package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// ApiController is a mock type for the contracts.ApiController interface
type ApiController struct {
	mock.Mock
}

func (_m *ApiController) ParseFormulaAction(c *gin.Context) {
	_m.Called(c)
}

func (_m *ApiController) SetColumnAction(c *gin.Context) {
	_m.Called(c)
}

func (_m *ApiController) GetColumnAction(c *gin.Context) {
	_m.Called(c)
}

func (_m *ApiController) EvaluateAction(c *gin.Context) {
	_m.Called(c)
}

func (_m *ApiController) SubscribeAction(c *gin.Context) {
	_m.Called(c)
}

// NewApiController creates a new instance of ApiController. It also registers
// a testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewApiController(t TestingT) *ApiController {
	m := &ApiController{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
