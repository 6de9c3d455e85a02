package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	ParseFormulaAction(c *gin.Context)
	SetColumnAction(c *gin.Context)
	GetColumnAction(c *gin.Context)
	EvaluateAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
