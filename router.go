package main

import (
	"columnCalc/contracts"
	"github.com/gin-gonic/gin"
	"net/http"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	// parse lives outside the sheet group: its input is a bare formula,
	// not sheet state
	router.POST("/parse", controller.ParseFormulaAction)

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/:sheet_id/:column_id/"+subscribePath, controller.SubscribeAction)

	apiRouterGroup.POST("/:sheet_id", controller.EvaluateAction)
	apiRouterGroup.POST("/:sheet_id/:column_id", controller.SetColumnAction)
	apiRouterGroup.GET("/:sheet_id/:column_id", controller.GetColumnAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
