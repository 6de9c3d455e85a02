package main

import (
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
	"os"
	"testing"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	serviceContainer, err := BuildServiceContainer(f.Name())

	assert.NoError(t, err)

	// check database
	assert.NotNil(t, serviceContainer.Database)
	assert.IsType(t, &bbolt.DB{}, serviceContainer.Database)

	// check formula parser
	assert.NotNil(t, serviceContainer.FormulaParser)
	assert.IsType(t, &FormulaParser{}, serviceContainer.FormulaParser)

	// check aggregator
	assert.NotNil(t, serviceContainer.ColumnAggregator)
	assert.IsType(t, &ColumnAggregator{}, serviceContainer.ColumnAggregator)

	// check result dispatcher
	assert.NotNil(t, serviceContainer.ResultDispatcher)
	assert.IsType(t, &ResultWebhookDispatcher{}, serviceContainer.ResultDispatcher)

	// check sheet repository
	assert.NotNil(t, serviceContainer.SheetRepository)
	assert.IsType(t, &SheetRepository{}, serviceContainer.SheetRepository)

	sheetRepository := serviceContainer.SheetRepository.(*SheetRepository)
	assert.Equal(t, serviceContainer.Database, sheetRepository.db)
	assert.IsType(t, &ColumnBinarySerializer{}, sheetRepository.serializer)

	evaluator := sheetRepository.evaluator.(*FormulaEvaluator)
	assert.Equal(t, serviceContainer.FormulaParser, evaluator.parser)
	assert.Equal(t, serviceContainer.ColumnAggregator, evaluator.aggregator)

	// check api controller
	assert.NotNil(t, serviceContainer.ApiController)
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)

	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.SheetRepository, apiController.SheetRepository)
	assert.Equal(t, serviceContainer.FormulaParser, apiController.FormulaParser)
	assert.Equal(t, serviceContainer.ResultDispatcher, apiController.ResultDispatcher)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)

	// check routes
	routes := serviceContainer.Router.Routes()
	assert.NotNil(t, routes)
	// 5 api routes + health check
	assert.GreaterOrEqual(t, len(routes), 6)

	assert.NoError(t, serviceContainer.Database.Close())
}

func TestBuildServiceContainer_BadDatabasePath(t *testing.T) {
	_, err := BuildServiceContainer("/nonexistent-dir/db.db")

	assert.Error(t, err)
}
