package main

import (
	"columnCalc/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database         *bbolt.DB
	ApiController    contracts.ApiController
	SheetRepository  contracts.SheetRepository
	FormulaParser    contracts.FormulaParser
	ColumnAggregator contracts.Aggregator
	ResultDispatcher contracts.ResultDispatcher
	Router           *gin.Engine
}

func BuildServiceContainer(configDbPath string) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(configDbPath, 0600, nil)
	serializer := NewColumnBinarySerializer()

	container.FormulaParser = NewFormulaParser()
	container.ColumnAggregator = NewColumnAggregator()
	evaluator := NewFormulaEvaluator(container.FormulaParser, container.ColumnAggregator)

	container.SheetRepository = NewSheetRepository(container.Database, serializer, evaluator)
	container.ResultDispatcher = NewResultWebhookDispatcher(container.SheetRepository.Evaluate)
	container.ApiController = NewApiController(container.SheetRepository, container.FormulaParser, container.ResultDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
