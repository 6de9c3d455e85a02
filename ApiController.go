package main

import (
	"columnCalc/contracts"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
)

type ApiController struct {
	SheetRepository  contracts.SheetRepository
	FormulaParser    contracts.FormulaParser
	ResultDispatcher contracts.ResultDispatcher
}

type ColumnEndpointParams struct {
	SheetId  string `uri:"sheet_id" binding:"required"`
	ColumnId string `uri:"column_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type ParseFormulaRequest struct {
	Formula string `json:"formula" binding:"required"`
}

type EvaluateRequest struct {
	Formula string `json:"formula" binding:"required"`
}

type SetColumnRequest struct {
	Values []*string `json:"values" binding:"required"`
}

type SubscribeRequest struct {
	Formula    string `json:"formula" binding:"required"`
	WebhookUrl string `json:"webhook_url"`
}

func NewApiController(
	sheetRepository contracts.SheetRepository,
	formulaParser contracts.FormulaParser,
	resultDispatcher contracts.ResultDispatcher,
) *ApiController {
	return &ApiController{
		SheetRepository:  sheetRepository,
		FormulaParser:    formulaParser,
		ResultDispatcher: resultDispatcher,
	}
}

func (api *ApiController) ParseFormulaAction(c *gin.Context) {
	request := ParseFormulaRequest{}
	var response *contracts.ParsedFormula

	err := c.ShouldBindJSON(&request)

	if err == nil {
		response, err = api.FormulaParser.Parse(request.Formula)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SetColumnAction(c *gin.Context) {
	params := ColumnEndpointParams{}
	request := SetColumnRequest{}
	var response *contracts.Column

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		response, err = api.SheetRepository.SetColumn(params.SheetId, params.ColumnId, request.Values)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.ResultDispatcher.Notify(canonicalKey(params.SheetId), canonicalKey(params.ColumnId))
	c.JSON(http.StatusCreated, response)
}

func (api *ApiController) GetColumnAction(c *gin.Context) {
	params := ColumnEndpointParams{}
	var response *contracts.Column

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetColumn(params.SheetId, params.ColumnId)
	}

	if errors.Is(err, contracts.ColumnNotFoundError) || errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) EvaluateAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := EvaluateRequest{}
	var evaluation *contracts.Evaluation

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		evaluation, err = api.SheetRepository.Evaluate(params.SheetId, request.Formula)
	}

	if errors.Is(err, contracts.SheetNotFoundError) || errors.Is(err, contracts.ColumnNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		if evaluation == nil {
			evaluation = &contracts.Evaluation{Formula: request.Formula, Error: err.Error()}
		}
		c.JSON(http.StatusUnprocessableEntity, evaluation)
	} else {
		c.JSON(http.StatusOK, evaluation)
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := ColumnEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.ResultDispatcher.Subscribe(canonicalKey(params.SheetId), canonicalKey(params.ColumnId), request.Formula, request.WebhookUrl)
	c.JSON(http.StatusCreated, request)
}
