package main

import (
	"columnCalc/contracts"
	"fmt"
)

var aggregateFunctions = map[contracts.AggregateFunction]bool{
	contracts.AggregateSum:   true,
	contracts.AggregateAvg:   true,
	contracts.AggregateMin:   true,
	contracts.AggregateMax:   true,
	contracts.AggregateCount: true,
}

// FormulaEvaluator composes the parser and the aggregator: it parses the
// formula, maps the function name to a reducer, resolves the argument to
// column values and runs the aggregation. The parser itself stays
// whitelist-free; unrecognized names fail here.
type FormulaEvaluator struct {
	parser     contracts.FormulaParser
	aggregator contracts.Aggregator
}

func NewFormulaEvaluator(parser contracts.FormulaParser, aggregator contracts.Aggregator) *FormulaEvaluator {
	return &FormulaEvaluator{
		parser:     parser,
		aggregator: aggregator,
	}
}

func (e *FormulaEvaluator) Evaluate(formula string, getValues contracts.ColumnValuesGetter) (*contracts.Evaluation, error) {
	evaluation := &contracts.Evaluation{Formula: formula}

	parsed, err := e.parser.Parse(formula)
	if err != nil {
		return e.failed(evaluation, err)
	}

	evaluation.Function = parsed.Function
	evaluation.Argument = parsed.Argument

	function := contracts.AggregateFunction(parsed.Function)
	if !aggregateFunctions[function] {
		return e.failed(evaluation, fmt.Errorf("%s: %w", parsed.Function, contracts.UnknownFunctionError))
	}

	var values []*string
	if getValues != nil {
		values, err = getValues(parsed.Argument)
		if err != nil {
			return e.failed(evaluation, err)
		}
	}

	evaluation.Value, err = e.aggregator.Aggregate(function, parsed.Argument, values)
	if err != nil {
		return e.failed(evaluation, err)
	}

	return evaluation, nil
}

func (e *FormulaEvaluator) failed(evaluation *contracts.Evaluation, err error) (*contracts.Evaluation, error) {
	evaluation.Value = 0
	evaluation.Error = err.Error()
	return evaluation, err
}
