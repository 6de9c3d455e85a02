package contracts

import "errors"

type AggregateFunction string

const (
	AggregateSum   AggregateFunction = "SUM"
	AggregateAvg   AggregateFunction = "AVG"
	AggregateMin   AggregateFunction = "MIN"
	AggregateMax   AggregateFunction = "MAX"
	AggregateCount AggregateFunction = "COUNT"
)

// Aggregator reduces a column of optional cell texts to one number.
// The column name is carried for future column-scoped behavior and is not
// used by the computation itself.
type Aggregator interface {
	Aggregate(function AggregateFunction, columnName string, values []*string) (float64, error)
}

var NoNumericValuesError = errors.New("no numeric values found in column")

var NullValuesError = errors.New("values list is required")

var UnknownFunctionError = errors.New("unknown aggregate function")
