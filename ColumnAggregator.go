package main

import (
	"columnCalc/contracts"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ColumnAggregator reduces a column of optional cell texts with tolerant
// coercion: absent, blank and non-numeric cells are skipped instead of
// failing the whole computation. COUNT is the exception and counts every
// cell that has content, numeric or not.
type ColumnAggregator struct {
}

func NewColumnAggregator() *ColumnAggregator {
	return &ColumnAggregator{}
}

func (a *ColumnAggregator) Aggregate(function contracts.AggregateFunction, columnName string, values []*string) (float64, error) {
	if !utf8.ValidString(columnName) {
		return 0, fmt.Errorf("column name: %w", contracts.InvalidEncodingError)
	}

	if values == nil {
		return 0, contracts.NullValuesError
	}

	switch function {
	case contracts.AggregateSum:
		sum, parsedCount := a.sumNumeric(values)
		if parsedCount == 0 {
			return 0, contracts.NoNumericValuesError
		}
		return sum, nil

	case contracts.AggregateAvg:
		sum, parsedCount := a.sumNumeric(values)
		if parsedCount == 0 {
			return 0, contracts.NoNumericValuesError
		}
		return sum / float64(parsedCount), nil

	case contracts.AggregateMin:
		return a.extremum(values, func(current float64, next float64) bool {
			return next < current
		})

	case contracts.AggregateMax:
		return a.extremum(values, func(current float64, next float64) bool {
			return next > current
		})

	case contracts.AggregateCount:
		return a.countPresent(values), nil
	}

	return 0, fmt.Errorf("%s: %w", function, contracts.UnknownFunctionError)
}

// parseCell applies the shared coercion rule: nil, blank, undecodable and
// non-numeric cells are skipped.
func parseCell(value *string) (float64, bool) {
	if value == nil || !utf8.ValidString(*value) {
		return 0, false
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return 0, false
	}

	number, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}

	return number, true
}

// sumNumeric adds cells left to right in input order.
func (a *ColumnAggregator) sumNumeric(values []*string) (sum float64, parsedCount int) {
	for _, value := range values {
		if number, ok := parseCell(value); ok {
			sum += number
			parsedCount++
		}
	}
	return
}

func (a *ColumnAggregator) extremum(values []*string, better func(current float64, next float64) bool) (float64, error) {
	var result float64
	found := false

	for _, value := range values {
		number, ok := parseCell(value)
		if !ok {
			continue
		}

		if !found || better(result, number) {
			result = number
			found = true
		}
	}

	if !found {
		return 0, contracts.NoNumericValuesError
	}

	return result, nil
}

// countPresent counts cells that have content, regardless of whether the
// content is numeric. An all-blank column counts as 0 rather than failing.
func (a *ColumnAggregator) countPresent(values []*string) float64 {
	counted := 0
	for _, value := range values {
		if value == nil || !utf8.ValidString(*value) {
			continue
		}

		if strings.TrimSpace(*value) != "" {
			counted++
		}
	}
	return float64(counted)
}
