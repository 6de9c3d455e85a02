package contracts

// ColumnValuesGetter resolves a column id to the cell values stored for it.
type ColumnValuesGetter func(columnId string) ([]*string, error)

type FormulaEvaluator interface {
	Evaluate(formula string, getValues ColumnValuesGetter) (*Evaluation, error)
}

// Evaluation is the flattened value-plus-error record handed across the API
// boundary. Value is meaningless whenever Error is non-empty.
type Evaluation struct {
	Formula  string  `json:"formula"`
	Function string  `json:"function,omitempty"`
	Argument string  `json:"argument,omitempty"`
	Value    float64 `json:"value"`
	Error    string  `json:"error,omitempty"`
}
