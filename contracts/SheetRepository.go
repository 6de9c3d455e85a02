package contracts

import "errors"

type SheetRepository interface {
	SetColumn(sheetId string, columnId string, values []*string) (*Column, error)
	GetColumn(sheetId string, columnId string) (*Column, error)
	Evaluate(sheetId string, formula string) (*Evaluation, error)
}

var SheetNotFoundError = errors.New("sheet not found")
