package main

import (
	"columnCalc/contracts"
	"fmt"
	"go.etcd.io/bbolt"
	"strings"
	"unicode/utf8"
)

// SheetRepository stores columns in bbolt, one bucket per sheet. Keys are
// canonicalized ids; the original-case column id travels inside the
// serialized value.
type SheetRepository struct {
	db         *bbolt.DB
	serializer contracts.ColumnSerializer
	evaluator  contracts.FormulaEvaluator
}

func NewSheetRepository(db *bbolt.DB, serializer contracts.ColumnSerializer, evaluator contracts.FormulaEvaluator) *SheetRepository {
	return &SheetRepository{
		db:         db,
		serializer: serializer,
		evaluator:  evaluator,
	}
}

func canonicalKey(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func (s *SheetRepository) SetColumn(sheetId string, columnId string, values []*string) (*contracts.Column, error) {
	if !utf8.ValidString(columnId) {
		return nil, fmt.Errorf("column id: %w", contracts.InvalidEncodingError)
	}

	if strings.ContainsAny(columnId, contracts.ColumnIdBlacklist) {
		return nil, fmt.Errorf("column id `%s`: %w", columnId, contracts.ColumnIdBlacklistError)
	}

	sheetKey := []byte(canonicalKey(sheetId))
	columnKey := []byte(canonicalKey(columnId))
	serializedData := s.serializer.Marshal(columnId, values)

	err := s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sheetKey)
		if err != nil {
			return err
		}

		return bucket.Put(columnKey, serializedData)
	})

	if err != nil {
		return nil, err
	}

	return &contracts.Column{ColumnId: columnId, Values: values}, nil
}

func (s *SheetRepository) GetColumn(sheetId string, columnId string) (column *contracts.Column, err error) {
	sheetKey := []byte(canonicalKey(sheetId))
	columnKey := []byte(canonicalKey(columnId))

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetKey)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		byteValue := bucket.Get(columnKey)
		if byteValue == nil {
			return fmt.Errorf("%s: %w", columnId, contracts.ColumnNotFoundError)
		}

		storedId, values, err := s.serializer.Unmarshal(byteValue)
		if err != nil {
			return err
		}

		column = &contracts.Column{ColumnId: storedId, Values: values}
		return nil
	})

	return
}

func (s *SheetRepository) Evaluate(sheetId string, formula string) (evaluation *contracts.Evaluation, err error) {
	sheetKey := []byte(canonicalKey(sheetId))

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetKey)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		var innerErr error
		evaluation, innerErr = s.evaluator.Evaluate(formula, s.makeValuesGetter(bucket))
		return innerErr
	})

	return
}

func (s *SheetRepository) makeValuesGetter(bucket *bbolt.Bucket) contracts.ColumnValuesGetter {
	return func(columnId string) ([]*string, error) {
		byteValue := bucket.Get([]byte(canonicalKey(columnId)))
		if byteValue == nil {
			return nil, fmt.Errorf("%s: %w", columnId, contracts.ColumnNotFoundError)
		}

		_, values, err := s.serializer.Unmarshal(byteValue)
		return values, err
	}
}
