package contracts

import (
	"errors"
	"fmt"
	"strings"
)

// Column is one stored column: the original-case id plus its cells.
// A nil cell is an absent value, distinct from an empty string.
type Column struct {
	ColumnId string    `json:"column_id"`
	Values   []*string `json:"values"`
}

// ColumnIdBlacklist deny charset which clashes with formula delimiters
const ColumnIdBlacklist = "()=\t\n\r\v\f"

var ColumnNotFoundError = errors.New("column not found")

var ColumnIdBlacklistError = fmt.Errorf("column id contains invalid characters (%s)", strings.Join(strings.Split(ColumnIdBlacklist, ""), ", "))
