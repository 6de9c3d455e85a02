package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestColumnBinarySerializer_Marshal(t *testing.T) {
	serializer := NewColumnBinarySerializer()

	serialized := serializer.Marshal("ColumnA", _makeColumn("10", "20"))
	assert.NotNil(t, serialized)
	assert.Greater(t, len(serialized), 2+len("ColumnA")+4)
}

func TestColumnBinarySerializer_Unmarshal(t *testing.T) {
	serializer := NewColumnBinarySerializer()

	t.Run("valid_data", func(t *testing.T) {
		values := []*string{
			_makeStringRef("10"),
			nil,
			_makeStringRef(""),
			_makeStringRef("some longer cell text, URL-compatible or not"),
		}

		serialized := serializer.Marshal("Revenue 2023", values)
		columnId, actual, err := serializer.Unmarshal(serialized)

		assert.NoError(t, err)
		assert.Equal(t, "Revenue 2023", columnId)
		assert.Equal(t, values, actual)

		// nil cell survives as nil, empty cell as empty string
		assert.Nil(t, actual[1])
		assert.NotNil(t, actual[2])
	})

	t.Run("empty_column", func(t *testing.T) {
		serialized := serializer.Marshal("ColumnA", []*string{})
		columnId, values, err := serializer.Unmarshal(serialized)

		assert.NoError(t, err)
		assert.Equal(t, "ColumnA", columnId)
		assert.Len(t, values, 0)
		assert.NotNil(t, values)
	})

	t.Run("empty_data", func(t *testing.T) {
		columnId, values, err := serializer.Unmarshal([]byte{})

		assert.Error(t, err)
		assert.ErrorIs(t, err, SerializerError)
		assert.Equal(t, "", columnId)
		assert.Nil(t, values)
	})

	t.Run("truncated_column_id", func(t *testing.T) {
		serialized := serializer.Marshal("ColumnA", _makeColumn("10"))

		_, _, err := serializer.Unmarshal(serialized[:3])

		assert.ErrorIs(t, err, SerializerError)
	})

	t.Run("truncated_cells", func(t *testing.T) {
		serialized := serializer.Marshal("ColumnA", _makeColumn("10", "20"))

		_, _, err := serializer.Unmarshal(serialized[:len(serialized)-1])

		assert.ErrorIs(t, err, SerializerError)
	})
}
