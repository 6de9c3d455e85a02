package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized data")

const cellAbsent = byte(0)
const cellPresent = byte(1)

// ColumnBinarySerializer frames a column as the original-case column id
// followed by its cells. Each cell carries a presence flag so a nil cell
// survives the roundtrip as nil, not as an empty string.
type ColumnBinarySerializer struct {
}

func NewColumnBinarySerializer() *ColumnBinarySerializer {
	return &ColumnBinarySerializer{}
}

func (s *ColumnBinarySerializer) Marshal(columnId string, values []*string) []byte {
	idBytes := []byte(columnId)

	size := 2 + len(idBytes) + 4 + len(values)
	for _, value := range values {
		if value != nil {
			size += 4 + len(*value)
		}
	}

	data := make([]byte, 0, size)
	data = binary.LittleEndian.AppendUint16(data, uint16(len(idBytes)))
	data = append(data, idBytes...)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(values)))

	for _, value := range values {
		if value == nil {
			data = append(data, cellAbsent)
			continue
		}

		data = append(data, cellPresent)
		data = binary.LittleEndian.AppendUint32(data, uint32(len(*value)))
		data = append(data, *value...)
	}

	return data
}

func (s *ColumnBinarySerializer) Unmarshal(data []byte) (columnId string, values []*string, err error) {
	if len(data) < 2 {
		return "", nil, fmt.Errorf("%w: should be at least 2 bytes (data: %v)", SerializerError, string(data))
	}

	idLength := int(binary.LittleEndian.Uint16(data))
	offset := 2

	if len(data) < offset+idLength+4 {
		return "", nil, fmt.Errorf("%w: column id size exceeds bytes amount (idSize: %d)", SerializerError, idLength)
	}

	columnId = string(data[offset : offset+idLength])
	offset += idLength

	cellCount := int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4

	values = make([]*string, 0, cellCount)
	for i := 0; i < cellCount; i++ {
		if offset >= len(data) {
			return "", nil, fmt.Errorf("%w: truncated cell flag (cell: %d)", SerializerError, i)
		}

		flag := data[offset]
		offset++

		if flag == cellAbsent {
			values = append(values, nil)
			continue
		}

		if len(data) < offset+4 {
			return "", nil, fmt.Errorf("%w: truncated cell length (cell: %d)", SerializerError, i)
		}

		valueLength := int(binary.LittleEndian.Uint32(data[offset:]))
		offset += 4

		if len(data) < offset+valueLength {
			return "", nil, fmt.Errorf("%w: cell size exceeds bytes amount (cell: %d; size: %d)", SerializerError, i, valueLength)
		}

		value := string(data[offset : offset+valueLength])
		offset += valueLength
		values = append(values, &value)
	}

	return columnId, values, nil
}
