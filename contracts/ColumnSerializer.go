package contracts

type ColumnSerializer interface {
	Marshal(columnId string, values []*string) []byte
	Unmarshal(data []byte) (columnId string, values []*string, err error)
}
