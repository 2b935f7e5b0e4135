package db

import (
	"bytes"
	"database/sql/driver"
	"fmt"
)

// JSON carries a jsonb column as raw bytes so malformed stored values reach the
// caller instead of failing the whole row scan. An empty JSON is written as NULL.
type JSON []byte

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return string(j), nil
}

func (j *JSON) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = bytes.Clone(v)
	case string:
		*j = JSON(v)
	default:
		return fmt.Errorf("scan jsonb: unsupported type %T", src)
	}

	return nil
}

// IsNull reports whether the column is SQL NULL or JSON null.
func (j JSON) IsNull() bool {
	trimmed := bytes.TrimSpace(j)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
