package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CategoryPath is an ordered provider category path, most general first.
// It is stored as a JSON text array so it works on both PostgreSQL and SQLite.
type CategoryPath []string

// Value implements driver.Valuer interface
func (p CategoryPath) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal([]string(p))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (p *CategoryPath) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into CategoryPath", value)
	}

	if len(bytes) == 0 {
		*p = nil
		return nil
	}

	var path []string
	if err := json.Unmarshal(bytes, &path); err != nil {
		return err
	}
	if len(path) == 0 {
		*p = nil
		return nil
	}
	*p = path
	return nil
}

// Leaf returns the most specific element of the path
func (p CategoryPath) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}
