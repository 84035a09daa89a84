package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringArray persists a list of strings as a JSON column. Scanning is
// lenient: bare strings from legacy rows become a single-element slice
// instead of failing the query.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *StringArray) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*a = StringArray{}
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("models.StringArray: cannot scan %T", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		*a = StringArray{}
		return nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		*a = list
		return nil
	}

	var one string
	if err := json.Unmarshal([]byte(raw), &one); err == nil {
		raw = one
	}
	if raw == "" {
		*a = StringArray{}
		return nil
	}
	*a = StringArray{raw}
	return nil
}
