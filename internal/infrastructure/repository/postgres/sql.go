package postgres

import (
	"database/sql"
	"errors"

	sonic "github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func encodeJSONList(value []any) string {
	if len(value) == 0 {
		return "[]"
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func decodeJSONList(raw []byte) []any {
	if len(raw) == 0 {
		return nil
	}
	var out []any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func encodeJSONMap(value map[string]any) string {
	if len(value) == 0 {
		return "{}"
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

func decodeJSONMap(raw []byte) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]any)
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// encodeJSONValue keeps untyped provider fields as-is, falling back to
// a json null when the value cannot be encoded.
func encodeJSONValue(value any) string {
	if value == nil {
		return "null"
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "null"
	}
	return string(encoded)
}

func decodeJSONValue(raw []byte) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var out any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
