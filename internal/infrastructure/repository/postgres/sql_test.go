package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatal("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(errors.New("connection refused")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestEncodeJSONList(t *testing.T) {
	t.Run("empty list stays valid jsonb", func(t *testing.T) {
		if got := encodeJSONList(nil); got != "[]" {
			t.Fatalf("unexpected encoding: %s", got)
		}
	})

	t.Run("round trips entries", func(t *testing.T) {
		encoded := encodeJSONList([]any{"GK", "anna"})
		decoded := decodeJSONList([]byte(encoded))
		if len(decoded) != 2 {
			t.Fatalf("unexpected decoded length: got=%d want=2", len(decoded))
		}
		if decoded[0] != "GK" || decoded[1] != "anna" {
			t.Fatalf("unexpected decoded entries: %+v", decoded)
		}
	})

	t.Run("garbage decodes to nil", func(t *testing.T) {
		if got := decodeJSONList([]byte("{broken")); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestEncodeJSONMap(t *testing.T) {
	t.Run("empty map stays valid jsonb", func(t *testing.T) {
		if got := encodeJSONMap(nil); got != "{}" {
			t.Fatalf("unexpected encoding: %s", got)
		}
	})

	t.Run("round trips keys", func(t *testing.T) {
		encoded := encodeJSONMap(map[string]any{"rating": 7.4})
		decoded := decodeJSONMap([]byte(encoded))
		if decoded["rating"] != 7.4 {
			t.Fatalf("unexpected decoded map: %+v", decoded)
		}
	})
}

func TestEncodeJSONValue(t *testing.T) {
	t.Run("nil becomes json null", func(t *testing.T) {
		if got := encodeJSONValue(nil); got != "null" {
			t.Fatalf("unexpected encoding: %s", got)
		}
	})

	t.Run("json null decodes to nil", func(t *testing.T) {
		if got := decodeJSONValue([]byte("null")); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("round trips a minute map", func(t *testing.T) {
		encoded := encodeJSONValue(map[string]any{"goal": []any{12.0, 44.0}})
		decoded, ok := decodeJSONValue([]byte(encoded)).(map[string]any)
		if !ok {
			t.Fatalf("expected a map, got %T", decodeJSONValue([]byte(encoded)))
		}
		if _, found := decoded["goal"]; !found {
			t.Fatalf("expected goal key in decoded map: %+v", decoded)
		}
	})
}
