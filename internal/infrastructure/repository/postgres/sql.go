package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// encodeJSON renders a JSONB column value. nil maps and slices become "{}" or "[]".
func encodeJSON(value any, empty string) (string, error) {
	if value == nil {
		return empty, nil
	}
	encoded, err := sonic.Marshal(value)
	if err != nil {
		return "", err
	}
	if string(encoded) == "null" {
		return empty, nil
	}
	return string(encoded), nil
}

func decodeJSONMap(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil, nil
	}
	out := make(map[string]any)
	if err := sonic.UnmarshalString(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSON(raw string, dst any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	return sonic.UnmarshalString(raw, dst)
}
