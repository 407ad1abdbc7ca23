package querybuilder

import (
	"errors"
	"reflect"
	"strings"
)

// UpsertModel builds an INSERT ... ON CONFLICT (keys) DO UPDATE from the exported
// db-tagged fields of model. Untagged fields and `db:"-"` are skipped.
func UpsertModel(table string, model any, keys ...string) (string, []any, error) {
	cols, vals, err := modelColumns(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...).OnConflictUpdate(keys...).ToSQL()
}

func modelColumns(model any) ([]string, []any, error) {
	v := reflect.Indirect(reflect.ValueOf(model))
	if !v.IsValid() {
		return nil, nil, errors.New("model cannot be nil")
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, errors.New("model must be a struct")
	}

	var (
		cols []string
		vals []any
	)
	for _, f := range reflect.VisibleFields(v.Type()) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.FieldByIndex(f.Index).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, errors.New("model has no db columns")
	}
	return cols, vals, nil
}
