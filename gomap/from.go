package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/xmlv-format/go-xmlv/ir"
)

// ToIR converts a Go value to an ir node. Maps, slices, arrays,
// structs, pointers and the scalar kinds are supported; scalars are
// stringified, since the ir model is untyped. Map keys are emitted in
// sorted order so output is deterministic. Cyclic values fail fast
// rather than recursing forever.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]bool)
	return toIR(reflect.ValueOf(v), "", visited)
}

// RecordName returns the element type name when v is a homogeneous
// collection of records ([]T or []*T with struct T), and "" otherwise.
// The encoder's root-shape normalizer derives singular/plural tags
// from it.
func RecordName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return ""
	}
	elem := t.Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return ""
	}
	return elem.Name()
}

func toIR(val reflect.Value, fieldPath string, visited map[uintptr]bool) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
	}
	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		d, err := tm.MarshalText()
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
		}
		return ir.FromString(string(d)), nil
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.Kind() == reflect.Ptr {
			addr := val.Pointer()
			if visited[addr] {
				return nil, &MarshalError{
					FieldPath: fieldPath,
					Message:   "circular reference detected",
				}
			}
			visited[addr] = true
			defer delete(visited, addr)
		}
		return toIR(val.Elem(), fieldPath, visited)
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Bool:
		return ir.FromString(strconv.FormatBool(val.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromString(strconv.FormatInt(val.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromString(strconv.FormatUint(val.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromString(strconv.FormatFloat(val.Float(), 'f', -1, val.Type().Bits())), nil
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return ir.Null(), nil
		}
		if val.Kind() == reflect.Slice {
			addr := val.Pointer()
			if visited[addr] {
				return nil, &MarshalError{
					FieldPath: fieldPath,
					Message:   "circular reference detected",
				}
			}
			visited[addr] = true
			defer delete(visited, addr)
		}
		items := make([]*ir.Node, val.Len())
		for i := range items {
			item, err := toIR(val.Index(i), indexPath(fieldPath, i), visited)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return ir.FromSlice(items), nil
	case reflect.Map:
		if val.IsNil() {
			return ir.Null(), nil
		}
		addr := val.Pointer()
		if visited[addr] {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   "circular reference detected",
			}
		}
		visited[addr] = true
		defer delete(visited, addr)
		return mapToIR(val, fieldPath, visited)
	case reflect.Struct:
		return structToIR(val, fieldPath, visited)
	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported kind %s", val.Kind()),
		}
	}
}

func mapToIR(val reflect.Value, fieldPath string, visited map[uintptr]bool) (*ir.Node, error) {
	keys := make([]string, 0, val.Len())
	byKey := make(map[string]reflect.Value, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() != reflect.String {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("map keys must be strings, got %s", k.Kind()),
			}
		}
		keys = append(keys, k.String())
		byKey[k.String()] = iter.Value()
	}
	sort.Strings(keys)
	res := ir.Object()
	for _, k := range keys {
		v, err := toIR(byKey[k], joinPath(fieldPath, k), visited)
		if err != nil {
			return nil, err
		}
		res.Set(k, v)
	}
	return res, nil
}

func structToIR(val reflect.Value, fieldPath string, visited map[uintptr]bool) (*ir.Node, error) {
	typ := val.Type()
	res := ir.Object()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, omitEmpty, skip := fieldTag(f)
		if skip {
			continue
		}
		node, err := toIR(val.Field(i), joinPath(fieldPath, name), visited)
		if err != nil {
			return nil, err
		}
		if omitEmpty && node.IsEmpty() {
			continue
		}
		res.Set(name, node)
	}
	return res, nil
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}

func indexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}
