package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/xmlv-format/go-xmlv/ir"
)

// FromIR converts an ir node into a Go value. v must be a non-nil
// pointer. Two unwrapping rules apply before conversion:
//
//  1. when v points at a struct and node is a mapping with exactly one
//     field matching the struct type's name, that field's value is
//     unwrapped first;
//  2. when v points at a slice and node is a mapping, the single
//     sequence-shaped value found inside the mapping is extracted;
//     when no sequence exists, a field named after the slice's element
//     type is extracted instead, so a one-record collection decodes as
//     a one-element slice.
//
// Scalars parse into string, bool, integer and float kinds; a bare
// value converts into a one-element slice when the target is a slice.
func FromIR(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	if node == nil {
		node = ir.Null()
	}
	switch dst := v.(type) {
	case *ir.Node:
		*dst = *node.Clone()
		return nil
	case *any:
		*dst = ToAny(node)
		return nil
	case *map[string]any:
		m, ok := ToAny(node).(map[string]any)
		if !ok {
			return &TypeError{Expected: "Object", Actual: node.Type.String()}
		}
		*dst = m
		return nil
	}
	elem := val.Elem()
	node = unwrap(node, elem.Type())
	return fromIR(node, elem, "")
}

// unwrap applies the typed-decode special cases for the target type.
func unwrap(node *ir.Node, typ reflect.Type) *ir.Node {
	if !node.IsMapping() {
		return node
	}
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Struct:
		if len(node.Fields) == 1 && strings.EqualFold(node.Fields[0], typ.Name()) {
			return node.Values[0]
		}
	case reflect.Slice:
		if seq := findSequence(node); seq != nil {
			return seq
		}
		elem := typ.Elem()
		for elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		if rec := findRecord(node, elem.Name()); rec != nil {
			return rec
		}
	}
	return node
}

// findRecord descends through single-key mapping wrappers looking for
// a field named after the slice's element type. A collection that held
// exactly one record parses without a sequence, so the record must be
// recovered by name before the bare-value rule can apply.
func findRecord(node *ir.Node, name string) *ir.Node {
	if name == "" || !node.IsMapping() || len(node.Fields) != 1 {
		return nil
	}
	if strings.EqualFold(node.Fields[0], name) {
		return node.Values[0]
	}
	return findRecord(node.Values[0], name)
}

// findSequence locates the single sequence-shaped value held anywhere
// inside a mapping.
func findSequence(node *ir.Node) *ir.Node {
	if node.IsSequence() {
		return node
	}
	if !node.IsMapping() {
		return nil
	}
	for _, v := range node.Values {
		if seq := findSequence(v); seq != nil {
			return seq
		}
	}
	return nil
}

func fromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	typ := val.Type()
	if typ.Kind() == reflect.Ptr {
		if node.Type == ir.NullType {
			val.Set(reflect.Zero(typ))
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(typ.Elem()))
		}
		return fromIR(node, val.Elem(), fieldPath)
	}
	if node.Type == ir.NullType {
		val.Set(reflect.Zero(typ))
		return nil
	}
	if val.CanAddr() {
		if tu, ok := val.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if node.Type != ir.StringType {
				return &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
			}
			if err := tu.UnmarshalText([]byte(node.String)); err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: err.Error(), Err: err}
			}
			return nil
		}
	}
	switch typ.Kind() {
	case reflect.String:
		if node.Type != ir.StringType {
			return &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
		}
		val.SetString(node.String)
		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(scalar(node, fieldPath))
		if err != nil {
			return scalarErr(node, fieldPath, "bool", err)
		}
		val.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(scalar(node, fieldPath), 10, 64)
		if err != nil {
			return scalarErr(node, fieldPath, "integer", err)
		}
		val.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(scalar(node, fieldPath), 10, 64)
		if err != nil {
			return scalarErr(node, fieldPath, "unsigned integer", err)
		}
		val.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(scalar(node, fieldPath), 64)
		if err != nil {
			return scalarErr(node, fieldPath, "float", err)
		}
		val.SetFloat(f)
		return nil
	case reflect.Interface:
		if typ.NumMethod() != 0 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("cannot unmarshal into non-empty interface %s", typ),
			}
		}
		val.Set(reflect.ValueOf(ToAny(node)))
		return nil
	case reflect.Slice:
		items := node.Values
		if !node.IsSequence() {
			// bare value: a single occurrence the input never repeated
			items = []*ir.Node{node}
		}
		out := reflect.MakeSlice(typ, len(items), len(items))
		for i, item := range items {
			if err := fromIR(item, out.Index(i), indexPath(fieldPath, i)); err != nil {
				return err
			}
		}
		val.Set(out)
		return nil
	case reflect.Map:
		if !node.IsMapping() {
			return &TypeError{FieldPath: fieldPath, Expected: "Object", Actual: node.Type.String()}
		}
		if typ.Key().Kind() != reflect.String {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("map keys must be strings, got %s", typ.Key().Kind()),
			}
		}
		out := reflect.MakeMapWithSize(typ, len(node.Fields))
		for i, key := range node.Fields {
			mv := reflect.New(typ.Elem()).Elem()
			if err := fromIR(node.Values[i], mv, joinPath(fieldPath, key)); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(key).Convert(typ.Key()), mv)
		}
		val.Set(out)
		return nil
	case reflect.Struct:
		if !node.IsMapping() {
			return &TypeError{FieldPath: fieldPath, Expected: "Object", Actual: node.Type.String()}
		}
		return structFromIR(node, val, fieldPath)
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported kind %s", typ.Kind()),
		}
	}
}

func structFromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, skip := fieldTag(f)
		if skip {
			continue
		}
		fv := fieldValue(node, name)
		if fv == nil {
			continue
		}
		if err := fromIR(fv, val.Field(i), joinPath(fieldPath, name)); err != nil {
			return err
		}
	}
	return nil
}

// fieldValue matches a mapping field to a struct field name, exact
// match first, case-insensitive fallback second.
func fieldValue(node *ir.Node, name string) *ir.Node {
	if v := node.Get(name); v != nil {
		return v
	}
	for i, f := range node.Fields {
		if strings.EqualFold(f, name) {
			return node.Values[i]
		}
	}
	return nil
}

func scalar(node *ir.Node, fieldPath string) string {
	if node.Type != ir.StringType {
		return ""
	}
	return node.String
}

func scalarErr(node *ir.Node, fieldPath, want string, err error) error {
	if node.Type != ir.StringType {
		return &TypeError{FieldPath: fieldPath, Expected: "String", Actual: node.Type.String()}
	}
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("cannot parse %q as %s", node.String, want),
		Err:       err,
	}
}

// ToAny converts an ir node to plain Go values: nil, string,
// []any and map[string]any. Mapping order is lost; callers needing
// order keep the ir form.
func ToAny(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		out := make([]any, len(node.Values))
		for i, v := range node.Values {
			out[i] = ToAny(v)
		}
		return out
	case ir.ObjectType:
		out := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			out[f] = ToAny(node.Values[i])
		}
		return out
	default:
		return nil
	}
}
