package gomap

import (
	"reflect"
	"strings"
)

// fieldTag interprets the `xmlv` struct tag: `xmlv:"name"`,
// `xmlv:"name,omitempty"`, `xmlv:",omitempty"`, `xmlv:"-"`.
func fieldTag(f reflect.StructField) (name string, omitEmpty, skip bool) {
	name = f.Name
	tag, ok := f.Tag.Lookup("xmlv")
	if !ok {
		return name, false, false
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}
