package fluentcheck

import (
	"reflect"
	"strconv"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct field's
// external key used for property lookup and error paths.
// Priority: fluent:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ft := sf.Tag.Get("fluent"); ft != "" {
		for _, p := range strings.Split(ft, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] != "" {
				return jt[:i]
			}
			return sf.Name
		}
		return jt
	}
	return sf.Name
}

// Lookup returns container[key] for string-keyed maps and structs. It returns
// Undefined when the container is absent, the key is missing or the container
// has no properties.
func Lookup(container any, key string) any {
	if isAbsent(container) {
		return Undefined
	}
	c := deref(container)
	if m, ok := c.(map[string]any); ok {
		if v, found := m[key]; found {
			return v
		}
		return Undefined
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return Undefined
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return Undefined
		}
		return mv.Interface()
	case reflect.Struct:
		if fv, ok := structField(rv, key, 0); ok {
			return fv.Interface()
		}
	}
	return Undefined
}

// LookupPath follows a dot-delimited path from container. Numeric segments
// index into slices and arrays. Any miss yields Undefined.
func LookupPath(container any, path string) any {
	cur := container
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if Classify(cur) == VariantArray {
			i, err := strconv.Atoi(seg)
			rv := reflect.ValueOf(deref(cur))
			if err != nil || i < 0 || i >= rv.Len() {
				return Undefined
			}
			cur = rv.Index(i).Interface()
			continue
		}
		cur = Lookup(cur, seg)
		if IsUndefined(cur) {
			return Undefined
		}
	}
	return cur
}

const _maxEmbedDepth = 32

// structField finds the exported field whose resolved key equals key,
// descending into untagged embedded structs the way encoding/json promotes
// their fields.
func structField(rv reflect.Value, key string, depth int) (reflect.Value, bool) {
	if depth > _maxEmbedDepth {
		return reflect.Value{}, false
	}
	rt := rv.Type()
	var embedded []int
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		// Unexported embedded struct types still promote their exported fields.
		if sf.Anonymous && sf.Tag.Get("json") == "" && sf.Tag.Get("fluent") == "" {
			ft := sf.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				embedded = append(embedded, i)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		if k := ResolveStructKey(sf); k != "-" && k == key {
			return rv.Field(i), true
		}
	}
	for _, i := range embedded {
		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if v, ok := structField(fv, key, depth+1); ok {
			return v, true
		}
	}
	return reflect.Value{}, false
}
