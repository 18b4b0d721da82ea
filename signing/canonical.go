// Package signing implements the SkinVend request-authentication protocol:
// a deterministic canonicalization of flat request parameters and an
// HMAC-SHA512 signature over the canonical string plus a millisecond
// timestamp.
//
// The canonical form concatenates values with no separators, so two
// different parameter sets can collide (e.g. {a:"1", b:"23"} and
// {a:"12", b:"3"} both canonicalize to "123"). This is a property of the
// remote protocol and is preserved as-is for signature compatibility.
package signing

import (
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Canonical builds the canonical string for a flat parameter map: entries
// sorted by key (byte order, ascending), values appended in their textual
// form with no separators. Entries whose value is nil, a slice, an array, a
// map or a struct are omitted, matching what the remote side signs.
func Canonical(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	for _, key := range keys {
		text, ok := ValueText(params[key])
		if !ok {
			continue
		}

		builder.WriteString(text)
	}

	return builder.String()
}

// ValueText renders a parameter value in its protocol textual form:
// booleans as the words true/false, numbers as their natural decimal text,
// strings verbatim. The second return is false for values the protocol
// never renders (nil, slices, maps, structs).
//
//nolint:cyclop // one arm per supported scalar type
func ValueText(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case json.Number:
		return v.String(), true
	case decimal.Decimal:
		return v.String(), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return formatReflected(value)
	}
}

// formatReflected handles pointers to scalars and rejects collections.
// Slices, arrays, maps and structs never contribute to the canonical string.
func formatReflected(value any) (string, bool) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false
		}

		return ValueText(rv.Elem().Interface())
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}
