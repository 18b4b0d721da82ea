package skinvend

import (
	"encoding/json"
	"net/url"
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/sapsanDev/skinvedapi/signing"
)

// queryValues encodes a flat parameter map for a GET request: scalar values
// in their protocol text form, slice values in bracket notation (k[]=v),
// nil values omitted. URL escaping happens when the values are rendered
// into the query string.
func queryValues(params map[string]any) url.Values {
	values := url.Values{}

	for key, value := range params {
		if value == nil {
			continue
		}

		rv := reflect.ValueOf(value)

		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				if text, ok := signing.ValueText(rv.Index(i).Interface()); ok {
					values.Add(key+"[]", text)
				}
			}
		default:
			if text, ok := signing.ValueText(value); ok {
				values.Set(key, text)
			}
		}
	}

	return values
}

// bodyParams prepares a flat parameter map for a JSON body: nil values are
// stripped (they are not signed, so they must not be sent either) and
// decimals become bare JSON numbers so the wire text matches the signed
// text exactly.
func bodyParams(params map[string]any) map[string]any {
	body := make(map[string]any, len(params))

	for key, value := range params {
		switch v := value.(type) {
		case nil:
			continue
		case decimal.Decimal:
			body[key] = json.Number(v.String())

			continue
		}

		rv := reflect.ValueOf(value)
		if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
			continue
		}

		body[key] = value
	}

	return body
}
