package part

import (
	"encoding/json"
	"reflect"
)

// JSON decodes the payload with encoding/json. Decoder errors are reported
// with their original message.
func JSON[T any]() Rule[T] {
	return RuleFunc[T](func(raw []byte) (T, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			var zero T
			return zero, &ConversionError{Target: "json", Stage: StageDecode, Err: err}
		}
		return v, nil
	})
}

// JSONConverter returns a Converter decoding JSON payloads into values of
// type t. It backs the `json` struct tag option of reflective decoders.
func JSONConverter(t reflect.Type) Converter {
	return jsonConverter{typ: t}
}

type jsonConverter struct {
	typ reflect.Type
}

func (c jsonConverter) Type() reflect.Type { return c.typ }

func (c jsonConverter) Convert(raw []byte) (reflect.Value, error) {
	p := reflect.New(c.typ)
	if err := json.Unmarshal(raw, p.Interface()); err != nil {
		return reflect.Value{}, &ConversionError{Target: "json", Stage: StageDecode, Err: err}
	}
	return p.Elem(), nil
}

func (c jsonConverter) Missing(key string) (reflect.Value, error) {
	return reflect.Value{}, &NotFoundError{Field: key}
}
