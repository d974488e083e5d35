package decoder

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/dmitrymomot/typedmultipart/core/part"
	"github.com/dmitrymomot/typedmultipart/core/partmap"
)

// Errors returned when a record type cannot be compiled. They describe the
// declaration, not the request, and are reported once at start-up.
var (
	ErrNotStruct     = errors.New("record can only be a struct")
	ErrEmbeddedField = errors.New("record fields must be named, embedded fields are not supported")
	ErrNoRule        = errors.New("no conversion rule for field type")
	ErrNilTarget     = errors.New("target must be a non-nil pointer to struct")
)

// Decoder is implemented by records that decode themselves from a field map.
// Generated code implements it on the pointer receiver.
type Decoder interface {
	DecodeMultipart(m *partmap.Map) error
}

// Field describes one decoded struct field.
type Field struct {
	Name  string       // Go field name
	Key   string       // part name
	Index int          // struct field index
	Type  reflect.Type // Go field type

	conv part.Converter
}

type schema struct {
	typ    reflect.Type
	fields []Field
}

// Schema decodes records of type T. It is built once by Compile and is safe
// for concurrent use.
type Schema[T any] struct {
	s *schema
}

// Compile builds the schema of T using reg to resolve field rules.
func Compile[T any](reg *part.Registry) (*Schema[T], error) {
	s, err := compile(reflect.TypeFor[T](), reg)
	if err != nil {
		return nil, err
	}
	return &Schema[T]{s: s}, nil
}

// MustCompile is like Compile but panics on error. Use it for package level
// schema variables.
func MustCompile[T any](reg *part.Registry) *Schema[T] {
	s, err := Compile[T](reg)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode decodes a T from m. Fields are read in declaration order and the
// first failure is returned with the zero value.
func (s *Schema[T]) Decode(m *partmap.Map) (T, error) {
	var out T
	if err := s.s.decode(m, reflect.ValueOf(&out).Elem()); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Fields returns the decoded fields in declaration order.
func (s *Schema[T]) Fields() []Field {
	return append([]Field(nil), s.s.fields...)
}

func compile(typ reflect.Type, reg *part.Registry) (*schema, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotStruct, typ, typ.Kind())
	}

	s := &schema{typ: typ}
	for i := range typ.NumField() {
		f := typ.Field(i)

		t := ParseTag(f.Name, f.Tag)
		if t.Ignore {
			continue
		}
		if f.Anonymous {
			return nil, fmt.Errorf("%w: %s embeds %s", ErrEmbeddedField, typ, f.Type)
		}
		// Skip unexported fields that reflection cannot modify
		if !f.IsExported() {
			continue
		}

		conv, err := converterFor(f, t, reg)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", typ, f.Name, err)
		}

		s.fields = append(s.fields, Field{
			Name:  f.Name,
			Key:   t.Key,
			Index: i,
			Type:  f.Type,
			conv:  conv,
		})
	}

	return s, nil
}

func converterFor(f reflect.StructField, t Tag, reg *part.Registry) (part.Converter, error) {
	switch {
	case t.JSON:
		if f.Type.Kind() == reflect.Pointer {
			return part.OptionalConverter(part.JSONConverter(f.Type.Elem())), nil
		}
		return part.JSONConverter(f.Type), nil

	case t.Char:
		c := part.Erase(part.Rune())
		switch {
		case f.Type == c.Type():
			return c, nil
		case f.Type == reflect.PointerTo(c.Type()):
			return part.OptionalConverter(c), nil
		}
		return nil, fmt.Errorf("%w: char option requires rune or *rune, got %s", ErrNoRule, f.Type)
	}

	conv, ok := reg.Lookup(f.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoRule, f.Type)
	}
	return conv, nil
}

func (s *schema) decode(m *partmap.Map, out reflect.Value) error {
	for _, f := range s.fields {
		v, err := s.field(m, f)
		if err != nil {
			return err
		}
		out.Field(f.Index).Set(v)
	}
	return nil
}

func (s *schema) field(m *partmap.Map, f Field) (reflect.Value, error) {
	raw, ok := m.Lookup(f.Key)
	if !ok {
		return f.conv.Missing(f.Key)
	}

	v, err := f.conv.Convert(raw)
	if err != nil {
		return reflect.Value{}, &partmap.DecodeError{Field: f.Key, Err: err}
	}
	return v, nil
}

// schemas caches compiled schemas of types decoded through Decode and Into.
var schemas sync.Map // map[reflect.Type]*schema

func cached(typ reflect.Type) (*schema, error) {
	if s, ok := schemas.Load(typ); ok {
		return s.(*schema), nil
	}

	s, err := compile(typ, part.Default)
	if err != nil {
		return nil, err
	}
	actual, _ := schemas.LoadOrStore(typ, s)
	return actual.(*schema), nil
}

// Decode decodes a T from m. Records implementing Decoder on their pointer
// receiver decode themselves; other records are decoded by a schema compiled
// on first use against part.Default.
func Decode[T any](m *partmap.Map) (T, error) {
	var out T
	if d, ok := any(&out).(Decoder); ok {
		if err := d.DecodeMultipart(m); err != nil {
			var zero T
			return zero, err
		}
		return out, nil
	}

	s, err := cached(reflect.TypeFor[T]())
	if err != nil {
		return out, err
	}
	if err := s.decode(m, reflect.ValueOf(&out).Elem()); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Into decodes m into the struct pointed to by v. v is only modified when
// decoding succeeds.
func Into(m *partmap.Map, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNilTarget
	}

	tmp := reflect.New(rv.Elem().Type())
	if d, ok := tmp.Interface().(Decoder); ok {
		if err := d.DecodeMultipart(m); err != nil {
			return err
		}
		rv.Elem().Set(tmp.Elem())
		return nil
	}

	s, err := cached(rv.Elem().Type())
	if err != nil {
		return err
	}
	if err := s.decode(m, tmp.Elem()); err != nil {
		return err
	}
	rv.Elem().Set(tmp.Elem())
	return nil
}

// Must verifies that T can be decoded and panics otherwise. Call it at
// process start for records decoded through Decode so declaration errors
// never surface during a request.
func Must[T any]() {
	var out T
	if _, ok := any(&out).(Decoder); ok {
		return
	}
	if _, err := cached(reflect.TypeFor[T]()); err != nil {
		panic(err)
	}
}
