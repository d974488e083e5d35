package part

import (
	"reflect"
	"sync"
	"time"
)

// Converter is a type-erased Rule used by reflective decoders.
type Converter interface {
	// Type returns the Go type produced by the converter.
	Type() reflect.Type
	// Convert converts a present payload.
	Convert(raw []byte) (reflect.Value, error)
	// Missing applies the absence policy for key.
	Missing(key string) (reflect.Value, error)
}

// Erase wraps rule as a Converter.
func Erase[T any](rule Rule[T]) Converter {
	return erased[T]{rule: rule, typ: reflect.TypeFor[T]()}
}

type erased[T any] struct {
	rule Rule[T]
	typ  reflect.Type
}

func (e erased[T]) Type() reflect.Type { return e.typ }

func (e erased[T]) Convert(raw []byte) (reflect.Value, error) {
	v, err := e.rule.FromBytes(raw)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(&v).Elem(), nil
}

func (e erased[T]) Missing(key string) (reflect.Value, error) {
	v, err := e.rule.Absent(key)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(&v).Elem(), nil
}

// OptionalConverter is the runtime counterpart of Optional: it produces a
// pointer to the inner type and a nil pointer when the part is absent.
func OptionalConverter(inner Converter) Converter {
	return optionalConverter{inner: inner, typ: reflect.PointerTo(inner.Type())}
}

type optionalConverter struct {
	inner Converter
	typ   reflect.Type
}

func (o optionalConverter) Type() reflect.Type { return o.typ }

func (o optionalConverter) Convert(raw []byte) (reflect.Value, error) {
	v, err := o.inner.Convert(raw)
	if err != nil {
		return reflect.Value{}, err
	}
	p := reflect.New(o.inner.Type())
	p.Elem().Set(v)
	return p, nil
}

func (o optionalConverter) Missing(string) (reflect.Value, error) {
	return reflect.Zero(o.typ), nil
}

// Registry is a dispatch table from target type to conversion rule.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[reflect.Type]Converter
}

// Default is the process-wide registry holding every built-in rule.
var Default = NewRegistry()

// NewRegistry returns a registry pre-populated with the built-in rules.
// int32 resolves to the integer rule; use Rune explicitly for characters.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[reflect.Type]Converter)}

	Register(r, String())
	Register(r, Bool())
	Register(r, Int[int]())
	Register(r, Int[int8]())
	Register(r, Int[int16]())
	Register(r, Int[int32]())
	Register(r, Int[int64]())
	Register(r, Uint[uint]())
	Register(r, Uint[uint8]())
	Register(r, Uint[uint16]())
	Register(r, Uint[uint32]())
	Register(r, Uint[uint64]())
	Register(r, Float[float32]())
	Register(r, Float[float64]())
	Register(r, Bytes())
	Register(r, BigInt())
	Register(r, UUID())
	Register(r, Time(time.RFC3339))

	return r
}

// Register adds or replaces the rule for T.
func Register[T any](reg *Registry, rule Rule[T]) {
	c := Erase(rule)
	reg.mu.Lock()
	reg.rules[c.Type()] = c
	reg.mu.Unlock()
}

// Lookup resolves the converter for t. Pointer types without an explicit rule
// resolve to an optional converter of their element type. An explicit rule
// wins, so *big.Int resolves to the required BigInt rule.
func (r *Registry) Lookup(t reflect.Type) (Converter, bool) {
	r.mu.RLock()
	c, ok := r.rules[t]
	r.mu.RUnlock()
	if ok {
		return c, true
	}

	if t.Kind() == reflect.Pointer {
		inner, ok := r.Lookup(t.Elem())
		if !ok {
			return nil, false
		}
		return OptionalConverter(inner), true
	}

	return nil, false
}

// Types returns the types with an explicit rule.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]reflect.Type, 0, len(r.rules))
	for t := range r.rules {
		types = append(types, t)
	}
	return types
}
