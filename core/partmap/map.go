package partmap

import (
	"context"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"slices"

	"github.com/dmitrymomot/typedmultipart/core/part"
)

// PartReader yields the parts of a multipart body. *multipart.Reader
// implements it.
type PartReader interface {
	NextPart() (*multipart.Part, error)
}

// Map holds the named parts of one request body. It is built once and never
// modified afterwards.
type Map struct {
	parts map[string][]byte
}

// New drains r into a Map. Parts without a form name are skipped and a later
// part replaces an earlier one with the same name. The context is checked
// before each part is read.
func New(ctx context.Context, r PartReader, opts ...Option) (*Map, error) {
	o := newOptions(opts)
	parts := make(map[string][]byte)

	for count := 0; ; count++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := r.NextPart()
		// A truncated body wraps io.EOF; only the bare value marks the final boundary.
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}

		if o.maxParts > 0 && count >= o.maxParts {
			_ = p.Close()
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyParts, o.maxParts)
		}

		name := p.FormName()
		if name == "" {
			_ = p.Close()
			continue
		}

		payload, err := readPart(p, o.maxPartSize)
		_ = p.Close()
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}

		parts[name] = payload
	}

	return &Map{parts: parts}, nil
}

// readPart reads one payload of at most limit bytes, then reads a single
// extra byte to detect payloads over limit.
func readPart(p io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		payload, err := io.ReadAll(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		return payload, nil
	}

	payload, err := io.ReadAll(io.LimitReader(p, limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if int64(len(payload)) < limit {
		return payload, nil
	}

	var extra [1]byte
	switch _, err := io.ReadFull(p, extra[:]); {
	case err == nil:
		return nil, fmt.Errorf("%w: max %d bytes", ErrPartTooLarge, limit)
	case err != io.EOF:
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return payload, nil
}

// FromValues builds a Map from already parsed parts. The payloads are copied.
func FromValues(values map[string][]byte) *Map {
	parts := make(map[string][]byte, len(values))
	for k, v := range values {
		parts[k] = slices.Clone(v)
	}
	return &Map{parts: parts}
}

// FromStrings is a convenience wrapper around FromValues for textual parts.
func FromStrings(values map[string]string) *Map {
	parts := make(map[string][]byte, len(values))
	for k, v := range values {
		parts[k] = []byte(v)
	}
	return &Map{parts: parts}
}

// Get converts the part named key with rule. A present part that fails to
// convert is reported as a *DecodeError; a missing part is handed to the
// rule's absence policy.
func Get[T any](m *Map, key string, rule part.Rule[T]) (T, error) {
	raw, ok := m.parts[key]
	if !ok {
		return rule.Absent(key)
	}

	v, err := rule.FromBytes(raw)
	if err != nil {
		var zero T
		return zero, &DecodeError{Field: key, Err: err}
	}
	return v, nil
}

// Lookup returns the raw payload of the part named key.
func (m *Map) Lookup(key string) ([]byte, bool) {
	raw, ok := m.parts[key]
	return raw, ok
}

// Len returns the number of named parts.
func (m *Map) Len() int {
	return len(m.parts)
}

// Keys returns the part names in sorted order.
func (m *Map) Keys() []string {
	return slices.Sorted(maps.Keys(m.parts))
}
