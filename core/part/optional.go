package part

// Optional wraps a rule so that a missing part decodes to nil instead of
// failing. A present part is still converted by inner and its errors are
// reported unchanged.
func Optional[T any](inner Rule[T]) Rule[*T] {
	return optional[T]{inner: inner}
}

type optional[T any] struct {
	inner Rule[T]
}

func (o optional[T]) FromBytes(raw []byte) (*T, error) {
	v, err := o.inner.FromBytes(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (o optional[T]) Absent(string) (*T, error) {
	return nil, nil
}
