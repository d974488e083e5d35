package part

// Rule converts the payload of one multipart part into T.
type Rule[T any] interface {
	// FromBytes converts the raw payload. Implementations must not retain
	// raw unless they document it.
	FromBytes(raw []byte) (T, error)

	// Absent is called instead of FromBytes when the part is missing.
	Absent(key string) (T, error)
}

// RuleFunc adapts a conversion function to a Rule with the default absence
// policy: a missing part fails with a *NotFoundError.
type RuleFunc[T any] func(raw []byte) (T, error)

// FromBytes calls f(raw).
func (f RuleFunc[T]) FromBytes(raw []byte) (T, error) {
	return f(raw)
}

// Absent fails with a *NotFoundError naming key.
func (f RuleFunc[T]) Absent(key string) (T, error) {
	return Required[T](key)
}

// Required is the default absence policy.
func Required[T any](key string) (T, error) {
	var zero T
	return zero, &NotFoundError{Field: key}
}
