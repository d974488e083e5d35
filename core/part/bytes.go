package part

import "bytes"

// Bytes returns a copy of the payload without any conversion.
func Bytes() Rule[[]byte] {
	return RuleFunc[[]byte](func(raw []byte) ([]byte, error) {
		return bytes.Clone(raw), nil
	})
}

// Raw returns the payload itself. The slice aliases the field map buffer and
// must not be modified.
func Raw() Rule[[]byte] {
	return RuleFunc[[]byte](func(raw []byte) ([]byte, error) {
		return raw, nil
	})
}
