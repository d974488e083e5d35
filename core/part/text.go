package part

import (
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Signed is the set of signed integer types accepted by Int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types accepted by Uint.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floating is the set of floating point types accepted by Float.
type Floating interface {
	~float32 | ~float64
}

// text validates raw as UTF-8 and returns it as a string.
func text(raw []byte, target string) (string, error) {
	if !utf8.Valid(raw) {
		return "", utf8Error(target)
	}
	return string(raw), nil
}

// String converts the payload to a string.
func String() Rule[string] {
	return RuleFunc[string](func(raw []byte) (string, error) {
		return text(raw, "string")
	})
}

// Normalized converts the payload to an NFC-normalized string, so visually
// identical input submitted by different clients compares equal.
func Normalized() Rule[string] {
	return RuleFunc[string](func(raw []byte) (string, error) {
		s, err := text(raw, "string")
		if err != nil {
			return "", err
		}
		return norm.NFC.String(s), nil
	})
}

// Bool accepts exactly "true" or "false".
func Bool() Rule[bool] {
	return RuleFunc[bool](func(raw []byte) (bool, error) {
		s, err := text(raw, "bool")
		if err != nil {
			return false, err
		}
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, parseError("bool", &strconv.NumError{Func: "ParseBool", Num: s, Err: strconv.ErrSyntax})
	})
}

// Rune accepts exactly one character.
func Rune() Rule[rune] {
	return RuleFunc[rune](func(raw []byte) (rune, error) {
		s, err := text(raw, "char")
		if err != nil {
			return 0, err
		}
		switch utf8.RuneCountInString(s) {
		case 0:
			return 0, parseError("char", ErrEmptyString)
		case 1:
			r, _ := utf8.DecodeRuneInString(s)
			return r, nil
		default:
			return 0, parseError("char", ErrTooManyChars)
		}
	})
}

// Int parses a base-10 signed integer that fits T.
func Int[T Signed]() Rule[T] {
	typ := reflect.TypeFor[T]()
	name := typ.String()
	bits := typ.Bits()
	return RuleFunc[T](func(raw []byte) (T, error) {
		s, err := text(raw, name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, parseError(name, err)
		}
		return T(n), nil
	})
}

// Uint parses a base-10 unsigned integer that fits T. A leading '+' is
// accepted, as it is by Int.
func Uint[T Unsigned]() Rule[T] {
	typ := reflect.TypeFor[T]()
	name := typ.String()
	bits := typ.Bits()
	return RuleFunc[T](func(raw []byte) (T, error) {
		s, err := text(raw, name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
		if err != nil {
			return 0, parseError(name, err)
		}
		return T(n), nil
	})
}

// Float parses a floating point number with the precision of T. Values out of
// the range of T fail with strconv.ErrRange instead of becoming infinite.
func Float[T Floating]() Rule[T] {
	typ := reflect.TypeFor[T]()
	name := typ.String()
	bits := typ.Bits()
	return RuleFunc[T](func(raw []byte) (T, error) {
		s, err := text(raw, name)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, parseError(name, err)
		}
		return T(f), nil
	})
}

// BigInt parses a base-10 integer of arbitrary width.
func BigInt() Rule[*big.Int] {
	return RuleFunc[*big.Int](func(raw []byte) (*big.Int, error) {
		s, err := text(raw, "big.Int")
		if err != nil {
			return nil, err
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, parseError("big.Int", &strconv.NumError{Func: "SetString", Num: s, Err: strconv.ErrSyntax})
		}
		return n, nil
	})
}

// Time parses the payload with the given layout.
func Time(layout string) Rule[time.Time] {
	return RuleFunc[time.Time](func(raw []byte) (time.Time, error) {
		s, err := text(raw, "time.Time")
		if err != nil {
			return time.Time{}, err
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			return time.Time{}, parseError("time.Time", err)
		}
		return t, nil
	})
}
