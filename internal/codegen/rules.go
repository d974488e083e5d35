package codegen

import (
	"fmt"
	"go/types"
	"strconv"
	"time"

	"github.com/dmitrymomot/typedmultipart/core/decoder"
)

const (
	partPath    = "github.com/dmitrymomot/typedmultipart/core/part"
	partmapPath = "github.com/dmitrymomot/typedmultipart/core/partmap"
)

var basicNames = map[types.BasicKind]string{
	types.Int:     "int",
	types.Int8:    "int8",
	types.Int16:   "int16",
	types.Int32:   "int32",
	types.Int64:   "int64",
	types.Uint:    "uint",
	types.Uint8:   "uint8",
	types.Uint16:  "uint16",
	types.Uint32:  "uint32",
	types.Uint64:  "uint64",
	types.Float32: "float32",
	types.Float64: "float64",
}

// ruleFor returns the rule expression of a field of type t. It resolves the
// same set of types as part.NewRegistry so generated and reflective decoding
// agree.
func (a *Analyzer) ruleFor(t types.Type, tag decoder.Tag, q *qualifier) (string, error) {
	p := q.use(partPath, "part")

	switch {
	case tag.JSON:
		if ptr, ok := t.(*types.Pointer); ok {
			return fmt.Sprintf("%s.Optional(%s.JSON[%s]())", p, p, q.typeString(ptr.Elem())), nil
		}
		return fmt.Sprintf("%s.JSON[%s]()", p, q.typeString(t)), nil

	case tag.Char:
		if isRune(t) {
			return p + ".Rune()", nil
		}
		if ptr, ok := t.(*types.Pointer); ok && isRune(ptr.Elem()) {
			return fmt.Sprintf("%s.Optional(%s.Rune())", p, p), nil
		}
		return "", fmt.Errorf("%w: char option requires rune or *rune, got %s", ErrNoRule, t)
	}

	if expr, ok := a.typeRule(t, p, q); ok {
		return expr, nil
	}
	return "", fmt.Errorf("%w for type %s", ErrNoRule, t)
}

// typeRule resolves t without tag options. Pointers without a rule of their
// own become optional rules of their element type.
func (a *Analyzer) typeRule(t types.Type, p string, q *qualifier) (string, bool) {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		switch tt.Kind() {
		case types.String:
			return p + ".String()", true
		case types.Bool:
			return p + ".Bool()", true
		case types.Int, types.Int8, types.Int16, types.Int32, types.Int64:
			return fmt.Sprintf("%s.Int[%s]()", p, basicNames[tt.Kind()]), true
		case types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64:
			return fmt.Sprintf("%s.Uint[%s]()", p, basicNames[tt.Kind()]), true
		case types.Float32, types.Float64:
			return fmt.Sprintf("%s.Float[%s]()", p, basicNames[tt.Kind()]), true
		}

	case *types.Slice:
		if b, ok := types.Unalias(tt.Elem()).(*types.Basic); ok && b.Kind() == types.Uint8 {
			return p + ".Bytes()", true
		}

	case *types.Named:
		switch {
		case isNamed(tt, "github.com/google/uuid", "UUID"):
			return p + ".UUID()", true
		case isNamed(tt, "time", "Time"):
			return fmt.Sprintf("%s.Time(%s)", p, a.layoutExpr(q)), true
		}

	case *types.Pointer:
		if isNamed(tt.Elem(), "math/big", "Int") {
			return p + ".BigInt()", true
		}
		if inner, ok := a.typeRule(tt.Elem(), p, q); ok {
			return fmt.Sprintf("%s.Optional(%s)", p, inner), true
		}
	}

	return "", false
}

// layoutExpr renders the time layout, naming the time package constant when
// the layout is one.
func (a *Analyzer) layoutExpr(q *qualifier) string {
	if name, ok := timeLayouts[a.timeLayout]; ok {
		return q.use("time", "time") + "." + name
	}
	return strconv.Quote(a.timeLayout)
}

var timeLayouts = map[string]string{
	time.RFC3339:     "RFC3339",
	time.RFC3339Nano: "RFC3339Nano",
	time.DateTime:    "DateTime",
	time.DateOnly:    "DateOnly",
	time.TimeOnly:    "TimeOnly",
}

func isRune(t types.Type) bool {
	b, ok := types.Unalias(t).(*types.Basic)
	return ok && b.Kind() == types.Int32
}

func isNamed(t types.Type, pkgPath, name string) bool {
	n, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := n.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == pkgPath && obj.Name() == name
}
