// Package records declares record types exercising the analyzer.
package records

import (
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/typedmultipart/core/part"
)

type Extra struct {
	Note string `json:"note"`
}

type Pointers struct {
	Count   **int
	Big     *big.Int
	MaybeID *uuid.UUID     `multipart:"maybe_id"`
	Letter  *rune          `multipart:"letter,char"`
	Extra   *Extra         `multipart:"extra,json"`
	Stages  []part.Stage   `multipart:"stages,json"`
	When    *time.Time     `multipart:"when"`
	Lookup  map[string]int `multipart:"lookup,json"`
	hidden  string
	Skipped complex64 `multipart:"-"`
}

type Shape interface {
	Area() float64
}

type Number int

type Embedded struct {
	Extra
	Title string
}

type IgnoredEmbedded struct {
	Extra `multipart:"-"`
	Title string
}

type Unsupported struct {
	Ratio complex128
}

type NamedBasic struct {
	N Number
}

type BadChar struct {
	Initial string `multipart:"initial,char"`
}

type Generic[T any] struct {
	Value T
}

type Empty struct{}
