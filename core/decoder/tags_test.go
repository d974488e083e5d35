package decoder_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/typedmultipart/core/decoder"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		tag   reflect.StructTag
		want  decoder.Tag
	}{
		{"no tag", "FullName", ``, decoder.Tag{Key: "fullname"}},
		{"other tags only", "Title", `json:"t"`, decoder.Tag{Key: "title"}},
		{"rename", "FullName", `multipart:"full_name"`, decoder.Tag{Key: "full_name"}},
		{"ignored", "Internal", `multipart:"-"`, decoder.Tag{Ignore: true}},
		{"json option", "Meta", `multipart:"meta,json"`, decoder.Tag{Key: "meta", JSON: true}},
		{"char option without name", "Initial", `multipart:",char"`, decoder.Tag{Key: "initial", Char: true}},
		{"unknown option", "ID", `multipart:"id,omitempty"`, decoder.Tag{Key: "id"}},
		{"spaces", "ID", `multipart:" id , json "`, decoder.Tag{Key: "id", JSON: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decoder.ParseTag(tt.field, tt.tag))
		})
	}
}
