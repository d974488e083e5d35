package decoder

import (
	"reflect"
	"strings"
)

// TagName is the struct tag read by Compile and by cmd/multipartgen.
const TagName = "multipart"

// Tag is the parsed multipart tag of a record field.
type Tag struct {
	Key    string // part name
	Ignore bool   // `multipart:"-"`
	JSON   bool   // decode the part with part.JSON
	Char   bool   // decode the part with part.Rune
}

// ParseTag reads the multipart tag of the field called name. Without a name
// in the tag the key defaults to the lower-cased field name.
func ParseTag(name string, st reflect.StructTag) Tag {
	str := strings.TrimSpace(st.Get(TagName))
	if str == "-" {
		return Tag{Ignore: true}
	}

	parts := strings.Split(str, ",")
	t := Tag{Key: strings.TrimSpace(parts[0])}
	if t.Key == "" {
		t.Key = strings.ToLower(name)
	}

	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "json":
			t.JSON = true
		case "char":
			t.Char = true
		}
	}

	return t
}
