// Package decoder turns a partmap.Map into a user-defined record.
//
// A record is a plain struct. Each exported field is read from the part whose
// name is given by the `multipart` struct tag, or from the lower-cased field
// name when the tag is absent:
//
//	type CreatePost struct {
//		ID       uint32            // part "id"
//		Title    string            // part "title"
//		FullName string            `multipart:"full_name"`
//		Note     *string           // optional, nil when missing
//		Meta     Meta              `multipart:"meta,json"`
//		Initial  rune              `multipart:"initial,char"`
//		Internal string            `multipart:"-"`
//	}
//
// Records are decoded in one of two ways. Code produced by cmd/multipartgen
// implements Decoder on the record; otherwise a Schema is compiled by
// reflection once per type and reused:
//
//	var postSchema = decoder.MustCompile[CreatePost](part.Default)
//
//	post, err := postSchema.Decode(m)
//
// Decode picks the generated method when present and falls back to a cached
// schema otherwise.
//
// Fields are decoded in declaration order and decoding stops at the first
// failure; a partially decoded record is never returned. Declaration problems
// (non-struct records, embedded fields, field types without a rule) are
// reported by Compile, not while serving a request.
package decoder
