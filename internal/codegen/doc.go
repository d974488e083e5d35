// Package codegen generates DecodeMultipart methods for record types.
//
// The Analyzer loads packages with golang.org/x/tools/go/packages and checks
// each requested record:
//
//   - the type must be a non-generic struct
//   - fields must be named (embedded fields are rejected)
//   - every exported field type must resolve to a part rule
//
// Field types resolve to the same rules as part.NewRegistry. Pointers become
// optional rules, `multipart:"name,json"` selects part.JSON and
// `multipart:"name,char"` selects part.Rune.
//
// Generate renders a File with text/template and formats it with go/format.
// Each generated method calls partmap.Get once per field in declaration order
// and assigns the record only after every field decoded.
package codegen
