// Package part provides the conversion rules that turn a single multipart
// form-data part into a typed Go value.
//
// A rule is a pair of operations: FromBytes converts the raw payload of a part,
// Absent decides what happens when the part is missing from the request. The
// default absence policy fails with a *NotFoundError; Optional overrides it so
// a missing part yields a nil pointer instead.
//
// # Built-in Rules
//
//	part.String()          // UTF-8 text
//	part.Normalized()      // UTF-8 text, NFC normalized
//	part.Bool()            // "true" or "false"
//	part.Rune()            // exactly one character
//	part.Int[int32]()      // any signed integer type
//	part.Uint[uint64]()    // any unsigned integer type
//	part.Float[float64]()  // float32 or float64
//	part.BigInt()          // integers wider than 64 bits
//	part.UUID()            // github.com/google/uuid
//	part.Time(time.RFC3339)
//	part.Bytes()           // payload copy, no conversion
//	part.Raw()             // payload as-is, no copy
//	part.JSON[T]()         // encoding/json
//	part.Optional(rule)    // *T, nil when the part is absent
//
// Textual rules validate UTF-8 before parsing. Every failure is a
// *ConversionError whose Stage tells apart invalid UTF-8, an unparsable value
// and a structured decoder error.
//
// # Registry
//
// Registry maps a reflect.Type to a rule and is used by the reflective record
// decoder. Default holds every built-in rule; pointer types resolve to Optional
// of their element type automatically. *big.Int is the exception: BigInt is
// registered for the pointer type itself, so a *big.Int field is required and
// **big.Int is its optional form.
//
//	part.Register(part.Default, part.Time("2006-01-02"))
//
// # Errors
//
// ConversionError and NotFoundError implement StatusCode() int and always
// report http.StatusBadRequest: the payload comes from the client, so a
// conversion failure is never a server fault.
package part
