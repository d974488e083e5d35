package codegen

import (
	"path"
	"strconv"
)

// File is the input of Generate: the records of one package that receive a
// DecodeMultipart method.
type File struct {
	Package string   // package clause of the generated file
	Imports []Import // sorted by path
	Records []Record
}

// Import is one import spec of the generated file.
type Import struct {
	Name string // package name used in rule expressions
	Path string
}

// String renders the import spec, adding an alias only when the name differs
// from the last path element.
func (i Import) String() string {
	if i.Name == path.Base(i.Path) {
		return strconv.Quote(i.Path)
	}
	return i.Name + " " + strconv.Quote(i.Path)
}

// Record is an analysed record type.
type Record struct {
	Name   string
	Fields []Field
}

// Field is a decoded field of a record.
type Field struct {
	Name string // Go field name
	Key  string // part name
	Type string // Go type, qualified relative to the record package
	Rule string // expression evaluating to a part.Rule of Type
}

// Var returns the local variable holding the decoded value of f.
func (f Field) Var() string {
	return "v" + f.Name
}
