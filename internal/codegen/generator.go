package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// Header is the first line of every generated file.
const Header = "// Code generated by multipartgen. DO NOT EDIT."

var fileTemplate = template.Must(template.New("file").Parse(`{{.Header}}

package {{.File.Package}}
{{with .File.Imports}}
import (
{{- range .}}
	{{.}}
{{- end}}
)
{{end}}
{{- range .File.Records}}

// DecodeMultipart decodes r from the parts of a multipart body.
// Fields are read in declaration order and r is only assigned when all of
// them decode.
func (r *{{.Name}}) DecodeMultipart(m *partmap.Map) error {
{{- range .Fields}}
	{{.Var}}, err := partmap.Get(m, {{printf "%q" .Key}}, {{.Rule}})
	if err != nil {
		return err
	}
{{- end}}
{{- if .Fields}}

	*r = {{.Name}}{
{{- range .Fields}}
		{{.Name}}: {{.Var}},
{{- end}}
	}
{{- else}}
	*r = {{.Name}}{}
{{- end}}
	return nil
}
{{end}}`))

type templateData struct {
	Header string
	File   File
}

// Generate renders the DecodeMultipart methods of f as formatted Go source.
// When formatting fails the unformatted source is returned with the error.
func Generate(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("generate: missing package name")
	}
	if len(f.Records) == 0 {
		return nil, fmt.Errorf("generate: no records in package %s", f.Package)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, templateData{Header: Header, File: f}); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting code: %w", err)
	}
	return formatted, nil
}
