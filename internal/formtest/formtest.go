// Package formtest builds multipart/form-data bodies for tests.
package formtest

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

// Part is one part of a test body. An empty Name produces a part without a
// form name.
type Part struct {
	Name     string
	Filename string
	Value    []byte
}

// Text returns a textual part.
func Text(name, value string) Part {
	return Part{Name: name, Value: []byte(value)}
}

// File returns a file part.
func File(name, filename string, content []byte) Part {
	return Part{Name: name, Filename: filename, Value: content}
}

// Body encodes parts and returns the body with its Content-Type header value.
func Body(t testing.TB, parts ...Part) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		switch {
		case p.Name == "":
			h.Set("Content-Disposition", "attachment")
		case p.Filename != "":
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.Name, p.Filename))
			h.Set("Content-Type", "application/octet-stream")
		default:
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, p.Name))
		}

		pw, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("formtest: create part: %v", err)
		}
		if _, err := pw.Write(p.Value); err != nil {
			t.Fatalf("formtest: write part: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("formtest: close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

// Reader returns a multipart reader over the encoded parts.
func Reader(t testing.TB, parts ...Part) *multipart.Reader {
	t.Helper()

	body, contentType := Body(t, parts...)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)

	mr, err := req.MultipartReader()
	if err != nil {
		t.Fatalf("formtest: multipart reader: %v", err)
	}
	return mr
}

// Request returns a POST request carrying the encoded parts.
func Request(t testing.TB, target string, parts ...Part) *http.Request {
	t.Helper()

	body, contentType := Body(t, parts...)
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}
