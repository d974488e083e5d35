package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// OutputName returns the default output file for records declared in the
// Go file src: post.go becomes post_multipart.go. Without a source file the
// name is derived from the first record.
func OutputName(src string, records ...string) string {
	if src != "" {
		return strings.TrimSuffix(filepath.Base(src), ".go") + "_multipart.go"
	}
	if len(records) > 0 {
		return strings.ToLower(records[0]) + "_multipart.go"
	}
	return "multipart_gen.go"
}

// WriteFile writes generated source to path, creating the directory if needed.
func WriteFile(path string, src []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, src, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
