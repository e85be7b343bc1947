package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadError reports a failure to obtain source text from a document. It is
// the only fatal error in a parse: everything downstream of a successful read
// degrades to zero values instead of failing.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read document %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ReadDocument reads a resume document and returns its normalized text.
// The format is chosen by file extension: .docx, .pdf, .html/.htm, and plain
// text (.txt, .md, or anything else readable as UTF-8).
func ReadDocument(path string) (string, error) {
	blocks, err := readBlocks(path)
	if err != nil {
		return "", &ReadError{Path: path, Cause: err}
	}
	return NormalizeBlocks(blocks), nil
}

func readBlocks(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return readDocxBlocks(path)
	case ".pdf":
		return readPDFBlocks(path)
	case ".html", ".htm":
		return readHTMLBlocks(path)
	default:
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return []string{string(content)}, nil
	}
}
