package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// readDocxBlocks extracts paragraph and table-cell text from a .docx file.
// A .docx is a zip archive whose body lives in word/document.xml; walking the
// XML tokens directly avoids pulling in a licensed OOXML library. Each
// paragraph (w:p) and each table cell (w:tc) becomes one block, which matches
// how the rest of the pipeline expects tables to be flattened.
func readDocxBlocks(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}
	defer zr.Close()

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("word/document.xml not found in docx")
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read document.xml: %w", err)
	}

	return decodeDocxBlocks(data)
}

func decodeDocxBlocks(data []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var blocks []string
	var current strings.Builder

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			blocks = append(blocks, text)
		}
		current.Reset()
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document.xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			// w:t carries the actual run text.
			if el.Name.Local == "t" {
				var content string
				if err := decoder.DecodeElement(&content, &el); err == nil {
					current.WriteString(content)
				}
			}
		case xml.EndElement:
			// Paragraphs and table cells both terminate a block.
			if el.Name.Local == "p" || el.Name.Local == "tc" {
				flush()
			}
		}
	}
	flush()

	return blocks, nil
}
