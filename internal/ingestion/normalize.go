// Package ingestion reads resume documents into plain text and normalizes
// that text for the extraction engine.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankRunsRe  = regexp.MustCompile(`\n{3,}`)
)

// NormalizeBlocks joins raw text blocks (paragraphs and flattened table
// cells) into a single normalized string. Runs of whitespace inside a line
// collapse to one space; line breaks are preserved because the section
// locator and sentence splitter rely on them, and blank lines are kept as
// section delimiters but collapsed to at most one.
func NormalizeBlocks(blocks []string) string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = strings.ReplaceAll(block, "\r\n", "\n")
		block = strings.ReplaceAll(block, "\r", "\n")
		for _, line := range strings.Split(block, "\n") {
			lines = append(lines, normalizeLine(line))
		}
	}
	joined := strings.Join(lines, "\n")
	joined = blankRunsRe.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}

// NormalizeText normalizes already-joined text, treating each line as a block.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	return NormalizeBlocks([]string{text})
}

func normalizeLine(line string) string {
	line = innerSpaceRe.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}
