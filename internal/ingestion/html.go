package ingestion

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Block-level elements that become their own text block when reading an HTML
// resume export. Inline markup inside them is flattened to text.
var htmlBlockSelector = "p, li, h1, h2, h3, h4, h5, h6, td, th, div"

// readHTMLBlocks extracts text blocks from an HTML resume export. Each
// block-level element becomes one block; nested containers are skipped so a
// wrapping div does not duplicate the text of its children.
func readHTMLBlocks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var blocks []string
	doc.Find(htmlBlockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Skip containers that hold other block elements; their leaves are
		// visited separately.
		if sel.Find(htmlBlockSelector).Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	if len(blocks) == 0 {
		if text := strings.TrimSpace(doc.Text()); text != "" {
			blocks = append(blocks, text)
		}
	}

	return blocks, nil
}
