package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown assembles the downloadable document for a result. It is a
// pure function of the result fields: identical input yields an
// identical byte sequence.
func Markdown(res *Result) string {
	return fmt.Sprintf(`# %s

## Outline
%s

## Article
%s

## Resources
%s
`, res.Title, res.Outline, res.Article, res.Resources)
}

// Filename derives the download file name from the title, spaces
// replaced with underscores.
func Filename(title string) string {
	return strings.ReplaceAll(title, " ", "_") + ".md"
}

// HTML renders markdown to HTML for the web preview.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
