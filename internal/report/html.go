package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const pageStyle = "body{font-family:system-ui,sans-serif;max-width:760px;margin:2rem auto;padding:0 1rem;color:#1c1917;} " +
	"table{border-collapse:collapse;width:100%;margin:1rem 0;} " +
	"th,td{border:1px solid #a8a29e;padding:0.35rem 0.5rem;text-align:left;} " +
	"thead th{background:#f1f5f9;} " +
	"blockquote{border-left:4px solid #b91c1c;margin:1rem 0;padding:0.5rem 1rem;background:#fef2f2;} " +
	"code{font-size:0.85rem;}"

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts a Markdown report into a standalone HTML page.
func HTML(markdown, title string) (string, error) {
	var content strings.Builder
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) + "</title>" +
		"<style>" + pageStyle + "</style></head><body>" +
		content.String() +
		"</body></html>", nil
}
