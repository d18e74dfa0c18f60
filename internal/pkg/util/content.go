package util

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	boldRegex = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emRegex   = regexp.MustCompile(`\*(.*?)\*`)

	sanitizer = bluemonday.UGCPolicy()
)

// FormatPreview 将 **粗体**、*斜体* 与换行渲染为 HTML
func FormatPreview(content string) string {
	out := html.EscapeString(content)
	out = boldRegex.ReplaceAllString(out, "<strong>$1</strong>")
	out = emRegex.ReplaceAllString(out, "<em>$1</em>")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return sanitizer.Sanitize(out)
}
