package web

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	md     = goldmark.New()
	policy = bluemonday.UGCPolicy()
)

// renderAnswer converts a markdown answer to sanitized HTML. On a conversion
// error the answer is shown escaped as a single paragraph.
func renderAnswer(answer string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(answer), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(answer) + "</p>")
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
