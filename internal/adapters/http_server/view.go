package httpserver

import (
	"html/template"
	"io"
	"strings"

	"hotel_packages/internal/domain"
)

var packagesTmpl = template.Must(template.New("packages").Funcs(template.FuncMap{
	"lines": func(s string) template.HTML {
		parts := strings.Split(s, "\n")
		for i, p := range parts {
			parts[i] = template.HTMLEscapeString(p)
		}
		return template.HTML(strings.Join(parts, "<br>"))
	},
}).Parse(`{{if .Error}}<p class="error">{{.Error}}</p>
{{else if .Empty}}<p>{{.Message}}</p>
{{else}}{{range .Blocks}}<div class="package-result">
  <h3>{{.Heading}}</h3>
  <p><strong>{{.First.Label}}:</strong><br>{{lines .First.Summary}}</p>
  <p><strong>{{.Second.Label}}:</strong><br>{{lines .Second.Summary}}</p>
  <div class="package-price">
    <span>Per Person Price: {{.PerPerson}}</span>
    <span class="total">Total Hotel Cost: {{.Total}}</span>
  </div>
</div>
{{end}}{{if .Copyable}}<textarea class="copy-text" readonly>{{.CopyText}}</textarea>
{{end}}{{if .Notice}}<p class="notice">{{.Notice}}</p>
{{end}}{{if .ClipID}}<p class="clip">Saved as {{.ClipID}}</p>
{{end}}{{end}}`))

type view struct {
	domain.Rendering
	Error    string
	Notice   string
	ClipID   string
	Copyable bool
}

// RenderHTML writes the display markup for a generate result.
func RenderHTML(w io.Writer, res domain.Result) error {
	v := view{Rendering: res.Rendering, Notice: res.Notice, ClipID: res.ClipID, Copyable: res.CanCopy()}
	if res.ErrorMessage != nil {
		v.Error = *res.ErrorMessage
	}
	return packagesTmpl.Execute(w, v)
}
