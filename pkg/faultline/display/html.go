package display

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"faultline.dev/pkg/faultline"
)

const contentTypeHTML = "text/html"

const defaultPage = `<!DOCTYPE html>
<html>
<head><title>{{.Status}} {{.Title}}</title></head>
<body>
<h1>{{.Status}} {{.Title}}</h1>
<p>{{.Detail}}</p>
<p><small>Error ID: {{.ID}}</small></p>
</body>
</html>
`

type htmlOptions struct {
	Template string `mapstructure:"template"`
}

// HTML renders a minimal standalone error page.
type HTML struct {
	tmpl *template.Template
}

type htmlData struct {
	ID     string
	Status int
	Title  string
	Detail string
}

// NewHTML builds the displayer. An empty page uses the bundled default
// template; a custom template receives .ID, .Status, .Title and .Detail.
func NewHTML(page string) (*HTML, error) {
	if page == "" {
		page = defaultPage
	}

	tmpl, err := template.New("error").Parse(page)
	if err != nil {
		return nil, fmt.Errorf("parsing error page template: %w", err)
	}

	return &HTML{tmpl: tmpl}, nil
}

func (d *HTML) Display(err error, id string, status int, header http.Header) *faultline.Response {
	data := htmlData{
		ID:     id,
		Status: status,
		Title:  http.StatusText(status),
		Detail: detailFor(err, status),
	}

	buf := &bytes.Buffer{}
	if execErr := d.tmpl.Execute(buf, data); execErr != nil {
		buf.Reset()
		fmt.Fprintf(buf, "<h1>%d %s</h1>", status, template.HTMLEscapeString(data.Title))
	}

	return &faultline.Response{
		StatusCode: status,
		Header:     withContentType(header, contentTypeHTML),
		Body:       buf.Bytes(),
	}
}

func (*HTML) CanDisplay(error, *http.Request) bool {
	return true
}

func (*HTML) ContentType() string {
	return contentTypeHTML
}
