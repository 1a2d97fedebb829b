package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var viewsFS embed.FS

const (
	chartJSURL     = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"
	dateAdapterURL = "https://cdn.jsdelivr.net/npm/chartjs-adapter-date-fns@3.0.0/dist/chartjs-adapter-date-fns.bundle.min.js"
)

var pageTmpl *template.Template

// loadTemplatesFromFS is split out so tests can feed broken file systems.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	tmpl, err := template.ParseFS(sub, "*.html")
	if err != nil {
		return err
	}
	pageTmpl = tmpl
	return nil
}

// LoadTemplates parses the embedded page templates. Call it during startup
// and refuse to serve if it fails.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

type IndexData struct {
	Title        string
	StaticPrefix string
	ChartJS      string
	DateAdapter  string
}

// NewIndexData fills in the script locations. staticPrefix must end in "/".
func NewIndexData(staticPrefix string) IndexData {
	return IndexData{
		Title:        "Temperature & humidity",
		StaticPrefix: staticPrefix,
		ChartJS:      chartJSURL,
		DateAdapter:  dateAdapterURL,
	}
}

func RenderIndex(w io.Writer, data IndexData) error {
	if pageTmpl == nil {
		return errors.New("page template not loaded: call views.LoadTemplates during startup")
	}
	return pageTmpl.ExecuteTemplate(w, "index.html", data)
}
