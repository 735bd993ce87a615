// Package mail renders and delivers the account notification emails.
package mail

import (
	"embed"
	"strings"
	"text/template"

	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"
	"valunds/internal/errors"
)

//go:embed templates/*.txt
var templateFS embed.FS

type renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded plain-text templates.
func NewRenderer() (service.MailRenderer, error) {
	tmpl, err := template.New("mail").Option("missingkey=zero").ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, errors.Wrap(err, "parse mail templates")
	}

	return &renderer{templates: tmpl}, nil
}

func (r *renderer) Render(name entity.MailTemplate, data map[string]string) (string, error) {
	tmpl := r.templates.Lookup(name.String() + ".txt")
	if tmpl == nil {
		return "", errors.Errorf("unknown mail template %q", name)
	}

	values := make(map[string]string, len(data)+1)
	for k, v := range data {
		values[k] = v
	}
	if values["name"] == "" {
		values["name"] = "there"
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, values); err != nil {
		return "", errors.Wrapf(err, "render mail template %q", name)
	}

	return sb.String(), nil
}
