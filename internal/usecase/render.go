package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/Hayal27/Cv-generator/internal/domain"
)

// templateFuncs exposes the shared formatting rules to presentation
// definitions. Every built-in (and any stored custom template) is written
// against this map.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate":  FormatDate,
		"dateRange":   FormatDateRange,
		"skillWeight": SkillWeight,
		"filterBlank": FilterBlank,
		"groupSkills": GroupSkills,
		"location":    Location,
		"join":        strings.Join,
	}
}

// RenderHTML binds a CV to a presentation definition and returns a finished
// HTML document with the template's stylesheet inlined into <head>. The
// result is a pure function of its inputs.
func RenderHTML(cv *domain.CV, tpl *domain.Template) (string, error) {
	if cv == nil || tpl == nil {
		return "", fmt.Errorf("render: nil cv or template")
	}
	cv.Normalize()

	t, err := template.New(tpl.ID).Funcs(templateFuncs()).Parse(tpl.HTMLTemplate)
	if err != nil {
		return "", fmt.Errorf("render: parse template %s: %w", tpl.ID, err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, cv); err != nil {
		return "", fmt.Errorf("render: execute template %s: %w", tpl.ID, err)
	}

	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<style>")
	doc.WriteString(tpl.CSSStyles)
	doc.WriteString("</style>\n</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("\n</body>\n</html>\n")
	return doc.String(), nil
}
