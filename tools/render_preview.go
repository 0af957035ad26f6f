package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Hayal27/Cv-generator/internal/domain"
	"github.com/Hayal27/Cv-generator/internal/usecase"
)

// Renders a CV JSON file through a built-in template and writes the HTML
// document, so template changes can be eyeballed in a browser without a
// running server.
func main() {
	in := "cv.json"
	templateID := domain.DefaultTemplateID
	if len(os.Args) > 1 {
		in = os.Args[1]
	}
	if len(os.Args) > 2 {
		templateID = os.Args[2]
	}

	b, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read cv: %v\n", err)
		os.Exit(2)
	}
	var cv domain.CV
	if err := json.Unmarshal(b, &cv); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal: %v\n", err)
		os.Exit(2)
	}

	var tpl *domain.Template
	for _, t := range usecase.BuiltinTemplates() {
		if t.ID == templateID {
			tpl = &t
			break
		}
	}
	if tpl == nil {
		fmt.Fprintf(os.Stderr, "unknown template %q\n", templateID)
		os.Exit(2)
	}

	html, err := usecase.RenderHTML(&cv, tpl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(2)
	}

	out := "preview_" + templateID + ".html"
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write out: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("wrote %s\n", out)
}
