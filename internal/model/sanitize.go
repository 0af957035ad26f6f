package model

import (
	"github.com/Hayal27/Cv-generator/internal/domain"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// SanitizeCV strips HTML from every free-text field before persistence.
// Structured fields (dates, enums, URLs) are left to schema validation.
func SanitizeCV(cv *domain.CV) {
	if cv == nil {
		return
	}
	cv.Title = strict.Sanitize(cv.Title)
	cv.Summary = strict.Sanitize(cv.Summary)

	for i := range cv.Experience {
		e := &cv.Experience[i]
		e.Description = strict.Sanitize(e.Description)
		for j, a := range e.Achievements {
			e.Achievements[j] = strict.Sanitize(a)
		}
	}
	for i := range cv.Education {
		for j, a := range cv.Education[i].Achievements {
			cv.Education[i].Achievements[j] = strict.Sanitize(a)
		}
	}
	for i := range cv.Projects {
		p := &cv.Projects[i]
		p.Description = strict.Sanitize(p.Description)
		for j, h := range p.Highlights {
			p.Highlights[j] = strict.Sanitize(h)
		}
	}
	for i := range cv.Achievements {
		cv.Achievements[i].Description = strict.Sanitize(cv.Achievements[i].Description)
	}
}
