package model

import (
	"testing"

	"github.com/Hayal27/Cv-generator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() string {
	return `{
		"title": "My CV",
		"personalInfo": {
			"firstName": "Ada",
			"lastName": "Lovelace",
			"email": "ada@example.com"
		},
		"experience": [{
			"jobTitle": "Engineer",
			"company": "Acme",
			"startDate": "2020-01",
			"isCurrentJob": true
		}],
		"skills": [{"name": "Go", "level": "Expert", "category": "Languages"}]
	}`
}

func TestValidatePayloadAccepts(t *testing.T) {
	assert.NoError(t, ValidatePayload([]byte(validPayload())))
}

func TestValidatePayloadRejects(t *testing.T) {
	cases := map[string]string{
		"missing title":      `{"personalInfo": {"firstName": "A", "lastName": "B", "email": "a@b.co"}}`,
		"short title":        `{"title": "ab", "personalInfo": {"firstName": "A", "lastName": "B", "email": "a@b.co"}}`,
		"missing email":      `{"title": "My CV", "personalInfo": {"firstName": "A", "lastName": "B"}}`,
		"bad date format":    `{"title": "My CV", "personalInfo": {"firstName": "A", "lastName": "B", "email": "a@b.co"}, "experience": [{"jobTitle": "E", "company": "C", "startDate": "January 2020"}]}`,
		"bad skill level":    `{"title": "My CV", "personalInfo": {"firstName": "A", "lastName": "B", "email": "a@b.co"}, "skills": [{"name": "Go", "level": "Wizard", "category": "Langs"}]}`,
		"not even an object": `[]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidatePayload([]byte(payload)))
		})
	}
}

func TestValidatePayloadReportsDetail(t *testing.T) {
	err := ValidatePayload([]byte(`{"title": "ab", "personalInfo": {"firstName": "A", "lastName": "B", "email": "a@b.co"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestSanitizeCVStripsMarkup(t *testing.T) {
	cv := &domain.CV{
		Title:   `My <b>CV</b>`,
		Summary: `<script>alert(1)</script>engineer`,
		Experience: []domain.Experience{{
			Description:  `<img src=x onerror=alert(1)>built things`,
			Achievements: []string{`<a href="http://evil">shipped</a> v2`},
		}},
		Projects: []domain.Project{{
			Description: `plain text stays`,
			Highlights:  []string{`<iframe></iframe>fast`},
		}},
	}
	SanitizeCV(cv)

	assert.Equal(t, "My CV", cv.Title)
	assert.Equal(t, "engineer", cv.Summary)
	assert.Equal(t, "built things", cv.Experience[0].Description)
	assert.Equal(t, "shipped v2", cv.Experience[0].Achievements[0])
	assert.Equal(t, "plain text stays", cv.Projects[0].Description)
	assert.Equal(t, "fast", cv.Projects[0].Highlights[0])
}

func TestSanitizeCVNil(t *testing.T) {
	SanitizeCV(nil)
}
