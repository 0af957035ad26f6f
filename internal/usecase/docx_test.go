package usecase

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/Hayal27/Cv-generator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCV() *domain.CV {
	return &domain.CV{
		Title:   "Senior Engineer CV",
		Summary: "Backend engineer with a focus on data pipelines.",
		PersonalInfo: domain.PersonalInfo{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+44 1234",
			LinkedIn:  "linkedin.com/in/ada",
			City:      "London",
			Country:   "UK",
		},
		Experience: []domain.Experience{{
			JobTitle:     "Engineer",
			Company:      "Acme",
			StartDate:    "2020-01",
			EndDate:      "2023-12",
			Achievements: []string{"shipped v2", "  "},
		}},
		Projects: []domain.Project{{
			Name:         "Analytical Engine",
			Description:  "Mechanical computation",
			Technologies: []string{"brass", "steam"},
			StartDate:    "2021-03",
			IsOngoing:    true,
		}},
		Education: []domain.Education{{
			Degree:       "BSc",
			FieldOfStudy: "Mathematics",
			Institution:  "University of London",
			StartDate:    "2015-09",
			EndDate:      "2018-06",
		}},
		Skills: []domain.Skill{
			{Name: "Go", Level: "Expert", Category: "Languages"},
		},
		Certifications: []domain.Certification{{
			Name:      "Cloud Cert",
			Issuer:    "Vendor",
			IssueDate: "2022-06",
		}},
		Achievements: []domain.Achievement{{
			Title:    "First Programmer",
			Category: "professional",
		}},
	}
}

func readDocxPart(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			b, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(b)
		}
	}
	t.Fatalf("part %s not found in container", name)
	return ""
}

func TestRenderDOCXContainer(t *testing.T) {
	data, err := RenderDOCX(fullCV())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "[Content_Types].xml")
	assert.Contains(t, names, "_rels/.rels")
	assert.Contains(t, names, "word/document.xml")
	assert.Contains(t, names, "word/styles.xml")
}

func TestRenderDOCXDeterministic(t *testing.T) {
	cv := fullCV()
	a, err := RenderDOCX(cv)
	require.NoError(t, err)
	b, err := RenderDOCX(cv)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderDOCXContent(t *testing.T) {
	data, err := RenderDOCX(fullCV())
	require.NoError(t, err)
	doc := readDocxPart(t, data, "word/document.xml")

	assert.Contains(t, doc, "Ada Lovelace")
	assert.Contains(t, doc, "Email: ada@example.com")
	assert.Contains(t, doc, "Jan 2020 - Dec 2023")
	assert.Contains(t, doc, "Mar 2021 - Present")
	assert.Contains(t, doc, "shipped v2")
	// whitespace-only achievement must not produce a bullet
	assert.Equal(t, 1, strings.Count(doc, "•"))
	assert.Contains(t, doc, "Languages: ")
	assert.Contains(t, doc, "brass, steam")
}

func TestRenderDOCXContactFallbacks(t *testing.T) {
	cv := &domain.CV{PersonalInfo: domain.PersonalInfo{FirstName: "Ada", LastName: "Lovelace"}}
	data, err := RenderDOCX(cv)
	require.NoError(t, err)
	doc := readDocxPart(t, data, "word/document.xml")

	assert.Contains(t, doc, "Email: N/A")
	assert.Contains(t, doc, "Phone: N/A")
	assert.Contains(t, doc, "LinkedIn: N/A")
	assert.NotContains(t, doc, "Location:")
}

// Section headings must match the HTML templates' titles exactly so the two
// export formats stay in lockstep.
func TestRenderDOCXSectionParityWithHTML(t *testing.T) {
	cv := fullCV()

	data, err := RenderDOCX(cv)
	require.NoError(t, err)
	doc := readDocxPart(t, data, "word/document.xml")

	headingRe := regexp.MustCompile(`<w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t xml:space="preserve">([^<]+)</w:t>`)
	var docxTitles []string
	for _, m := range headingRe.FindAllStringSubmatch(doc, -1) {
		docxTitles = append(docxTitles, m[1])
	}

	html, err := RenderHTML(cv, builtin(t, "classic"))
	require.NoError(t, err)
	h2Re := regexp.MustCompile(`<h2>([^<]+)</h2>`)
	var htmlTitles []string
	for _, m := range h2Re.FindAllStringSubmatch(html, -1) {
		htmlTitles = append(htmlTitles, m[1])
	}

	assert.ElementsMatch(t, htmlTitles, docxTitles)
}

func TestRenderDOCXEmptySectionsOmitted(t *testing.T) {
	cv := &domain.CV{PersonalInfo: domain.PersonalInfo{FirstName: "Ada", LastName: "Lovelace"}}
	data, err := RenderDOCX(cv)
	require.NoError(t, err)
	doc := readDocxPart(t, data, "word/document.xml")

	assert.NotContains(t, doc, "Heading1")
}

func TestRenderDOCXEscapesMarkup(t *testing.T) {
	cv := fullCV()
	cv.Summary = `Ship <fast> & "safe"`
	data, err := RenderDOCX(cv)
	require.NoError(t, err)
	doc := readDocxPart(t, data, "word/document.xml")

	assert.Contains(t, doc, "Ship &lt;fast&gt; &amp; &quot;safe&quot;")
	assert.NotContains(t, doc, "<fast>")
}

func TestRenderDOCXNilCV(t *testing.T) {
	_, err := RenderDOCX(nil)
	assert.Error(t, err)
}
