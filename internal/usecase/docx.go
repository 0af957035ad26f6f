package usecase

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/Hayal27/Cv-generator/internal/domain"
)

// The DOCX path deliberately re-derives the document from the CV data model
// instead of reusing the HTML output: the two target formats have different
// layout models (flow/CSS vs paragraph/run) and must not leak into each
// other. Only the formatting rules in dates.go are shared.
//
// The container is assembled by hand: a zip with the minimal OOXML parts a
// word processor needs. Output is byte-deterministic for identical input.

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func esc(s string) string { return xmlEscaper.Replace(s) }

// docRun is one styled text run inside a paragraph.
type docRun struct {
	text   string
	bold   bool
	italic bool
	brk    bool // emit a line break before the text
}

func (r docRun) xml() string {
	var b strings.Builder
	b.WriteString("<w:r>")
	if r.bold || r.italic {
		b.WriteString("<w:rPr>")
		if r.bold {
			b.WriteString("<w:b/>")
		}
		if r.italic {
			b.WriteString("<w:i/>")
		}
		b.WriteString("</w:rPr>")
	}
	if r.brk {
		b.WriteString("<w:br/>")
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(esc(r.text))
	b.WriteString("</w:t></w:r>")
	return b.String()
}

// docBuilder accumulates the body of word/document.xml.
type docBuilder struct {
	body strings.Builder
}

func (d *docBuilder) styledPara(style, text string) {
	d.body.WriteString(`<w:p><w:pPr><w:pStyle w:val="`)
	d.body.WriteString(style)
	d.body.WriteString(`"/></w:pPr>`)
	d.body.WriteString(docRun{text: text}.xml())
	d.body.WriteString("</w:p>")
}

func (d *docBuilder) title(text string)   { d.styledPara("Title", text) }
func (d *docBuilder) heading(text string) { d.styledPara("Heading1", text) }

func (d *docBuilder) para(runs ...docRun) {
	d.body.WriteString("<w:p>")
	for _, r := range runs {
		d.body.WriteString(r.xml())
	}
	d.body.WriteString("</w:p>")
}

func (d *docBuilder) text(s string) {
	d.para(docRun{text: s})
}

func (d *docBuilder) bullet(s string) {
	d.para(docRun{text: "• "}, docRun{text: s})
}

// RenderDOCX walks the CV data model and serializes it as a DOCX byte
// stream in one pass. Sections follow the same emptiness rules and
// formatting as the HTML renderer.
func RenderDOCX(cv *domain.CV) ([]byte, error) {
	if cv == nil {
		return nil, fmt.Errorf("docx: nil cv")
	}
	cv.Normalize()

	var d docBuilder
	pi := cv.PersonalInfo

	d.title(strings.TrimSpace(pi.FirstName + " " + pi.LastName))

	contact := []docRun{{text: "Email: " + orNA(pi.Email)}}
	contact = append(contact, docRun{text: "Phone: " + orNA(pi.Phone), brk: true})
	contact = append(contact, docRun{text: "LinkedIn: " + orNA(pi.LinkedIn), brk: true})
	if loc := Location(pi.City, pi.Country); loc != "" {
		contact = append(contact, docRun{text: "Location: " + loc, brk: true})
	}
	d.para(contact...)

	if strings.TrimSpace(cv.Summary) != "" {
		d.heading("Professional Summary")
		d.text(cv.Summary)
	}

	if len(cv.Experience) > 0 {
		d.heading("Work Experience")
		for _, exp := range cv.Experience {
			d.para(
				docRun{text: exp.JobTitle, bold: true},
				docRun{text: " at " + exp.Company},
				docRun{text: " (" + FormatDateRange(exp.StartDate, exp.EndDate, exp.IsCurrentJob) + ")", italic: true},
			)
			if exp.Location != "" {
				d.text("Location: " + exp.Location)
			}
			if exp.Description != "" {
				d.text(exp.Description)
			}
			for _, a := range FilterBlank(exp.Achievements) {
				d.bullet(a)
			}
		}
	}

	if len(cv.Projects) > 0 {
		d.heading("Projects")
		for _, p := range cv.Projects {
			d.para(
				docRun{text: p.Name, bold: true},
				docRun{text: " (" + FormatDateRange(p.StartDate, p.EndDate, p.IsOngoing) + ")", italic: true},
			)
			if p.Description != "" {
				d.text(p.Description)
			}
			if len(p.Technologies) > 0 {
				d.para(
					docRun{text: "Technologies: ", bold: true},
					docRun{text: strings.Join(p.Technologies, ", ")},
				)
			}
			for _, h := range FilterBlank(p.Highlights) {
				d.bullet(h)
			}
		}
	}

	if len(cv.Education) > 0 {
		d.heading("Education")
		for _, edu := range cv.Education {
			runs := []docRun{{text: edu.Degree, bold: true}}
			if edu.FieldOfStudy != "" {
				runs = append(runs, docRun{text: " in " + edu.FieldOfStudy})
			}
			runs = append(runs,
				docRun{text: "from " + edu.Institution, brk: true},
				docRun{text: FormatDateRange(edu.StartDate, edu.EndDate, edu.IsCurrentlyStudying), italic: true, brk: true},
			)
			if edu.GPA != "" {
				runs = append(runs, docRun{text: " | GPA: " + edu.GPA})
			}
			d.para(runs...)
			for _, a := range FilterBlank(edu.Achievements) {
				d.bullet(a)
			}
		}
	}

	if len(cv.Skills) > 0 {
		d.heading("Skills")
		for _, group := range GroupSkills(cv.Skills) {
			names := make([]string, 0, len(group.Skills))
			for _, s := range group.Skills {
				names = append(names, s.Name)
			}
			d.para(
				docRun{text: group.Category + ": ", bold: true},
				docRun{text: strings.Join(names, ", ")},
			)
		}
	}

	if len(cv.Certifications) > 0 {
		d.heading("Certifications")
		for _, cert := range cv.Certifications {
			runs := []docRun{
				{text: cert.Name, bold: true},
				{text: " - " + cert.Issuer},
				{text: " (" + FormatDate(cert.IssueDate) + ")", italic: true},
			}
			if cert.ExpiryDate != "" && !cert.NeverExpires {
				runs = append(runs, docRun{text: " expires " + FormatDate(cert.ExpiryDate), italic: true})
			}
			d.para(runs...)
		}
	}

	if len(cv.Achievements) > 0 {
		d.heading("Achievements")
		for _, a := range cv.Achievements {
			runs := []docRun{{text: a.Title, bold: true}}
			if a.Organization != "" {
				runs = append(runs, docRun{text: " - " + a.Organization})
			}
			if a.Date != "" {
				runs = append(runs, docRun{text: " (" + FormatDate(a.Date) + ")", italic: true})
			}
			d.para(runs...)
			if a.Description != "" {
				d.text(a.Description)
			}
		}
	}

	return packDocx(d.body.String())
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// packDocx wraps the document body in the OOXML container parts and zips
// them. zip.Writer.Create leaves file times zero, which keeps the output
// byte-identical across calls.
func packDocx(body string) ([]byte, error) {
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body +
		`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1134" w:right="850" w:bottom="1134" w:left="850"/></w:sectPr>` +
		`</w:body></w:document>`

	parts := []struct {
		name, content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", documentXML},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("docx: create %s: %w", p.name, err)
		}
		if _, err := f.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("docx: write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: close container: %w", err)
	}
	return buf.Bytes(), nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:style w:type="paragraph" w:styleId="Title">` +
	`<w:name w:val="Title"/>` +
	`<w:pPr><w:spacing w:after="200"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="52"/></w:rPr>` +
	`</w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1">` +
	`<w:name w:val="heading 1"/>` +
	`<w:pPr><w:spacing w:before="200" w:after="100"/></w:pPr>` +
	`<w:rPr><w:b/><w:sz w:val="32"/></w:rPr>` +
	`</w:style>` +
	`</w:styles>`
