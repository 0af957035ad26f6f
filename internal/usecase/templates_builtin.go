package usecase

import "github.com/Hayal27/Cv-generator/internal/domain"

// The five built-in presentation definitions. They are seeded into the
// templates table at migration time and also compiled in here so the
// registry can serve them when the store is unavailable.
//
// Every template renders a section only when its backing collection or field
// is non-empty, and all of them use the canonical section titles so the PDF
// and DOCX exports stay aligned.

func BuiltinTemplates() []domain.Template {
	return []domain.Template{
		{
			ID:           "classic",
			Name:         "Classic Professional",
			Description:  "A timeless, clean design for traditional industries and corporate roles",
			Category:     "professional",
			HTMLTemplate: classicHTML,
			CSSStyles:    classicCSS,
			IsActive:     true,
		},
		{
			ID:           "modern",
			Name:         "Modern",
			Description:  "A contemporary two-column layout with skill level bars",
			Category:     "modern",
			HTMLTemplate: modernHTML,
			CSSStyles:    modernCSS,
			IsActive:     true,
		},
		{
			ID:           "executive",
			Name:         "Executive",
			Description:  "A sophisticated serif layout for senior and C-level positions",
			Category:     "professional",
			HTMLTemplate: executiveHTML,
			CSSStyles:    executiveCSS,
			IsActive:     true,
		},
		{
			ID:           "creative",
			Name:         "Creative Designer",
			Description:  "A vibrant template for designers, artists and creative professionals",
			Category:     "creative",
			HTMLTemplate: creativeHTML,
			CSSStyles:    creativeCSS,
			IsActive:     true,
		},
		{
			ID:           "minimal",
			Name:         "Tech Minimalist",
			Description:  "A clean, minimal design for developers and engineers",
			Category:     "modern",
			HTMLTemplate: minimalHTML,
			CSSStyles:    minimalCSS,
			IsActive:     true,
		},
	}
}

const classicHTML = `{{$pi := .PersonalInfo}}<div class="cv-container">
  <header class="cv-header">
    {{if $pi.ProfileImage}}<img src="{{$pi.ProfileImage}}" alt="Profile" class="profile-image">{{end}}
    <h1 class="name">{{$pi.FirstName}} {{$pi.LastName}}</h1>
    <div class="contact-info">
      {{if $pi.Email}}<div class="contact-item">{{$pi.Email}}</div>{{end}}
      {{if $pi.Phone}}<div class="contact-item">{{$pi.Phone}}</div>{{end}}
      {{with location $pi.City $pi.Country}}<div class="contact-item">{{.}}</div>{{end}}
      {{if $pi.LinkedIn}}<div class="contact-item">{{$pi.LinkedIn}}</div>{{end}}
      {{if $pi.Website}}<div class="contact-item">{{$pi.Website}}</div>{{end}}
      {{if $pi.GitHub}}<div class="contact-item">{{$pi.GitHub}}</div>{{end}}
    </div>
  </header>

  {{if .Summary}}
  <section class="cv-section">
    <h2>Professional Summary</h2>
    <p class="summary-text">{{.Summary}}</p>
  </section>
  {{end}}

  {{if .Experience}}
  <section class="cv-section">
    <h2>Work Experience</h2>
    {{range .Experience}}
    <div class="experience-item">
      <div class="job-header">
        <h3>{{.JobTitle}}</h3>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsCurrentJob}}</span>
      </div>
      <div class="company-info">{{.Company}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
      {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
      {{with filterBlank .Achievements}}
      <ul class="achievements">
        {{range .}}<li>{{.}}</li>{{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Projects}}
  <section class="cv-section">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="project-item">
      <div class="project-header">
        <h3>{{.Name}}</h3>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsOngoing}}</span>
      </div>
      {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
      {{if .Technologies}}<div class="technologies"><strong>Technologies:</strong> {{join .Technologies ", "}}</div>{{end}}
      {{with filterBlank .Highlights}}
      <ul class="highlights">
        {{range .}}<li>{{.}}</li>{{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Education}}
  <section class="cv-section">
    <h2>Education</h2>
    {{range .Education}}
    <div class="education-item">
      <div class="edu-header">
        <h3>{{.Degree}}{{if .FieldOfStudy}} in {{.FieldOfStudy}}{{end}}</h3>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsCurrentlyStudying}}</span>
      </div>
      <div class="institution">{{.Institution}}{{if .Location}}, {{.Location}}{{end}}</div>
      {{if .GPA}}<div class="gpa">GPA: {{.GPA}}</div>{{end}}
      {{with filterBlank .Achievements}}
      <ul class="achievements">
        {{range .}}<li>{{.}}</li>{{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Skills}}
  <section class="cv-section">
    <h2>Skills</h2>
    {{range groupSkills .Skills}}
    <div class="skill-category">
      <h4>{{.Category}}</h4>
      {{range .Skills}}
      <div class="skill-item">
        <span class="skill-name">{{.Name}}</span>
        <div class="skill-level-bar"><div class="skill-level-fill" style="width: {{skillWeight .Level}}%"></div></div>
      </div>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Certifications}}
  <section class="cv-section">
    <h2>Certifications</h2>
    {{range .Certifications}}
    <div class="certification-item">
      <h3>{{.Name}}</h3>
      <div class="issuer">{{.Issuer}}</div>
      <div class="date">{{formatDate .IssueDate}}{{if and .ExpiryDate (not .NeverExpires)}} &ndash; expires {{formatDate .ExpiryDate}}{{end}}</div>
      {{if .CredentialID}}<div class="credential">Credential ID: {{.CredentialID}}</div>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Achievements}}
  <section class="cv-section">
    <h2>Achievements</h2>
    {{range .Achievements}}
    <div class="achievement-item">
      <h3>{{.Title}}</h3>
      {{if .Organization}}<div class="organization">{{.Organization}}</div>{{end}}
      {{if .Date}}<div class="date">{{formatDate .Date}}</div>{{end}}
      {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
</div>`

const classicCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Georgia', 'Times New Roman', serif; line-height: 1.6; color: #333; font-size: 14px; }
.cv-container { max-width: 800px; margin: 0 auto; padding: 20px; }
.cv-header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #2c3e50; padding-bottom: 20px; }
.profile-image { width: 96px; height: 96px; border-radius: 50%; object-fit: cover; margin-bottom: 10px; }
.cv-header .name { font-size: 2.5em; color: #2c3e50; margin-bottom: 10px; font-weight: bold; }
.contact-info { display: flex; justify-content: center; gap: 20px; flex-wrap: wrap; }
.contact-item { font-size: 0.9em; color: #666; }
.cv-section { margin-bottom: 25px; page-break-inside: avoid; }
h2 { color: #2c3e50; border-bottom: 1px solid #bdc3c7; padding-bottom: 5px; margin-bottom: 15px; font-size: 1.3em; }
h3 { color: #34495e; margin-bottom: 5px; font-size: 1.1em; }
h4 { color: #34495e; margin-bottom: 8px; font-size: 1em; }
.experience-item, .education-item, .project-item { margin-bottom: 20px; page-break-inside: avoid; }
.job-header, .project-header, .edu-header { display: flex; justify-content: space-between; align-items: baseline; margin-bottom: 8px; }
.date-range { font-size: 0.9em; color: #666; font-style: italic; white-space: nowrap; }
.company-info, .institution { font-weight: bold; color: #7f8c8d; margin-bottom: 8px; }
.description { margin-bottom: 10px; text-align: justify; }
.achievements, .highlights { margin: 10px 0; padding-left: 20px; }
.achievements li, .highlights li { margin-bottom: 5px; }
.technologies { font-style: italic; color: #7f8c8d; margin: 8px 0; font-size: 0.9em; }
.skill-category { margin-bottom: 15px; }
.skill-item { display: flex; align-items: center; gap: 10px; margin-bottom: 6px; }
.skill-name { min-width: 140px; }
.skill-level-bar { flex: 1; height: 6px; background: #ecf0f1; border-radius: 3px; }
.skill-level-fill { height: 6px; background: #2c3e50; border-radius: 3px; }
.certification-item, .achievement-item { margin-bottom: 15px; page-break-inside: avoid; }
.issuer, .organization { color: #7f8c8d; font-weight: bold; font-size: 0.9em; }
.date { color: #666; font-size: 0.85em; font-style: italic; }
.credential { color: #666; font-size: 0.85em; }
.gpa { color: #666; font-size: 0.9em; }
@media print { body { font-size: 12px; } .cv-container { padding: 10px; } .cv-section { page-break-inside: avoid; } }`

const modernHTML = `{{$pi := .PersonalInfo}}<div class="cv-container">
  <header class="cv-header">
    <h1 class="name">{{$pi.FirstName}} {{$pi.LastName}}</h1>
    <div class="contact-info">
      {{if $pi.Email}}<span>{{$pi.Email}}</span>{{end}}
      {{if $pi.Phone}}<span>{{$pi.Phone}}</span>{{end}}
      {{with location $pi.City $pi.Country}}<span>{{.}}</span>{{end}}
      {{if $pi.LinkedIn}}<span>{{$pi.LinkedIn}}</span>{{end}}
      {{if $pi.GitHub}}<span>{{$pi.GitHub}}</span>{{end}}
    </div>
  </header>

  {{if .Summary}}
  <section class="cv-section">
    <h2>Professional Summary</h2>
    <p>{{.Summary}}</p>
  </section>
  {{end}}

  {{if .Experience}}
  <section class="cv-section">
    <h2>Work Experience</h2>
    {{range .Experience}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.JobTitle}}</h3>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsCurrentJob}}</span>
      </div>
      <div class="entry-sub">{{.Company}}{{if .Location}} &mdash; {{.Location}}{{end}}</div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{with filterBlank .Achievements}}
      <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Projects}}
  <section class="cv-section">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.Name}}</h3>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsOngoing}}</span>
      </div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{if .Technologies}}<div class="tags">{{range .Technologies}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
      {{with filterBlank .Highlights}}
      <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  <div class="two-column">
    <div class="left-column">
      {{if .Education}}
      <section class="cv-section">
        <h2>Education</h2>
        {{range .Education}}
        <div class="entry">
          <h3>{{.Degree}}</h3>
          <div class="entry-sub">{{if .FieldOfStudy}}{{.FieldOfStudy}} &middot; {{end}}{{.Institution}}</div>
          <div class="date-range">{{dateRange .StartDate .EndDate .IsCurrentlyStudying}}</div>
          {{if .GPA}}<div class="muted">GPA: {{.GPA}}</div>{{end}}
        </div>
        {{end}}
      </section>
      {{end}}

      {{if .Certifications}}
      <section class="cv-section">
        <h2>Certifications</h2>
        {{range .Certifications}}
        <div class="entry">
          <h3>{{.Name}}</h3>
          <div class="entry-sub">{{.Issuer}}</div>
          <div class="date-range">{{formatDate .IssueDate}}{{if and .ExpiryDate (not .NeverExpires)}} &ndash; {{formatDate .ExpiryDate}}{{end}}</div>
        </div>
        {{end}}
      </section>
      {{end}}
    </div>

    <div class="right-column">
      {{if .Skills}}
      <section class="cv-section">
        <h2>Skills</h2>
        {{range groupSkills .Skills}}
        <div class="skill-category">
          <h4>{{.Category}}</h4>
          {{range .Skills}}
          <div class="skill-row">
            <span class="skill-name">{{.Name}}</span>
            <div class="bar"><div class="fill" style="width: {{skillWeight .Level}}%"></div></div>
          </div>
          {{end}}
        </div>
        {{end}}
      </section>
      {{end}}

      {{if .Achievements}}
      <section class="cv-section">
        <h2>Achievements</h2>
        {{range .Achievements}}
        <div class="entry">
          <h3>{{.Title}}</h3>
          {{if .Organization}}<div class="entry-sub">{{.Organization}}</div>{{end}}
          {{if .Date}}<div class="date-range">{{formatDate .Date}}</div>{{end}}
          {{if .Description}}<p class="muted">{{.Description}}</p>{{end}}
        </div>
        {{end}}
      </section>
      {{end}}
    </div>
  </div>
</div>`

const modernCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Helvetica Neue', Arial, sans-serif; line-height: 1.5; color: #2d3436; font-size: 14px; }
.cv-container { max-width: 820px; margin: 0 auto; padding: 24px; }
.cv-header { border-left: 6px solid #0984e3; padding-left: 18px; margin-bottom: 28px; }
.cv-header .name { font-size: 2.4em; color: #0984e3; font-weight: 700; }
.contact-info { display: flex; flex-wrap: wrap; gap: 14px; color: #636e72; font-size: 0.9em; margin-top: 6px; }
.cv-section { margin-bottom: 22px; page-break-inside: avoid; }
h2 { color: #0984e3; text-transform: uppercase; letter-spacing: 1px; font-size: 1.05em; margin-bottom: 12px; }
h3 { font-size: 1.05em; color: #2d3436; }
h4 { font-size: 0.95em; color: #636e72; margin-bottom: 6px; }
.entry { margin-bottom: 16px; page-break-inside: avoid; }
.entry-head { display: flex; justify-content: space-between; align-items: baseline; }
.entry-sub { color: #636e72; font-weight: 600; margin-bottom: 4px; }
.date-range { color: #b2bec3; font-size: 0.85em; white-space: nowrap; }
.muted { color: #636e72; font-size: 0.9em; }
ul { padding-left: 18px; margin: 6px 0; }
li { margin-bottom: 4px; }
.tags { margin: 6px 0; }
.tag { display: inline-block; background: #dfe6e9; color: #2d3436; border-radius: 10px; padding: 2px 10px; margin: 0 6px 6px 0; font-size: 0.8em; }
.two-column { display: flex; gap: 28px; }
.left-column, .right-column { flex: 1; }
.skill-category { margin-bottom: 14px; }
.skill-row { display: flex; align-items: center; gap: 8px; margin-bottom: 5px; }
.skill-name { min-width: 110px; font-size: 0.9em; }
.bar { flex: 1; height: 5px; background: #dfe6e9; border-radius: 3px; }
.fill { height: 5px; background: #0984e3; border-radius: 3px; }
@media print { .two-column { display: block; } .left-column, .right-column { width: 100%; } }`

const executiveHTML = `{{$pi := .PersonalInfo}}<div class="cv-container">
  <header class="cv-header">
    <h1 class="name">{{$pi.FirstName}} {{$pi.LastName}}</h1>
    <div class="rule"></div>
    <div class="contact-info">
      {{if $pi.Email}}<span>{{$pi.Email}}</span>{{end}}
      {{if $pi.Phone}}<span>{{$pi.Phone}}</span>{{end}}
      {{with location $pi.City $pi.Country}}<span>{{.}}</span>{{end}}
      {{if $pi.LinkedIn}}<span>{{$pi.LinkedIn}}</span>{{end}}
    </div>
  </header>

  {{if .Summary}}
  <section class="cv-section">
    <h2>Professional Summary</h2>
    <p class="summary">{{.Summary}}</p>
  </section>
  {{end}}

  {{if .Experience}}
  <section class="cv-section">
    <h2>Work Experience</h2>
    {{range .Experience}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.JobTitle}}, <span class="company">{{.Company}}</span></h3>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsCurrentJob}}</span>
      </div>
      {{if .Location}}<div class="muted">{{.Location}}</div>{{end}}
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{with filterBlank .Achievements}}
      <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Projects}}
  <section class="cv-section">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.Name}}</h3>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsOngoing}}</span>
      </div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{if .Technologies}}<div class="muted">{{join .Technologies ", "}}</div>{{end}}
      {{with filterBlank .Highlights}}
      <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Education}}
  <section class="cv-section">
    <h2>Education</h2>
    {{range .Education}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.Degree}}{{if .FieldOfStudy}}, {{.FieldOfStudy}}{{end}}</h3>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsCurrentlyStudying}}</span>
      </div>
      <div class="muted">{{.Institution}}{{if .GPA}} &middot; GPA {{.GPA}}{{end}}</div>
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Skills}}
  <section class="cv-section">
    <h2>Skills</h2>
    {{range groupSkills .Skills}}
    <div class="skill-line"><strong>{{.Category}}:</strong>
      {{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s.Name}}{{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Certifications}}
  <section class="cv-section">
    <h2>Certifications</h2>
    {{range .Certifications}}
    <div class="entry">
      <h3>{{.Name}} <span class="muted">&mdash; {{.Issuer}}</span></h3>
      <div class="date-range">{{formatDate .IssueDate}}{{if and .ExpiryDate (not .NeverExpires)}} &ndash; {{formatDate .ExpiryDate}}{{end}}</div>
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Achievements}}
  <section class="cv-section">
    <h2>Achievements</h2>
    {{range .Achievements}}
    <div class="entry">
      <h3>{{.Title}}{{if .Organization}} <span class="muted">&mdash; {{.Organization}}</span>{{end}}</h3>
      {{if .Date}}<div class="date-range">{{formatDate .Date}}</div>{{end}}
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
</div>`

const executiveCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Garamond', 'Georgia', serif; line-height: 1.6; color: #1a1a1a; font-size: 14px; }
.cv-container { max-width: 780px; margin: 0 auto; padding: 30px; }
.cv-header { text-align: center; margin-bottom: 26px; }
.cv-header .name { font-size: 2.2em; letter-spacing: 3px; text-transform: uppercase; }
.rule { width: 120px; border-bottom: 2px solid #8c7851; margin: 10px auto; }
.contact-info { display: flex; justify-content: center; flex-wrap: wrap; gap: 16px; color: #555; font-size: 0.9em; }
.cv-section { margin-bottom: 24px; page-break-inside: avoid; }
h2 { font-size: 1.1em; letter-spacing: 2px; text-transform: uppercase; color: #8c7851; border-bottom: 1px solid #d9cfc0; padding-bottom: 4px; margin-bottom: 12px; }
h3 { font-size: 1.05em; }
.company { font-weight: normal; font-style: italic; }
.entry { margin-bottom: 14px; page-break-inside: avoid; }
.entry-head { display: flex; justify-content: space-between; align-items: baseline; }
.date-range { color: #777; font-size: 0.85em; font-style: italic; white-space: nowrap; }
.muted { color: #666; font-size: 0.92em; }
.summary { font-style: italic; }
ul { padding-left: 20px; margin: 6px 0; }
li { margin-bottom: 4px; }
.skill-line { margin-bottom: 6px; }
@media print { body { font-size: 12px; } .cv-section { page-break-inside: avoid; } }`

const creativeHTML = `{{$pi := .PersonalInfo}}<div class="cv-container">
  <header class="cv-header">
    {{if $pi.ProfileImage}}<img src="{{$pi.ProfileImage}}" alt="Profile" class="profile-image">{{end}}
    <div>
      <h1 class="name">{{$pi.FirstName}} {{$pi.LastName}}</h1>
      <div class="contact-info">
        {{if $pi.Email}}<span>{{$pi.Email}}</span>{{end}}
        {{if $pi.Phone}}<span>{{$pi.Phone}}</span>{{end}}
        {{with location $pi.City $pi.Country}}<span>{{.}}</span>{{end}}
        {{if $pi.Website}}<span>{{$pi.Website}}</span>{{end}}
      </div>
    </div>
  </header>

  {{if .Summary}}
  <section class="cv-section">
    <h2>Professional Summary</h2>
    <p class="summary">{{.Summary}}</p>
  </section>
  {{end}}

  {{if .Experience}}
  <section class="cv-section">
    <h2>Work Experience</h2>
    {{range .Experience}}
    <div class="card">
      <div class="card-head">
        <h3>{{.JobTitle}}</h3>
        <span class="pill">{{dateRange .StartDate .EndDate .IsCurrentJob}}</span>
      </div>
      <div class="card-sub">{{.Company}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{with filterBlank .Achievements}}
      <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Projects}}
  <section class="cv-section">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="card">
      <div class="card-head">
        <h3>{{.Name}}</h3>
        <span class="pill">{{dateRange .StartDate .EndDate .IsOngoing}}</span>
      </div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{if .Technologies}}<div class="tags">{{range .Technologies}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
      {{with filterBlank .Highlights}}
      <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Skills}}
  <section class="cv-section">
    <h2>Skills</h2>
    <div class="tags">
    {{range groupSkills .Skills}}
      {{range .Skills}}<span class="tag big">{{.Name}} &middot; {{.Level}}</span>{{end}}
    {{end}}
    </div>
  </section>
  {{end}}

  {{if .Education}}
  <section class="cv-section">
    <h2>Education</h2>
    {{range .Education}}
    <div class="card">
      <div class="card-head">
        <h3>{{.Degree}}{{if .FieldOfStudy}} in {{.FieldOfStudy}}{{end}}</h3>
        <span class="pill">{{dateRange .StartDate .EndDate .IsCurrentlyStudying}}</span>
      </div>
      <div class="card-sub">{{.Institution}}</div>
      {{if .GPA}}<div class="muted">GPA: {{.GPA}}</div>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Certifications}}
  <section class="cv-section">
    <h2>Certifications</h2>
    {{range .Certifications}}
    <div class="card">
      <h3>{{.Name}}</h3>
      <div class="card-sub">{{.Issuer}} &middot; {{formatDate .IssueDate}}{{if and .ExpiryDate (not .NeverExpires)}} &ndash; {{formatDate .ExpiryDate}}{{end}}</div>
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Achievements}}
  <section class="cv-section">
    <h2>Achievements</h2>
    {{range .Achievements}}
    <div class="card">
      <h3>{{.Title}}</h3>
      {{if .Organization}}<div class="card-sub">{{.Organization}}</div>{{end}}
      {{if .Date}}<div class="muted">{{formatDate .Date}}</div>{{end}}
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
</div>`

const creativeCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Trebuchet MS', 'Segoe UI', sans-serif; line-height: 1.5; color: #3d3d3d; font-size: 14px; }
.cv-container { max-width: 820px; margin: 0 auto; padding: 24px; }
.cv-header { display: flex; align-items: center; gap: 20px; background: linear-gradient(120deg, #a55eea, #fd79a8); color: #fff; border-radius: 14px; padding: 24px; margin-bottom: 26px; }
.profile-image { width: 84px; height: 84px; border-radius: 50%; object-fit: cover; border: 3px solid #fff; }
.cv-header .name { font-size: 2.2em; font-weight: 800; }
.contact-info { display: flex; flex-wrap: wrap; gap: 12px; font-size: 0.9em; margin-top: 8px; opacity: 0.95; }
.cv-section { margin-bottom: 24px; page-break-inside: avoid; }
h2 { color: #a55eea; font-size: 1.2em; margin-bottom: 12px; }
h3 { font-size: 1.05em; }
.card { background: #faf7fd; border-left: 4px solid #a55eea; border-radius: 8px; padding: 12px 14px; margin-bottom: 12px; page-break-inside: avoid; }
.card-head { display: flex; justify-content: space-between; align-items: baseline; }
.card-sub { color: #8e6aa8; font-weight: 600; margin-bottom: 4px; }
.pill { background: #a55eea; color: #fff; border-radius: 12px; padding: 2px 10px; font-size: 0.78em; white-space: nowrap; }
.muted { color: #777; font-size: 0.88em; }
.summary { background: #faf7fd; border-radius: 8px; padding: 12px; }
ul { padding-left: 18px; margin: 6px 0; }
li { margin-bottom: 4px; }
.tags { margin: 4px 0; }
.tag { display: inline-block; background: #f1e6fb; color: #6c3483; border-radius: 12px; padding: 3px 10px; margin: 0 6px 6px 0; font-size: 0.8em; }
.tag.big { font-size: 0.9em; padding: 5px 12px; }
@media print { .cv-header { -webkit-print-color-adjust: exact; print-color-adjust: exact; } }`

const minimalHTML = `{{$pi := .PersonalInfo}}<div class="cv-container">
  <header class="cv-header">
    <h1 class="name">{{$pi.FirstName}} {{$pi.LastName}}</h1>
    <div class="contact-info">
      {{if $pi.Email}}<span>{{$pi.Email}}</span>{{end}}
      {{if $pi.GitHub}}<span>{{$pi.GitHub}}</span>{{end}}
      {{if $pi.LinkedIn}}<span>{{$pi.LinkedIn}}</span>{{end}}
      {{if $pi.Phone}}<span>{{$pi.Phone}}</span>{{end}}
      {{with location $pi.City $pi.Country}}<span>{{.}}</span>{{end}}
    </div>
  </header>

  {{if .Summary}}
  <section class="cv-section">
    <h2>Professional Summary</h2>
    <p>{{.Summary}}</p>
  </section>
  {{end}}

  {{if .Experience}}
  <section class="cv-section">
    <h2>Work Experience</h2>
    {{range .Experience}}
    <div class="entry">
      <div class="entry-head">
        <span><strong>{{.JobTitle}}</strong> @ {{.Company}}</span>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsCurrentJob}}</span>
      </div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{with filterBlank .Achievements}}
      <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Projects}}
  <section class="cv-section">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <div class="entry-head">
        <span><strong>{{.Name}}</strong>{{if .GitHubURL}} &middot; {{.GitHubURL}}{{end}}</span>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsOngoing}}</span>
      </div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      {{if .Technologies}}<div class="mono">[{{join .Technologies ", "}}]</div>{{end}}
      {{with filterBlank .Highlights}}
      <ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Skills}}
  <section class="cv-section">
    <h2>Skills</h2>
    {{range groupSkills .Skills}}
    <div class="entry"><span class="mono">{{.Category}}:</span>
      {{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s.Name}}{{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Education}}
  <section class="cv-section">
    <h2>Education</h2>
    {{range .Education}}
    <div class="entry">
      <div class="entry-head">
        <span><strong>{{.Degree}}</strong>{{if .FieldOfStudy}}, {{.FieldOfStudy}}{{end}} &middot; {{.Institution}}</span>
        <span class="date-range">{{dateRange .StartDate .EndDate .IsCurrentlyStudying}}</span>
      </div>
      {{if .GPA}}<div class="mono">GPA {{.GPA}}</div>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Certifications}}
  <section class="cv-section">
    <h2>Certifications</h2>
    {{range .Certifications}}
    <div class="entry">
      <div class="entry-head">
        <span><strong>{{.Name}}</strong> &middot; {{.Issuer}}</span>
        <span class="date-range">{{formatDate .IssueDate}}{{if and .ExpiryDate (not .NeverExpires)}} &ndash; {{formatDate .ExpiryDate}}{{end}}</span>
      </div>
    </div>
    {{end}}
  </section>
  {{end}}

  {{if .Achievements}}
  <section class="cv-section">
    <h2>Achievements</h2>
    {{range .Achievements}}
    <div class="entry">
      <div class="entry-head">
        <span><strong>{{.Title}}</strong>{{if .Organization}} &middot; {{.Organization}}{{end}}</span>
        {{if .Date}}<span class="date-range">{{formatDate .Date}}</span>{{end}}
      </div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  </section>
  {{end}}
</div>`

const minimalCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Inter', 'Helvetica Neue', sans-serif; line-height: 1.55; color: #111; font-size: 13px; }
.cv-container { max-width: 760px; margin: 0 auto; padding: 28px; }
.cv-header { margin-bottom: 24px; }
.cv-header .name { font-size: 1.9em; font-weight: 700; letter-spacing: -0.5px; }
.contact-info { display: flex; flex-wrap: wrap; gap: 12px; color: #555; font-size: 0.9em; margin-top: 4px; }
.cv-section { margin-bottom: 20px; page-break-inside: avoid; }
h2 { font-size: 0.85em; text-transform: uppercase; letter-spacing: 2px; color: #888; margin-bottom: 10px; }
.entry { margin-bottom: 12px; page-break-inside: avoid; }
.entry-head { display: flex; justify-content: space-between; align-items: baseline; gap: 12px; }
.date-range { color: #999; font-size: 0.85em; white-space: nowrap; }
.mono { font-family: 'SF Mono', 'Fira Code', monospace; font-size: 0.85em; color: #555; margin: 2px 0; }
ul { padding-left: 16px; margin: 4px 0; }
li { margin-bottom: 3px; }
p { margin: 4px 0; }
@media print { body { font-size: 11.5px; } }`
