package render

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// HTML renders a record's payload into display markup for its template id.
// Unknown template ids are an error; the set is fixed and callers are
// expected to validate membership first.
func HTML(rec types.ResumeRecord) (string, error) {
	tmpl, ok := templates[rec.Template]
	if !ok {
		return "", &Error{Message: "unknown template " + rec.Template}
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, rec.Data); err != nil {
		return "", &Error{Message: "template execution failed", Cause: err}
	}
	return sb.String(), nil
}

// Document wraps rendered markup in a minimal printable HTML page.
func Document(title, body string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	template.HTMLEscape(&sb, []byte(title))
	sb.WriteString("</title>\n</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("\n</body>\n</html>\n")
	return sb.String()
}

var templates map[string]*template.Template

func init() {
	templates = map[string]*template.Template{
		types.TemplateClassic: template.Must(template.New(types.TemplateClassic).Parse(classicTemplate)),
		types.TemplateModern:  template.Must(template.New(types.TemplateModern).Parse(modernTemplate)),
		types.TemplateMinimal: template.Must(template.New(types.TemplateMinimal).Parse(minimalTemplate)),
	}
}

// classicTemplate mirrors the "Classic Professional" layout: centered header,
// titled sections with date columns.
const classicTemplate = `<div class="resume-template template1-design">
<div class="resume-header">
<h1 class="resume-name">{{if .FullName}}{{.FullName}}{{else}}Your Name{{end}}</h1>
<div class="contact-info">
{{if .Email}}<span>{{.Email}}</span>{{end}}
{{if .Phone}}<span>{{.Phone}}</span>{{end}}
{{if .Location}}<span>{{.Location}}</span>{{end}}
</div>
</div>
{{if .Summary}}<div class="resume-section"><h2 class="section-title">Summary</h2><p>{{.Summary}}</p></div>{{end}}
{{if .Education}}<div class="resume-section">
<h2 class="section-title">Education</h2>
{{range .Education}}<div class="section-item">
<div class="item-header"><h3>{{if .Degree}}{{.Degree}}{{else}}Degree{{end}}</h3><span class="item-date">{{.Year}}</span></div>
<p class="item-subtitle">{{if .School}}{{.School}}{{else}}School/University{{end}}</p>
{{if .Major}}<p class="item-detail">Major: {{.Major}}</p>{{end}}
{{if .GPA}}<p class="item-detail">GPA: {{.GPA}}</p>{{end}}
{{if .Honors}}<p class="item-detail">{{.Honors}}</p>{{end}}
</div>{{end}}
</div>{{end}}
{{if .Experience}}<div class="resume-section">
<h2 class="section-title">Experience</h2>
{{range .Experience}}<div class="section-item">
<div class="item-header"><h3>{{.Position}}</h3><span class="item-date">{{.Duration}}</span></div>
<p class="item-subtitle">{{.Company}}{{if .Location}} &mdash; {{.Location}}{{end}}</p>
{{if .Description}}<p class="item-detail">{{.Description}}</p>{{end}}
</div>{{end}}
</div>{{end}}
{{if .Skills}}<div class="resume-section">
<h2 class="section-title">Skills</h2>
<ul class="skill-list">{{range .Skills}}<li>{{.}}</li>{{end}}</ul>
</div>{{end}}
{{if .Projects}}<div class="resume-section">
<h2 class="section-title">Projects</h2>
{{range .Projects}}<div class="section-item">
<h3>{{.Name}}</h3>
{{if .Description}}<p class="item-detail">{{.Description}}</p>{{end}}
{{if .Technologies}}<p class="item-detail">Technologies: {{.Technologies}}</p>{{end}}
{{if .Link}}<p class="item-detail"><a href="{{.Link}}">{{.Link}}</a></p>{{end}}
</div>{{end}}
</div>{{end}}
{{if .Certifications}}<div class="resume-section">
<h2 class="section-title">Certifications</h2>
{{range .Certifications}}<div class="section-item"><h3>{{.Name}}</h3><p class="item-subtitle">{{.Issuer}}{{if .Date}} &middot; {{.Date}}{{end}}</p></div>{{end}}
</div>{{end}}
{{if .Languages}}<div class="resume-section">
<h2 class="section-title">Languages</h2>
<ul class="language-list">{{range .Languages}}<li>{{.Name}}{{if .Proficiency}} ({{.Proficiency}}){{end}}</li>{{end}}</ul>
</div>{{end}}
</div>`

// modernTemplate: sidebar with contact and skills, main column with the rest.
const modernTemplate = `<div class="resume-template template2-design">
<div class="resume-sidebar">
<h1 class="resume-name">{{if .FullName}}{{.FullName}}{{else}}Your Name{{end}}</h1>
<div class="contact-info">
{{if .Email}}<p>{{.Email}}</p>{{end}}
{{if .Phone}}<p>{{.Phone}}</p>{{end}}
{{if .Location}}<p>{{.Location}}</p>{{end}}
{{if .LinkedIn}}<p><a href="{{.LinkedIn}}">LinkedIn</a></p>{{end}}
{{if .GitHub}}<p><a href="{{.GitHub}}">GitHub</a></p>{{end}}
{{if .Website}}<p><a href="{{.Website}}">Website</a></p>{{end}}
</div>
{{if .Skills}}<div class="sidebar-section"><h2 class="section-title">Skills</h2>
<ul class="skill-list">{{range .Skills}}<li>{{.}}</li>{{end}}</ul></div>{{end}}
{{if .Languages}}<div class="sidebar-section"><h2 class="section-title">Languages</h2>
<ul class="language-list">{{range .Languages}}<li>{{.Name}}{{if .Proficiency}} ({{.Proficiency}}){{end}}</li>{{end}}</ul></div>{{end}}
</div>
<div class="resume-main">
{{if .Summary}}<div class="resume-section"><h2 class="section-title">About</h2><p>{{.Summary}}</p></div>{{end}}
{{if .Experience}}<div class="resume-section"><h2 class="section-title">Experience</h2>
{{range .Experience}}<div class="section-item">
<h3>{{.Position}}</h3>
<p class="item-subtitle">{{.Company}}{{if .Duration}} &middot; {{.Duration}}{{end}}</p>
{{if .Description}}<p class="item-detail">{{.Description}}</p>{{end}}
</div>{{end}}</div>{{end}}
{{if .Education}}<div class="resume-section"><h2 class="section-title">Education</h2>
{{range .Education}}<div class="section-item">
<h3>{{.Degree}}</h3>
<p class="item-subtitle">{{.School}}{{if .Year}} &middot; {{.Year}}{{end}}</p>
{{if .Major}}<p class="item-detail">{{.Major}}</p>{{end}}
</div>{{end}}</div>{{end}}
{{if .Projects}}<div class="resume-section"><h2 class="section-title">Projects</h2>
{{range .Projects}}<div class="section-item"><h3>{{.Name}}</h3>{{if .Description}}<p class="item-detail">{{.Description}}</p>{{end}}</div>{{end}}</div>{{end}}
{{if .Certifications}}<div class="resume-section"><h2 class="section-title">Certifications</h2>
{{range .Certifications}}<p class="item-detail">{{.Name}}{{if .Issuer}} &mdash; {{.Issuer}}{{end}}</p>{{end}}</div>{{end}}
</div>
</div>`

// minimalTemplate: single column, no decoration.
const minimalTemplate = `<div class="resume-template template3-design">
<h1 class="resume-name">{{if .FullName}}{{.FullName}}{{else}}Your Name{{end}}</h1>
<p class="contact-line">{{.Email}}{{if .Phone}} | {{.Phone}}{{end}}{{if .Location}} | {{.Location}}{{end}}</p>
{{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
{{if .Experience}}<h2 class="section-title">Experience</h2>
{{range .Experience}}<div class="section-item">
<p><strong>{{.Position}}</strong>, {{.Company}}{{if .Duration}} ({{.Duration}}){{end}}</p>
{{if .Description}}<p class="item-detail">{{.Description}}</p>{{end}}
</div>{{end}}{{end}}
{{if .Education}}<h2 class="section-title">Education</h2>
{{range .Education}}<p>{{.Degree}}{{if .Major}}, {{.Major}}{{end}} &mdash; {{.School}}{{if .Year}}, {{.Year}}{{end}}</p>{{end}}{{end}}
{{if .Skills}}<h2 class="section-title">Skills</h2>
<p class="skill-line">{{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>{{end}}
{{if .Projects}}<h2 class="section-title">Projects</h2>
{{range .Projects}}<p><strong>{{.Name}}</strong>{{if .Description}}: {{.Description}}{{end}}</p>{{end}}{{end}}
{{if .Certifications}}<h2 class="section-title">Certifications</h2>
{{range .Certifications}}<p>{{.Name}}{{if .Issuer}} ({{.Issuer}}){{end}}</p>{{end}}{{end}}
{{if .Languages}}<h2 class="section-title">Languages</h2>
<p class="language-line">{{range $i, $l := .Languages}}{{if $i}}, {{end}}{{$l.Name}}{{end}}</p>{{end}}
</div>`
