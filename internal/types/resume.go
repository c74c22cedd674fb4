// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Template identifiers for the fixed set of rendering templates.
const (
	TemplateClassic = "template1"
	TemplateModern  = "template2"
	TemplateMinimal = "template3"
)

// DefaultTemplate is used when a record does not name a template.
const DefaultTemplate = TemplateClassic

// DefaultTitle is the placeholder used when the holder's name field is empty at save time.
const DefaultTitle = "Untitled Resume"

// ValidTemplate reports whether id is a member of the fixed template set.
func ValidTemplate(id string) bool {
	switch id {
	case TemplateClassic, TemplateModern, TemplateMinimal:
		return true
	}
	return false
}

// ResumeRecord represents one persisted resume: identity, payload, template choice, timestamps.
// Field names are a wire contract; saved data from earlier versions must keep loading.
type ResumeRecord struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Data      ResumeData `json:"data"`
	Template  string     `json:"template"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ResumeData is the full structured resume payload.
type ResumeData struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin" validate:"omitempty,url"`
	Website  string `json:"website" validate:"omitempty,url"`
	GitHub   string `json:"github" validate:"omitempty,url"`
	Summary  string `json:"summary"`

	Education      []EducationEntry     `json:"education"`
	Experience     []ExperienceEntry    `json:"experience"`
	Skills         []string             `json:"skills"`
	Projects       []ProjectEntry       `json:"projects"`
	Certifications []CertificationEntry `json:"certifications"`
	Languages      []LanguageEntry      `json:"languages"`
}

// EducationEntry is a plain attribute bag; order within ResumeData is insertion order.
type EducationEntry struct {
	Degree   string `json:"degree"`
	Major    string `json:"major"`
	School   string `json:"school"`
	Location string `json:"location"`
	Year     string `json:"year"`
	GPA      string `json:"gpa"`
	Honors   string `json:"honors"`
}

// ExperienceEntry describes one work engagement.
type ExperienceEntry struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ProjectEntry describes one project.
type ProjectEntry struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
}

// CertificationEntry describes one certification.
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// LanguageEntry describes one spoken language and proficiency.
type LanguageEntry struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Clone returns a deep copy of the record. Entry types contain only value
// fields, so copying the slices is sufficient.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	out.Data = r.Data.Clone()
	return out
}

// Clone returns a deep copy of the payload.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Experience = append([]ExperienceEntry(nil), d.Experience...)
	out.Skills = append([]string(nil), d.Skills...)
	out.Projects = append([]ProjectEntry(nil), d.Projects...)
	out.Certifications = append([]CertificationEntry(nil), d.Certifications...)
	out.Languages = append([]LanguageEntry(nil), d.Languages...)
	return out
}

// DeriveTitle returns the record title for a payload: the holder's name, or the
// placeholder when the name field is empty.
func (d ResumeData) DeriveTitle() string {
	if d.FullName == "" {
		return DefaultTitle
	}
	return d.FullName
}
