package domain

import "time"

// Template is a named presentation definition: html/template markup plus a
// stylesheet, parameterized over the CV fields. Built-ins are seeded at
// migration time; custom ones can be inserted without code changes.
type Template struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	HTMLTemplate string    `json:"htmlTemplate"`
	CSSStyles    string    `json:"cssStyles"`
	PreviewImage string    `json:"previewImage,omitempty"`
	IsActive     bool      `json:"isActive"`
	UsageCount   int       `json:"usageCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultTemplateID is used when a CV is saved without an explicit template.
const DefaultTemplateID = "classic"
