package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonalInfo is the header block of a CV. FirstName, LastName and Email
// are the only fields validation requires; everything else may be empty.
type PersonalInfo struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	LinkedIn     string `json:"linkedIn,omitempty"`
	Website      string `json:"website,omitempty"`
	GitHub       string `json:"github,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type Experience struct {
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	IsCurrentJob bool     `json:"isCurrentJob"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Degree              string   `json:"degree"`
	FieldOfStudy        string   `json:"fieldOfStudy"`
	Institution         string   `json:"institution"`
	Location            string   `json:"location,omitempty"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate,omitempty"`
	IsCurrentlyStudying bool     `json:"isCurrentlyStudying"`
	GPA                 string   `json:"gpa,omitempty"`
	Achievements        []string `json:"achievements"`
}

type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	IsOngoing    bool     `json:"isOngoing"`
	ProjectURL   string   `json:"projectUrl,omitempty"`
	GitHubURL    string   `json:"githubUrl,omitempty"`
	Highlights   []string `json:"highlights"`
}

type Certification struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issueDate"`
	ExpiryDate    string `json:"expiryDate,omitempty"`
	NeverExpires  bool   `json:"neverExpires"`
	CredentialID  string `json:"credentialId,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`
}

type Achievement struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Date         string `json:"date,omitempty"`
	Category     string `json:"category"`
	Organization string `json:"organization,omitempty"`
}

// CV is the root aggregate: the canonical structured resume record.
// Dates inside entries use year-month granularity ("2006-01").
type CV struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	Title          string          `json:"title"`
	TemplateID     string          `json:"templateId"`
	IsPublic       bool            `json:"isPublic"`
	Summary        string          `json:"summary"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	LastModified   time.Time       `json:"lastModified"`
}

// Normalize replaces nil collections with empty ones so downstream code
// only ever branches on emptiness, never on absence.
func (c *CV) Normalize() {
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Skills == nil {
		c.Skills = []Skill{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	if c.Certifications == nil {
		c.Certifications = []Certification{}
	}
	if c.Achievements == nil {
		c.Achievements = []Achievement{}
	}
	for i := range c.Experience {
		if c.Experience[i].Achievements == nil {
			c.Experience[i].Achievements = []string{}
		}
	}
	for i := range c.Education {
		if c.Education[i].Achievements == nil {
			c.Education[i].Achievements = []string{}
		}
	}
	for i := range c.Projects {
		if c.Projects[i].Technologies == nil {
			c.Projects[i].Technologies = []string{}
		}
		if c.Projects[i].Highlights == nil {
			c.Projects[i].Highlights = []string{}
		}
	}
}
