package usecase

import (
	"strings"
	"time"

	"github.com/Hayal27/Cv-generator/internal/domain"
)

// Formatting rules shared by the HTML and DOCX paths. The two exporters share
// no rendering code, so keeping these in one place is what keeps the formats
// semantically aligned.

// FormatDate renders a "2006-01" value as "Jan 2006". Anything that does not
// parse renders as an empty string, never as an error.
func FormatDate(yearMonth string) string {
	yearMonth = strings.TrimSpace(yearMonth)
	if yearMonth == "" {
		return ""
	}
	t, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2006")
}

// FormatDateRange renders "{start} - {end}" where the end label is "Present"
// iff ongoing is true, regardless of the stored end date.
func FormatDateRange(startDate, endDate string, ongoing bool) string {
	start := FormatDate(startDate)
	end := "Present"
	if !ongoing {
		end = FormatDate(endDate)
	}
	return start + " - " + end
}

// SkillWeight maps a proficiency level to the visual weight used by level
// bars. Unrecognized levels fall back to 50 rather than failing.
func SkillWeight(level string) int {
	switch level {
	case "Beginner":
		return 25
	case "Intermediate":
		return 50
	case "Advanced":
		return 75
	case "Expert":
		return 100
	default:
		return 50
	}
}

// FilterBlank drops whitespace-only strings so they never produce a bullet.
func FilterBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// SkillGroup is one display group of skills sharing a category label.
type SkillGroup struct {
	Category string
	Skills   []domain.Skill
}

// GroupSkills buckets skills by category, preserving first-seen category
// order and the original skill order within each category.
func GroupSkills(skills []domain.Skill) []SkillGroup {
	index := map[string]int{}
	groups := []SkillGroup{}
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// Location joins city and country, skipping empty parts.
func Location(city, country string) string {
	parts := []string{}
	if strings.TrimSpace(city) != "" {
		parts = append(parts, city)
	}
	if strings.TrimSpace(country) != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}
