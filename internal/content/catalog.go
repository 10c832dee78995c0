package content

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNotFound is returned when a project or service lookup misses.
var ErrNotFound = errors.New("content: not found")

const summaryLength = 80

// Summary is the card-length teaser of the project description.
func (p Project) Summary() string {
	r := []rune(p.Description)
	if len(r) > summaryLength {
		r = r[:summaryLength]
	}
	return string(r) + "..."
}

// Slug is the URL-safe form of the service title, e.g. "UI/UX Design" -> "ui-ux-design".
func (s Service) Slug() string {
	return Slugify(s.Title)
}

// Slugify lowercases s and collapses every run of non-alphanumerics into a single dash.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Project returns the project with the given id.
func (c *Catalog) Project(id int) (Project, error) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("project %d: %w", id, ErrNotFound)
}

// Service returns the service whose slug matches.
func (c *Catalog) Service(slug string) (Service, error) {
	for _, s := range c.Services {
		if s.Slug() == slug {
			return s, nil
		}
	}
	return Service{}, fmt.Errorf("service %q: %w", slug, ErrNotFound)
}

// TechTrack returns the badges twice in a row so the scroller can loop
// without a visible seam.
func (c *Catalog) TechTrack() []TechBadge {
	track := make([]TechBadge, 0, 2*len(c.Tech))
	track = append(track, c.Tech...)
	return append(track, c.Tech...)
}

// Validate checks identity constraints on the catalog.
func (c *Catalog) Validate() error {
	ids := make(map[int]bool, len(c.Projects))
	for _, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("project %d has no title", p.ID)
		}
		if ids[p.ID] {
			return fmt.Errorf("duplicate project id %d", p.ID)
		}
		ids[p.ID] = true
	}
	slugs := make(map[string]bool, len(c.Services))
	for _, s := range c.Services {
		slug := s.Slug()
		if slug == "" {
			return fmt.Errorf("service %q has an empty slug", s.Title)
		}
		if slugs[slug] {
			return fmt.Errorf("duplicate service slug %q", slug)
		}
		slugs[slug] = true
	}
	for _, s := range c.Skills {
		if s.Percent < 0 || s.Percent > 100 {
			return fmt.Errorf("skill %q: percent %d out of range", s.Name, s.Percent)
		}
	}
	return nil
}

// fillSkillPercents gives unset skills the descending 95, 90, 85... scale.
func (c *Catalog) fillSkillPercents() {
	for i := range c.Skills {
		if c.Skills[i].Percent == 0 {
			c.Skills[i].Percent = 95 - 5*i
		}
	}
}
