package content

import (
	"strings"

	"github.com/pkg/errors"
)

var validColors = map[string]struct{}{
	"primary":   {},
	"secondary": {},
	"accent":    {},
}

// Validate checks the partition for the invariants lookups depend on: unique
// non-empty ids per collection and well-formed status and color values.
func (p Partition) Validate() error {
	if strings.TrimSpace(p.Personal.Name.Full) == "" {
		return errors.New("personal.json: name.full is required")
	}
	if cv := p.Personal.CV; cv != nil && strings.TrimSpace(cv.Title) == "" {
		return errors.New("personal.json: cv.title is required when cv is set")
	}

	seen := map[string]struct{}{}
	for i, fp := range p.Projects.Featured {
		if err := checkID("projects.json: featured", i, fp.ID, seen); err != nil {
			return err
		}
		if strings.TrimSpace(fp.Title) == "" {
			return errors.Errorf("projects.json: featured %q has no title", fp.ID)
		}
		if fp.Status != StatusActive && fp.Status != StatusInactive {
			return errors.Errorf("projects.json: featured %q has invalid status %q", fp.ID, fp.Status)
		}
		if err := checkColor("projects.json: featured", fp.ID, fp.Color); err != nil {
			return err
		}
	}

	seen = map[string]struct{}{}
	for i, op := range p.Projects.OpenSource {
		if err := checkID("projects.json: openSource", i, op.ID, seen); err != nil {
			return err
		}
		if strings.TrimSpace(op.Name) == "" {
			return errors.Errorf("projects.json: openSource %q has no name", op.ID)
		}
	}

	seen = map[string]struct{}{}
	for i, w := range p.Experience.Work {
		if err := checkID("experience.json: work", i, w.ID, seen); err != nil {
			return err
		}
		if strings.TrimSpace(w.Title) == "" || strings.TrimSpace(w.Company) == "" {
			return errors.Errorf("experience.json: work %q needs title and company", w.ID)
		}
	}

	seen = map[string]struct{}{}
	for i, e := range p.Experience.Education {
		if err := checkID("experience.json: education", i, e.ID, seen); err != nil {
			return err
		}
		if strings.TrimSpace(e.Title) == "" {
			return errors.Errorf("experience.json: education %q has no title", e.ID)
		}
	}

	seen = map[string]struct{}{}
	for i, c := range p.Skills.Categories {
		if err := checkID("skills.json: categories", i, c.ID, seen); err != nil {
			return err
		}
		if err := checkColor("skills.json: categories", c.ID, c.Color); err != nil {
			return err
		}
	}

	seen = map[string]struct{}{}
	for i, m := range p.Contact.Methods {
		if err := checkID("contact.json: methods", i, m.ID, seen); err != nil {
			return err
		}
	}
	return nil
}

func checkID(where string, idx int, id string, seen map[string]struct{}) error {
	if strings.TrimSpace(id) == "" {
		return errors.Errorf("%s[%d]: id is required", where, idx)
	}
	if _, dup := seen[id]; dup {
		return errors.Errorf("%s: duplicate id %q", where, id)
	}
	seen[id] = struct{}{}
	return nil
}

func checkColor(where, id, color string) error {
	if color == "" {
		return nil
	}
	if _, ok := validColors[color]; !ok {
		return errors.Errorf("%s %q has invalid color %q", where, id, color)
	}
	return nil
}
