package content

import (
	"sort"
	"strings"
)

// Project listing categories.
const (
	CategoryAll        = "all"
	CategoryOpenSource = "open-source"
	CategoryCommercial = "commercial"
)

// ProjectFilter narrows the projects page. Zero value shows everything.
type ProjectFilter struct {
	Tech     string
	Category string
	Query    string
}

// AllTech returns the sorted union of featured project tech and open-source
// languages.
func (p Partition) AllTech() []string {
	set := map[string]struct{}{}
	for _, fp := range p.Projects.Featured {
		for _, t := range fp.Tech {
			set[t] = struct{}{}
		}
	}
	for _, op := range p.Projects.OpenSource {
		if op.Language != "" {
			set[op.Language] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// FilterProjects applies f to both project collections. The search query
// only narrows open-source entries.
func (p Partition) FilterProjects(f ProjectFilter) ([]FeaturedProject, []OpenSourceProject) {
	tech := strings.ToLower(strings.TrimSpace(f.Tech))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var featured []FeaturedProject
	if f.Category != CategoryOpenSource {
		for _, fp := range p.Projects.Featured {
			if tech != "" && !containsFold(fp.Tech, tech) {
				continue
			}
			featured = append(featured, fp)
		}
	}

	var openSource []OpenSourceProject
	if f.Category != CategoryCommercial {
		for _, op := range p.Projects.OpenSource {
			if tech != "" && strings.ToLower(op.Language) != tech {
				continue
			}
			if query != "" &&
				!strings.Contains(strings.ToLower(op.Name), query) &&
				!strings.Contains(strings.ToLower(op.Description), query) &&
				!strings.Contains(strings.ToLower(op.Language), query) {
				continue
			}
			openSource = append(openSource, op)
		}
	}
	return featured, openSource
}

func containsFold(list []string, lower string) bool {
	for _, s := range list {
		if strings.ToLower(s) == lower {
			return true
		}
	}
	return false
}
