package detail

import (
	"strings"

	"github.com/mcosta-dev/portfolio/internal/content"
	"github.com/mcosta-dev/portfolio/internal/locale"
)

// Label keys looked up through Translator.
const (
	LabelOpenSource = "detail.openSourceProject"
	LabelWorkedAs   = "detail.workedAs"
	LabelEducation  = "detail.educationSummary"
)

var defaultLabels = map[string]string{
	LabelOpenSource: "Open Source Project",
	LabelWorkedAs:   "Worked as {title} at {company}",
	LabelEducation:  "{title} from {institution} ({year})",
}

// Translator resolves UI strings for a locale.
type Translator interface {
	T(l locale.Locale, key string) string
}

// Projector maps content records of a Store into detail Records. All methods
// are pure: they read the store and return a new value or false.
type Projector struct {
	store  *content.Store
	labels Translator
}

// NewProjector builds a Projector over store. labels may be nil, in which
// case English labels are used for every locale.
func NewProjector(store *content.Store, labels Translator) *Projector {
	return &Projector{store: store, labels: labels}
}

func (p *Projector) label(l locale.Locale, key string) string {
	if p.labels != nil {
		if v := p.labels.T(l, key); v != "" && v != key {
			return v
		}
	}
	return defaultLabels[key]
}

// Project projects a featured project. Missing and inactive projects yield
// false.
func (p *Projector) Project(id, code string) (Record, bool) {
	fp, ok := p.store.Resolve(code).FeaturedProject(id)
	if !ok || fp.Inactive() {
		return Record{}, false
	}
	return Record{
		Kind:     KindProject,
		ID:       fp.ID,
		Title:    fp.Title,
		Subtitle: fp.Subtitle,
		Body: withDetails(Body{
			Description:     fp.Description,
			LongDescription: firstNonEmpty(fp.LongDescription, fp.Description),
			Tech:            cloneStrings(fp.Tech),
			Link:            fp.Link,
			Image:           fp.Image,
		}, fp.Details),
	}, true
}

// Experience projects a work-history entry.
func (p *Projector) Experience(id, code string) (Record, bool) {
	l := locale.Resolve(code)
	w, ok := p.store.Partition(l).WorkExperience(id)
	if !ok {
		return Record{}, false
	}
	summary := strings.NewReplacer("{title}", w.Title, "{company}", w.Company).
		Replace(p.label(l, LabelWorkedAs))
	return Record{
		Kind:     KindExperience,
		ID:       w.ID,
		Title:    w.Title,
		Subtitle: w.Company,
		Body: withDetails(Body{
			Description:     summary,
			LongDescription: firstNonEmpty(w.LongDescription, summary),
			Period:          w.Period,
			Company:         w.Company,
			Highlights:      cloneStrings(w.Highlights),
		}, w.Details),
	}, true
}

// OpenSource projects an open-source entry. The subtitle is the generic
// open-source label; tech is the authored list or the entry's language.
func (p *Projector) OpenSource(id, code string) (Record, bool) {
	l := locale.Resolve(code)
	op, ok := p.store.Partition(l).OpenSourceProject(id)
	if !ok {
		return Record{}, false
	}
	tech := cloneStrings(op.Tech)
	if len(tech) == 0 {
		tech = []string{op.Language}
	}
	return Record{
		Kind:     KindProject,
		ID:       op.ID,
		Title:    op.Name,
		Subtitle: p.label(l, LabelOpenSource),
		Body: withDetails(Body{
			Description:     op.Description,
			LongDescription: firstNonEmpty(op.LongDescription, op.Description),
			Tech:            tech,
			Link:            op.URL,
			Image:           op.Icon,
		}, op.Details),
	}, true
}

// Education projects an education entry. Only entries with a certificate
// have anything to preview, so the rest yield false.
func (p *Projector) Education(id, code string) (Record, bool) {
	l := locale.Resolve(code)
	e, ok := p.store.Partition(l).Education(id)
	if !ok || e.Certificate == "" {
		return Record{}, false
	}
	summary := strings.NewReplacer("{title}", e.Title, "{institution}", e.Institution, "{year}", e.Year).
		Replace(p.label(l, LabelEducation))
	return Record{
		Kind:     KindEducation,
		ID:       e.ID,
		Title:    e.Title,
		Subtitle: e.Institution,
		Body: Body{
			Description: summary,
			Certificate: e.Certificate,
			Institution: e.Institution,
			Year:        e.Year,
			Type:        e.Type,
		},
	}, true
}

// CV projects the curriculum preview authored in personal info.
func (p *Projector) CV(code string) (Record, bool) {
	cv := p.store.Resolve(code).Personal.CV
	if cv == nil || cv.File == "" {
		return Record{}, false
	}
	return Record{
		Kind:     KindEducation,
		ID:       CVID,
		Title:    cv.Title,
		Subtitle: cv.Subtitle,
		Body: Body{
			Description:  cv.Description,
			Certificate:  cv.File,
			DownloadName: cv.DownloadName,
			Institution:  cv.Institution,
			Year:         cv.Year,
			Type:         cv.Type,
		},
	}, true
}

func withDetails(b Body, d content.Details) Body {
	b.Role = d.Role
	b.Responsibilities = cloneStrings(d.Responsibilities)
	b.Achievements = cloneStrings(d.Achievements)
	b.Challenges = cloneStrings(d.Challenges)
	b.Results = cloneStrings(d.Results)
	return b
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
