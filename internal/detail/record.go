// Package detail projects content records into the normalized shape the
// detail panel renders.
package detail

// Kind tags the entity family a Record was projected from.
type Kind string

const (
	KindProject    Kind = "project"
	KindExperience Kind = "experience"
	// KindSkill is reserved; no producer emits it yet.
	KindSkill     Kind = "skill"
	KindEducation Kind = "education"
)

// CVID is the id of the record produced by Projector.CV.
const CVID = "cv-preview"

// Record is an immutable projection of one content entity. Producers build a
// fresh Record per call and nothing mutates it afterwards; replace it instead.
type Record struct {
	Kind     Kind   `json:"kind"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Body     Body   `json:"body"`
}

// Body is the loosely structured payload of a Record. Producers only fill
// the fields that apply to their kind.
type Body struct {
	Description      string   `json:"description,omitempty"`
	LongDescription  string   `json:"longDescription,omitempty"`
	Tech             []string `json:"tech,omitempty"`
	Highlights       []string `json:"highlights,omitempty"`
	Period           string   `json:"period,omitempty"`
	Company          string   `json:"company,omitempty"`
	Link             string   `json:"link,omitempty"`
	Image            string   `json:"image,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
	Challenges       []string `json:"challenges,omitempty"`
	Results          []string `json:"results,omitempty"`
	Role             string   `json:"role,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Certificate      string   `json:"certificate,omitempty"`
	DownloadName     string   `json:"downloadName,omitempty"`
	Institution      string   `json:"institution,omitempty"`
	Year             string   `json:"year,omitempty"`
	Type             string   `json:"type,omitempty"`
}

// Clone returns a deep copy so callers can hand out records without sharing
// backing arrays.
func (r Record) Clone() Record {
	r.Body.Tech = cloneStrings(r.Body.Tech)
	r.Body.Highlights = cloneStrings(r.Body.Highlights)
	r.Body.Achievements = cloneStrings(r.Body.Achievements)
	r.Body.Challenges = cloneStrings(r.Body.Challenges)
	r.Body.Results = cloneStrings(r.Body.Results)
	r.Body.Responsibilities = cloneStrings(r.Body.Responsibilities)
	return r
}

// IsCV reports whether the record previews the curriculum document.
func (r Record) IsCV() bool { return r.Kind == KindEducation && r.ID == CVID }

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
