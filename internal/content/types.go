package content

// PersonalInfo is the profile block shown in the hero, navbar and footer.
type PersonalInfo struct {
	Name         Name         `json:"name"`
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	Description  string       `json:"description"`
	Location     Location     `json:"location"`
	Languages    []string     `json:"languages"`
	Availability Availability `json:"availability"`
	Social       Social       `json:"social"`
	Stats        Stats        `json:"stats"`
	TechStack    []string     `json:"techStack"`
	CV           *CV          `json:"cv,omitempty"`
}

type Name struct {
	First    string `json:"first"`
	Last     string `json:"last"`
	Full     string `json:"full"`
	Initials string `json:"initials"`
}

type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Full    string `json:"full"`
}

type Availability struct {
	Status    string `json:"status"`
	Freelance bool   `json:"freelance"`
	Fulltime  bool   `json:"fulltime"`
}

type Social struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
}

type Stats struct {
	YearsExperience   int `json:"yearsExperience"`
	ProjectsDelivered int `json:"projectsDelivered"`
	SaaSProducts      int `json:"saasProducts"`
}

// CV describes the downloadable curriculum previewed in the detail panel.
type CV struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	Institution  string `json:"institution"`
	Type         string `json:"type"`
	Year         string `json:"year"`
	File         string `json:"file"`
	DownloadName string `json:"downloadName,omitempty"`
}

// Project status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Details holds the optional write-up fields shared by projects and experience.
type Details struct {
	LongDescription  string   `json:"longDescription,omitempty"`
	Role             string   `json:"role,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
	Challenges       []string `json:"challenges,omitempty"`
	Results          []string `json:"results,omitempty"`
}

type FeaturedProject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Color       string   `json:"color"`
	Link        string   `json:"link,omitempty"`
	Image       string   `json:"image"`
	Icon        string   `json:"icon"`
	Status      string   `json:"status"`
	Details
}

// Inactive reports whether the project is locked and must not be inspected.
func (p FeaturedProject) Inactive() bool { return p.Status == StatusInactive }

// OpenSourceProject is a public repository listing. Tech is the curated
// technology list; when empty, Language stands in for it.
type OpenSourceProject struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	URL         string   `json:"url"`
	Icon        string   `json:"icon"`
	Tech        []string `json:"tech,omitempty"`
	Details
}

type Projects struct {
	Featured   []FeaturedProject   `json:"featured"`
	OpenSource []OpenSourceProject `json:"openSource"`
}

type WorkExperience struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
	Details
}

type Education struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Certificate string `json:"certificate,omitempty"`
}

type About struct {
	Intro          string `json:"intro"`
	Specialization string `json:"specialization"`
	Journey        string `json:"journey"`
}

type Experience struct {
	About     About            `json:"about"`
	Work      []WorkExperience `json:"work"`
	Education []Education      `json:"education"`
}

type SkillCategory struct {
	ID     string   `json:"id"`
	Icon   string   `json:"icon"`
	Title  string   `json:"title"`
	Color  string   `json:"color"`
	Skills []string `json:"skills"`
}

type Skills struct {
	Categories   []SkillCategory `json:"categories"`
	Expertise    []string        `json:"expertise"`
	Technologies []string        `json:"technologies"`
}

type NavLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type Navigation struct {
	Links []NavLink `json:"links"`
}

type ContactMethod struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Href        string `json:"href"`
	Action      string `json:"action,omitempty"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type Contact struct {
	Methods []ContactMethod `json:"methods"`
}
