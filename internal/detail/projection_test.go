package detail

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcosta-dev/portfolio/internal/content"
	"github.com/mcosta-dev/portfolio/internal/locale"
)

const fixtureProjectsEN = `{
  "featured": [
    {"id": "alive", "title": "Alive", "subtitle": "Sub", "description": "Short", "tech": ["Go"], "status": "active",
     "link": "https://alive.example", "image": "/img/alive.png", "role": "Lead",
     "responsibilities": ["Build"], "achievements": ["Ship"], "challenges": ["Scale"], "results": ["Win"]},
    {"id": "long", "title": "Long", "description": "Short", "longDescription": "Much longer", "status": "active"},
    {"id": "locked", "title": "Locked", "description": "Hidden", "status": "inactive"},
    {"id": "x", "title": "English only", "description": "Only here", "status": "active"}
  ],
  "openSource": [
    {"id": "curated", "name": "Curated", "description": "Has tech", "language": "Python",
     "url": "https://github.com/u/curated", "icon": "/icons/c.svg", "tech": ["Python", "FastAPI"]},
    {"id": "plain", "name": "Plain", "description": "No tech", "language": "Ruby",
     "url": "https://github.com/u/plain", "icon": "/icons/p.svg"}
  ]
}`

const fixtureProjectsPT = `{
  "featured": [
    {"id": "alive", "title": "Vivo", "description": "Curto", "status": "active"},
    {"id": "locked", "title": "Bloqueado", "description": "Escondido", "status": "inactive"}
  ],
  "openSource": [
    {"id": "plain", "name": "Simples", "description": "Sem tech", "language": "Ruby", "url": "u", "icon": "i"}
  ]
}`

const fixtureExperience = `{
  "about": {"intro": "hi"},
  "work": [
    {"id": "job", "title": "Engineer", "company": "Acme", "period": "2020 - 2022", "highlights": ["Go", "SQL"]},
    {"id": "rich", "title": "Lead", "company": "Beta", "period": "2022", "highlights": [],
     "longDescription": "Led things", "role": "Tech lead", "achievements": ["Hired"]}
  ],
  "education": [
    {"id": "degree", "title": "CS", "institution": "Uni", "year": "2018", "type": "Degree", "certificate": "/files/degree.pdf"},
    {"id": "course", "title": "Course", "institution": "Online", "year": "2020", "type": "Course"}
  ]
}`

func fixtureFS() fstest.MapFS {
	files := fstest.MapFS{}
	for _, l := range []string{"en", "pt"} {
		files[l+"/personal.json"] = &fstest.MapFile{Data: []byte(`{"name": {"full": "Test Person"},
			"cv": {"title": "CV ` + l + `", "subtitle": "Dev", "file": "/files/cv.pdf", "year": "2024", "downloadName": "cv.pdf"}}`)}
		files[l+"/experience.json"] = &fstest.MapFile{Data: []byte(fixtureExperience)}
		files[l+"/skills.json"] = &fstest.MapFile{Data: []byte(`{"categories": []}`)}
		files[l+"/navigation.json"] = &fstest.MapFile{Data: []byte(`{"links": []}`)}
		files[l+"/contact.json"] = &fstest.MapFile{Data: []byte(`{"methods": []}`)}
	}
	files["en/projects.json"] = &fstest.MapFile{Data: []byte(fixtureProjectsEN)}
	files["pt/projects.json"] = &fstest.MapFile{Data: []byte(fixtureProjectsPT)}
	return files
}

type stubLabels map[string]string

func (s stubLabels) T(l locale.Locale, key string) string {
	if v, ok := s[l.String()+":"+key]; ok {
		return v
	}
	return key
}

func newTestProjector(t *testing.T) *Projector {
	t.Helper()
	store, err := content.Load(fixtureFS())
	require.NoError(t, err)
	return NewProjector(store, stubLabels{
		"pt:" + LabelOpenSource: "Projeto Open Source",
		"pt:" + LabelWorkedAs:   "Trabalhou como {title} na {company}",
		"pt:" + LabelEducation:  "{title} em {institution} ({year})",
	})
}

func TestProjectDetail(t *testing.T) {
	p := newTestProjector(t)

	rec, ok := p.Project("alive", "en")
	require.True(t, ok)
	assert.Equal(t, Record{
		Kind:     KindProject,
		ID:       "alive",
		Title:    "Alive",
		Subtitle: "Sub",
		Body: Body{
			Description:      "Short",
			LongDescription:  "Short",
			Tech:             []string{"Go"},
			Link:             "https://alive.example",
			Image:            "/img/alive.png",
			Role:             "Lead",
			Responsibilities: []string{"Build"},
			Achievements:     []string{"Ship"},
			Challenges:       []string{"Scale"},
			Results:          []string{"Win"},
		},
	}, rec)

	rec, ok = p.Project("long", "en")
	require.True(t, ok)
	assert.Equal(t, "Much longer", rec.Body.LongDescription)
	assert.Equal(t, "Short", rec.Body.Description)
}

func TestProjectDetailInactiveIsAbsentInEveryLocale(t *testing.T) {
	p := newTestProjector(t)
	for _, code := range []string{"en", "pt", "fr", ""} {
		_, ok := p.Project("locked", code)
		assert.False(t, ok, "locale %q", code)
	}
}

func TestProjectDetailActiveIDsRoundTrip(t *testing.T) {
	p := newTestProjector(t)
	for _, code := range []string{"en", "pt"} {
		part := p.store.Resolve(code)
		for _, fp := range part.Projects.Featured {
			rec, ok := p.Project(fp.ID, code)
			if fp.Inactive() {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok, "%s/%s", code, fp.ID)
			assert.Equal(t, KindProject, rec.Kind)
			assert.Equal(t, fp.ID, rec.ID)
		}
	}
}

func TestNoCrossLocaleFallback(t *testing.T) {
	p := newTestProjector(t)

	_, ok := p.Project("x", "en")
	assert.True(t, ok)
	_, ok = p.Project("x", "pt")
	assert.False(t, ok)

	_, ok = p.OpenSource("curated", "pt")
	assert.False(t, ok)
}

func TestMissingIDsAreAbsent(t *testing.T) {
	p := newTestProjector(t)
	for _, code := range []string{"en", "pt"} {
		_, ok := p.Project("nope", code)
		assert.False(t, ok)
		_, ok = p.Experience("nope", code)
		assert.False(t, ok)
		_, ok = p.OpenSource("nope", code)
		assert.False(t, ok)
		_, ok = p.Education("nope", code)
		assert.False(t, ok)
	}
}

func TestExperienceDetail(t *testing.T) {
	p := newTestProjector(t)

	rec, ok := p.Experience("job", "en")
	require.True(t, ok)
	assert.Equal(t, KindExperience, rec.Kind)
	assert.Equal(t, "Acme", rec.Subtitle)
	assert.Equal(t, "Worked as Engineer at Acme", rec.Body.Description)
	assert.Equal(t, "Worked as Engineer at Acme", rec.Body.LongDescription)
	assert.Equal(t, "2020 - 2022", rec.Body.Period)
	assert.Equal(t, "Acme", rec.Body.Company)
	assert.Equal(t, []string{"Go", "SQL"}, rec.Body.Highlights)

	rec, ok = p.Experience("rich", "en")
	require.True(t, ok)
	assert.Equal(t, "Led things", rec.Body.LongDescription)
	assert.Equal(t, "Tech lead", rec.Body.Role)
	assert.Equal(t, []string{"Hired"}, rec.Body.Achievements)

	rec, ok = p.Experience("job", "pt")
	require.True(t, ok)
	assert.Equal(t, "Trabalhou como Engineer na Acme", rec.Body.Description)
}

func TestOpenSourceDetail(t *testing.T) {
	p := newTestProjector(t)

	rec, ok := p.OpenSource("curated", "en")
	require.True(t, ok)
	assert.Equal(t, KindProject, rec.Kind)
	assert.Equal(t, "Curated", rec.Title)
	assert.Equal(t, "Open Source Project", rec.Subtitle)
	assert.Equal(t, []string{"Python", "FastAPI"}, rec.Body.Tech)
	assert.Equal(t, "https://github.com/u/curated", rec.Body.Link)
	assert.Equal(t, "/icons/c.svg", rec.Body.Image)

	rec, ok = p.OpenSource("plain", "en")
	require.True(t, ok)
	assert.Equal(t, []string{"Ruby"}, rec.Body.Tech)
	assert.Equal(t, "No tech", rec.Body.LongDescription)

	rec, ok = p.OpenSource("plain", "pt")
	require.True(t, ok)
	assert.Equal(t, "Projeto Open Source", rec.Subtitle)
}

func TestEducationDetailRequiresCertificate(t *testing.T) {
	p := newTestProjector(t)

	rec, ok := p.Education("degree", "en")
	require.True(t, ok)
	assert.Equal(t, KindEducation, rec.Kind)
	assert.Equal(t, "/files/degree.pdf", rec.Body.Certificate)
	assert.Equal(t, "Uni", rec.Body.Institution)
	assert.Equal(t, "2018", rec.Body.Year)
	assert.Equal(t, "Degree", rec.Body.Type)
	assert.Equal(t, "CS from Uni (2018)", rec.Body.Description)

	rec, ok = p.Education("degree", "pt")
	require.True(t, ok)
	assert.Equal(t, "CS em Uni (2018)", rec.Body.Description)

	_, ok = p.Education("course", "en")
	assert.False(t, ok)
}

func TestCVDetail(t *testing.T) {
	p := newTestProjector(t)

	rec, ok := p.CV("pt")
	require.True(t, ok)
	assert.True(t, rec.IsCV())
	assert.Equal(t, "CV pt", rec.Title)
	assert.Equal(t, "/files/cv.pdf", rec.Body.Certificate)
	assert.Equal(t, "cv.pdf", rec.Body.DownloadName)
}

func TestProjectionsDoNotShareStoreSlices(t *testing.T) {
	p := newTestProjector(t)

	rec, ok := p.Project("alive", "en")
	require.True(t, ok)
	rec.Body.Tech[0] = "mutated"

	again, ok := p.Project("alive", "en")
	require.True(t, ok)
	assert.Equal(t, []string{"Go"}, again.Body.Tech)
}

func TestCloneIsDeep(t *testing.T) {
	r := Record{Body: Body{Tech: []string{"a"}, Results: []string{"b"}}}
	c := r.Clone()
	c.Body.Tech[0] = "z"
	c.Body.Results[0] = "y"
	assert.Equal(t, "a", r.Body.Tech[0])
	assert.Equal(t, "b", r.Body.Results[0])
}

func TestNonExactCodesProjectEnglish(t *testing.T) {
	p := newTestProjector(t)
	for _, code := range []string{"pt-BR", "PT", " pt", "pt_PT"} {
		rec, ok := p.Project("alive", code)
		require.True(t, ok, "code %q", code)
		assert.Equal(t, "Alive", rec.Title, "code %q", code)

		rec, ok = p.Experience("job", code)
		require.True(t, ok, "code %q", code)
		assert.Equal(t, "Worked as Engineer at Acme", rec.Body.Description, "code %q", code)

		rec, ok = p.OpenSource("plain", code)
		require.True(t, ok, "code %q", code)
		assert.Equal(t, "Plain", rec.Title, "code %q", code)

		rec, ok = p.CV(code)
		require.True(t, ok, "code %q", code)
		assert.Equal(t, "CV en", rec.Title, "code %q", code)
	}
}
