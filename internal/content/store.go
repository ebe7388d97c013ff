package content

import (
	"embed"
	"encoding/json"
	"io/fs"
	"os"
	"path"

	"github.com/pkg/errors"

	"github.com/mcosta-dev/portfolio/internal/locale"
)

//go:embed data/*/*.json
var embeddedData embed.FS

// Partition is the complete set of records for one locale.
type Partition struct {
	Locale     locale.Locale
	Personal   PersonalInfo
	Projects   Projects
	Experience Experience
	Skills     Skills
	Navigation Navigation
	Contact    Contact
}

// Store holds one validated partition per supported locale. It is read-only
// after Load returns.
type Store struct {
	partitions map[locale.Locale]Partition
}

// LoadEmbedded loads the datasets compiled into the binary.
func LoadEmbedded() (*Store, error) {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded content")
	}
	return Load(sub)
}

// LoadDir loads datasets from dir, laid out as <locale>/<file>.json.
func LoadDir(dir string) (*Store, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrapf(err, "content dir %s", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads and validates every supported locale from fsys.
func Load(fsys fs.FS) (*Store, error) {
	s := &Store{partitions: make(map[locale.Locale]Partition, len(locale.Supported()))}
	for _, l := range locale.Supported() {
		p, err := loadPartition(fsys, l)
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "locale %s", l)
		}
		s.partitions[l] = p
	}
	return s, nil
}

func loadPartition(fsys fs.FS, l locale.Locale) (Partition, error) {
	p := Partition{Locale: l}
	files := []struct {
		name string
		dst  any
	}{
		{"personal.json", &p.Personal},
		{"projects.json", &p.Projects},
		{"experience.json", &p.Experience},
		{"skills.json", &p.Skills},
		{"navigation.json", &p.Navigation},
		{"contact.json", &p.Contact},
	}
	for _, f := range files {
		name := path.Join(l.String(), f.name)
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return Partition{}, errors.Wrapf(err, "read %s", name)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return Partition{}, errors.Wrapf(err, "decode %s", name)
		}
	}
	return p, nil
}

// Partition returns the partition for l, or the default partition when l is
// not supported.
func (s *Store) Partition(l locale.Locale) Partition {
	if p, ok := s.partitions[l]; ok {
		return p
	}
	return s.partitions[locale.Default]
}

// Resolve selects the partition for a raw locale code. Unknown codes fall
// back to English without error.
func (s *Store) Resolve(code string) Partition {
	return s.Partition(locale.Resolve(code))
}

// FeaturedProject looks up a featured project by exact id.
func (p Partition) FeaturedProject(id string) (FeaturedProject, bool) {
	for _, fp := range p.Projects.Featured {
		if fp.ID == id {
			return fp, true
		}
	}
	return FeaturedProject{}, false
}

// OpenSourceProject looks up an open-source entry by exact id.
func (p Partition) OpenSourceProject(id string) (OpenSourceProject, bool) {
	for _, op := range p.Projects.OpenSource {
		if op.ID == id {
			return op, true
		}
	}
	return OpenSourceProject{}, false
}

// WorkExperience looks up a work-history entry by exact id.
func (p Partition) WorkExperience(id string) (WorkExperience, bool) {
	for _, w := range p.Experience.Work {
		if w.ID == id {
			return w, true
		}
	}
	return WorkExperience{}, false
}

// Education looks up an education entry by exact id.
func (p Partition) Education(id string) (Education, bool) {
	for _, e := range p.Experience.Education {
		if e.ID == id {
			return e, true
		}
	}
	return Education{}, false
}
