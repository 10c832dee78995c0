package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	catalogFile     = "catalog.yaml"
	projectsPattern = "projects/**/*.md"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c.fillSkillPercents()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// LoadDir builds a catalog from a content directory. dir/catalog.yaml, when
// present, replaces the built-in catalog; every projects/**/*.md file adds
// a project or replaces the one with the same id.
func LoadDir(dir string) (*Catalog, error) {
	if dir == "" {
		return Default()
	}
	return loadFS(os.DirFS(dir))
}

func loadFS(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, catalogFile)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		data = defaultCatalog
	default:
		return nil, fmt.Errorf("reading %s: %w", catalogFile, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(fsys, projectsPattern)
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", projectsPattern, err)
	}
	sort.Strings(matches)

	for _, name := range matches {
		p, err := readProjectFile(fsys, name)
		if err != nil {
			return nil, err
		}
		c.upsertProject(p)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

type projectMatter struct {
	ID       int      `yaml:"id"`
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Tech     []string `yaml:"tech"`
	Icon     string   `yaml:"icon"`
	Image    string   `yaml:"image"`
	Repo     string   `yaml:"repo"`
}

func readProjectFile(fsys fs.FS, name string) (Project, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Project{}, fmt.Errorf("reading %s: %w", name, err)
	}

	var m projectMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &m)
	if err != nil {
		return Project{}, fmt.Errorf("parsing frontmatter of %s: %w", name, err)
	}
	if m.ID == 0 {
		return Project{}, fmt.Errorf("%s: frontmatter needs a non-zero id", name)
	}

	title := m.Title
	if title == "" {
		title = titleFromFile(name)
	}

	return Project{
		ID:          m.ID,
		Title:       title,
		Category:    m.Category,
		Description: strings.TrimSpace(string(body)),
		Tech:        m.Tech,
		Icon:        m.Icon,
		Image:       m.Image,
		Repo:        m.Repo,
	}, nil
}

// titleFromFile turns "projects/line-follower_robot.md" into "Line Follower Robot".
func titleFromFile(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return cases.Title(language.English).String(base)
}

func (c *Catalog) upsertProject(p Project) {
	for i := range c.Projects {
		if c.Projects[i].ID == p.ID {
			c.Projects[i] = p
			return
		}
	}
	c.Projects = append(c.Projects, p)
}
