package game

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed organisms.yaml
var builtInCatalogYAML []byte

type Category string

const (
	CategoryMicroscopic Category = "microscopic"
	CategoryCultural    Category = "cultural"
)

func (c Category) Valid() bool {
	return c == CategoryMicroscopic || c == CategoryCultural
}

// OrganismKey is the organism name; names are unique within a catalog.
type OrganismKey string

type Organism struct {
	Name        string   `yaml:"name"`
	Group       string   `yaml:"group"`
	Stain       string   `yaml:"stain"`
	Color       string   `yaml:"color"`
	Microscopic []string `yaml:"microscopic"`
	Cultural    []string `yaml:"cultural"`
}

func (o Organism) Key() OrganismKey {
	return OrganismKey(o.Name)
}

func (o Organism) Traits(category Category) []string {
	switch category {
	case CategoryMicroscopic:
		return o.Microscopic
	case CategoryCultural:
		return o.Cultural
	default:
		return nil
	}
}

func (o Organism) TraitCount() int {
	return len(o.Microscopic) + len(o.Cultural)
}

func (o Organism) HasTrait(category Category, text string) bool {
	for _, t := range o.Traits(category) {
		if t == text {
			return true
		}
	}
	return false
}

// Catalog is immutable reference data. Copies share the same backing arrays,
// which is safe because nothing writes to them after NewCatalog.
type Catalog struct {
	organisms []Organism
	index     map[OrganismKey]int
}

type catalogFile struct {
	Organisms []Organism `yaml:"organisms"`
}

func NewCatalog(organisms []Organism) (Catalog, error) {
	if len(organisms) == 0 {
		return Catalog{}, fmt.Errorf("catalog has no organisms")
	}
	c := Catalog{
		organisms: make([]Organism, 0, len(organisms)),
		index:     make(map[OrganismKey]int, len(organisms)),
	}
	for i, o := range organisms {
		o.Name = strings.TrimSpace(o.Name)
		if o.Name == "" {
			return Catalog{}, fmt.Errorf("organism %d has an empty name", i)
		}
		if _, dup := c.index[o.Key()]; dup {
			return Catalog{}, fmt.Errorf("duplicate organism: %s", o.Name)
		}
		if o.TraitCount() == 0 {
			return Catalog{}, fmt.Errorf("organism %s has no traits", o.Name)
		}
		// A text may appear once per organism: matched pairs are keyed by
		// (organism, text), so a second copy could never be matched.
		seen := map[string]Category{}
		for _, category := range []Category{CategoryMicroscopic, CategoryCultural} {
			for _, t := range o.Traits(category) {
				if strings.TrimSpace(t) == "" {
					return Catalog{}, fmt.Errorf("organism %s has an empty %s trait", o.Name, category)
				}
				if prev, dup := seen[t]; dup {
					if prev != category {
						return Catalog{}, fmt.Errorf("organism %s lists trait %q in both categories", o.Name, t)
					}
					return Catalog{}, fmt.Errorf("organism %s repeats %s trait %q", o.Name, category, t)
				}
				seen[t] = category
			}
		}
		o.Microscopic = append([]string(nil), o.Microscopic...)
		o.Cultural = append([]string(nil), o.Cultural...)
		c.index[o.Key()] = len(c.organisms)
		c.organisms = append(c.organisms, o)
	}
	return c, nil
}

func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(file.Organisms)
}

func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// BuiltInCatalog returns the organism set shipped with the binary.
func BuiltInCatalog() Catalog {
	c, err := ParseCatalog(builtInCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

func (c Catalog) Len() int {
	return len(c.organisms)
}

func (c Catalog) Organisms() []Organism {
	return append([]Organism(nil), c.organisms...)
}

func (c Catalog) Organism(key OrganismKey) (Organism, bool) {
	i, ok := c.index[key]
	if !ok {
		return Organism{}, false
	}
	return c.organisms[i], true
}

func (c Catalog) TotalTraits() int {
	total := 0
	for _, o := range c.organisms {
		total += o.TraitCount()
	}
	return total
}

// population flattens every organism's traits in catalog order, microscopic first.
func (c Catalog) population() []TraitInstance {
	out := make([]TraitInstance, 0, c.TotalTraits())
	for _, o := range c.organisms {
		for _, category := range []Category{CategoryMicroscopic, CategoryCultural} {
			for _, t := range o.Traits(category) {
				out = append(out, TraitInstance{
					ID:       TraitID(len(out) + 1),
					Organism: o.Key(),
					Text:     t,
					Category: category,
				})
			}
		}
	}
	return out
}
