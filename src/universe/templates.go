package universe

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"cubelife/src/seed"
	"cubelife/src/space"
	"gopkg.in/yaml.v3"
)

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name    string   `yaml:"name"`    //template name
	Descr   string   `yaml:"descr"`   //template descr
	Pattern []string `yaml:"pattern"` //rows of '#' and '.'
}

//Seed embeds the template pattern into dim dimensions
func (t Template) Seed(dim int) (*space.Space, error) {
	s, err := seed.LoadLines(t.Pattern, dim)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", t.Name, err)
	}
	return s, nil
}

//Catalog is a set of templates addressed by name
type Catalog map[string]Template

var ErrInvalidCatalog = errors.New("invalid template catalog")

//DefaultCatalog returns the built-in templates
func DefaultCatalog() Catalog {
	c := Catalog{}
	c.Add(Template{"cubes", "the glider used as the conway cubes sample", []string{".#.", "..#", "###"}})
	c.Add(Template{"blinker", "period 2 oscillator in the plane", []string{"###"}})
	c.Add(Template{"block", "2x2 square", []string{"##", "##"}})
	return c
}

//Add adds the template to the catalog, replacing any template with the same name
func (c Catalog) Add(t Template) {
	c[t.Name] = t
}

//Get returns the template by name
func (c Catalog) Get(name string) (Template, bool) {
	t, ok := c[name]
	return t, ok
}

//Names returns the template names, sorted
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//catalogFile is the YAML layout of a template catalog
type catalogFile struct {
	Templates []Template `yaml:"templates"`
}

//LoadCatalog reads templates from YAML:
//
//	templates:
//	  - name: glider
//	    descr: moves diagonally
//	    pattern:
//	      - ".#."
//	      - "..#"
//	      - "###"
//
//every pattern is validated with the seed loader in two dimensions
func LoadCatalog(r io.Reader) (Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Catalog{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	c := Catalog{}
	for i, t := range f.Templates {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: template #%d has no name", ErrInvalidCatalog, i+1)
		}
		if _, dup := c[t.Name]; dup {
			return nil, fmt.Errorf("%w: template %q defined twice", ErrInvalidCatalog, t.Name)
		}
		if _, err := t.Seed(2); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
		}
		c.Add(t)
	}
	return c, nil
}

//Merge adds every template of o, o wins on name clashes
func (c Catalog) Merge(o Catalog) {
	for _, t := range o {
		c.Add(t)
	}
}
