// Package fixtures provides reusable seed catalogs for tests.
// A catalog is a YAML description of a publishing scenario: authors,
// magazines, and the articles connecting them. Tests build a fresh registry
// from a catalog instead of repeating construction boilerplate.
package fixtures

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"masthead/internal/domain/entity"
)

// Catalog describes a publishing scenario.
type Catalog struct {
	Authors   []AuthorSpec   `yaml:"authors"`
	Magazines []MagazineSpec `yaml:"magazines"`
	Articles  []ArticleSpec  `yaml:"articles"`
}

// AuthorSpec describes one author to seed.
type AuthorSpec struct {
	Name string `yaml:"name"`
}

// MagazineSpec describes one magazine to seed.
type MagazineSpec struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// ArticleSpec describes one article to seed. Author and Magazine refer to
// the names declared earlier in the catalog.
type ArticleSpec struct {
	Author   string `yaml:"author"`
	Magazine string `yaml:"magazine"`
	Title    string `yaml:"title"`
}

// Domain is a registry built from a catalog, with the seeded entities
// addressable by the names used in the YAML.
type Domain struct {
	Registry  *entity.Registry
	Authors   map[string]*entity.Author
	Magazines map[string]*entity.Magazine
	Articles  []*entity.Article
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(doc string) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal([]byte(doc), &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	return c, nil
}

// Build constructs a fresh registry seeded with the catalog's entities,
// in declaration order.
func (c Catalog) Build() (*Domain, error) {
	d := &Domain{
		Registry:  entity.NewRegistry(),
		Authors:   make(map[string]*entity.Author),
		Magazines: make(map[string]*entity.Magazine),
	}

	for _, spec := range c.Authors {
		author, err := d.Registry.NewAuthor(spec.Name)
		if err != nil {
			return nil, fmt.Errorf("seed author %q: %w", spec.Name, err)
		}
		d.Authors[spec.Name] = author
	}

	for _, spec := range c.Magazines {
		magazine, err := d.Registry.NewMagazine(spec.Name, spec.Category)
		if err != nil {
			return nil, fmt.Errorf("seed magazine %q: %w", spec.Name, err)
		}
		d.Magazines[spec.Name] = magazine
	}

	for _, spec := range c.Articles {
		author, ok := d.Authors[spec.Author]
		if !ok {
			return nil, fmt.Errorf("seed article %q: unknown author %q", spec.Title, spec.Author)
		}
		magazine, ok := d.Magazines[spec.Magazine]
		if !ok {
			return nil, fmt.Errorf("seed article %q: unknown magazine %q", spec.Title, spec.Magazine)
		}
		article, err := author.AddArticle(magazine, spec.Title)
		if err != nil {
			return nil, fmt.Errorf("seed article %q: %w", spec.Title, err)
		}
		d.Articles = append(d.Articles, article)
	}

	return d, nil
}

// newsDeskYAML is the standard scenario: two authors, two magazines, and
// enough articles for one author to cross the contributing threshold.
const newsDeskYAML = `
authors:
  - name: Ada
  - name: Grace
magazines:
  - name: Tech Weekly
    category: Technology
  - name: Health & Wellness
    category: Health
articles:
  - author: Ada
    magazine: Tech Weekly
    title: The Future of AI
  - author: Ada
    magazine: Tech Weekly
    title: Exploring Robotics
  - author: Ada
    magazine: Tech Weekly
    title: Machines That Learn
  - author: Grace
    magazine: Tech Weekly
    title: Compilers Revisited
  - author: Grace
    magazine: Health & Wellness
    title: Healthy Living Tips
`

// NewsDesk builds the standard scenario.
// Ada has three Tech Weekly articles (a contributing author); Grace writes
// for both magazines; Tech Weekly is the top publisher.
func NewsDesk() (*Domain, error) {
	catalog, err := ParseCatalog(newsDeskYAML)
	if err != nil {
		return nil, err
	}
	return catalog.Build()
}
