package entity

import "github.com/google/uuid"

// Author is the identity anchor for written articles. The name is fixed at
// construction; an author is never removed from its registry.
type Author struct {
	id   uuid.UUID
	name string
	reg  *Registry
}

// ID returns the unique identifier assigned at construction.
func (a *Author) ID() uuid.UUID {
	return a.id
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

// Articles returns the author's articles in creation order.
func (a *Author) Articles() []*Article {
	return a.reg.articlesWhere(func(article *Article) bool {
		return article.author == a
	})
}

// Magazines returns the distinct magazines the author has contributed to,
// ordered by the author's first contribution to each.
func (a *Author) Magazines() []*Magazine {
	a.reg.mu.RLock()
	defer a.reg.mu.RUnlock()

	seen := make(map[*Magazine]bool)
	var magazines []*Magazine
	for _, article := range a.reg.articles {
		if article.author != a || seen[article.magazine] {
			continue
		}
		seen[article.magazine] = true
		magazines = append(magazines, article.magazine)
	}
	return magazines
}

// AddArticle creates an article written by this author for the given
// magazine. It fails under the same conditions as Registry.NewArticle.
func (a *Author) AddArticle(magazine *Magazine, title string) (*Article, error) {
	return a.reg.NewArticle(a, magazine, title)
}

// TopicAreas returns the distinct categories of the magazines the author has
// written for, ordered by first contribution. Empty when the author has no
// articles.
func (a *Author) TopicAreas() []string {
	a.reg.mu.RLock()
	defer a.reg.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, article := range a.reg.articles {
		if article.author != a || seen[article.magazine.category] {
			continue
		}
		seen[article.magazine.category] = true
		categories = append(categories, article.magazine.category)
	}
	return categories
}
