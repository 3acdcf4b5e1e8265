package entity

import "github.com/google/uuid"

// Magazine is the publication anchor for articles. Unlike Author, its name
// and category may change over time; mutation goes through Rename and
// Recategorize so the bounds of the model hold and readers never observe a
// torn update.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
	reg      *Registry
}

// ID returns the unique identifier assigned at construction.
func (m *Magazine) ID() uuid.UUID {
	return m.id
}

// Name returns the magazine's current name.
func (m *Magazine) Name() string {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()
	return m.name
}

// Category returns the magazine's current category.
func (m *Magazine) Category() string {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()
	return m.category
}

// Rename changes the magazine's name.
// Returns a ValidationError if the new name is outside the 2-16 character
// bound; the current name is kept on failure.
func (m *Magazine) Rename(name string) error {
	if err := validateMagazineName(name); err != nil {
		return err
	}

	m.reg.mu.Lock()
	defer m.reg.mu.Unlock()
	m.name = name
	return nil
}

// Recategorize changes the magazine's category.
// Returns a ValidationError if the new category is blank; the current
// category is kept on failure.
func (m *Magazine) Recategorize(category string) error {
	if err := validateCategory(category); err != nil {
		return err
	}

	m.reg.mu.Lock()
	defer m.reg.mu.Unlock()
	m.category = category
	return nil
}

// Articles returns the magazine's articles in creation order.
func (m *Magazine) Articles() []*Article {
	return m.reg.articlesWhere(func(article *Article) bool {
		return article.magazine == m
	})
}

// Contributors returns the distinct authors who have written for the
// magazine, ordered by each author's first contribution.
func (m *Magazine) Contributors() []*Author {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()

	seen := make(map[*Author]bool)
	var authors []*Author
	for _, article := range m.reg.articles {
		if article.magazine != m || seen[article.author] {
			continue
		}
		seen[article.author] = true
		authors = append(authors, article.author)
	}
	return authors
}

// ArticleTitles returns the titles of the magazine's articles in creation
// order. Empty when the magazine has no articles.
func (m *Magazine) ArticleTitles() []string {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()

	var titles []string
	for _, article := range m.reg.articles {
		if article.magazine == m {
			titles = append(titles, article.title)
		}
	}
	return titles
}

// ContributingAuthors returns the authors who have written strictly more
// than two articles for the magazine, ordered by each author's first
// contribution. Empty when no author crosses the threshold.
func (m *Magazine) ContributingAuthors() []*Author {
	m.reg.mu.RLock()
	defer m.reg.mu.RUnlock()

	counts := make(map[*Author]int)
	var order []*Author
	for _, article := range m.reg.articles {
		if article.magazine != m {
			continue
		}
		if counts[article.author] == 0 {
			order = append(order, article.author)
		}
		counts[article.author]++
	}

	var authors []*Author
	for _, author := range order {
		if counts[author] > 2 {
			authors = append(authors, author)
		}
	}
	return authors
}
