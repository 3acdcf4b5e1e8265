package entity

import (
	"sync"

	"github.com/google/uuid"
)

// Registry is the append-only record of a publishing domain: every author,
// magazine, and article created through it, in creation order. It replaces
// the process-global collections of the original model with an explicit
// value, so callers (and tests) can run independent domains side by side.
//
// All access goes through a single RWMutex. The model itself is
// single-threaded, but the guard makes the registry safe to share between
// concurrent callers: constructors and magazine mutation take the write
// lock, derived queries the read lock.
type Registry struct {
	mu        sync.RWMutex
	articles  []*Article
	authors   []*Author
	magazines []*Magazine

	authorsByID   map[uuid.UUID]*Author
	magazinesByID map[uuid.UUID]*Magazine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		authorsByID:   make(map[uuid.UUID]*Author),
		magazinesByID: make(map[uuid.UUID]*Magazine),
	}
}

// NewAuthor creates an author with the given name and records it.
// Returns a ValidationError if the name is blank.
func (r *Registry) NewAuthor(name string) (*Author, error) {
	if err := validateAuthorName(name); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	author := &Author{id: uuid.New(), name: name, reg: r}
	r.authors = append(r.authors, author)
	r.authorsByID[author.id] = author
	return author, nil
}

// NewMagazine creates a magazine with the given name and category and
// records it. Name and category are free text at construction; the bounds
// enforced by Rename and Recategorize apply to later mutation only.
func (r *Registry) NewMagazine(name, category string) (*Magazine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	magazine := &Magazine{id: uuid.New(), name: name, category: category, reg: r}
	r.magazines = append(r.magazines, magazine)
	r.magazinesByID[magazine.id] = magazine
	return magazine, nil
}

// NewArticle creates an article joining the given author and magazine under
// the given title, and appends it to the registry.
//
// Construction is atomic: a nil or foreign-registry author/magazine, or a
// title outside the permitted bound, fails with a ValidationError and
// leaves the registry untouched.
func (r *Registry) NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := validateAuthorRef(r, author); err != nil {
		return nil, err
	}
	if err := validateMagazineRef(r, magazine); err != nil {
		return nil, err
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	article := &Article{id: uuid.New(), author: author, magazine: magazine, title: title}
	r.articles = append(r.articles, article)
	return article, nil
}

// Articles returns all articles in creation order.
func (r *Registry) Articles() []*Article {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Article(nil), r.articles...)
}

// Authors returns all authors in creation order.
func (r *Registry) Authors() []*Author {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Author(nil), r.authors...)
}

// Magazines returns all magazines in creation order.
func (r *Registry) Magazines() []*Magazine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Magazine(nil), r.magazines...)
}

// ArticleCount returns the number of articles recorded so far.
func (r *Registry) ArticleCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

// AuthorByID looks up an author by ID.
// Returns ErrNotFound if no such author was created through this registry.
func (r *Registry) AuthorByID(id uuid.UUID) (*Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	author, ok := r.authorsByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return author, nil
}

// MagazineByID looks up a magazine by ID.
// Returns ErrNotFound if no such magazine was created through this registry.
func (r *Registry) MagazineByID(id uuid.UUID) (*Magazine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	magazine, ok := r.magazinesByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return magazine, nil
}

// TopPublisher returns the magazine with the most articles, or nil if the
// registry holds no articles at all. A tie at the maximum count resolves to
// the earliest-created magazine: magazines are scanned in creation order and
// the leader is replaced only on a strictly greater count.
func (r *Registry) TopPublisher() *Magazine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[*Magazine]int, len(r.magazines))
	for _, article := range r.articles {
		counts[article.magazine]++
	}

	var top *Magazine
	best := 0
	for _, magazine := range r.magazines {
		if counts[magazine] > best {
			top = magazine
			best = counts[magazine]
		}
	}
	return top
}

// articlesWhere returns articles matching the predicate, in creation order.
func (r *Registry) articlesWhere(keep func(*Article) bool) []*Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Article
	for _, article := range r.articles {
		if keep(article) {
			matched = append(matched, article)
		}
	}
	return matched
}
