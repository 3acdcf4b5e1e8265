// Package entity defines the core domain entities of the publishing model.
// It contains the fundamental business objects Author, Magazine, and Article,
// the Registry that records every article, and the validation rules and
// domain-specific errors that guard construction.
package entity

import "github.com/google/uuid"

// Article is the immutable join record between exactly one Author and one
// Magazine. Articles are created through Registry.NewArticle or
// Author.AddArticle; a successfully constructed article is already recorded
// in its registry and never changes afterwards.
type Article struct {
	id       uuid.UUID
	author   *Author
	magazine *Magazine
	title    string
}

// ID returns the unique identifier assigned at construction.
func (a *Article) ID() uuid.UUID {
	return a.id
}

// Author returns the author who wrote the article.
func (a *Article) Author() *Author {
	return a.author
}

// Magazine returns the magazine that published the article.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// Title returns the article title.
func (a *Article) Title() string {
	return a.title
}
