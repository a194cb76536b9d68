package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store bundles the four collections the catalog works against.
type Store struct {
	Authors       AuthorRepository
	Genres        GenreRepository
	Books         BookRepository
	BookInstances BookInstanceRepository
}

func NewGormStore(db *gorm.DB) Store {
	return Store{
		Authors:       NewGormAuthorRepository(db),
		Genres:        NewGormGenreRepository(db),
		Books:         NewGormBookRepository(db),
		BookInstances: NewGormBookInstanceRepository(db),
	}
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
