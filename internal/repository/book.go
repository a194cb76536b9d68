package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
	"gorm.io/gorm"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error)
	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
	PullGenre(ctx context.Context, genreID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Create stores the book and its genre references. The referenced author
// and genres must already exist; they are never upserted from here.
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	ensureID(&book.ID)
	return translate(r.db.WithContext(ctx).
		Omit("Author", "Genres.*").
		Create(book).Error)
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		First(&book, "id = ?", id).Error; err != nil {

		return nil, translate(err)
	}
	return &book, nil
}

// List projects every book to its title and author, ordered by title.
func (r *GormBookRepository) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Select("id", "title", "author_id").
		Preload("Author").
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

func (r *GormBookRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Select("id", "title", "summary", "author_id").
		Where("author_id = ?", authorID).
		Order("title ASC").
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

func (r *GormBookRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Select("books.id", "books.title", "books.summary", "books.author_id").
		Joins("JOIN book_genres ON book_genres.book_id = books.id").
		Where("book_genres.genre_id = ?", genreID).
		Order("books.title ASC").
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

// Update rewrites the scalar fields and replaces the genre set.
func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Book{}).
			Where("id = ?", book.ID).
			Updates(map[string]any{
				"title":     book.Title,
				"author_id": book.AuthorID,
				"summary":   book.Summary,
				"isbn":      book.ISBN,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Exec("DELETE FROM book_genres WHERE book_id = ?", book.ID).Error; err != nil {
			return err
		}
		for _, genre := range book.Genres {
			if err := tx.Exec(
				"INSERT INTO book_genres (book_id, genre_id) VALUES (?, ?)",
				book.ID, genre.ID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

func (r *GormBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM book_genres WHERE book_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Book{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}))
}

func (r *GormBookRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("author_id = ?", authorID).
		Count(&n).Error
	return n, translate(err)
}

// PullGenre removes the genre from every book's genre set and reports how
// many books were touched.
func (r *GormBookRepository) PullGenre(ctx context.Context, genreID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Exec("DELETE FROM book_genres WHERE genre_id = ?", genreID)
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormBookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&n).Error
	return n, translate(err)
}
