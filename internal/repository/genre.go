package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, g *model.Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	FindByName(ctx context.Context, name string) (*model.Genre, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error)
	List(ctx context.Context) ([]model.Genre, error)
	Update(ctx context.Context, g *model.Genre) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type GormGenreRepository struct {
	db *gorm.DB
}

func NewGormGenreRepository(db *gorm.DB) *GormGenreRepository {
	return &GormGenreRepository{db: db}
}

func (r *GormGenreRepository) Create(ctx context.Context, g *model.Genre) error {
	ensureID(&g.ID)
	return translate(r.db.WithContext(ctx).Create(g).Error)
}

func (r *GormGenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).First(&genre, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &genre, nil
}

// FindByName matches the name exactly, including case.
func (r *GormGenreRepository) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	var genre model.Genre
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&genre).Error; err != nil {
		return nil, translate(err)
	}
	return &genre, nil
}

func (r *GormGenreRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error) {
	if len(ids) == 0 {
		return []model.Genre{}, nil
	}

	var genres []model.Genre
	if err := r.db.WithContext(ctx).
		Where("id IN ?", idStrings(ids)).
		Order("name ASC").
		Find(&genres).Error; err != nil {

		return nil, translate(err)
	}
	return genres, nil
}

func (r *GormGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&genres).Error; err != nil {
		return nil, translate(err)
	}
	return genres, nil
}

func (r *GormGenreRepository) Update(ctx context.Context, g *model.Genre) error {
	result := r.db.WithContext(ctx).
		Model(&model.Genre{}).
		Where("id = ?", g.ID).
		Update("name", g.Name)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes only the genre row. Book references are pulled separately
// by BookRepository.PullGenre.
func (r *GormGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Genre{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormGenreRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Genre{}).Count(&n).Error
	return n, translate(err)
}
