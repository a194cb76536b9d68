package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
	"gorm.io/gorm"
)

type AuthorRepository interface {
	Create(ctx context.Context, a *model.Author) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) Create(ctx context.Context, a *model.Author) error {
	ensureID(&a.ID)
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *GormAuthorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).First(&author, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &author, nil
}

// List returns every author ordered by family name.
func (r *GormAuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).
		Order("family_name ASC").
		Order("first_name ASC").
		Find(&authors).Error; err != nil {

		return nil, translate(err)
	}
	return authors, nil
}

func (r *GormAuthorRepository) Update(ctx context.Context, a *model.Author) error {
	result := r.db.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"first_name":    a.FirstName,
			"family_name":   a.FamilyName,
			"date_of_birth": a.DateOfBirth,
			"date_of_death": a.DateOfDeath,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Author{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAuthorRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Author{}).Count(&n).Error
	return n, translate(err)
}
