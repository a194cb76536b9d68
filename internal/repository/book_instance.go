package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/locallibrary/internal/model"
	"gorm.io/gorm"
)

type BookInstanceRepository interface {
	Create(ctx context.Context, bi *model.BookInstance) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error)
	List(ctx context.Context) ([]model.BookInstance, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error)
	Update(ctx context.Context, bi *model.BookInstance, appended *model.HistoryEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.Status) (int64, error)
	CountByBook(ctx context.Context, bookID uuid.UUID) (int64, error)
}

type GormBookInstanceRepository struct {
	db *gorm.DB
}

func NewGormBookInstanceRepository(db *gorm.DB) *GormBookInstanceRepository {
	return &GormBookInstanceRepository{db: db}
}

func historyByTime(db *gorm.DB) *gorm.DB {
	return db.Order("occurred_at ASC").Order("id ASC")
}

// Create inserts the instance together with the history entries it
// already carries.
func (r *GormBookInstanceRepository) Create(ctx context.Context, bi *model.BookInstance) error {
	ensureID(&bi.ID)
	for i := range bi.History {
		bi.History[i].BookInstanceID = bi.ID
	}
	return translate(r.db.WithContext(ctx).Omit("Book").Create(bi).Error)
}

func (r *GormBookInstanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	var bi model.BookInstance
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Book.Author").
		Preload("History", historyByTime).
		First(&bi, "id = ?", id).Error; err != nil {

		return nil, translate(err)
	}
	return &bi, nil
}

// List keeps insertion order.
func (r *GormBookInstanceRepository) List(ctx context.Context) ([]model.BookInstance, error) {
	var instances []model.BookInstance
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Order("creation_date ASC").
		Find(&instances).Error; err != nil {

		return nil, translate(err)
	}
	return instances, nil
}

func (r *GormBookInstanceRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	var instances []model.BookInstance
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("creation_date ASC").
		Find(&instances).Error; err != nil {

		return nil, translate(err)
	}
	return instances, nil
}

// Update rewrites the mutable columns and, when a transition happened,
// appends its history entry in the same transaction. creation_date and
// existing history rows are never written.
func (r *GormBookInstanceRepository) Update(ctx context.Context, bi *model.BookInstance, appended *model.HistoryEntry) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.BookInstance{}).
			Where("id = ?", bi.ID).
			Updates(map[string]any{
				"book_id":  bi.BookID,
				"imprint":  bi.Imprint,
				"status":   bi.Status,
				"due_back": bi.DueBack,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if appended == nil {
			return nil
		}
		appended.BookInstanceID = bi.ID
		return tx.Create(appended).Error
	}))
}

// Delete drops the instance and the history it owns.
func (r *GormBookInstanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.BookInstance{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("book_instance_id = ?", id).Delete(&model.HistoryEntry{}).Error
	}))
}

func (r *GormBookInstanceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.BookInstance{}).Count(&n).Error
	return n, translate(err)
}

func (r *GormBookInstanceRepository) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.BookInstance{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, translate(err)
}

func (r *GormBookInstanceRepository) CountByBook(ctx context.Context, bookID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.BookInstance{}).
		Where("book_id = ?", bookID).
		Count(&n).Error
	return n, translate(err)
}
