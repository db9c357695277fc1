package menu

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=menu_repo.go -destination=mock/menu_repo_mock.go -package=mock
type Repository interface {
	FindAvailableByDate(ctx context.Context, date time.Time) ([]MenuEntry, error)
	FindByProductAndDate(ctx context.Context, productID string, date time.Time) (*MenuEntry, error)
	HasMenuForDate(ctx context.Context, date time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAvailableByDate(ctx context.Context, date time.Time) ([]MenuEntry, error) {
	var entries []MenuEntry
	err := r.db.WithContext(ctx).
		Where("delivery_date = ?", date.Format("2006-01-02")).
		Where("is_available = ?", true).
		Order("name ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByProductAndDate(ctx context.Context, productID string, date time.Time) (*MenuEntry, error) {
	var entry MenuEntry
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Where("delivery_date = ?", date.Format("2006-01-02")).
		Where("is_available = ?", true).
		First(&entry).Error
	return &entry, err
}

func (r *repository) HasMenuForDate(ctx context.Context, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&MenuEntry{}).
		Where("delivery_date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}
