package ordering

import (
	"context"
	"time"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=order_repo.go -destination=mock/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	// FindByIDForUpdate takes a row lock so concurrent amend/cancel calls on
	// the same order serialize instead of clobbering each other.
	FindByIDForUpdate(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, order *Order) error
	FindHistory(ctx context.Context, userID string, filter HistoryFilter) ([]Order, error)
	FindByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Order, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, order *Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	return &order, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "id = ?", id).Error
	return &order, err
}

func (r *repository) Update(ctx context.Context, order *Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *repository) FindHistory(ctx context.Context, userID string, filter HistoryFilter) ([]Order, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		q = q.Where("delivery_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("delivery_date <= ?", filter.DateTo)
	}

	var orders []Order
	err := q.Order("delivery_date DESC, created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *repository) FindByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("delivery_date = ?", date.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
