package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Order keeps a snapshot of the product name and unit price as they were at
// creation time. Later catalog edits never change what the user agreed to pay.
type Order struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_user_date"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	DeliveryDate time.Time `gorm:"type:date;not null;index:idx_orders_user_date"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null"`
	ProductName  string    `gorm:"type:varchar(150);not null"`

	Quantity          int             `gorm:"not null"`
	UnitPrice         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	UserPaymentAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	Notes  string `gorm:"type:varchar(500)"`
	Status string `gorm:"type:varchar(20);not null;default:'confirmed'"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Order) TableName() string {
	return "orders"
}
