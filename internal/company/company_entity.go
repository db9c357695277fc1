package company

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Company struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code string    `gorm:"type:char(3);not null;uniqueIndex:uq_company_code"`
	Name string    `gorm:"type:varchar(150);not null"`

	// Time-of-day ordering cutoff, stored as HH:MM:SS
	DeadlineTime string          `gorm:"type:varchar(8);not null;default:'14:00:00'"`
	SubsidyRate  decimal.Decimal `gorm:"type:numeric(4,3);not null;default:0"`

	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}
