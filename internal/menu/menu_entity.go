package menu

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuEntry is read-only from the ordering engine's perspective; the catalog
// is maintained by a separate back-office system.
type MenuEntry struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DeliveryDate time.Time       `gorm:"type:date;not null;index:idx_menu_entries_date"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(150);not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsAvailable  bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time       `gorm:"not null;default:now()"`
	UpdatedAt    time.Time       `gorm:"not null;default:now()"`
}

func (MenuEntry) TableName() string {
	return "menu_entries"
}
