package menu_test

import (
	"context"
	"testing"
	"time"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/menu"
	menuerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/menu/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeMenuRepository struct {
	findAvailableByDateFn  func(ctx context.Context, date time.Time) ([]menu.MenuEntry, error)
	findByProductAndDateFn func(ctx context.Context, productID string, date time.Time) (*menu.MenuEntry, error)
	hasMenuForDateFn       func(ctx context.Context, date time.Time) (bool, error)
}

func (f *fakeMenuRepository) FindAvailableByDate(ctx context.Context, date time.Time) ([]menu.MenuEntry, error) {
	if f.findAvailableByDateFn != nil {
		return f.findAvailableByDateFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeMenuRepository) FindByProductAndDate(ctx context.Context, productID string, date time.Time) (*menu.MenuEntry, error) {
	if f.findByProductAndDateFn != nil {
		return f.findByProductAndDateFn(ctx, productID, date)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuRepository) HasMenuForDate(ctx context.Context, date time.Time) (bool, error) {
	if f.hasMenuForDateFn != nil {
		return f.hasMenuForDateFn(ctx, date)
	}
	return false, nil
}

func TestMenuService_MenusForDate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entries with configured flag", func(t *testing.T) {
		repo := &fakeMenuRepository{
			hasMenuForDateFn: func(ctx context.Context, date time.Time) (bool, error) {
				return true, nil
			},
			findAvailableByDateFn: func(ctx context.Context, date time.Time) ([]menu.MenuEntry, error) {
				return []menu.MenuEntry{
					{
						ID:        uuid.New(),
						ProductID: uuid.New(),
						Name:      "Karaage Bento",
						UnitPrice: decimal.NewFromInt(500),
					},
				}, nil
			},
		}

		svc := menu.NewService(repo, nil)

		resp, err := svc.MenusForDate(ctx, "2025-03-10")

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-10", resp.Date)
		assert.True(t, resp.Configured)
		assert.Len(t, resp.Menus, 1)
		assert.Equal(t, "Karaage Bento", resp.Menus[0].Name)
	})

	t.Run("unconfigured date is distinguishable from sold out", func(t *testing.T) {
		repo := &fakeMenuRepository{}
		svc := menu.NewService(repo, nil)

		resp, err := svc.MenusForDate(ctx, "2025-03-10")

		assert.NoError(t, err)
		assert.False(t, resp.Configured)
		assert.Empty(t, resp.Menus)
	})

	t.Run("bad date", func(t *testing.T) {
		svc := menu.NewService(&fakeMenuRepository{}, nil)

		_, err := svc.MenusForDate(ctx, "10/03/2025")

		assert.ErrorIs(t, err, menuerrors.ErrInvalidDateFormat)
	})
}

func TestMenuService_EntryForOrder(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		productID := uuid.New()
		repo := &fakeMenuRepository{
			findByProductAndDateFn: func(ctx context.Context, pid string, date time.Time) (*menu.MenuEntry, error) {
				assert.Equal(t, productID.String(), pid)
				return &menu.MenuEntry{ProductID: productID, Name: "Sakana Bento"}, nil
			},
		}

		svc := menu.NewService(repo, nil)

		entry, err := svc.EntryForOrder(ctx, productID.String(), day)

		assert.NoError(t, err)
		assert.Equal(t, "Sakana Bento", entry.Name)
	})

	t.Run("missing maps to menu not found", func(t *testing.T) {
		svc := menu.NewService(&fakeMenuRepository{}, nil)

		_, err := svc.EntryForOrder(ctx, uuid.New().String(), day)

		assert.ErrorIs(t, err, menuerrors.ErrMenuNotFound)
	})
}
