package menu

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	menuerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/menu/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	DayMenuKeyPrefix = "menus:day:"
	dayMenuCacheTTL  = 10 * time.Minute
)

func GetDayMenuKey(date string) string {
	return DayMenuKeyPrefix + date
}

//go:generate mockgen -source=menu_service.go -destination=mock/menu_service_mock.go -package=mock
type Service interface {
	MenusForDate(ctx context.Context, date string) (DayMenuResponse, error)
	EntryForOrder(ctx context.Context, productID string, date time.Time) (*MenuEntry, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("menu_service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) MenusForDate(ctx context.Context, date string) (DayMenuResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DayMenuResponse{}, menuerrors.ErrInvalidDateFormat
	}

	cacheKey := GetDayMenuKey(date)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp DayMenuResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses the lunchtime stampede into one DB query per date.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		configured, err := s.repo.HasMenuForDate(ctx, day)
		if err != nil {
			return nil, err
		}

		entries, err := s.repo.FindAvailableByDate(ctx, day)
		if err != nil {
			return nil, err
		}

		resp := DayMenuResponse{
			Date:       date,
			Configured: configured,
			Menus:      mapToEntryListResponse(entries),
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, dayMenuCacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache day menu", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return DayMenuResponse{}, err
	}

	return v.(DayMenuResponse), nil
}

// EntryForOrder resolves a product snapshot at order time. Cache is bypassed
// on purpose: price and availability must be read fresh.
func (s *service) EntryForOrder(ctx context.Context, productID string, date time.Time) (*MenuEntry, error) {
	entry, err := s.repo.FindByProductAndDate(ctx, productID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, menuerrors.ErrMenuNotFound
		}
		return nil, err
	}
	return entry, nil
}
