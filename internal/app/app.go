package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/company"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/menu"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/messaging/kafka"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/ordering"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/connection"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/counter"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultTimezone    = "Asia/Tokyo"
	defaultHorizonDays = 7
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&company.Company{},
		&user.User{},
		&menu.MenuEntry{},
		&ordering.Order{},
		&counter.CompanyCounter{},
		kafka.MigrationModel(),
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		// The portal must keep taking orders when the cache is down.
		zap.L().Warn("redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	}

	loc, err := loadTimezone()
	if err != nil {
		return err
	}

	return registerModules(router, db, redisClient, loc, horizonDays())
}

func loadTimezone() (*time.Location, error) {
	tz := os.Getenv("ORDER_TIMEZONE")
	if tz == "" {
		tz = defaultTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return loc, nil
}

func horizonDays() int {
	raw := os.Getenv("ORDER_HORIZON_DAYS")
	if raw == "" {
		return defaultHorizonDays
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		zap.L().Warn("invalid ORDER_HORIZON_DAYS, using default", zap.String("value", raw))
		return defaultHorizonDays
	}
	return days
}
