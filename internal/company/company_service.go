package company

import (
	"context"
	"errors"

	companyerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/company/errors"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/deadline"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	GetSettings(ctx context.Context, id string) (*CompanyResponse, error)
	UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (*CompanyResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetSettings(ctx context.Context, id string) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	return mapToResponse(comp), nil
}

func (s *service) UpdateSettings(ctx context.Context, id string, req UpdateSettingsRequest) (*CompanyResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		comp.Name = req.Name
	}
	if req.DeadlineTime != "" {
		parsed, err := deadline.Parse(req.DeadlineTime)
		if err != nil {
			return nil, companyerrors.ErrInvalidDeadlineTime
		}
		comp.DeadlineTime = parsed.String()
	}
	if req.SubsidyRate != nil {
		rate, err := decimal.NewFromString(*req.SubsidyRate)
		if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, companyerrors.ErrInvalidSubsidyRate
		}
		comp.SubsidyRate = rate
	}
	if req.IsActive != nil {
		comp.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, comp); err != nil {
		s.logger.Error("update company settings persist failed",
			zap.String("company_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("company settings updated",
		zap.String("company_id", id),
		zap.String("deadline_time", comp.DeadlineTime),
	)

	return mapToResponse(comp), nil
}

func mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:           c.ID.String(),
		Code:         c.Code,
		Name:         c.Name,
		DeadlineTime: c.DeadlineTime,
		SubsidyRate:  c.SubsidyRate.String(),
		IsActive:     c.IsActive,
	}
}
