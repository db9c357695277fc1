package registration

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/company"
	companyerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/company/errors"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/deadline"
	registrationerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/registration/errors"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/codegen"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/counter"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/user"
	usererrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/user/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	userCodeCounter = "user_code"

	// Bounded retries for storage-level code collisions. The pre-check in
	// codegen makes these rare; the unique constraint makes them safe.
	insertRetries = 3

	defaultDeadlineTime = "14:00:00"
)

//go:generate mockgen -source=registration_service.go -destination=mock/registration_service_mock.go -package=mock
type Service interface {
	RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (RegisterCompanyResponse, error)
	RegisterUser(ctx context.Context, req RegisterUserRequest) (RegisterUserResponse, error)
}

type service struct {
	db        *gorm.DB
	companies company.Repository
	users     user.Repository
	counters  counter.Repository

	// rngMu serializes code draws: a shared *rand.Rand is not safe for
	// concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand

	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	companies company.Repository,
	users user.Repository,
	counters counter.Repository,
	logger ...*zap.Logger,
) Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewServiceWithRand(db, companies, users, counters, rng, logger...)
}

// NewServiceWithRand constructs a Service with an explicit random source so
// code issuance is reproducible.
func NewServiceWithRand(
	db *gorm.DB,
	companies company.Repository,
	users user.Repository,
	counters counter.Repository,
	rng *rand.Rand,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("registration.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.service")
	}
	return &service{
		db:        db,
		companies: companies,
		users:     users,
		counters:  counters,
		rng:       rng,
		logger:    l,
	}
}

// RegisterCompany onboards a company together with its first admin user in a
// single transaction. Nothing is observable until the commit: no company row
// without a code, no company without its admin.
func (s *service) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (RegisterCompanyResponse, error) {
	s.logger.Debug("register company requested", zap.String("company_name", req.CompanyName))

	deadlineTime := defaultDeadlineTime
	if req.DeadlineTime != "" {
		parsed, err := deadline.Parse(req.DeadlineTime)
		if err != nil {
			return RegisterCompanyResponse{}, companyerrors.ErrInvalidDeadlineTime
		}
		deadlineTime = parsed.String()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return RegisterCompanyResponse{}, err
	}

	var lastErr error
	for attempt := 0; attempt < insertRetries; attempt++ {
		resp, err := s.tryRegisterCompany(ctx, req, deadlineTime, string(hashed))
		if err == nil {
			s.logger.Info("register company success",
				zap.String("company_id", resp.CompanyID),
				zap.String("company_code", resp.CompanyCode),
			)
			return resp, nil
		}

		// A code collision between the pre-check and the insert means a
		// concurrent registration won the race. Draw again.
		if isUniqueViolation(err, "uq_company_code") || isUniqueViolation(err, "uq_user_code") {
			s.logger.Warn("register company code collision, retrying",
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			lastErr = err
			continue
		}

		if isUniqueViolation(err, "uq_user_email") {
			return RegisterCompanyResponse{}, usererrors.ErrEmailAlreadyRegistered
		}

		return RegisterCompanyResponse{}, err
	}

	s.logger.Error("register company retries exhausted", zap.Error(lastErr))
	return RegisterCompanyResponse{}, codegen.ErrCodeSpaceExhausted
}

func (s *service) tryRegisterCompany(ctx context.Context, req RegisterCompanyRequest, deadlineTime, hashedPassword string) (RegisterCompanyResponse, error) {
	code, err := s.issueCompanyCode(ctx)
	if err != nil {
		return RegisterCompanyResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return RegisterCompanyResponse{}, tx.Error
	}
	defer tx.Rollback()

	comp := &company.Company{
		ID:           uuid.New(),
		Code:         code,
		Name:         req.CompanyName,
		DeadlineTime: deadlineTime,
		SubsidyRate:  decimal.Zero,
		IsActive:     true,
	}
	if err := s.companies.WithTx(tx).Create(ctx, comp); err != nil {
		return RegisterCompanyResponse{}, err
	}

	admin, err := s.createUserInTx(ctx, tx, comp, user.RoleCompanyAdmin, req.AdminName, req.AdminEmail, hashedPassword)
	if err != nil {
		return RegisterCompanyResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return RegisterCompanyResponse{}, err
	}

	return RegisterCompanyResponse{
		CompanyID:     comp.ID.String(),
		CompanyCode:   comp.Code,
		AdminUserID:   admin.ID.String(),
		AdminUserCode: admin.UserCode,
	}, nil
}

// RegisterUser signs a user up under an existing company identified by its
// 3-character code.
func (s *service) RegisterUser(ctx context.Context, req RegisterUserRequest) (RegisterUserResponse, error) {
	s.logger.Debug("register user requested",
		zap.String("company_code", req.CompanyCode),
		zap.String("email", req.Email),
	)

	comp, err := s.companies.GetByCode(ctx, req.CompanyCode)
	if err != nil {
		return RegisterUserResponse{}, registrationerrors.ErrCompanyCodeNotFound
	}
	if !comp.IsActive {
		return RegisterUserResponse{}, registrationerrors.ErrCompanyNotAccepting
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterUserResponse{}, err
	}

	var lastErr error
	for attempt := 0; attempt < insertRetries; attempt++ {
		tx := s.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return RegisterUserResponse{}, tx.Error
		}

		u, err := s.createUserInTx(ctx, tx, comp, user.RoleUser, req.Name, req.Email, string(hashed))
		if err == nil {
			if err := tx.Commit().Error; err != nil {
				return RegisterUserResponse{}, err
			}
			s.logger.Info("register user success",
				zap.String("user_id", u.ID.String()),
				zap.String("user_code", u.UserCode),
			)
			return RegisterUserResponse{
				UserID:    u.ID.String(),
				UserCode:  u.UserCode,
				CompanyID: comp.ID.String(),
			}, nil
		}

		tx.Rollback()

		// Re-derive and retry: another signup for the same company may have
		// claimed the sequence slot between derivation and insert.
		if isUniqueViolation(err, "uq_user_code") {
			s.logger.Warn("register user code collision, retrying", zap.Int("attempt", attempt+1))
			lastErr = err
			continue
		}

		if isUniqueViolation(err, "uq_user_email") {
			return RegisterUserResponse{}, usererrors.ErrEmailAlreadyRegistered
		}

		return RegisterUserResponse{}, err
	}

	s.logger.Error("register user retries exhausted", zap.Error(lastErr))
	return RegisterUserResponse{}, registrationerrors.ErrUserCodeConflict
}

func (s *service) issueCompanyCode(ctx context.Context) (string, error) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	return codegen.Issue(
		s.rng,
		func(candidate string) (bool, error) {
			return s.companies.ExistsByCode(ctx, candidate)
		},
		codegen.DefaultAlphabet,
		codegen.DefaultLength,
		codegen.DefaultMaxAttempts,
	)
}

// createUserInTx derives the next user code for the company and inserts the
// user, all inside the supplied transaction.
func (s *service) createUserInTx(ctx context.Context, tx *gorm.DB, comp *company.Company, role, name, email, hashedPassword string) (*user.User, error) {
	seq, err := s.counters.WithTx(tx).GetNextValue(ctx, comp.ID.String(), userCodeCounter)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:        uuid.New(),
		UserCode:  fmt.Sprintf("%s%04d", comp.Code, seq),
		CompanyID: comp.ID,
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		IsActive:  true,
	}

	if err := s.users.WithTx(tx).Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
