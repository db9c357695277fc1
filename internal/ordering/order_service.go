package ordering

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/billing"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/company"
	companyerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/company/errors"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/deadline"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/events"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/menu"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/messaging/kafka"
	orderingerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/ordering/errors"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultHorizonDays = 7

//go:generate mockgen -source=order_service.go -destination=mock/order_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID, companyID string, req CreateOrderRequest) (OrderResponse, error)
	Update(ctx context.Context, userID, orderID string, req UpdateOrderRequest) (OrderResponse, error)
	Cancel(ctx context.Context, userID, orderID string) (OrderResponse, error)
	GetByID(ctx context.Context, userID, orderID string) (OrderResponse, error)
	History(ctx context.Context, userID string, filter HistoryFilter) ([]OrderResponse, error)
	AvailableDates(ctx context.Context, companyID string, days int) (AvailableDatesResponse, error)
	CheckDeadline(ctx context.Context, companyID, date string) (DeadlineCheckResponse, error)
	CompanyOrdersForDate(ctx context.Context, companyID, date string) ([]OrderResponse, error)
}

type service struct {
	db          *gorm.DB
	orders      Repository
	menus       menu.Service
	companies   company.Repository
	calc        *deadline.Calculator
	billing     billing.Calculator
	outbox      kafka.OutboxRepository
	horizonDays int
	now         func() time.Time
	logger      *zap.Logger
}

// NewService wires the ordering engine. outbox may be nil when lifecycle
// events are not wanted (tests, one-off tooling).
func NewService(
	db *gorm.DB,
	orders Repository,
	menus menu.Service,
	companies company.Repository,
	calc *deadline.Calculator,
	bill billing.Calculator,
	outbox kafka.OutboxRepository,
	horizonDays int,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, orders, menus, companies, calc, bill, outbox, horizonDays, time.Now, logger...)
}

// NewServiceWithClock takes an explicit clock so deadline behavior is
// testable down to the second.
func NewServiceWithClock(
	db *gorm.DB,
	orders Repository,
	menus menu.Service,
	companies company.Repository,
	calc *deadline.Calculator,
	bill billing.Calculator,
	outbox kafka.OutboxRepository,
	horizonDays int,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	l := zap.L().Named("ordering.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ordering.service")
	}

	return &service{
		db:          db,
		orders:      orders,
		menus:       menus,
		companies:   companies,
		calc:        calc,
		billing:     bill,
		outbox:      outbox,
		horizonDays: horizonDays,
		now:         now,
		logger:      l,
	}
}

// Create places an order. The deadline is evaluated against a single clock
// read so a request straddling the cutoff gets one consistent answer.
func (s *service) Create(ctx context.Context, userID, companyID string, req CreateOrderRequest) (OrderResponse, error) {
	now := s.now()

	day, err := s.parseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return OrderResponse{}, err
	}

	if req.Quantity < 1 {
		return OrderResponse{}, orderingerrors.ErrInvalidQuantity
	}

	comp, dl, err := s.companyDeadline(ctx, companyID)
	if err != nil {
		return OrderResponse{}, err
	}

	if !s.calc.IsOrderable(day, dl, now) {
		return OrderResponse{}, orderingerrors.ErrDeadlinePassed
	}
	if s.beyondHorizon(day, now) {
		return OrderResponse{}, orderingerrors.ErrDateOutsideWindow
	}

	entry, err := s.menus.EntryForOrder(ctx, req.ProductID, day)
	if err != nil {
		return OrderResponse{}, err
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return OrderResponse{}, orderingerrors.ErrOrderNotFound
	}

	total := entry.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))
	payment := s.billing.UserPayment(total, comp.SubsidyRate)

	order := &Order{
		ID:                uuid.New(),
		UserID:            uid,
		CompanyID:         comp.ID,
		DeliveryDate:      day,
		ProductID:         entry.ProductID,
		ProductName:       entry.Name,
		Quantity:          req.Quantity,
		UnitPrice:         entry.UnitPrice,
		TotalAmount:       total,
		UserPaymentAmount: payment,
		Notes:             req.Notes,
		Status:            StatusConfirmed,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return OrderResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.orders.WithTx(tx).Create(ctx, order); err != nil {
		return OrderResponse{}, err
	}

	if err := s.enqueueEventInTx(ctx, tx, events.OrderCreated, order); err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return OrderResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
		zap.String("delivery_date", req.DeliveryDate),
	)

	return mapToOrderResponse(*order), nil
}

// Update amends quantity and/or notes on a confirmed order before the cutoff.
// Amounts are recomputed from the stored unit price snapshot, never from the
// current catalog.
func (s *service) Update(ctx context.Context, userID, orderID string, req UpdateOrderRequest) (OrderResponse, error) {
	now := s.now()

	if req.Quantity != nil && *req.Quantity < 1 {
		return OrderResponse{}, orderingerrors.ErrInvalidQuantity
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return OrderResponse{}, tx.Error
	}
	defer tx.Rollback()

	order, err := s.lockOwnOrder(ctx, tx, userID, orderID)
	if err != nil {
		return OrderResponse{}, err
	}

	if order.Status != StatusConfirmed {
		return OrderResponse{}, orderingerrors.ErrOrderNotEditable
	}

	comp, dl, err := s.companyDeadline(ctx, order.CompanyID.String())
	if err != nil {
		return OrderResponse{}, err
	}

	if !s.calc.IsOrderable(order.DeliveryDate, dl, now) {
		return OrderResponse{}, orderingerrors.ErrDeadlinePassed
	}

	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	order.TotalAmount = order.UnitPrice.Mul(decimal.NewFromInt(int64(order.Quantity)))
	order.UserPaymentAmount = s.billing.UserPayment(order.TotalAmount, comp.SubsidyRate)

	if err := s.orders.WithTx(tx).Update(ctx, order); err != nil {
		return OrderResponse{}, err
	}

	if err := s.enqueueEventInTx(ctx, tx, events.OrderAmended, order); err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return OrderResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("order amended",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
	)

	return mapToOrderResponse(*order), nil
}

// Cancel marks a confirmed order cancelled. Cancellation obeys the same
// cutoff as amendment: after the deadline the kitchen is already committed.
func (s *service) Cancel(ctx context.Context, userID, orderID string) (OrderResponse, error) {
	now := s.now()

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return OrderResponse{}, tx.Error
	}
	defer tx.Rollback()

	order, err := s.lockOwnOrder(ctx, tx, userID, orderID)
	if err != nil {
		return OrderResponse{}, err
	}

	if order.Status == StatusCancelled {
		return OrderResponse{}, orderingerrors.ErrOrderAlreadyCancelled
	}

	_, dl, err := s.companyDeadline(ctx, order.CompanyID.String())
	if err != nil {
		return OrderResponse{}, err
	}

	if !s.calc.IsOrderable(order.DeliveryDate, dl, now) {
		return OrderResponse{}, orderingerrors.ErrDeadlinePassed
	}

	order.Status = StatusCancelled

	if err := s.orders.WithTx(tx).Update(ctx, order); err != nil {
		return OrderResponse{}, err
	}

	if err := s.enqueueEventInTx(ctx, tx, events.OrderCancelled, order); err != nil {
		return OrderResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return OrderResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("order cancelled",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID),
	)

	return mapToOrderResponse(*order), nil
}

func (s *service) GetByID(ctx context.Context, userID, orderID string) (OrderResponse, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return OrderResponse{}, orderingerrors.ErrInvalidOrderID
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, orderingerrors.ErrOrderNotFound
		}
		return OrderResponse{}, err
	}

	if order.UserID.String() != userID {
		return OrderResponse{}, orderingerrors.ErrOrderNotFound
	}

	return mapToOrderResponse(*order), nil
}

func (s *service) History(ctx context.Context, userID string, filter HistoryFilter) ([]OrderResponse, error) {
	if err := validateHistoryFilter(filter); err != nil {
		return nil, err
	}

	orders, err := s.orders.FindHistory(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return mapToOrderListResponse(orders), nil
}

// AvailableDates lists the open dates over the next days. The window is
// capped at the configured horizon: a longer listing would show dates Create
// rejects.
func (s *service) AvailableDates(ctx context.Context, companyID string, days int) (AvailableDatesResponse, error) {
	now := s.now()

	if days <= 0 || days > s.horizonDays {
		days = s.horizonDays
	}

	comp, dl, err := s.companyDeadline(ctx, companyID)
	if err != nil {
		return AvailableDatesResponse{}, err
	}

	open := OrderableDates(s.calc, dl, now, days)

	dates := make([]OrderableDate, 0, len(open))
	for _, day := range open {
		dates = append(dates, OrderableDate{
			Date:     day.Format("2006-01-02"),
			CutoffAt: s.calc.CutoffInstant(day, dl).Format(time3339),
		})
	}

	return AvailableDatesResponse{Dates: dates, DeadlineTime: comp.DeadlineTime}, nil
}

func (s *service) CheckDeadline(ctx context.Context, companyID, date string) (DeadlineCheckResponse, error) {
	now := s.now()

	day, err := s.parseDeliveryDate(date)
	if err != nil {
		return DeadlineCheckResponse{}, err
	}

	comp, dl, err := s.companyDeadline(ctx, companyID)
	if err != nil {
		return DeadlineCheckResponse{}, err
	}

	return DeadlineCheckResponse{
		Date:             date,
		IsBeforeDeadline: s.calc.IsOrderable(day, dl, now),
		Deadline:         s.calc.CutoffInstant(day, dl).Format(time3339),
		DeadlineTime:     comp.DeadlineTime,
	}, nil
}

// CompanyOrdersForDate lists every order in the company for one delivery
// date, for the admin-facing daily report.
func (s *service) CompanyOrdersForDate(ctx context.Context, companyID, date string) ([]OrderResponse, error) {
	day, err := s.parseDeliveryDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := uuid.Parse(companyID); err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	orders, err := s.orders.FindByCompanyAndDate(ctx, companyID, day)
	if err != nil {
		return nil, err
	}

	return mapToOrderListResponse(orders), nil
}

// --- helpers ---

func (s *service) parseDeliveryDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.calc.Location())
	if err != nil {
		return time.Time{}, orderingerrors.ErrInvalidDateFormat
	}
	return day, nil
}

func (s *service) beyondHorizon(day time.Time, now time.Time) bool {
	last := s.calc.DateOf(now).AddDate(0, 0, s.horizonDays)
	return day.After(last)
}

// companyDeadline loads the company and resolves its cutoff time-of-day.
func (s *service) companyDeadline(ctx context.Context, companyID string) (*company.Company, deadline.Time, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return nil, deadline.Time{}, companyerrors.ErrInvalidCompanyID
	}

	comp, err := s.companies.GetByID(ctx, cid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deadline.Time{}, companyerrors.ErrCompanyNotFound
		}
		return nil, deadline.Time{}, err
	}
	if !comp.IsActive {
		return nil, deadline.Time{}, companyerrors.ErrCompanyInactive
	}

	dl, err := deadline.Parse(comp.DeadlineTime)
	if err != nil {
		return nil, deadline.Time{}, companyerrors.ErrDeadlineNotConfigured
	}

	return comp, dl, nil
}

// lockOwnOrder loads an order under a row lock and enforces ownership.
// Someone else's order looks identical to a missing one.
func (s *service) lockOwnOrder(ctx context.Context, tx *gorm.DB, userID, orderID string) (*Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, orderingerrors.ErrInvalidOrderID
	}

	order, err := s.orders.WithTx(tx).FindByIDForUpdate(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, orderingerrors.ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID.String() != userID {
		return nil, orderingerrors.ErrOrderNotFound
	}

	return order, nil
}

func (s *service) enqueueEventInTx(ctx context.Context, tx *gorm.DB, eventType string, order *Order) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.OrderLifecycleEvent{
		EventType:    eventType,
		OrderID:      order.ID.String(),
		UserID:       order.UserID.String(),
		CompanyID:    order.CompanyID.String(),
		DeliveryDate: order.DeliveryDate.Format("2006-01-02"),
		Status:       order.Status,
		OccurredAt:   s.now(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "order",
		AggregateID:   order.ID.String(),
		EventType:     eventType,
		Topic:         events.OrderLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func validateHistoryFilter(filter HistoryFilter) error {
	if filter.Status != "" && filter.Status != StatusConfirmed && filter.Status != StatusCancelled {
		return orderingerrors.ErrInvalidStatusFilter
	}
	if filter.DateFrom != "" {
		if _, err := time.Parse("2006-01-02", filter.DateFrom); err != nil {
			return orderingerrors.ErrInvalidDateFormat
		}
	}
	if filter.DateTo != "" {
		if _, err := time.Parse("2006-01-02", filter.DateTo); err != nil {
			return orderingerrors.ErrInvalidDateFormat
		}
	}
	return nil
}
