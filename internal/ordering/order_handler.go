package ordering

import (
	"net/http"
	"strconv"

	orderingerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/ordering/errors"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/apperror"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("ordering.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ordering.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("order request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")
	companyID := c.GetString("company_id")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), userID, orderID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Cancel(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	resp, err := h.service.Cancel(c.Request.Context(), userID, orderID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), userID, orderID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

type historySummary struct {
	TotalCount   int             `json:"total_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalPayment decimal.Decimal `json:"total_payment"`
}

type historyResponse struct {
	Orders  []OrderResponse `json:"orders"`
	Summary historySummary  `json:"summary"`
}

// History returns the caller's orders plus totals over the filtered set.
// Cancelled orders count zero toward the money totals.
func (h *Handler) History(c *gin.Context) {
	userID := c.GetString("user_id")

	filter := HistoryFilter{
		Status:   c.Query("status"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	orders, err := h.service.History(c.Request.Context(), userID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	summary := historySummary{
		TotalCount:   len(orders),
		TotalAmount:  decimal.Zero,
		TotalPayment: decimal.Zero,
	}
	for _, o := range orders {
		if o.Status == StatusCancelled {
			continue
		}
		summary.TotalAmount = summary.TotalAmount.Add(o.TotalAmount)
		summary.TotalPayment = summary.TotalPayment.Add(o.UserPaymentAmount)
	}

	response.Success(c, http.StatusOK, historyResponse{Orders: orders, Summary: summary})
}

// AvailableDates accepts an optional days query; zero means the configured
// default window.
func (h *Handler) AvailableDates(c *gin.Context) {
	companyID := c.GetString("company_id")

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeServiceError(c, orderingerrors.ErrInvalidDaysParam)
			return
		}
		days = parsed
	}

	resp, err := h.service.AvailableDates(c.Request.Context(), companyID, days)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// CompanyOrders is the admin daily report: all of the company's orders for
// one delivery date, with the same totals shape as History.
func (h *Handler) CompanyOrders(c *gin.Context) {
	companyID := c.GetString("company_id")
	date := c.Query("date")

	orders, err := h.service.CompanyOrdersForDate(c.Request.Context(), companyID, date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	summary := historySummary{
		TotalCount:   len(orders),
		TotalAmount:  decimal.Zero,
		TotalPayment: decimal.Zero,
	}
	for _, o := range orders {
		if o.Status == StatusCancelled {
			continue
		}
		summary.TotalAmount = summary.TotalAmount.Add(o.TotalAmount)
		summary.TotalPayment = summary.TotalPayment.Add(o.UserPaymentAmount)
	}

	response.Success(c, http.StatusOK, historyResponse{Orders: orders, Summary: summary})
}

func (h *Handler) CheckDeadline(c *gin.Context) {
	companyID := c.GetString("company_id")
	date := c.Query("date")

	resp, err := h.service.CheckDeadline(c.Request.Context(), companyID, date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
