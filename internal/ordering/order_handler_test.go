package ordering_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/ordering"
	orderingerrors "github.com/hipper-gif/smiley-kitchen-sub003/internal/ordering/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeOrderService struct {
	CreateFn               func(ctx context.Context, userID, companyID string, req ordering.CreateOrderRequest) (ordering.OrderResponse, error)
	UpdateFn               func(ctx context.Context, userID, orderID string, req ordering.UpdateOrderRequest) (ordering.OrderResponse, error)
	CancelFn               func(ctx context.Context, userID, orderID string) (ordering.OrderResponse, error)
	GetByIDFn              func(ctx context.Context, userID, orderID string) (ordering.OrderResponse, error)
	HistoryFn              func(ctx context.Context, userID string, filter ordering.HistoryFilter) ([]ordering.OrderResponse, error)
	AvailableDatesFn       func(ctx context.Context, companyID string, days int) (ordering.AvailableDatesResponse, error)
	CheckDeadlineFn        func(ctx context.Context, companyID, date string) (ordering.DeadlineCheckResponse, error)
	CompanyOrdersForDateFn func(ctx context.Context, companyID, date string) ([]ordering.OrderResponse, error)
}

func (f *fakeOrderService) Create(ctx context.Context, userID, companyID string, req ordering.CreateOrderRequest) (ordering.OrderResponse, error) {
	return f.CreateFn(ctx, userID, companyID, req)
}
func (f *fakeOrderService) Update(ctx context.Context, userID, orderID string, req ordering.UpdateOrderRequest) (ordering.OrderResponse, error) {
	return f.UpdateFn(ctx, userID, orderID, req)
}
func (f *fakeOrderService) Cancel(ctx context.Context, userID, orderID string) (ordering.OrderResponse, error) {
	return f.CancelFn(ctx, userID, orderID)
}
func (f *fakeOrderService) GetByID(ctx context.Context, userID, orderID string) (ordering.OrderResponse, error) {
	return f.GetByIDFn(ctx, userID, orderID)
}
func (f *fakeOrderService) History(ctx context.Context, userID string, filter ordering.HistoryFilter) ([]ordering.OrderResponse, error) {
	return f.HistoryFn(ctx, userID, filter)
}
func (f *fakeOrderService) AvailableDates(ctx context.Context, companyID string, days int) (ordering.AvailableDatesResponse, error) {
	return f.AvailableDatesFn(ctx, companyID, days)
}
func (f *fakeOrderService) CheckDeadline(ctx context.Context, companyID, date string) (ordering.DeadlineCheckResponse, error) {
	return f.CheckDeadlineFn(ctx, companyID, date)
}
func (f *fakeOrderService) CompanyOrdersForDate(ctx context.Context, companyID, date string) ([]ordering.OrderResponse, error) {
	return f.CompanyOrdersForDateFn(ctx, companyID, date)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withIdentity(userID, companyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("company_id", companyID)
		c.Next()
	}
}

func TestOrderHandler_Create(t *testing.T) {
	userID := uuid.New().String()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeOrderService{
			CreateFn: func(ctx context.Context, uid, cid string, req ordering.CreateOrderRequest) (ordering.OrderResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, companyID, cid)
				assert.Equal(t, 2, req.Quantity)
				return ordering.OrderResponse{
					ID:     uuid.New().String(),
					Status: "confirmed",
				}, nil
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.POST("/orders", withIdentity(userID, companyID), handler.Create)

		body := `{"delivery_date":"2025-03-10","product_id":"` + uuid.New().String() + `","quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.Nil(t, env.Error)
	})

	t.Run("validation failure never reaches the service", func(t *testing.T) {
		svc := &fakeOrderService{
			CreateFn: func(ctx context.Context, uid, cid string, req ordering.CreateOrderRequest) (ordering.OrderResponse, error) {
				t.Fatal("service should not be called")
				return ordering.OrderResponse{}, nil
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.POST("/orders", withIdentity(userID, companyID), handler.Create)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.NotNil(t, env.Error)
	})

	t.Run("deadline passed maps to 400 with code", func(t *testing.T) {
		svc := &fakeOrderService{
			CreateFn: func(ctx context.Context, uid, cid string, req ordering.CreateOrderRequest) (ordering.OrderResponse, error) {
				return ordering.OrderResponse{}, orderingerrors.ErrDeadlinePassed
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.POST("/orders", withIdentity(userID, companyID), handler.Create)

		body := `{"delivery_date":"2025-03-09","product_id":"` + uuid.New().String() + `","quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "DEADLINE_PASSED", env.Error.Code)
	})
}

func TestOrderHandler_History(t *testing.T) {
	userID := uuid.New().String()
	companyID := uuid.New().String()

	t.Run("summary skips cancelled orders", func(t *testing.T) {
		svc := &fakeOrderService{
			HistoryFn: func(ctx context.Context, uid string, filter ordering.HistoryFilter) ([]ordering.OrderResponse, error) {
				return []ordering.OrderResponse{
					{
						Status:            "confirmed",
						TotalAmount:       decimal.NewFromInt(1000),
						UserPaymentAmount: decimal.NewFromInt(700),
					},
					{
						Status:            "cancelled",
						TotalAmount:       decimal.NewFromInt(500),
						UserPaymentAmount: decimal.NewFromInt(350),
					},
					{
						Status:            "confirmed",
						TotalAmount:       decimal.NewFromInt(600),
						UserPaymentAmount: decimal.NewFromInt(420),
					},
				}, nil
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.GET("/orders", withIdentity(userID, companyID), handler.History)

		req := httptest.NewRequest(http.MethodGet, "/orders?status=&date_from=&date_to=", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)

		var data struct {
			Orders  []json.RawMessage `json:"orders"`
			Summary struct {
				TotalCount   int    `json:"total_count"`
				TotalAmount  string `json:"total_amount"`
				TotalPayment string `json:"total_payment"`
			} `json:"summary"`
		}
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data.Orders, 3)
		assert.Equal(t, 3, data.Summary.TotalCount)
		assert.Equal(t, "1600", data.Summary.TotalAmount)
		assert.Equal(t, "1120", data.Summary.TotalPayment)
	})

	t.Run("filter is passed through", func(t *testing.T) {
		var got ordering.HistoryFilter
		svc := &fakeOrderService{
			HistoryFn: func(ctx context.Context, uid string, filter ordering.HistoryFilter) ([]ordering.OrderResponse, error) {
				got = filter
				return nil, nil
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.GET("/orders", withIdentity(userID, companyID), handler.History)

		req := httptest.NewRequest(http.MethodGet, "/orders?status=cancelled&date_from=2025-03-01&date_to=2025-03-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "cancelled", got.Status)
		assert.Equal(t, "2025-03-01", got.DateFrom)
		assert.Equal(t, "2025-03-31", got.DateTo)
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	userID := uuid.New().String()
	companyID := uuid.New().String()

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeOrderService{
			GetByIDFn: func(ctx context.Context, uid, orderID string) (ordering.OrderResponse, error) {
				return ordering.OrderResponse{}, orderingerrors.ErrOrderNotFound
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.GET("/orders/:id", withIdentity(userID, companyID), handler.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/orders/"+uuid.New().String(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestOrderHandler_Cancel(t *testing.T) {
	userID := uuid.New().String()
	companyID := uuid.New().String()

	t.Run("double cancel maps to 400 invalid state", func(t *testing.T) {
		svc := &fakeOrderService{
			CancelFn: func(ctx context.Context, uid, orderID string) (ordering.OrderResponse, error) {
				return ordering.OrderResponse{}, orderingerrors.ErrOrderAlreadyCancelled
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.POST("/orders/:id/cancel", withIdentity(userID, companyID), handler.Cancel)

		req := httptest.NewRequest(http.MethodPost, "/orders/"+uuid.New().String()+"/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}

func TestOrderHandler_AvailableDates(t *testing.T) {
	userID := uuid.New().String()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakeOrderService{
			AvailableDatesFn: func(ctx context.Context, cid string, days int) (ordering.AvailableDatesResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, 0, days)
				return ordering.AvailableDatesResponse{
					Dates: []ordering.OrderableDate{
						{Date: "2025-03-10", CutoffAt: "2025-03-09T14:00:00+09:00"},
					},
					DeadlineTime: "14:00:00",
				}, nil
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.GET("/orders/available-dates", withIdentity(userID, companyID), handler.AvailableDates)

		req := httptest.NewRequest(http.MethodGet, "/orders/available-dates", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
		assert.Contains(t, string(env.Data), "2025-03-10")
		assert.Contains(t, string(env.Data), "deadline_time")
	})

	t.Run("days query is passed through", func(t *testing.T) {
		var got int
		svc := &fakeOrderService{
			AvailableDatesFn: func(ctx context.Context, cid string, days int) (ordering.AvailableDatesResponse, error) {
				got = days
				return ordering.AvailableDatesResponse{}, nil
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.GET("/orders/available-dates", withIdentity(userID, companyID), handler.AvailableDates)

		req := httptest.NewRequest(http.MethodGet, "/orders/available-dates?days=3", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, got)
	})

	t.Run("malformed days never reaches the service", func(t *testing.T) {
		svc := &fakeOrderService{
			AvailableDatesFn: func(ctx context.Context, cid string, days int) (ordering.AvailableDatesResponse, error) {
				t.Fatal("service should not be called")
				return ordering.AvailableDatesResponse{}, nil
			},
		}

		r := setupRouter()
		handler := ordering.NewHandler(svc)
		r.GET("/orders/available-dates", withIdentity(userID, companyID), handler.AvailableDates)

		req := httptest.NewRequest(http.MethodGet, "/orders/available-dates?days=soon", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}
