package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/denmor86/ya-pedidos/internal/config"
	"github.com/denmor86/ya-pedidos/internal/logger"
	"github.com/denmor86/ya-pedidos/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
}

func requestsCount(t *testing.T, route string, status int) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, route, strconv.Itoa(status)).Write(&m))
	return m.GetCounter().GetValue()
}

func TestLogHandle(t *testing.T) {
	initLogger(t)

	r := chi.NewRouter()
	r.Use(LogHandle)
	r.Get("/pedido/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/implicit", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	testCases := []struct {
		TestName       string
		Path           string
		RequestID      string
		ExpectedStatus int
		ExpectedRoute  string
	}{
		{TestName: "Explicit status, generated id #1", Path: "/pedido/17", ExpectedStatus: http.StatusTeapot, ExpectedRoute: "/pedido/{id}"},
		{TestName: "Implicit 200, client id kept #2", Path: "/implicit", RequestID: "abc-123", ExpectedStatus: http.StatusOK, ExpectedRoute: "/implicit"},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			before := requestsCount(t, tc.ExpectedRoute, tc.ExpectedStatus)

			req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
			if tc.RequestID != "" {
				req.Header.Set(HeaderRequestID, tc.RequestID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.ExpectedStatus, w.Code)
			id := w.Header().Get(HeaderRequestID)
			if tc.RequestID != "" {
				assert.Equal(t, tc.RequestID, id)
			} else {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			}

			assert.Equal(t, before+1, requestsCount(t, tc.ExpectedRoute, tc.ExpectedStatus))
		})
	}
}

func TestRecover(t *testing.T) {
	initLogger(t)

	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/aprobar/1", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":true,"message":"Error interno del servidor"}`, w.Body.String())
}

func TestRecover_AbortHandler(t *testing.T) {
	initLogger(t)

	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
