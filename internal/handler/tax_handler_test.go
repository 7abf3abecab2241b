package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"hrm/internal/repository"
	"hrm/internal/service"
	"hrm/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSecret = []byte("test-secret")

type envelope[T any] struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	Data       T      `json:"data"`
	Error      string `json:"error"`
	Errors     []struct {
		Field        string   `json:"field"`
		Descriptions []string `json:"descriptions"`
	} `json:"errors"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	auditRepo := repository.NewAuditRepository(db)
	taxService := service.NewTaxService(
		repository.NewUnitOfWork(db),
		repository.NewTaxRepository(db),
		auditRepo,
		zap.NewNop(),
	)

	router := gin.New()
	NewTaxHandler(taxService, testSecret).RegisterRoutes(router.Group(""))
	NewAuditHandler(service.NewAuditService(auditRepo), testSecret).RegisterRoutes(router.Group(""))
	return router
}

func token(t *testing.T, role string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-1",
		"role": role,
	}).SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func do(t *testing.T, router *gin.Engine, method, path, role string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+token(t, role))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func createTax(t *testing.T, router *gin.Engine, min, max string, percent float64) service.TaxResponse {
	t.Helper()
	w := do(t, router, http.MethodPost, "/api/taxes", "admin", map[string]interface{}{
		"salary_min": min,
		"salary_max": max,
		"percent":    percent,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[service.TaxResponse](t, w).Data
}

func TestTaxHandler_Auth(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		role     string
		wantCode int
	}{
		{"missing token", http.MethodGet, "/api/taxes", "", http.StatusUnauthorized},
		{"unknown role", http.MethodGet, "/api/taxes", "guest", http.StatusForbidden},
		{"staff can read", http.MethodGet, "/api/taxes", "staff", http.StatusOK},
		{"staff cannot delete", http.MethodDelete, "/api/taxes/1", "staff", http.StatusForbidden},
		{"staff cannot read audit", http.MethodGet, "/api/audit-logs", "staff", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.role, nil)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestTaxHandler_Create(t *testing.T) {
	router := setupRouter(t)

	t.Run("swaps reversed bounds", func(t *testing.T) {
		tax := createTax(t, router, "5000", "3000", 10)
		assert.NotZero(t, tax.ID)
		assert.True(t, tax.SalaryMin.Equal(decimal.NewFromInt(3000)))
		assert.True(t, tax.SalaryMax.Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, "InUse", tax.Status)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/taxes", "admin", map[string]interface{}{"salary_min": "10"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/taxes", "admin", "not an object")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaxHandler_GetTax(t *testing.T) {
	router := setupRouter(t)
	created := createTax(t, router, "1000", "2000", 5)

	w := do(t, router, http.MethodGet, "/api/taxes/"+strconv.Itoa(created.ID), "staff", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[service.TaxResponse](t, w).Data
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Timestamp, got.Timestamp)

	w = do(t, router, http.MethodGet, "/api/taxes/42", "staff", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decode[any](t, w)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, repository.TaxNotFoundMessage, env.Error)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "id", env.Errors[0].Field)

	w = do(t, router, http.MethodGet, "/api/taxes/abc", "staff", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaxHandler_GetTaxes(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodGet, "/api/taxes", "staff", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]service.TaxResponse](t, w).Data)

	createTax(t, router, "0", "1000", 0)
	createTax(t, router, "1000", "5000", 10)

	w = do(t, router, http.MethodGet, "/api/taxes", "staff", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]service.TaxResponse](t, w).Data, 2)
}

func TestTaxHandler_GetFilteredTaxes(t *testing.T) {
	router := setupRouter(t)
	a := createTax(t, router, "0", "5000", 0)
	b := createTax(t, router, "5000", "10000", 10)
	c := createTax(t, router, "10000", "20000", 20)

	tests := []struct {
		name     string
		query    string
		wantCode int
		wantIDs  []int
	}{
		{"no params", "", http.StatusOK, []int{a.ID, b.ID, c.ID}},
		{"reversed salary range", "?min_salary=20000&max_salary=5000", http.StatusOK, []int{b.ID, c.ID}},
		{"percent and order", "?min_percent=5&order_by=PercentDescending", http.StatusOK, []int{c.ID, b.ID}},
		{"status", "?status=NotInUse", http.StatusOK, []int{}},
		{"bad decimal", "?min_salary=lots", http.StatusBadRequest, nil},
		{"bad date", "?added_on=yesterday", http.StatusBadRequest, nil},
		{"bad order", "?order_by=Random", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/api/taxes/filter"+tt.query, "staff", nil)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantIDs == nil {
				return
			}
			ids := []int{}
			for _, tax := range decode[[]service.TaxResponse](t, w).Data {
				ids = append(ids, tax.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTaxHandler_UpdateTax(t *testing.T) {
	router := setupRouter(t)
	created := createTax(t, router, "1000", "2000", 5)
	path := "/api/taxes/" + strconv.Itoa(created.ID)

	w := do(t, router, http.MethodPut, path, "manager", map[string]interface{}{
		"salary_min": "2500",
		"salary_max": "1500",
		"percent":    7.5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[service.TaxResponse](t, w).Data
	assert.True(t, updated.SalaryMin.Equal(decimal.NewFromInt(1500)))
	assert.True(t, updated.SalaryMax.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 7.5, updated.Percent)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.Timestamp, updated.Timestamp)

	w = do(t, router, http.MethodPut, "/api/taxes/999", "manager", map[string]interface{}{
		"salary_min": "1", "salary_max": "2", "percent": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaxHandler_UpdateTaxStatus(t *testing.T) {
	router := setupRouter(t)
	created := createTax(t, router, "1000", "2000", 5)
	path := "/api/taxes/" + strconv.Itoa(created.ID)

	w := do(t, router, http.MethodPatch, path+"/status", "admin", map[string]string{"status": "NotInUse"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, router, http.MethodGet, path, "staff", nil)
	got := decode[service.TaxResponse](t, w).Data
	assert.Equal(t, "NotInUse", got.Status)
	assert.True(t, got.SalaryMin.Equal(created.SalaryMin))
	assert.True(t, got.SalaryMax.Equal(created.SalaryMax))
	assert.Equal(t, created.Percent, got.Percent)
	assert.Equal(t, created.Timestamp, got.Timestamp)

	w = do(t, router, http.MethodPatch, path+"/status", "admin", map[string]string{"status": "Archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPatch, "/api/taxes/77/status", "admin", map[string]string{"status": "InUse"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaxHandler_DeleteTax(t *testing.T) {
	router := setupRouter(t)
	created := createTax(t, router, "1000", "2000", 5)
	path := "/api/taxes/" + strconv.Itoa(created.ID)

	w := do(t, router, http.MethodDelete, path, "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, path, "staff", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodDelete, "/api/taxes/42", "admin", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuditHandler_GetAuditLogs(t *testing.T) {
	router := setupRouter(t)
	created := createTax(t, router, "1000", "2000", 5)
	w := do(t, router, http.MethodDelete, "/api/taxes/"+strconv.Itoa(created.ID), "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/audit-logs?page=1&limit=500", "manager", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decode[struct {
		Logs  []service.AuditLogResponse `json:"logs"`
		Total int64                      `json:"total"`
		Limit int                        `json:"limit"`
	}](t, w)
	assert.EqualValues(t, 2, env.Data.Total)
	assert.Equal(t, 100, env.Data.Limit)
	require.Len(t, env.Data.Logs, 2)
	for _, l := range env.Data.Logs {
		assert.Equal(t, "user-1", l.UserID)
		assert.Equal(t, strconv.Itoa(created.ID), l.EntityID)
	}
}
