package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	ierr "hrm/internal/errors"
	"hrm/internal/middleware"
	"hrm/internal/model"
	"hrm/internal/service"
	"hrm/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type TaxHandler struct {
	taxService service.TaxService
	secret     []byte
}

func NewTaxHandler(taxService service.TaxService, secret []byte) *TaxHandler {
	return &TaxHandler{taxService: taxService, secret: secret}
}

func (h *TaxHandler) RegisterRoutes(router *gin.RouterGroup) {
	taxes := router.Group("/api/taxes")
	taxes.Use(middleware.RequireRole(h.secret, "admin", "manager", "staff"))
	{
		taxes.GET("", h.GetTaxes)
		taxes.GET("/filter", h.GetFilteredTaxes)
		taxes.GET("/:id", h.GetTax)
	}

	manage := router.Group("/api/taxes")
	manage.Use(middleware.RequireRole(h.secret, "admin", "manager"))
	{
		manage.POST("", h.CreateTax)
		manage.PUT("/:id", h.UpdateTax)
		manage.PATCH("/:id/status", h.UpdateTaxStatus)
		manage.DELETE("/:id", h.DeleteTax)
	}
}

// GetTaxes returns every tax bracket in store order
// @Summary      List taxes
// @Tags         taxes
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.TaxResponse}
// @Router       /api/taxes [get]
func (h *TaxHandler) GetTaxes(c *gin.Context) {
	taxes, err := h.taxService.GetTaxes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, taxes))
}

// GetFilteredTaxes filters by salary range, percent range, creation date and status
// @Summary      Filter taxes
// @Tags         taxes
// @Security     BearerAuth
// @Produce      json
// @Param        min_salary   query  string  false  "Lower salary bound"
// @Param        max_salary   query  string  false  "Upper salary bound"
// @Param        min_percent  query  number  false  "Lower percent bound"
// @Param        max_percent  query  number  false  "Upper percent bound"
// @Param        added_on     query  string  false  "Added on or after (YYYY-MM-DD)"
// @Param        status       query  string  false  "InUse or NotInUse"
// @Param        order_by     query  string  false  "e.g. SalaryMinAscending"
// @Success      200  {object}  response.Response{data=[]service.TaxResponse}
// @Router       /api/taxes/filter [get]
func (h *TaxHandler) GetFilteredTaxes(c *gin.Context) {
	filter, err := parseTaxFilter(c)
	if err != nil {
		respondError(c, err)
		return
	}

	taxes, err := h.taxService.GetFilteredTaxes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, taxes))
}

// GetTax returns a single tax by ID
// @Summary      Get tax
// @Tags         taxes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  int  true  "Tax ID"
// @Success      200  {object}  response.Response{data=service.TaxResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/taxes/{id} [get]
func (h *TaxHandler) GetTax(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tax, err := h.taxService.GetTax(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tax))
}

// CreateTax creates a new bracket, in use from now on
// @Summary      Create tax
// @Tags         taxes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  service.CreateTaxRequest  true  "Tax bracket"
// @Success      201   {object}  response.Response{data=service.TaxResponse}
// @Router       /api/taxes [post]
func (h *TaxHandler) CreateTax(c *gin.Context) {
	var req service.CreateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tax, err := h.taxService.CreateTax(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, tax))
}

// UpdateTax replaces the salary bounds and percent of a tax
// @Summary      Update tax
// @Tags         taxes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "Tax ID"
// @Param        body  body  service.UpdateTaxRequest  true  "Tax bracket"
// @Success      200   {object}  response.Response{data=service.TaxResponse}
// @Router       /api/taxes/{id} [put]
func (h *TaxHandler) UpdateTax(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tax, err := h.taxService.UpdateTax(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tax))
}

// UpdateTaxStatus switches a tax between InUse and NotInUse
// @Summary      Update tax status
// @Tags         taxes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                             true  "Tax ID"
// @Param        body  body  service.UpdateTaxStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=service.TaxResponse}
// @Router       /api/taxes/{id}/status [patch]
func (h *TaxHandler) UpdateTaxStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateTaxStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}
	status, ok := model.ParseTaxStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Status must be InUse or NotInUse"))
		return
	}

	tax, err := h.taxService.UpdateTaxStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tax))
}

// DeleteTax permanently removes a tax
// @Summary      Delete tax
// @Tags         taxes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  int  true  "Tax ID"
// @Success      200  {object}  response.Response
// @Router       /api/taxes/{id} [delete]
func (h *TaxHandler) DeleteTax(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.taxService.DeleteTax(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"id": id}))
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid tax id"))
		return 0, false
	}
	return id, true
}

func parseTaxFilter(c *gin.Context) (service.TaxFilterRequest, error) {
	var filter service.TaxFilterRequest
	var details []ierr.ErrorDetail
	invalid := func(field, reason string) {
		details = append(details, ierr.ErrorDetail{Field: field, Descriptions: []string{reason}})
	}

	decimalParam := func(key string) *decimal.Decimal {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return nil
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			invalid(key, "must be a decimal number")
			return nil
		}
		return &v
	}
	floatParam := func(key string) *float64 {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invalid(key, "must be a number")
			return nil
		}
		return &v
	}

	filter.MinSalary = decimalParam("min_salary")
	filter.MaxSalary = decimalParam("max_salary")
	filter.MinPercent = floatParam("min_percent")
	filter.MaxPercent = floatParam("max_percent")

	if raw := strings.TrimSpace(c.Query("added_on")); raw != "" {
		if date, err := time.Parse(dateLayout, raw); err != nil {
			invalid("added_on", "must be a date in YYYY-MM-DD format")
		} else {
			filter.AddedOnOrAfter = &date
		}
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		if status, ok := model.ParseTaxStatus(raw); !ok {
			invalid("status", "must be InUse or NotInUse")
		} else {
			filter.Status = &status
		}
	}
	if raw := strings.TrimSpace(c.Query("order_by")); raw != "" {
		if orderBy, ok := model.ParseTaxOrderBy(raw); !ok {
			invalid("order_by", "unknown sort order")
		} else {
			filter.OrderBy = &orderBy
		}
	}

	if len(details) > 0 {
		return filter, ierr.NewError("invalid tax filter").
			WithHint("Invalid filter parameters.").
			WithDetails(details...).
			Mark(ierr.ErrValidation)
	}
	return filter, nil
}

// respondError writes the error envelope for err's kind and records err for the request log.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := ierr.HTTPStatusFromErr(err)
	message := ierr.Hint(err)
	if status >= http.StatusInternalServerError {
		message = "An unexpected error occurred"
	}
	if details := ierr.Details(err); len(details) > 0 {
		c.JSON(status, response.ErrorWithDetails(status, message, details))
		return
	}
	c.JSON(status, response.Error(status, message))
}
