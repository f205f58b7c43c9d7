package api

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgNotFound   = "Not found"
	msgBadRequest = "Bad request"
)

// EmployeeService is the set of operations the handler delegates to.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Create(ctx context.Context, payload models.Employee) (models.Employee, error)
	Get(ctx context.Context, identifier int) (models.Employee, error)
	Update(ctx context.Context, identifier int, payload models.Employee) (models.Employee, error)
	Delete(ctx context.Context, identifier int) (models.Employee, error)
}

// Handler serves the /employees resource.
type Handler struct {
	log     *slog.Logger
	service EmployeeService
}

func NewHandler(log *slog.Logger, service EmployeeService) *Handler {
	return &Handler{log: log, service: service}
}

// errorResponse mirrors the error body clients of the service already parse.
type errorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func writeError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
		Path:    c.Request.URL.Path,
	})
}

// writeServiceError maps a service error to a response. Anything but a missing employee is a server fault.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, employees.ErrEmployeeNotFound) {
		writeError(c, http.StatusNotFound, msgNotFound)
		return
	}

	h.log.ErrorContext(c.Request.Context(), "employee request failed",
		"method", c.Request.Method, "path", c.FullPath(), sl.Err(err))
	writeError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func pathID(c *gin.Context) (int, bool) {
	// identifiers are int4 in storage
	identifier, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		writeError(c, http.StatusBadRequest, msgBadRequest)
		return 0, false
	}

	return int(identifier), true
}

func bindEmployee(c *gin.Context) (models.Employee, bool) {
	var payload models.Employee

	body, err := c.GetRawData()
	if err != nil || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		writeError(c, http.StatusBadRequest, msgBadRequest)
		return models.Employee{}, false
	}

	if err = binding.JSON.BindBody(body, &payload); err != nil {
		writeError(c, http.StatusBadRequest, msgBadRequest)
		return models.Employee{}, false
	}

	return payload, true
}

// List handles GET /employees.
func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Create handles POST /employees.
func (h *Handler) Create(c *gin.Context) {
	payload, ok := bindEmployee(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetByID handles GET /employees/:id.
func (h *Handler) GetByID(c *gin.Context) {
	identifier, ok := pathID(c)
	if !ok {
		return
	}

	employee, err := h.service.Get(c.Request.Context(), identifier)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Update handles PUT /employees/:id. A successful update answers 201 Created.
func (h *Handler) Update(c *gin.Context) {
	identifier, ok := pathID(c)
	if !ok {
		return
	}

	payload, ok := bindEmployee(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), identifier, payload)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, updated)
}

// Delete handles DELETE /employees/:id and answers with the removed employee.
func (h *Handler) Delete(c *gin.Context) {
	identifier, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), identifier)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleted)
}
