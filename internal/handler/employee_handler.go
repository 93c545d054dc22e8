package handler

import (
	"net/http"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/model"
	"reimbursement_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EmployeeHandler exposes employee administration.
type EmployeeHandler struct {
	service service.EmployeeService
	log     zerolog.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(s service.EmployeeService, log zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: s, log: log}
}

func (h *EmployeeHandler) GetAllEmployees(c *gin.Context) {
	employees, err := h.service.GetAllEmployees(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	employee, err := h.service.GetEmployeeByID(c.Request.Context(), paramID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// SearchEmployee looks an employee up by the single query parameter given,
// e.g. /employees/search?email=jdoe@example.com.
func (h *EmployeeHandler) SearchEmployee(c *gin.Context) {
	query := c.Request.URL.Query()
	if len(query) != 1 {
		respondError(c, h.log, apperr.BadRequest("Provide exactly one lookup key."))
		return
	}

	var key, value string
	for k := range query {
		key, value = k, query.Get(k)
	}

	employee, err := h.service.GetEmployeeByUniqueKey(c.Request.Context(), key, value)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req model.Employee
	if !bindJSON(c, &req) {
		return
	}

	employee, err := h.service.AddNewEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req model.Employee
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.UpdateEmployee(c.Request.Context(), req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if _, err := h.service.DeleteByID(c.Request.Context(), paramID(c, "id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

// RegisterEmployeeRoutes registers employee routes
func (h *EmployeeHandler) RegisterEmployeeRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	employees := rg.Group("/employees")
	employees.Use(authMW, adminMW)
	{
		employees.GET("", h.GetAllEmployees)
		employees.GET("/search", h.SearchEmployee)
		employees.GET("/:id", h.GetEmployeeByID)
		employees.POST("", h.CreateEmployee)
		employees.PUT("", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)
	}
}
