package handler

import (
	"net/http"

	"reimbursement_tracker/internal/apperr"
	"reimbursement_tracker/internal/middleware"
	"reimbursement_tracker/internal/model"
	"reimbursement_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ReimbursementHandler exposes submission, editing and resolution of reimbursements.
type ReimbursementHandler struct {
	service service.ReimbursementService
	log     zerolog.Logger
}

// NewReimbursementHandler creates a new ReimbursementHandler
func NewReimbursementHandler(s service.ReimbursementService, log zerolog.Logger) *ReimbursementHandler {
	return &ReimbursementHandler{service: s, log: log}
}

func (h *ReimbursementHandler) GetAllReimbursements(c *gin.Context) {
	reimbs, err := h.service.GetAllReimb(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reimbs)
}

func (h *ReimbursementHandler) GetReimbursementByID(c *gin.Context) {
	reimb, err := h.service.GetReimbByID(c.Request.Context(), paramID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reimb)
}

func (h *ReimbursementHandler) GetReimbursementsByAuthor(c *gin.Context) {
	reimbs, err := h.service.GetReimbByAuthorID(c.Request.Context(), paramID(c, "id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reimbs)
}

func (h *ReimbursementHandler) GetReimbursementsByStatus(c *gin.Context) {
	reimbs, err := h.service.GetReimbByStatus(c.Request.Context(), model.ReimbStatus(c.Param("status")))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reimbs)
}

func (h *ReimbursementHandler) GetReimbursementsByType(c *gin.Context) {
	reimbs, err := h.service.GetReimbByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, reimbs)
}

// SubmitReimbursement files a new reimbursement authored by the caller.
func (h *ReimbursementHandler) SubmitReimbursement(c *gin.Context) {
	var req model.Reimbursement
	if !bindJSON(c, &req) {
		return
	}
	author, err := actingAs(c, req.Author)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	req.Author = author

	reimb, err := h.service.AddNewReimb(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, reimb)
}

func (h *ReimbursementHandler) UpdateReimbursement(c *gin.Context) {
	var req model.UpdateReimbursementRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.service.UpdateReimb(c.Request.Context(), req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reimbursement updated successfully"})
}

// ResolveReimbursement approves or denies a pending reimbursement on behalf
// of the calling finance manager.
func (h *ReimbursementHandler) ResolveReimbursement(c *gin.Context) {
	var req model.ResolveReimbursementRequest
	if !bindJSON(c, &req) {
		return
	}
	resolver, err := actingAs(c, req.Resolver)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	req.Resolver = resolver

	if _, err := h.service.ResolveReimb(c.Request.Context(), req); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reimbursement resolved successfully"})
}

// actingAs returns the caller's username. A body naming anyone else is refused.
func actingAs(c *gin.Context, claimed string) (string, error) {
	caller := middleware.AuthUsername(c)
	if claimed != "" && claimed != caller {
		return "", apperr.Authorization("You can only act as yourself.")
	}
	return caller, nil
}

// RegisterReimbursementRoutes registers reimbursement routes
func (h *ReimbursementHandler) RegisterReimbursementRoutes(rg *gin.RouterGroup, authMW, financeMW, userMW, generalMW gin.HandlerFunc) {
	reimbs := rg.Group("/reimbursements")
	reimbs.Use(authMW)

	fm := reimbs.Group("/fm")
	fm.Use(financeMW)
	{
		fm.GET("", h.GetAllReimbursements)
		fm.GET("/status/:status", h.GetReimbursementsByStatus)
		fm.GET("/type/:type", h.GetReimbursementsByType)
		fm.PUT("", h.ResolveReimbursement)
	}

	employee := reimbs.Group("/employee")
	employee.Use(userMW)
	{
		employee.GET("/:id", h.GetReimbursementsByAuthor)
		employee.POST("", h.SubmitReimbursement)
		employee.PUT("", h.UpdateReimbursement)
	}

	reimbs.GET("/:id", generalMW, h.GetReimbursementByID)
}
