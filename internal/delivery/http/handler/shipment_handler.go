package handler

import (
	"net/http"

	"shipment-tracker/internal/usecase/shipment"
	"shipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShipmentHandler struct {
	service *shipment.Service
}

func NewShipmentHandler(service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// RegisterPublicRoutes exposes the unauthenticated tracking lookup.
func (h *ShipmentHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/tracking/:trackingNumber", h.Track)
}

// RegisterStaffRoutes exposes shipment management to authenticated staff.
func (h *ShipmentHandler) RegisterStaffRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipments")
	{
		shipments.POST("", h.Create)
		shipments.GET("", h.List)
		shipments.GET("/stats", h.Statistics)
		shipments.GET("/:id", h.Get)
		shipments.PATCH("/:id/status", h.UpdateStatus)
		shipments.POST("/:id/remarks", h.AddRemark)
		shipments.PATCH("/:id/freight", h.UpdateFreightCost)
	}
}

// RegisterAdminRoutes exposes destructive operations to admins only.
func (h *ShipmentHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.DELETE("/shipments/:id", h.Delete)
}

func (h *ShipmentHandler) Create(c *gin.Context) {
	var req shipment.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	result, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Shipment created successfully", result)
}

func (h *ShipmentHandler) Track(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")

	result, err := h.service.GetByTrackingNumber(c.Request.Context(), trackingNumber)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment found", result)
}

func (h *ShipmentHandler) Get(c *gin.Context) {
	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), shipmentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment found", result)
}

func (h *ShipmentHandler) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipments retrieved", result)
}

func (h *ShipmentHandler) Statistics(c *gin.Context) {
	result, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Statistics retrieved", result)
}

func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	var req shipment.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateStatus(c.Request.Context(), shipmentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

func (h *ShipmentHandler) AddRemark(c *gin.Context) {
	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	var req shipment.AddRemarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.AddRemark(c.Request.Context(), shipmentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Remark added successfully", result)
}

func (h *ShipmentHandler) UpdateFreightCost(c *gin.Context) {
	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	var req shipment.UpdateFreightCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateFreightCost(c.Request.Context(), shipmentID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Freight cost updated successfully", result)
}

func (h *ShipmentHandler) Delete(c *gin.Context) {
	shipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid shipment ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), shipmentID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Shipment deleted successfully", nil)
}

// currentUserID pulls the acting user's ID set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	return userID, ok
}
