package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	domainShipment "shipment-tracker/internal/domain/shipment"
	"shipment-tracker/internal/logger"
	shipmentUsecase "shipment-tracker/internal/usecase/shipment"
	"shipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Init("development"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// memoryRepository is a map-backed store implementing the shipment
// repository contract for handler tests.
type memoryRepository struct {
	shipments map[uuid.UUID]*domainShipment.Shipment
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{shipments: make(map[uuid.UUID]*domainShipment.Shipment)}
}

func (r *memoryRepository) Create(_ context.Context, s *domainShipment.Shipment) error {
	for _, existing := range r.shipments {
		if existing.TrackingNumber == s.TrackingNumber {
			return domainShipment.ErrDuplicateTrackingNumber
		}
	}

	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	for i := range s.History {
		s.History[i].ID = uuid.New()
		s.History[i].ShipmentID = s.ID
	}
	r.shipments[s.ID] = s
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, shipmentID uuid.UUID) (*domainShipment.Shipment, error) {
	s, ok := r.shipments[shipmentID]
	if !ok {
		return nil, domainShipment.ErrShipmentNotFound
	}
	return s, nil
}

func (r *memoryRepository) GetByTrackingNumber(_ context.Context, trackingNumber string) (*domainShipment.Shipment, error) {
	for _, s := range r.shipments {
		if s.TrackingNumber == trackingNumber {
			return s, nil
		}
	}
	return nil, domainShipment.ErrShipmentNotFound
}

func (r *memoryRepository) ExistsByTrackingNumber(_ context.Context, trackingNumber string) (bool, error) {
	for _, s := range r.shipments {
		if s.TrackingNumber == trackingNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*domainShipment.Shipment, error) {
	result := make([]*domainShipment.Shipment, 0, len(r.shipments))
	for _, s := range r.shipments {
		result = append(result, s)
	}
	return result, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, shipmentID uuid.UUID, entry *domainShipment.HistoryEntry) error {
	s, ok := r.shipments[shipmentID]
	if !ok {
		return domainShipment.ErrShipmentNotFound
	}

	entry.ID = uuid.New()
	entry.ShipmentID = shipmentID
	s.Status = entry.Status
	s.Remark = entry.Remark
	s.UpdatedAt = entry.Timestamp
	s.History = append(s.History, *entry)
	return nil
}

func (r *memoryRepository) AddRemark(_ context.Context, shipmentID uuid.UUID, entry *domainShipment.HistoryEntry) error {
	s, ok := r.shipments[shipmentID]
	if !ok {
		return domainShipment.ErrShipmentNotFound
	}

	entry.ID = uuid.New()
	entry.ShipmentID = shipmentID
	s.Remark = entry.Remark
	s.UpdatedAt = entry.Timestamp
	s.History = append(s.History, *entry)
	return nil
}

func (r *memoryRepository) UpdateFreightCost(_ context.Context, shipmentID uuid.UUID, cost decimal.Decimal) error {
	s, ok := r.shipments[shipmentID]
	if !ok {
		return domainShipment.ErrShipmentNotFound
	}
	s.FreightCost = cost
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, shipmentID uuid.UUID) error {
	if _, ok := r.shipments[shipmentID]; !ok {
		return domainShipment.ErrShipmentNotFound
	}
	delete(r.shipments, shipmentID)
	return nil
}

func (r *memoryRepository) Statistics(_ context.Context) (*domainShipment.Statistics, error) {
	stats := &domainShipment.Statistics{}
	for _, s := range r.shipments {
		stats.Total++
		switch {
		case s.Status == domainShipment.StatusDelivered:
			stats.Delivered++
		case s.Status == domainShipment.StatusPending:
			stats.Pending++
		case s.Status.Active():
			stats.Active++
		}
	}
	return stats, nil
}

// newTestRouter wires the real service against a memory repository and
// stubs the auth middleware with a fixed staff user.
func newTestRouter(t *testing.T) (*gin.Engine, *memoryRepository) {
	t.Helper()

	repo := newMemoryRepository()
	generator := shipmentUsecase.NewNumberGenerator(repo, "TRK")
	service := shipmentUsecase.NewService(repo, generator, nil)
	handler := NewShipmentHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterPublicRoutes(v1)

	staff := v1.Group("")
	staff.Use(func(c *gin.Context) {
		c.Set("userID", uuid.New())
		c.Set("role", "staff")
		c.Next()
	})
	handler.RegisterStaffRoutes(staff)
	handler.RegisterAdminRoutes(staff)

	return router, repo
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var resp utils.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func createPayload() map[string]any {
	return map[string]any{
		"sender_name":      "Adaeze Okafor",
		"sender_phone":     "+2348031234567",
		"sender_address":   "14 Marina Road, Lagos",
		"recipient_name":   "Kwame Mensah",
		"recipient_phone":  "+233244112233",
		"delivery_address": "7 Liberation Ave, Accra",
		"origin":           "Lagos",
		"destination":      "Accra",
		"remark":           "Fragile cargo",
	}
}

func createShipment(t *testing.T, router *gin.Engine) map[string]any {
	t.Helper()

	recorder := performRequest(router, http.MethodPost, "/api/v1/shipments", createPayload())
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	resp := decodeResponse(t, recorder)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	return data
}

func TestTrack(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createShipment(t, router)
	trackingNumber := created["tracking_number"].(string)

	recorder := performRequest(router, http.MethodGet, "/api/v1/tracking/"+trackingNumber, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	resp := decodeResponse(t, recorder)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, trackingNumber, data["tracking_number"])
	assert.Equal(t, "pending", data["status"])

	history, ok := data["history"].([]any)
	require.True(t, ok)
	assert.Len(t, history, 1)
}

func TestTrack_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := performRequest(router, http.MethodGet, "/api/v1/tracking/TRK000000000", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	resp := decodeResponse(t, recorder)
	assert.False(t, resp.Success)
}

func TestCreate_MissingFields(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := createPayload()
	delete(payload, "origin")
	delete(payload, "remark")

	recorder := performRequest(router, http.MethodPost, "/api/v1/shipments", payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	resp := decodeResponse(t, recorder)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Missing required fields")
	assert.Contains(t, resp.Message, "origin")
	assert.Contains(t, resp.Message, "remark")
}

func TestCreate_DuplicateTrackingNumber(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := createPayload()
	payload["tracking_number"] = "TRK123456789"

	recorder := performRequest(router, http.MethodPost, "/api/v1/shipments", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = performRequest(router, http.MethodPost, "/api/v1/shipments", payload)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.False(t, decodeResponse(t, recorder).Success)
}

func TestCreate_RequiresUserInContext(t *testing.T) {
	repo := newMemoryRepository()
	generator := shipmentUsecase.NewNumberGenerator(repo, "TRK")
	service := shipmentUsecase.NewService(repo, generator, nil)
	handler := NewShipmentHandler(service)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterStaffRoutes(v1)

	recorder := performRequest(router, http.MethodPost, "/api/v1/shipments", createPayload())
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdateStatus(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createShipment(t, router)
	shipmentID := created["id"].(string)

	body := map[string]any{
		"status":   "in transit",
		"location": "Cotonou",
		"remark":   "Cleared customs",
	}
	recorder := performRequest(router, http.MethodPatch, "/api/v1/shipments/"+shipmentID+"/status", body)
	assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	data := decodeResponse(t, recorder).Data.(map[string]any)
	assert.Equal(t, "in transit", data["status"])

	history := data["history"].([]any)
	require.Len(t, history, 2)
	latest := history[1].(map[string]any)
	assert.Equal(t, "in transit", latest["status"])
	assert.Equal(t, "Cotonou", latest["location"])
}

func TestUpdateStatus_MissingRemark(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createShipment(t, router)
	shipmentID := created["id"].(string)

	body := map[string]any{"status": "in transit"}
	recorder := performRequest(router, http.MethodPatch, "/api/v1/shipments/"+shipmentID+"/status", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, decodeResponse(t, recorder).Success)
}

func TestUpdateStatus_InvalidShipmentID(t *testing.T) {
	router, _ := newTestRouter(t)

	body := map[string]any{"status": "in transit", "remark": "moving"}
	recorder := performRequest(router, http.MethodPatch, "/api/v1/shipments/not-a-uuid/status", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateStatus_UnknownShipment(t *testing.T) {
	router, _ := newTestRouter(t)

	body := map[string]any{"status": "in transit", "remark": "moving"}
	recorder := performRequest(router, http.MethodPatch, "/api/v1/shipments/"+uuid.NewString()+"/status", body)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddRemark(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createShipment(t, router)
	shipmentID := created["id"].(string)

	body := map[string]any{"remark": "Recipient notified"}
	recorder := performRequest(router, http.MethodPost, "/api/v1/shipments/"+shipmentID+"/remarks", body)
	assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	data := decodeResponse(t, recorder).Data.(map[string]any)
	assert.Equal(t, "pending", data["status"])
	assert.Len(t, data["history"].([]any), 2)
}

func TestUpdateFreightCost(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createShipment(t, router)
	shipmentID := created["id"].(string)

	body := map[string]any{"freight_cost": "149.50"}
	recorder := performRequest(router, http.MethodPatch, "/api/v1/shipments/"+shipmentID+"/freight", body)
	assert.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	data := decodeResponse(t, recorder).Data.(map[string]any)
	assert.Equal(t, "149.5", data["freight_cost"])
	assert.Len(t, data["history"].([]any), 1)
}

func TestUpdateFreightCost_Negative(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createShipment(t, router)
	shipmentID := created["id"].(string)

	body := map[string]any{"freight_cost": "-10"}
	recorder := performRequest(router, http.MethodPatch, "/api/v1/shipments/"+shipmentID+"/freight", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDelete(t *testing.T) {
	router, repo := newTestRouter(t)
	created := createShipment(t, router)
	shipmentID := created["id"].(string)

	recorder := performRequest(router, http.MethodDelete, "/api/v1/shipments/"+shipmentID, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, repo.shipments)

	recorder = performRequest(router, http.MethodDelete, "/api/v1/shipments/"+shipmentID, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestStatistics(t *testing.T) {
	router, _ := newTestRouter(t)
	createShipment(t, router)
	created := createShipment(t, router)
	shipmentID := created["id"].(string)

	body := map[string]any{"status": "delivered", "remark": "Signed for"}
	recorder := performRequest(router, http.MethodPatch, "/api/v1/shipments/"+shipmentID+"/status", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = performRequest(router, http.MethodGet, "/api/v1/shipments/stats", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	data := decodeResponse(t, recorder).Data.(map[string]any)
	assert.Equal(t, float64(2), data["total"])
	assert.Equal(t, float64(1), data["pending"])
	assert.Equal(t, float64(1), data["delivered"])
	assert.Equal(t, float64(0), data["active"])
}
