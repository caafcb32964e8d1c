package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parking-booking/internal/dto/request"
	"parking-booking/internal/dto/response"
	"parking-booking/internal/usecase"
	"parking-booking/pkg/utils"
)

func TestRenderServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", fmt.Errorf("%w: bad phone", usecase.ErrValidation), http.StatusBadRequest},
		{"slot taken", fmt.Errorf("%w: CAR section B on floor 2", usecase.ErrSlotTaken), http.StatusConflict},
		{"ticket not found", fmt.Errorf("%w: token 7", usecase.ErrTicketNotFound), http.StatusNotFound},
		{"not found", fmt.Errorf("%w: floor 99", usecase.ErrNotFound), http.StatusNotFound},
		{"config missing", fmt.Errorf("%w: CAR", usecase.ErrConfigMissing), http.StatusInternalServerError},
		{"unclassified", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			renderServiceError(rec, zap.NewNop(), tt.err, "test op")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body utils.Response
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.False(t, body.Status)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRenderServiceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	renderServiceError(rec, zap.NewNop(), fmt.Errorf("pq: relation tickets does not exist"), "checkout")

	var body utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), "relation")
}

type stubBookingService struct {
	checkoutResp *response.BillResponse
	checkoutErr  error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return nil, nil
}

func (s *stubBookingService) Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.BillResponse, error) {
	return s.checkoutResp, s.checkoutErr
}

func (s *stubBookingService) TokenPDF(ctx context.Context, ticketID int64) ([]byte, string, error) {
	return nil, "", nil
}

func TestCheckoutHandler(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{
		checkoutResp: &response.BillResponse{TicketID: 7, Hours: 3, Total: 50},
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"token":"7"}`))
	rec := httptest.NewRecorder()

	handler.Checkout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":50`)
}

func TestCheckoutHandlerUsedToken(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{
		checkoutErr: fmt.Errorf("%w: token 7", usecase.ErrTicketNotFound),
	}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"token":"7"}`))
	rec := httptest.NewRecorder()

	handler.Checkout(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or has already been checked out")
}

func TestCreateBookingHandlerRejectsMalformedBody(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHandlerFieldErrors(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	body := `{"slot_id":5,"vehicle_number":"RJ14 CC 1234","phone":"123","email":"user@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	errs, ok := resp.Errors.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "Phone")
}
