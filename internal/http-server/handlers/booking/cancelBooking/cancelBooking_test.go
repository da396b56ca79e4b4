package cancelBooking

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/booking"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/booking/cancelBooking/mocks"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/handlers/slogdiscard"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/models"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	summary := &models.CancellationSummary{
		BookingReference: "VT-ABC",
		BookingStatus:    models.BookingCancelled,
		CancelledAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		NumberOfSeats:    2,
		TotalAmount:      300,
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"bookingId": "VT-ABC", "email": "a@b.com"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelByReference", mock.Anything, "VT-ABC", "a@b.com").
					Return(summary, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"message":"booking cancelled successfully"`)
				assert.Contains(t, body, `"bookingStatus":"cancelled"`)
				assert.Contains(t, body, `"numberOfSeats":2`)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing booking ID",
			requestBody:    `{"email": "a@b.com"}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "BookingID")
			},
		},
		{
			name:           "Invalid email",
			requestBody:    `{"bookingId": "VT-ABC", "email": "not-an-email"}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:        "Booking not found",
			requestBody: `{"bookingId": "VT-NOPE", "email": "a@b.com"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelByReference", mock.Anything, "VT-NOPE", "a@b.com").
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:        "Email mismatch",
			requestBody: `{"bookingId": "VT-ABC", "email": "wrong@b.com"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelByReference", mock.Anything, "VT-ABC", "wrong@b.com").
					Return(nil, booking.ErrEmailMismatch)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"email does not match booking contact"}`,
		},
		{
			name:        "Already cancelled",
			requestBody: `{"bookingId": "VT-ABC", "email": "a@b.com"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelByReference", mock.Anything, "VT-ABC", "a@b.com").
					Return(nil, booking.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"booking can no longer be cancelled"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"bookingId": "VT-ABC", "email": "a@b.com"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelByReference", mock.Anything, "VT-ABC", "a@b.com").
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := New(logger, mockCanceller)

			req, err := http.NewRequest("PATCH", "/bookings/cancel-by-reference",
				bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
