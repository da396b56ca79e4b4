package releaseHold

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/http-server/handlers/hold/releaseHold/mocks"
	"github.com/TranNguyenMinhKhoi/vtour-booking/internal/lib/logger/handlers/slogdiscard"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseHoldHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		holdID         string
		mockSetup      func(mock *mocks.HoldReleaser)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			holdID: "hold-1",
			mockSetup: func(mock *mocks.HoldReleaser) {
				mock.On("Release", "hold-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			// Unknown holds release cleanly, same as expired ones.
			name:   "Unknown hold",
			holdID: "missing",
			mockSetup: func(mock *mocks.HoldReleaser) {
				mock.On("Release", "missing").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:   "Internal server error",
			holdID: "hold-1",
			mockSetup: func(mock *mocks.HoldReleaser) {
				mock.On("Release", "hold-1").Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to release hold"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockReleaser := mocks.NewHoldReleaser(t)
			tc.mockSetup(mockReleaser)

			handler := New(logger, mockReleaser)

			router := chi.NewRouter()
			router.Delete("/holds/{id}", handler)

			req, err := http.NewRequest("DELETE", "/holds/"+tc.holdID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
