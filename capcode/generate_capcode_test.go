package capcode

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/capcode/business/issuance"
	"encore.app/capcode/mocks/business/issuance_business"
	"encore.app/capcode/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.

func TestGenerateCapcode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := issuance_business.NewMockBusiness(ctrl)
	service := &Service{business: mockBusiness}

	createdAt := time.Date(2024, 3, 1, 10, 4, 5, 123000000, time.UTC)
	const hashed = "$argon2id$v=19$m=4096,t=3,p=1$dGVzdC1zYWx0$aGFzaGVk"

	testCases := []struct {
		name           string
		outcome        model.Outcome
		expectedStatus int
		expectedBody   map[string]any
	}{
		{
			name: "success",
			outcome: model.Success{
				Original:    "1234567",
				Transformed: hashed,
				CreatedAt:   createdAt,
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]any{
				"success": true,
				"message": "Capcode generated and saved successfully",
				"data": map[string]any{
					"originalNumber": "1234567",
					"hashedCapcode":  hashed,
					"timestamp":      "2024-03-01T10:04:05.123Z",
				},
			},
		},
		{
			name: "persistence_failure_returns_test_data",
			outcome: model.Failure{
				Stage:   model.StagePersistenceFailed,
				Message: issuance.MessagePersistenceFailed,
				Err:     &model.StageError{Stage: model.StagePersistenceFailed, Err: errors.New("Database connection failed")},
				Recovered: &model.Recovered{
					Original:    "1234567",
					Transformed: hashed,
					CreatedAt:   createdAt,
				},
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: map[string]any{
				"success": false,
				"message": "Capcode generated but failed to save to database",
				"error":   "failed to save to database: Database connection failed",
				"testData": map[string]any{
					"originalNumber": "1234567",
					"hashedCapcode":  hashed,
					"timestamp":      "2024-03-01T10:04:05.123Z",
				},
			},
		},
		{
			name: "derivation_failure_has_no_payload",
			outcome: model.Failure{
				Stage:   model.StageDerivationFailed,
				Message: issuance.MessageFailed,
				Err:     &model.StageError{Stage: model.StageDerivationFailed, Err: errors.New("Hashing failed")},
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: map[string]any{
				"success": false,
				"message": "Failed to generate capcode",
				"error":   "failed to hash capcode: Hashing failed",
			},
		},
		{
			name: "generation_failure_has_no_payload",
			outcome: model.Failure{
				Stage:   model.StageGenerationFailed,
				Message: issuance.MessageFailed,
				Err:     &model.StageError{Stage: model.StageGenerationFailed, Err: errors.New("entropy source exhausted")},
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: map[string]any{
				"success": false,
				"message": "Failed to generate capcode",
				"error":   "failed to generate identifier: entropy source exhausted",
			},
		},
		{
			name: "recovered_data_ignored_outside_persistence",
			outcome: model.Failure{
				Stage:     model.StageDerivationFailed,
				Message:   issuance.MessageFailed,
				Err:       &model.StageError{Stage: model.StageDerivationFailed, Err: errors.New("Hashing failed")},
				Recovered: &model.Recovered{Original: "1234567"},
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody: map[string]any{
				"success": false,
				"message": "Failed to generate capcode",
				"error":   "failed to hash capcode: Hashing failed",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBusiness.EXPECT().
				Issue(gomock.Any()).
				Return(tc.outcome).
				Times(1)

			req := httptest.NewRequest(http.MethodGet, "/api/capcode/generate", nil)
			rec := httptest.NewRecorder()

			service.GenerateCapcode(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedBody, body)
		})
	}
}

func TestRenderOutcomeUnknown(t *testing.T) {
	status, response := renderOutcome(nil)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.False(t, response.Success)
	assert.Equal(t, issuance.MessageFailed, response.Message)
	assert.Nil(t, response.Data)
	assert.Nil(t, response.TestData)
}
