package capcode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"encore.dev/rlog"

	"encore.app/capcode/business/issuance"
	"encore.app/capcode/model"
)

type CapcodeData struct {
	OriginalNumber string `json:"originalNumber"`
	HashedCapcode  string `json:"hashedCapcode"`
	Timestamp      string `json:"timestamp"`
}

type GenerateCapcodeResponse struct {
	Success  bool         `json:"success"`
	Message  string       `json:"message"`
	Error    string       `json:"error,omitempty"`
	Data     *CapcodeData `json:"data,omitempty"`
	TestData *CapcodeData `json:"testData,omitempty"`
}

// GenerateCapcode issues a new capcode. It is a raw endpoint because a failed
// persistence still answers with the generated data in the body.
//
//encore:api public raw method=GET path=/api/capcode/generate
func (s *Service) GenerateCapcode(w http.ResponseWriter, req *http.Request) {
	status, response := renderOutcome(s.business.Issue(req.Context()))
	writeJSON(w, status, response)
}

func renderOutcome(outcome model.Outcome) (int, *GenerateCapcodeResponse) {
	switch o := outcome.(type) {
	case model.Success:
		return http.StatusOK, &GenerateCapcodeResponse{
			Success: true,
			Message: issuance.MessageIssued,
			Data:    newCapcodeData(o.Original, o.Transformed, o.CreatedAt),
		}
	case model.Failure:
		response := &GenerateCapcodeResponse{
			Success: false,
			Message: o.Message,
		}
		if o.Err != nil {
			response.Error = o.Err.Error()
		}
		if o.Stage == model.StagePersistenceFailed && o.Recovered != nil {
			response.TestData = newCapcodeData(o.Recovered.Original, o.Recovered.Transformed, o.Recovered.CreatedAt)
		}
		return http.StatusInternalServerError, response
	default:
		rlog.Error("unknown pipeline outcome", "type", fmt.Sprintf("%T", outcome))
		return http.StatusInternalServerError, &GenerateCapcodeResponse{
			Success: false,
			Message: issuance.MessageFailed,
		}
	}
}

func newCapcodeData(original model.Identifier, transformed model.TransformedIdentifier, createdAt time.Time) *CapcodeData {
	return &CapcodeData{
		OriginalNumber: string(original),
		HashedCapcode:  string(transformed),
		Timestamp:      model.FormatTimestamp(createdAt),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rlog.Error("failed to write response", "error", err, "status", status)
	}
}
