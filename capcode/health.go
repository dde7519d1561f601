package capcode

import (
	"context"
	"time"

	"encore.app/capcode/model"
)

type HealthResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

//encore:api public method=GET path=/health
func (s *Service) Health(ctx context.Context) (*HealthResponse, error) {
	return &HealthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: model.FormatTimestamp(time.Now()),
	}, nil
}
