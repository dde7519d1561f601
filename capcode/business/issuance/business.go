package issuance

import (
	"context"
	"crypto/rand"
	"io"
	"time"

	"github.com/google/uuid"

	"encore.app/capcode/business/derivation"
	"encore.app/capcode/business/identifier"
	"encore.app/capcode/model"
	"encore.app/capcode/store"
)

const (
	MessageIssued            = "Capcode generated and saved successfully"
	MessageFailed            = "Failed to generate capcode"
	MessagePersistenceFailed = "Capcode generated but failed to save to database"
)

type Business interface {
	// Issue runs generate, derive and persist once and reports what happened.
	Issue(ctx context.Context) model.Outcome
}

// business sequences the pipeline. It holds no per-run state, so concurrent Issue
// calls need no coordination.
type business struct {
	generator identifier.Generator
	deriver   derivation.Deriver
	gateway   store.Gateway
	config    derivation.Config

	entropy io.Reader
	clock   func() time.Time
	newID   func() uuid.UUID
}

// NewIssuanceBusiness creates the issuance pipeline
func NewIssuanceBusiness(
	generator identifier.Generator,
	deriver derivation.Deriver,
	gateway store.Gateway,
	config derivation.Config,
) Business {
	return &business{
		generator: generator,
		deriver:   deriver,
		gateway:   gateway,
		config:    config,
		entropy:   rand.Reader,
		clock:     time.Now,
		newID:     uuid.New,
	}
}
