package model

import (
	"fmt"
	"time"
)

type Stage string

const (
	StageGenerationFailed  Stage = "generation_failed"
	StageDerivationFailed  Stage = "derivation_failed"
	StagePersistenceFailed Stage = "persistence_failed"
)

// stagePrefixes are prepended to the underlying cause of a stage failure.
var stagePrefixes = map[Stage]string{
	StageGenerationFailed:  "failed to generate identifier",
	StageDerivationFailed:  "failed to hash capcode",
	StagePersistenceFailed: "failed to save to database",
}

// StageError wraps the cause of a failed pipeline stage with the stage tag.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	prefix, ok := stagePrefixes[e.Stage]
	if !ok {
		prefix = string(e.Stage)
	}
	if e.Err == nil {
		return prefix
	}
	return fmt.Sprintf("%s: %s", prefix, e.Err.Error())
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Outcome is the result of a single pipeline run. It is either Success or Failure.
type Outcome interface {
	isOutcome()
}

type Success struct {
	Original    Identifier
	Transformed TransformedIdentifier
	CreatedAt   time.Time
}

// Recovered carries already-computed results surfaced on a persistence failure.
type Recovered struct {
	Original    Identifier
	Transformed TransformedIdentifier
	CreatedAt   time.Time
}

type Failure struct {
	Stage   Stage
	Message string
	Err     error
	// Recovered is only set when Stage is StagePersistenceFailed.
	Recovered *Recovered
}

func (Success) isOutcome() {}
func (Failure) isOutcome() {}
