package issuance

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/rlog"

	"encore.app/capcode/domain"
	"encore.app/capcode/model"
)

// Issue never retries a stage. The plain identifier is only returned to the caller,
// either on success or as recovered data after a persistence failure.
func (b *business) Issue(ctx context.Context) model.Outcome {
	runID := uuid.New()
	sm := domain.NewPipelineStateMachine()

	id, err := b.generator.Generate()
	if err != nil {
		return b.fail(runID, sm, err, nil)
	}
	if err := sm.TransitionToGenerated(); err != nil {
		return b.fail(runID, sm, err, nil)
	}

	cfg, err := b.config.ForRun(b.entropy)
	if err != nil {
		return b.fail(runID, sm, err, nil)
	}
	transformed, err := b.deriver.Derive(id, cfg)
	if err != nil {
		return b.fail(runID, sm, err, nil)
	}
	if err := sm.TransitionToTransformed(); err != nil {
		return b.fail(runID, sm, err, nil)
	}

	record := model.Record{
		ID:                    b.newID(),
		TransformedIdentifier: transformed,
		CreatedAt:             b.clock().UTC(),
	}
	if err := b.gateway.Put(ctx, record); err != nil {
		return b.fail(runID, sm, err, &model.Recovered{
			Original:    id,
			Transformed: transformed,
			CreatedAt:   record.CreatedAt,
		})
	}
	if err := sm.TransitionToPersisted(); err != nil {
		return b.fail(runID, sm, err, nil)
	}

	rlog.Info("capcode issued", "run_id", runID, "record_id", record.ID)

	return model.Success{
		Original:    id,
		Transformed: transformed,
		CreatedAt:   record.CreatedAt,
	}
}

// fail closes the run at the failure exit of its current state. Recovered data is only
// kept when the failing stage is persistence.
func (b *business) fail(runID uuid.UUID, sm *domain.PipelineStateMachine, cause error, recovered *model.Recovered) model.Outcome {
	from := sm.State()
	stage, err := sm.Fail()
	if err != nil {
		rlog.Error("pipeline failed outside a stage", "error", err, "run_id", runID, "state", from)
		stage = model.StagePersistenceFailed
	}

	failure := model.Failure{
		Stage:   stage,
		Message: MessageFailed,
		Err:     &model.StageError{Stage: stage, Err: cause},
	}
	if stage == model.StagePersistenceFailed && recovered != nil {
		failure.Message = MessagePersistenceFailed
		failure.Recovered = recovered
	}

	rlog.Error("capcode pipeline failed", "error", failure.Err, "run_id", runID, "stage", stage, "state", from)

	return failure
}
