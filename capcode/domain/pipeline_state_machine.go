package domain

import (
	"fmt"

	"encore.app/capcode/model"
)

type PipelineState string

const (
	PipelineStateStart             PipelineState = "start"
	PipelineStateGenerated         PipelineState = "generated"
	PipelineStateTransformed       PipelineState = "transformed"
	PipelineStatePersisted         PipelineState = "persisted"
	PipelineStateGenerationFailed  PipelineState = "generation_failed"
	PipelineStateDerivationFailed  PipelineState = "derivation_failed"
	PipelineStatePersistenceFailed PipelineState = "persistence_failed"
)

// failureExits maps each non-terminal state to the failure it ends in.
var failureExits = map[PipelineState]model.Stage{
	PipelineStateStart:       model.StageGenerationFailed,
	PipelineStateGenerated:   model.StageDerivationFailed,
	PipelineStateTransformed: model.StagePersistenceFailed,
}

// PipelineStateMachine tracks a single run. Runs never share an instance and no
// transition re-enters an earlier state.
type PipelineStateMachine struct {
	state PipelineState
}

func NewPipelineStateMachine() *PipelineStateMachine {
	return &PipelineStateMachine{state: PipelineStateStart}
}

func (sm *PipelineStateMachine) State() PipelineState {
	return sm.state
}

// IsTerminal reports whether the run has finished, successfully or not.
func (sm *PipelineStateMachine) IsTerminal() bool {
	_, open := failureExits[sm.state]
	return !open
}

func (sm *PipelineStateMachine) TransitionToGenerated() error {
	return sm.transition(PipelineStateStart, PipelineStateGenerated)
}

func (sm *PipelineStateMachine) TransitionToTransformed() error {
	return sm.transition(PipelineStateGenerated, PipelineStateTransformed)
}

func (sm *PipelineStateMachine) TransitionToPersisted() error {
	return sm.transition(PipelineStateTransformed, PipelineStatePersisted)
}

// Fail moves the run into the failure exit of its current state and returns the stage
// that failed.
func (sm *PipelineStateMachine) Fail() (model.Stage, error) {
	stage, ok := failureExits[sm.state]
	if !ok {
		return "", fmt.Errorf("pipeline is already in terminal state %s", sm.state)
	}
	sm.state = PipelineState(stage)
	return stage, nil
}

func (sm *PipelineStateMachine) transition(from, to PipelineState) error {
	if sm.state != from {
		return fmt.Errorf("pipeline must be in %s state to transition to %s", from, to)
	}
	sm.state = to
	return nil
}
