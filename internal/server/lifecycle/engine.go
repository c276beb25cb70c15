// Package lifecycle owns the vault status state machine: the transition
// table, its side effects, and the unlock condition evaluator.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/timex"
)

// transitions is the set of allowed status edges. A transition to the same
// status is always allowed as an idempotent no-op, and any status may be
// forced to Deleted by an administrative override; neither appears here.
var transitions = map[models.VaultStatus][]models.VaultStatus{
	models.StatusDraft:         {models.StatusNeedSetup},
	models.StatusNeedSetup:     {models.StatusSetupComplete},
	models.StatusSetupComplete: {models.StatusActive},
	models.StatusActive:        {models.StatusGraceMaster},
	models.StatusGraceMaster:   {models.StatusActive, models.StatusGraceHeir},
	models.StatusGraceHeir:     {models.StatusActive, models.StatusUnlockable, models.StatusExpired},
	models.StatusUnlockable:    {models.StatusUnlocked, models.StatusExpired},
	models.StatusUnlocked:      {models.StatusExpired},
	models.StatusExpired:       {models.StatusDeleted},
}

// CanTransition reports whether from → to is a legal edge, counting the
// idempotent self-transition and the administrative jump to Deleted.
func CanTransition(from, to models.VaultStatus) bool {
	if from == to {
		return true
	}
	if to == models.StatusDeleted {
		return true
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Engine validates and applies vault status transitions. It does not decide
// authorization; callers establish who may request a transition.
type Engine struct {
	clock timex.Clock
}

func NewEngine(clock timex.Clock) *Engine {
	return &Engine{clock: clock}
}

// Transition moves the vault to the target status, mutating it in place.
// It returns common.ErrInvalidTransition for edges outside the table.
//
// Side effects: every applied transition stamps UpdatedAt; entering
// Unlocked stamps UnlockedAt; leaving Unlocked clears it.
func (e *Engine) Transition(vault *models.VaultRecord, to models.VaultStatus) error {
	from := vault.Status

	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", common.ErrInvalidTransition, from, to)
	}

	now := e.clock.Now()

	if from == models.StatusUnlocked && to != models.StatusUnlocked {
		vault.UnlockedAt = time.Time{}
	}
	if to == models.StatusUnlocked && from != models.StatusUnlocked {
		vault.UnlockedAt = now
	}

	vault.Status = to
	vault.UpdatedAt = now
	return nil
}
