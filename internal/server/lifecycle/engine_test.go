package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpetrovs/heirvault/internal/common"
	"github.com/dpetrovs/heirvault/internal/server/models"
	"github.com/dpetrovs/heirvault/internal/timex"
)

var allStatuses = []models.VaultStatus{
	models.StatusDraft, models.StatusNeedSetup, models.StatusSetupComplete,
	models.StatusActive, models.StatusGraceMaster, models.StatusGraceHeir,
	models.StatusUnlockable, models.StatusUnlocked, models.StatusExpired,
	models.StatusDeleted,
}

// allowedEdges mirrors the documented transition table, without the
// implicit self-edges and administrative jumps to Deleted.
var allowedEdges = map[models.VaultStatus][]models.VaultStatus{
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

func edgeAllowed(from, to models.VaultStatus) bool {
	if from == to || to == models.StatusDeleted {
		return true
	}
	for _, t := range allowedEdges[from] {
		if t == to {
			return true
		}
	}
	return false
}

func TestEngine_Transition_FullTable(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			clock := &timex.FixedClock{Instant: start}
			engine := NewEngine(clock)

			vault := &models.VaultRecord{
				ID:        "v1",
				Status:    from,
				UpdatedAt: start.Add(-time.Hour),
			}
			clock.Advance(time.Minute)

			err := engine.Transition(vault, to)

			if edgeAllowed(from, to) {
				require.NoError(t, err, "expected %s -> %s to be allowed", from, to)
				assert.Equal(t, to, vault.Status)
				assert.Equal(t, clock.Now(), vault.UpdatedAt, "%s -> %s must stamp updated_at", from, to)
			} else {
				require.Error(t, err, "expected %s -> %s to be rejected", from, to)
				assert.True(t, errors.Is(err, common.ErrInvalidTransition))
				assert.Equal(t, from, vault.Status, "rejected transition must not mutate status")
			}
		}
	}
}

func TestEngine_Transition_UnlockTimestampSideEffects(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &timex.FixedClock{Instant: start}
	engine := NewEngine(clock)

	vault := &models.VaultRecord{ID: "v1", Status: models.StatusUnlockable}

	require.NoError(t, engine.Transition(vault, models.StatusUnlocked))
	assert.Equal(t, start, vault.UnlockedAt, "entering Unlocked stamps the unlock timestamp")

	clock.Advance(time.Hour)
	require.NoError(t, engine.Transition(vault, models.StatusUnlocked))
	assert.Equal(t, start, vault.UnlockedAt, "idempotent no-op must not restamp")

	require.NoError(t, engine.Transition(vault, models.StatusExpired))
	assert.True(t, vault.UnlockedAt.IsZero(), "leaving Unlocked clears the unlock timestamp")
}

func TestEngine_Transition_AdministrativeDelete(t *testing.T) {
	clock := &timex.FixedClock{Instant: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	engine := NewEngine(clock)

	for _, from := range allStatuses {
		vault := &models.VaultRecord{ID: "v1", Status: from}
		require.NoError(t, engine.Transition(vault, models.StatusDeleted),
			"administrative override must reach Deleted from %s", from)
		assert.Equal(t, models.StatusDeleted, vault.Status)
	}
}

func TestEngine_Transition_NoEscapeFromDeleted(t *testing.T) {
	clock := &timex.FixedClock{Instant: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	engine := NewEngine(clock)

	for _, to := range allStatuses {
		if to == models.StatusDeleted {
			continue
		}
		vault := &models.VaultRecord{ID: "v1", Status: models.StatusDeleted}
		err := engine.Transition(vault, to)
		require.Error(t, err, "Deleted -> %s must be rejected", to)
	}
}
