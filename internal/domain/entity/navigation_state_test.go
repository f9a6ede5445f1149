package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workbench/navstate/internal/domain/entity"
)

func TestNewNavigationState(t *testing.T) {
	s := entity.NewNavigationState("20251217_205106_a7b3")

	assert.Equal(t, entity.NavigationStateVersion, s.Version)
	assert.Equal(t, entity.SessionID("20251217_205106_a7b3"), s.SessionID)
	assert.Empty(t, s.Token)
	assert.False(t, s.SavedAt.IsZero())
	require.NoError(t, s.Validate())
}

func TestNavigationState_Validate(t *testing.T) {
	var nilState *entity.NavigationState
	require.ErrorIs(t, nilState.Validate(), entity.ErrInvalidNavigationState)

	missingSession := &entity.NavigationState{Version: entity.NavigationStateVersion}
	require.ErrorIs(t, missingSession.Validate(), entity.ErrInvalidNavigationState)

	future := &entity.NavigationState{Version: entity.NavigationStateVersion + 1, SessionID: "x"}
	require.ErrorIs(t, future.Validate(), entity.ErrInvalidNavigationState)

	zero := &entity.NavigationState{SessionID: "x"}
	require.ErrorIs(t, zero.Validate(), entity.ErrInvalidNavigationState)
}
