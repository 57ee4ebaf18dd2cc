package event_test

import (
	"context"
	"testing"

	"github.com/kultoura/backend/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEventSrvc(t *testing.T) *event.EventSrvc {
	t.Helper()
	return event.NewEventSrvc(event.NewInMemEventRepo(), nil)
}

func TestActivateDeactivatesOtherEvents(t *testing.T) {
	srvc := setupEventSrvc(t)
	ctx := context.Background()

	first, err := srvc.CreateEvent(ctx, &event.CreateEventParams{Title: "First Festival"})
	require.NoError(t, err)
	second, err := srvc.CreateEvent(ctx, &event.CreateEventParams{Title: "Second Festival"})
	require.NoError(t, err)

	_, err = srvc.ActivateEvent(ctx, first.ID)
	require.NoError(t, err)
	_, err = srvc.ActivateEvent(ctx, second.ID)
	require.NoError(t, err)

	active, err := srvc.ListActiveEvents(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	reloaded, err := srvc.GetEvent(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.AdminActivated)
	assert.False(t, reloaded.ShowToJudges)
}

func TestDeactivateClearsCurrentPerformer(t *testing.T) {
	srvc := setupEventSrvc(t)
	ctx := context.Background()

	ev, err := srvc.CreateEvent(ctx, &event.CreateEventParams{Title: "Festival"})
	require.NoError(t, err)
	ev, err = srvc.AddParticipant(ctx, ev.ID, "Alpha Troupe")
	require.NoError(t, err)

	_, err = srvc.ActivateEvent(ctx, ev.ID)
	require.NoError(t, err)
	_, err = srvc.SetCurrentPerformer(ctx, ev.ID, ev.Participants[0].ID)
	require.NoError(t, err)

	ev, err = srvc.DeactivateEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Empty(t, ev.CurrentPerformer)
	assert.False(t, ev.ActiveForJudging())
}

func TestSetCurrentPerformerCompletesPrevious(t *testing.T) {
	srvc := setupEventSrvc(t)
	ctx := context.Background()

	ev, err := srvc.CreateEvent(ctx, &event.CreateEventParams{Title: "Festival"})
	require.NoError(t, err)
	ev, err = srvc.AddParticipant(ctx, ev.ID, "Alpha Troupe")
	require.NoError(t, err)
	ev, err = srvc.AddParticipant(ctx, ev.ID, "Beta Troupe")
	require.NoError(t, err)
	alpha, beta := ev.Participants[0].ID, ev.Participants[1].ID

	ev, err = srvc.SetCurrentPerformer(ctx, ev.ID, alpha)
	require.NoError(t, err)
	assert.Equal(t, event.StatusPerforming, ev.Participant(alpha).Status)

	ev, err = srvc.SetCurrentPerformer(ctx, ev.ID, beta)
	require.NoError(t, err)
	assert.Equal(t, event.StatusCompleted, ev.Participant(alpha).Status)
	assert.Equal(t, event.StatusPerforming, ev.Participant(beta).Status)
	assert.Equal(t, beta, ev.CurrentPerformer)

	// Clearing the stage completes the performer without replacing them.
	ev, err = srvc.SetCurrentPerformer(ctx, ev.ID, "")
	require.NoError(t, err)
	assert.Equal(t, event.StatusCompleted, ev.Participant(beta).Status)
	assert.Empty(t, ev.CurrentPerformer)
}

func TestMaxParticipantsEnforced(t *testing.T) {
	srvc := setupEventSrvc(t)
	ctx := context.Background()

	ev, err := srvc.CreateEvent(ctx, &event.CreateEventParams{Title: "Festival", MaxParticipants: 1})
	require.NoError(t, err)

	_, err = srvc.AddParticipant(ctx, ev.ID, "Alpha Troupe")
	require.NoError(t, err)
	_, err = srvc.AddParticipant(ctx, ev.ID, "Beta Troupe")
	require.Error(t, err)
}

func TestRemoveParticipantClearsStage(t *testing.T) {
	srvc := setupEventSrvc(t)
	ctx := context.Background()

	ev, err := srvc.CreateEvent(ctx, &event.CreateEventParams{Title: "Festival"})
	require.NoError(t, err)
	ev, err = srvc.AddParticipant(ctx, ev.ID, "Alpha Troupe")
	require.NoError(t, err)
	alpha := ev.Participants[0].ID

	_, err = srvc.SetCurrentPerformer(ctx, ev.ID, alpha)
	require.NoError(t, err)

	ev, err = srvc.RemoveParticipant(ctx, ev.ID, alpha)
	require.NoError(t, err)
	assert.Empty(t, ev.Participants)
	assert.Empty(t, ev.CurrentPerformer)
}

func TestCreateEventDefaultsToSequential(t *testing.T) {
	srvc := setupEventSrvc(t)

	ev, err := srvc.CreateEvent(context.Background(), &event.CreateEventParams{Title: "Festival"})
	require.NoError(t, err)
	assert.Equal(t, event.ModeSequential, ev.JudgingMode)

	_, err = srvc.CreateEvent(context.Background(), &event.CreateEventParams{
		Title: "Festival", JudgingMode: "invalid-mode",
	})
	require.Error(t, err)
}
