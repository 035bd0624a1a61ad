package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssistantService(t *testing.T) *AssistantService {
	t.Setenv("HUGGINGFACE_TOKEN", "")
	return NewAssistantService(newTestDB(t))
}

func decodeActions(t *testing.T, raw []byte) []QuickAction {
	t.Helper()
	var actions []QuickAction
	require.NoError(t, json.Unmarshal(raw, &actions))
	return actions
}

func TestChat_FallsBackWithoutToken(t *testing.T) {
	svc := newAssistantService(t)

	reply, err := svc.Chat(1, "how do I stay motivated?")
	require.NoError(t, err)
	assert.Equal(t, "assistant", reply.Sender)
	assert.Equal(t, "chat", reply.Type)
	assert.Contains(t, chatResponses, reply.Text)

	actions := decodeActions(t, reply.QuickActions)
	require.Len(t, actions, 3)
	assert.Equal(t, "hydration", actions[0].Action)

	// both turns are persisted
	history, err := svc.History(1, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Sender)
	assert.Equal(t, "how do I stay motivated?", history[0].Text)
	assert.Equal(t, "assistant", history[1].Sender)
}

func TestHydrationReminder(t *testing.T) {
	svc := newAssistantService(t)

	msg, err := svc.HydrationReminder(1)
	require.NoError(t, err)
	assert.Equal(t, "hydration", msg.Type)
	assert.Contains(t, hydrationReminders, msg.Text)

	actions := decodeActions(t, msg.QuickActions)
	require.Len(t, actions, 4)
	assert.Equal(t, "log_water", actions[0].Action)
	assert.EqualValues(t, 250, actions[0].Data["amount"])
	assert.Equal(t, "remind_later", actions[3].Action)
}

func TestWorkoutMotivation(t *testing.T) {
	svc := newAssistantService(t)

	missed, err := svc.WorkoutMotivation(1, "missed")
	require.NoError(t, err)
	assert.Contains(t, motivationMissed, missed.Text)
	assert.Equal(t, "quick_workout", decodeActions(t, missed.QuickActions)[0].Action)

	completed, err := svc.WorkoutMotivation(1, "completed")
	require.NoError(t, err)
	assert.Contains(t, motivationCompleted, completed.Text)
	assert.Equal(t, "log_progress", decodeActions(t, completed.QuickActions)[0].Action)

	_, err = svc.WorkoutMotivation(1, "skipped")
	assert.Error(t, err)
}

func TestWorkoutSuggestion_Branches(t *testing.T) {
	svc := newAssistantService(t)

	short, err := svc.WorkoutSuggestion(1, "short", "")
	require.NoError(t, err)
	assert.Contains(t, short.Text, "short on time")
	assert.Contains(t, short.Text, suggestionsShort[0])

	bodyweight, err := svc.WorkoutSuggestion(1, "", "none")
	require.NoError(t, err)
	assert.Contains(t, bodyweight.Text, "No equipment")

	equipped, err := svc.WorkoutSuggestion(1, "", "available")
	require.NoError(t, err)
	assert.Contains(t, equipped.Text, "equipment-based")

	mixed, err := svc.WorkoutSuggestion(1, "", "")
	require.NoError(t, err)
	assert.Equal(t, "suggestion", mixed.Type)
	assert.Contains(t, mixed.Text, suggestionsShort[0])
}

func TestHistory_LimitAndScoping(t *testing.T) {
	svc := newAssistantService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Chat(1, "hello")
		require.NoError(t, err)
	}
	_, err := svc.Chat(2, "other user")
	require.NoError(t, err)

	history, err := svc.History(1, 0)
	require.NoError(t, err)
	assert.Len(t, history, 6)
	for _, msg := range history {
		assert.EqualValues(t, 1, msg.UserID)
	}

	limited, err := svc.History(1, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
