// services/assistant_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"fittrack/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuickAction struct {
	ID     string         `json:"id"`
	Label  string         `json:"label"`
	Action string         `json:"action"`
	Data   map[string]any `json:"data,omitempty"`
}

// AssistantService answers chat messages with a hosted language model when
// a token is configured, falling back to canned responses otherwise. The
// reminder, motivation and suggestion flows are always canned.
type AssistantService struct {
	db     *gorm.DB
	client *http.Client
	token  string
	model  string
	rng    *rand.Rand
}

func NewAssistantService(db *gorm.DB) *AssistantService {
	return &AssistantService{
		db:     db,
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "google/flan-t5-small",
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (a *AssistantService) pick(pool []string) string {
	return pool[a.rng.Intn(len(pool))]
}

func (a *AssistantService) saveMessage(userID uint, sender, text, msgType string, actions []QuickAction) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		UserID: userID,
		Sender: sender,
		Text:   text,
		Type:   msgType,
	}
	if len(actions) > 0 {
		raw, _ := json.Marshal(actions)
		msg.QuickActions = datatypes.JSON(raw)
	}
	if err := a.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// Chat stores the user's turn and produces the assistant's reply.
func (a *AssistantService) Chat(userID uint, text string) (*models.ChatMessage, error) {
	if _, err := a.saveMessage(userID, "user", text, "chat", nil); err != nil {
		return nil, err
	}

	reply, err := a.generate(text)
	if err != nil || reply == "" {
		reply = a.pick(chatResponses)
	}

	return a.saveMessage(userID, "assistant", reply, "chat", []QuickAction{
		{ID: "hydration", Label: "💧 Log Water", Action: "hydration"},
		{ID: "workout", Label: "💪 Get Workout", Action: "workout"},
		{ID: "motivation", Label: "🌟 Need Motivation", Action: "motivation"},
	})
}

func (a *AssistantService) generate(text string) (string, error) {
	if a.token == "" {
		return "", fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	prompt := "You are a friendly fitness coach. Reply briefly and encouragingly.\nUser: " + text
	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": 96,
			"temperature":    0.7,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", a.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-wait-for-model", "true")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode hf response error: %w", err)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("empty response from hf")
	}
	return strings.TrimSpace(out[0].GeneratedText), nil
}

// HydrationReminder nudges the user to log water, with one-tap amounts.
func (a *AssistantService) HydrationReminder(userID uint) (*models.ChatMessage, error) {
	return a.saveMessage(userID, "assistant", a.pick(hydrationReminders), "hydration", []QuickAction{
		{ID: "log-250ml", Label: "250ml", Action: "log_water", Data: map[string]any{"amount": 250}},
		{ID: "log-500ml", Label: "500ml", Action: "log_water", Data: map[string]any{"amount": 500}},
		{ID: "log-750ml", Label: "750ml", Action: "log_water", Data: map[string]any{"amount": 750}},
		{ID: "remind-later", Label: "Remind Later", Action: "remind_later"},
	})
}

// WorkoutMotivation sends either a pick-me-up after a missed session or a
// congratulation after a finished one.
func (a *AssistantService) WorkoutMotivation(userID uint, status string) (*models.ChatMessage, error) {
	var text string
	var actions []QuickAction
	switch status {
	case "missed":
		text = a.pick(motivationMissed)
		actions = []QuickAction{
			{ID: "quick-workout", Label: "⚡ Quick 15min Workout", Action: "quick_workout"},
			{ID: "reschedule", Label: "📅 Reschedule", Action: "reschedule"},
			{ID: "tomorrow", Label: "🌅 Plan Tomorrow", Action: "plan_tomorrow"},
		}
	case "completed":
		text = a.pick(motivationCompleted)
		actions = []QuickAction{
			{ID: "log-progress", Label: "📊 Log Progress", Action: "log_progress"},
			{ID: "share-achievement", Label: "🎉 Share Achievement", Action: "share"},
			{ID: "plan-next", Label: "➡️ Plan Next Workout", Action: "plan_next"},
		}
	default:
		return nil, fmt.Errorf("unknown motivation status: %s", status)
	}
	return a.saveMessage(userID, "assistant", text, "motivation", actions)
}

// WorkoutSuggestion proposes alternatives based on time and equipment.
func (a *AssistantService) WorkoutSuggestion(userID uint, timePref, equipment string) (*models.ChatMessage, error) {
	var pool []string
	text := "Here are some workout alternatives based on your preferences:\n\n"
	switch {
	case timePref == "short":
		pool = suggestionsShort
		text += "⏰ Since you're short on time, here are quick options:\n\n"
	case equipment == "none":
		pool = suggestionsBodyweight
		text += "🏠 No equipment? No problem! Try these bodyweight exercises:\n\n"
	case equipment == "available":
		pool = suggestionsEquipment
		text += "🏋️ Great! Here are some equipment-based workouts:\n\n"
	default:
		pool = append(append([]string{}, suggestionsShort...), suggestionsBodyweight...)
	}

	if len(pool) > 3 {
		pool = pool[:3]
	}
	text += strings.Join(pool, "\n\n")

	return a.saveMessage(userID, "assistant", text, "suggestion", []QuickAction{
		{ID: "start-workout", Label: "🚀 Start Workout", Action: "start_workout"},
		{ID: "save-for-later", Label: "💾 Save for Later", Action: "save_workout"},
		{ID: "more-options", Label: "🔄 More Options", Action: "more_suggestions"},
	})
}

// History returns the conversation oldest first.
func (a *AssistantService) History(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.ChatMessage
	err := a.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
