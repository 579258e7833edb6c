package models

import (
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ClientConfig is one tenant's full AI/scheduling configuration as stored by
// the remote client repository. Field names follow the repository wire format.
type ClientConfig struct {
	ID        string `json:"id,omitempty"`
	AccountID int64  `json:"account_id" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`

	ClientName string `json:"client_name" validate:"required"`

	OpenAIModel       string  `json:"openai_ai_model"`
	Temperature       float64 `json:"temperature" validate:"gte=0,lte=2"`
	MaxResponseTokens int     `json:"max_response_tokens" validate:"gte=1,lte=4000"`

	// Secrets are opaque here. The backend encrypts them; the console only
	// ever reports configured / not set.
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`
	BotAPIKey    string `json:"bot_api_key,omitempty"`
	APIKey       string `json:"api_key,omitempty"`

	SystemPromptDefault             string `json:"system_prompt_default"`
	SystemPromptAttributes          string `json:"system_prompt_attributes"`
	SystemPromptLeadClassification  string `json:"system_prompt_lead_classification"`
	SystemPromptAppointmentSchedule string `json:"system_prompt_appointment_schedule"`
	SystemPromptFollowup            string `json:"system_prompt_followup"`

	CalendarID string     `json:"calendar_id,omitempty"`
	TimeZone   string     `json:"time_zone"`
	Reminders  []Reminder `json:"remainders_list"`

	// Deprecated single-reminder field still present on records created
	// before the list existed. Normalization folds it into Reminders.
	LegacyReminderMin int `json:"reminder_min,omitempty"`

	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Reminder is one named follow-up trigger. The first entry in a client's list
// is the initial follow-up; later entries fire after it, in order.
type Reminder struct {
	Time int    `json:"time"`
	Name string `json:"name"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	DefaultPrompt = "You are a helpful assistant."
)

// NewClientConfig returns a config populated with the create-form defaults.
func NewClientConfig() *ClientConfig {
	return &ClientConfig{
		OpenAIModel:                     openai.GPT3Dot5Turbo,
		Temperature:                     0.7,
		MaxResponseTokens:               500,
		SystemPromptDefault:             DefaultPrompt,
		SystemPromptAttributes:          DefaultPrompt,
		SystemPromptLeadClassification:  DefaultPrompt,
		SystemPromptAppointmentSchedule: DefaultPrompt,
		SystemPromptFollowup:            DefaultPrompt,
		TimeZone:                        "UTC",
		Reminders:                       []Reminder{{Time: 30, Name: "Initial Follow-up"}},
		Status:                          StatusActive,
	}
}

// ModelOption is one selectable OpenAI model for the console form.
type ModelOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SupportedModels lists the model identifiers the downstream chat service
// accepts. Identifiers the OpenAI SDK already names use its constants.
var SupportedModels = []ModelOption{
	{Value: openai.GPT3Dot5Turbo, Label: "GPT-3.5 Turbo"},
	{Value: openai.GPT4, Label: "GPT-4"},
	{Value: openai.GPT4Turbo, Label: "GPT-4 Turbo"},
	{Value: openai.GPT4o, Label: "GPT-4o"},
	{Value: openai.GPT4oMini, Label: "GPT-4o Mini"},
	{Value: "gpt-5-turbo", Label: "GPT-5 Turbo"},
	{Value: "gpt-5o", Label: "GPT-5o"},
	{Value: "gpt-5o-mini", Label: "GPT-5o Mini"},
	{Value: "gpt-5", Label: "GPT-5"},
}

// IsSupportedModel reports whether id is in SupportedModels.
func IsSupportedModel(id string) bool {
	for _, m := range SupportedModels {
		if m.Value == id {
			return true
		}
	}
	return false
}

// KeyStatus describes secret presence without exposing content.
type KeyStatus struct {
	OpenAIAPIKey bool `json:"openai_api_key_configured"`
	BotAPIKey    bool `json:"bot_api_key_configured"`
	APIKey       bool `json:"api_key_configured"`
}

// Keys reports which credential slots are configured.
func (c *ClientConfig) Keys() KeyStatus {
	return KeyStatus{
		OpenAIAPIKey: c.OpenAIAPIKey != "",
		BotAPIKey:    c.BotAPIKey != "",
		APIKey:       c.APIKey != "",
	}
}
