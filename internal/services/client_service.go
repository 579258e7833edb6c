package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wiralabs/client-console/internal/core/reminders"
	"github.com/wiralabs/client-console/internal/models"
	"github.com/wiralabs/client-console/internal/repository"
	"github.com/wiralabs/client-console/internal/shared/utils"
)

// ClientService owns the client-configuration lifecycle: every record is
// fetched fresh from the repository, normalized on the way in, validated on
// the way out, and written back as a full record.
type ClientService struct {
	repo     repository.ClientRepo
	validate *validator.Validate
}

func NewClientService(repo repository.ClientRepo) *ClientService {
	return &ClientService{
		repo:     repo,
		validate: validator.New(),
	}
}

// List fetches all clients, each with a normalized reminder list.
func (s *ClientService) List(ctx context.Context) ([]models.ClientConfig, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		reminders.NormalizeClient(&clients[i])
	}
	return clients, nil
}

// Load fetches one client for an edit session.
func (s *ClientService) Load(ctx context.Context, id string) (*models.ClientConfig, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reminders.NormalizeClient(client)
	return client, nil
}

// LoadMasked fetches one client with API keys masked for display.
func (s *ClientService) LoadMasked(ctx context.Context, id string) (*models.ClientConfig, error) {
	client, err := s.repo.GetMasked(ctx, id)
	if err != nil {
		return nil, err
	}
	reminders.NormalizeClient(client)
	return client, nil
}

// Create validates the new record and submits it. The repository assigns the
// id; a duplicate account id surfaces as ConflictError.
func (s *ClientService) Create(ctx context.Context, cfg *models.ClientConfig) (string, error) {
	if err := s.validateConfig(cfg); err != nil {
		return "", err
	}
	reminders.NormalizeClient(cfg)

	id, err := s.repo.Create(ctx, cfg)
	if err != nil {
		return "", err
	}

	utils.LogInfo("client created", map[string]interface{}{
		"id":         id,
		"account_id": cfg.AccountID,
	})
	return id, nil
}

// Update replaces the stored record wholesale. The account id is immutable
// once created; an attempt to change it is rejected before anything is sent.
func (s *ClientService) Update(ctx context.Context, id string, cfg *models.ClientConfig) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cfg.AccountID != current.AccountID {
		return &models.ValidationError{
			Field:  "account_id",
			Reason: "account id cannot be changed after creation",
		}
	}

	if err := s.validateConfig(cfg); err != nil {
		return err
	}
	reminders.NormalizeClient(cfg)

	if err := s.repo.Update(ctx, id, cfg); err != nil {
		return err
	}

	utils.LogInfo("client updated", map[string]interface{}{
		"id":         id,
		"account_id": cfg.AccountID,
	})
	return nil
}

// Delete removes the record. The backend cascades to the client's knowledge
// base.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogInfo("client deleted", map[string]interface{}{"id": id})
	return nil
}

// Search filters clients by case-insensitive substring match on the name or
// string-contains match on the account id. An empty term returns the input
// unchanged. Pure; no repository access.
func (s *ClientService) Search(clients []models.ClientConfig, term string) []models.ClientConfig {
	if term == "" {
		return clients
	}

	needle := strings.ToLower(term)
	var out []models.ClientConfig
	for _, c := range clients {
		name := strings.ToLower(c.ClientName)
		accountID := strconv.FormatInt(c.AccountID, 10)
		if strings.Contains(name, needle) || strings.Contains(accountID, term) {
			out = append(out, c)
		}
	}
	return out
}

func (s *ClientService) validateConfig(cfg *models.ClientConfig) error {
	if err := s.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if ok := isValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			fe := verrs[0]
			return &models.ValidationError{
				Field:  jsonFieldName(fe.Field()),
				Reason: fmt.Sprintf("failed %q validation", fe.Tag()),
			}
		}
		return &models.ValidationError{Reason: err.Error()}
	}

	if strings.TrimSpace(cfg.ClientName) == "" {
		return &models.ValidationError{Field: "client_name", Reason: "client name is required"}
	}
	if cfg.OpenAIModel != "" && !models.IsSupportedModel(cfg.OpenAIModel) {
		return &models.ValidationError{Field: "openai_ai_model", Reason: "unsupported model identifier"}
	}
	if cfg.TimeZone != "" && !models.IsSupportedTimeZone(cfg.TimeZone) {
		return &models.ValidationError{Field: "time_zone", Reason: "unsupported time zone"}
	}
	return nil
}

func isValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// jsonFieldName maps struct field names onto the wire names users see.
func jsonFieldName(field string) string {
	switch field {
	case "AccountID":
		return "account_id"
	case "UserID":
		return "user_id"
	case "ClientName":
		return "client_name"
	case "Temperature":
		return "temperature"
	case "MaxResponseTokens":
		return "max_response_tokens"
	default:
		return strings.ToLower(field)
	}
}
