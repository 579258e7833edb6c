package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wiralabs/client-console/internal/models"
)

// ClientRepo is the remote repository's /clients surface.
type ClientRepo interface {
	List(ctx context.Context) ([]models.ClientConfig, error)
	GetByID(ctx context.Context, id string) (*models.ClientConfig, error)
	GetMasked(ctx context.Context, id string) (*models.ClientConfig, error)
	Create(ctx context.Context, cfg *models.ClientConfig) (string, error)
	Update(ctx context.Context, id string, cfg *models.ClientConfig) error
	Delete(ctx context.Context, id string) error
}

type clientRepo struct {
	baseClient
}

// NewClientRepo returns a ClientRepo backed by the remote REST repository.
func NewClientRepo(baseURL string, session Session, timeout time.Duration) ClientRepo {
	return &clientRepo{baseClient: newBaseClient(baseURL, session, timeout)}
}

func (r *clientRepo) List(ctx context.Context) ([]models.ClientConfig, error) {
	resp, err := r.doJSON(ctx, http.MethodGet, "/clients", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return nil, errorFromResponse(resp, "GET /clients", "client", "")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.TransportError{Op: "GET /clients", Err: err}
	}

	// The backend answers either {"clients": [...]} or a bare array.
	var wrapped struct {
		Clients []models.ClientConfig `json:"clients"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Clients != nil {
		return wrapped.Clients, nil
	}

	var bare []models.ClientConfig
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, &models.TransportError{
			Op:  "GET /clients",
			Err: fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return bare, nil
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (*models.ClientConfig, error) {
	return r.getOne(ctx, "/clients/"+id, id)
}

// GetMasked fetches a client with its API keys masked for display. The
// console uses this view whenever it does not need plaintext secrets.
func (r *clientRepo) GetMasked(ctx context.Context, id string) (*models.ClientConfig, error) {
	return r.getOne(ctx, "/clients/"+id+"/masked", id)
}

func (r *clientRepo) getOne(ctx context.Context, path, id string) (*models.ClientConfig, error) {
	resp, err := r.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return nil, errorFromResponse(resp, "GET "+path, "client", id)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.TransportError{Op: "GET " + path, Err: err}
	}

	// Either {"client": {...}} or the bare object.
	var wrapped struct {
		Client *models.ClientConfig `json:"client"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Client != nil {
		return wrapped.Client, nil
	}

	var bare models.ClientConfig
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, &models.TransportError{
			Op:  "GET " + path,
			Err: fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return &bare, nil
}

func (r *clientRepo) Create(ctx context.Context, cfg *models.ClientConfig) (string, error) {
	resp, err := r.doJSON(ctx, http.MethodPost, "/clients", cfg)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return "", errorFromResponse(resp, "POST /clients", "client", "")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &models.TransportError{Op: "POST /clients", Err: err}
	}

	var wrapped struct {
		ID     string               `json:"id"`
		Client *models.ClientConfig `json:"client"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return "", &models.TransportError{
			Op:  "POST /clients",
			Err: fmt.Errorf("failed to decode response: %w", err),
		}
	}
	if wrapped.ID != "" {
		return wrapped.ID, nil
	}
	if wrapped.Client != nil {
		return wrapped.Client.ID, nil
	}
	return "", &models.TransportError{
		Op:  "POST /clients",
		Err: fmt.Errorf("create response carried no id: %s", string(body)),
	}
}

func (r *clientRepo) Update(ctx context.Context, id string, cfg *models.ClientConfig) error {
	resp, err := r.doJSON(ctx, http.MethodPut, "/clients/"+id, cfg)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return errorFromResponse(resp, "PUT /clients/"+id, "client", id)
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, id string) error {
	resp, err := r.doJSON(ctx, http.MethodDelete, "/clients/"+id, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return errorFromResponse(resp, "DELETE /clients/"+id, "client", id)
	}
	return nil
}
