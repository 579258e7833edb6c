package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wiralabs/client-console/internal/models"
)

func newTestClientRepo(t *testing.T, handler http.HandlerFunc, session Session) ClientRepo {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientRepo(srv.URL, session, 5*time.Second)
}

func TestList_WrappedAndBareShapes(t *testing.T) {
	t.Parallel()

	payloads := []string{
		`{"clients": [{"id": "c1", "account_id": 1001, "client_name": "Acme"}]}`,
		`[{"id": "c1", "account_id": 1001, "client_name": "Acme"}]`,
	}

	for _, payload := range payloads {
		payload := payload
		repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/clients" {
				t.Errorf("path = %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(payload))
		}, Session{})

		clients, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(clients) != 1 || clients[0].ID != "c1" || clients[0].AccountID != 1001 {
			t.Errorf("clients = %+v", clients)
		}
	}
}

func TestGetByID_WrappedAndBareShapes(t *testing.T) {
	t.Parallel()

	payloads := []string{
		`{"client": {"id": "c7", "client_name": "Wrapped"}}`,
		`{"id": "c7", "client_name": "Wrapped"}`,
	}

	for _, payload := range payloads {
		payload := payload
		repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/clients/c7" {
				t.Errorf("path = %s", r.URL.Path)
			}
			w.Write([]byte(payload))
		}, Session{})

		client, err := repo.GetByID(context.Background(), "c7")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if client.ID != "c7" || client.ClientName != "Wrapped" {
			t.Errorf("client = %+v", client)
		}
	}
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "no such client"}`))
	}, Session{})

	_, err := repo.GetByID(context.Background(), "missing")
	var nfe *models.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestCreate_ConflictOnDuplicateAccount(t *testing.T) {
	t.Parallel()

	repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error": "account_id already exists"}`))
	}, Session{})

	_, err := repo.Create(context.Background(), &models.ClientConfig{AccountID: 1001})
	var cerr *models.ConflictError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if cerr.Error() != "account_id already exists" {
		t.Errorf("message = %q", cerr.Error())
	}
}

func TestCreate_ReturnsAssignedID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "top-level id", payload: `{"id": "c42"}`},
		{name: "wrapped client", payload: `{"client": {"id": "c42"}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s", r.Method)
				}
				var body models.ClientConfig
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Errorf("decode body: %v", err)
				}
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(tt.payload))
			}, Session{})

			id, err := repo.Create(context.Background(), &models.ClientConfig{AccountID: 1001, ClientName: "Acme"})
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if id != "c42" {
				t.Errorf("id = %q, want c42", id)
			}
		})
	}
}

func TestBackendErrorSurfacedVerbatim(t *testing.T) {
	t.Parallel()

	repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "temperature out of range"}`))
	}, Session{})

	err := repo.Update(context.Background(), "c1", &models.ClientConfig{})
	var berr *models.BackendError
	if !errors.As(err, &berr) {
		t.Fatalf("err = %v, want BackendError", err)
	}
	if berr.Message != "temperature out of range" {
		t.Errorf("message = %q", berr.Message)
	}
}

func TestUnstructuredFailureIsTransportError(t *testing.T) {
	t.Parallel()

	repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}, Session{})

	_, err := repo.List(context.Background())
	var terr *models.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}

func TestBearerHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		session Session
		want    string
	}{
		{name: "token present", session: Session{Token: "tok-123"}, want: "Bearer tok-123"},
		{name: "token absent omits header", session: Session{}, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
				got = r.Header.Get("Authorization")
				w.Write([]byte(`[]`))
			}, tt.session)

			if _, err := repo.List(context.Background()); err != nil {
				t.Fatalf("List: %v", err)
			}
			if got != tt.want {
				t.Errorf("Authorization = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	var method, path string
	repo := newTestClientRepo(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.Write([]byte(`{"status": "ok"}`))
	}, Session{})

	if err := repo.Delete(context.Background(), "c9"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if method != http.MethodDelete || path != "/clients/c9" {
		t.Errorf("request = %s %s", method, path)
	}
}
