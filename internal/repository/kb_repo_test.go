package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wiralabs/client-console/internal/models"
)

func newTestKBRepo(t *testing.T, handler http.HandlerFunc) KBRepo {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewKBRepo(srv.URL, Session{Token: "tok"}, 5*time.Second)
}

func TestGetDocuments(t *testing.T) {
	t.Parallel()

	repo := newTestKBRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rags/documents/1001" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"documents": [
			{"document_id": "D1", "file_name": "guide.pdf", "file_size": 2048},
			{"document_id": "D1", "file_name": "guide.pdf", "file_size": 2048}
		]}`))
	})

	docs, err := repo.GetDocuments(context.Background(), 1001)
	if err != nil {
		t.Fatalf("GetDocuments: %v", err)
	}
	if len(docs) != 2 || docs[0].DocumentID != "D1" || docs[0].FileSize != 2048 {
		t.Errorf("docs = %+v", docs)
	}
}

func TestGetURLs_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{name: "wrapped object entries", payload: `{"urls": [{"url": "http://a.com"}, "http://b.com"]}`},
		{name: "bare mixed array", payload: `["http://a.com", {"url": "http://b.com", "title": "B"}]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newTestKBRepo(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/rags/urls/1001" {
					t.Errorf("path = %s", r.URL.Path)
				}
				w.Write([]byte(tt.payload))
			})

			urls, err := repo.GetURLs(context.Background(), 1001)
			if err != nil {
				t.Fatalf("GetURLs: %v", err)
			}
			if len(urls) != 2 {
				t.Fatalf("urls = %+v", urls)
			}
			if urls[0].URL != "http://a.com" || urls[1].URL != "http://b.com" {
				t.Errorf("urls = %+v", urls)
			}
		})
	}
}

func TestUploadFile_MultipartFields(t *testing.T) {
	t.Parallel()

	var gotName, gotAccount, gotContent string
	repo := newTestKBRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rags/upload" || r.Method != http.MethodPost {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotAccount = r.FormValue("accountId")

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		gotName = header.Filename
		data, _ := io.ReadAll(file)
		gotContent = string(data)

		w.Write([]byte(`{"status": "ok"}`))
	})

	err := repo.UploadFile(context.Background(), 1001, "notes.txt", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("UploadFile: %v", err)
	}
	if gotName != "notes.txt" || gotAccount != "1001" || gotContent != "hello" {
		t.Errorf("received name=%q account=%q content=%q", gotName, gotAccount, gotContent)
	}
}

func TestUploadFile_BackendRejection(t *testing.T) {
	t.Parallel()

	repo := newTestKBRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "unsupported file type"}`))
	})

	err := repo.UploadFile(context.Background(), 1001, "virus.exe", strings.NewReader("x"))
	var berr *models.BackendError
	if !errors.As(err, &berr) {
		t.Fatalf("err = %v, want BackendError", err)
	}
	if berr.Message != "unsupported file type" {
		t.Errorf("message = %q", berr.Message)
	}
}

func TestProcessURL_Payload(t *testing.T) {
	t.Parallel()

	var body map[string]interface{}
	repo := newTestKBRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rags/url" || r.Method != http.MethodPost {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Write([]byte(`{"status": "ok"}`))
	})

	if err := repo.ProcessURL(context.Background(), 1001, "https://example.com"); err != nil {
		t.Fatalf("ProcessURL: %v", err)
	}
	if body["url"] != "https://example.com" || body["accountId"] != float64(1001) {
		t.Errorf("body = %v", body)
	}
}

func TestDeleteURL_SendsBody(t *testing.T) {
	t.Parallel()

	var method, path string
	var body map[string]string
	repo := newTestKBRepo(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Write([]byte(`{"status": "ok"}`))
	})

	if err := repo.DeleteURL(context.Background(), 1001, "https://example.com/page"); err != nil {
		t.Fatalf("DeleteURL: %v", err)
	}
	if method != http.MethodDelete || path != "/rags/url/1001" {
		t.Errorf("request = %s %s", method, path)
	}
	if body["url"] != "https://example.com/page" {
		t.Errorf("body = %v", body)
	}
}

func TestDeleteDocument_NotFound(t *testing.T) {
	t.Parallel()

	repo := newTestKBRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rags/document/1001/D9" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "document not found"}`))
	})

	err := repo.DeleteDocument(context.Background(), 1001, "D9")
	var nfe *models.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestDownload_CapturesHeaders(t *testing.T) {
	t.Parallel()

	repo := newTestKBRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rags/download/1001/D1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="guide.pdf"`)
		w.Write([]byte("%PDF-1.4 payload"))
	})

	result, err := repo.Download(context.Background(), 1001, "D1")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if string(result.Data) != "%PDF-1.4 payload" {
		t.Errorf("data = %q", result.Data)
	}
	if result.ContentType != "application/pdf" {
		t.Errorf("content type = %q", result.ContentType)
	}
	if result.ContentDisposition != `attachment; filename="guide.pdf"` {
		t.Errorf("disposition = %q", result.ContentDisposition)
	}
}
