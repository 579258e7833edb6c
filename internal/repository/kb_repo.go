package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/wiralabs/client-console/internal/models"
)

// DownloadResult is the raw proxied file payload plus the headers the
// knowledge-base manager resolves the save name and MIME type from.
type DownloadResult struct {
	Data               []byte
	ContentType        string
	ContentDisposition string
}

// KBRepo is the remote repository's /rags surface, scoped by account id.
type KBRepo interface {
	GetDocuments(ctx context.Context, accountID int64) ([]models.DocumentChunkRecord, error)
	GetURLs(ctx context.Context, accountID int64) ([]models.ProcessedURL, error)
	UploadFile(ctx context.Context, accountID int64, fileName string, file io.Reader) error
	ProcessURL(ctx context.Context, accountID int64, url string) error
	DeleteDocument(ctx context.Context, accountID int64, documentID string) error
	DeleteURL(ctx context.Context, accountID int64, url string) error
	Download(ctx context.Context, accountID int64, documentID string) (*DownloadResult, error)
}

type kbRepo struct {
	baseClient
}

// NewKBRepo returns a KBRepo backed by the remote REST repository.
func NewKBRepo(baseURL string, session Session, timeout time.Duration) KBRepo {
	return &kbRepo{baseClient: newBaseClient(baseURL, session, timeout)}
}

func account(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (r *kbRepo) GetDocuments(ctx context.Context, accountID int64) ([]models.DocumentChunkRecord, error) {
	path := "/rags/documents/" + account(accountID)
	resp, err := r.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return nil, errorFromResponse(resp, "GET "+path, "documents", account(accountID))
	}

	var wrapped struct {
		Documents []models.DocumentChunkRecord `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapped); err != nil {
		return nil, &models.TransportError{
			Op:  "GET " + path,
			Err: fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return wrapped.Documents, nil
}

func (r *kbRepo) GetURLs(ctx context.Context, accountID int64) ([]models.ProcessedURL, error) {
	path := "/rags/urls/" + account(accountID)
	resp, err := r.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return nil, errorFromResponse(resp, "GET "+path, "urls", account(accountID))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.TransportError{Op: "GET " + path, Err: err}
	}

	// {"urls": [...]} or a bare array; entries themselves may be strings or
	// objects, which ProcessedURL's decoder absorbs.
	var wrapped struct {
		URLs []models.ProcessedURL `json:"urls"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.URLs != nil {
		return wrapped.URLs, nil
	}

	var bare []models.ProcessedURL
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, &models.TransportError{
			Op:  "GET " + path,
			Err: fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return bare, nil
}

func (r *kbRepo) UploadFile(ctx context.Context, accountID int64, fileName string, file io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("failed to build multipart payload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	if err := writer.WriteField("accountId", account(accountID)); err != nil {
		return fmt.Errorf("failed to build multipart payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to build multipart payload: %w", err)
	}

	req, err := r.newRequest(ctx, http.MethodPost, "/rags/upload", &buf)
	if err != nil {
		return &models.TransportError{Op: "POST /rags/upload", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.client.Do(req)
	if err != nil {
		return &models.TransportError{Op: "POST /rags/upload", Err: err}
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return errorFromResponse(resp, "POST /rags/upload", "upload", fileName)
	}
	return nil
}

func (r *kbRepo) ProcessURL(ctx context.Context, accountID int64, url string) error {
	payload := map[string]interface{}{
		"accountId": accountID,
		"url":       url,
	}

	resp, err := r.doJSON(ctx, http.MethodPost, "/rags/url", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return errorFromResponse(resp, "POST /rags/url", "url", url)
	}
	return nil
}

func (r *kbRepo) DeleteDocument(ctx context.Context, accountID int64, documentID string) error {
	path := "/rags/document/" + account(accountID) + "/" + documentID
	resp, err := r.doJSON(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return errorFromResponse(resp, "DELETE "+path, "document", documentID)
	}
	return nil
}

func (r *kbRepo) DeleteURL(ctx context.Context, accountID int64, url string) error {
	path := "/rags/url/" + account(accountID)
	payload := map[string]string{"url": url}

	resp, err := r.doJSON(ctx, http.MethodDelete, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return errorFromResponse(resp, "DELETE "+path, "url", url)
	}
	return nil
}

// Download fetches the file through the backend's streaming proxy. The whole
// payload is materialized in memory before returning.
func (r *kbRepo) Download(ctx context.Context, accountID int64, documentID string) (*DownloadResult, error) {
	path := "/rags/download/" + account(accountID) + "/" + documentID
	resp, err := r.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp) {
		return nil, errorFromResponse(resp, "GET "+path, "document", documentID)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.TransportError{Op: "GET " + path, Err: err}
	}

	return &DownloadResult{
		Data:               data,
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}, nil
}
