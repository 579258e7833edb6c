package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/wiralabs/client-console/internal/models"
	"github.com/wiralabs/client-console/internal/repository"
	"github.com/wiralabs/client-console/internal/shared/utils"
)

// KBService drives one client's knowledge-base lifecycle: joined listing,
// uploads, URL ingestion, deletes, and proxied downloads. It holds no state
// across calls beyond the set of downloads currently in flight.
type KBService struct {
	repo repository.KBRepo

	mu          sync.Mutex
	downloading map[string]bool
}

func NewKBService(repo repository.KBRepo) *KBService {
	return &KBService{
		repo:        repo,
		downloading: make(map[string]bool),
	}
}

// ListAll fetches documents and processed URLs concurrently and joins them.
// If either fetch fails the whole listing fails; a half-rendered knowledge
// base is worse than an error.
func (s *KBService) ListAll(ctx context.Context, accountID int64) (*models.KnowledgeBaseListing, error) {
	var (
		chunks []models.DocumentChunkRecord
		urls   []models.ProcessedURL
		docErr error
		urlErr error
		wg     sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		chunks, docErr = s.repo.GetDocuments(ctx, accountID)
	}()
	go func() {
		defer wg.Done()
		urls, urlErr = s.repo.GetURLs(ctx, accountID)
	}()
	wg.Wait()

	if docErr != nil {
		return nil, fmt.Errorf("failed to fetch knowledge base: %w", docErr)
	}
	if urlErr != nil {
		return nil, fmt.Errorf("failed to fetch knowledge base: %w", urlErr)
	}

	listing := &models.KnowledgeBaseListing{
		Documents: groupChunks(chunks),
		URLs:      urls,
	}
	if listing.URLs == nil {
		listing.URLs = []models.ProcessedURL{}
	}
	return listing, nil
}

// groupChunks folds per-chunk rows into logical documents. The first row
// seen for a document id supplies the display fields; the rest only count.
func groupChunks(chunks []models.DocumentChunkRecord) []models.Document {
	docs := []models.Document{}
	index := make(map[string]int)

	for _, c := range chunks {
		if i, seen := index[c.DocumentID]; seen {
			docs[i].ChunkCount++
			continue
		}
		index[c.DocumentID] = len(docs)
		docs = append(docs, models.Document{
			DocumentID:     c.DocumentID,
			FileName:       c.FileName,
			FileType:       c.FileType,
			FileSize:       c.FileSize,
			FileSizeLabel:  models.FormatFileSize(c.FileSize),
			ProcessingDate: c.ProcessingDate,
			ChunkCount:     1,
		})
	}
	return docs
}

// UploadFile submits one file for chunking and indexing. The backend owns
// processing; this call blocks until it accepts or rejects the file.
func (s *KBService) UploadFile(ctx context.Context, accountID int64, fileName string, file io.Reader) error {
	if strings.TrimSpace(fileName) == "" {
		return &models.ValidationError{Field: "file", Reason: "file name is required"}
	}
	if err := s.repo.UploadFile(ctx, accountID, fileName, file); err != nil {
		return err
	}
	utils.LogInfo("file uploaded", map[string]interface{}{
		"account_id": accountID,
		"file_name":  fileName,
	})
	return nil
}

// ProcessURL submits one URL for crawling. Crawling happens backend-side;
// there is no polling here, the request blocks until completion or failure.
func (s *KBService) ProcessURL(ctx context.Context, accountID int64, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return &models.ValidationError{Field: "url", Reason: "url is required"}
	}
	if err := s.repo.ProcessURL(ctx, accountID, url); err != nil {
		return err
	}
	utils.LogInfo("url processed", map[string]interface{}{
		"account_id": accountID,
		"url":        url,
	})
	return nil
}

// DeleteDocument removes one logical document and all its chunks.
func (s *KBService) DeleteDocument(ctx context.Context, accountID int64, documentID string) error {
	return s.repo.DeleteDocument(ctx, accountID, documentID)
}

// DeleteURL removes one processed URL, keyed by its value.
func (s *KBService) DeleteURL(ctx context.Context, accountID int64, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return &models.ValidationError{Field: "url", Reason: "url is required"}
	}
	return s.repo.DeleteURL(ctx, accountID, url)
}

var filenamePattern = regexp.MustCompile(`filename="([^"]+)"`)

// Download fetches a document through the backend's secure proxy and resolves
// its save-as name and MIME type from the response headers. fallbackName is
// the document's stored file name, used when no content-disposition filename
// is present. A second download for a document already in flight is rejected.
func (s *KBService) Download(ctx context.Context, accountID int64, documentID, fallbackName string) (*models.DownloadedFile, error) {
	s.mu.Lock()
	if s.downloading[documentID] {
		s.mu.Unlock()
		return nil, fmt.Errorf("download already in progress for document %s", documentID)
	}
	s.downloading[documentID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.downloading, documentID)
		s.mu.Unlock()
	}()

	result, err := s.repo.Download(ctx, accountID, documentID)
	if err != nil {
		return nil, err
	}

	name := fallbackName
	if m := filenamePattern.FindStringSubmatch(result.ContentDisposition); m != nil {
		name = m[1]
	}

	contentType := result.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &models.DownloadedFile{
		FileName:    name,
		ContentType: contentType,
		Data:        result.Data,
	}, nil
}

// Downloading reports whether a download for the given document id is in
// flight, so callers can disable the action.
func (s *KBService) Downloading(documentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloading[documentID]
}

// ErrorMessage renders a manager failure as the single human-readable string
// the console shows: the backend's own message when it sent one, otherwise
// the generic fallback for the action.
func ErrorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var backendErr *models.BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return fmt.Sprintf("%s: %s", fallback, backendErr.Message)
	}
	var conflictErr *models.ConflictError
	if errors.As(err, &conflictErr) {
		return fmt.Sprintf("%s: %s", fallback, conflictErr.Error())
	}
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("%s: %s", fallback, validationErr.Error())
	}
	return fallback
}
