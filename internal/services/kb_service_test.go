package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/wiralabs/client-console/internal/models"
	"github.com/wiralabs/client-console/internal/repository"
)

type mockKBRepo struct {
	getDocumentsFunc   func(ctx context.Context, accountID int64) ([]models.DocumentChunkRecord, error)
	getURLsFunc        func(ctx context.Context, accountID int64) ([]models.ProcessedURL, error)
	uploadFileFunc     func(ctx context.Context, accountID int64, fileName string, file io.Reader) error
	processURLFunc     func(ctx context.Context, accountID int64, url string) error
	deleteDocumentFunc func(ctx context.Context, accountID int64, documentID string) error
	deleteURLFunc      func(ctx context.Context, accountID int64, url string) error
	downloadFunc       func(ctx context.Context, accountID int64, documentID string) (*repository.DownloadResult, error)
}

func (m *mockKBRepo) GetDocuments(ctx context.Context, accountID int64) ([]models.DocumentChunkRecord, error) {
	return m.getDocumentsFunc(ctx, accountID)
}

func (m *mockKBRepo) GetURLs(ctx context.Context, accountID int64) ([]models.ProcessedURL, error) {
	return m.getURLsFunc(ctx, accountID)
}

func (m *mockKBRepo) UploadFile(ctx context.Context, accountID int64, fileName string, file io.Reader) error {
	return m.uploadFileFunc(ctx, accountID, fileName, file)
}

func (m *mockKBRepo) ProcessURL(ctx context.Context, accountID int64, url string) error {
	return m.processURLFunc(ctx, accountID, url)
}

func (m *mockKBRepo) DeleteDocument(ctx context.Context, accountID int64, documentID string) error {
	return m.deleteDocumentFunc(ctx, accountID, documentID)
}

func (m *mockKBRepo) DeleteURL(ctx context.Context, accountID int64, url string) error {
	return m.deleteURLFunc(ctx, accountID, url)
}

func (m *mockKBRepo) Download(ctx context.Context, accountID int64, documentID string) (*repository.DownloadResult, error) {
	return m.downloadFunc(ctx, accountID, documentID)
}

func TestListAll_DeduplicatesChunks(t *testing.T) {
	t.Parallel()

	repo := &mockKBRepo{
		getDocumentsFunc: func(ctx context.Context, accountID int64) ([]models.DocumentChunkRecord, error) {
			return []models.DocumentChunkRecord{
				{DocumentID: "D1", FileName: "guide.pdf", FileType: "pdf", FileSize: 1048576},
				{DocumentID: "D1", FileName: "guide-chunk2.pdf", FileType: "pdf", FileSize: 999},
				{DocumentID: "D1", FileName: "guide-chunk3.pdf", FileType: "pdf", FileSize: 999},
				{DocumentID: "D2", FileName: "faq.txt", FileType: "txt", FileSize: 2048},
			}, nil
		},
		getURLsFunc: func(ctx context.Context, accountID int64) ([]models.ProcessedURL, error) {
			return nil, nil
		},
	}
	svc := NewKBService(repo)

	listing, err := svc.ListAll(context.Background(), 1001)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}

	if len(listing.Documents) != 2 {
		t.Fatalf("documents = %d, want 2", len(listing.Documents))
	}

	d1 := listing.Documents[0]
	if d1.DocumentID != "D1" || d1.ChunkCount != 3 {
		t.Errorf("D1 = %+v, want chunk count 3", d1)
	}
	// First chunk wins the display fields.
	if d1.FileName != "guide.pdf" || d1.FileSize != 1048576 {
		t.Errorf("D1 display fields = %+v", d1)
	}
	if d1.FileSizeLabel != "1 MB" {
		t.Errorf("D1 size label = %q", d1.FileSizeLabel)
	}

	d2 := listing.Documents[1]
	if d2.DocumentID != "D2" || d2.ChunkCount != 1 {
		t.Errorf("D2 = %+v, want chunk count 1", d2)
	}
}

func TestListAll_BothOrNeither(t *testing.T) {
	t.Parallel()

	boom := errors.New("backend down")

	tests := []struct {
		name    string
		docErr  error
		urlErr  error
		wantErr bool
	}{
		{name: "documents fetch fails", docErr: boom, wantErr: true},
		{name: "urls fetch fails", urlErr: boom, wantErr: true},
		{name: "both succeed", wantErr: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockKBRepo{
				getDocumentsFunc: func(ctx context.Context, accountID int64) ([]models.DocumentChunkRecord, error) {
					return []models.DocumentChunkRecord{{DocumentID: "D1", FileName: "a.pdf"}}, tt.docErr
				},
				getURLsFunc: func(ctx context.Context, accountID int64) ([]models.ProcessedURL, error) {
					return []models.ProcessedURL{{URL: "http://a.com"}}, tt.urlErr
				},
			}
			svc := NewKBService(repo)

			listing, err := svc.ListAll(context.Background(), 1001)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if listing != nil {
					t.Error("partial listing returned alongside error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ListAll: %v", err)
			}
			if len(listing.Documents) != 1 || len(listing.URLs) != 1 {
				t.Errorf("listing = %+v", listing)
			}
		})
	}
}

func TestProcessURL_TrimsAndRequires(t *testing.T) {
	t.Parallel()

	var sent string
	repo := &mockKBRepo{
		processURLFunc: func(ctx context.Context, accountID int64, url string) error {
			sent = url
			return nil
		},
	}
	svc := NewKBService(repo)

	if err := svc.ProcessURL(context.Background(), 1001, "  https://example.com  "); err != nil {
		t.Fatalf("ProcessURL: %v", err)
	}
	if sent != "https://example.com" {
		t.Errorf("sent = %q", sent)
	}

	err := svc.ProcessURL(context.Background(), 1001, "   ")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestDownload_FilenameResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		disposition string
		contentType string
		wantName    string
		wantType    string
	}{
		{
			name:        "header filename wins",
			disposition: `attachment; filename="report.pdf"`,
			contentType: "application/pdf",
			wantName:    "report.pdf",
			wantType:    "application/pdf",
		},
		{
			name:     "missing header falls back to stored name",
			wantName: "old.pdf",
			wantType: "application/octet-stream",
		},
		{
			name:        "unquoted disposition falls back",
			disposition: "attachment; filename=report.pdf",
			wantName:    "old.pdf",
			wantType:    "application/octet-stream",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockKBRepo{
				downloadFunc: func(ctx context.Context, accountID int64, documentID string) (*repository.DownloadResult, error) {
					return &repository.DownloadResult{
						Data:               []byte("payload"),
						ContentType:        tt.contentType,
						ContentDisposition: tt.disposition,
					}, nil
				},
			}
			svc := NewKBService(repo)

			file, err := svc.Download(context.Background(), 1001, "D1", "old.pdf")
			if err != nil {
				t.Fatalf("Download: %v", err)
			}
			if file.FileName != tt.wantName {
				t.Errorf("file name = %q, want %q", file.FileName, tt.wantName)
			}
			if file.ContentType != tt.wantType {
				t.Errorf("content type = %q, want %q", file.ContentType, tt.wantType)
			}
			if string(file.Data) != "payload" {
				t.Errorf("data = %q", file.Data)
			}
		})
	}
}

func TestDownload_RejectsConcurrentSameDocument(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})

	repo := &mockKBRepo{
		downloadFunc: func(ctx context.Context, accountID int64, documentID string) (*repository.DownloadResult, error) {
			close(started)
			<-release
			return &repository.DownloadResult{Data: []byte("x")}, nil
		},
	}
	svc := NewKBService(repo)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Download(context.Background(), 1001, "D1", "a.pdf")
		done <- err
	}()

	<-started
	if !svc.Downloading("D1") {
		t.Error("Downloading(D1) = false while in flight")
	}

	if _, err := svc.Download(context.Background(), 1001, "D1", "a.pdf"); err == nil {
		t.Error("second download for same document should be rejected")
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first download: %v", err)
	}

	// After completion the slot is free again.
	deadline := time.After(time.Second)
	for svc.Downloading("D1") {
		select {
		case <-deadline:
			t.Fatal("in-flight flag never cleared")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestUploadFile_RequiresName(t *testing.T) {
	t.Parallel()

	svc := NewKBService(&mockKBRepo{})

	err := svc.UploadFile(context.Background(), 1001, " ", strings.NewReader("data"))
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "backend message surfaced verbatim",
			err:  &models.BackendError{StatusCode: 422, Message: "file exceeds size limit"},
			want: "Failed to upload file: file exceeds size limit",
		},
		{
			name: "transport error gets generic fallback",
			err:  &models.TransportError{Op: "POST /rags/upload", Err: errors.New("dial tcp: timeout")},
			want: "Failed to upload file",
		},
		{
			name: "wrapped backend error still surfaces",
			err:  errors.New("plain"),
			want: "Failed to upload file",
		},
		{
			name: "nil error renders empty",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		if got := ErrorMessage(tt.err, "Failed to upload file"); got != tt.want {
			t.Errorf("%s: ErrorMessage() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
