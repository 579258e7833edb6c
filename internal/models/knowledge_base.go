package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// DocumentChunkRecord is one raw row from the repository's document listing.
// The backend stores uploaded files chunked, so several rows share one
// document_id.
type DocumentChunkRecord struct {
	DocumentID     string     `json:"document_id"`
	FileName       string     `json:"file_name"`
	FileType       string     `json:"file_type"`
	FileSize       int64      `json:"file_size"`
	ProcessingDate *time.Time `json:"processing_date,omitempty"`
}

// Document is one logical uploaded file, grouped from its chunk records.
// Display fields come from the first chunk seen.
type Document struct {
	DocumentID     string     `json:"document_id"`
	FileName       string     `json:"file_name"`
	FileType       string     `json:"file_type"`
	FileSize       int64      `json:"file_size"`
	FileSizeLabel  string     `json:"file_size_label"`
	ProcessingDate *time.Time `json:"processing_date,omitempty"`
	ChunkCount     int        `json:"chunk_count"`
}

// ProcessedURL is one crawled URL attached to a client's knowledge base.
// The repository returns these either as bare strings or as objects with an
// optional title; UnmarshalJSON folds both shapes into this one.
type ProcessedURL struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

func (p *ProcessedURL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.URL = s
		p.Title = ""
		return nil
	}

	var obj struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("processed url: unsupported wire shape: %w", err)
	}
	p.URL = obj.URL
	p.Title = obj.Title
	return nil
}

// KnowledgeBaseListing is the joined view of one client's knowledge base.
type KnowledgeBaseListing struct {
	Documents []Document     `json:"documents"`
	URLs      []ProcessedURL `json:"urls"`
}

// DownloadedFile is a fully materialized document payload with its resolved
// save-as name and MIME type.
type DownloadedFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count the way the console lists it.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "Unknown"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return fmt.Sprintf("%g %s", v, sizeUnits[i])
}
