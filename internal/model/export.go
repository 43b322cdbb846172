package model

import "time"

// Export represents a QR code SVG written to the user's downloads directory.
// ArchiveKey is empty when no object store is configured. ArchiveURL is a
// short-lived download link filled in when exports are listed; it is not stored.
type Export struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	ArchiveKey string    `json:"archive_key,omitempty"`
	ArchiveURL string    `json:"archive_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
