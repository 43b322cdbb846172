// Package model contains the values exchanged between the command surface and its callers.
// No business logic here.
package model

// Greeting is the reply to the greet command.
type Greeting struct {
	Message string `json:"message"`
}

// DownloadsPath is the reply to the get_downloads_path command.
type DownloadsPath struct {
	Path string `json:"path"`
}

// CheckLevel grades a URL check for display.
type CheckLevel string

const (
	CheckInfo    CheckLevel = "info"
	CheckWarning CheckLevel = "warning"
	CheckError   CheckLevel = "error"
)

// URLCheck is the outcome of validating a payload before encoding it.
type URLCheck struct {
	Valid   bool       `json:"is_valid"`
	Level   CheckLevel `json:"type"`
	Message string     `json:"message"`
}
