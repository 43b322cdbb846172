package service

import (
	"context"
	"regexp"
	"strings"

	"qrdesk/internal/model"
)

// urlPattern: optional http(s) scheme, a host of word characters, dots and dashes, optional port and path.
var urlPattern = regexp.MustCompile(`(?i)^(https?://)?([\w.-]+)(:\d+)?([/\w .\-#?=&%]*)*/?$`)

const (
	msgMalformedURL = "malformed URL, please check the input"
	msgPreferHTTPS  = "HTTPS is recommended for security"
	msgValidURL     = "URL looks valid"
)

func (s *commandService) ValidateURL(ctx context.Context, input string) model.URLCheck {
	if strings.TrimSpace(input) == "" {
		return model.URLCheck{Valid: false, Level: model.CheckInfo}
	}
	if !urlPattern.MatchString(input) {
		return model.URLCheck{Valid: false, Level: model.CheckError, Message: msgMalformedURL}
	}
	if !strings.HasPrefix(input, "https://") {
		return model.URLCheck{Valid: true, Level: model.CheckWarning, Message: msgPreferHTTPS}
	}
	return model.URLCheck{Valid: true, Level: model.CheckInfo, Message: msgValidURL}
}
