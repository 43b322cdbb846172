package handler

import (
	"fmt"

	"golang.org/x/text/language"

	"qrdesk/internal/service"
)

type launchTexts struct {
	downloads string
	current   string
}

// Indexes match supportedLanguages.
var (
	supportedLanguages = []language.Tag{language.English, language.Chinese}
	languageMatcher    = language.NewMatcher(supportedLanguages)
	launchCatalog      = []launchTexts{
		{downloads: "unable to open downloads folder", current: "unable to open current directory"},
		{downloads: "无法打开下载文件夹", current: "无法打开当前目录"},
	}
)

// launchMessage renders a launch failure in the best language for an Accept-Language header.
func launchMessage(acceptLanguage string, err *service.LaunchFailedError) string {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := languageMatcher.Match(tags...)
	texts := launchCatalog[idx]

	prefix := texts.downloads
	if err.Fallback {
		prefix = texts.current
	}
	return fmt.Sprintf("%s: %v", prefix, err.Cause)
}
