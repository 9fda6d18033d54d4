package assets

import (
	"regexp"
	"strings"

	"dormdesk/internal/shared/logger"
)

var (
	driveFilePattern = regexp.MustCompile(`/file/d/([A-Za-z0-9_-]+)`)
	driveOpenPattern = regexp.MustCompile(`[?&]id=([A-Za-z0-9_-]+)`)
)

// DriveURLNormalizer rewrites Google Drive share links into direct-download
// URLs. Form submissions carry the share-link variants; only the
// uc?export=download form is fetchable.
type DriveURLNormalizer struct {
	logger logger.Interface
}

func NewDriveURLNormalizer(log logger.Interface) *DriveURLNormalizer {
	return &DriveURLNormalizer{logger: log}
}

func (n *DriveURLNormalizer) Normalize(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if !strings.Contains(url, "drive.google.com") {
		return url
	}
	if strings.Contains(url, "uc?export=download") {
		return url
	}

	if m := driveFilePattern.FindStringSubmatch(url); m != nil {
		return "https://drive.google.com/uc?export=download&id=" + m[1]
	}
	if m := driveOpenPattern.FindStringSubmatch(url); m != nil {
		return "https://drive.google.com/uc?export=download&id=" + m[1]
	}

	// Unrecognized Drive link shape. Pass it through and let the download
	// report the failure.
	n.logger.Warnw("unrecognized drive link format", "url", url)
	return url
}
