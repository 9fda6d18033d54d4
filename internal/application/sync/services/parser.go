package services

import (
	"fmt"
	"strings"
	"time"

	"dormdesk/internal/shared/logger"
)

// Submission is a normalized form submission parsed from one feed row.
type Submission struct {
	SubmittedAt *time.Time
	Email       string
	Name        *string
	Hall        string
	RoomNumber  string
	Category    string
	Description *string
	ImageURL    *string
}

type submissionField int

const (
	fieldTimestamp submissionField = iota
	fieldEmail
	fieldName
	fieldHall
	fieldRoom
	fieldCategory
	fieldDescription
	fieldImage
)

// headerHints maps each canonical field to the header substrings that bind
// it. Matching is case-insensitive substring matching because column order
// and exact header wording in the source are not stable.
var headerHints = map[submissionField][]string{
	fieldTimestamp:   {"timestamp"},
	fieldEmail:       {"email"},
	fieldName:        {"name"},
	fieldHall:        {"hall"},
	fieldRoom:        {"room number", "room_number", "room"},
	fieldCategory:    {"category"},
	fieldDescription: {"description", "describe"},
	fieldImage:       {"image"},
}

// timestampLayouts is the ordered list of accepted submission timestamp
// formats; the first successful parse wins. US before EU before ISO, each
// with and without seconds, then date-only variants.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"2/1/2006 15:04:05",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04",
	"2/1/2006 15:04",
	"2006-01-02 15:04",
	"1/2/2006",
	"2/1/2006",
	"2006-01-02",
}

// HeaderIndex binds canonical fields to column positions for one feed
// snapshot. It is built once per run, not per cell.
type HeaderIndex map[submissionField]int

// SubmissionParser turns raw feed rows into normalized submissions. It is the
// most failure-tolerant stage: bad formatting rejects single rows, never the
// run.
type SubmissionParser struct {
	logger logger.Interface
}

func NewSubmissionParser(log logger.Interface) *SubmissionParser {
	return &SubmissionParser{logger: log}
}

// MapHeaders resolves the column position of each canonical field from the
// feed's header row.
func (p *SubmissionParser) MapHeaders(headers []string) HeaderIndex {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	index := make(HeaderIndex, len(headerHints))
	for field, hints := range headerHints {
		for _, hint := range hints {
			found := false
			for i, header := range normalized {
				if strings.Contains(header, hint) {
					index[field] = i
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	return index
}

// Parse normalizes one data row. Missing required fields reject the row;
// an unparseable timestamp does not, it just becomes nil.
func (p *SubmissionParser) Parse(row []string, index HeaderIndex) (*Submission, error) {
	value := func(field submissionField) string {
		i, ok := index[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	email := value(fieldEmail)
	hallName := value(fieldHall)
	roomNumber := value(fieldRoom)
	categoryName := value(fieldCategory)

	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if hallName == "" {
		missing = append(missing, "hall")
	}
	if roomNumber == "" {
		missing = append(missing, "room number")
	}
	if categoryName == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	sub := &Submission{
		Email:      email,
		Hall:       hallName,
		RoomNumber: roomNumber,
		Category:   categoryName,
	}

	if ts := value(fieldTimestamp); ts != "" {
		parsed := p.parseTimestamp(ts)
		if parsed == nil {
			p.logger.Warnw("could not parse submission timestamp", "raw", ts)
		}
		sub.SubmittedAt = parsed
	}

	if name := value(fieldName); name != "" {
		sub.Name = &name
	}
	if desc := value(fieldDescription); desc != "" {
		sub.Description = &desc
	}
	if img := value(fieldImage); img != "" {
		sub.ImageURL = &img
	}

	return sub, nil
}

// parseTimestamp tries each accepted layout after stripping a trailing
// timezone-name suffix. Submission timestamps carry no reliable zone, so UTC
// is assumed.
func (p *SubmissionParser) parseTimestamp(raw string) *time.Time {
	clean := raw
	if i := strings.Index(clean, " GMT"); i >= 0 {
		clean = clean[:i]
	}
	if i := strings.Index(clean, " UTC"); i >= 0 {
		clean = clean[:i]
	}
	clean = strings.TrimSpace(clean)

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, clean, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}
