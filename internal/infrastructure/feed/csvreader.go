package feed

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dormdesk/internal/shared/config"
	"dormdesk/internal/shared/logger"
)

// CSVReader fetches the published spreadsheet's CSV export over HTTP. The
// sheet must be published to the web; no API credentials are involved.
type CSVReader struct {
	baseURL string
	client  *http.Client
	logger  logger.Interface
}

func NewCSVReader(cfg *config.FeedConfig, fetchTimeout time.Duration, log logger.Interface) *CSVReader {
	return &CSVReader{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: fetchTimeout},
		logger:  log,
	}
}

func (r *CSVReader) FetchAllRows(ctx context.Context, sheetID string) ([][]string, error) {
	url := fmt.Sprintf("%s/%s/export?format=csv", r.baseURL, sheetID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	// Rows vary in width when trailing cells are empty; the parser pads them.
	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed CSV: %w", err)
	}

	r.logger.Debugw("fetched feed", "rows", len(rows))
	return rows, nil
}
