package services

import "context"

// FeedReader pulls the full external submission dataset. The first row is the
// header row; the feed is append-only.
type FeedReader interface {
	FetchAllRows(ctx context.Context, sheetID string) ([][]string, error)
}

// AssetUploader downloads, validates and stores one image, returning the
// stored asset URL. Any error or empty URL means the upload failed and the
// caller defers it to the retry queue.
type AssetUploader interface {
	Upload(ctx context.Context, downloadURL string, issueID uint) (string, error)
}

// SourceURLNormalizer translates source-specific reference formats (e.g.
// share-link variants) into fetchable URLs. Unrecognized formats pass through
// unchanged; the subsequent upload fails gracefully.
type SourceURLNormalizer interface {
	Normalize(raw string) string
}
