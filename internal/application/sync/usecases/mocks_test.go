package usecases

import (
	"context"
	"time"

	"dormdesk/internal/domain/audit"
	"dormdesk/internal/domain/category"
	"dormdesk/internal/domain/hall"
	"dormdesk/internal/domain/issue"
	"dormdesk/internal/domain/syncrun"
	"dormdesk/internal/shared/logger"
)

type mockRunRepository struct {
	CreateFunc         func(ctx context.Context, run *syncrun.Run) error
	UpdateFunc         func(ctx context.Context, run *syncrun.Run) error
	LastSuccessfulFunc func(ctx context.Context) (*syncrun.Run, error)
	LatestFunc         func(ctx context.Context) (*syncrun.Run, error)
	ListFunc           func(ctx context.Context, page, pageSize int) ([]*syncrun.Run, int64, error)
}

func (m *mockRunRepository) Create(ctx context.Context, run *syncrun.Run) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, run)
	}
	return run.SetID(1)
}

func (m *mockRunRepository) Update(ctx context.Context, run *syncrun.Run) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, run)
	}
	return nil
}

func (m *mockRunRepository) LastSuccessful(ctx context.Context) (*syncrun.Run, error) {
	if m.LastSuccessfulFunc != nil {
		return m.LastSuccessfulFunc(ctx)
	}
	return nil, nil
}

func (m *mockRunRepository) Latest(ctx context.Context) (*syncrun.Run, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx)
	}
	return nil, nil
}

func (m *mockRunRepository) List(ctx context.Context, page, pageSize int) ([]*syncrun.Run, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type mockRetryRepository struct {
	UpsertFunc     func(ctx context.Context, issueID uint, sourceURL string, lastError string) error
	ListOldestFunc func(ctx context.Context, limit int) ([]*syncrun.RetryEntry, error)
	UpdateFunc     func(ctx context.Context, entry *syncrun.RetryEntry) error
	DeleteFunc     func(ctx context.Context, id uint) error
	CountFunc      func(ctx context.Context) (int64, error)
}

func (m *mockRetryRepository) Upsert(ctx context.Context, issueID uint, sourceURL string, lastError string) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, issueID, sourceURL, lastError)
	}
	return nil
}

func (m *mockRetryRepository) ListOldest(ctx context.Context, limit int) ([]*syncrun.RetryEntry, error) {
	if m.ListOldestFunc != nil {
		return m.ListOldestFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockRetryRepository) Update(ctx context.Context, entry *syncrun.RetryEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	return nil
}

func (m *mockRetryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRetryRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockIssueRepository struct {
	SaveFunc               func(ctx context.Context, i *issue.Issue) error
	UpdateFunc             func(ctx context.Context, i *issue.Issue) error
	FindByIDFunc           func(ctx context.Context, id uint) (*issue.Issue, error)
	ListFunc               func(ctx context.Context, filter issue.Filter) ([]*issue.Issue, int64, error)
	ExistsBySubmissionFunc func(ctx context.Context, submittedAt time.Time, email string) (bool, error)
	ExistsRecentOpenFunc   func(ctx context.Context, email string, hallID uint, roomNumber string, categoryID uint, cutoff time.Time) (bool, error)

	nextID uint
}

func (m *mockIssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	m.nextID++
	return i.SetID(m.nextID)
}

func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) FindByID(ctx context.Context, id uint) (*issue.Issue, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.Filter) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockIssueRepository) ExistsBySubmission(ctx context.Context, submittedAt time.Time, email string) (bool, error) {
	if m.ExistsBySubmissionFunc != nil {
		return m.ExistsBySubmissionFunc(ctx, submittedAt, email)
	}
	return false, nil
}

func (m *mockIssueRepository) ExistsRecentOpen(ctx context.Context, email string, hallID uint, roomNumber string, categoryID uint, cutoff time.Time) (bool, error) {
	if m.ExistsRecentOpenFunc != nil {
		return m.ExistsRecentOpenFunc(ctx, email, hallID, roomNumber, categoryID, cutoff)
	}
	return false, nil
}

type mockAuditRepository struct {
	AppendFunc      func(ctx context.Context, entry *audit.Entry) error
	ListByIssueFunc func(ctx context.Context, issueID uint) ([]*audit.Entry, error)
}

func (m *mockAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockAuditRepository) ListByIssue(ctx context.Context, issueID uint) ([]*audit.Entry, error) {
	if m.ListByIssueFunc != nil {
		return m.ListByIssueFunc(ctx, issueID)
	}
	return nil, nil
}

type mockHallRepository struct {
	FindByIDFunc   func(ctx context.Context, id uint) (*hall.Hall, error)
	FindByNameFunc func(ctx context.Context, name string) (*hall.Hall, error)
	ListAllFunc    func(ctx context.Context) ([]*hall.Hall, error)
}

func (m *mockHallRepository) FindByID(ctx context.Context, id uint) (*hall.Hall, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHallRepository) FindByName(ctx context.Context, name string) (*hall.Hall, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockHallRepository) ListAll(ctx context.Context) ([]*hall.Hall, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	FindByIDFunc         func(ctx context.Context, id uint) (*category.Category, error)
	FindActiveByNameFunc func(ctx context.Context, name string) (*category.Category, error)
	ListActiveFunc       func(ctx context.Context) ([]*category.Category, error)
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) FindActiveByName(ctx context.Context, name string) (*category.Category, error) {
	if m.FindActiveByNameFunc != nil {
		return m.FindActiveByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]*category.Category, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockFeedReader struct {
	FetchAllRowsFunc func(ctx context.Context, sheetID string) ([][]string, error)
}

func (m *mockFeedReader) FetchAllRows(ctx context.Context, sheetID string) ([][]string, error) {
	if m.FetchAllRowsFunc != nil {
		return m.FetchAllRowsFunc(ctx, sheetID)
	}
	return nil, nil
}

type mockAssetUploader struct {
	UploadFunc func(ctx context.Context, downloadURL string, issueID uint) (string, error)
}

func (m *mockAssetUploader) Upload(ctx context.Context, downloadURL string, issueID uint) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, downloadURL, issueID)
	}
	return "", nil
}

type mockNormalizer struct {
	NormalizeFunc func(raw string) string
}

func (m *mockNormalizer) Normalize(raw string) string {
	if m.NormalizeFunc != nil {
		return m.NormalizeFunc(raw)
	}
	return raw
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
