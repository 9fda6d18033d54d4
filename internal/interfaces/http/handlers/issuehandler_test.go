package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	issuedto "dormdesk/internal/application/issue/dto"
	"dormdesk/internal/application/issue/usecases"
	"dormdesk/internal/interfaces/http/handlers/testutil"
	"dormdesk/internal/shared/errors"
)

type mockListIssuesUC struct {
	gotQuery usecases.ListIssuesQuery
	result   *usecases.ListIssuesResult
	err      error
}

func (m *mockListIssuesUC) Execute(ctx context.Context, query usecases.ListIssuesQuery) (*usecases.ListIssuesResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockGetIssueUC struct {
	gotQuery usecases.GetIssueQuery
	result   *usecases.GetIssueResult
	err      error
}

func (m *mockGetIssueUC) Execute(ctx context.Context, query usecases.GetIssueQuery) (*usecases.GetIssueResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockChangeStatusUC struct {
	gotCmd usecases.ChangeStatusCommand
	result *usecases.ChangeStatusResult
	err    error
}

func (m *mockChangeStatusUC) Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func newIssueHandler(list *mockListIssuesUC, get *mockGetIssueUC, change *mockChangeStatusUC) *IssueHandler {
	if list == nil {
		list = &mockListIssuesUC{}
	}
	if get == nil {
		get = &mockGetIssueUC{}
	}
	if change == nil {
		change = &mockChangeStatusUC{}
	}
	return NewIssueHandler(list, get, change, testutil.NewMockLogger())
}

func TestIssueHandler_ListIssues(t *testing.T) {
	t.Run("filters are parsed from the query string", func(t *testing.T) {
		list := &mockListIssuesUC{
			result: &usecases.ListIssuesResult{
				Issues: []*issuedto.IssueDTO{{ID: 1, Email: "a@b.edu", Status: "pending"}},
				Total:  1,
				Page:   1,
			},
		}
		h := newIssueHandler(list, nil, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/issues", nil)
		testutil.SetQueryParams(c, map[string]string{
			"hall_id":     "4",
			"category_id": "2",
			"status":      "pending",
			"email":       "a@b.edu",
		})
		h.ListIssues(c)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, list.gotQuery.HallID)
		assert.Equal(t, uint(4), *list.gotQuery.HallID)
		require.NotNil(t, list.gotQuery.CategoryID)
		assert.Equal(t, uint(2), *list.gotQuery.CategoryID)
		require.NotNil(t, list.gotQuery.Status)
		assert.Equal(t, "pending", *list.gotQuery.Status)
		require.NotNil(t, list.gotQuery.Email)
		assert.Equal(t, "a@b.edu", *list.gotQuery.Email)
	})

	t.Run("absent filters stay nil", func(t *testing.T) {
		list := &mockListIssuesUC{result: &usecases.ListIssuesResult{Page: 1}}
		h := newIssueHandler(list, nil, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/issues", nil)
		h.ListIssues(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, list.gotQuery.HallID)
		assert.Nil(t, list.gotQuery.CategoryID)
		assert.Nil(t, list.gotQuery.Status)
		assert.Nil(t, list.gotQuery.Email)
		assert.Equal(t, 1, list.gotQuery.Page)
		assert.Equal(t, 20, list.gotQuery.PageSize)
	})

	t.Run("invalid status filter answers 400", func(t *testing.T) {
		list := &mockListIssuesUC{err: errors.NewValidationError("invalid status filter: resolved")}
		h := newIssueHandler(list, nil, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/issues", nil)
		testutil.SetQueryParams(c, map[string]string{"status": "resolved"})
		h.ListIssues(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIssueHandler_GetIssue(t *testing.T) {
	t.Run("returns the issue with its history", func(t *testing.T) {
		get := &mockGetIssueUC{
			result: &usecases.GetIssueResult{
				Issue: &issuedto.IssueDTO{ID: 7, Email: "a@b.edu", Status: "in_progress"},
				History: []*usecases.AuditEntryDTO{
					{Action: "created"},
					{Action: "status_change"},
				},
			},
		}
		h := newIssueHandler(nil, get, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/issues/7", nil)
		testutil.SetURLParam(c, "id", "7")
		h.GetIssue(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), get.gotQuery.IssueID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))

		var result usecases.GetIssueResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		require.NotNil(t, result.Issue)
		assert.Equal(t, uint(7), result.Issue.ID)
		assert.Len(t, result.History, 2)
	})

	t.Run("non-numeric ID answers 400", func(t *testing.T) {
		h := newIssueHandler(nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/issues/abc", nil)
		testutil.SetURLParam(c, "id", "abc")
		h.GetIssue(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown issue answers 404", func(t *testing.T) {
		get := &mockGetIssueUC{err: errors.NewNotFoundError("issue 99 not found")}
		h := newIssueHandler(nil, get, nil)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/issues/99", nil)
		testutil.SetURLParam(c, "id", "99")
		h.GetIssue(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestIssueHandler_UpdateStatus(t *testing.T) {
	t.Run("status change is forwarded", func(t *testing.T) {
		change := &mockChangeStatusUC{
			result: &usecases.ChangeStatusResult{IssueID: 7, OldStatus: "pending", NewStatus: "done"},
		}
		h := newIssueHandler(nil, nil, change)

		actor := uint(3)
		c, w := testutil.NewTestContext(http.MethodPatch, "/api/issues/7/status", UpdateStatusRequest{
			Status:  "done",
			ActorID: &actor,
		})
		testutil.SetURLParam(c, "id", "7")
		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(7), change.gotCmd.IssueID)
		assert.Equal(t, "done", change.gotCmd.NewStatus)
		require.NotNil(t, change.gotCmd.ActorID)
		assert.Equal(t, uint(3), *change.gotCmd.ActorID)
	})

	t.Run("missing status field answers 400", func(t *testing.T) {
		h := newIssueHandler(nil, nil, nil)

		c, w := testutil.NewTestContext(http.MethodPatch, "/api/issues/7/status", map[string]string{})
		testutil.SetURLParam(c, "id", "7")
		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid status value answers 400", func(t *testing.T) {
		change := &mockChangeStatusUC{err: errors.NewValidationError("invalid status: closed")}
		h := newIssueHandler(nil, nil, change)

		c, w := testutil.NewTestContext(http.MethodPatch, "/api/issues/7/status", UpdateStatusRequest{Status: "closed"})
		testutil.SetURLParam(c, "id", "7")
		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
