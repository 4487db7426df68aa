package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	auditdomain "admin-command-console/internal/audit/domain"
	userdomain "admin-command-console/internal/user/domain"
	"admin-command-console/internal/web/middleware"
	"admin-command-console/internal/web/templates"
)

type fakeAuditRepo struct {
	rows  []*auditdomain.Row
	count int64

	gotLimit  int32
	gotOffset int32
}

func (f *fakeAuditRepo) Create(context.Context, *auditdomain.Entry) error { return nil }

func (f *fakeAuditRepo) ListPage(_ context.Context, limit, offset int32) ([]*auditdomain.Row, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	start := int(offset)
	if start >= len(f.rows) {
		return nil, nil
	}
	end := start + int(limit)
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[start:end], nil
}

func (f *fakeAuditRepo) Count(context.Context) (int64, error) { return f.count, nil }

func auditRows(n int) []*auditdomain.Row {
	rows := make([]*auditdomain.Row, n)
	for i := range rows {
		rows[i] = &auditdomain.Row{
			Entry: auditdomain.Entry{
				ID:         fmt.Sprintf("e-%d", i),
				UserID:     "u-1",
				Action:     "run_command",
				ObjectRepr: fmt.Sprintf("Successfully executed 'cmd%d' with args []", i),
				Flag:       auditdomain.FlagAddition,
				CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(-time.Duration(i) * time.Minute),
			},
			Username: "ops",
			FullName: "Opal Perez",
		}
	}
	return rows
}

func historyEngine(t *testing.T, h *History, user *userdomain.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.SetHTMLTemplate(templates.Must())
	if user != nil {
		e.Use(func(c *gin.Context) { middleware.SetCurrentUser(c, user) })
	}
	e.GET("/history", h.Show)
	return e
}

func getPage(e *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestHistoryEmpty(t *testing.T) {
	repo := &fakeAuditRepo{}
	h := NewHistory(repo, middleware.FlashStore{}, 100)
	e := historyEngine(t, h, runnerUser())

	w := getPage(e, "/history")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "No commands have been run yet.") {
		t.Error("missing empty-history message")
	}
	if strings.Contains(body, "paginator") {
		t.Error("paginator rendered for empty history")
	}
}

func TestHistorySinglePageHasNoPaginator(t *testing.T) {
	repo := &fakeAuditRepo{rows: auditRows(5), count: 5}
	h := NewHistory(repo, middleware.FlashStore{}, 100)
	e := historyEngine(t, h, runnerUser())

	body := getPage(e, "/history").Body.String()
	if !strings.Contains(body, "ops (Opal Perez)") {
		t.Error("missing user display name")
	}
	if !strings.Contains(body, "Successfully executed &#39;cmd0&#39; with args []") {
		t.Error("missing entry message")
	}
	if strings.Contains(body, "class=\"paginator\"") {
		t.Error("paginator rendered for a single page")
	}
}

func TestHistoryPaginated(t *testing.T) {
	repo := &fakeAuditRepo{rows: auditRows(250), count: 250}
	h := NewHistory(repo, middleware.FlashStore{}, 100)
	e := historyEngine(t, h, runnerUser())

	body := getPage(e, "/history?p=2").Body.String()
	if repo.gotLimit != 100 || repo.gotOffset != 100 {
		t.Fatalf("query limit=%d offset=%d", repo.gotLimit, repo.gotOffset)
	}
	// Current page renders emphasized, not as a link.
	if !strings.Contains(body, `<span class="this-page">2</span>`) {
		t.Error("current page not emphasized")
	}
	if strings.Contains(body, `href="?p=2"`) {
		t.Error("current page rendered as a link")
	}
	if !strings.Contains(body, `href="?p=1"`) || !strings.Contains(body, `href="?p=3"`) {
		t.Error("neighbor page links missing")
	}
	if !strings.Contains(body, "250 entries") {
		t.Error("missing total count")
	}
}

func TestHistoryPageClamped(t *testing.T) {
	repo := &fakeAuditRepo{rows: auditRows(150), count: 150}
	h := NewHistory(repo, middleware.FlashStore{}, 100)
	e := historyEngine(t, h, runnerUser())

	// Page 99 clamps to the last page (2).
	body := getPage(e, "/history?p=99").Body.String()
	if repo.gotOffset != 100 {
		t.Fatalf("offset = %d, want 100", repo.gotOffset)
	}
	if !strings.Contains(body, `<span class="this-page">2</span>`) {
		t.Error("clamped page not current")
	}
}

func TestHistoryForbiddenWithoutPermission(t *testing.T) {
	repo := &fakeAuditRepo{}
	h := NewHistory(repo, middleware.FlashStore{}, 100)
	operator := runnerUser()
	operator.Permissions = []userdomain.Permission{userdomain.PermRunCommands}
	e := historyEngine(t, h, operator)

	if w := getPage(e, "/history"); w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
