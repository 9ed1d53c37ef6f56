package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

const (
	authorToken = "author-token"
	readerToken = "reader-token"
	staleToken  = "stale-token"
)

var (
	testAuthor = models.Identity{UserID: 1, Username: "author", SessionID: "sid-author"}
	testReader = models.Identity{UserID: 2, Username: "reader", SessionID: "sid-reader"}
)

// recordingRenderer keeps every page it was asked to render so tests can
// inspect the view context.
type recordingRenderer struct {
	mu    sync.Mutex
	calls []renderCall
	err   error
}

type renderCall struct {
	page string
	data ViewContext
}

func (r *recordingRenderer) Render(w io.Writer, page string, data ViewContext) error {
	r.mu.Lock()
	r.calls = append(r.calls, renderCall{page: page, data: data})
	r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	_, err := io.WriteString(w, "page:"+page)
	return err
}

func (r *recordingRenderer) last(t *testing.T) renderCall {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.calls, "nothing was rendered")
	return r.calls[len(r.calls)-1]
}

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) PingContext(context.Context) error {
	return s.err
}

type testEnv struct {
	handler  *Handler
	router   http.Handler
	auth     *mock.MockAuthService
	notes    *mock.MockNoteService
	renderer *recordingRenderer
}

// newTestEnv builds a router over mocked services. The auth mock resolves
// authorToken and readerToken to their identities and rejects anything else.
func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().ParseSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token string) (models.Identity, error) {
			switch token {
			case authorToken:
				return testAuthor, nil
			case readerToken:
				return testReader, nil
			default:
				return models.Anonymous(), service.ErrInvalidSession
			}
		},
	).AnyTimes()

	notes := mock.NewMockNoteService(ctrl)
	renderer := &recordingRenderer{}

	h := NewHandler(
		&service.Services{AuthService: auth, NoteService: notes},
		renderer,
		Settings{},
		logger.Nop(),
		opts...,
	)

	return &testEnv{
		handler:  h,
		router:   h.Init(),
		auth:     auth,
		notes:    notes,
		renderer: renderer,
	}
}

// do sends a request through the full router. A non-empty token is sent as
// the session cookie; a non-nil form is sent url-encoded.
func (e *testEnv) do(method, target string, form url.Values, token string) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_Options(t *testing.T) {
	hc := stubHealthChecker{}
	h := NewHandler(&service.Services{}, &recordingRenderer{}, Settings{}, logger.Nop(), WithHealthChecker(hc))

	require.NotNil(t, h)
	assert.Equal(t, hc, h.health)
	assert.Nil(t, h.metrics)
}

func TestHome_Public(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, PageHome, env.renderer.last(t).page)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, models.Anonymous(), env.renderer.last(t).data[ctxUser])
}

func TestHome_UserInContext(t *testing.T) {
	env := newTestEnv(t)

	env.do(http.MethodGet, "/", nil, authorToken)

	assert.Equal(t, testAuthor, env.renderer.last(t).data[ctxUser])
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, WithHealthChecker(stubHealthChecker{}))
	rec := env.do(http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	env = newTestEnv(t, WithHealthChecker(stubHealthChecker{err: errors.New("db down")}))
	rec = env.do(http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}

func TestUnknownPath_NotFoundPage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/no/such/page/", nil, authorToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, PageNotFound, env.renderer.last(t).page)
}

func TestRenderError_Returns500(t *testing.T) {
	env := newTestEnv(t)
	env.renderer.err = errors.New("template exploded")

	rec := env.do(http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "template exploded")
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.Join(errors.New("ctx"), service.ErrAccessDenied), http.StatusNotFound},
		{errors.Join(errors.New("ctx"), store.ErrNoteNotFound), http.StatusNotFound},
		{service.ErrNotAuthenticated, http.StatusUnauthorized},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
