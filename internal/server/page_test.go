package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-week/internal/config"
)

func getPage(t *testing.T, srv *CalendarServer) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, config.RouteRoot, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	resp := w.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postPage(t *testing.T, srv *CalendarServer, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, config.RouteRoot, strings.NewReader(form.Encode()))
	req.Header.Set(config.HeaderContentType, "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	resp := w.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// TestPage_RendersCalendar checks columns, tiles, tooltips and the year selector.
func TestPage_RendersCalendar(t *testing.T) {
	srv, _ := newTestServer(t, "0")

	resp, body := getPage(t, srv)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextHTML, resp.Header.Get(config.HeaderContentType))

	for _, day := range []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"} {
		assert.Contains(t, body, `<div class="day-header">`+day+`</div>`)
	}

	// Alice (Sunday) and Bob (Wednesday) are alone in their columns: side 1.
	assert.Contains(t, body, `title="Alice Smith">AS</div>`)
	assert.Contains(t, body, `title="Bob Stone">BS</div>`)
	assert.Contains(t, body, `class="person-square side-1"`)
	assert.Contains(t, body, "background-color: #545D79")

	// Five empty days.
	assert.Equal(t, 5, strings.Count(body, config.MsgNoBirthdays))

	assert.Contains(t, body, `<option value="2024" selected>2024</option>`)
	assert.Contains(t, body, `<option value="2000">2000</option>`)
	assert.NotContains(t, body, `<option value="1999">`)
	assert.Contains(t, body, ".side-3 { width: calc(100% / 3); height: calc(100% / 3); }")

	// The editor shows the seeded JSON, escaped.
	assert.Contains(t, body, "&#34;name&#34;: &#34;Alice Smith&#34;")
}

// TestPage_ColumnTooltip checks that a crowded column lists every name.
func TestPage_ColumnTooltip(t *testing.T) {
	srv, store := newTestServer(t, "0")
	store.SetText(`[
		{"name": "Ann One", "birthday": "1990-03-10"},
		{"name": "Ben Two", "birthday": "1980-03-10"},
		{"name": "Cid Three", "birthday": "1970-03-10"},
		{"name": "Dot Four", "birthday": "1960-03-10"},
		{"name": "Eve Five", "birthday": "1950-03-10"}
	]`)

	_, body := getPage(t, srv)

	assert.Contains(t, body, `title="Ann One, Ben Two, Cid Three, Dot Four, Eve Five"`)
	assert.Equal(t, 5, strings.Count(body, `class="person-square side-3"`))
	assert.Contains(t, body, "background-color: #E64A33")
}

// TestPage_PostUpdatesStore verifies the form round trip and the redirect.
func TestPage_PostUpdatesStore(t *testing.T) {
	srv, store := newTestServer(t, "0")

	resp := postPage(t, srv, url.Values{
		config.FormFieldData: {`[{"name": "Carol King", "birthday": "07/04/2001"}]`},
		config.FormFieldYear: {"2023"},
	})

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, config.RouteRoot, resp.Header.Get(config.HeaderLocation))

	snap := store.Snapshot()
	assert.Equal(t, 2023, snap.Year)
	// Jul 4, 2023 is a Tuesday.
	require.Len(t, snap.Buckets["Tuesday"], 1)
	assert.Equal(t, 22, snap.Buckets["Tuesday"][0].Age)
}

// TestPage_PostInvalidJSONEmptiesCalendar shows a calendar of empty days, not an error.
func TestPage_PostInvalidJSONEmptiesCalendar(t *testing.T) {
	srv, _ := newTestServer(t, "0")

	resp := postPage(t, srv, url.Values{
		config.FormFieldData: {"{not valid"},
		config.FormFieldYear: {"2024"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	pageResp, body := getPage(t, srv)
	assert.Equal(t, http.StatusOK, pageResp.StatusCode)
	assert.Equal(t, 7, strings.Count(body, config.MsgNoBirthdays))
	assert.Contains(t, body, "{not valid</textarea>")
}

// TestPage_PostRejectsBadYear covers non-numeric and out-of-range years.
func TestPage_PostRejectsBadYear(t *testing.T) {
	for _, year := range []string{"", "abc", "1999", "2025"} {
		t.Run(year, func(t *testing.T) {
			srv, store := newTestServer(t, "0")
			before := store.Snapshot()

			resp := postPage(t, srv, url.Values{
				config.FormFieldData: {"[]"},
				config.FormFieldYear: {year},
			})

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, before.Text, store.Text(), "store must be untouched")
		})
	}
}

func TestPage_PostRejectsCrossOrigin(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
	}{
		{"CrossSiteFetch", map[string]string{"Sec-Fetch-Site": "cross-site", "Origin": "https://evil.example"}, http.StatusForbidden},
		{"ForeignOriginOnly", map[string]string{"Origin": "https://evil.example"}, http.StatusForbidden},
		{"SameOrigin", map[string]string{"Sec-Fetch-Site": "same-origin", "Origin": "http://example.com"}, http.StatusSeeOther},
		{"NoBrowserHeaders", nil, http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, store := newTestServer(t, "0")
			before := store.Snapshot()

			form := url.Values{
				config.FormFieldData: {"[]"},
				config.FormFieldYear: {"2020"},
			}
			req := httptest.NewRequest(http.MethodPost, config.RouteRoot, strings.NewReader(form.Encode()))
			req.Header.Set(config.HeaderContentType, "application/x-www-form-urlencoded")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusForbidden {
				assert.Equal(t, before.Text, store.Text(), "store must be untouched")
				assert.Equal(t, before.Year, store.Year())
			} else {
				assert.Equal(t, "[]", store.Text())
				assert.Equal(t, 2020, store.Year())
			}
		})
	}
}

func TestPage_CrossSiteReadsAllowed(t *testing.T) {
	srv, _ := newTestServer(t, "0")

	req := httptest.NewRequest(http.MethodGet, config.RouteRoot, nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPage_MethodAndPath(t *testing.T) {
	srv, _ := newTestServer(t, "0")

	req := httptest.NewRequest(http.MethodDelete, config.RouteRoot, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, config.AllowedMethodsPage, w.Header().Get(config.HeaderAllow))

	req = httptest.NewRequest(http.MethodGet, "/missing", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodHead, config.RouteRoot, nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

// TestPublish_FeedFollowsSnapshot checks the feed carries the selected year.
func TestPublish_FeedFollowsSnapshot(t *testing.T) {
	srv, store := newTestServer(t, "0")
	require.NoError(t, srv.Publish(store.Snapshot()))

	req := httptest.NewRequest(http.MethodGet, config.RouteICS, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SUMMARY:Birthday: Alice Smith (34)")
	assert.Contains(t, w.Body.String(), "20240310")
}
