package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/birthday-week/internal/config"
	"github.com/tartampluch/birthday-week/internal/engine"
)

// CalendarStore is the part of engine.Store the server relies on.
type CalendarStore interface {
	Snapshot() engine.Snapshot
	Set(text string, year int)
	Subscribe(fn func(engine.Snapshot))
}

// cacheItem stores the rendered feed and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// CalendarServer serves the calendar page and its iCalendar feed on localhost.
type CalendarServer struct {
	// cache uses atomic.Pointer for lock-free reads of the feed.
	cache atomic.Pointer[cacheItem]
	Port  string

	Store CalendarStore
	Clock engine.Clock

	// FormatSummary localizes feed event titles; nil uses engine.DefaultSummary.
	FormatSummary engine.SummaryFormatter

	page *pageRenderer
}

// NewCalendarServer creates a new instance of the server.
func NewCalendarServer(port string, store CalendarStore) *CalendarServer {
	return &CalendarServer{
		Port:  port,
		Store: store,
		Clock: engine.RealClock{},
		page:  newPageRenderer(),
	}
}

// Handler returns the routes served by the calendar server.
func (s *CalendarServer) Handler() http.Handler {
	// Page edits replace the desktop editor content, so other sites must not
	// be able to submit the form.
	csrf := http.NewCrossOriginProtection()
	csrf.SetDenyHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Warn(config.MsgCrossOrigin,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyMethod, r.Method,
		)
		http.Error(w, config.HTTPMsgForbidden, http.StatusForbidden)
	}))

	mux := http.NewServeMux()
	mux.Handle(config.RouteRoot, csrf.Handler(http.HandlerFunc(s.handlePage)))
	mux.HandleFunc(config.RouteICS, s.handleCalendarRequest)
	return mux
}

// Start publishes the current calendar, keeps the feed in sync with the store,
// and serves HTTP until the context is cancelled.
func (s *CalendarServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return fmt.Errorf(config.ErrPortRequired)
	}

	if s.Store != nil {
		s.publishLogged(s.Store.Snapshot())
		s.Store.Subscribe(s.publishLogged)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, 1)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Publish regenerates the feed from snap.
func (s *CalendarServer) Publish(snap engine.Snapshot) error {
	clock := s.Clock
	if clock == nil {
		clock = engine.RealClock{}
	}
	data, err := engine.EncodeICS(snap, clock.Now(), s.FormatSummary)
	if err != nil {
		return err
	}
	s.Update(data)
	return nil
}

func (s *CalendarServer) publishLogged(snap engine.Snapshot) {
	if err := s.Publish(snap); err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

// Update atomically replaces the served feed.
func (s *CalendarServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	item := &cacheItem{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}

	// Readers see either the old or the new complete item, never a partial state.
	s.cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// handleCalendarRequest serves the ICS content with HTTP caching support.
func (s *CalendarServer) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	// 1. Method Validation
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethodsFeed)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	// 2. Load Data (Atomic / Lock-Free)
	item := s.cache.Load()

	// 3. Readiness Check
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	// 4. Set Response Headers
	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	// 5. Check Conditional Headers (Browser Caching)
	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	// 6. Serve Content
	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
