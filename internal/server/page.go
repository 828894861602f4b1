package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/tartampluch/birthday-week/internal/config"
	"github.com/tartampluch/birthday-week/internal/engine"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageData feeds templates/page.html.
type pageData struct {
	Title       string
	Text        string
	Year        int
	Years       []int
	Columns     []engine.DayColumn
	NoBirthdays string
	FeedURL     string
	Version     string
}

type pageRenderer struct {
	tmpl *template.Template
}

func newPageRenderer() *pageRenderer {
	funcs := template.FuncMap{
		// tileClass selects the CSS rule sizing tiles at 100%/side.
		"tileClass": func(side int) string { return "side-" + strconv.Itoa(side) },
		"sides": func() []int {
			out := make([]int, config.GridSideMax)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
	}
	tmpl := template.Must(template.New("page.html").Funcs(funcs).ParseFS(templateFS, "templates/page.html"))
	return &pageRenderer{tmpl: tmpl}
}

// render executes the page into a buffer first so a template error never
// produces a half-written response.
func (p *pageRenderer) render(data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrTemplateRender, err)
	}
	return buf.Bytes(), nil
}

// handlePage shows the calendar (GET, HEAD) and applies form edits (POST).
func (s *CalendarServer) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != config.RouteRoot {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		s.servePage(w, r)
	case http.MethodPost:
		s.submitPage(w, r)
	default:
		w.Header().Set(config.HeaderAllow, config.AllowedMethodsPage)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
	}
}

func (s *CalendarServer) servePage(w http.ResponseWriter, r *http.Request) {
	snap := s.Store.Snapshot()

	body, err := s.page.render(pageData{
		Title:       config.TitleMain,
		Text:        snap.Text,
		Year:        snap.Year,
		Years:       engine.YearOptions(s.Clock),
		Columns:     snap.Columns,
		NoBirthdays: config.MsgNoBirthdays,
		FeedURL:     config.RouteICS,
		Version:     config.Version,
	})
	if err != nil {
		slog.Error(config.ErrTemplateRender,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		http.Error(w, config.HTTPMsgInternalErr, http.StatusInternalServerError)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextHTML)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlNoStore)

	if r.Method == http.MethodGet {
		if _, err := w.Write(body); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

func (s *CalendarServer) submitPage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		slog.Warn(config.ErrFormParse,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		http.Error(w, config.HTTPMsgBadRequest, http.StatusBadRequest)
		return
	}

	year, err := strconv.Atoi(r.PostForm.Get(config.FormFieldYear))
	if err != nil || !slices.Contains(engine.YearOptions(s.Clock), year) {
		http.Error(w, config.HTTPMsgInvalidYear, http.StatusBadRequest)
		return
	}

	text := r.PostForm.Get(config.FormFieldData)
	s.Store.Set(text, year)

	slog.Info(config.MsgPageUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeyYear, year,
		config.LogKeyBytes, len(text),
	)

	w.Header().Set(config.HeaderLocation, config.RouteRoot)
	w.WriteHeader(http.StatusSeeOther)
}
