package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/birthday-week/internal/config"
	"github.com/tartampluch/birthday-week/internal/engine"
	"github.com/tartampluch/birthday-week/internal/server"
	"github.com/zalando/go-keyring"
)

// CalendarApp encapsulates the UI state, preferences, and the shared calendar store.
type CalendarApp struct {
	App         fyne.App
	MainWindow  fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server   *server.CalendarServer
	Store    *engine.Store
	Importer *engine.Importer
	Clock    engine.Clock

	SupportedLanguages []string

	// i18nMu guards Localizer, which the feed formatter reads from HTTP goroutines.
	i18nMu sync.RWMutex

	settingsWindow fyne.Window
	listWindow     fyne.Window
	// listReload refreshes the open list window; nil while it is closed.
	listReload func(engine.Snapshot)

	// runOnMain schedules work on the UI goroutine (fyne.Do outside tests).
	runOnMain func(func())

	// Main window widgets
	titleLabel  *widget.Label
	dataLabel   *widget.Label
	yearLabel   *widget.Label
	dataEntry   *widget.Entry
	yearSelect  *widget.Select
	status      *widget.Label
	importBtn   *widget.Button
	listBtn     *widget.Button
	settingsBtn *widget.Button
	columns     []*dayColumnView
}

// NewCalendarApp constructs the application and wires dependencies.
func NewCalendarApp(a fyne.App, ctx context.Context, srv *server.CalendarServer, store *engine.Store, importer *engine.Importer) *CalendarApp {
	return &CalendarApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Server:             srv,
		Store:              store,
		Importer:           importer,
		Clock:              engine.RealClock{},
		SupportedLanguages: config.SupportedLanguages,
		runOnMain:          fyne.Do,
	}
}

// Run launches the local server, shows the calendar window and blocks in the UI loop.
func (app *CalendarApp) Run() {
	app.SetupI18n()
	app.Server.FormatSummary = app.buildSummaryFormatter()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	app.bindStore()
	app.ShowMainWindow()
	app.App.Run()
}

// bindStore mirrors store changes made elsewhere (the web page, an import) into the window.
// Queued callbacks read the latest snapshot when they run, so a backlog never
// replays outdated text into the editor.
func (app *CalendarApp) bindStore() {
	app.Store.Subscribe(func(engine.Snapshot) {
		app.runOnMain(app.syncFromStore)
	})
}

func (app *CalendarApp) syncFromStore() {
	snap := app.Store.Snapshot()
	app.applySnapshot(snap)
	if app.listReload != nil {
		app.listReload(snap)
	}
}

// ShowMainWindow builds the editor, year selector and the seven weekday columns.
func (app *CalendarApp) ShowMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.MainWindow = w

	w.SetContent(app.buildMainContent())
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetMaster()
	w.Show()
}

func (app *CalendarApp) buildMainContent() fyne.CanvasObject {
	snap := app.Store.Snapshot()

	app.titleLabel = widget.NewLabel(app.GetMsg(config.TKeyTitleMain))
	app.titleLabel.Alignment = fyne.TextAlignCenter
	app.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	// --- Input section ---
	app.dataLabel = widget.NewLabel(app.GetMsg(config.TKeyLblData))
	app.dataEntry = widget.NewMultiLineEntry()
	app.dataEntry.SetMinRowsVisible(config.DataEntryMinRows)
	app.dataEntry.SetPlaceHolder(app.GetMsg(config.TKeyDataPlaceholder))
	app.dataEntry.SetText(snap.Text)
	// Registered after the initial SetText so seeding does not echo back.
	app.dataEntry.OnChanged = app.Store.SetText

	app.yearLabel = widget.NewLabel(app.GetMsg(config.TKeyLblYear))
	app.yearSelect = widget.NewSelect(yearStrings(engine.YearOptions(app.Clock)), nil)
	app.yearSelect.SetSelected(strconv.Itoa(snap.Year))
	app.yearSelect.OnChanged = app.onYearSelected

	// --- Toolbar ---
	app.importBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.DownloadIcon(), func() {
		go func() { _ = app.performImport() }()
	})
	app.listBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnList), theme.ListIcon(), app.ShowListWindow)
	app.settingsBtn = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSettings), theme.SettingsIcon(), app.ShowSettingsWindow)

	yearBox := container.NewGridWrap(fyne.NewSize(config.YearSelectWidth, app.yearSelect.MinSize().Height), app.yearSelect)
	controls := container.NewVBox(
		app.yearLabel,
		yearBox,
		app.importBtn,
		app.listBtn,
		app.settingsBtn,
	)
	inputSection := container.NewBorder(app.dataLabel, nil, nil, controls, app.dataEntry)

	// --- Calendar grid ---
	app.columns = make([]*dayColumnView, 0, config.DaysPerWeek)
	cells := make([]fyne.CanvasObject, 0, config.DaysPerWeek)
	for range engine.Weekdays {
		col := newDayColumnView(app.showHover, app.clearHover)
		app.columns = append(app.columns, col)
		cells = append(cells, col)
	}
	calendar := container.NewGridWithColumns(config.DaysPerWeek, cells...)

	app.status = widget.NewLabel(app.GetMsg(config.TKeyHoverHint))
	app.status.Truncation = fyne.TextTruncateEllipsis

	app.applySnapshot(snap)

	return container.NewBorder(
		app.titleLabel,
		app.status,
		nil, nil,
		container.NewVSplit(inputSection, calendar),
	)
}

// applySnapshot brings the widgets in line with a store build. It is a no-op
// before the main window exists.
func (app *CalendarApp) applySnapshot(snap engine.Snapshot) {
	// Programmatic updates must not write back into the store.
	if app.dataEntry != nil && app.dataEntry.Text != snap.Text {
		onChanged := app.dataEntry.OnChanged
		app.dataEntry.OnChanged = nil
		app.dataEntry.SetText(snap.Text)
		app.dataEntry.OnChanged = onChanged
	}
	if app.yearSelect != nil {
		if year := strconv.Itoa(snap.Year); app.yearSelect.Selected != year {
			onChanged := app.yearSelect.OnChanged
			app.yearSelect.OnChanged = nil
			app.yearSelect.SetSelected(year)
			app.yearSelect.OnChanged = onChanged
		}
	}

	noBirthdays := app.GetMsg(config.TKeyNoBirthdays)
	for i, col := range snap.Columns {
		if i >= len(app.columns) {
			break
		}
		app.columns[i].SetColumn(col, app.weekdayLabel(engine.Weekdays[i]), noBirthdays)
	}
}

func (app *CalendarApp) onYearSelected(value string) {
	year, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	slog.Debug(config.MsgYearChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyYear, year)
	app.Store.SetYear(year)
}

// showHover plays the role of a tooltip: it shows names in the status line.
func (app *CalendarApp) showHover(text string) {
	if app.status != nil {
		app.status.SetText(text)
	}
}

func (app *CalendarApp) clearHover() {
	if app.status != nil {
		app.status.SetText(app.GetMsg(config.TKeyHoverHint))
	}
}

// refreshTexts re-applies translations after a language change.
func (app *CalendarApp) refreshTexts() {
	if app.MainWindow != nil {
		app.MainWindow.SetTitle(app.GetMsg(config.TKeyWinTitle))
	}
	if app.titleLabel != nil {
		app.titleLabel.SetText(app.GetMsg(config.TKeyTitleMain))
		app.dataLabel.SetText(app.GetMsg(config.TKeyLblData))
		app.yearLabel.SetText(app.GetMsg(config.TKeyLblYear))
		app.dataEntry.SetPlaceHolder(app.GetMsg(config.TKeyDataPlaceholder))
		app.importBtn.SetText(app.GetMsg(config.TKeyBtnImport))
		app.listBtn.SetText(app.GetMsg(config.TKeyBtnList))
		app.settingsBtn.SetText(app.GetMsg(config.TKeyBtnSettings))
		app.clearHover()
	}
	app.syncFromStore()

	// Feed titles are localized too.
	if app.Server != nil {
		if err := app.Server.Publish(app.Store.Snapshot()); err != nil {
			slog.Error(config.ErrICalEncode,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
	}
}

// weekdayLabel returns the localized header of a weekday column.
func (app *CalendarApp) weekdayLabel(d time.Weekday) string {
	key := config.TKeyDayPrefix + strings.ToLower(d.String())
	if msg := app.GetMsg(key); msg != key {
		return msg
	}
	return d.String()
}

// performImport replaces the editor content with the configured source.
func (app *CalendarApp) performImport() error {
	if app.Importer == nil {
		return errors.New(config.ErrFetcherMissing)
	}

	text, err := app.Importer.Import(app.Ctx, app.loadSourceConfig())
	if err != nil {
		slog.Error(config.MsgImportFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		app.App.SendNotification(fyne.NewNotification(config.TitleImportError, app.GetMsg(config.TKeyNotifImportErr)))
		return err
	}

	app.Store.SetText(text)
	app.App.SendNotification(fyne.NewNotification(config.AppName, app.GetMsg(config.TKeyNotifImportOK)))
	return nil
}

// loadSourceConfig assembles the import configuration from UI preferences and Keyring.
func (app *CalendarApp) loadSourceConfig() engine.SourceConfig {
	cfg := engine.SourceConfig{
		Mode:      app.Preferences.StringWithFallback(config.PrefSourceMode, config.SourceModeLocal),
		LocalPath: app.Preferences.String(config.PrefLocalPath),
		WebURL:    app.Preferences.String(config.PrefSourceURL),
		WebUser:   app.Preferences.String(config.PrefUsername),
	}

	if cfg.WebUser != "" {
		if p, err := keyring.Get(config.KeyringService, cfg.WebUser); err == nil {
			cfg.WebPass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyUser, cfg.WebUser,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}

	return cfg
}

// buildSummaryFormatter returns a closure that localizes the feed event summary.
func (app *CalendarApp) buildSummaryFormatter() engine.SummaryFormatter {
	return func(name string, age int) string {
		loc := app.currentLocalizer()
		if loc == nil {
			return engine.DefaultSummary(name, age)
		}

		lc := &i18n.LocalizeConfig{
			MessageID:    config.TKeyEvtSummaryAge,
			TemplateData: map[string]interface{}{"Name": name, "Age": age},
		}
		switch {
		case age < 0:
			lc.MessageID = config.TKeyEvtSummary
		case age == 0:
			lc.MessageID = config.TKeyEvtSummaryBirth
		}

		msg, err := loc.Localize(lc)
		if err != nil || msg == "" {
			return engine.DefaultSummary(name, age)
		}
		return msg
	}
}

func yearStrings(years []int) []string {
	out := make([]string, len(years))
	for i, y := range years {
		out[i] = strconv.Itoa(y)
	}
	return out
}
