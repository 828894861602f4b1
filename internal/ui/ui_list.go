package ui

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/birthday-week/internal/config"
	"github.com/tartampluch/birthday-week/internal/engine"
)

// flattenBuckets lists every entry of the calendar, Sunday's first.
func flattenBuckets(b engine.WeekdayBuckets) []engine.CalendarEntry {
	out := make([]engine.CalendarEntry, 0, b.Total())
	for _, d := range engine.Weekdays {
		out = append(out, b[d.String()]...)
	}
	return out
}

// sortEntries orders the list by the given column. Ties fall back to the name.
func sortEntries(entries []engine.CalendarEntry, col int, asc bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		var cmp int
		switch col {
		case config.ColIDName:
			cmp = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		case config.ColIDWeekday:
			cmp = int(a.Occurrence.Weekday()) - int(b.Occurrence.Weekday())
		case config.ColIDAge:
			cmp = a.Age - b.Age
		default: // config.ColIDDate
			cmp = a.Occurrence.Compare(b.Occurrence)
		}
		if cmp == 0 && col != config.ColIDName {
			cmp = strings.Compare(a.Name, b.Name)
		}

		if !asc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// ageText renders the age reached in the selected year.
func (app *CalendarApp) ageText(age int) string {
	switch {
	case age < 0:
		return config.AgeUnknown
	case age == 0:
		return app.GetMsg(config.TKeyAgeBirth)
	default:
		return strconv.Itoa(age)
	}
}

// dateText formats an occurrence with the localized layout.
func (app *CalendarApp) dateText(e engine.CalendarEntry) string {
	format := app.GetMsg(config.TKeyFormatDate)
	if format == config.TKeyFormatDate {
		format = config.DateFormatDisplay
	}
	return e.Occurrence.Format(format)
}

// ShowListWindow displays every birthday of the selected year in a sortable table.
// Only one list window is open at a time.
func (app *CalendarApp) ShowListWindow() {
	if app.listWindow != nil {
		app.listWindow.RequestFocus()
		return
	}

	snap := app.Store.Snapshot()
	entries := flattenBuckets(snap.Buckets)

	w := app.App.NewWindow(app.listTitle(snap.Year))
	app.listWindow = w
	w.Resize(fyne.NewSize(config.ListWindowWidth, config.ListWindowHeight))

	slog.Info(config.MsgListOpen,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(entries))

	currentSortCol := config.ColIDDate
	sortAsc := true

	performSort := func() {
		sortEntries(entries, currentSortCol, sortAsc)
		slog.Debug(config.MsgListSorted,
			config.LogKeyComponent, config.CompUI,
			config.LogKeySortCol, currentSortCol,
			config.LogKeySortAsc, sortAsc)
	}
	performSort()

	table := widget.NewTable(
		func() (int, int) {
			return len(entries), config.ListColumnCount
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(entries) {
				return
			}
			e := entries[id.Row]

			switch id.Col {
			case config.ColIDName:
				label.SetText(e.Name)
			case config.ColIDDate:
				label.SetText(app.dateText(e))
			case config.ColIDWeekday:
				label.SetText(app.weekdayLabel(e.Occurrence.Weekday()))
			case config.ColIDAge:
				label.SetText(app.ageText(e.Age))
			}
		},
	)

	var refreshTable func()

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton(config.TablePlaceholder, func() {})
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)

		text := app.GetMsg(headerKey(id.Col))
		if id.Col == currentSortCol {
			if sortAsc {
				text += config.SortIconAsc
			} else {
				text += config.SortIconDesc
			}
		}
		btn.SetText(text)

		btn.OnTapped = func() {
			if currentSortCol == id.Col {
				sortAsc = !sortAsc
			} else {
				currentSortCol = id.Col
				sortAsc = true
			}
			refreshTable()
		}
	}

	table.SetColumnWidth(config.ColIDName, config.ColWidthName)
	table.SetColumnWidth(config.ColIDDate, config.ColWidthDate)
	table.SetColumnWidth(config.ColIDWeekday, config.ColWidthWeekday)
	table.SetColumnWidth(config.ColIDAge, config.ColWidthAge)

	refreshTable = func() {
		performSort()
		table.Refresh()
	}

	// Follow the store while open: edits and year changes rebuild the rows.
	app.listReload = func(snap engine.Snapshot) {
		entries = flattenBuckets(snap.Buckets)
		w.SetTitle(app.listTitle(snap.Year))
		refreshTable()
	}

	w.SetContent(container.NewBorder(nil, nil, nil, nil, table))
	w.SetOnClosed(func() {
		app.listWindow = nil
		app.listReload = nil
	})
	w.Show()
}

func (app *CalendarApp) listTitle(year int) string {
	return fmt.Sprintf("%s %d", app.GetMsg(config.TKeyWinList), year)
}

func headerKey(col int) string {
	switch col {
	case config.ColIDName:
		return config.TKeyColName
	case config.ColIDWeekday:
		return config.TKeyColWeekday
	case config.ColIDAge:
		return config.TKeyColAge
	default:
		return config.TKeyColDate
	}
}
