package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used for remote imports.
var UserAgent = "Birthday-Week/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Birthday Week"
	AppID             = "com.github.tartampluch.birthday-week"
	KeyringService    = "com.github.tartampluch.birthday-week"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagHeadless     = "headless"
	FlagPort         = "port"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescHeadless = "Serve the calendar page over HTTP without opening a window"
	FlagDescPort     = "Port of the local calendar page (overrides the saved preference)"
	MsgVersionOutput = "%s version %s (commit %s, built %s) %s/%s\n"
)

// -----------------------------------------------------------------------------
// Calendar Domain
// -----------------------------------------------------------------------------

const (
	// MinSelectableYear is the first year offered by the year selector.
	MinSelectableYear = 2000

	// Separators used to recognize the two supported birthday layouts.
	SepMonthDayYear = "/" // MM/DD/YYYY
	SepYearMonthDay = "-" // YYYY-MM-DD

	DateComponents = 3
	MinMonth       = 1
	MaxMonth       = 12
	MinDay         = 1
	MaxDay         = 31

	// Two-digit years in the slash layout are expanded around this pivot:
	// values below it land in the 2000s, the rest in the 1900s.
	TwoDigitYearPivot   = 50
	TwoDigitYearMax     = 99
	TwoDigitCenturyLow  = 2000
	TwoDigitCenturyHigh = 1900

	// Grid density thresholds: a bucket of up to N entries uses side S.
	GridSideMax = 5

	// JSONIndent is used when the seed data is serialized into the editor.
	JSONIndent = "  "

	TooltipSeparator = ", "
	TitleMain        = "7-Day Birthday Calendar"
	MsgNoBirthdays   = "No birthdays"
)

// GridThresholds maps the largest occupant count of a density step to its grid side.
// Counts above the last threshold use GridSideMax.
var GridThresholds = []struct {
	MaxCount int
	Side     int
}{
	{1, 1},
	{4, 2},
	{9, 3},
	{16, 4},
}

// TilePalette is the fixed tile color cycle.
var TilePalette = []string{"#545D79", "#8AB721", "#C77D99", "#78CAE3", "#E64A33"}

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 1100
	MainWindowHeight    = 720
	SettingsWindowWidth = 520
	DataEntryMinRows    = 12
	DayColumnMinWidth   = 120
	DayContentMinHeight = 140
	TileTextSize        = 14
	YearSelectWidth     = 120
	ListWindowWidth     = 560
	ListWindowHeight    = 600

	// Birthday list columns
	ColIDName        = 0
	ColIDDate        = 1
	ColIDWeekday     = 2
	ColIDAge         = 3
	ListColumnCount  = 4
	ColWidthName     = 220
	ColWidthDate     = 110
	ColWidthWeekday  = 120
	ColWidthAge      = 70
	SortIconAsc      = " ▲"
	SortIconDesc     = " ▼"
	TablePlaceholder = "Placeholder"
	AgeUnknown       = "-"

	// Preference Keys
	PrefLanguage   = "language"
	PrefServerPort = "server_port"
	PrefSourceMode = "source_mode"
	PrefLocalPath  = "local_path"
	PrefSourceURL  = "source_url"
	PrefUsername   = "username"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyWinSettings     = "win_settings_title"
	TKeyWinList         = "win_list_title"
	TKeyTitleMain       = "title_main"
	TKeyLblData         = "lbl_data"
	TKeyLblYear         = "lbl_year"
	TKeyDataPlaceholder = "data_placeholder"
	TKeyNoBirthdays     = "no_birthdays"
	TKeyHoverHint       = "hover_hint"
	TKeyBtnImport       = "btn_import"
	TKeyBtnSettings     = "btn_settings"
	TKeyBtnList         = "btn_list"
	TKeyBtnSave         = "btn_save"
	TKeyBtnCancel       = "btn_cancel"
	TKeyBtnBrowse       = "btn_browse"
	TKeyLblLanguage     = "lbl_language"
	TKeyHelpLanguage    = "help_language"
	TKeyLblPort         = "lbl_server_port"
	TKeyHelpPort        = "help_port"
	TKeyLblGeneral      = "lbl_general"
	TKeyLblSource       = "lbl_source"
	TKeyModeWeb         = "mode_web"
	TKeyModeLocal       = "mode_local"
	TKeyLblURL          = "lbl_url"
	TKeyHelpURL         = "help_source_url"
	TKeyLblUser         = "lbl_user"
	TKeyLblPass         = "lbl_pass"
	TKeyLblFooter       = "lbl_footer"
	TKeyNotifImportOK   = "notif_import_success"
	TKeyNotifImportErr  = "notif_import_error"
	TKeyEvtSummary      = "event_summary"       // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBirth = "event_summary_birth" // Requires Name (For age 0)

	// Weekday headers, suffixed with the English weekday name in lower case.
	TKeyDayPrefix = "day_"

	// Birthday list
	TKeyColName    = "col_name"
	TKeyColDate    = "col_date"
	TKeyColWeekday = "col_weekday"
	TKeyColAge     = "col_age"
	TKeyFormatDate = "format_date"
	TKeyAgeBirth   = "age_birth"

	// Validation Errors (UI)
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb   = "web"
	SourceModeLocal = "local"
	DefaultPort     = "18081"
	DefaultLanguage = "en"
	DefaultLeapYear = 2000 // Leap year used to validate year-less vCard dates
	UIDSalt         = "birthday-week-v1-"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Birthday Week//Calendar//EN"
	ICalCalName = "Birthday Week"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "birthdayweek"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"
	PropCategories = "CATEGORIES"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Output layout for records produced from vCard imports.
	DateFormatFullDash = "2006-01-02"

	// Fallback layout of the birthday list when the locale has none.
	DateFormatDisplay = "Jan 02"

	// Layouts used for parsing vCard BDAY fields
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// JSONArrayPrefix marks an import payload as JSON records rather than vCard.
	JSONArrayPrefix = '['

	// File Extensions
	ExtJSON  = ".json"
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Network, Timeouts & Retries
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethodsFeed  = "GET, HEAD"
	AllowedMethodsPage  = "GET, HEAD, POST"
	MaxHTTPResponseSize = 16 * 1024 * 1024 // 16MB
	MaxFormSize         = 1 * 1024 * 1024  // 1MB
	FetchAttempts       = 3
	FetchRetryDelay     = 500 * time.Millisecond
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	RouteICS            = "/calendar.ics"
	AddrSeparator       = ":"
	FormFieldData       = "data"
	FormFieldYear       = "year"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"
	HeaderLocation        = "Location"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeTextHTML        = "text/html; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"
	CacheControlNoStore = "no-store"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty   = "configuration error: local path is empty"
	ErrWebURLEmpty      = "configuration error: web URL is empty"
	ErrFetcherMissing   = "internal error: network fetcher is not initialized"
	ErrModeUnsupport    = "configuration error: unsupported source mode"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number"
	ErrPortRange        = "server port must be between 1 and 65535"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrFetchStatus      = "server returned unexpected status"
	ErrFetchNetwork     = "network error during fetch"
	ErrSourceRead       = "failed to read import source"
	ErrSourceJSON       = "import source is not a valid JSON record list"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrNoVCards         = "source holds neither a JSON record list nor vCards"
	ErrNoBirthdays      = "source holds no contact with a dated birthday"
	ErrSourceTooLarge   = "import source exceeds size limit"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateUnrecognized = "unrecognized birthday format"
	ErrDateParse        = "unable to parse date"
	ErrRecordsParse     = "invalid birthday JSON data"
	ErrRecordsEncode    = "failed to serialize birthday records"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrTemplateRender   = "failed to render calendar page"
	ErrFormParse        = "failed to parse form"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrKeyringSave      = "failed to save credentials to keyring"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgInternalErr  = "Internal Server Error"
	HTTPMsgBadRequest   = "Bad Request"
	HTTPMsgInvalidYear  = "Invalid year"
	HTTPMsgForbidden    = "Cross-origin request rejected"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"
	FallbackName         = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	TitleStartupError = "Startup Error"
	TitleImportError  = "Import Error"

	MsgPortBusy       = "Port %s is busy or unavailable."
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down"
	MsgAppStarting    = "Starting application"
	MsgHeadless       = "Running headless, calendar page only"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgCacheUpdated   = "Calendar feed updated"
	MsgPageUpdated    = "Calendar input updated from page"
	MsgCrossOrigin    = "Rejected cross-origin page edit"
	MsgInvalidJSON    = "Invalid JSON data"
	MsgSkippedRecord  = "Skipping record with unrecognized birthday"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgCalendarBuilt  = "Birthday calendar rebuilt"
	MsgCalendarReused = "Birthday calendar unchanged, reusing cached build"
	MsgFeedGenerated  = "Calendar feed generated"
	MsgImportStarted  = "Import started"
	MsgImportDone     = "Import completed"
	MsgImportFailed   = "Import failed"
	MsgFetchStart     = "Initiating source download"
	MsgFetchStatus    = "Server returned error status"
	MsgFetchRetry     = "Retrying source download"
	MsgFetchOK        = "Source downloading"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgPassFail       = "Password retrieval failed (might be empty)"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgSettingsSaved  = "Saving preferences"
	MsgSettingsOpen   = "Opening settings window"
	MsgSettingsFocus  = "Settings window already open, requesting focus"
	MsgYearChanged    = "Selected year changed"
	MsgListOpen       = "Opening birthday list window"
	MsgListSorted     = "Birthday list sorted"
	MsgBadHexColor    = "Invalid tile color, using fallback"

	PlaceholderURL = "https://..."
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyUser      = "user"
	LogKeyYear      = "year"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyRecords   = "records"
	LogKeyPlaced    = "placed"
	LogKeySkipped   = "skipped"
	LogKeyEvents    = "events"
	LogKeyAttempt   = "attempt"
	LogKeyBytes     = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"
	LogKeyCount     = "count"
	LogKeyMethod    = "method"
	LogKeySortCol   = "sort_col"
	LogKeySortAsc   = "sort_asc"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompUISet    = "ui_settings"
	CompEngine   = "engine"
	CompStore    = "store"
	CompServer   = "server"
	CompFetcher  = "fetcher"
	CompImporter = "importer"
	CompMain     = "main"
	CompI18n     = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
	DaysPerWeek         = 7
)
