package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/zapponejosh/almanac-api/internal/calendar"
	"github.com/zapponejosh/almanac-api/internal/config"
	"github.com/zapponejosh/almanac-api/internal/database"
	"github.com/zapponejosh/almanac-api/internal/locale"
	"github.com/zapponejosh/almanac-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	resolver *calendar.ObservanceResolver
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, log *slog.Logger) *Handlers {
	return &Handlers{
		db:       db,
		resolver: calendar.NewObservanceResolver(db),
		cfg:      cfg,
		logger:   log,
		now:      time.Now,
	}
}

// =============================================================================
// Response payloads
// =============================================================================

type civilView struct {
	JDN         float64                `json:"jdn"`
	DayNumber   int                    `json:"day_number"`
	Civil       calendar.CivilDateTime `json:"civil"`
	Formatted   string                 `json:"formatted"`
	TimeOfDay   string                 `json:"time_of_day"`
	Weekday     int                    `json:"weekday"`
	WeekdayName string                 `json:"weekday_name"`
	MonthName   string                 `json:"month_name"`
	Calendar    string                 `json:"calendar"` // julian or gregorian
}

type hijriView struct {
	DayNumber int                `json:"day_number"`
	Hijri     calendar.HijriDate `json:"hijri"`
	MonthName string             `json:"month_name"`
	Formatted string             `json:"formatted"`
}

type dayView struct {
	DayNumber   int                `json:"day_number"`
	Date        string             `json:"date"`
	Weekday     int                `json:"weekday"`
	WeekdayName string             `json:"weekday_name"`
	Hijri       calendar.HijriDate `json:"hijri"`
	HijriMonth  string             `json:"hijri_month"`
}

type occurrenceView struct {
	calendar.Occurrence
	DateString  string `json:"date_string"`
	WeekdayName string `json:"weekday_name"`
	HijriMonth  string `json:"hijri_month"`
}

func civilViewOf(jdn float64, tag language.Tag) civilView {
	c := calendar.JDNToCivil(jdn)
	day := dayNumber(jdn)
	regime := "julian"
	if day >= calendar.GregorianCutoverJDN {
		regime = "gregorian"
	}
	return civilView{
		JDN:         jdn,
		DayNumber:   day,
		Civil:       c,
		Formatted:   c.String(),
		TimeOfDay:   calendar.TimeOfDay(jdn),
		Weekday:     calendar.WeekdayOfJDN(jdn),
		WeekdayName: locale.WeekdayName(tag, calendar.WeekdayOfJDN(jdn)),
		MonthName:   locale.CivilMonthName(tag, c.Month),
		Calendar:    regime,
	}
}

func hijriViewOf(day int, tag language.Tag) hijriView {
	hd := calendar.JDNToHijri(day)
	return hijriView{
		DayNumber: day,
		Hijri:     hd,
		MonthName: locale.HijriMonthName(tag, hd.Month),
		Formatted: fmt.Sprintf("%d-%02d-%02d", hd.Year, hd.Month, hd.Day),
	}
}

func dayViewOf(md calendar.MonthDay, tag language.Tag) dayView {
	return dayView{
		DayNumber:   md.JDN,
		Date:        md.Date.DateString(),
		Weekday:     md.Weekday,
		WeekdayName: locale.WeekdayName(tag, md.Weekday),
		Hijri:       md.Hijri,
		HijriMonth:  locale.HijriMonthName(tag, md.Hijri.Month),
	}
}

// dayNumber is the integer day index a JDN falls in (days start at midnight).
func dayNumber(jdn float64) int {
	return int(math.Floor(jdn + 0.5))
}

// =============================================================================
// Health
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.log(r).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{"status": "healthy"})
}

// =============================================================================
// Conversions
// =============================================================================

// GetJDN handles GET /api/v1/jdn?date=Y-M-D[&time=HH:MM:SS]
// Without a time the date is taken at noon.
func (h *Handlers) GetJDN(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		WriteBadRequest(w, "date parameter is required")
		return
	}

	year, month, day, err := calendar.ParseCivilDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	hour, minute, second := 12, 0, 0.0
	if timeStr := r.URL.Query().Get("time"); timeStr != "" {
		hour, minute, second, err = calendar.ParseClock(timeStr)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid time: %s. Use HH:MM[:SS]", timeStr))
			return
		}
	}

	jdn := calendar.CivilToJDN(year, month, day, hour, minute, second)
	WriteSuccess(w, civilViewOf(jdn, h.lang(r)))
}

// GetCivil handles GET /api/v1/civil/{jdn}
func (h *Handlers) GetCivil(w http.ResponseWriter, r *http.Request) {
	jdn, ok := floatParam(w, r, "jdn")
	if !ok {
		return
	}
	WriteSuccess(w, civilViewOf(jdn, h.lang(r)))
}

// GetHijri handles GET /api/v1/hijri/{jdn}
func (h *Handlers) GetHijri(w http.ResponseWriter, r *http.Request) {
	jdn, ok := floatParam(w, r, "jdn")
	if !ok {
		return
	}
	WriteSuccess(w, hijriViewOf(dayNumber(jdn), h.lang(r)))
}

// GetHijriByDate handles GET /api/v1/hijri?date=Y-M-D
func (h *Handlers) GetHijriByDate(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		WriteBadRequest(w, "date parameter is required")
		return
	}

	year, month, day, err := calendar.ParseCivilDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	WriteSuccess(w, hijriViewOf(dayNumber(calendar.DateToJDN(year, month, day)), h.lang(r)))
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	tag := h.lang(r)
	now := calendar.FromTime(h.now().UTC())
	jdn := now.JDN()

	WriteSuccess(w, map[string]any{
		"civil": civilViewOf(jdn, tag),
		"hijri": hijriViewOf(dayNumber(jdn), tag),
	})
}

// =============================================================================
// Queries
// =============================================================================

// GetNthWeekday handles GET /api/v1/weekday/{year}/{month}?n=&weekday=
func (h *Handlers) GetNthWeekday(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}
	month, ok := intParam(w, r, "month")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		WriteBadRequest(w, "month must be between 1 and 12")
		return
	}

	n, err := queryInt(r, "n", 1)
	if err != nil || n < 1 || n > 5 {
		WriteBadRequest(w, "n must be between 1 and 5")
		return
	}
	weekday, err := queryInt(r, "weekday", -1)
	if err != nil || weekday < 0 || weekday > 6 {
		WriteBadRequest(w, "weekday must be between 0 (Sunday) and 6 (Saturday)")
		return
	}

	tag := h.lang(r)
	day := calendar.NthWeekdayOfMonth(year, month, n, weekday)
	WriteSuccess(w, map[string]any{
		"year":        year,
		"month":       month,
		"n":           n,
		"weekday":     weekday,
		"description": fmt.Sprintf("%s %s of %s %d", locale.Ordinal(n), locale.WeekdayName(language.English, weekday), locale.CivilMonthName(language.English, month), year),
		"result":      civilViewOf(float64(day), tag),
	})
}

// GetCentury handles GET /api/v1/century/{year}
func (h *Handlers) GetCentury(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}

	epoch := calendar.CenturyEpochJDN(year)
	WriteSuccess(w, map[string]any{
		"year":            year,
		"normalized_year": calendar.NormalizedCenturyYear(year),
		"epoch_jdn":       epoch,
		"epoch_year":      calendar.JDNToCivil(float64(epoch)).Year,
	})
}

// GetMonthCalendar handles GET /api/v1/calendar/{year}/{month}
func (h *Handlers) GetMonthCalendar(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}
	month, ok := intParam(w, r, "month")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		WriteBadRequest(w, "month must be between 1 and 12")
		return
	}

	tag := h.lang(r)
	table := calendar.MonthTable(year, month)
	days := make([]dayView, 0, len(table))
	for _, md := range table {
		days = append(days, dayViewOf(md, tag))
	}

	WriteSuccess(w, map[string]any{
		"year":       year,
		"month":      month,
		"month_name": locale.CivilMonthName(tag, month),
		"days":       days,
	})
}

// GetRange handles GET /api/v1/range?start=Y-M-D&end=Y-M-D
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	sy, sm, sd, err := calendar.ParseCivilDate(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date: %s. Use YYYY-MM-DD", startStr))
		return
	}
	ey, em, ed, err := calendar.ParseCivilDate(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date: %s. Use YYYY-MM-DD", endStr))
		return
	}

	start := dayNumber(calendar.DateToJDN(sy, sm, sd))
	end := dayNumber(calendar.DateToJDN(ey, em, ed))
	if start > end {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}
	if end-start+1 > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays))
		return
	}

	tag := h.lang(r)
	days := make([]dayView, 0, end-start+1)
	for jdn := start; jdn <= end; jdn++ {
		days = append(days, dayViewOf(calendar.MonthDay{
			JDN:     jdn,
			Date:    calendar.JDNToCivil(float64(jdn)),
			Weekday: calendar.WeekdayOfJDN(float64(jdn)),
			Hijri:   calendar.JDNToHijri(jdn),
		}, tag))
	}

	WriteSuccess(w, map[string]any{
		"start": startStr,
		"end":   endStr,
		"days":  days,
	})
}

// =============================================================================
// Observances
// =============================================================================

// ListObservances handles GET /api/v1/observances[?kind=]
func (h *Handlers) ListObservances(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		rules []database.Observance
		err   error
	)
	if kind := database.Kind(r.URL.Query().Get("kind")); kind != "" {
		if !kind.IsValid() {
			WriteBadRequest(w, fmt.Sprintf("unknown kind %q", kind))
			return
		}
		rules, err = h.db.ListObservancesByKind(ctx, kind)
	} else {
		rules, err = h.db.ListObservances(ctx)
	}
	if err != nil {
		h.log(r).Error("failed to list observances", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve observances")
		return
	}

	WriteSuccess(w, rules)
}

// GetYearObservances handles GET /api/v1/observances/year/{year}
func (h *Handlers) GetYearObservances(w http.ResponseWriter, r *http.Request) {
	year, ok := intParam(w, r, "year")
	if !ok {
		return
	}

	occurrences, err := h.resolver.ResolveYear(r.Context(), year)
	if err != nil {
		h.log(r).Error("failed to resolve observances",
			slog.Int("year", year),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve observances")
		return
	}

	tag := h.lang(r)
	views := make([]occurrenceView, 0, len(occurrences))
	for _, o := range occurrences {
		views = append(views, occurrenceView{
			Occurrence:  o,
			DateString:  o.Date.DateString(),
			WeekdayName: locale.WeekdayName(tag, o.Weekday),
			HijriMonth:  locale.HijriMonthName(tag, o.Hijri.Month),
		})
	}

	WriteSuccess(w, map[string]any{
		"year":        year,
		"observances": views,
	})
}

// CreateObservance handles POST /api/v1/observances
func (h *Handlers) CreateObservance(w http.ResponseWriter, r *http.Request) {
	var o database.Observance
	if err := decodeJSON(r, &o); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	o.ID = 0

	if err := o.Validate(); err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	if err := h.db.CreateObservance(r.Context(), &o); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			WriteConflict(w, fmt.Sprintf("Observance %q already exists", o.Name))
			return
		}
		h.log(r).Error("failed to create observance", slog.Any("error", err))
		WriteInternalError(w, "Failed to create observance")
		return
	}

	h.log(r).Info("observance created",
		slog.Int64("id", o.ID),
		slog.String("name", o.Name),
		slog.String("kind", string(o.Kind)))

	WriteCreated(w, o)
}

// DeleteObservance handles DELETE /api/v1/observances/{id}
func (h *Handlers) DeleteObservance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid observance ID")
		return
	}

	if err := h.db.DeleteObservance(r.Context(), id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Observance not found")
			return
		}
		h.log(r).Error("failed to delete observance", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete observance")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Observance deleted"})
}

// =============================================================================
// Helpers
// =============================================================================

// lang picks the response language from ?lang=, Accept-Language and the
// configured default, in that order.
func (h *Handlers) lang(r *http.Request) language.Tag {
	return locale.Match(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), h.cfg.DefaultLang)
}

func (h *Handlers) log(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context(), h.logger)
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q", name, raw))
		return 0, false
	}
	return v, true
}

func floatParam(w http.ResponseWriter, r *http.Request, name string) (float64, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q", name, raw))
		return 0, false
	}
	return v, true
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// decodeJSON decodes a JSON request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
