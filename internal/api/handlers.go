package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/username/nsw-workday-calc/internal/workday"
	"github.com/username/nsw-workday-calc/pkg/dateutil"
	"go.uber.org/zap"
)

// Handler serves work-day calculations over HTTP
type Handler struct {
	calc           *workday.Calculator
	defaultPattern string
	logger         *zap.Logger
}

// NewHandler creates a new handler. An empty pattern falls back to dd/MM/yyyy.
func NewHandler(calc *workday.Calculator, defaultPattern string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultPattern == "" {
		defaultPattern = dateutil.DefaultPattern
	}

	return &Handler{
		calc:           calc,
		defaultPattern: defaultPattern,
		logger:         logger,
	}
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// WorkDays handles GET /api/workdays?start=&end=[&pattern=]
func (h *Handler) WorkDays(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	result, err := h.calc.Calculate(start, end)
	if err != nil {
		h.writeCalcError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkDaysResponse(result))
}

// Weekdays handles GET /api/weekdays; both endpoints are included
func (h *Handler) Weekdays(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, WeekdaysResponse{
		Start:    dateutil.FormatDate(start),
		End:      dateutil.FormatDate(end),
		Weekdays: h.calc.CountWeekdays(start, end),
	})
}

// Holidays handles GET /api/holidays; both endpoints are included
func (h *Handler) Holidays(w http.ResponseWriter, r *http.Request) {
	start, end, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	occurrences := h.calc.Holidays().Occurrences(start, end)
	writeJSON(w, http.StatusOK, HolidaysResponse{
		Start:    dateutil.FormatDate(start),
		End:      dateutil.FormatDate(end),
		Count:    len(occurrences),
		Holidays: ToHolidayDTOs(occurrences),
	})
}

// Month handles GET /api/calendar/{year}/{month}
func (h *Handler) Month(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month", fmt.Errorf("month must be 1-12, got %q", chi.URLParam(r, "month")))
		return
	}

	info, err := h.calc.MonthInfo(year, time.Month(month))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}

	writeJSON(w, http.StatusOK, ToMonthResponse(info))
}

func (h *Handler) parseRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	query := r.URL.Query()
	startStr, endStr := query.Get("start"), query.Get("end")
	if startStr == "" || endStr == "" {
		writeError(w, http.StatusBadRequest, "start and end are required", nil)
		return time.Time{}, time.Time{}, false
	}

	pattern := query.Get("pattern")
	if pattern == "" {
		pattern = h.defaultPattern
	}

	start, end, err := h.calc.ParseRange(startStr, endStr, pattern)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format", err)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *Handler) writeCalcError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workday.ErrInvalidRange):
		writeError(w, http.StatusBadRequest, "Invalid range", err)
	case errors.Is(err, workday.ErrInvalidDateFormat):
		writeError(w, http.StatusBadRequest, "Invalid date format", err)
	default:
		h.logger.Error("Work day calculation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Calculation failed", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
