package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/holidays"
	"github.com/dmitrymomot/holidays/pkg/translations"
	"github.com/dmitrymomot/holidays/pkg/yearcache"
)

const defaultLocale = "en_US"

type yearResponse struct {
	Code     string              `json:"code"`
	Year     int                 `json:"year"`
	Locale   string              `json:"locale"`
	Holidays []*holidays.Holiday `json:"holidays"`
}

type holidayResponse struct {
	Key     string `json:"key"`
	Date    string `json:"date"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Weekday string `json:"weekday"`
}

type workdayResponse struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	WorkingDay bool   `json:"working_day"`
	Holiday    bool   `json:"holiday"`
}

func (s *Server) handleProviders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, holidays.ListProviders())
}

func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	loc := queryLocale(r)

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, s.log, holidays.ErrInvalidYear)
		return
	}

	key := yearcache.Key{Provider: code, Year: year, Locale: loc}
	payload, err := s.loader.Load(r.Context(), key, func(context.Context) ([]byte, time.Duration, error) {
		body, err := renderYear(code, year, loc)
		if err != nil {
			return nil, 0, err
		}
		return body, s.ttl, nil
	})
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func (s *Server) handleHoliday(w http.ResponseWriter, r *http.Request) {
	c, err := holidays.Create(chi.URLParam(r, "code"), pathYear(r), queryLocale(r))
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	c.MergeGlobalTranslations(translations.Default())

	h, err := c.Get(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	name, err := h.Name()
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, holidayResponse{
		Key:     h.Key(),
		Date:    h.Date().Format(time.DateOnly),
		Name:    name,
		Type:    string(h.Category()),
		Weekday: h.Date().Weekday().String(),
	})
}

func (s *Server) handleWorkday(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, s.log, holidays.ErrInputTypeMismatch)
		return
	}

	c, err := holidays.Create(chi.URLParam(r, "code"), date.Year(), queryLocale(r))
	if err != nil {
		writeError(w, s.log, err)
		return
	}

	writeJSON(w, http.StatusOK, workdayResponse{
		Date:       date.Format(time.DateOnly),
		Weekday:    date.Weekday().String(),
		WorkingDay: c.IsWorkingDay(date),
		Holiday:    c.IsHoliday(date),
	})
}

// renderYear builds and serializes one year payload. The result is what gets
// cached, so localization happens once per key.
func renderYear(code string, year int, loc string) ([]byte, error) {
	c, err := holidays.Create(code, year, loc)
	if err != nil {
		return nil, err
	}
	c.MergeGlobalTranslations(translations.Default())

	return json.Marshal(yearResponse{
		Code:     code,
		Year:     c.Year(),
		Locale:   string(c.Locale()),
		Holidays: c.Holidays(),
	})
}

func queryLocale(r *http.Request) string {
	if loc := r.URL.Query().Get("locale"); loc != "" {
		return loc
	}
	return defaultLocale
}

func pathYear(r *http.Request) int {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return -1 // fails collection construction with ErrInvalidYear
	}
	return year
}
