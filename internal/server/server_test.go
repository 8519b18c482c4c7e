package server_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holidays/internal/server"
	"github.com/dmitrymomot/holidays/pkg/yearcache"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(server.New(store, log).Router())
	t.Cleanup(ts.Close)

	return ts
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestProvidersEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	var providers map[string]string
	resp := getJSON(t, ts.URL+"/v1/providers", &providers)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Japan", providers["jp"])
	assert.Equal(t, "Bavaria", providers["de-by"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestYearEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	type yearBody struct {
		Code     string `json:"code"`
		Year     int    `json:"year"`
		Locale   string `json:"locale"`
		Holidays []struct {
			Key  string `json:"key"`
			Date string `json:"date"`
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"holidays"`
	}

	t.Run("japan 2015", func(t *testing.T) {
		t.Parallel()
		var body yearBody
		resp := getJSON(t, ts.URL+"/v1/holidays/jp/2015?locale=ja_JP", &body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "jp", body.Code)
		assert.Equal(t, 2015, body.Year)
		assert.Equal(t, "ja_JP", body.Locale)
		assert.Len(t, body.Holidays, 16)
	})

	t.Run("repeat requests serve the cached payload", func(t *testing.T) {
		t.Parallel()
		var first, second yearBody
		getJSON(t, ts.URL+"/v1/holidays/ie/2018", &first)
		getJSON(t, ts.URL+"/v1/holidays/ie/2018", &second)
		assert.Equal(t, first, second)
		assert.Len(t, first.Holidays, 13)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()
		resp := getJSON(t, ts.URL+"/v1/holidays/atlantis/2020", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("year out of range", func(t *testing.T) {
		t.Parallel()
		resp := getJSON(t, ts.URL+"/v1/holidays/jp/10100", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non numeric year", func(t *testing.T) {
		t.Parallel()
		resp := getJSON(t, ts.URL+"/v1/holidays/jp/abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown locale", func(t *testing.T) {
		t.Parallel()
		resp := getJSON(t, ts.URL+"/v1/holidays/jp/2020?locale=wx-YZ", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHolidayEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		var body struct {
			Key     string `json:"key"`
			Date    string `json:"date"`
			Name    string `json:"name"`
			Weekday string `json:"weekday"`
		}
		resp := getJSON(t, ts.URL+"/v1/holidays/ie/2018/stPatricksDay", &body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "stPatricksDay", body.Key)
		assert.Equal(t, "2018-03-17", body.Date)
		assert.Equal(t, "St. Patrick's Day", body.Name)
		assert.Equal(t, "Saturday", body.Weekday)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		resp := getJSON(t, ts.URL+"/v1/holidays/ie/2018/nonexistent", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestWorkdayEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	type workdayBody struct {
		Date       string `json:"date"`
		Weekday    string `json:"weekday"`
		WorkingDay bool   `json:"working_day"`
		Holiday    bool   `json:"holiday"`
	}

	t.Run("holiday is not a working day", func(t *testing.T) {
		t.Parallel()
		var body workdayBody
		resp := getJSON(t, ts.URL+"/v1/workday/us/2023-07-04", &body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, body.Holiday)
		assert.False(t, body.WorkingDay)
		assert.Equal(t, "Tuesday", body.Weekday)
	})

	t.Run("plain weekday", func(t *testing.T) {
		t.Parallel()
		var body workdayBody
		resp := getJSON(t, ts.URL+"/v1/workday/us/2023-07-05", &body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.False(t, body.Holiday)
		assert.True(t, body.WorkingDay)
	})

	t.Run("weekend", func(t *testing.T) {
		t.Parallel()
		var body workdayBody
		getJSON(t, ts.URL+"/v1/workday/us/2023-07-08", &body)
		assert.False(t, body.WorkingDay)
		assert.False(t, body.Holiday)
	})

	t.Run("malformed date", func(t *testing.T) {
		t.Parallel()
		resp := getJSON(t, ts.URL+"/v1/workday/us/july-4th", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
