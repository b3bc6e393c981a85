package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/energycalc/internal/calculation"
	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/internal/form"
	"github.com/jgoulah/energycalc/pkg/models"
)

func newTestServer() *Server {
	defaults := form.Input{
		Age:               25,
		HouseType:         models.HouseFlat,
		RoomType:          models.Room1BHK,
		Day:               models.Monday,
		HasAC:             true,
		ACCount:           1,
		HasFridge:         true,
		HasWashingMachine: true,
	}
	return New(calculation.NewService(estimator.New(), nil), defaults, nil)
}

func submission() url.Values {
	return url.Values{
		"name":                {"John Doe"},
		"age":                 {"25"},
		"area":                {"Downtown"},
		"city":                {"Mumbai"},
		"house_type":          {"Flat"},
		"room_type":           {"2BHK"},
		"day":                 {"Saturday"},
		"has_ac":              {"true"},
		"ac_count":            {"2"},
		"has_fridge":          {"true"},
		"has_washing_machine": {"true"},
	}
}

func post(t *testing.T, h http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	newTestServer().Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestForm(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	newTestServer().Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<h1>Energy Consumption Calculator</h1>")
	assert.Contains(t, body, "<option selected>1BHK</option>")
	assert.Contains(t, body, "<option selected>Monday</option>")
	assert.NotContains(t, body, "Energy Consumption Results")
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	rec := post(t, newTestServer().Routes(), submission())

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Energy Consumption Results")
	assert.Contains(t, body, "Saturday Consumption")
	assert.Contains(t, body, "19.1 kWh")
	assert.Contains(t, body, "Weekend usage is typically higher")
	assert.Contains(t, body, "<option selected>Saturday</option>")
	assert.Contains(t, body, "<option selected>2BHK</option>")
}

func TestSubmit_MissingName(t *testing.T) {
	t.Parallel()
	values := submission()
	values.Set("name", "")
	rec := post(t, newTestServer().Routes(), values)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please fill in all the required fields")
	assert.NotContains(t, body, "Energy Consumption Results")
}

func TestSubmit_InvalidAge(t *testing.T) {
	t.Parallel()
	values := submission()
	values.Set("age", "300")
	rec := post(t, newTestServer().Routes(), values)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid age")
}

func TestSubmit_NotANumber(t *testing.T) {
	t.Parallel()
	values := submission()
	values.Set("ac_count", "many")
	rec := post(t, newTestServer().Routes(), values)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid ac count")
}

func TestSubmit_InvalidRoomType(t *testing.T) {
	t.Parallel()
	values := submission()
	values.Set("room_type", "4BHK")
	rec := post(t, newTestServer().Routes(), values)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid room type selected")
	assert.NotContains(t, rec.Body.String(), "Energy Consumption Results")
}

func TestSubmit_EscapesInput(t *testing.T) {
	t.Parallel()
	values := submission()
	values.Set("name", "<script>alert(1)</script>")
	rec := post(t, newTestServer().Routes(), values)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
}

func TestRun_StopsOnCancel(t *testing.T) {
	t.Parallel()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer().Run(ctx, listener) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listener.Addr().String() + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(b) == "ok"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
