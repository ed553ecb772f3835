package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bloodbank/app"
	"bloodbank/pkg/core/config"
	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/view"
	"bloodbank/pkg/db"
	"bloodbank/pkg/db/dbtest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *fiber.App {
	gdb := dbtest.Open(t)
	require.NoError(t, db.AutoMigrate(gdb))

	a := app.NewApp(gdb, view.MustNew(), metrics.New(nil))
	f := app.GetApp(logger.GetLogger(), "")
	Register(a, f, config.MetricsConfig{Enabled: true, Path: "/metrics"})
	return f
}

func get(t *testing.T, f *fiber.App, path string) (*http.Response, string) {
	resp, err := f.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func TestPagesRegistered(t *testing.T) {
	f := newTestServer(t)

	for _, path := range []string{
		"/CreatePerson", "/PersonTable",
		"/CreateBloodBank", "/BloodBankTable",
		"/CreateBloodDonation", "/BloodDonationTable",
		"/CreateDonationRecord", "/DonationRecordTable",
		"/api/persons", "/api/blood-banks", "/api/blood-donations", "/api/donation-records",
		"/health",
	} {
		resp, _ := get(t, f, path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, _ := get(t, f, "/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/BloodBankTable", resp.Header.Get(fiber.HeaderLocation))
}

func TestEndToEndFlow(t *testing.T) {
	f := newTestServer(t)

	post := func(path string, form url.Values) *http.Response {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		resp, err := f.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := post("/CreatePerson", url.Values{
		"first_name": {"Ada"}, "last_name": {"Lovelace"}, "phone": {"555-0100"},
		"address": {"1 Main St"}, "birth": {"1990-12-10"}, "view": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = post("/CreateBloodBank", url.Values{
		"name": {"Central"}, "employee_count": {"12"}, "established": {"2001-06-15"},
		"privately_owned": {"False"}, "owner_id": {"1"}, "view": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = post("/CreateBloodDonation", url.Values{
		"bank_id": {"1"}, "milliliters": {"450"}, "blood_group": {"O"},
		"rhesus_factor": {"Negative"}, "created": {"2024-05-06"}, "view": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = post("/CreateDonationRecord", url.Values{
		"person_id": {"1"}, "donation_id": {"1"}, "administrator": {"Alice"},
		"hospital": {"St. Mary"}, "tested": {"True"}, "created": {"2024-05-06"}, "view": {"1"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body := get(t, f, "/api/donation-records?donationId=1")
	assert.Contains(t, body, `"total":1`)

	_, body = get(t, f, "/metrics")
	assert.Contains(t, body, `bloodbank_entities_created_total{entity="DonationRecord"} 1`)
	assert.Contains(t, body, "bloodbank_http_request_duration_seconds")
}
