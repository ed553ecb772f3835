package controller

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bloodbank/pkg/core/fiber_handle"
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/view"
	"bloodbank/pkg/db/dbtest"
	"bloodbank/system/bloodbank"
	internalapp "bloodbank/system/blooddonation/internal/app"
	"bloodbank/system/blooddonation/internal/model"
	"bloodbank/system/person"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*fiber.App, *metrics.Metrics) {
	models := append(person.Models(), bloodbank.Models()...)
	db := dbtest.Open(t, append(models, &model.BloodDonation{})...)

	persons := person.NewModule(db, nil, nil)
	a := internalapp.NewApp(db, bloodbank.NewModule(db, persons.Client, nil, nil).Client)
	m := metrics.New(nil)

	f := fiber.New(fiber.Config{ErrorHandler: fiber_handle.ErrHandler})
	NewBloodDonationController(a, view.MustNew(), m).RegisterRoutes(f)
	NewBloodDonationAPIController(a, m).RegisterRoutes(f.Group("/api"))
	return f, m
}

func send(t *testing.T, f *fiber.App, method, path string, form url.Values) (*http.Response, string) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	resp, err := f.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func donationForm(button string) url.Values {
	return url.Values{
		"bank_id":       {""},
		"milliliters":   {"450"},
		"blood_group":   {"AB"},
		"rhesus_factor": {"Negative"},
		"created":       {"2024-02-03"},
		button:          {"1"},
	}
}

func TestCreateFormRendersSelects(t *testing.T) {
	f, _ := newTestServer(t)

	resp, body := send(t, f, http.MethodGet, "/CreateBloodDonation", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="AB">`)
	assert.Contains(t, body, `<option value="Negative">`)
}

func TestCreateBloodDonationAddAndView(t *testing.T) {
	f, m := newTestServer(t)

	resp, body := send(t, f, http.MethodPost, "/CreateBloodDonation", donationForm("add"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, `class="error"`)

	resp, _ = send(t, f, http.MethodPost, "/CreateBloodDonation", donationForm("view"))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/BloodDonationTable", resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.EntityCreated.WithLabelValues("BloodDonation")))

	_, body = send(t, f, http.MethodGet, "/BloodDonationTable", nil)
	assert.Equal(t, 2, strings.Count(body, "<td>AB</td>"))
}

func TestCreateBloodDonationUnknownBank(t *testing.T) {
	f, _ := newTestServer(t)

	form := donationForm("view")
	form.Set("bank_id", "5")
	resp, body := send(t, f, http.MethodPost, "/CreateBloodDonation", form)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "bank_id=5 对应的血库不存在")
}

func TestBloodDonationAPI(t *testing.T) {
	f, _ := newTestServer(t)

	resp, _ := send(t, f, http.MethodPost, "/api/blood-donations", donationForm("add"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := send(t, f, http.MethodGet, "/api/blood-donations?bloodGroup=AB", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"total":1`)

	resp, _ = send(t, f, http.MethodPut, "/api/blood-donations/1", url.Values{"milliliters": {"lots"}, "blood_group": {"A"}, "rhesus_factor": {"Positive"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = send(t, f, http.MethodGet, "/api/blood-donations/9", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
