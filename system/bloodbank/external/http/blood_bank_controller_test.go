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
	internalapp "bloodbank/system/bloodbank/internal/app"
	"bloodbank/system/bloodbank/internal/model"
	"bloodbank/system/person"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*fiber.App, *metrics.Metrics) {
	db := dbtest.Open(t, append(person.Models(), &model.BloodBank{})...)
	a := internalapp.NewApp(db, person.NewModule(db, nil, nil).Client)
	m := metrics.New(nil)

	f := fiber.New(fiber.Config{ErrorHandler: fiber_handle.ErrHandler})
	NewBloodBankController(a, view.MustNew(), m).RegisterRoutes(f)
	NewBloodBankAPIController(a, m).RegisterRoutes(f.Group("/api"))
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

func bankForm(button string) url.Values {
	return url.Values{
		"name":            {"Central"},
		"employee_count":  {"12"},
		"established":     {"2001-06-15"},
		"privately_owned": {"True"},
		"owner_id":        {""},
		button:            {"1"},
	}
}

func TestCreateFormRendersFields(t *testing.T) {
	f, _ := newTestServer(t)

	resp, body := send(t, f, http.MethodGet, "/CreateBloodBank", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, name := range []string{"owner_id", "privately_owned", "established", "name", "employee_count"} {
		assert.Contains(t, body, `name="`+name+`"`)
	}
}

func TestCreateBloodBankAdd(t *testing.T) {
	f, m := newTestServer(t)

	resp, body := send(t, f, http.MethodPost, "/CreateBloodBank", bankForm("add"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `action="CreateBloodBank"`)
	assert.Contains(t, body, "Key=name, Value/s=[Central]")
	assert.NotContains(t, body, `class="error"`)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EntityCreated.WithLabelValues("BloodBank")))
}

func TestCreateBloodBankView(t *testing.T) {
	f, _ := newTestServer(t)

	resp, _ := send(t, f, http.MethodPost, "/CreateBloodBank", bankForm("view"))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/BloodBankTable", resp.Header.Get(fiber.HeaderLocation))

	resp, body := send(t, f, http.MethodGet, "/BloodBankTable", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<th>EmployeeCount</th>")
	assert.Contains(t, body, "<td>Central</td>")
	assert.Contains(t, body, "<td>true</td>")
}

func TestCreateBloodBankInvalidEmployeeCount(t *testing.T) {
	f, m := newTestServer(t)

	form := bankForm("view")
	form.Set("employee_count", "abc")
	resp, body := send(t, f, http.MethodPost, "/CreateBloodBank", form)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "employee_count必须是整数")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ValidationFailed.WithLabelValues("BloodBank")))

	_, body = send(t, f, http.MethodGet, "/BloodBankTable", nil)
	assert.NotContains(t, body, "<td>Central</td>")
}

func TestCreateBloodBankUnknownOwner(t *testing.T) {
	f, _ := newTestServer(t)

	form := bankForm("add")
	form.Set("owner_id", "9")
	resp, body := send(t, f, http.MethodPost, "/CreateBloodBank", form)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "owner_id=9 对应的人员不存在")
}

func TestErrorStateIsPerRequest(t *testing.T) {
	f, _ := newTestServer(t)

	form := bankForm("add")
	form.Del("name")
	_, body := send(t, f, http.MethodPost, "/CreateBloodBank", form)
	assert.Contains(t, body, `class="error"`)

	_, body = send(t, f, http.MethodGet, "/CreateBloodBank", nil)
	assert.NotContains(t, body, `class="error"`)
}

func TestBloodBankAPI(t *testing.T) {
	f, _ := newTestServer(t)

	resp, _ := send(t, f, http.MethodPost, "/api/blood-banks", bankForm("add"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := send(t, f, http.MethodGet, "/api/blood-banks?minEmployeeCount=10", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"total":1`)
	assert.Contains(t, body, `"name":"Central"`)

	update := bankForm("add")
	update.Set("employee_count", "40")
	resp, body = send(t, f, http.MethodPut, "/api/blood-banks/1", update)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"employeeCount":40`)

	resp, body = send(t, f, http.MethodPut, "/api/blood-banks/1", url.Values{"name": {""}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `"status":400`)

	resp, body = send(t, f, http.MethodGet, "/api/blood-banks/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `"message":"ID参数错误"`)

	resp, _ = send(t, f, http.MethodDelete, "/api/blood-banks/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = send(t, f, http.MethodDelete, "/api/blood-banks/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
