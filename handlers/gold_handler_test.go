package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validation ของฟอร์มทองต้องตัดจบก่อนแตะ DB — เทสต์ชุดนี้เลยไม่ต้องมี DB
func postGoldEntry(t *testing.T, payload string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/gold/entries", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return NewGoldHandler().Create(c)
}

func TestGoldCreate_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{
		`{"amount": 0, "notes": "test"}`,
		`{"amount": -10.5, "notes": "test"}`,
		`{"notes": "no amount at all"}`,
	} {
		err := postGoldEntry(t, payload)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, "payload %s", payload)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestGoldCreate_RejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	err := postGoldEntry(t, `{"amount": "not-a-number"}`)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGoldUpdate_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/gold/entries/e1", strings.NewReader(`{"amount": -1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("e1")

	err := NewGoldHandler().Update(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
