package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fueldelivery/models"
	"fueldelivery/service"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{models.ValidationError("bad qty"), http.StatusBadRequest},
		{errors.Wrap(models.ErrNotFound, "order 010125-01"), http.StatusNotFound},
		{models.StoreError("read", errors.New("quota")), http.StatusServiceUnavailable},
		{errors.Wrap(models.ErrConfigMissing, "sheets"), http.StatusInternalServerError},
		{errors.Wrap(models.ErrRender, "chrome"), http.StatusInternalServerError},
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestRecoverWrapper(t *testing.T) {
	h := RecoverWrapper(func(http.ResponseWriter, *http.Request) {
		panic("nil map")
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestWriteDegradedKeepsPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	writeDegraded(rec, req, models.StoreError("read", errors.New("timeout")), []models.DeliveryOrder{})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"read: order store unavailable: timeout","data":[]}`, rec.Body.String())
}
