package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LiftRental/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-LiftRental/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	start := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 9, 0, 0, 0, req.Date.Location())
	return &getAvailableSlots.Response{
		Date: req.Date,
		Slots: []domain.AvailableSlot{
			{Start: start, End: start.Add(time.Hour), Available: false},
			{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour), Available: true},
		},
	}, nil
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	berlin := time.FixedZone("CEST", 2*60*60)
	uc := &fakeUseCase{}

	rec := get(NewHandler(uc, domain.FlowAdmin, berlin, nopLogger{}), "/api/v1/admin/slots?date=2024-06-08")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, domain.FlowAdmin, uc.got.Flow)
	assert.Equal(t, berlin, uc.got.Date.Location())

	var resp SlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-08", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00-10:00", resp.Slots[0].Label)
	assert.Equal(t, "2024-06-08T09:00:00+02:00", resp.Slots[0].StartTime)
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, domain.FlowPublic, time.UTC, nopLogger{})
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/slots").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "/api/v1/slots?date=08.06.2024").Code)

	h = NewHandler(&fakeUseCase{err: getAvailableSlots.ErrStoreUnavailable}, domain.FlowPublic, time.UTC, nopLogger{})
	assert.Equal(t, http.StatusServiceUnavailable, get(h, "/api/v1/slots?date=2024-06-08").Code)

	h = NewHandler(&fakeUseCase{err: assert.AnError}, domain.FlowPublic, time.UTC, nopLogger{})
	assert.Equal(t, http.StatusInternalServerError, get(h, "/api/v1/slots?date=2024-06-08").Code)
}
