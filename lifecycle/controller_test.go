package lifecycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjith1/harvest-demand-link/geo"
	"github.com/anjith1/harvest-demand-link/schema"
	"github.com/anjith1/harvest-demand-link/store"
)

func validParams() CreateParams {
	return CreateParams{
		ConsumerID:   "consumer-1",
		ConsumerName: "Sita",
		Items:        []schema.RequestItem{{Name: "Rice", Quantity: 25, Unit: "kg"}},
		Urgency:      "high",
		TimeNeeded:   "within 3 days",
		Location:     schema.Location{Name: "Lalitpur", Latitude: 27.66, Longitude: 85.32},
	}
}

func newController() (*Controller, *store.MemoryStore) {
	s := store.NewMemoryStore()
	return NewController(s), s
}

func TestCreateRequest(t *testing.T) {
	ctl, _ := newController()

	r, err := ctl.CreateRequest(validParams())
	require.NoError(t, err)

	assert.Equal(t, schema.RequestPending, r.Status)
	assert.Equal(t, schema.UrgencyHigh, r.Urgency)
	assert.Empty(t, r.AcceptedBy)
	assert.NotEmpty(t, r.ID.String())
}

func TestCreateRequestNormalizesUrgency(t *testing.T) {
	ctl, _ := newController()

	params := validParams()
	params.Urgency = "HIGH"

	r, err := ctl.CreateRequest(params)
	require.NoError(t, err)
	assert.Equal(t, schema.UrgencyHigh, r.Urgency)
}

func TestCreateRequestValidation(t *testing.T) {
	ctl, _ := newController()

	cases := []struct {
		name    string
		mutate  func(*CreateParams)
		wantErr error
	}{
		{"no items", func(p *CreateParams) { p.Items = nil }, ErrNoItems},
		{"zero quantity", func(p *CreateParams) { p.Items[0].Quantity = 0 }, ErrInvalidItem},
		{"unnamed item", func(p *CreateParams) { p.Items[0].Name = "" }, ErrInvalidItem},
		{"bad urgency", func(p *CreateParams) { p.Urgency = "urgent" }, ErrInvalidUrgency},
		{"no time needed", func(p *CreateParams) { p.TimeNeeded = "  " }, ErrEmptyTimeNeeded},
		{"bad latitude", func(p *CreateParams) { p.Location.Latitude = 90.5 }, geo.ErrInvalidCoordinates},
		{"bad longitude", func(p *CreateParams) { p.Location.Longitude = -181 }, geo.ErrInvalidCoordinates},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := validParams()
			tc.mutate(&params)
			_, err := ctl.CreateRequest(params)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestAcceptRequiresDeliveryTime(t *testing.T) {
	ctl, _ := newController()
	r, err := ctl.CreateRequest(validParams())
	require.NoError(t, err)

	_, err = ctl.Accept(r.ID.String(), "farmer-1", "")
	assert.Equal(t, ErrEmptyDeliveryTime, err)
}

func TestLifecycleEndToEnd(t *testing.T) {
	ctl, _ := newController()

	r, err := ctl.CreateRequest(validParams())
	require.NoError(t, err)

	accepted, err := ctl.Accept(r.ID.String(), "farmer-1", "2 days")
	require.NoError(t, err)
	assert.Equal(t, schema.RequestAccepted, accepted.Status)
	assert.Equal(t, "farmer-1", accepted.AcceptedBy)
	assert.Equal(t, "2 days", accepted.DeliveryTime)

	// a second farmer loses the race
	_, err = ctl.Accept(r.ID.String(), "farmer-2", "1 day")
	assert.Equal(t, store.ErrStatusConflict, err)

	// and cannot fulfill someone else's commitment
	_, err = ctl.Fulfill(r.ID.String(), "farmer-2")
	assert.Equal(t, ErrNotAcceptedFarmer, err)

	fulfilled, err := ctl.Fulfill(r.ID.String(), "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, schema.RequestFulfilled, fulfilled.Status)
	assert.Equal(t, "farmer-1", fulfilled.AcceptedBy)
}

func TestRejectOnlyPending(t *testing.T) {
	ctl, _ := newController()

	r, err := ctl.CreateRequest(validParams())
	require.NoError(t, err)

	rejected, err := ctl.Reject(r.ID.String(), "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, schema.RequestRejected, rejected.Status)
	assert.Empty(t, rejected.AcceptedBy)

	_, err = ctl.Accept(r.ID.String(), "farmer-2", "1 day")
	assert.Equal(t, store.ErrStatusConflict, err)

	_, err = ctl.Reject(r.ID.String(), "farmer-2")
	assert.Equal(t, store.ErrStatusConflict, err)
}

func TestFulfillRequiresAcceptedState(t *testing.T) {
	ctl, _ := newController()

	r, err := ctl.CreateRequest(validParams())
	require.NoError(t, err)

	// fulfilled can never be reached straight from pending
	_, err = ctl.Fulfill(r.ID.String(), "farmer-1")
	assert.Equal(t, ErrInvalidTransition, err)

	_, err = ctl.Reject(r.ID.String(), "farmer-1")
	require.NoError(t, err)

	_, err = ctl.Fulfill(r.ID.String(), "farmer-1")
	assert.Equal(t, ErrInvalidTransition, err)
}

func TestTransitionsOnUnknownRequest(t *testing.T) {
	ctl, _ := newController()

	_, err := ctl.Accept("no-such-id", "farmer-1", "1 day")
	assert.Equal(t, store.ErrRequestNotFound, err)

	_, err = ctl.Fulfill("no-such-id", "farmer-1")
	assert.Equal(t, store.ErrRequestNotFound, err)
}

func TestConcurrentAcceptSingleWinner(t *testing.T) {
	ctl, _ := newController()

	r, err := ctl.CreateRequest(validParams())
	require.NoError(t, err)

	const farmers = 16

	var wg sync.WaitGroup
	errs := make([]error, farmers)
	for i := 0; i < farmers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ctl.Accept(r.ID.String(), string(rune('A'+i)), "soon")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.Equal(t, store.ErrStatusConflict, err)
		}
	}
	assert.Equal(t, 1, winners)

	final, err := ctl.Get(r.ID.String())
	require.NoError(t, err)
	assert.Equal(t, schema.RequestAccepted, final.Status)
	assert.NotEmpty(t, final.AcceptedBy)
}

func TestListAcceptedBy(t *testing.T) {
	ctl, _ := newController()

	r1, err := ctl.CreateRequest(validParams())
	require.NoError(t, err)
	r2, err := ctl.CreateRequest(validParams())
	require.NoError(t, err)
	_, err = ctl.CreateRequest(validParams())
	require.NoError(t, err)

	_, err = ctl.Accept(r1.ID.String(), "farmer-1", "1 day")
	require.NoError(t, err)
	_, err = ctl.Accept(r2.ID.String(), "farmer-1", "2 days")
	require.NoError(t, err)
	_, err = ctl.Fulfill(r2.ID.String(), "farmer-1")
	require.NoError(t, err)

	mine, err := ctl.ListAcceptedBy("farmer-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	other, err := ctl.ListAcceptedBy("farmer-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
