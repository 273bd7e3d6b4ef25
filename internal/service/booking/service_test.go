package booking

import (
	"context"
	"net/http"
	"testing"

	"github.com/kirinyoku/tix-web/internal/api"
	"github.com/kirinyoku/tix-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingAPI struct {
	createCalls []api.BookingInput
	deleteCalls []int64
	err         error
}

func (f *fakeBookingAPI) Create(_ context.Context, in api.BookingInput) (*domain.Booking, error) {
	f.createCalls = append(f.createCalls, in)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{ID: 11, EventID: in.EventID, UserName: in.UserName, Email: in.Email}, nil
}

func (f *fakeBookingAPI) Delete(_ context.Context, id int64) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.err
}

func TestBookSendsOnePayload(t *testing.T) {
	bookings := &fakeBookingAPI{}
	svc := New(bookings)

	b, err := svc.Book(context.Background(), 1, "Anna Rossi", "anna@example.com")
	require.NoError(t, err)

	require.Len(t, bookings.createCalls, 1)
	assert.Equal(t, api.BookingInput{
		EventID:  1,
		UserName: "Anna Rossi",
		Email:    "anna@example.com",
	}, bookings.createCalls[0])
	assert.Equal(t, int64(11), b.ID)
}

func TestBookPreservesAPIErrorIdentity(t *testing.T) {
	bookings := &fakeBookingAPI{err: &api.Error{Status: http.StatusBadRequest, Message: "Event full"}}
	svc := New(bookings)

	_, err := svc.Book(context.Background(), 1, "Anna", "anna@example.com")
	require.Error(t, err)

	// The server's message must survive the service's wrapping.
	assert.Equal(t, "Event full", api.ServerMessage(err, "generic"))
}

func TestCancel(t *testing.T) {
	bookings := &fakeBookingAPI{}
	svc := New(bookings)

	require.NoError(t, svc.Cancel(context.Background(), 11))
	assert.Equal(t, []int64{11}, bookings.deleteCalls)
}
