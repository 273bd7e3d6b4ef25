package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/kirinyoku/tix-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventAPI struct {
	all      []domain.Event
	upcoming []domain.Event
	err      error
	deleted  []int64
	calls    []string
}

func (f *fakeEventAPI) List(context.Context) ([]domain.Event, error) {
	f.calls = append(f.calls, "list")
	return f.all, f.err
}

func (f *fakeEventAPI) ListUpcoming(context.Context) ([]domain.Event, error) {
	f.calls = append(f.calls, "upcoming")
	return f.upcoming, f.err
}

func (f *fakeEventAPI) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func TestEventsAll(t *testing.T) {
	events := &fakeEventAPI{all: []domain.Event{{ID: 1}, {ID: 2}}}
	svc := New(events)

	got, err := svc.Events(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"list"}, events.calls)
}

func TestEventsUpcomingOnly(t *testing.T) {
	events := &fakeEventAPI{upcoming: []domain.Event{{ID: 2}}}
	svc := New(events)

	got, err := svc.Events(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, []string{"upcoming"}, events.calls)
}

func TestEventsError(t *testing.T) {
	events := &fakeEventAPI{err: errors.New("boom")}
	svc := New(events)

	_, err := svc.Events(context.Background(), false)
	require.Error(t, err)
}

func TestDeleteEvent(t *testing.T) {
	events := &fakeEventAPI{}
	svc := New(events)

	require.NoError(t, svc.DeleteEvent(context.Background(), 9))
	assert.Equal(t, []int64{9}, events.deleted)
}
