package pos

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	amounts []float64
	hold    bool
	closed  atomic.Bool
}

func (s *fakeStream) Run(ctx context.Context, emit func(float64)) error {
	for _, a := range s.amounts {
		emit(a)
	}
	if s.hold {
		<-ctx.Done()
	}
	return nil
}

func (s *fakeStream) Close() error {
	s.closed.Store(true)
	return nil
}

type fakeRecognizer struct {
	streams []*fakeStream
	err     error
	opened  int
}

func (r *fakeRecognizer) Open(ctx context.Context) (Stream, error) {
	if r.err != nil {
		return nil, r.err
	}
	s := r.streams[r.opened]
	r.opened++
	return s, nil
}

func TestDictation_DeliversUpdatesUntilStopped(t *testing.T) {
	stream := &fakeStream{amounts: []float64{120, 150}, hold: true}
	d := NewDictation(&fakeRecognizer{streams: []*fakeStream{stream}}, zerolog.Nop())

	id, updates, err := d.Start(context.Background())
	require.NoError(t, err)
	assert.True(t, d.Active())

	first := <-updates
	assert.Equal(t, Update{Session: id, Amount: 120}, first)
	assert.True(t, d.Accept(first))

	d.Stop()
	assert.False(t, d.Active())
	assert.True(t, stream.closed.Load())
	assert.False(t, d.Accept(first), "updates from a stopped session are dropped")

	for range updates {
	}
}

func TestDictation_StartFailureLeavesInactive(t *testing.T) {
	d := NewDictation(&fakeRecognizer{err: errors.New("permission denied")}, zerolog.Nop())

	_, updates, err := d.Start(context.Background())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindExternal))
	assert.Nil(t, updates)
	assert.False(t, d.Active())
}

func TestDictation_NoRecognizer(t *testing.T) {
	d := NewDictation(nil, zerolog.Nop())

	_, _, err := d.Start(context.Background())
	assert.True(t, apperror.IsKind(err, apperror.KindExternal))
	assert.False(t, d.Active())
}

func TestDictation_StartReplacesPriorSession(t *testing.T) {
	first := &fakeStream{hold: true}
	second := &fakeStream{hold: true}
	d := NewDictation(&fakeRecognizer{streams: []*fakeStream{first, second}}, zerolog.Nop())

	oldID, oldUpdates, err := d.Start(context.Background())
	require.NoError(t, err)
	newID, _, err := d.Start(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, oldID, newID)
	assert.True(t, first.closed.Load())
	_, open := <-oldUpdates
	assert.False(t, open)
	assert.False(t, d.Accept(Update{Session: oldID, Amount: 1}))
	assert.True(t, d.Accept(Update{Session: newID, Amount: 1}))

	d.Stop()
	assert.True(t, second.closed.Load())
}

func TestDictation_SessionEndingOnItsOwn(t *testing.T) {
	stream := &fakeStream{}
	d := NewDictation(&fakeRecognizer{streams: []*fakeStream{stream}}, zerolog.Nop())

	_, updates, err := d.Start(context.Background())
	require.NoError(t, err)

	_, open := <-updates
	assert.False(t, open)
	assert.Eventually(t, func() bool { return !d.Active() }, time.Second, 5*time.Millisecond)
	assert.True(t, stream.closed.Load())
}

func TestTerminal_ChargeStopsDictation(t *testing.T) {
	stream := &fakeStream{hold: true}
	d := NewDictation(&fakeRecognizer{streams: []*fakeStream{stream}}, zerolog.Nop())
	term, _ := newTerminal()
	term.AttachDictation(d)

	_, _, err := d.Start(context.Background())
	require.NoError(t, err)
	pressAll(term, "3", "0")

	_, err = term.Charge(shop)
	require.NoError(t, err)
	assert.False(t, d.Active())
	assert.True(t, stream.closed.Load())
}
