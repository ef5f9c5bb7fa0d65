package pos

import (
	"context"
	"errors"
	"sync"

	"github.com/hance08/fixpay/internal/apperror"
	"github.com/rs/zerolog"
)

// Recognizer opens a voice stream that turns speech into amounts. Open must
// fail fast when the microphone or the remote service is unavailable.
type Recognizer interface {
	Open(ctx context.Context) (Stream, error)
}

// Stream runs until ctx is cancelled or the remote side closes. Close
// releases the microphone and is always called once Run returns.
type Stream interface {
	Run(ctx context.Context, emit func(amount float64)) error
	Close() error
}

// Update is one recognized amount, tagged with the session that produced it.
type Update struct {
	Session uint64
	Amount  float64
}

type session struct {
	id      uint64
	cancel  context.CancelFunc
	done    chan struct{}
	updates chan Update
}

// Dictation owns at most one voice session at a time. Updates flow to the
// state owner over the session's channel, which is closed when the session
// ends. Stop cancels the session and waits for it to finish, so no update
// is produced after Stop returns.
type Dictation struct {
	recognizer Recognizer
	log        zerolog.Logger

	mu  sync.Mutex
	seq uint64
	cur *session
}

func NewDictation(recognizer Recognizer, log zerolog.Logger) *Dictation {
	return &Dictation{recognizer: recognizer, log: log}
}

// Start stops any running session and opens a new one. On failure the
// controller is left inactive.
func (d *Dictation) Start(ctx context.Context) (uint64, <-chan Update, error) {
	d.Stop()

	if d.recognizer == nil {
		return 0, nil, apperror.ErrDictationUnavailable(errors.New("no recognizer configured"))
	}

	sctx, cancel := context.WithCancel(ctx)
	stream, err := d.recognizer.Open(sctx)
	if err != nil {
		cancel()
		d.log.Warn().Err(err).Msg("failed to start dictation")
		return 0, nil, apperror.ErrDictationUnavailable(err)
	}

	d.mu.Lock()
	d.seq++
	s := &session{
		id:      d.seq,
		cancel:  cancel,
		done:    make(chan struct{}),
		updates: make(chan Update),
	}
	d.cur = s
	d.mu.Unlock()

	go d.run(sctx, s, stream)

	d.log.Debug().Uint64("session", s.id).Msg("dictation started")
	return s.id, s.updates, nil
}

func (d *Dictation) run(ctx context.Context, s *session, stream Stream) {
	defer close(s.done)
	defer close(s.updates)
	defer func() {
		if err := stream.Close(); err != nil {
			d.log.Warn().Err(err).Uint64("session", s.id).Msg("failed to release microphone")
		}
	}()

	err := stream.Run(ctx, func(amount float64) {
		select {
		case s.updates <- Update{Session: s.id, Amount: amount}:
		case <-ctx.Done():
		}
	})
	if err != nil && ctx.Err() == nil {
		d.log.Warn().Err(err).Uint64("session", s.id).Msg("dictation ended with error")
	}
}

// Stop ends the running session, if any, and waits until its resources are
// released. It is safe to call at any time.
func (d *Dictation) Stop() {
	d.mu.Lock()
	s := d.cur
	d.cur = nil
	d.mu.Unlock()

	if s == nil {
		return
	}
	s.cancel()
	<-s.done
	d.log.Debug().Uint64("session", s.id).Msg("dictation stopped")
}

// Active reports whether a session is running. A session that ended on its
// own counts as inactive.
func (d *Dictation) Active() bool {
	d.mu.Lock()
	s := d.cur
	d.mu.Unlock()

	if s == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Accept reports whether u belongs to the running session. Updates from a
// stopped session must be dropped.
func (d *Dictation) Accept(u Update) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cur != nil && d.cur.id == u.Session
}
