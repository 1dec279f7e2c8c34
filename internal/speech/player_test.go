package speech

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

// blockingSynth speaks until its context is cancelled
type blockingSynth struct {
	mu      sync.Mutex
	started int
}

func (s *blockingSynth) Speak(ctx context.Context, text, lang string) error {
	s.mu.Lock()
	s.started++
	s.mu.Unlock()
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockingSynth) startedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func testCatalog() []domain.AudioTrack {
	return []domain.AudioTrack{
		{ID: "train-1", ActivityID: "4", Title: "Leaving the Fjord", Text: "Welcome aboard.", Lang: "es-ES"},
		{ID: "train-2", ActivityID: "4", Title: "The Valley", Text: "The valley narrows.", Lang: "es-ES"},
		{ID: "cruise-1", ActivityID: "6", Title: "Sailing Out", Text: "We sail out.", Lang: "es-ES"},
	}
}

func newTestPlayer(synth Synthesizer) *Player {
	return NewPlayer(testCatalog(), synth, slog.New(slog.DiscardHandler))
}

func TestTracksFilterByActivity(t *testing.T) {
	p := newTestPlayer(&blockingSynth{})

	assert.Len(t, p.Tracks(""), 3)
	assert.Len(t, p.Tracks("4"), 2)
	assert.Len(t, p.Tracks("6"), 1)
	assert.Empty(t, p.Tracks("99"))
}

func TestPlayAndStatus(t *testing.T) {
	p := newTestPlayer(&blockingSynth{})

	st, err := p.Play("train-1")
	require.NoError(t, err)
	assert.True(t, st.Playing)
	assert.Equal(t, "train-1", st.TrackID)

	st = p.Status()
	assert.True(t, st.Playing)
	assert.Equal(t, "Leaving the Fjord", st.Title)
}

func TestPlayUnknownTrack(t *testing.T) {
	p := newTestPlayer(&blockingSynth{})

	_, err := p.Play("nope")
	assert.ErrorIs(t, err, ErrUnknownTrack)
	assert.False(t, p.Status().Playing)
}

func TestPlayReplacesCurrentTrack(t *testing.T) {
	synth := &blockingSynth{}
	p := newTestPlayer(synth)

	_, err := p.Play("train-1")
	require.NoError(t, err)
	_, err = p.Play("cruise-1")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return synth.startedCount() == 2 && p.Status().TrackID == "cruise-1"
	}, time.Second, 10*time.Millisecond)
}

func TestStop(t *testing.T) {
	p := newTestPlayer(&blockingSynth{})

	_, err := p.Play("train-1")
	require.NoError(t, err)

	p.Stop()
	assert.False(t, p.Status().Playing)

	// Stopping again is harmless.
	p.Stop()
}

func TestPlaybackEndsNaturally(t *testing.T) {
	p := newTestPlayer(nil) // estimated-duration synthesizer

	_, err := p.Play("train-2")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return !p.Status().Playing
	}, 3*time.Second, 50*time.Millisecond)
}
