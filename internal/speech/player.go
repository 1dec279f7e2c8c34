package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

// ErrUnknownTrack is returned when a play request names no catalog entry
var ErrUnknownTrack = errors.New("unknown audio track")

// Synthesizer is the speech collaborator: it speaks a text once in the given
// language and returns when playback finishes or the context is cancelled.
type Synthesizer interface {
	Speak(ctx context.Context, text, lang string) error
}

// Status is the externally visible playback state
type Status struct {
	Playing bool   `json:"playing"`
	TrackID string `json:"trackId,omitempty"`
	Title   string `json:"title,omitempty"`
}

// Player owns the audio-guide catalog and a single playback slot: starting a
// track stops whatever was playing, matching one narrator speaking at a time.
type Player struct {
	synth  Synthesizer
	logger *slog.Logger

	mu      sync.Mutex
	tracks  map[string]domain.AudioTrack
	order   []string
	current string
	cancel  context.CancelFunc
}

func NewPlayer(tracks []domain.AudioTrack, synth Synthesizer, logger *slog.Logger) *Player {
	byID := make(map[string]domain.AudioTrack, len(tracks))
	order := make([]string, 0, len(tracks))
	for _, t := range tracks {
		byID[t.ID] = t
		order = append(order, t.ID)
	}
	if synth == nil {
		synth = estimatedSynth{}
	}
	return &Player{
		synth:  synth,
		logger: logger.With("component", "speech"),
		tracks: byID,
		order:  order,
	}
}

// Tracks returns the catalog in itinerary order, optionally filtered by activity
func (p *Player) Tracks(activityID string) []domain.AudioTrack {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.AudioTrack, 0, len(p.order))
	for _, id := range p.order {
		t := p.tracks[id]
		if activityID == "" || t.ActivityID == activityID {
			out = append(out, t)
		}
	}
	return out
}

// Play starts a track, stopping any current one first
func (p *Player) Play(trackID string) (Status, error) {
	p.mu.Lock()
	track, ok := p.tracks[trackID]
	if !ok {
		p.mu.Unlock()
		return Status{}, fmt.Errorf("%w: %s", ErrUnknownTrack, trackID)
	}

	if p.cancel != nil {
		p.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.current = trackID
	p.mu.Unlock()

	go func() {
		err := p.synth.Speak(ctx, track.Text, track.Lang)
		if err != nil && !errors.Is(err, context.Canceled) {
			p.logger.Error("playback failed", "track_id", trackID, "error", err)
		}

		p.mu.Lock()
		if p.current == trackID {
			p.current = ""
			p.cancel = nil
		}
		p.mu.Unlock()
	}()

	p.logger.Info("playback started", "track_id", trackID, "title", track.Title)
	return Status{Playing: true, TrackID: trackID, Title: track.Title}, nil
}

// Stop cancels any running playback; stopping an idle player is a no-op
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
		p.current = ""
		p.logger.Info("playback stopped")
	}
}

// Status reports what is playing right now
func (p *Player) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == "" {
		return Status{}
	}
	t := p.tracks[p.current]
	return Status{Playing: true, TrackID: t.ID, Title: t.Title}
}

// estimatedSynth is the default collaborator when no real synthesizer is
// wired: it waits out the estimated narration time so playback state behaves
// realistically for connected clients.
type estimatedSynth struct{}

// 150 words per minute is a comfortable narration pace
const wordsPerSecond = 2.5

func (estimatedSynth) Speak(ctx context.Context, text, lang string) error {
	words := len(strings.Fields(text))
	d := time.Duration(float64(words)/wordsPerSecond) * time.Second
	if d < time.Second {
		d = time.Second
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
