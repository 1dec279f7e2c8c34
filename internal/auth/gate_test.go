package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersistence struct {
	unlocked bool
	saves    int
}

func (f *fakePersistence) Unlocked() (bool, error) { return f.unlocked, nil }
func (f *fakePersistence) SetUnlocked() error      { f.saves++; f.unlocked = true; return nil }

func newTestGate(t *testing.T, persist Persistence) *Gate {
	t.Helper()
	g, err := NewGate([]string{"FJORD2026", "EURIBIA"}, "test-secret", time.Hour, persist, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return g
}

func TestUnlockWithValidCode(t *testing.T) {
	g := newTestGate(t, nil)

	token, err := g.Unlock("FJORD2026")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, g.Unlocked())

	sessionID, err := g.Verify(token)
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
}

func TestUnlockRejectsWrongCode(t *testing.T) {
	g := newTestGate(t, nil)

	_, err := g.Unlock("WRONG")
	assert.ErrorIs(t, err, ErrWrongCode)
	assert.False(t, g.Unlocked())
}

func TestUnlockPersistsOnce(t *testing.T) {
	persist := &fakePersistence{}
	g := newTestGate(t, persist)

	_, err := g.Unlock("EURIBIA")
	require.NoError(t, err)
	_, err = g.Unlock("EURIBIA")
	require.NoError(t, err)

	assert.Equal(t, 1, persist.saves)
}

func TestGateRestoresPersistedState(t *testing.T) {
	g := newTestGate(t, &fakePersistence{unlocked: true})
	assert.True(t, g.Unlocked())
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	g := newTestGate(t, nil)

	token, err := g.Unlock("FJORD2026")
	require.NoError(t, err)

	_, err = g.Verify(token + "x")
	assert.Error(t, err)

	_, err = g.Verify("not-a-token")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	g := newTestGate(t, nil)
	token, err := g.Unlock("FJORD2026")
	require.NoError(t, err)

	handler := g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/itinerary", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("query token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/ws?token="+token, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/itinerary", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/itinerary", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
