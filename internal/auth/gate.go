package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrWrongCode is returned for a code not on the allow-list. It is a user
// mistake, not a system fault; callers surface it with an invitation to retry.
var ErrWrongCode = errors.New("access code not recognized")

// Persistence is the storage seam the gate uses: load the unlocked flag once
// on start, save it once on the first successful unlock.
type Persistence interface {
	Unlocked() (bool, error)
	SetUnlocked() error
}

// Gate compares submitted codes against a fixed allow-list and issues session
// tokens. The unlocked flag survives restarts through Persistence.
type Gate struct {
	codes     []string
	secret    []byte
	tokenTTL  time.Duration
	persist   Persistence
	logger    *slog.Logger

	mu       sync.RWMutex
	unlocked bool
}

func NewGate(codes []string, secret string, tokenTTL time.Duration, persist Persistence, logger *slog.Logger) (*Gate, error) {
	if len(codes) == 0 {
		return nil, errors.New("gate requires at least one access code")
	}
	if secret == "" {
		return nil, errors.New("gate requires a signing secret")
	}

	g := &Gate{
		codes:    codes,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		persist:  persist,
		logger:   logger.With("component", "gate"),
	}

	if persist != nil {
		unlocked, err := persist.Unlocked()
		if err != nil {
			return nil, fmt.Errorf("restoring gate state: %w", err)
		}
		g.unlocked = unlocked
		if unlocked {
			g.logger.Info("gate restored as unlocked")
		}
	}

	return g, nil
}

// Unlock validates a submitted code and returns a signed session token. The
// first success persists the unlocked flag.
func (g *Gate) Unlock(code string) (string, error) {
	if !g.codeAllowed(code) {
		return "", ErrWrongCode
	}

	g.mu.Lock()
	firstUnlock := !g.unlocked
	g.unlocked = true
	g.mu.Unlock()

	if firstUnlock && g.persist != nil {
		if err := g.persist.SetUnlocked(); err != nil {
			// The session is still valid; only the restart convenience is lost.
			g.logger.Error("failed to persist unlocked flag", "error", err)
		}
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   "companion",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	g.logger.Info("gate unlocked", "session_id", claims.ID)
	return signed, nil
}

// Verify checks a session token and returns its session ID
func (g *Gate) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing session token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	return claims.ID, nil
}

// Unlocked reports whether the gate has ever been passed on this device
func (g *Gate) Unlocked() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.unlocked
}

func (g *Gate) codeAllowed(code string) bool {
	allowed := false
	for _, c := range g.codes {
		if subtle.ConstantTimeCompare([]byte(c), []byte(code)) == 1 {
			allowed = true
		}
	}
	return allowed
}
