package app

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"

	db "github.com/Dahreau/buy-01/src/repository"
)

const RoleSeller = "SELLER"

type (
	// Claims is the advisory identity record read out of the bearer token. The
	// decode is unverified: it only inspects what the auth service already put
	// there and must never be the last line of defense. Every backend re-checks
	// the same token server-side.
	Claims struct {
		SubjectID string
		Role      string
	}

	// SessionManager is the single source of truth for "is a user logged in, who
	// are they, what can they do", derived from the stored bearer token.
	SessionManager struct {
		mu        sync.RWMutex
		store     db.TokenStore
		observers []func(loggedIn bool)
	}

	tokenClaims struct {
		UserID string `json:"userId"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}
)

func NewSessionManager(store db.TokenStore) *SessionManager {
	return &SessionManager{store: store}
}

// Subscribe registers an observer for session-state transitions. Observers are
// called synchronously at the point of transition; there is no replay for late
// subscribers.
func (s *SessionManager) Subscribe(observer func(loggedIn bool)) {
	s.mu.Lock()
	s.observers = append(s.observers, observer)
	s.mu.Unlock()
}

// SetToken stores any non-empty string as the current session token and notifies
// observers once. No format validation happens here.
func (s *SessionManager) SetToken(token string) {
	if token == "" {
		return
	}
	if err := s.store.Save(token); err != nil {
		return
	}
	s.notify(true)
}

func (s *SessionManager) Token() (string, bool) {
	return s.store.Load()
}

// ClearSession removes the token and notifies observers once. Clearing an
// already logged-out session is a no-op.
func (s *SessionManager) ClearSession() {
	if _, ok := s.store.Load(); !ok {
		return
	}
	s.store.Clear()
	s.notify(false)
}

// DecodeClaims splits the token, base64-decodes the middle segment and reads the
// claims out of it without checking the signature. Any malformed input yields
// absent, never an error: a garbled token is just the logged-out state.
// Identity precedence: the registered `sub` claim wins over `userId`.
func (s *SessionManager) DecodeClaims(token string) (Claims, bool) {
	if token == "" {
		return Claims{}, false
	}
	parsed := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, parsed); err != nil {
		return Claims{}, false
	}
	subject := parsed.Subject
	if subject == "" {
		subject = parsed.UserID
	}
	return Claims{SubjectID: subject, Role: parsed.Role}, true
}

func (s *SessionManager) IsSeller() bool {
	token, ok := s.Token()
	if !ok {
		return false
	}
	claims, ok := s.DecodeClaims(token)
	return ok && claims.Role == RoleSeller
}

func (s *SessionManager) CurrentUserID() (string, bool) {
	token, ok := s.Token()
	if !ok {
		return "", false
	}
	claims, ok := s.DecodeClaims(token)
	if !ok || claims.SubjectID == "" {
		return "", false
	}
	return claims.SubjectID, true
}

func (s *SessionManager) notify(loggedIn bool) {
	s.mu.RLock()
	observers := make([]func(bool), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()
	for _, observer := range observers {
		observer(loggedIn)
	}
}
