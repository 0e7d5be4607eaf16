package serverutils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"feedback-forms-be/internal/repository/memory"
	"feedback-forms-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session_id"
	sessionLocalsKey  = "session"
)

// SessionManager issues and verifies the server-side session cookie. The
// cookie only carries a signed session id; the session itself lives in the
// in-memory store.
type SessionManager struct {
	sessions *memory.SessionRepository
	secret   []byte
}

func NewSessionManager(sessions *memory.SessionRepository, secret string) *SessionManager {
	return &SessionManager{
		sessions: sessions,
		secret:   []byte(secret),
	}
}

func (m *SessionManager) sign(sessionID string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Issue creates a session for the user and sets the signed cookie.
func (m *SessionManager) Issue(ctx *fiber.Ctx, userID uuid.UUID, email string) {
	session := &store.Session{
		ID:     uuid.New().String(),
		UserID: userID,
		Email:  email,
	}
	m.sessions.Save(session)

	ctx.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID + "." + m.sign(session.ID),
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Read returns the session for the request's cookie, if valid.
func (m *SessionManager) Read(ctx *fiber.Ctx) (*store.Session, bool) {
	raw := ctx.Cookies(sessionCookieName)
	if raw == "" {
		return nil, false
	}

	parts := strings.SplitN(raw, ".", 2)
	if len(parts) != 2 {
		return nil, false
	}
	if !hmac.Equal([]byte(m.sign(parts[0])), []byte(parts[1])) {
		return nil, false
	}

	return m.sessions.Get(parts[0])
}

// Destroy removes the session and clears the cookie unconditionally.
func (m *SessionManager) Destroy(ctx *fiber.Ctx) {
	if session, ok := m.Read(ctx); ok {
		m.sessions.Delete(session.ID)
	}
	ctx.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Update persists in-place changes (e.g. flash messages).
func (m *SessionManager) Update(session *store.Session) {
	m.sessions.Save(session)
}

// RequireSession gates owner-only routes: unauthenticated callers are
// redirected to the login page instead of reaching the handler.
func (m *SessionManager) RequireSession(ctx *fiber.Ctx) error {
	session, ok := m.Read(ctx)
	if !ok {
		return ctx.Redirect("/login", fiber.StatusSeeOther)
	}
	ctx.Locals(sessionLocalsKey, session)
	return ctx.Next()
}

// SessionFromLocals returns the session placed by RequireSession.
func SessionFromLocals(ctx *fiber.Ctx) *store.Session {
	if session, ok := ctx.Locals(sessionLocalsKey).(*store.Session); ok {
		return session
	}
	return nil
}

// PopFlash consumes the session's one-shot message.
func (m *SessionManager) PopFlash(session *store.Session) string {
	if session == nil || session.Flash == "" {
		return ""
	}
	flash := session.Flash
	session.Flash = ""
	m.sessions.Save(session)
	return flash
}

// SetFlash stores a one-shot message for the next page render.
func (m *SessionManager) SetFlash(session *store.Session, message string) {
	if session == nil {
		return
	}
	session.Flash = message
	m.sessions.Save(session)
}
