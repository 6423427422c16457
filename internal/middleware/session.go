package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const sessionCookieName = "ZAY_SESSION"

const sessionLifetime = 30 * 24 * time.Hour

// SessionData is the signed cookie payload binding a browser to its cart
// record. The cookie carries identity only; cart contents live in the store.
type SessionData struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cart"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// internal dirty flag; not serialized
	dirty bool
}

// SessionConfig controls cookie signing and transport flags.
type SessionConfig struct {
	SigningKey []byte
	Secure     bool
}

// Session loads or initializes a session and stores it in request context.
// New sessions mint a cart id so every browser owns exactly one cart record.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sd, fromCookie := readSessionCookie(r, cfg.SigningKey)
			if sd.ID == "" {
				now := time.Now().UTC()
				sd.ID = ulid.Make().String()
				sd.CartID = ulid.Make().String()
				sd.CreatedAt = now
				sd.UpdatedAt = now
				sd.dirty = true
			}
			if sd.CartID == "" {
				sd.CartID = ulid.Make().String()
				sd.MarkDirty()
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, sd)

			rw := NewResponseRecorder(w)
			rw.SetBeforeWrite(func(w http.ResponseWriter) {
				if sd.dirty || !fromCookie {
					writeSessionCookie(w, sd, cfg)
				}
			})
			next.ServeHTTP(rw, r.WithContext(ctx))
			if !rw.Wrote() && (sd.dirty || !fromCookie) {
				writeSessionCookie(w, sd, cfg)
			}
		})
	}
}

// GetSession returns session data from context.
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at end of request.
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// readSessionCookie parses and verifies the session cookie. Any verification
// or decode failure yields a fresh session rather than an error.
func readSessionCookie(r *http.Request, key []byte) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payloadB, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sigB, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(payloadB)
	if !hmac.Equal(sigB, mac.Sum(nil)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payloadB, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func writeSessionCookie(w http.ResponseWriter, sd *SessionData, cfg SessionConfig) {
	b, _ := json.Marshal(sd)
	payload := base64.RawURLEncoding.EncodeToString(b)
	mac := hmac.New(sha256.New, cfg.SigningKey)
	mac.Write(b)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    payload + "." + sig,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionLifetime),
	})
}
