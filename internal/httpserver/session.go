// internal/httpserver/session.go
//
// Anonymous player sessions. There are no accounts: every browser gets a
// stable random player id carried in a signed JWT cookie, and all of that
// player's persisted blobs are namespaced under the id.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionCookieName = "wordle_lt_session"

const sessionDays = 180

func jwtSecret() []byte {
	return []byte(getEnv("JWT_SECRET", "dev_secret_change_me"))
}

// playerID returns the session's player id, minting and setting a fresh
// signed cookie when none (or an invalid one) is present.
func (s *Server) playerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		if pid := parseSession(c.Value); pid != "" {
			return pid
		}
	}
	pid := genID()
	if tok, exp, err := signSession(pid); err == nil {
		setSessionCookie(w, tok, exp)
	}
	return pid
}

// parseSession verifies the token and extracts the player id claim.
func parseSession(token string) string {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !t.Valid {
		return ""
	}
	pid, _ := claims["pid"].(string)
	return pid
}

// signSession creates an HS256 JWT carrying the player id.
func signSession(pid string) (string, time.Time, error) {
	exp := time.Now().Add(sessionDays * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"pid": pid,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	})
	ss, err := t.SignedString(jwtSecret())
	return ss, exp, err
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	secure := os.Getenv("NODE_ENV") == "production"
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
