package store

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"agencybuilder/coach/config"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

func sessionSecret() []byte {
	return []byte(os.Getenv("SESSION_SECRET"))
}

func sessionKey(sessionID string) string {
	return config.SessionKeyPrefix + sessionID
}

// IssueSession signs a session token for the identifier and records the
// session in the store so logout can revoke it. There is no password; the
// email is the whole identity, matching the login gate contract.
func IssueSession(kv KV, email string) (string, error) {
	sessionID := uuid.NewString()

	claims := jwt.MapClaims{
		"sub": email,
		"jti": sessionID,
		"exp": time.Now().Add(config.SessionTTLHours * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(sessionSecret())
	if err != nil {
		return "", err
	}

	if err := kv.Set(sessionKey(sessionID), []byte(email)); err != nil {
		return "", err
	}
	return signed, nil
}

// parseSessionToken verifies the signature and extracts the subject and
// session id claims.
func parseSessionToken(tokenString string) (email, sessionID string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return sessionSecret(), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("invalid session claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", fmt.Errorf("missing sub in token")
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return "", "", fmt.Errorf("missing jti in token")
	}
	return sub, jti, nil
}

// SessionFromRequest resolves the Authorization header to the logged-in
// user identifier. The session record must still exist in the store; a
// logged-out token is rejected even if its signature is valid.
func SessionFromRequest(kv KV, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		return "", fmt.Errorf("invalid Authorization header")
	}

	email, sessionID, err := parseSessionToken(tokenString)
	if err != nil {
		return "", err
	}

	stored, ok, err := kv.Get(sessionKey(sessionID))
	if err != nil {
		return "", err
	}
	if !ok || string(stored) != email {
		return "", fmt.Errorf("session expired or logged out")
	}
	return email, nil
}

// DeleteSession revokes the session the token refers to. The user document
// itself is left intact for the next login.
func DeleteSession(kv KV, tokenString string) error {
	_, sessionID, err := parseSessionToken(tokenString)
	if err != nil {
		return err
	}
	return kv.Delete(sessionKey(sessionID))
}
