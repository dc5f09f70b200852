package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookie = "tuiguess_session"
	tokenIssuer   = "tuiguess"
	tokenLifetime = 24 * time.Hour
)

var errNoToken = errors.New("no session token")

// tokenSigner issues and verifies HS256 tokens whose subject is a session id.
type tokenSigner struct {
	secret []byte
	now    func() time.Time
}

func newTokenSigner(secret []byte) *tokenSigner {
	return &tokenSigner{secret: secret, now: time.Now}
}

func (t *tokenSigner) sign(sessionID string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (t *tokenSigner) verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

// sessionIDFromRequest reads and verifies the session cookie.
func (t *tokenSigner) sessionIDFromRequest(r *http.Request) (string, error) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return "", errNoToken
	}
	return t.verify(c.Value)
}

func (t *tokenSigner) setCookie(w http.ResponseWriter, r *http.Request, sessionID string) error {
	signed, err := t.sign(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  t.now().Add(tokenLifetime),
	})
	return nil
}
