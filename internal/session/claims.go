package session

import "github.com/golang-jwt/jwt/v5"

// peekIdentity extracts the identity claims from a persisted token without
// verifying its signature. The result is provisional only: the session never
// settles Authenticated until the server confirms the token via Verify.
func peekIdentity(token string) *User {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	u := &User{}
	if v, ok := claims["id"].(string); ok {
		u.ID = v
	}
	if v, ok := claims["name"].(string); ok {
		u.Name = v
	}
	if u.ID == "" && u.Name == "" {
		return nil
	}
	return u
}
