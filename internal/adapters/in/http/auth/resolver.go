// Package auth resolves bearer tokens into domain actors.
// Identity management itself lives outside this service; tokens are issued
// elsewhere and verified here with a shared HMAC secret. The resolver only
// extracts who is acting, with what role, and over which restaurant.
package auth

import (
	"strings"

	"tableorder/internal/core/domain/model/actor"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the expected token payload.
type Claims struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	RestaurantID string `json:"restaurant_id"`
	jwt.RegisteredClaims
}

// Resolver verifies bearer tokens and maps their claims to actors.
type Resolver struct {
	secret []byte
}

// NewResolver creates a resolver verifying tokens with the given HMAC secret.
func NewResolver(secret []byte) *Resolver {
	return &Resolver{secret: secret}
}

// Resolve verifies the Authorization header value and returns the acting
// identity. Any verification or claim failure yields a NotAuthorizedError;
// callers never learn whether the token was missing, expired, or malformed.
func (r *Resolver) Resolve(authorizationHeader string) (actor.Actor, error) {
	rawToken, found := strings.CutPrefix(authorizationHeader, "Bearer ")
	if !found || rawToken == "" {
		return actor.Actor{}, errs.NewNotAuthorizedError("missing bearer token")
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.NewNotAuthorizedError("unexpected token signing method")
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return actor.Actor{}, errs.NewNotAuthorizedErrorWithCause("invalid token", err)
	}

	actorID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, errs.NewNotAuthorizedErrorWithCause("invalid subject claim", err)
	}

	restaurantID, err := kernel.UUIDFromString(claims.RestaurantID)
	if err != nil {
		return actor.Actor{}, errs.NewNotAuthorizedErrorWithCause("invalid restaurant claim", err)
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, errs.NewNotAuthorizedErrorWithCause("invalid role claim", err)
	}

	resolved, err := actor.NewActor(actorID, claims.Name, role, restaurantID)
	if err != nil {
		return actor.Actor{}, errs.NewNotAuthorizedErrorWithCause("invalid identity claims", err)
	}

	return resolved, nil
}
