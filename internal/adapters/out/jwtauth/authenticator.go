// Package jwtauth resolves bearer tokens to actors using HS256 signed JWTs.
package jwtauth

import (
	"context"
	"fmt"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/ports"
	"sitebuilder/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var _ ports.Authenticator = &JWTAuthenticator{}

// claims carries the actor identity inside the token. The subject is the
// actor's id; the role claim names the authorization level.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTAuthenticator validates HS256 tokens issued by the account service and
// maps the subject and role claims onto an actor.
type JWTAuthenticator struct {
	secret []byte
}

func NewJWTAuthenticator(secret string) (*JWTAuthenticator, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	return &JWTAuthenticator{secret: []byte(secret)}, nil
}

func (a *JWTAuthenticator) Authenticate(ctx context.Context, token string) (actor.Actor, error) {
	if token == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError("token")
	}
	if err := ctx.Err(); err != nil {
		return actor.Actor{}, err
	}

	var parsed claims
	_, err := jwt.ParseWithClaims(token, &parsed,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	subject, err := parsed.GetSubject()
	if err != nil || subject == "" {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("token",
			fmt.Errorf("missing subject claim"))
	}

	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	role, err := actor.RoleFromString(parsed.Role)
	if err != nil {
		return actor.Actor{}, errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	return actor.NewActor(id, role)
}

// IssueToken signs a token for the given actor. The server itself does not
// mint tokens in production; this supports local development and tests.
func (a *JWTAuthenticator) IssueToken(act actor.Actor, expiresAt jwt.NumericDate) (string, error) {
	if err := act.Validate(); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   act.ID().String(),
			ExpiresAt: &expiresAt,
		},
		Role: act.Role().String(),
	})
	return token.SignedString(a.secret)
}
