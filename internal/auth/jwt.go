package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"krishak-delivery/internal/domain"
)

// List of auth errors
var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carried by an access token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type actorKey struct{}

// WithActor stores the authenticated actor in context.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext retrieves the actor stored by WithActor.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(domain.Actor)
	return a, ok
}

// Verifier validates HS256 bearer tokens.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier returns a Verifier for secret.
func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &Verifier{secret: []byte(secret), now: time.Now}, nil
}

// FromHeader extracts the token from an Authorization header value and parses it.
func (v *Verifier) FromHeader(header string) (domain.Actor, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return domain.Actor{}, ErrMissingToken
	}
	return v.Parse(strings.TrimSpace(parts[1]))
}

// Parse validates tokenStr and maps its claims to an actor.
func (v *Verifier) Parse(tokenStr string) (domain.Actor, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return domain.Actor{}, ErrInvalidToken
	}

	actor := domain.Actor{ID: strings.TrimSpace(c.Subject), Role: domain.Role(strings.ToLower(c.Role))}
	if actor.ID == "" || !actor.Role.Valid() || actor.Role == domain.RoleSystem {
		return domain.Actor{}, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}
	return actor, nil
}

// Sign issues a token for actor valid for ttl.
func (v *Verifier) Sign(actor domain.Actor, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		Role: string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
