package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTer() *JWTer {
	return &JWTer{
		Secret:   []byte("test-secret"),
		Issuer:   "inventory",
		Audience: []string{"inventory", "admin"},
		TTL:      time.Hour,
	}
}

func TestIssueAndParse(t *testing.T) {
	j := newJWTer()
	tok, err := j.Issue("a@x.io", "SYSTEMUSER")
	require.NoError(t, err)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", c.Email)
	assert.Equal(t, "SYSTEMUSER", c.Role)
	assert.Equal(t, "inventory", c.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"inventory", "admin"}, c.Audience)
	assert.WithinDuration(t, c.IssuedAt.Add(time.Hour), c.ExpiresAt.Time, time.Second)
}

func TestParse_Expired(t *testing.T) {
	j := newJWTer()
	j.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := j.Issue("a@x.io", "SYSTEMUSER")
	require.NoError(t, err)

	j.now = nil
	_, err = j.Parse(tok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := newJWTer().Issue("a@x.io", "SYSTEMUSER")
	require.NoError(t, err)

	other := newJWTer()
	other.Secret = []byte("different")
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongAudience(t *testing.T) {
	tok, err := newJWTer().Issue("a@x.io", "SYSTEMUSER")
	require.NoError(t, err)

	other := newJWTer()
	other.Audience = []string{"billing"}
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_WrongIssuer(t *testing.T) {
	tok, err := newJWTer().Issue("a@x.io", "SYSTEMUSER")
	require.NoError(t, err)

	other := newJWTer()
	other.Issuer = "someone-else"
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsNoneAlg(t *testing.T) {
	j := newJWTer()
	claims := Claims{Email: "a@x.io", RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    j.Issuer,
		Audience:  jwt.ClaimStrings(j.Audience),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_NoSecret(t *testing.T) {
	j := newJWTer()
	j.Secret = nil
	_, err := j.Issue("a@x.io", "SYSTEMUSER")
	assert.Error(t, err)
}

func TestActorContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ActorEmail(ctx))

	ctx = WithActor(ctx, Actor{Email: "admin@x.io", Role: "SYSTEMADMIN"})
	a, ok := ActorFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "SYSTEMADMIN", a.Role)
	require.NotNil(t, ActorEmail(ctx))
	assert.Equal(t, "admin@x.io", *ActorEmail(ctx))
}
