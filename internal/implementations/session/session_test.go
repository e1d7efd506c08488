package session

import (
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/user"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var NOW = time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)

func testUser() user.User {
	return user.User{
		ID:          user.ID(1),
		Username:    user.Username("alice"),
		Email:       c.Email("alice@test.test"),
		IsSuperuser: true,
	}
}

func newJWT(secret string, at time.Time) *JWT {
	return NewJWT(secret, "exchanger", time.Hour, 24*time.Hour, func() time.Time { return at })
}

func TestIssueAndParse(t *testing.T) {
	j := newJWT("test-secret", NOW)

	pair, err := j.IssueTokenPair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	require.NotEqual(t, string(pair.Access), string(pair.Refresh))

	claims, err := j.ParseAccessToken(pair.Access)
	require.NoError(t, err)
	require.Equal(t, user.Username("alice"), claims.Username)
	require.Equal(t, c.Email("alice@test.test"), claims.Email)
	require.True(t, claims.IsSuperuser)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	j := newJWT("test-secret", NOW)

	pair, err := j.IssueTokenPair(testUser())
	require.NoError(t, err)

	_, err = j.ParseAccessToken(user.AccessToken(pair.Refresh))
	require.ErrorIs(t, err, user.ErrInvalidAccessToken)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	issuer := newJWT("test-secret", NOW)
	pair, err := issuer.IssueTokenPair(testUser())
	require.NoError(t, err)

	parser := newJWT("test-secret", NOW.Add(time.Hour+time.Second))
	_, err = parser.ParseAccessToken(pair.Access)
	require.ErrorIs(t, err, user.ErrInvalidAccessToken)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := newJWT("test-secret", NOW)
	pair, err := issuer.IssueTokenPair(testUser())
	require.NoError(t, err)

	parser := newJWT("other-secret", NOW)
	_, err = parser.ParseAccessToken(pair.Access)
	require.ErrorIs(t, err, user.ErrInvalidAccessToken)
}

func TestGarbageRejected(t *testing.T) {
	j := newJWT("test-secret", NOW)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := j.ParseAccessToken(user.AccessToken(token))
		require.ErrorIs(t, err, user.ErrInvalidAccessToken)
	}
}
