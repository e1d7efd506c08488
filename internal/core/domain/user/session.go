package user

import c "exchanger/internal/core/domain/common"

type AccessToken string

type RefreshToken string

// TokenPair is issued on successful authentication. There is no server-side
// revocation store; the pair lives until the client discards it.
type TokenPair struct {
	Access  AccessToken
	Refresh RefreshToken
}

type TokenClaims struct {
	Username    Username
	Email       c.Email
	IsSuperuser bool
}

type TokenPairIssuer interface {
	IssueTokenPair(u User) (TokenPair, error)
}

type AccessTokenParser interface {
	ParseAccessToken(token AccessToken) (TokenClaims, error)
}
