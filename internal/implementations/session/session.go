package session

import (
	c "exchanger/internal/core/domain/common"
	e "exchanger/internal/core/domain/errors"
	"exchanger/internal/core/domain/user"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenUseAccess  = "access"
	tokenUseRefresh = "refresh"
)

// JWT issues stateless signed token pairs. Claims carry the identity, email
// and superuser flag; there is no server-side session record.
type JWT struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewJWT(
	secret string,
	issuer string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	now func() time.Time,
) *JWT {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &JWT{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        now,
	}
}

func (j *JWT) IssueTokenPair(u user.User) (pair user.TokenPair, err error) {
	access, err := j.sign(u, tokenUseAccess, j.accessTTL)
	if err != nil {
		return pair, err
	}
	refresh, err := j.sign(u, tokenUseRefresh, j.refreshTTL)
	if err != nil {
		return pair, err
	}
	return user.TokenPair{
		Access:  user.AccessToken(access),
		Refresh: user.RefreshToken(refresh),
	}, nil
}

func (j *JWT) ParseAccessToken(token user.AccessToken) (claims user.TokenClaims, err error) {
	parsed, err := jwt.Parse(
		string(token),
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return j.secret, nil
		},
		jwt.WithIssuer(j.issuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !parsed.Valid {
		return claims, user.ErrInvalidAccessToken
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return claims, user.ErrInvalidAccessToken
	}
	if use, _ := mapClaims["use"].(string); use != tokenUseAccess {
		return claims, user.ErrInvalidAccessToken
	}
	username, _ := mapClaims["sub"].(string)
	if username == "" {
		return claims, user.ErrInvalidAccessToken
	}
	email, _ := mapClaims["email"].(string)
	isSuperuser, _ := mapClaims["superuser"].(bool)
	return user.TokenClaims{
		Username:    user.Username(username),
		Email:       c.Email(email),
		IsSuperuser: isSuperuser,
	}, nil
}

func (j *JWT) sign(u user.User, use string, ttl time.Duration) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"iss":       j.issuer,
		"sub":       string(u.Username),
		"email":     string(u.Email),
		"superuser": u.IsSuperuser,
		"use":       use,
		"iat":       now.Unix(),
		"nbf":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}
