package user

import (
	"context"
	"crypto/md5"
	c "exchanger/internal/core/domain/common"
	"fmt"
	"io"
	"strings"
	"sync"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("md5$%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

func (h *FakePasswordHasher) IsHash(value string) bool {
	return strings.HasPrefix(value, "md5$")
}

type FakeTokenPairIssuer struct {
	IssuedFor   []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeTokenPairIssuer() *FakeTokenPairIssuer {
	return &FakeTokenPairIssuer{}
}

func (g *FakeTokenPairIssuer) IssueTokenPair(u User) (TokenPair, error) {
	if g.ReturnError {
		return TokenPair{}, fmt.Errorf("could not issue token pair for user %d", u.ID)
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.IssuedFor = append(g.IssuedFor, u)
	return TokenPair{
		Access:  AccessToken(fmt.Sprintf("access-%s", u.Username)),
		Refresh: RefreshToken(fmt.Sprintf("refresh-%s", u.Username)),
	}, nil
}

type FakePasswordResetter struct {
	Token PasswordResetToken
}

func NewFakePasswordResetter(token string) *FakePasswordResetter {
	return &FakePasswordResetter{Token: PasswordResetToken(token)}
}

func (r *FakePasswordResetter) GenerateToken(u User) PasswordResetToken {
	return r.Token
}

func (r *FakePasswordResetter) ValidateToken(u User, token PasswordResetToken) bool {
	return token == r.Token
}

type FakeResetLinkSender struct {
	Sent        []PasswordResetLink
	SentTo      []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeResetLinkSender() *FakeResetLinkSender {
	return &FakeResetLinkSender{}
}

func (s *FakeResetLinkSender) SendResetLink(ctx context.Context, u User, link PasswordResetLink) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset link to user %d", u.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, link)
	s.SentTo = append(s.SentTo, u)
	return nil
}

func (s *FakeResetLinkSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input.Username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Users {
		if existing.Username == input.Username {
			return u, ErrUsernameAlreadyExists
		}
		if existing.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if input.Phone != "" && existing.Phone == input.Phone {
			return u, ErrPhoneAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u = User{
		ID:           maxID + 1,
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: input.PasswordHash,
		IsSuperuser:  input.IsSuperuser,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByUsername(ctx context.Context, username Username) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %s", username)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByPhone(ctx context.Context, phone c.Phone) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].Username != input.Username {
			continue
		}
		if input.NewUsername.IsPresent {
			r.Users[ix].Username = input.NewUsername.Value
		}
		if input.Email.IsPresent {
			r.Users[ix].Email = input.Email.Value
		}
		if input.PasswordHash.IsPresent {
			r.Users[ix].PasswordHash = input.PasswordHash.Value
		}
		if input.IsSuperuser.IsPresent {
			r.Users[ix].IsSuperuser = input.IsSuperuser.Value
		}
		return r.Users[ix], nil
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, username Username) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].Username == username {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}
