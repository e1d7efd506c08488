package user

import (
	"context"
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	USERNAME      = "alice"
	EMAIL         = "alice@test.test"
	PHONE         = "+15550001111"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2023, 3, 15, 10, 30, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	u, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Username:     user.Username(USERNAME),
		Email:        c.Email(EMAIL),
		Phone:        c.Phone(PHONE),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		IsSuperuser:  true,
		CreatedAt:    NOW,
	})
	suite.Require().NoError(err)
	return u
}

func (suite *testSuite) TestCreateSuccess() {
	u := suite.createUser()

	assert := suite.Require()
	assert.NotZero(u.ID)
	assert.Equal(user.Username(USERNAME), u.Username)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(c.Phone(PHONE), u.Phone)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.True(u.IsSuperuser)
	assert.Equal(NOW, u.CreatedAt.UTC())
}

func (suite *testSuite) TestCreateDuplicates() {
	suite.createUser()

	type test struct {
		id          string
		username    string
		email       string
		phone       string
		expectedErr error
	}
	cases := []test{
		{"username", USERNAME, "other@test.test", "+15550002222", user.ErrUsernameAlreadyExists},
		{"email", "bob", EMAIL, "+15550002222", user.ErrEmailAlreadyExists},
		{"phone", "bob", "other@test.test", PHONE, user.ErrPhoneAlreadyExists},
	}
	for _, testcase := range cases {
		suite.Run(testcase.id, func() {
			_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
				Username:     user.Username(testcase.username),
				Email:        c.Email(testcase.email),
				Phone:        c.Phone(testcase.phone),
				PasswordHash: user.PasswordHash(PASSWORD_HASH),
				CreatedAt:    NOW,
			})
			suite.Require().ErrorIs(err, testcase.expectedErr)
		})
	}
}

func (suite *testSuite) TestEmptyPhonesDoNotCollide() {
	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Username:     user.Username("bob"),
		Email:        c.Email("bob@test.test"),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	suite.Require().NoError(err)

	_, err = suite.repo.Create(context.Background(), user.CreateUserInput{
		Username:     user.Username("carol"),
		Email:        c.Email("carol@test.test"),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		CreatedAt:    NOW,
	})
	suite.Require().NoError(err)
}

func (suite *testSuite) TestGetters() {
	created := suite.createUser()
	ctx := context.Background()
	assert := suite.Require()

	byID, err := suite.repo.GetByID(ctx, created.ID)
	assert.NoError(err)
	assert.Equal(created.ID, byID.ID)

	byUsername, err := suite.repo.GetByUsername(ctx, user.Username(USERNAME))
	assert.NoError(err)
	assert.Equal(created.ID, byUsername.ID)

	byEmail, err := suite.repo.GetByEmail(ctx, c.Email(EMAIL))
	assert.NoError(err)
	assert.Equal(created.ID, byEmail.ID)

	byPhone, err := suite.repo.GetByPhone(ctx, c.Phone(PHONE))
	assert.NoError(err)
	assert.Equal(created.ID, byPhone.ID)
}

func (suite *testSuite) TestGetUnknown() {
	ctx := context.Background()
	assert := suite.Require()

	_, err := suite.repo.GetByID(ctx, user.ID(12345))
	assert.ErrorIs(err, user.ErrUserDoesNotExist)

	_, err = suite.repo.GetByUsername(ctx, user.Username("nobody"))
	assert.ErrorIs(err, user.ErrUserDoesNotExist)

	_, err = suite.repo.GetByPhone(ctx, c.Phone(""))
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestUpdate() {
	created := suite.createUser()

	updated, err := suite.repo.Update(context.Background(), user.UpdateUserInput{
		Username:    created.Username,
		NewUsername: c.NewOptional(user.Username("alice2"), true),
		Email:       c.NewOptional(c.Email("alice2@test.test"), true),
		IsSuperuser: c.NewOptional(false, true),
	})

	assert := suite.Require()
	assert.NoError(err)
	assert.Equal(created.ID, updated.ID)
	assert.Equal(user.Username("alice2"), updated.Username)
	assert.Equal(c.Email("alice2@test.test"), updated.Email)
	assert.False(updated.IsSuperuser)
	assert.Equal(created.PasswordHash, updated.PasswordHash)
}

func (suite *testSuite) TestSetPassword() {
	created := suite.createUser()
	ctx := context.Background()
	assert := suite.Require()

	err := suite.repo.SetPassword(ctx, created.ID, user.PasswordHash("new-hash"))
	assert.NoError(err)

	u, err := suite.repo.GetByID(ctx, created.ID)
	assert.NoError(err)
	assert.Equal(user.PasswordHash("new-hash"), u.PasswordHash)

	err = suite.repo.SetPassword(ctx, user.ID(12345), user.PasswordHash("new-hash"))
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (suite *testSuite) TestDelete() {
	suite.createUser()
	ctx := context.Background()
	assert := suite.Require()

	err := suite.repo.Delete(ctx, user.Username(USERNAME))
	assert.NoError(err)

	_, err = suite.repo.GetByUsername(ctx, user.Username(USERNAME))
	assert.ErrorIs(err, user.ErrUserDoesNotExist)

	err = suite.repo.Delete(ctx, user.Username(USERNAME))
	assert.ErrorIs(err, user.ErrUserDoesNotExist)
}
