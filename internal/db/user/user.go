package user

import (
	"context"
	"errors"
	c "exchanger/internal/core/domain/common"
	"exchanger/internal/core/domain/user"
	"exchanger/internal/db"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"

const (
	USERNAME_CONSTRAINT_NAME = "users_username_idx"
	EMAIL_CONSTRAINT_NAME    = "users_email_idx"
	PHONE_CONSTRAINT_NAME    = "users_phone_idx"
)

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

const userColumns = "id, username, email, phone, password_hash, is_superuser, created_at"

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO users (username, email, phone, password_hash, is_superuser, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		string(input.Username),
		string(input.Email),
		string(input.Phone),
		string(input.PasswordHash),
		input.IsSuperuser,
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if err != nil {
		return u, decodeUniqueConstraintError(err)
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		int64(id),
	)
	return scanUser(row)
}

func (r *PgxUserRepository) GetByUsername(ctx context.Context, username user.Username) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		string(username),
	)
	return scanUser(row)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		string(email),
	)
	return scanUser(row)
}

func (r *PgxUserRepository) GetByPhone(ctx context.Context, phone c.Phone) (user.User, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = $1 AND phone <> ''`,
		string(phone),
	)
	return scanUser(row)
}

func (r *PgxUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE users SET
			username = CASE WHEN $2::boolean THEN $3 ELSE username END,
			email = CASE WHEN $4::boolean THEN $5 ELSE email END,
			password_hash = CASE WHEN $6::boolean THEN $7 ELSE password_hash END,
			is_superuser = CASE WHEN $8::boolean THEN $9 ELSE is_superuser END
		 WHERE username = $1
		 RETURNING `+userColumns,
		string(input.Username),
		input.NewUsername.IsPresent,
		string(input.NewUsername.Value),
		input.Email.IsPresent,
		string(input.Email.Value),
		input.PasswordHash.IsPresent,
		string(input.PasswordHash.Value),
		input.IsSuperuser.IsPresent,
		input.IsSuperuser.Value,
	)
	u, err = scanUser(row)
	if err != nil {
		return u, decodeUniqueConstraintError(err)
	}
	return u, nil
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Delete(ctx context.Context, username user.Username) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM users WHERE username = $1`,
		string(username),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		username     string
		email        string
		phone        string
		passwordHash string
		isSuperuser  bool
		createdAt    time.Time
	)
	err = row.Scan(&id, &username, &email, &phone, &passwordHash, &isSuperuser, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Username:     user.Username(username),
		Email:        c.Email(email),
		Phone:        c.Phone(phone),
		PasswordHash: user.PasswordHash(passwordHash),
		IsSuperuser:  isSuperuser,
		CreatedAt:    createdAt,
	}, nil
}

func decodeUniqueConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PG_UNIQUE_CONSTRAINT_ERR_CODE {
		return err
	}
	switch pgErr.ConstraintName {
	case USERNAME_CONSTRAINT_NAME:
		return user.ErrUsernameAlreadyExists
	case EMAIL_CONSTRAINT_NAME:
		return user.ErrEmailAlreadyExists
	case PHONE_CONSTRAINT_NAME:
		return user.ErrPhoneAlreadyExists
	}
	return err
}
