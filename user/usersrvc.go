package user

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kultoura/backend/auth"
	"golang.org/x/crypto/bcrypt"
)

// Repo is the user store. Get and GetByEmail return (nil, nil) when the
// user does not exist.
type Repo interface {
	Get(ctx context.Context, userID string) (*UserRow, error)
	GetByEmail(ctx context.Context, email string) (*UserRow, error)
	List(ctx context.Context) ([]UserRow, error)
	Save(ctx context.Context, row *UserRow) error
}

// UserRow is the stored form of a user, password hash included.
type UserRow struct {
	ID        string
	Email     string
	FullName  *string
	Role      string
	BcryptPwd []byte
	CreatedAt time.Time
}

type UserSrvc struct {
	repo   Repo
	jwtKey []byte
}

func NewUserSrvc(repo Repo, jwtKey []byte) *UserSrvc {
	return &UserSrvc{repo: repo, jwtKey: jwtKey}
}

type RegisterParams struct {
	Email    string
	FullName *string
	Password string
	Role     Role
}

// Register creates a new user. Emails are unique, enforced by
// query-before-write; the role defaults to judge.
func (s *UserSrvc) Register(ctx context.Context, p RegisterParams) (*User, error) {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return nil, newErrEmailInvalid()
	}
	const minPasswordLength = 8
	if len(p.Password) < minPasswordLength {
		return nil, newErrPasswordTooShort(minPasswordLength)
	}
	if p.Role == "" {
		p.Role = RoleJudge
	}
	if !p.Role.Valid() {
		return nil, newErrRoleInvalid()
	}

	existing, err := s.repo.GetByEmail(ctx, p.Email)
	if err != nil {
		errMsg := fmt.Errorf("error looking up user by email: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if existing != nil {
		return nil, newErrEmailExists()
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := &UserRow{
		ID:        uuid.New().String(),
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		BcryptPwd: bcryptPwd,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, row); err != nil {
		errMsg := fmt.Errorf("error saving user: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return rowToUser(row), nil
}

// Login verifies the credentials and returns the user with a signed JWT
// whose scopes carry the user's role.
func (s *UserSrvc) Login(ctx context.Context, email string, password string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	row, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		errMsg := fmt.Errorf("error looking up user by email: %w", err)
		return nil, "", newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, "", newErrEmailOrPasswordIncorrect()
	}
	if err := bcrypt.CompareHashAndPassword(row.BcryptPwd, []byte(password)); err != nil {
		return nil, "", newErrEmailOrPasswordIncorrect()
	}

	userUUID, err := uuid.Parse(row.ID)
	if err != nil {
		errMsg := fmt.Errorf("user %s has a malformed id: %w", row.Email, err)
		return nil, "", newErrInternalSE().SetDebug(errMsg)
	}
	token, err := auth.GenerateJWT(row.Email, userUUID, row.FullName, []string{row.Role}, s.jwtKey)
	if err != nil {
		errMsg := fmt.Errorf("error signing jwt: %w", err)
		return nil, "", newErrInternalSE().SetDebug(errMsg)
	}
	return rowToUser(row), token, nil
}

func (s *UserSrvc) GetUser(ctx context.Context, userID string) (*User, error) {
	row, err := s.repo.Get(ctx, userID)
	if err != nil {
		errMsg := fmt.Errorf("error reading user %s: %w", userID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	if row == nil {
		return nil, newErrUserNotFound()
	}
	return rowToUser(row), nil
}

// ListUsers returns every registered user, password hashes excluded.
func (s *UserSrvc) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	users := make([]User, len(rows))
	for i := range rows {
		users[i] = *rowToUser(&rows[i])
	}
	return users, nil
}

func rowToUser(row *UserRow) *User {
	return &User{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Role:      Role(row.Role),
		CreatedAt: row.CreatedAt,
	}
}
