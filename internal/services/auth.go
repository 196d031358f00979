package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-task-assistant/internal/logger"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// PasswordHasher defines one-way hashing and verification of passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register creates a new user. Username uniqueness is checked before email
// uniqueness so collision errors are deterministic. The lookups are only a
// fast path: the losing side of a concurrent registration hits the
// storage-level unique constraint, which is mapped to the same errors.
func (svc *AuthService) Register(ctx context.Context, username, password string, email, fullName *string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return nil, ErrUsernameTaken
	}

	if email != nil {
		existing, err = svc.reader.GetByEmail(ctx, *email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "err", err)
			return nil, err
		}
		if existing != nil {
			logger.Log.Infow("email already taken", "email", *email)
			return nil, ErrEmailTaken
		}
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if conflictErr := uniqueViolation(err); conflictErr != nil {
			logger.Log.Infow("registration lost uniqueness race", "username", username)
			return nil, conflictErr
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token whose subject is the
// user's ID. A missing user and a wrong password produce the same error so
// the caller cannot enumerate usernames.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || user.Disabled || !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Infow("login rejected", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// uniqueViolation maps a PostgreSQL unique-violation error to the matching
// registration conflict error, or returns nil for anything else.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_email_key":
		return ErrEmailTaken
	}
	return nil
}
