package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-task-assistant/internal/models"
	"github.com/sbilibin2017/gw-task-assistant/internal/password"
	"github.com/sbilibin2017/gw-task-assistant/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	hasher := password.New(password.WithCost(bcrypt.MinCost))

	svc := services.NewAuthService(mockReader, mockWriter, hasher, mockJWT)

	tests := []struct {
		name           string
		username       string
		email          *string
		fullName       *string
		userByUsername *models.UserDB
		usernameErr    error
		userByEmail    *models.UserDB
		writerErr      error
		wantErr        error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    strPtr("alice@example.com"),
			fullName: strPtr("Alice Liddell"),
		},
		{
			name:     "successful registration without email",
			username: "dan",
		},
		{
			name:           "username already taken",
			username:       "bob",
			email:          strPtr("bob@example.com"),
			userByUsername: &models.UserDB{UserID: uuid.New()},
			wantErr:        services.ErrUsernameTaken,
		},
		{
			name:        "email already taken",
			username:    "carol",
			email:       strPtr("taken@example.com"),
			userByEmail: &models.UserDB{UserID: uuid.New()},
			wantErr:     services.ErrEmailTaken,
		},
		{
			name:        "reader error",
			username:    "eve",
			usernameErr: errors.New("db error"),
			wantErr:     errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "frank",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:     "username race lost at constraint",
			username: "grace",
			writerErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_username_key",
			},
			wantErr: services.ErrUsernameTaken,
		},
		{
			name:     "email race lost at constraint",
			username: "heidi",
			email:    strPtr("heidi@example.com"),
			writerErr: &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				ConstraintName: "users_email_key",
			},
			wantErr: services.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.userByUsername, tt.usernameErr)

			if tt.usernameErr == nil && tt.userByUsername == nil && tt.email != nil {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), *tt.email).
					Return(tt.userByEmail, nil)
			}

			if tt.usernameErr == nil && tt.userByUsername == nil && tt.userByEmail == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}

			user, err := svc.Register(context.Background(), tt.username, "pass123", tt.email, tt.fullName)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.fullName, user.FullName)
				assert.NotEqual(t, uuid.Nil, user.UserID)
				// Plaintext must never be stored
				assert.NotEqual(t, "pass123", user.PasswordHash)
				assert.True(t, hasher.Verify("pass123", user.PasswordHash))
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	hasher := password.New(password.WithCost(bcrypt.MinCost))

	svc := services.NewAuthService(mockReader, mockWriter, hasher, mockJWT)

	plaintext := "secret"
	hashed, err := hasher.Hash(plaintext)
	assert.NoError(t, err)
	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		expectJWT string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: plaintext,
			user:      &models.UserDB{UserID: userID, Username: "alice", PasswordHash: hashed},
			expectJWT: "token123",
		},
		{
			name:      "user does not exist",
			username:  "bob",
			loginPass: plaintext,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "invalid password",
			username:  "carol",
			loginPass: "wrongpass",
			user:      &models.UserDB{UserID: uuid.New(), Username: "carol", PasswordHash: hashed},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "disabled user",
			username:  "mallory",
			loginPass: plaintext,
			user:      &models.UserDB{UserID: uuid.New(), Username: "mallory", PasswordHash: hashed, Disabled: true},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "eve",
			loginPass: plaintext,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "JWT generation error",
			username:  "dan",
			loginPass: plaintext,
			user:      &models.UserDB{UserID: userID, Username: "dan", PasswordHash: hashed},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.readerErr == nil && tt.user != nil && !tt.user.Disabled && tt.loginPass == plaintext {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

// A missing account and a wrong password must be observationally identical.
func TestAuthService_Login_NoUsernameEnumeration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	hasher := password.New(password.WithCost(bcrypt.MinCost))

	svc := services.NewAuthService(mockReader, mockWriter, hasher, mockJWT)

	hashed, err := hasher.Hash("right")
	assert.NoError(t, err)

	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "ghost").
		Return(nil, nil)
	_, errMissing := svc.Login(context.Background(), "ghost", "whatever")

	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: hashed}, nil)
	_, errWrongPass := svc.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, errMissing, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, services.ErrInvalidCredentials)
	assert.Equal(t, errMissing.Error(), errWrongPass.Error())
}
