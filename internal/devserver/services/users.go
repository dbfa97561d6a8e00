// Package services contains the business logic of the development backend.
// This file implements UserService: accounts, passwords, access tokens and
// rotating server-stored refresh tokens.
package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/auth"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/config"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/models"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories/repomanager"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6

	verificationCodeValidity = 24 * time.Hour
	resetTokenValidity       = time.Hour
	codeIssueAttempts        = 5
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserService struct {
	repomanager                  repomanager.RepositoryManager
	mailer                       Mailer
	log                          logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	requireVerification          bool
	now                          func() time.Time
}

// NewUserService builds a UserService. now may be nil for time.Now.
func NewUserService(m repomanager.RepositoryManager, mailer Mailer, cfg *config.Config, log logging.Logger, now func() time.Time) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{
		repomanager:                  m,
		mailer:                       mailer,
		log:                          log.With("component", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		requireVerification:          cfg.RequireVerification,
		now:                          now,
	}
}

// Register creates an unverified account and mails a verification code.
func (s *UserService) Register(ctx context.Context, username, password, email, phone string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	switch {
	case username == "":
		return nil, invalid("Username is required")
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return nil, invalid(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	case email == "":
		return nil, invalid("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("Email is not valid")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrInternal
	}

	user, err := s.repomanager.Users().Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	if err := s.sendVerificationCode(ctx, user); err != nil {
		s.log.Error(ctx, "verification code not sent", "user", user.Username, "err", err)
	}
	s.log.Info(ctx, "user registered", "user", user.Username)
	return user, nil
}

// Login accepts a username or e-mail and returns the user with a fresh
// TokenPair.
func (s *UserService) Login(ctx context.Context, login, password string) (*models.User, *TokenPair, error) {
	repo := s.repomanager.Users()

	user, err := repo.GetByLogin(ctx, strings.TrimSpace(login))
	if errors.Is(err, repositories.ErrNotFound) {
		user, err = repo.GetByEmail(ctx, strings.TrimSpace(login))
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, ErrInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if s.requireVerification && !user.Verified {
		return nil, nil, ErrNotVerified
	}

	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// RefreshToken validates a refresh token, revokes it and returns a new
// pair. Each refresh token works once.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens()

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, ErrInternal
	}
	if err := repo.Delete(ctx, refreshToken); err != nil {
		return nil, ErrInternal
	}
	if !s.now().Before(token.Expires) {
		return nil, ErrRefreshTokenExpired
	}

	user, err := s.repomanager.Users().GetByID(ctx, token.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	return s.generateTokenPair(ctx, user)
}

// Logout revokes every refresh token of the user. Access tokens already
// issued stay valid until they expire.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.repomanager.RefreshTokens().DeleteForUser(ctx, userID)
}

// Authenticate checks an access token and returns its user ID.
func (s *UserService) Authenticate(tokenString string) (string, error) {
	return auth.GetUserIDFromToken(tokenString, s.jwtSecret, s.now())
}

func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users().GetByID(ctx, userID)
}

func (s *UserService) VerifyEmail(ctx context.Context, code string) error {
	c, err := s.repomanager.VerificationCodes().Consume(ctx, strings.TrimSpace(code))
	if err != nil {
		return ErrInvalidCode
	}

	repo := s.repomanager.Users()
	user, err := repo.GetByID(ctx, c.UserID)
	if err != nil {
		return ErrInvalidCode
	}
	user.Verified = true
	return repo.Update(ctx, user)
}

func (s *UserService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.repomanager.Users().GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return ErrUnknownEmail
	}
	if user.Verified {
		return invalid("Email is already verified")
	}
	return s.sendVerificationCode(ctx, user)
}

// ForgotPassword mails a reset token. Unknown addresses are accepted
// silently so the endpoint cannot be used to probe accounts.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repomanager.Users().GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		s.log.Debug(ctx, "password reset for unknown email")
		return nil
	}

	token, err := common.MakeRandHexString(16)
	if err != nil {
		return ErrInternal
	}
	if err := s.repomanager.ResetTokens().Issue(ctx, user.ID, token, resetTokenValidity); err != nil {
		return ErrInternal
	}
	return s.mailer.Send(ctx, CodeReset, user.Email, token)
}

// ResetPassword sets a new password and signs the user out everywhere.
func (s *UserService) ResetPassword(ctx context.Context, token, password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid(fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}

	c, err := s.repomanager.ResetTokens().Consume(ctx, strings.TrimSpace(token))
	if err != nil {
		return ErrInvalidResetToken
	}

	repo := s.repomanager.Users()
	user, err := repo.GetByID(ctx, c.UserID)
	if err != nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}
	user.PasswordHash = hash
	if err := repo.Update(ctx, user); err != nil {
		return err
	}
	return s.repomanager.RefreshTokens().DeleteForUser(ctx, user.ID)
}

// --- helpers below ---

func (s *UserService) sendVerificationCode(ctx context.Context, user *models.User) error {
	repo := s.repomanager.VerificationCodes()

	for i := 0; i < codeIssueAttempts; i++ {
		code, err := sixDigitCode()
		if err != nil {
			return err
		}
		err = repo.Issue(ctx, user.ID, code, verificationCodeValidity)
		if errors.Is(err, repositories.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return err
		}
		return s.mailer.Send(ctx, CodeVerification, user.Email, code)
	}
	return fmt.Errorf("no free verification code after %d attempts", codeIssueAttempts)
}

func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User) (*TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.accessTokenValidityDuration, s.now())
	if err != nil {
		return nil, ErrInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, ErrInternal
	}
	if err := s.repomanager.RefreshTokens().Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, ErrInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
