package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"farmhub/config"
	"farmhub/models"
	"farmhub/services/notification"
	"farmhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 15 * time.Minute

func tokenDuration() time.Duration {
	return time.Duration(config.AppConfig.JWTExpiresHours) * time.Hour
}

// Register creates an account and returns the user with a signed token.
func (s *DefaultUserService) Register(req models.UserRegistrationRequest) (*models.User, string, error) {
	role := req.Role
	if role == "" {
		role = models.RoleFarmer
	}
	if !models.ValidRole(role) {
		return nil, "", utils.Validation("Invalid role")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", utils.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
		Address:      req.Address,
		Reviews:      []models.UserReview{},
	}
	// Omitted coordinates leave location unset; a zero-valued point would
	// place the user at (0,0) and surface in geo searches there.
	if req.Longitude != 0 || req.Latitude != 0 {
		loc := models.NewGeoPoint(req.Longitude, req.Latitude)
		usr.Location = &loc
	}

	if err := s.Repo.Create(usr); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	usr.PasswordHash = ""
	return usr, token, nil
}

// Authenticate verifies credentials and returns the user with a signed token.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, string, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if usr == nil {
		return nil, "", utils.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, "", utils.Unauthorized("Invalid email or password")
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}

	usr.PasswordHash = ""
	return usr, token, nil
}

// issueToken signs a JWT for the user and stores its hash for revocation.
func (s *DefaultUserService) issueToken(usr *models.User) (string, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenDuration())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateFields(usr.ID, bson.M{"tokenHash": utils.HashToken(token)}); err != nil {
		return "", err
	}

	// Clear any cached hash from a previous session so the new token is
	// honored immediately and the old one stops authenticating.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.DropAuthCacheEntry(ctx, usr.ID); err != nil {
		utils.GetLogger().Warn("Failed to clear old token cache", zap.String("userID", usr.ID), zap.Error(err))
	}
	return token, nil
}

// Logout revokes the user's current token and drops the auth cache entry.
func (s *DefaultUserService) Logout(userID string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"tokenHash": ""}); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.DropAuthCacheEntry(ctx, userID); err != nil {
		utils.GetLogger().Warn("Failed to drop auth cache entry", zap.String("userID", userID), zap.Error(err))
	}
	return nil
}

// ForgotPassword issues a password-reset token and mails it best-effort. An
// unknown email is reported back so the caller can correct it.
func (s *DefaultUserService) ForgotPassword(email string) error {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if usr == nil {
		return utils.NotFound("User not found with this email")
	}

	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	fields := bson.M{
		"resetPasswordToken":  utils.HashToken(token),
		"resetPasswordExpire": time.Now().Add(resetTokenTTL),
	}
	if err := s.Repo.UpdateFields(usr.ID, fields); err != nil {
		return err
	}

	notification.Dispatch(s.Notify, notification.Email{
		To:      usr.Email,
		Subject: "FarmHub password reset",
		Body: fmt.Sprintf("Your password reset token is:\n\n%s\n\nIt expires in %d minutes. "+
			"If you did not request this, ignore this email.", token, int(resetTokenTTL.Minutes())),
	})
	return nil
}

// ResetPassword sets a new password given a valid, unexpired reset token.
func (s *DefaultUserService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 6 {
		return utils.Validation("Password must be at least 6 characters")
	}

	usr, err := s.Repo.GetByResetToken(utils.HashToken(token))
	if err != nil {
		return err
	}
	if usr == nil {
		return utils.Validation("Password reset token is invalid or has expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.Repo.UpdateFields(usr.ID, bson.M{
		"passwordHash":        string(hash),
		"resetPasswordToken":  "",
		"resetPasswordExpire": time.Time{},
		"tokenHash":           "",
	})
}
