// services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"fittrack/models"
	"fittrack/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	gam *GamificationService
}

func NewAuthService(db *gorm.DB, gam *GamificationService) *AuthService {
	return &AuthService{db: db, gam: gam}
}

// Register creates the account and seeds its gamification state so the
// profile endpoints work from the first request.
func (s *AuthService) Register(email, password, name string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, errors.New("email already registered")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, Password: hashed, Name: name}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	if _, err := s.gam.InitializeUserGamification(user.ID); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// Login checks credentials and either returns a token or, for MFA-enabled
// accounts, emails a one-time code and reports that verification is pending.
func (s *AuthService) Login(email, password string) (token string, mfaPending bool, err error) {
	user, err := s.FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", false, errors.New("invalid email or password")
	}

	if user.MFAEnabled {
		code := fmt.Sprintf("%06d", rand.Intn(1000000))
		user.MFACode = code
		if err := s.db.Save(user).Error; err != nil {
			return "", false, err
		}
		if err := utils.SendMFAEmail(user.Email, code); err != nil {
			return "", false, errors.New("failed to send MFA code")
		}
		return "", true, nil
	}

	token, err = utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", false, err
	}
	return token, false, nil
}

func (s *AuthService) VerifyMFA(email, code string) (string, error) {
	user, err := s.FindUserByEmail(email)
	if err != nil || user.MFACode == "" || user.MFACode != code {
		return "", errors.New("invalid MFA code")
	}

	user.MFACode = ""
	if err := s.db.Save(user).Error; err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

// ForgotPassword emails a short-lived reset code. Unknown emails succeed
// silently so the endpoint can't be used to probe for accounts.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.FindUserByEmail(email)
	if err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, token)
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	err := s.db.Where("reset_token = ?", token).First(&user).Error
	if err != nil || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
