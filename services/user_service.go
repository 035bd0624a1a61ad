// services/user_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"fittrack/models"
	"fittrack/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Name           string  `json:"name"`
	Birthday       string  `json:"birthday"` // YYYY-MM-DD
	Sex            string  `json:"sex"`
	Height         float64 `json:"height"`
	Weight         float64 `json:"weight"`
	ActivityLevel  string  `json:"activity_level"`
	FitnessGoal    string  `json:"fitness_goal"`
	ProfilePicture string  `json:"profile_picture"` // base64, uploaded to S3
	MFAEnabled     *bool   `json:"mfa_enabled"`
}

type UserService struct {
	db  *gorm.DB
	gam *GamificationService
}

func NewUserService(db *gorm.DB, gam *GamificationService) *UserService {
	return &UserService{db: db, gam: gam}
}

func (s *UserService) findUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"name":            user.Name,
		"birthday":        user.Birthday.Format("2006-01-02"),
		"age":             age,
		"sex":             user.Sex,
		"height":          user.Height,
		"weight":          user.Weight,
		"activity_level":  user.ActivityLevel,
		"fitness_goal":    user.FitnessGoal,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"onboarded":       user.Onboarded,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}
	return profile, nil
}

func (s *UserService) applyInput(user *models.User, input ProfileInput) error {
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Sex != "" {
		user.Sex = input.Sex
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}
	if input.MFAEnabled != nil {
		user.MFAEnabled = *input.MFAEnabled
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}
	return nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	if err := s.applyInput(user, input); err != nil {
		return err
	}
	return s.db.Save(user).Error
}

// CompleteOnboarding fills in the profile, marks the account onboarded and
// pays out the one-time completion award on the first pass.
func (s *UserService) CompleteOnboarding(userID uint, input ProfileInput) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	if err := s.applyInput(user, input); err != nil {
		return err
	}

	firstTime := !user.Onboarded
	user.Onboarded = true
	if err := s.db.Save(user).Error; err != nil {
		return err
	}

	if firstTime {
		if _, err := s.gam.AwardPoints(userID, ActivityGeneral, ReasonProfileCompleted, PointValues[ReasonProfileCompleted]); err != nil {
			return err
		}
	}
	return nil
}

// RecommendedGoals computes macro targets from the stored profile.
func (s *UserService) RecommendedGoals(userID uint) (*RecommendedGoals, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if user.Birthday.IsZero() || user.Height <= 0 || user.Weight <= 0 {
		return nil, errors.New("complete your profile to get recommendations")
	}

	goals := RecommendGoals(
		utils.CalculateAge(user.Birthday),
		user.Weight,
		user.Height,
		user.Sex,
		user.ActivityLevel,
		user.FitnessGoal,
	)
	return &goals, nil
}

// DeleteAccount removes the user row. Gamification history is kept for
// leaderboard integrity until a separate cleanup runs.
func (s *UserService) DeleteAccount(userID uint) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	return s.db.Delete(user).Error
}
