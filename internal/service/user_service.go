package service

import (
	"errors"

	"github.com/media2net-app/toptiermen-sub008/internal/models"
	"github.com/media2net-app/toptiermen-sub008/internal/repository"
	"gorm.io/gorm"
)

type UserService struct {
	repo        repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewUserService(repo repository.UserRepository, profileRepo repository.ProfileRepository) *UserService {
	return &UserService{repo: repo, profileRepo: profileRepo}
}

// CreateUser - register a member
func (s *UserService) CreateUser(dto CreateUserDTO) (*models.User, error) {
	user := &models.User{
		Email: dto.Email,
		Name:  dto.Name,
		Role:  dto.Role,
	}
	return s.repo.Create(user)
}

// GetUserByEmail - look up a member by email
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.repo.FindByEmail(email)
}

// GetUsersCount - number of members
func (s *UserService) GetUsersCount() (int64, error) {
	return s.repo.Count()
}

// GetAllUsers - all members
func (s *UserService) GetAllUsers() ([]*models.User, error) {
	return s.repo.FindAll()
}

// GetProfile - a member's nutrition profile, nil when none is stored
func (s *UserService) GetProfile(userID uint) (*models.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return profile, err
}

// UpsertProfile - create or update a member's nutrition profile
func (s *UserService) UpsertProfile(userID uint, dto UpdateProfileDTO) (*models.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = &models.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	if dto.Age > 0 {
		profile.Age = dto.Age
	}
	if dto.WeightKG > 0 {
		profile.WeightKG = dto.WeightKG
	}
	if dto.HeightCM > 0 {
		profile.HeightCM = dto.HeightCM
	}
	if dto.Sex != "" {
		profile.Sex = dto.Sex
	}
	if dto.ActivityLevel != "" {
		profile.ActivityLevel = dto.ActivityLevel
	}
	if dto.TargetCalories > 0 {
		profile.TargetCalories = dto.TargetCalories
	}
	if dto.ProteinPct > 0 {
		profile.ProteinPct = dto.ProteinPct
	}
	if dto.CarbsPct > 0 {
		profile.CarbsPct = dto.CarbsPct
	}
	if dto.FatPct > 0 {
		profile.FatPct = dto.FatPct
	}

	if profile.ID == 0 {
		return s.profileRepo.Create(profile)
	}
	return profile, s.profileRepo.Update(profile)
}
