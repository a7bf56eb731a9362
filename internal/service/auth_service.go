package service

import (
	"errors"

	"studyquest_backend/internal/config"
	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterRequest struct {
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=8"`
	Role     model.UserRole `json:"role" binding:"required,oneof=student teacher"`
	FullName string         `json:"fullName"`
	School   string         `json:"school"`
}

// Register creates the user and bootstraps an empty profile for its role,
// mirroring the profile-on-signup flow of the web client.
func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
	}

	err = s.UserRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if req.Role == model.Teacher {
			profile := &model.TeacherProfile{FullName: req.FullName, School: req.School}
			profile.ID = user.ID
			return tx.Create(profile).Error
		}
		profile := &model.StudentProfile{FullName: req.FullName}
		profile.ID = user.ID
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

type Profile struct {
	User    *model.User           `json:"user"`
	Student *model.StudentProfile `json:"student,omitempty"`
	Teacher *model.TeacherProfile `json:"teacher,omitempty"`
}

func (s *AuthService) GetProfile(userID string) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProfileNotFound
		}
		return nil, err
	}

	profile := &Profile{User: user}
	switch user.Role {
	case model.Teacher:
		if p, err := s.UserRepo.FindTeacherProfile(userID); err == nil {
			profile.Teacher = p
		}
	default:
		if p, err := s.UserRepo.FindStudentProfile(userID); err == nil {
			profile.Student = p
		}
	}
	return profile, nil
}

// CompleteOnboarding fills in the student profile and is followed by
// progress seeding in the onboarding controller flow.
func (s *AuthService) CompleteOnboarding(userID, fullName string, grade int, section string) (*model.StudentProfile, error) {
	profile, err := s.UserRepo.FindStudentProfile(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &model.StudentProfile{}
		profile.ID = userID
		profile.FullName = fullName
		profile.Grade = grade
		profile.Section = section
		if err := s.UserRepo.CreateStudentProfile(profile); err != nil {
			return nil, err
		}
		return profile, nil
	}

	profile.FullName = fullName
	profile.Grade = grade
	profile.Section = section
	if err := s.UserRepo.DB.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
