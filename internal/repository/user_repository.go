package repository

import (
	"studyquest_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CreateStudentProfile(profile *model.StudentProfile) error {
	return r.DB.Create(profile).Error
}

func (r *UserRepository) FindStudentProfile(userID string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.DB.First(&profile, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) FindTeacherProfile(userID string) (*model.TeacherProfile, error) {
	var profile model.TeacherProfile
	err := r.DB.First(&profile, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) ListStudentProfiles(ids []string) ([]model.StudentProfile, error) {
	var profiles []model.StudentProfile
	err := r.DB.Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}
