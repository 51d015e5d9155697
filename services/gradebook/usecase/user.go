package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gradebook/domain"
)

type userUC struct {
	userRepo       domain.UserRepo
	enrollmentRepo domain.EnrollmentRepo
	TimeOut        time.Duration
}

func NewUserUseCase(userRepo domain.UserRepo, enrollmentRepo domain.EnrollmentRepo, timeOut time.Duration) domain.UserUseCase {
	return &userUC{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
		TimeOut:        timeOut,
	}
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %v", err)
	}
	return string(hashed), nil
}

func (uUC *userUC) CreateStaff(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	if user.Role == domain.RoleStudent {
		return fmt.Errorf("student accounts are created through the student endpoint")
	}

	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	return uUC.userRepo.CreateUser(ctx, user)
}

// CreateStudent provisions the account and its class enrollment together.
func (uUC *userUC) CreateStudent(ctx context.Context, payload *domain.CreateStudentPayload) error {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	hashed, err := hashPassword(payload.Password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Username: payload.Username,
		Password: hashed,
		Name:     payload.Name,
		Role:     domain.RoleStudent,
	}
	if err := uUC.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	return uUC.enrollmentRepo.CreateEnrollment(ctx, user.UserID, payload.ClassID)
}

func (uUC *userUC) GetAllUsers(ctx context.Context, role *domain.Role) (*[]domain.SafeUserData, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.GetAllUsers(ctx, role)
}

func (uUC *userUC) GetUserDetail(ctx context.Context, id int) (*domain.SafeUserData, error) {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.GetUserByID(ctx, id)
}

func (uUC *userUC) ModifyUser(ctx context.Context, id int, payload *domain.UpdateUserPayload) error {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	if payload.Role != "" && !payload.Role.Valid() {
		return fmt.Errorf("invalid role: %s", payload.Role)
	}

	if payload.Password != "" {
		hashed, err := hashPassword(payload.Password)
		if err != nil {
			return err
		}
		payload.Password = hashed
	}

	return uUC.userRepo.UpdateUser(ctx, id, payload)
}

func (uUC *userUC) DeleteUser(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, uUC.TimeOut)
	defer cancel()

	return uUC.userRepo.DeleteUser(ctx, id)
}
