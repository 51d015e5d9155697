package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type User struct {
	UserID    int            `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username  string         `gorm:"type:varchar(100);not null;unique" json:"username" valid:"required~Username is required"`
	Password  string         `gorm:"type:varchar(255);not null" json:"password,omitempty" valid:"required~Password is required"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name" valid:"required~Name is required"`
	Role      Role           `gorm:"type:varchar(20);not null" json:"role" valid:"required~Role is required,in(admin|teacher|homeroom|student)~Invalid role"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type SafeUserData struct {
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStudentPayload provisions the account and the enrollment in one go.
type CreateStudentPayload struct {
	Username string `json:"username" valid:"required~Username is required"`
	Password string `json:"password" valid:"required~Password is required"`
	Name     string `json:"name" valid:"required~Name is required"`
	ClassID  int    `json:"class_id" valid:"required~Class ID is required"`
}

type UpdateUserPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) error
	GetAllUsers(ctx context.Context, role *Role) (*[]SafeUserData, error)
	GetUserByID(ctx context.Context, id int) (*SafeUserData, error)
	UpdateUser(ctx context.Context, id int, payload *UpdateUserPayload) error
	DeleteUser(ctx context.Context, id int) error
	FindUserByUsername(ctx context.Context, username string) (*User, error)
}

type UserUseCase interface {
	CreateStaff(ctx context.Context, user *User) error
	CreateStudent(ctx context.Context, payload *CreateStudentPayload) error
	GetAllUsers(ctx context.Context, role *Role) (*[]SafeUserData, error)
	GetUserDetail(ctx context.Context, id int) (*SafeUserData, error)
	ModifyUser(ctx context.Context, id int, payload *UpdateUserPayload) error
	DeleteUser(ctx context.Context, id int) error
}
