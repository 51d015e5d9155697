package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gradebook/domain"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(database *pgxpool.Pool) domain.UserRepo {
	return &userRepository{
		db: database,
	}
}

func (ur *userRepository) CreateUser(ctx context.Context, user *domain.User) error {
	duplicateCheckQuery := `
		SELECT user_id FROM users
		WHERE username = $1 AND deleted_at IS NULL;
	`
	var existingID int

	err := ur.db.QueryRow(ctx, duplicateCheckQuery, user.Username).Scan(&existingID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("could not check for duplicate user: %v", err)
	}
	if existingID != 0 {
		return fmt.Errorf("user already exists with username: %s", user.Username)
	}

	insertQuery := `
		INSERT INTO users (username, password, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING user_id;
	`

	now := time.Now()

	var id int
	err = ur.db.QueryRow(ctx, insertQuery, user.Username, user.Password, user.Name, user.Role, now, now).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not insert user: %v", err)
	}

	user.UserID = id
	user.CreatedAt = now
	user.UpdatedAt = now

	return nil
}

func (ur *userRepository) GetAllUsers(ctx context.Context, role *domain.Role) (*[]domain.SafeUserData, error) {
	query := `
		SELECT user_id, username, name, role, created_at, updated_at
		FROM users
		WHERE deleted_at IS NULL
	`
	args := []interface{}{}
	if role != nil {
		query += ` AND role = $1`
		args = append(args, *role)
	}
	query += ` ORDER BY name;`

	rows, err := ur.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not get all users: %v", err)
	}
	defer rows.Close()

	var users []domain.SafeUserData
	for rows.Next() {
		var user domain.SafeUserData
		if err := rows.Scan(&user.UserID, &user.Username, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("could not scan user: %v", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %v", err)
	}

	return &users, nil
}

func (ur *userRepository) GetUserByID(ctx context.Context, id int) (*domain.SafeUserData, error) {
	query := `
		SELECT user_id, username, name, role, created_at, updated_at
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`

	var user domain.SafeUserData
	err := ur.db.QueryRow(ctx, query, id).Scan(&user.UserID, &user.Username, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("could not get user: %v", err)
	}

	return &user, nil
}

func (ur *userRepository) UpdateUser(ctx context.Context, id int, payload *domain.UpdateUserPayload) error {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := 1

	if payload.Username != "" {
		sets = append(sets, fmt.Sprintf("username = $%d", arg))
		args = append(args, payload.Username)
		arg++
	}
	if payload.Password != "" {
		sets = append(sets, fmt.Sprintf("password = $%d", arg))
		args = append(args, payload.Password)
		arg++
	}
	if payload.Name != "" {
		sets = append(sets, fmt.Sprintf("name = $%d", arg))
		args = append(args, payload.Name)
		arg++
	}
	if payload.Role != "" {
		sets = append(sets, fmt.Sprintf("role = $%d", arg))
		args = append(args, payload.Role)
		arg++
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE user_id = $%d AND deleted_at IS NULL;`, strings.Join(sets, ", "), arg)
	args = append(args, id)

	tag, err := ur.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("could not update user: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

func (ur *userRepository) DeleteUser(ctx context.Context, id int) error {
	query := `
		UPDATE users SET deleted_at = NOW()
		WHERE user_id = $1 AND deleted_at IS NULL;
	`

	tag, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}

func (ur *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password, name, role, created_at, updated_at
		FROM users
		WHERE username = $1 AND deleted_at IS NULL;
	`

	var user domain.User
	err := ur.db.QueryRow(ctx, query, username).Scan(&user.UserID, &user.Username, &user.Password, &user.Name, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}

	return &user, nil
}
