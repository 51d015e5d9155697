package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var pgxPool *pgxpool.Pool
var gormDB *gorm.DB

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB opens the pgx pool used by the repositories and runs the schema
// migration over a plain database/sql handle.
func BootDB(ctx context.Context) (*pgxpool.Pool, error) {
	url := GetDatabaseURL()

	if err := migrate(url); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if pgxPool == nil {
		pgxPool = pool
	}

	return pgxPool, nil
}

// BootGormDB opens the GORM handle used by the login path.
func BootGormDB() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	db, err := gorm.Open(postgres.Open(GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	gormDB = db
	return gormDB, nil
}

func migrate(url string) error {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	query := `
	CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		name VARCHAR(150) NOT NULL,
		role VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		deleted_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS classes (
		class_id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		homeroom_teacher_id INT REFERENCES users(user_id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS subjects (
		subject_id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS semesters (
		semester_id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		academic_year VARCHAR(20) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS enrollments (
		enrollment_id SERIAL PRIMARY KEY,
		student_id INT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		class_id INT NOT NULL REFERENCES classes(class_id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (student_id)
	);

	CREATE TABLE IF NOT EXISTS teaching_assignments (
		assignment_id SERIAL PRIMARY KEY,
		teacher_id INT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		subject_id INT NOT NULL REFERENCES subjects(subject_id) ON DELETE CASCADE,
		class_id INT NOT NULL REFERENCES classes(class_id) ON DELETE CASCADE,
		UNIQUE (teacher_id, subject_id, class_id)
	);

	CREATE TABLE IF NOT EXISTS grades (
		grade_id SERIAL PRIMARY KEY,
		enrollment_id INT NOT NULL REFERENCES enrollments(enrollment_id) ON DELETE CASCADE,
		subject_id INT NOT NULL REFERENCES subjects(subject_id),
		teacher_id INT NOT NULL REFERENCES users(user_id),
		semester_id INT NOT NULL REFERENCES semesters(semester_id),
		grade_type VARCHAR(20) NOT NULL,
		score NUMERIC(5,2) NOT NULL CHECK (score >= 0 AND score <= 100),
		exam_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (teacher_id, enrollment_id, subject_id, semester_id, grade_type)
	);

	CREATE TABLE IF NOT EXISTS attendances (
		attendance_id SERIAL PRIMARY KEY,
		enrollment_id INT NOT NULL REFERENCES enrollments(enrollment_id) ON DELETE CASCADE,
		class_id INT NOT NULL REFERENCES classes(class_id),
		teacher_id INT NOT NULL REFERENCES users(user_id),
		semester_id INT NOT NULL REFERENCES semesters(semester_id),
		date DATE NOT NULL,
		status VARCHAR(10) NOT NULL,
		note TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (enrollment_id, date, class_id)
	);

	CREATE TABLE IF NOT EXISTS settings (
		key VARCHAR(100) PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS activity_logs (
		log_id SERIAL PRIMARY KEY,
		user_id INT NOT NULL,
		username VARCHAR(100) NOT NULL,
		action VARCHAR(100) NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
