package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"NUTRIPLAN_BACK-END/internal/config"
	"NUTRIPLAN_BACK-END/internal/logger"
	"NUTRIPLAN_BACK-END/internal/models"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

// Store is the process-wide gateway to the relational database. It wraps a
// pgx pool, so each statement runs on its own healthy connection and
// auto-commits independently; no transaction ever spans two statements.
// Multi-step handlers (lookup then update) are therefore not atomic, and a
// race between concurrent requests on the same row is possible.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to the database and verifies the connection with a ping
func New(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "nutriplan-backend"
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	logger.Info("connected to database", "host", cfg.Host, "database", cfg.Name)
	return &Store{pool: pool}, nil
}

// Ping verifies database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases all database connections
func (s *Store) Close() {
	s.pool.Close()
}

// CreateUser inserts a new user and returns the stored row
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	const query = `INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	user := models.User{Username: username, Email: email, PasswordHash: passwordHash}
	if err := s.pool.QueryRow(ctx, query, username, email, passwordHash).Scan(&user.ID); err != nil {
		logger.Error("create user failed", "error", err)
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// GetUserByUsername fetches a user, including the password hash, by username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `SELECT id, username, email, password_hash FROM users WHERE username = $1`
	return s.getUser(ctx, query, username)
}

// GetUserByLogin fetches a user whose username OR email matches the login
func (s *Store) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	const query = `SELECT id, username, email, password_hash FROM users
		WHERE username = $1 OR email = $1`
	return s.getUser(ctx, query, login)
}

// GetUserByID fetches a user by primary key
func (s *Store) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	const query = `SELECT id, username, email, password_hash FROM users WHERE id = $1`
	return s.getUser(ctx, query, id)
}

func (s *Store) getUser(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User
	err := s.pool.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		logger.Error("user lookup failed", "error", err)
		return models.User{}, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// EmailInUse reports whether any account owns the given email
func (s *Store) EmailInUse(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM users WHERE email = $1 LIMIT 1`

	var one int
	err := s.pool.QueryRow(ctx, query, email).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error("email lookup failed", "error", err)
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

// UpdateEmail replaces a user's email address
func (s *Store) UpdateEmail(ctx context.Context, userID int64, email string) error {
	const query = `UPDATE users SET email = $1 WHERE id = $2`

	if _, err := s.pool.Exec(ctx, query, email, userID); err != nil {
		logger.Error("update email failed", "error", err)
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdatePassword replaces a user's password hash
func (s *Store) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1 WHERE id = $2`

	if _, err := s.pool.Exec(ctx, query, passwordHash, userID); err != nil {
		logger.Error("update password failed", "error", err)
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// InsertMealPlan stores a generated plan for a user
func (s *Store) InsertMealPlan(ctx context.Context, userID int64, title, plan string) error {
	const query = `INSERT INTO mealplans (user_id, mealplan, title) VALUES ($1, $2, $3)`

	if _, err := s.pool.Exec(ctx, query, userID, plan, title); err != nil {
		logger.Error("insert meal plan failed", "error", err)
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListMealPlans returns the id and title of every plan owned by the user
func (s *Store) ListMealPlans(ctx context.Context, userID int64) ([]models.MealPlanSummary, error) {
	const query = `SELECT id, title FROM mealplans WHERE user_id = $1`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		logger.Error("list meal plans failed", "error", err)
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	plans := make([]models.MealPlanSummary, 0)
	for rows.Next() {
		var p models.MealPlanSummary
		if err := rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("list meal plans failed", "error", err)
		return nil, fmt.Errorf("db error: %w", err)
	}
	return plans, nil
}

// GetMealPlan returns one plan's full text, scoped to the owning user
func (s *Store) GetMealPlan(ctx context.Context, mealID, userID int64) (string, error) {
	const query = `SELECT mealplan FROM mealplans WHERE id = $1 AND user_id = $2`

	var plan string
	err := s.pool.QueryRow(ctx, query, mealID, userID).Scan(&plan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		logger.Error("meal plan lookup failed", "error", err)
		return "", fmt.Errorf("db error: %w", err)
	}
	return plan, nil
}
