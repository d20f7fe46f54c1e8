package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradepulse/tradepulse/internal/domain"
)

// OperatorRepositoryImpl implements the OperatorRepository interface
type OperatorRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewOperatorRepository creates a new OperatorRepository
func NewOperatorRepository(db *pgxpool.Pool) domain.OperatorRepository {
	return &OperatorRepositoryImpl{db: db}
}

// Create creates a new operator account
func (r *OperatorRepositoryImpl) Create(ctx context.Context, operator *domain.Operator) error {
	query := `
		INSERT INTO operators (
			id, username, password_hash, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := r.db.Exec(ctx, query,
		operator.ID,
		operator.Username,
		operator.PasswordHash,
		operator.CreatedAt,
		operator.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}

	return nil
}

// GetByID retrieves an operator by ID
func (r *OperatorRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM operators
		WHERE id = $1
	`

	operator := &domain.Operator{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&operator.ID,
		&operator.Username,
		&operator.PasswordHash,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get operator by ID: %w", err)
	}

	return operator, nil
}

// GetByUsername retrieves an operator by username
func (r *OperatorRepositoryImpl) GetByUsername(ctx context.Context, username string) (*domain.Operator, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM operators
		WHERE username = $1
	`

	operator := &domain.Operator{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&operator.ID,
		&operator.Username,
		&operator.PasswordHash,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get operator by username: %w", err)
	}

	return operator, nil
}
