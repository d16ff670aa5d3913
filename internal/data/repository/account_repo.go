package repository

import (
	"context"
	"fmt"

	"screening-booking/internal/data/entity"
	"screening-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	FindByLoginName(ctx context.Context, loginName string) (*entity.Account, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Account, error)
	CountAll(ctx context.Context) (int64, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log.With(zap.String("repository", "account")),
	}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, display_name, email, login_name, secret_hash, phone, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		account.ID,
		account.DisplayName,
		account.Email,
		account.LoginName,
		account.SecretHash,
		account.Phone,
		account.Role,
		account.IsActive,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create account",
			zap.Error(err),
			zap.String("login_name", account.LoginName),
		)
		return fmt.Errorf("create account %s: %w", account.LoginName, err)
	}

	return nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	query := `
		SELECT id, display_name, email, login_name, secret_hash, phone, role, is_active, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var account entity.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.DisplayName,
		&account.Email,
		&account.LoginName,
		&account.SecretHash,
		&account.Phone,
		&account.Role,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find account by ID",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return nil, fmt.Errorf("find account by ID %s: %w", id.String(), err)
	}

	return &account, nil
}

func (r *accountRepository) FindByLoginName(ctx context.Context, loginName string) (*entity.Account, error) {
	query := `
		SELECT id, display_name, email, login_name, secret_hash, phone, role, is_active, created_at, updated_at
		FROM accounts
		WHERE login_name = $1
	`

	var account entity.Account
	err := r.db.QueryRow(ctx, query, loginName).Scan(
		&account.ID,
		&account.DisplayName,
		&account.Email,
		&account.LoginName,
		&account.SecretHash,
		&account.Phone,
		&account.Role,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find account by login name",
			zap.Error(err),
			zap.String("login_name", loginName),
		)
		return nil, fmt.Errorf("find account by login name %s: %w", loginName, err)
	}

	return &account, nil
}

func (r *accountRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Account, error) {
	query := `
		SELECT id, display_name, email, login_name, secret_hash, phone, role, is_active, created_at, updated_at
		FROM accounts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find accounts",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*entity.Account
	for rows.Next() {
		var account entity.Account
		err := rows.Scan(
			&account.ID,
			&account.DisplayName,
			&account.Email,
			&account.LoginName,
			&account.SecretHash,
			&account.Phone,
			&account.Role,
			&account.IsActive,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan account row", zap.Error(err))
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, &account)
	}

	return accounts, nil
}

func (r *accountRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM accounts`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count accounts", zap.Error(err))
		return 0, fmt.Errorf("count accounts: %w", err)
	}

	return count, nil
}

func (r *accountRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE accounts SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, active)
	if err != nil {
		r.log.Error("Failed to update account active flag",
			zap.Error(err),
			zap.String("account_id", id.String()),
			zap.Bool("active", active),
		)
		return fmt.Errorf("set account %s active=%t: %w", id.String(), active, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("set account %s active: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}
