package usecase

import (
	"context"
	"fmt"
	"time"

	"screening-booking/internal/data/entity"
	"screening-booking/internal/data/repository"
	"screening-booking/internal/dto/request"
	"screening-booking/internal/dto/response"
	"screening-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountService interface {
	Register(ctx context.Context, req *request.RegisterAccountRequest) (*response.AccountResponse, error)
	GetAccountByID(ctx context.Context, accountID string) (*response.AccountResponse, error)
	GetAccounts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AccountResponse], error)
	DeactivateAccount(ctx context.Context, accountID string) error
}

type accountService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAccountService(repo *repository.Repository, log *zap.Logger) AccountService {
	return &accountService{
		repo: repo,
		log:  log.With(zap.String("service", "account")),
	}
}

func (s *accountService) Register(ctx context.Context, req *request.RegisterAccountRequest) (*response.AccountResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Account validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Account.FindByLoginName(ctx, req.LoginName)
	if err != nil {
		return nil, fmt.Errorf("check login name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("login name %s: %w", req.LoginName, entity.ErrLoginNameTaken)
	}

	secretHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash credential secret", zap.Error(err))
		return nil, fmt.Errorf("hash credential secret: %w", err)
	}

	now := time.Now()
	account := &entity.Account{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		DisplayName: req.DisplayName,
		Email:       req.Email,
		LoginName:   req.LoginName,
		SecretHash:  secretHash,
		Phone:       req.Phone,
		Role:        entity.AccountRole(req.Role),
		IsActive:    true,
	}

	if err := s.repo.Account.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("Account registered",
		zap.String("account_id", account.ID.String()),
		zap.String("login_name", account.LoginName),
		zap.String("role", string(account.Role)),
	)

	resp := response.AccountToResponse(account)
	return &resp, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*response.AccountResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, fmt.Errorf("invalid account ID format %s: %w", accountID, err)
	}

	account, err := s.repo.Account.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", accountID, err)
	}
	if account == nil {
		return nil, fmt.Errorf("account %s: %w", accountID, entity.ErrNotFound)
	}

	resp := response.AccountToResponse(account)
	return &resp, nil
}

func (s *accountService) GetAccounts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AccountResponse], error) {
	accounts, err := s.repo.Account.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get accounts", zap.Error(err))
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	total, err := s.repo.Account.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count accounts", zap.Error(err))
		return nil, fmt.Errorf("count accounts: %w", err)
	}

	accountResponses := make([]response.AccountResponse, len(accounts))
	for i, account := range accounts {
		accountResponses[i] = response.AccountToResponse(account)
	}

	return response.NewPaginatedResponse(accountResponses, req.Page, req.PerPage, total), nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string) error {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return fmt.Errorf("invalid account ID format %s: %w", accountID, err)
	}

	if err := s.repo.Account.SetActive(ctx, id, false); err != nil {
		return err
	}

	s.log.Info("Account deactivated", zap.String("account_id", accountID))
	return nil
}
