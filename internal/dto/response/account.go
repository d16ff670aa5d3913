package response

import (
	"time"

	"screening-booking/internal/data/entity"
)

// AccountResponse never carries the credential secret.
type AccountResponse struct {
	ID          string             `json:"id"`
	DisplayName string             `json:"display_name"`
	Email       string             `json:"email"`
	LoginName   string             `json:"login_name"`
	Phone       *string            `json:"phone,omitempty"`
	Role        entity.AccountRole `json:"role"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   time.Time          `json:"created_at"`
}

func AccountToResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID.String(),
		DisplayName: account.DisplayName,
		Email:       account.Email,
		LoginName:   account.LoginName,
		Phone:       account.Phone,
		Role:        account.Role,
		IsActive:    account.IsActive,
		CreatedAt:   account.CreatedAt,
	}
}
