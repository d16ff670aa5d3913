package entity

type AccountRole string

const (
	RoleCustomer AccountRole = "customer"
	RoleAdmin    AccountRole = "admin"
)

type Account struct {
	Base
	DisplayName string      `db:"display_name"`
	Email       string      `db:"email"`
	LoginName   string      `db:"login_name"`
	SecretHash  string      `db:"secret_hash"` // write-only, never serialized
	Phone       *string     `db:"phone"`
	Role        AccountRole `db:"role"`
	IsActive    bool        `db:"is_active"`
}
