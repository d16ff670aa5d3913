package request

type RegisterAccountRequest struct {
	DisplayName string  `json:"display_name" validate:"required,min=1,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	LoginName   string  `json:"login_name" validate:"required,min=3,max=100"`
	Password    string  `json:"password" validate:"required,min=8"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Role        string  `json:"role" validate:"required,oneof=customer admin"`
}
