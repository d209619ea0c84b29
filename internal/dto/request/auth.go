package request

// CheckDuplicateRequest accepts any phone value, including an empty one.
type CheckDuplicateRequest struct {
	Phone string `json:"phone"`
}

type SignupRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}
