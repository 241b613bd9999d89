package transport

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	InStock     *bool   `json:"in_stock"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Unit        *string  `json:"unit"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"in_stock"`
}

// Empty reports whether the update carries no fields at all.
func (r UpdateProductRequest) Empty() bool {
	return r.Name == nil && r.Price == nil && r.Unit == nil &&
		r.Description == nil && r.Image == nil && r.InStock == nil
}

type UserPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}
