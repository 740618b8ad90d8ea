package request

// CreateClientRequest represents a create client request
type CreateClientRequest struct {
	ShopName string  `json:"shop_name" binding:"required,min=2,max=255"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Phone    string  `json:"phone" binding:"required,min=7,max=20"`
	Address  string  `json:"address"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// UpdateClientRequest represents an update client request
type UpdateClientRequest struct {
	ShopName *string `json:"shop_name" binding:"omitempty,min=2,max=255"`
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone    *string `json:"phone" binding:"omitempty,min=7,max=20"`
	Address  *string `json:"address"`
	Email    *string `json:"email" binding:"omitempty,email"`
}
