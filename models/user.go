package models

// Address is a saved shipping address of a signed-in user.
type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Zip       string `json:"zip" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}
