package transport

import (
	"github.com/Skotchmaster/catalog_admin/internal/service"
)

type BrandRequest struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Logo *string `json:"logo"`
}

func (r BrandRequest) Input() service.BrandInput {
	return service.BrandInput{ID: r.ID, Name: r.Name, Logo: r.Logo}
}

type CategoryRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r CategoryRequest) Input() service.CategoryInput {
	return service.CategoryInput{ID: r.ID, Name: r.Name}
}

type ProductRequest struct {
	ID         string  `json:"id"`
	ProName    string  `json:"pro_name"`
	Price      Number  `json:"price"`
	Discount   Number  `json:"discount"`
	CategoryID string  `json:"categoryId"`
	BrandID    *string `json:"brandId"`
}

// Input rejects price or discount values that are present but not numeric.
func (r ProductRequest) Input() (service.ProductInput, error) {
	if r.Price.Invalid {
		return service.ProductInput{}, &service.ValidationError{Message: "Price must be a number"}
	}
	if r.Discount.Invalid {
		return service.ProductInput{}, &service.ValidationError{Message: "Discount must be a number"}
	}
	return service.ProductInput{
		ID:         r.ID,
		ProName:    r.ProName,
		Price:      r.Price.Ptr(),
		Discount:   r.Discount.Ptr(),
		CategoryID: r.CategoryID,
		BrandID:    r.BrandID,
	}, nil
}

type DeleteRequest struct {
	ID string `json:"id"`
}

type RegisterRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (r RegisterRequest) Input() service.RegisterInput {
	return service.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Message string           `json:"message"`
	User    service.UserInfo `json:"user"`
}
