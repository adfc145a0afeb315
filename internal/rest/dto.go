package rest

import (
	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/domain"
)

type menuCreateRequest struct {
	ID          string `json:"id" validate:"omitempty,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type menuUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type submenuCreateRequest struct {
	ID          string `json:"id" validate:"omitempty,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type submenuUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type dishCreateRequest struct {
	ID          string `json:"id" validate:"omitempty,uuid"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	Discount    int    `json:"discount" validate:"gte=0,lt=100"`
}

type dishUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Price       *string `json:"price" validate:"omitempty"`
	Discount    *int    `json:"discount" validate:"omitempty,gte=0,lt=100"`
}

func (r dishCreateRequest) toInput() (catalog.DishInput, error) {
	price, err := domain.ParsePrice(r.Price)
	if err != nil {
		return catalog.DishInput{}, err
	}
	return catalog.DishInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       price,
		Discount:    r.Discount,
	}, nil
}

func (r dishUpdateRequest) toUpdate() (catalog.DishUpdate, error) {
	update := catalog.DishUpdate{
		Title:       r.Title,
		Description: r.Description,
		Discount:    r.Discount,
	}
	if r.Price != nil {
		price, err := domain.ParsePrice(*r.Price)
		if err != nil {
			return catalog.DishUpdate{}, err
		}
		update.Price = &price
	}
	return update, nil
}

type deleteResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
