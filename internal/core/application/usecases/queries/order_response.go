// Package queries contains read-only operations over the order registry and
// the print queue. Handlers never mutate state and always return copies.
package queries

import (
	"printshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse is the read model of one order.
type OrderResponse struct {
	ID                  order.ID
	Username            string
	Email               string
	Role                string
	Material            string
	CostPerGram         decimal.Decimal
	PrintTemp           int
	Color               string
	Dimensions          string
	Quantity            int
	SpecialInstructions string
	Status              order.Status
	Priority            order.Priority
	EstimatedPrintHours float64
}

// NewOrderResponse flattens an order into its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	user, material := o.User(), o.Material()
	return OrderResponse{
		ID:                  o.ID(),
		Username:            user.Username(),
		Email:               user.Email(),
		Role:                user.Role(),
		Material:            material.Name(),
		CostPerGram:         material.CostPerGram(),
		PrintTemp:           material.PrintTemp(),
		Color:               material.Color(),
		Dimensions:          o.Dimensions(),
		Quantity:            o.Quantity(),
		SpecialInstructions: o.SpecialInstructions(),
		Status:              o.Status(),
		Priority:            o.Priority(),
		EstimatedPrintHours: o.EstimatedPrintHours(),
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
