package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Well-known user roles. Roles are free text; only RoleVIP changes pricing.
const (
	RoleCustomer = "customer"
	RoleVIP      = "vip"
	RoleAdmin    = "admin"
)

// UserSnapshot is a copy of the submitting user taken at submission time.
// It is owned by the order and never refreshed from the user store.
type UserSnapshot struct {
	username string
	email    string
	role     string
}

func NewUserSnapshot(username, email, role string) UserSnapshot {
	return UserSnapshot{
		username: username,
		email:    email,
		role:     role,
	}
}

func (u UserSnapshot) Username() string { return u.username }
func (u UserSnapshot) Email() string    { return u.email }
func (u UserSnapshot) Role() string     { return u.role }

// IsVIP compares the role case-insensitively.
func (u UserSnapshot) IsVIP() bool {
	return strings.EqualFold(strings.TrimSpace(u.role), RoleVIP)
}

// IsZero reports a missing user.
func (u UserSnapshot) IsZero() bool {
	return u == UserSnapshot{}
}

// MaterialSnapshot is a copy of the catalog material used by an order.
type MaterialSnapshot struct {
	name        string
	costPerGram decimal.Decimal
	printTemp   int
	color       string
}

func NewMaterialSnapshot(name string, costPerGram decimal.Decimal, printTemp int, color string) MaterialSnapshot {
	return MaterialSnapshot{
		name:        name,
		costPerGram: costPerGram,
		printTemp:   printTemp,
		color:       color,
	}
}

func (m MaterialSnapshot) Name() string                 { return m.name }
func (m MaterialSnapshot) CostPerGram() decimal.Decimal { return m.costPerGram }
func (m MaterialSnapshot) PrintTemp() int               { return m.printTemp }
func (m MaterialSnapshot) Color() string                { return m.color }

// IsZero reports a missing material.
func (m MaterialSnapshot) IsZero() bool {
	return m.name == "" && m.costPerGram.IsZero() && m.printTemp == 0 && m.color == ""
}

// Equal compares by value; cost is compared numerically so "0.05" equals "0.050".
func (m MaterialSnapshot) Equal(other MaterialSnapshot) bool {
	return m.name == other.name &&
		m.costPerGram.Equal(other.costPerGram) &&
		m.printTemp == other.printTemp &&
		m.color == other.color
}
