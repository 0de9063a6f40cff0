// Package catalogrepo persists the user directory, material catalog and
// material stock in PostgreSQL through GORM.
package catalogrepo

import (
	"strings"

	"printshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// UserDTO is a row of the users table.
type UserDTO struct {
	Username string `gorm:"primaryKey"`
	Email    string
	Role     string `gorm:"index"`
}

func (UserDTO) TableName() string {
	return "users"
}

// MaterialDTO is a row of the materials table. LookupKey holds the lower-cased
// name and is what lookups match on; Name keeps the display spelling.
type MaterialDTO struct {
	LookupKey   string `gorm:"primaryKey"`
	Name        string
	CostPerGram decimal.Decimal `gorm:"type:numeric(12,4)"`
	PrintTemp   int
	Color       string
	StockGrams  int `gorm:"check:stock_grams >= 0"`
}

func (MaterialDTO) TableName() string {
	return "materials"
}

func materialKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func userFromDomain(u order.UserSnapshot) UserDTO {
	return UserDTO{
		Username: u.Username(),
		Email:    u.Email(),
		Role:     u.Role(),
	}
}

func userToDomain(dto UserDTO) order.UserSnapshot {
	return order.NewUserSnapshot(dto.Username, dto.Email, dto.Role)
}

func materialFromDomain(m order.MaterialSnapshot, stockGrams int) MaterialDTO {
	return MaterialDTO{
		LookupKey:   materialKey(m.Name()),
		Name:        m.Name(),
		CostPerGram: m.CostPerGram(),
		PrintTemp:   m.PrintTemp(),
		Color:       m.Color(),
		StockGrams:  stockGrams,
	}
}

func materialToDomain(dto MaterialDTO) order.MaterialSnapshot {
	return order.NewMaterialSnapshot(dto.Name, dto.CostPerGram, dto.PrintTemp, dto.Color)
}
