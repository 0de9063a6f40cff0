package cmd

import (
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Starter catalog for empty stores.
func seedUsers() []order.UserSnapshot {
	return []order.UserSnapshot{
		order.NewUserSnapshot("alice", "alice@example.com", order.RoleCustomer),
		order.NewUserSnapshot("bob", "bob@example.com", order.RoleVIP),
		order.NewUserSnapshot("admin", "admin@example.com", order.RoleAdmin),
	}
}

func seedMaterials() []postgres.StockedMaterial {
	material := func(name, cost string, temp int, color string, stock int) postgres.StockedMaterial {
		return postgres.StockedMaterial{
			Material:   order.NewMaterialSnapshot(name, decimal.RequireFromString(cost), temp, color),
			StockGrams: stock,
		}
	}

	return []postgres.StockedMaterial{
		material("PLA", "0.05", 210, "white", 5000),
		material("ABS", "0.04", 250, "black", 3000),
		material("PETG", "0.07", 240, "clear", 2000),
		material("TPU", "0.09", 225, "red", 1000),
	}
}
