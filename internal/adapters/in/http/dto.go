package http

import (
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrder struct {
	Username            string `json:"username"`
	Material            string `json:"material"`
	Dimensions          string `json:"dimensions"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

type StatusChange struct {
	Status string `json:"status"`
	Force  bool   `json:"force"`
}

type PriorityChange struct {
	Priority string `json:"priority"`
}

type Order struct {
	ID                  int64           `json:"id"`
	Username            string          `json:"username"`
	Email               string          `json:"email"`
	Role                string          `json:"role"`
	Material            string          `json:"material"`
	CostPerGram         decimal.Decimal `json:"cost_per_gram"`
	PrintTemp           int             `json:"print_temp"`
	Color               string          `json:"color"`
	Dimensions          string          `json:"dimensions"`
	Quantity            int             `json:"quantity"`
	SpecialInstructions string          `json:"special_instructions"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	EstimatedPrintHours float64         `json:"estimated_print_hours"`
}

type Price struct {
	OrderID       int64           `json:"order_id,omitempty"`
	MaterialCost  decimal.Decimal `json:"material_cost"`
	ProcessCost   decimal.Decimal `json:"process_cost"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	BulkDiscount  decimal.Decimal `json:"bulk_discount"`
	VIPDiscount   decimal.Decimal `json:"vip_discount"`
	RushSurcharge decimal.Decimal `json:"rush_surcharge"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	Display       string          `json:"display"`
}

type SubmittedOrder struct {
	Order Order `json:"order"`
	Price Price `json:"price"`
}

type Rejection struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
	Detail string `json:"detail"`
}

type SaveResult struct {
	SnapshotID uuid.UUID `json:"snapshot_id"`
	Orders     int       `json:"orders"`
	Queued     int       `json:"queued"`
}

type SkippedRecord struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Error  string `json:"error"`
}

type LoadResult struct {
	SnapshotID       uuid.UUID       `json:"snapshot_id"`
	Format           string          `json:"format,omitempty"`
	Loaded           int             `json:"loaded"`
	Queued           int             `json:"queued"`
	Skipped          []SkippedRecord `json:"skipped"`
	QueueDropped     int             `json:"queue_dropped"`
	QueueDerived     bool            `json:"queue_derived"`
	NoSavedState     bool            `json:"no_saved_state"`
	SnapshotMismatch bool            `json:"snapshot_mismatch"`
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:                  int64(o.ID),
		Username:            o.Username,
		Email:               o.Email,
		Role:                o.Role,
		Material:            o.Material,
		CostPerGram:         o.CostPerGram,
		PrintTemp:           o.PrintTemp,
		Color:               o.Color,
		Dimensions:          o.Dimensions,
		Quantity:            o.Quantity,
		SpecialInstructions: o.SpecialInstructions,
		Status:              o.Status.String(),
		Priority:            o.Priority.String(),
		EstimatedPrintHours: o.EstimatedPrintHours,
	}
}

func toOrders(in []queries.OrderResponse) []Order {
	out := make([]Order, len(in))
	for i, o := range in {
		out[i] = toOrder(o)
	}
	return out
}

func toPrice(b services.PriceBreakdown) Price {
	return Price{
		MaterialCost:  b.MaterialCost,
		ProcessCost:   b.ProcessCost,
		Subtotal:      b.Subtotal,
		BulkDiscount:  b.BulkDiscount,
		VIPDiscount:   b.VIPDiscount,
		RushSurcharge: b.RushSurcharge,
		Tax:           b.Tax,
		Total:         b.Total,
		Currency:      b.Currency,
		Display:       b.Display(),
	}
}

func toSubmittedOrder(r commands.OrderResult) SubmittedOrder {
	return SubmittedOrder{
		Order: toOrder(queries.NewOrderResponse(r.Order())),
		Price: toPrice(r.Price()),
	}
}

func toLoadResult(s ports.LoadSummary) LoadResult {
	skipped := make([]SkippedRecord, 0, len(s.Skipped))
	for _, r := range s.Skipped {
		skipped = append(skipped, SkippedRecord{Source: r.Source, Line: r.Line, Error: r.Err.Error()})
	}
	return LoadResult{
		SnapshotID:       s.SnapshotID,
		Format:           s.Format,
		Loaded:           s.Loaded,
		Queued:           s.Queued,
		Skipped:          skipped,
		QueueDropped:     s.QueueDropped,
		QueueDerived:     s.QueueDerived,
		NoSavedState:     s.NoSavedState,
		SnapshotMismatch: s.SnapshotMismatch,
	}
}
