package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

// SubmitOrderCommandHandler turns a submission into a registered, queued order.
//
// The steps run in this order: look up user and material, check dimensions and
// quantity against the configured limit, check stock, estimate print time,
// build the order, derive its priority, quote it against the value limit,
// consume stock, then register and enqueue it. Any failed check yields a
// rejected OrderResult and leaves registry, queue and stock untouched.
type SubmitOrderCommandHandler struct {
	catalog   ports.Catalog
	store     ports.OrderStore
	ids       OrderIDSource
	estimator HoursEstimator
	pricer    PriceCalculator
	config    ConfigProvider
}

func NewSubmitOrderCommandHandler(
	catalog ports.Catalog,
	store ports.OrderStore,
	ids OrderIDSource,
	estimator HoursEstimator,
	pricer PriceCalculator,
	config ConfigProvider,
) *SubmitOrderCommandHandler {
	return &SubmitOrderCommandHandler{
		catalog:   catalog,
		store:     store,
		ids:       ids,
		estimator: estimator,
		pricer:    pricer,
		config:    config,
	}
}

// Handle returns an error only for infrastructure failures; business
// rejections are reported through the result.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}

	cfg := h.config.Current()

	user, err := h.catalog.GetUser(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return rejected(UserNotFound, fmt.Sprintf("user %q does not exist", cmd.Username())), nil
	}
	if err != nil {
		return OrderResult{}, err
	}

	material, err := h.catalog.GetMaterial(ctx, cmd.MaterialName())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return rejected(MaterialNotFound, fmt.Sprintf("material %q does not exist", cmd.MaterialName())), nil
	}
	if err != nil {
		return OrderResult{}, err
	}

	switch {
	case strings.TrimSpace(cmd.Dimensions()) == "":
		return rejected(DimensionsRequired, "dimensions are required"), nil
	case cmd.Quantity() <= 0:
		return rejected(QuantityNotPositive, fmt.Sprintf("quantity %d is not positive", cmd.Quantity())), nil
	case cmd.Quantity() > cfg.MaxOrderQuantity:
		return rejected(QuantityExceedsLimit,
			fmt.Sprintf("quantity %d exceeds the limit of %d", cmd.Quantity(), cfg.MaxOrderQuantity)), nil
	}

	grams := cmd.Quantity() * services.GramsPerItem
	stock, err := h.catalog.StockGrams(ctx, material.Name())
	if err != nil {
		return OrderResult{}, err
	}
	if stock < grams {
		return rejected(InsufficientStock,
			fmt.Sprintf("%s needs %dg, %dg in stock", material.Name(), grams, stock)), nil
	}

	hours := h.estimator.EstimateHours(cmd.Dimensions(), cmd.Quantity())
	o, err := order.NewOrder(
		h.ids.Next(),
		user,
		material,
		cmd.Dimensions(),
		cmd.Quantity(),
		cmd.SpecialInstructions(),
		hours,
	)
	if err != nil {
		return OrderResult{}, err
	}
	if err = o.SetPriority(services.DerivePriority(o, cfg)); err != nil {
		return OrderResult{}, err
	}

	price := h.pricer.Calculate(o, cfg)
	if cfg.MaxOrderValue.IsPositive() && price.Total.GreaterThan(cfg.MaxOrderValue) {
		return rejected(OrderValueExceedsLimit,
			fmt.Sprintf("order value %s exceeds the limit of %s %s",
				price.Display(), cfg.MaxOrderValue.StringFixed(2), cfg.Currency)), nil
	}

	if err = h.catalog.Consume(ctx, material.Name(), grams); err != nil {
		if errors.Is(err, ports.ErrInsufficientStock) {
			return rejected(InsufficientStock, err.Error()), nil
		}
		return OrderResult{}, err
	}

	h.store.Admit(o)

	return accepted(o.Clone(), price), nil
}
