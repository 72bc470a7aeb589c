package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/UmairZakria/gbs-dashboard2/internal/application/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/application/form"
	domain "github.com/UmairZakria/gbs-dashboard2/internal/domain/catalog"
	"github.com/UmairZakria/gbs-dashboard2/internal/domain/shared"
)

func parseDecimal(flag, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("--%s must be a number, got %q", flag, raw))
	}
	return d, nil
}

func positive(flag string, n int) error {
	if n <= 0 {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("--%s must be greater than 0", flag))
	}
	return nil
}

// listAction runs a service call returning a plain slice
func listAction[T domain.Entity](app *App, r *resource[T], use, short string, call func(ctx context.Context) ([]T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := call(cmd.Context())
			if err != nil {
				return err
			}
			return r.printItems(app, items)
		},
	}
}

// done prints the record a workflow call returned
func done[T domain.Entity](app *App, r *resource[T], verb string, rec *T) error {
	if app.jsonOutput() {
		return app.printJSON(rec)
	}
	app.printf("%s %s %s\n", verb, r.singular, (*rec).GetID())
	return nil
}

func seriesActions(app *App, r *resource[domain.BookSeries]) []*cobra.Command {
	var book domain.SeriesBook
	add := &cobra.Command{
		Use:   "add-book <series-id> <book-id>",
		Short: "Add a book to a series",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book.BookID = args[1]
			rec, err := app.Services.Books.AddBookToSeries(cmd.Context(), args[0], book)
			if err != nil {
				return err
			}
			return done(app, r, "Added book to", rec)
		},
	}
	add.Flags().IntVar(&book.Order, "order", 0, "position in the series")
	add.Flags().StringVar(&book.Title, "title", "", "book title")

	remove := &cobra.Command{
		Use:   "remove-book <series-id> <book-id>",
		Short: "Remove a book from a series",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Services.Books.RemoveBookFromSeries(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return done(app, r, "Removed book from", rec)
		},
	}
	return []*cobra.Command{add, remove}
}

func purchaseOrderActions(app *App, r *resource[domain.PurchaseOrder]) []*cobra.Command {
	svc := app.Services.Suppliers

	var approvedBy string
	approve := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending purchase order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := svc.ApproveOrder(cmd.Context(), args[0], approvedBy)
			if err != nil {
				return err
			}
			return done(app, r, "Approved", rec)
		},
	}
	approve.Flags().StringVar(&approvedBy, "by", "", "approver user ID")
	_ = approve.MarkFlagRequired("by")

	order := &cobra.Command{
		Use:   "order <id>",
		Short: "Mark an approved purchase order as sent to the supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := svc.MarkAsOrdered(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return done(app, r, "Ordered", rec)
		},
	}

	var items []string
	receive := &cobra.Command{
		Use:   "receive <id>",
		Short: "Record received quantities",
		Long:  "Record received quantities as --item <line index>=<quantity>. Line indexes start at 0.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairList("item", items)
			if err != nil {
				return err
			}
			if len(pairs) == 0 {
				return shared.NewDomainError("INVALID_INPUT", "at least one --item is required")
			}
			received := make([]domain.ReceivedItem, 0, len(pairs))
			for _, kv := range pairs {
				idx, err := strconv.Atoi(kv[0])
				if err != nil || idx < 0 {
					return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("invalid line index %q", kv[0]))
				}
				qty, err := strconv.Atoi(kv[1])
				if err != nil || qty <= 0 {
					return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("invalid quantity %q for line %d", kv[1], idx))
				}
				received = append(received, domain.ReceivedItem{ItemIndex: idx, Quantity: qty})
			}
			rec, err := svc.ReceiveOrder(cmd.Context(), args[0], received)
			if err != nil {
				return err
			}
			return done(app, r, "Received", rec)
		},
	}
	receive.Flags().StringArrayVar(&items, "item", nil, "received line as index=quantity, repeatable")

	var reason string
	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a purchase order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Confirm(cmd.Context(), "Are you sure you want to cancel this purchase order?") {
				app.printf("Cancelled\n")
				return nil
			}
			rec, err := svc.CancelOrder(cmd.Context(), args[0], reason)
			if err != nil {
				return err
			}
			return done(app, r, "Cancelled", rec)
		},
	}
	cancel.Flags().StringVar(&reason, "reason", "", "cancellation reason")

	return []*cobra.Command{
		approve, order, receive, cancel,
		listAction(app, r, "pending", "List purchase orders awaiting approval", svc.PendingOrders),
		listAction(app, r, "overdue", "List purchase orders past their expected delivery date", svc.OverdueOrders),
	}
}

func warehouseActions(app *App, r *resource[domain.Warehouse]) []*cobra.Command {
	svc := app.Services.Inventory
	primary := &cobra.Command{
		Use:   "primary",
		Short: "Show the primary warehouse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := svc.PrimaryWarehouse(cmd.Context())
			if err != nil {
				return err
			}
			return r.printRecord(app, w)
		},
	}
	return []*cobra.Command{
		listAction(app, r, "active", "List active warehouses", svc.ActiveWarehouses),
		primary,
	}
}

func inventoryActions(app *App, r *resource[domain.InventoryItem]) []*cobra.Command {
	svc := app.Services.Inventory

	var sets []string
	stock := &cobra.Command{
		Use:   "stock <id>",
		Short: "Add or subtract stock",
		Long: `Adjust an item's stock with --set key=value. Keys: operation (add or
subtract), quantity, referenceType, referenceId and notes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parsePairs("set", sets)
			if err != nil {
				return err
			}
			var updated *domain.InventoryItem
			f := form.NewStockAdjustmentForm().OnSubmit(func(ctx context.Context, adj domain.StockAdjustment) error {
				updated, err = svc.UpdateStock(ctx, args[0], adj)
				return err
			})
			if err := setFields(f, values); err != nil {
				return err
			}
			if err := f.Submit(cmd.Context()); err != nil {
				if !errors.Is(err, shared.ErrInvalidInput) {
					app.Metrics.MutationFailed(r.singular, "stock")
				}
				return err
			}
			return done(app, r, "Adjusted", updated)
		},
	}
	stock.Flags().StringArrayVar(&sets, "set", nil, "adjustment field as key=value, repeatable")

	reservation := func(use, short, verb string, call func(context.Context, string, int) (*domain.InventoryItem, error)) *cobra.Command {
		var qty int
		cmd := &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := positive("quantity", qty); err != nil {
					return err
				}
				rec, err := call(cmd.Context(), args[0], qty)
				if err != nil {
					return err
				}
				return done(app, r, verb, rec)
			},
		}
		cmd.Flags().IntVarP(&qty, "quantity", "q", 1, "units")
		return cmd
	}

	var threshold int
	low := &cobra.Command{
		Use:   "low-stock",
		Short: "List items at or below their reorder point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := svc.LowStockItems(cmd.Context(), threshold)
			if err != nil {
				return err
			}
			return r.printItems(app, items)
		},
	}
	low.Flags().IntVar(&threshold, "threshold", 0, "stock threshold (default: each item's reorder point)")

	byID := func(use, short string, call func(context.Context, string) ([]domain.InventoryItem, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				items, err := call(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return r.printItems(app, items)
			},
		}
	}

	return []*cobra.Command{
		stock,
		reservation("reserve", "Reserve stock for an order", "Reserved stock on", svc.ReserveStock),
		reservation("release", "Release reserved stock", "Released stock on", svc.ReleaseReservedStock),
		low,
		byID("by-product <product-id>", "List stock of a product across warehouses", svc.InventoryByProduct),
		byID("by-warehouse <warehouse-id>", "List stock held in a warehouse", svc.InventoryByWarehouse),
	}
}

func giftServiceActions(app *App, r *resource[domain.GiftService]) []*cobra.Command {
	var orderAmount string
	price := &cobra.Command{
		Use:   "price <id>",
		Short: "Calculate a service's price for an order amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimal("order-amount", orderAmount)
			if err != nil {
				return err
			}
			p, err := app.Services.Gifts.CalculateServicePrice(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			if app.jsonOutput() {
				return app.printJSON(map[string]decimal.Decimal{"price": p})
			}
			app.printf("%s\n", money(p))
			return nil
		},
	}
	price.Flags().StringVar(&orderAmount, "order-amount", "0", "order subtotal")
	return []*cobra.Command{price}
}

func giftCardActions(app *App, r *resource[domain.GiftCard]) []*cobra.Command {
	svc := app.Services.Gifts

	byCode := &cobra.Command{
		Use:   "code <code>",
		Short: "Show a gift card by its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := svc.CardByCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return r.printRecord(app, card)
		},
	}

	validate := &cobra.Command{
		Use:   "validate <code>",
		Short: "Check whether a gift card can be redeemed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := svc.ValidateCard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if app.jsonOutput() {
				return app.printJSON(v)
			}
			rows := [][]string{{"Valid", yesNo(v.Valid)}, {"Balance", money(v.Balance)}}
			if v.Message != "" {
				rows = append(rows, []string{"Message", v.Message})
			}
			app.printTable([]string{"Code", args[0]}, rows)
			return nil
		},
	}

	generate := &cobra.Command{
		Use:   "generate-code",
		Short: "Ask the API for an unused gift card code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := svc.GenerateCode(cmd.Context())
			if err != nil {
				return err
			}
			if app.jsonOutput() {
				return app.printJSON(map[string]string{"code": code})
			}
			app.printf("%s\n", code)
			return nil
		},
	}

	var (
		redemption domain.GiftCardRedemption
		useAmount  string
	)
	use := &cobra.Command{
		Use:   "use <code>",
		Short: "Redeem part of a card's balance against an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimal("amount", useAmount)
			if err != nil {
				return err
			}
			if !amount.IsPositive() {
				return shared.NewDomainError("INVALID_INPUT", "--amount must be greater than 0")
			}
			redemption.Amount = amount
			card, err := svc.UseCard(cmd.Context(), args[0], redemption)
			if err != nil {
				return err
			}
			if app.jsonOutput() {
				return app.printJSON(card)
			}
			app.printf("Redeemed %s, balance %s %s\n", money(amount), money(card.CurrentBalance), card.Currency)
			return nil
		},
	}
	use.Flags().StringVar(&useAmount, "amount", "", "amount to redeem")
	use.Flags().StringVar(&redemption.UsedBy, "by", "", "customer ID")
	use.Flags().StringVar(&redemption.OrderID, "order", "", "order ID")
	_ = use.MarkFlagRequired("amount")

	var refundAmount string
	refund := &cobra.Command{
		Use:   "refund <code>",
		Short: "Return an amount to a card's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseDecimal("amount", refundAmount)
			if err != nil {
				return err
			}
			card, err := svc.RefundCard(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			if app.jsonOutput() {
				return app.printJSON(card)
			}
			app.printf("Refunded %s, balance %s %s\n", money(amount), money(card.CurrentBalance), card.Currency)
			return nil
		},
	}
	refund.Flags().StringVar(&refundAmount, "amount", "", "amount to refund")
	_ = refund.MarkFlagRequired("amount")

	expire := &cobra.Command{
		Use:   "expire <code>",
		Short: "Expire a gift card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Confirm(cmd.Context(), "Are you sure you want to expire this gift card?") {
				app.printf("Cancelled\n")
				return nil
			}
			card, err := svc.ExpireCard(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return done(app, r, "Expired", card)
		},
	}

	return []*cobra.Command{byCode, validate, generate, use, refund, expire}
}

// discountFlags binds the order description shared by applicable and calculate
type discountFlags struct {
	products, categories, brands, groups []string
	quantity                             int
	amount                               string
}

func (d *discountFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&d.products, "product", nil, "product IDs")
	cmd.Flags().StringSliceVar(&d.categories, "category", nil, "category IDs")
	cmd.Flags().StringSliceVar(&d.brands, "brand", nil, "brand IDs")
	cmd.Flags().StringSliceVar(&d.groups, "group", nil, "customer group IDs")
	cmd.Flags().IntVar(&d.quantity, "quantity", 1, "item quantity")
	cmd.Flags().StringVar(&d.amount, "amount", "0", "order amount")
}

func (d *discountFlags) request() (domain.DiscountRequest, error) {
	amount, err := parseDecimal("amount", d.amount)
	if err != nil {
		return domain.DiscountRequest{}, err
	}
	return domain.DiscountRequest{
		ProductIDs:       d.products,
		CategoryIDs:      d.categories,
		BrandIDs:         d.brands,
		CustomerGroupIDs: d.groups,
		Quantity:         d.quantity,
		OrderAmount:      amount,
	}, nil
}

func pricingActions(app *App, r *resource[domain.PricingRule]) []*cobra.Command {
	svc := app.Services.Pricing

	var applicableFlags discountFlags
	applicable := &cobra.Command{
		Use:   "applicable",
		Short: "List rules that apply to an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := applicableFlags.request()
			if err != nil {
				return err
			}
			rules, err := svc.Applicable(cmd.Context(), catalog.ApplicableQuery(req))
			if err != nil {
				return err
			}
			return r.printItems(app, rules)
		},
	}
	applicableFlags.bind(applicable)

	var calcFlags discountFlags
	calculate := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the best discount for an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := calcFlags.request()
			if err != nil {
				return err
			}
			res, err := svc.CalculateDiscount(cmd.Context(), req)
			if err != nil {
				return err
			}
			if app.jsonOutput() {
				return app.printJSON(res)
			}
			if res.Rule.ID == "" {
				app.printf("No discount applies\n")
				return nil
			}
			app.printf("Discount %s from %s (%s)\n", money(res.Discount), res.Rule.Name, res.Rule.ID)
			return nil
		},
	}
	calcFlags.bind(calculate)

	validate := &cobra.Command{
		Use:   "validate <id>",
		Short: "Check a rule's configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := svc.Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if app.jsonOutput() {
				return app.printJSON(map[string]bool{"valid": ok})
			}
			if ok {
				app.printf("Pricing rule %s is valid\n", args[0])
			} else {
				app.printf("Pricing rule %s is not valid\n", args[0])
			}
			return nil
		},
	}

	return []*cobra.Command{
		listAction(app, r, "active", "List active pricing rules", svc.Active),
		applicable, calculate, validate,
	}
}
