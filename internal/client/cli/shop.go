package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/cart"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/models"
)

// resolveProduct accepts a 1-based index into the last listing or a
// product id.
func (a *App) resolveProduct(ctx context.Context, ref string) (models.Product, error) {
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(a.products) {
		return a.products[n-1], nil
	}
	return a.api.Product(ctx, ref)
}

func variantArg(args []string, i int) *string {
	if i >= len(args) || args[i] == "-" {
		return nil
	}
	return cart.Variant(args[i])
}

func (a *App) cmdAdd(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "usage: add <n|id> [qty] [color] [size]")
		return
	}
	p, err := a.resolveProduct(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "loading product", "ref", args[0], "error", err)
		fmt.Fprintln(a.out, "product not found")
		return
	}

	qty := 1
	if len(args) > 1 {
		if qty, err = strconv.Atoi(args[1]); err != nil {
			fmt.Fprintln(a.out, "quantity must be a number")
			return
		}
	}

	// "add 1 0" adds one unit; Add reads a zero quantity as unspecified.
	items, err := a.cart.Add(ctx, p, qty, variantArg(args, 2), variantArg(args, 3))
	if err != nil {
		fmt.Fprintln(a.out, "could not save your cart")
		return
	}
	fmt.Fprintf(a.out, "added %s (cart: %d items)\n", p.Title, cart.Count(items))
}

// cartLine returns the 1-based line from the current cart.
func (a *App) cartLine(ctx context.Context, ref string) (cart.LineItem, bool) {
	items := a.cart.Read(ctx)
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(items) {
		fmt.Fprintln(a.out, "no such cart line")
		return cart.LineItem{}, false
	}
	return items[n-1], true
}

func (a *App) cmdRemove(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: remove <line>")
		return
	}
	it, ok := a.cartLine(ctx, args[0])
	if !ok {
		return
	}
	items, err := a.cart.Remove(ctx, it.ID, it.SelectedColor, it.SelectedSize)
	if err != nil {
		fmt.Fprintln(a.out, "could not save your cart")
		return
	}
	a.printCart(items)
}

func (a *App) cmdQuantity(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: qty <line> <quantity>")
		return
	}
	it, ok := a.cartLine(ctx, args[0])
	if !ok {
		return
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(a.out, "quantity must be a number")
		return
	}
	items, err := a.cart.UpdateQuantity(ctx, it.ID, qty, it.SelectedColor, it.SelectedSize)
	if err != nil {
		fmt.Fprintln(a.out, "could not save your cart")
		return
	}
	a.printCart(items)
}

// cmdPlace posts the cart as an order and then removes the purchased lines
// one at a time.
func (a *App) cmdPlace(ctx context.Context, args []string) {
	if a.route != RouteCheckout {
		fmt.Fprintln(a.out, "open the checkout first ('checkout')")
		return
	}
	id, loading := a.session.Current()
	if id == nil || loading {
		a.viewCheckout(ctx)
		return
	}

	items := a.cart.Read(ctx)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "your cart is empty")
		return
	}

	order := models.Order{
		Email:     id.Email,
		Status:    "pending",
		Items:     make([]models.OrderLine, 0, len(items)),
		Subtotal:  cart.Subtotal(items),
		Currency:  items[0].Currency,
		Address:   strings.Join(args, " "),
		CreatedAt: time.Now().UTC(),
	}
	for _, it := range items {
		order.Items = append(order.Items, models.OrderLine{
			ProductID:     it.ID,
			Title:         it.Title,
			Price:         it.Price,
			Currency:      it.Currency,
			Quantity:      it.Quantity,
			SelectedColor: it.SelectedColor,
			SelectedSize:  it.SelectedSize,
		})
	}

	orderID, err := a.api.CreateOrder(ctx, order)
	if err != nil {
		a.log.Error(ctx, "placing order", "error", err)
		fmt.Fprintln(a.out, "could not place the order, please try again")
		return
	}

	for _, it := range items {
		if _, err := a.cart.Remove(ctx, it.ID, it.SelectedColor, it.SelectedSize); err != nil {
			a.log.Warn(ctx, "clearing purchased line", "product", it.ID, "error", err)
		}
	}
	fmt.Fprintf(a.out, "order %s placed\n", orderID)
}

func (a *App) cmdContent(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: content <categories|blogs|site-info>")
		return
	}
	switch args[0] {
	case "categories", "blogs", "site-info":
	default:
		fmt.Fprintf(a.out, "unknown content: %s\n", args[0])
		return
	}
	raw, err := a.api.Content(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "loading content", "name", args[0], "error", err)
		fmt.Fprintln(a.out, "content is unavailable right now")
		return
	}
	fmt.Fprintln(a.out, string(raw))
}
