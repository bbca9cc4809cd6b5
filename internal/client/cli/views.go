package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/cart"
	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/guard"
)

func (a *App) viewHome(ctx context.Context) {
	banners, err := a.api.Banners(ctx)
	if err != nil {
		a.log.Error(ctx, "loading banners", "error", err)
	}
	for _, b := range banners {
		fmt.Fprintf(a.out, "[ %s ] %s  %s\n", b.Title, b.Subtitle, b.ButtonLink)
	}
	a.listProducts(ctx)
}

func (a *App) listProducts(ctx context.Context) {
	products, err := a.api.Products(ctx)
	if err != nil {
		a.log.Error(ctx, "loading products", "error", err)
		fmt.Fprintln(a.out, "products are unavailable right now")
		return
	}
	a.products = products
	if len(products) == 0 {
		fmt.Fprintln(a.out, "no products yet")
		return
	}
	for i, p := range products {
		line := fmt.Sprintf("%2d. %-30s %s %s", i+1, p.Title, p.Price.StringFixed(2), p.Currency)
		if len(p.Colors) > 0 {
			line += "  colors: " + strings.Join(p.Colors, ",")
		}
		if len(p.Sizes) > 0 {
			line += "  sizes: " + strings.Join(p.Sizes, ",")
		}
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) viewCart(ctx context.Context) {
	a.printCart(a.cart.Read(ctx))
}

func (a *App) printCart(items []cart.LineItem) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "your cart is empty")
		return
	}
	for i, it := range items {
		variant := variantLabel(it)
		fmt.Fprintf(a.out, "%2d. %-30s %s x %d = %s %s%s\n",
			i+1, it.Title, it.Price.StringFixed(2), it.Quantity, it.LineTotal().StringFixed(2), it.Currency, variant)
	}
	fmt.Fprintf(a.out, "items: %d  subtotal: %s\n", cart.Count(items), cart.Subtotal(items).StringFixed(2))
}

func variantLabel(it cart.LineItem) string {
	var parts []string
	if it.SelectedColor != nil {
		parts = append(parts, "color="+*it.SelectedColor)
	}
	if it.SelectedSize != nil {
		parts = append(parts, "size="+*it.SelectedSize)
	}
	if len(parts) == 0 {
		return ""
	}
	return "  (" + strings.Join(parts, " ") + ")"
}

func (a *App) viewCheckout(ctx context.Context) {
	id, loading := a.session.Current()
	p := a.gate.Evaluate(id, loading)
	switch p.State {
	case guard.GatePending:
		fmt.Fprintln(a.out, "checking your session...")
	case guard.GatePrompt:
		fmt.Fprintf(a.out, "please sign in to check out: 'go %s' to sign in or 'go %s' to go back\n", p.SignIn, p.Back)
	case guard.GateAllowed:
		items := a.cart.Read(ctx)
		a.printCart(items)
		if len(items) > 0 {
			fmt.Fprintln(a.out, "type 'place [address]' to place the order")
		}
	}
}

func (a *App) viewAdmin(ctx context.Context) {
	id, loading := a.session.Current()
	d := a.admin.Evaluate(ctx, id, loading, a.route)
	switch d.State {
	case guard.Pending:
		fmt.Fprintln(a.out, "checking access...")
	case guard.Admitted:
		fmt.Fprintf(a.out, "admin area (%s)\n", id.Email)
		a.listOrders(ctx, nil)
	case guard.Denied, guard.Absent:
		if d.Redirect == "" {
			fmt.Fprintln(a.out, "admin access required")
		}
	}
}

func (a *App) viewAdminVerify(ctx context.Context) {
	id, loading := a.session.Current()
	if id != nil && !loading {
		if d := a.admin.Evaluate(ctx, id, loading, RouteAdminVerify); d.State == guard.Admitted {
			return
		}
	}
	fmt.Fprintln(a.out, "the admin area is for store staff; sign in with a staff account ('login')")
}

func (a *App) viewLogin(ctx context.Context) {
	id, loading := a.session.Current()
	if id != nil && !loading {
		fmt.Fprintf(a.out, "signed in as %s\n", id.Email)
		return
	}
	fmt.Fprintln(a.out, "type 'login' to sign in")
}
