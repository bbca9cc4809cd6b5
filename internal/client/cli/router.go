package cli

import (
	"context"
	"fmt"
)

const (
	RouteHome        = "/"
	RouteCart        = "/cart"
	RouteCheckout    = "/checkout"
	RouteAdmin       = "/admin"
	RouteAdminVerify = "/admin-verify"
	RouteLogin       = "/login"
)

// maxHops bounds redirect chains triggered while rendering.
const maxHops = 4

// Redirect implements guard.Navigator.
func (a *App) Redirect(route string) {
	if route == a.route {
		return
	}
	fmt.Fprintf(a.out, "-> %s\n", route)
	a.previous, a.route = a.route, route
}

// navigate switches to route and renders it, following any redirects the
// view triggers. Entering a different route mounts it afresh, so the admin
// guard evaluates again instead of replaying its last decision.
func (a *App) navigate(ctx context.Context, route string) {
	if route != a.route {
		a.previous, a.route = a.route, route
		a.admin.Reset()
	}
	for hop := 0; hop < maxHops; hop++ {
		current := a.route
		a.render(ctx)
		if a.route == current {
			return
		}
	}
	a.log.Warn(ctx, "redirect chain too long", "route", a.route)
}

func (a *App) render(ctx context.Context) {
	switch a.route {
	case RouteHome:
		a.viewHome(ctx)
	case RouteCart:
		a.viewCart(ctx)
	case RouteCheckout:
		a.viewCheckout(ctx)
	case RouteAdmin:
		a.viewAdmin(ctx)
	case RouteAdminVerify:
		a.viewAdminVerify(ctx)
	case RouteLogin:
		a.viewLogin(ctx)
	default:
		fmt.Fprintf(a.out, "no such page: %s\n", a.route)
	}
}

func (a *App) back(ctx context.Context) {
	target := a.previous
	if target == "" || target == a.route {
		target = RouteHome
	}
	a.navigate(ctx, target)
}
