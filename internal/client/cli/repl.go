package cli

import (
	"context"
	"fmt"
	"strings"
)

const helpText = `commands:
  go <route>                      open a page (/, /cart, /checkout, /admin, /login)
  back                            previous page
  products                        list products
  add <n|id> [qty] [color] [size] add a product to the cart ('-' skips a variant)
  remove <line>                   remove a cart line
  qty <line> <quantity>           set a cart line quantity
  cart | checkout | admin         shortcuts for go /cart, /checkout, /admin
  place [address]                 place the order (on /checkout)
  content <categories|blogs|site-info>
  login | logout | whoami
  orders [field=value ...]        list orders (admin)
  order-set <id> field=value ...  update order fields (admin)
  order-delete <id>               delete an order (admin)
  exit | quit`

func (a *App) prompt() string {
	who := "guest"
	if id, _ := a.session.Current(); id != nil {
		who = id.Email
	}
	return fmt.Sprintf("ecomus %s %s> ", who, a.route)
}

func (a *App) repl(ctx context.Context) {
	for {
		a.drainCartUpdates()
		fmt.Fprint(a.out, a.prompt())

		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		if !a.dispatch(ctx, strings.Fields(line)) {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// dispatch runs one command; false means the user asked to leave.
func (a *App) dispatch(ctx context.Context, parts []string) bool {
	if len(parts) == 0 {
		return true
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help", "?":
		fmt.Fprintln(a.out, helpText)
	case "go":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "usage: go <route>")
			break
		}
		a.navigate(ctx, args[0])
	case "back":
		a.back(ctx)
	case "home":
		a.navigate(ctx, RouteHome)
	case "cart":
		a.navigate(ctx, RouteCart)
	case "checkout":
		a.navigate(ctx, RouteCheckout)
	case "admin":
		a.navigate(ctx, RouteAdmin)
	case "products":
		a.listProducts(ctx)
	case "add":
		a.cmdAdd(ctx, args)
	case "remove", "rm":
		a.cmdRemove(ctx, args)
	case "qty":
		a.cmdQuantity(ctx, args)
	case "place":
		a.cmdPlace(ctx, args)
	case "content":
		a.cmdContent(ctx, args)
	case "login":
		a.cmdLogin(ctx)
	case "logout":
		a.cmdLogout(ctx)
	case "whoami":
		a.cmdWhoami()
	case "orders":
		a.cmdOrders(ctx, args)
	case "order-set":
		a.cmdOrderSet(ctx, args)
	case "order-delete":
		a.cmdOrderDelete(ctx, args)
	case "exit", "quit":
		fmt.Fprintln(a.out, "bye")
		return false
	default:
		fmt.Fprintf(a.out, "unknown command: %s\n", cmd)
	}
	return true
}

func (a *App) drainCartUpdates() {
	if a.watcher == nil {
		return
	}
	select {
	case items := <-a.watcher.Updates():
		fmt.Fprintln(a.out, "cart changed in another window")
		if a.route == RouteCart || a.route == RouteCheckout {
			a.printCart(items)
		}
	default:
	}
}
