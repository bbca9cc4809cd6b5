package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Shahriar-Fardows/ecomus-sub001/internal/client/guard"
)

// requireAdmin runs the admin guard for the current identity and reports
// whether admin commands may proceed.
func (a *App) requireAdmin(ctx context.Context) bool {
	id, loading := a.session.Current()
	d := a.admin.Evaluate(ctx, id, loading, a.route)
	if d.State != guard.Admitted {
		if d.Redirect != "" {
			a.navigate(ctx, a.route)
		} else if d.State != guard.Pending {
			fmt.Fprintln(a.out, "admin access required")
		}
		return false
	}
	return true
}

func parsePairs(args []string) (map[string]string, bool) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}

func (a *App) cmdOrders(ctx context.Context, args []string) {
	if !a.requireAdmin(ctx) {
		return
	}
	filter, ok := parsePairs(args)
	if !ok {
		fmt.Fprintln(a.out, "usage: orders [field=value ...]")
		return
	}
	a.listOrders(ctx, filter)
}

func (a *App) listOrders(ctx context.Context, filter map[string]string) {
	orders, err := a.api.Orders(ctx, filter)
	if err != nil {
		a.log.Error(ctx, "loading orders", "error", err)
		fmt.Fprintln(a.out, "orders are unavailable right now")
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "no orders")
		return
	}
	for _, o := range orders {
		fmt.Fprintf(a.out, "%v  %v  %v  %v\n", o["_id"], o["email"], o["status"], o["subtotal"])
	}
}

func (a *App) cmdOrderSet(ctx context.Context, args []string) {
	if !a.requireAdmin(ctx) {
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(a.out, "usage: order-set <id> field=value ...")
		return
	}
	pairs, ok := parsePairs(args[1:])
	if !ok {
		fmt.Fprintln(a.out, "usage: order-set <id> field=value ...")
		return
	}

	set := make(map[string]any, len(pairs))
	keys := make([]string, 0, len(pairs))
	for k, v := range pairs {
		set[k] = jsonValue(v)
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res, err := a.api.UpdateOrder(ctx, args[0], set)
	if err != nil {
		a.log.Error(ctx, "updating order", "id", args[0], "error", err)
		fmt.Fprintln(a.out, "update failed")
		return
	}
	fmt.Fprintf(a.out, "matched %d, modified %d (%s)\n", res.MatchedCount, res.ModifiedCount, strings.Join(keys, ", "))
}

// jsonValue lets admins type numbers, booleans and quoted strings; anything
// that is not valid JSON is kept as a plain string.
func jsonValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}

func (a *App) cmdOrderDelete(ctx context.Context, args []string) {
	if !a.requireAdmin(ctx) {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: order-delete <id>")
		return
	}
	n, err := a.api.DeleteOrder(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "deleting order", "id", args[0], "error", err)
		fmt.Fprintln(a.out, "delete failed")
		return
	}
	fmt.Fprintf(a.out, "deleted %d\n", n)
}
