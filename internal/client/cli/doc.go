// Package cli is the interactive terminal storefront.
//
// Views are addressed by routes (/, /cart, /checkout, /admin,
// /admin-verify, /login). The admin routes sit behind guard.AdminGuard, the
// checkout behind guard.LoginGate. A cart watcher reports cart changes made
// by other client processes sharing the same storage file; the notice is
// shown before the next prompt.
package cli
