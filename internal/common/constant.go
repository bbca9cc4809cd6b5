// Package common holds constants and sentinel errors shared by the storefront
// server and the terminal client.
package common

const (
	// AuthorizationHeader carries "Bearer <token>" on authenticated requests.
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
)

// Client-local storage keys.
const (
	CartStorageKey        = "cart"
	AccessTokenStorageKey = "access_token"
)
