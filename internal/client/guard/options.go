package guard

type options struct {
	fallback string
	landing  string
	entry    []string
}

func defaultOptions() options {
	return options{
		fallback: DefaultFallbackRoute,
		landing:  DefaultLandingRoute,
		entry:    []string{DefaultFallbackRoute, LoginRoute},
	}
}

type Option func(*options)

// WithFallbackRoute sets where denied and anonymous visitors are sent.
func WithFallbackRoute(route string) Option {
	return func(o *options) { o.fallback = route }
}

// WithLandingRoute sets where an admitted visitor on an entry route goes.
func WithLandingRoute(route string) Option {
	return func(o *options) { o.landing = route }
}

func WithEntryRoutes(routes ...string) Option {
	return func(o *options) { o.entry = append([]string(nil), routes...) }
}
