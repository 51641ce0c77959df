package constant

type Locale string

const (
	LocaleFR Locale = "FR"
	LocaleEN Locale = "EN"
)

type contextKey string

// SessionIDKey holds the admin session id placed on the request context by the auth middleware.
const SessionIDKey contextKey = "session_id"

const (
	ShopSortName       = "name"
	ShopSortCreatedAt  = "createdAt"
	ShopSortNbProducts = "nbProducts"
)

// ShopSortKeys lists the sort keys accepted by the shops endpoint.
var ShopSortKeys = []string{ShopSortName, ShopSortCreatedAt, ShopSortNbProducts}

const (
	ShopPageSize   = 9
	OptionPageSize = 10

	// NoneLabel is the placeholder entry of the shop and category pickers.
	NoneLabel = "Aucune"
)
