package constant

const (
	// UserIDHeader carries the authenticated user id. It is set by the upstream
	// authentication gateway and trusted as-is.
	UserIDHeader = "X-Mutabaah-User-ID"

	// AdminAuthorizationRealm is the prefix of the `Authorization` header value on admin routes.
	AdminAuthorizationRealm = "Bearer"
)
