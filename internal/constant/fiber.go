package constant

const (
	ContextKeyRequestID  = "requestid"
	ContextKeyUserID     = "userid"
	ContextKeyTranslator = "T"

	// ContextKeySentryHub is where fibersentry stores the request hub.
	ContextKeySentryHub = "sentry-hub"

	RequestIDHeader = "X-Mutabaah-Request-ID"
)
