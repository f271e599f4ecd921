package middleware

// contextKey is a private type for context values set by middleware.
// Using a custom type prevents collisions.
type contextKey string

const loggerCtxKey = contextKey("logger")
