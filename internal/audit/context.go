package audit

import "context"

type clientIPKey struct{}

// WithClientIP returns a context carrying the client IP for audit entries.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIPFromContext returns the client IP stored by WithClientIP, or
// "unknown". Satisfies IPExtractor.
func ClientIPFromContext(ctx context.Context) string {
	ip, ok := ctx.Value(clientIPKey{}).(string)
	if !ok || ip == "" {
		return "unknown"
	}
	return ip
}
