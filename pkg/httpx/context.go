package httpx

import "context"

type ctxKey string

const (
	CtxKeyOriginID ctxKey = "origin_id"
	CtxKeyClaims   ctxKey = "claims"
)

// OriginIDFromContext returns the authenticated origin id, if any.
func OriginIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyOriginID).(string)
	return id, ok && id != ""
}
