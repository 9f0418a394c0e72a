package middleware

import (
	"context"
	"net/http"
)

// RespondentHeader carries the per-device respondent ID minted by
// POST /v1/respondents.
const RespondentHeader = "X-Respondent-ID"

// RequireRespondent puts the respondent ID from the header into the
// request context. Test routes cannot work without one.
func RequireRespondent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RespondentHeader)
		if id == "" {
			http.Error(w, `{"error":"missing respondent id"}`, http.StatusBadRequest)
			return
		}
		ctx := context.WithValue(r.Context(), RespondentIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRespondentID extracts the respondent ID from context
func GetRespondentID(ctx context.Context) string {
	if v := ctx.Value(RespondentIDKey); v != nil {
		return v.(string)
	}
	return ""
}
