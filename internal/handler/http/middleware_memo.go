package http

import (
	"net/http"

	"github.com/MKhiriev/summarium/internal/utils"
)

// withMemo gives every request its own read cache. Nothing cached survives
// the request.
func withMemo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithMemo(r.Context(), utils.NewMemo())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
