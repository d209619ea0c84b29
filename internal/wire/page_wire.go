package wire

import (
	"net/http"

	"micron-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePages(
	r chi.Router,
	pageHandler *adaptor.PageHandler,
	authenticate func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		for _, name := range adaptor.Pages {
			r.Get("/api/"+name, pageHandler.Serve(name))
		}
	})
}
