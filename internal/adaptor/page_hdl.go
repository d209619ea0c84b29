package adaptor

import (
	"net/http"
	"os"
	"path/filepath"

	"micron-api/pkg/utils"

	"go.uber.org/zap"
)

// Pages lists the gated frontend pages, each served from <dir>/<name>.html.
var Pages = []string{"index", "withdraw", "invest", "team", "recharge"}

type PageHandler struct {
	dir string
	log *zap.Logger
}

func NewPageHandler(dir string, log *zap.Logger) *PageHandler {
	return &PageHandler{
		dir: dir,
		log: log.With(zap.String("handler", "page")),
	}
}

// Serve returns a handler for GET /api/{name}
func (h *PageHandler) Serve(name string) http.HandlerFunc {
	file := filepath.Join(h.dir, name+".html")

	return func(w http.ResponseWriter, r *http.Request) {
		info, err := os.Stat(file)
		if err != nil || info.IsDir() {
			h.log.Warn("Page not available", zap.String("page", name), zap.Error(err))
			utils.ResponseNotFound(w, "Page not found")
			return
		}

		http.ServeFile(w, r, file)
	}
}
