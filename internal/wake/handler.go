package wake

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	successBody  = "Display wake signal sent\n"
	notFoundBody = "Not found. Use POST /wake\n"
)

type HandlerParams struct {
	fx.In

	Deliverer Deliverer
	Config    Config
	Log       *zap.Logger
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		deliverer: params.Deliverer,
		target:    params.Config.Target,
		signal:    params.Config.Signal,
		log:       params.Log,
	}
}

// Handler serves the wake endpoint. The surface is a single fixed
// route, so dispatch is an explicit match on (method, path) rather
// than a router.
//
// Per-request events are logged at debug level only, so that a
// long-running deployment does not flood the journal at the default
// level.
type Handler struct {
	deliverer Deliverer
	target    string
	signal    string
	log       *zap.Logger
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/wake" {
		h.log.Debug("no such route",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		writePlain(w, http.StatusNotFound, notFoundBody)
		return
	}

	if err := h.deliverer.Deliver(r.Context(), h.target, h.signal); err != nil {
		h.log.Debug("signal delivery failed", zap.Error(err))
		writePlain(w, http.StatusInternalServerError, fmt.Sprintf("Error sending signal: %s\n", err))
		return
	}

	h.log.Debug("wake signal sent",
		zap.String("target", h.target),
		zap.String("signal", h.signal),
	)
	writePlain(w, http.StatusOK, successBody)
}

func writePlain(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	io.WriteString(w, body)
}
