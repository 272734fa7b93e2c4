package health

import (
	"net/http"

	"dinoreserve/config"
	"dinoreserve/infras/postgres"
	"dinoreserve/shared/constant"
	"dinoreserve/shared/failure"
	"dinoreserve/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	db  *postgres.Connection
	cfg *config.Config
}

func New(db *postgres.Connection, cfg *config.Config) Handler {
	return Handler{
		db:  db,
		cfg: cfg,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/", handler.Welcome)
	r.Get("/health", handler.Health)
}

// Welcome greets API callers.
// @Summary Welcome
// @Description Welcome message for the reservation API.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Router / [get]
func (handler *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, "Welcome to "+handler.cfg.App.Name)
}

// Health reports service readiness.
// @Summary Health check
// @Description Check database connectivity.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Error
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := handler.db.Read.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed on read connection")
		response.WithError(w, &failure.Failure{Code: http.StatusServiceUnavailable, Message: constant.ResponseErrorUnhealthy})

		return
	}

	if err := handler.db.Write.PingContext(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed on write connection")
		response.WithError(w, &failure.Failure{Code: http.StatusServiceUnavailable, Message: constant.ResponseErrorUnhealthy})

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
