package sync

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/sync/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Sync
	otel    otel.Otel
}

func New(service service.Sync, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/sync", func(r chi.Router) {
		r.Post("/pull", handler.Pull)
		r.Post("/push", handler.Push)
	})
}

// Pull copies every table from the remote store into the local one
// @Summary Pull from remote
// @Tags Sync
// @Produce json
// @Success 200 {object} model.Report
// @Failure 409 {object} response.Error
// @Router /v1/sync/pull [post]
// @Security BearerAuth
func (handler *Handler) Pull(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Pull")
	defer scope.End()

	res, err := handler.service.Pull(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to pull from remote")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Push copies every local table to the remote store
// @Summary Push to remote
// @Tags Sync
// @Produce json
// @Success 200 {object} model.Report
// @Failure 409 {object} response.Error
// @Router /v1/sync/push [post]
// @Security BearerAuth
func (handler *Handler) Push(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Push")
	defer scope.End()

	res, err := handler.service.Push(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to push to remote")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
