package checkin

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/checkin/model/dto"
	"frontdesk/internal/domains/checkin/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CheckIn
	otel    otel.Otel
}

func New(service service.CheckIn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/check-ins", handler.CheckIn)
}

// CheckIn registers a walk-in guest into one or more rooms.
// @Summary Walk-in check-in
// @Description Creates one ACTIVE booking per room and occupies the rooms immediately.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-in Request"
// @Success 201 {object} dto.CheckInResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/check-ins [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Guest checked in")

	response.WithJSON(writer, http.StatusCreated, res)
}
