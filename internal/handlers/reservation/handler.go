package reservation

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/checkin/model/dto"
	checkInService "frontdesk/internal/domains/checkin/service"
	stayService "frontdesk/internal/domains/stay/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	checkIn checkInService.CheckIn
	stay    stayService.Stay
	otel    otel.Otel
}

func New(checkIn checkInService.CheckIn, stay stayService.Stay, otel otel.Otel) Handler {
	return Handler{
		checkIn: checkIn,
		stay:    stay,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/reservations", handler.Reserve)
	router.Post("/reservations/{id}/check-in", handler.CheckIn)
	router.Delete("/reservations/{id}", handler.Cancel)
}

// Reserve books rooms for a future arrival.
// @Summary Create reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Reservation Request"
// @Success 201 {object} dto.CheckInResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) Reserve(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reserve")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.checkIn.Reserve(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// CheckIn turns a reservation into an active stay.
// @Summary Check in reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} stayDto.StayResponse
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckInReservation")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.stay.CheckIn(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to check in reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Cancel removes a reservation that has not checked in yet.
// @Summary Cancel reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	if err := handler.stay.CancelReservation(ctx, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Reservation cancelled")
}
