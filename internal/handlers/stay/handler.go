package stay

import (
	"bytes"
	"fmt"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/stay/model/dto"
	"frontdesk/internal/domains/stay/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stay
	otel    otel.Otel
}

func New(service service.Stay, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/stays/{id}", handler.GetStay)
	router.Post("/stays/{id}/checkout", handler.Checkout)
	router.Post("/stays/{id}/shift", handler.ShiftRoom)
	router.Post("/stays/{id}/extend", handler.ExtendStay)
	router.Post("/stays/{id}/charges", handler.PostCharge)
	router.Post("/stays/{id}/payments", handler.PostPayment)
	router.Get("/stays/{id}/folio", handler.GetFolio)
	router.Get("/stays/{id}/folio/export", handler.ExportFolio)
}

func consolidated(request *http.Request) bool {
	value := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamConsolidated))

	return value != nil && *value
}

// GetStay returns a booking with its folio totals.
// @Summary Get stay
// @Tags Stay
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.StayResponse
// @Failure 404 {object} response.Error
// @Router /v1/stays/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStay")
	defer scope.End()

	res, err := handler.service.GetBooking(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stay")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Checkout closes a stay, or every active stay of its group when consolidated.
// @Summary Checkout
// @Description Refused with 428 while a balance is due unless confirmed is set.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CheckoutRequest true "Checkout Request"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 428 {object} response.Error
// @Router /v1/stays/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	req := dto.CheckoutRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Checkout(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to checkout")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Checked out %d booking(s)", len(res.Bookings)))

	response.WithJSON(writer, http.StatusOK, res)
}

// ShiftRoom moves an open stay to another room.
// @Summary Shift room
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ShiftRoomRequest true "Shift Room Request"
// @Success 200 {object} dto.StayResponse
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/stays/{id}/shift [post]
// @Security BearerAuth
func (handler *Handler) ShiftRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ShiftRoom")
	defer scope.End()

	req := dto.ShiftRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ShiftRoom(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to shift room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExtendStay moves the checkout date of an open stay.
// @Summary Extend stay
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ExtendStayRequest true "Extend Stay Request"
// @Success 200 {object} dto.StayResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/stays/{id}/extend [post]
// @Security BearerAuth
func (handler *Handler) ExtendStay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExtendStay")
	defer scope.End()

	req := dto.ExtendStayRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ExtendStay(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to extend stay")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// PostCharge adds a service charge to an open stay.
// @Summary Post charge
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.ChargeRequest true "Charge Request"
// @Success 201 {object} dto.StayResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/stays/{id}/charges [post]
// @Security BearerAuth
func (handler *Handler) PostCharge(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostCharge")
	defer scope.End()

	req := dto.ChargeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.PostCharge(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to post charge")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// PostPayment records a payment against an open stay.
// @Summary Post payment
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PaymentRequest true "Payment Request"
// @Success 201 {object} dto.StayResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/stays/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) PostPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostPayment")
	defer scope.End()

	req := dto.PaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.PostPayment(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to post payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetFolio returns the folio lines and totals of a stay.
// @Summary Get folio
// @Tags Stay
// @Produce json
// @Param id path string true "Booking ID"
// @Param consolidated query bool false "Bill the whole group"
// @Success 200 {object} billing.Folio
// @Failure 404 {object} response.Error
// @Router /v1/stays/{id}/folio [get]
// @Security BearerAuth
func (handler *Handler) GetFolio(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFolio")
	defer scope.End()

	res, err := handler.service.Folio(ctx, chi.URLParam(request, constant.RequestParamID), consolidated(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get folio")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ExportFolio downloads the folio as a spreadsheet.
// @Summary Export folio
// @Tags Stay
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Booking ID"
// @Param consolidated query bool false "Bill the whole group"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /v1/stays/{id}/folio/export [get]
// @Security BearerAuth
func (handler *Handler) ExportFolio(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportFolio")
	defer scope.End()

	bookingID := chi.URLParam(request, constant.RequestParamID)

	var buf bytes.Buffer

	if err := handler.service.ExportFolio(ctx, &buf, bookingID, consolidated(request)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export folio")

		response.WithError(writer, err)

		return
	}

	response.WithAttachment(writer, constant.ContentTypeXLSX, "folio-"+bookingID+".xlsx", buf.Bytes())
}
