package guest

import (
	"net/http"

	"frontdesk/infras/otel"
	checkInService "frontdesk/internal/domains/checkin/service"
	"frontdesk/internal/domains/stay/model/dto"
	stayService "frontdesk/internal/domains/stay/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formDocumentName = "name"

type Handler struct {
	stay    stayService.Stay
	checkIn checkInService.CheckIn
	otel    otel.Otel
}

func New(stay stayService.Stay, checkIn checkInService.CheckIn, otel otel.Otel) Handler {
	return Handler{
		stay:    stay,
		checkIn: checkIn,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/{phone}/history", handler.GetHistory)
		routerGroup.Put("/{id}", handler.UpdateGuest)
		routerGroup.Post("/{id}/documents", handler.UploadDocument)
	})
}

// GetHistory returns a returning guest and their past bookings.
// @Summary Get guest history
// @Tags Guest
// @Produce json
// @Param phone path string true "Guest phone"
// @Success 200 {object} dto.GuestHistoryResponse
// @Failure 404 {object} response.Error
// @Router /v1/guests/{phone}/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestHistory")
	defer scope.End()

	phone := chi.URLParam(request, constant.RequestParamPhone)

	res, err := handler.stay.GuestHistory(ctx, phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateGuest edits a guest's registration details.
// @Summary Update guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} guestModel.Guest
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	req := dto.UpdateGuestRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.stay.UpdateGuest(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UploadDocument stores an identity document image for a guest.
// @Summary Upload guest document
// @Tags Guest
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Guest ID"
// @Param name formData string true "Document name"
// @Param file formData file true "Document image"
// @Success 200 {object} guestModel.Guest
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id}/documents [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadGuestDocument")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	if err = validator.ValidateVar(*fileHeader, "mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	guestID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.checkIn.UploadGuestDocument(ctx, guestID, request.FormValue(formDocumentName), file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("guestId", guestID).Msg("failed to upload guest document")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
