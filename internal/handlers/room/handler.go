package room

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/allocation"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/stay/model/dto"
	"frontdesk/internal/domains/stay/service"
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
	router.Get("/rooms", handler.GetRooms)
	router.Get("/rooms/board", handler.GetBoard)
	router.Put("/rooms/{id}/status", handler.SetRoomStatus)
}

func filterFromQuery(request *http.Request) allocation.Filter {
	query := request.URL.Query()

	return allocation.Filter{
		Status: roomModel.Status(query.Get(constant.RequestParamStatus)),
		Block:  query.Get(constant.RequestParamBlock),
	}
}

// GetRooms lists rooms with their effective status.
// @Summary Get rooms
// @Description Rooms sorted by block, floor and number with the status derived from live bookings.
// @Tags Room
// @Produce json
// @Param status query string false "Effective status"
// @Param block query string false "Block"
// @Success 200 {object} []allocation.View
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.Rooms(ctx, filterFromQuery(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBoard returns the room board grouped by block and floor.
// @Summary Get room board
// @Tags Room
// @Produce json
// @Param status query string false "Effective status"
// @Param block query string false "Block"
// @Success 200 {object} allocation.Board
// @Router /v1/rooms/board [get]
// @Security BearerAuth
func (handler *Handler) GetBoard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBoard")
	defer scope.End()

	res, err := handler.service.Board(ctx, filterFromQuery(request))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room board")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SetRoomStatus changes the stored status of a room (housekeeping).
// @Summary Set room status
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.RoomStatusRequest true "Room Status Request"
// @Success 200 {object} roomModel.Room
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) SetRoomStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetRoomStatus")
	defer scope.End()

	req := dto.RoomStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	roomID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.SetRoomStatus(ctx, roomID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to set room status")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyLoginID).(string)
	scope.AddEvent("Room status changed by " + user)

	response.WithJSON(writer, http.StatusOK, res)
}
