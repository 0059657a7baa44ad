package state_test

import (
	"net/http"
	"testing"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	groupModel "frontdesk/internal/domains/group/model"
	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/stay/state"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)

func fixture() state.State {
	return state.State{
		Rooms: []roomModel.Room{
			{ID: "A101", Number: "101", Block: "AYODHYA", Type: "DELUXE ROOM", Price: 3500, Status: roomModel.StatusOccupied, CurrentBookingID: "B-act01"},
			{ID: "A102", Number: "102", Block: "AYODHYA", Type: "DELUXE ROOM", Price: 3500, Status: roomModel.StatusVacant},
			{ID: "A103", Number: "103", Block: "AYODHYA", Type: "DELUXE ROOM", Price: 3500, Status: roomModel.StatusDirty},
			{ID: "A104", Number: "104", Block: "AYODHYA", Type: "DELUXE ROOM", Price: 3500, Status: roomModel.StatusRepair},
			{ID: "M101", Number: "101", Block: "MITHILA", Type: "STANDARD ROOM", Price: 2500, Status: roomModel.StatusVacant},
			{ID: "M102", Number: "102", Block: "MITHILA", Type: "STANDARD ROOM", Price: 2500, Status: roomModel.StatusOccupied, CurrentBookingID: "B-act02"},
		},
		Guests: []guestModel.Guest{
			{ID: "G-1", Name: "Ravi Kumar", Phone: "9876543210"},
		},
		Bookings: []bookingModel.Booking{
			{
				ID: "B-act01", BookingNo: "BK-AAAAAA", RoomID: "A101", GuestID: "G-1", GroupID: "GRP-1",
				Status: bookingModel.StatusActive, CheckInDate: "2024-05-30", CheckOutDate: "2024-06-01", BasePrice: 2500,
			},
			{
				ID: "B-act02", BookingNo: "BK-BBBBBB", RoomID: "M102", GuestID: "G-1", GroupID: "GRP-1",
				Status: bookingModel.StatusActive, CheckInDate: "2024-05-30", CheckOutDate: "2024-06-01", BasePrice: 2500,
			},
			{
				ID: "B-res01", BookingNo: "BK-CCCCCC", RoomID: "M101", GuestID: "G-1", GroupID: "GRP-1",
				Status: bookingModel.StatusReserved, CheckInDate: "2024-06-03", CheckOutDate: "2024-06-05", BasePrice: 2500,
			},
		},
	}
}

func paid(s state.State, bookingIDs ...string) state.State {
	s = s.Clone()

	for i := range s.Bookings {
		for _, id := range bookingIDs {
			if s.Bookings[i].ID == id {
				s.Bookings[i].Payments = append(s.Bookings[i].Payments, bookingModel.Payment{ID: "PAY-x", Amount: 100000})
			}
		}
	}

	return s
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()

	require.Error(t, err)
	assert.Equal(t, code, failure.GetCode(err))
}

func TestCheckIn(t *testing.T) {
	s := fixture()
	s.Bookings[2].CheckInDate = "2024-06-01"

	next, mutation, err := state.CheckIn(s, "B-res01", now)
	require.NoError(t, err)

	booking, _ := next.Booking("B-res01")
	assert.Equal(t, bookingModel.StatusActive, booking.Status)
	assert.Equal(t, "2024-06-01", booking.CheckInDate)
	assert.Equal(t, "14:30", booking.CheckInTime)
	assert.Equal(t, "2024-06-05", booking.CheckOutDate)

	room, _ := next.Room("M101")
	assert.Equal(t, roomModel.StatusOccupied, room.Status)
	assert.Equal(t, "B-res01", room.CurrentBookingID)

	assert.Len(t, mutation.Rooms, 1)
	assert.Len(t, mutation.Bookings, 1)
	require.Len(t, mutation.Events, 1)
	assert.Equal(t, state.EventCheckedIn, mutation.Events[0].Type)

	original, _ := s.Booking("B-res01")
	assert.Equal(t, bookingModel.StatusReserved, original.Status, "input state must be left untouched")
}

func TestCheckIn_LateArrivalKeepsOneNight(t *testing.T) {
	s := fixture()
	s.Bookings[2].CheckOutDate = "2024-05-31"

	next, _, err := state.CheckIn(s, "B-res01", now)
	require.NoError(t, err)

	booking, _ := next.Booking("B-res01")
	assert.Equal(t, "2024-06-02", booking.CheckOutDate)
}

func TestCheckIn_Rejections(t *testing.T) {
	occupiedRoom := fixture()
	occupiedRoom.Bookings[2].RoomID = "A101"

	tests := []struct {
		name      string
		state     state.State
		bookingID string
		wantCode  int
	}{
		{name: "unknown booking", state: fixture(), bookingID: "B-none", wantCode: http.StatusNotFound},
		{name: "already active", state: fixture(), bookingID: "B-act01", wantCode: http.StatusConflict},
		{name: "room held by another stay", state: occupiedRoom, bookingID: "B-res01", wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, mutation, err := state.CheckIn(tt.state, tt.bookingID, now)

			assertCode(t, err, tt.wantCode)
			assert.True(t, mutation.Empty())
			assert.Equal(t, tt.state, next)
		})
	}
}

func TestCheckout_RequiresConfirmationForBalance(t *testing.T) {
	s := fixture()

	next, mutation, err := state.Checkout(s, "B-act01", state.CheckoutOptions{TaxRate: 12}, now)
	assertCode(t, err, http.StatusPreconditionRequired)
	assert.Contains(t, err.Error(), "5600.00")
	assert.True(t, mutation.Empty())
	assert.Equal(t, s, next)

	next, mutation, err = state.Checkout(s, "B-act01", state.CheckoutOptions{TaxRate: 12, Confirmed: true}, now)
	require.NoError(t, err)

	booking, _ := next.Booking("B-act01")
	assert.Equal(t, bookingModel.StatusCompleted, booking.Status)
	assert.Equal(t, "2024-06-01", booking.CheckOutDate)
	assert.Equal(t, "14:30", booking.CheckOutTime)

	room, _ := next.Room("A101")
	assert.Equal(t, roomModel.StatusDirty, room.Status)
	assert.Empty(t, room.CurrentBookingID)

	sibling, _ := next.Booking("B-act02")
	assert.Equal(t, bookingModel.StatusActive, sibling.Status, "single checkout leaves siblings alone")
	require.Len(t, mutation.Events, 1)
	assert.InDelta(t, 5600.0, mutation.Events[0].Amount, 1e-9)
}

func TestCheckout_SettledOrVIPNeedsNoConfirmation(t *testing.T) {
	settled := paid(fixture(), "B-act01")

	_, _, err := state.Checkout(settled, "B-act01", state.CheckoutOptions{TaxRate: 12}, now)
	require.NoError(t, err)

	vip := fixture()
	vip.Bookings[0].IsVIP = true
	vip.Bookings[0].Charges = []bookingModel.Charge{{ID: "CHG-1", Amount: 1000}}

	_, _, err = state.Checkout(vip, "B-act01", state.CheckoutOptions{TaxRate: 12}, now)
	require.NoError(t, err)
}

func TestCheckout_Consolidated(t *testing.T) {
	s := paid(fixture(), "B-act01")

	next, mutation, err := state.Checkout(s, "B-act01", state.CheckoutOptions{TaxRate: 12, Consolidated: true}, now)
	require.NoError(t, err)

	for _, id := range []string{"B-act01", "B-act02"} {
		booking, _ := next.Booking(id)
		assert.Equal(t, bookingModel.StatusCompleted, booking.Status, id)
		assert.Equal(t, "2024-06-01", booking.CheckOutDate, id)
		assert.Equal(t, "14:30", booking.CheckOutTime, id)
	}

	reservation, _ := next.Booking("B-res01")
	assert.Equal(t, bookingModel.StatusReserved, reservation.Status, "reservations in the group are not checked out")

	for _, id := range []string{"A101", "M102"} {
		room, _ := next.Room(id)
		assert.Equal(t, roomModel.StatusDirty, room.Status, id)
	}

	assert.Len(t, mutation.Bookings, 2)
	assert.Len(t, mutation.Rooms, 2)
	assert.Len(t, mutation.Events, 2)
}

func TestCheckout_ConsolidatedBalanceExcludesReservations(t *testing.T) {
	s := fixture()

	_, _, err := state.Checkout(s, "B-act01", state.CheckoutOptions{TaxRate: 12, Consolidated: true}, now)
	assertCode(t, err, http.StatusPreconditionRequired)
	assert.Contains(t, err.Error(), "11200.00")

	_, mutation, err := state.Checkout(s, "B-act01", state.CheckoutOptions{TaxRate: 12, Consolidated: true, Confirmed: true}, now)
	require.NoError(t, err)
	require.Len(t, mutation.Events, 2)
	assert.InDelta(t, 11200.0, mutation.Events[0].Amount, 1e-9)

	totals, ok := state.CheckoutTotals(s, "B-act01", state.CheckoutOptions{TaxRate: 12, Consolidated: true})
	require.True(t, ok)
	assert.Equal(t, 2, totals.Bookings)
	assert.InDelta(t, 11200.0, totals.Balance, 1e-9)
}

func TestCheckout_OnlyActive(t *testing.T) {
	_, _, err := state.Checkout(fixture(), "B-res01", state.CheckoutOptions{Confirmed: true}, now)
	assertCode(t, err, http.StatusConflict)
}

func TestCancelReservation(t *testing.T) {
	s := fixture()

	next, mutation, err := state.CancelReservation(s, "B-res01", now)
	require.NoError(t, err)

	_, found := next.Booking("B-res01")
	assert.False(t, found)
	assert.Len(t, next.Bookings, 2)
	assert.Equal(t, []string{"B-res01"}, mutation.DeletedBookings)
	assert.Empty(t, mutation.Rooms)
	assert.Equal(t, s.Rooms, next.Rooms)

	_, _, err = state.CancelReservation(s, "B-act01", now)
	assertCode(t, err, http.StatusConflict)
}

func TestShiftRoom(t *testing.T) {
	next, mutation, err := state.ShiftRoom(fixture(), "B-act01", "A102", now)
	require.NoError(t, err)

	source, _ := next.Room("A101")
	assert.Equal(t, roomModel.StatusDirty, source.Status)
	assert.Empty(t, source.CurrentBookingID)

	target, _ := next.Room("A102")
	assert.Equal(t, roomModel.StatusOccupied, target.Status)
	assert.Equal(t, "B-act01", target.CurrentBookingID)

	booking, _ := next.Booking("B-act01")
	assert.Equal(t, "A102", booking.RoomID)

	require.Len(t, mutation.Events, 1)
	assert.Equal(t, "A101", mutation.Events[0].FromRoomID)

	again, mutation, err := state.ShiftRoom(next, "B-act01", "A102", now)
	require.NoError(t, err)
	assert.Equal(t, next, again)
	assert.True(t, mutation.Empty())
}

func TestShiftRoom_Rejections(t *testing.T) {
	reservedToday := fixture()
	reservedToday.Bookings[2].CheckInDate = "2024-06-01"

	tests := []struct {
		name     string
		state    state.State
		booking  string
		room     string
		wantCode int
	}{
		{name: "target occupied", state: fixture(), booking: "B-act01", room: "M102", wantCode: http.StatusConflict},
		{name: "target dirty", state: fixture(), booking: "B-act01", room: "A103", wantCode: http.StatusConflict},
		{name: "target under repair", state: fixture(), booking: "B-act01", room: "A104", wantCode: http.StatusConflict},
		{name: "target reserved today", state: reservedToday, booking: "B-act01", room: "M101", wantCode: http.StatusConflict},
		{name: "unknown target", state: fixture(), booking: "B-act01", room: "Z999", wantCode: http.StatusNotFound},
		{name: "reservation cannot shift", state: fixture(), booking: "B-res01", room: "A102", wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, err := state.ShiftRoom(tt.state, tt.booking, tt.room, now)

			assertCode(t, err, tt.wantCode)
			assert.Equal(t, tt.state, next)
		})
	}
}

func TestExtendStay(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantCode int
	}{
		{name: "later date", date: "2024-06-04"},
		{name: "same as check-in", date: "2024-05-30", wantCode: http.StatusBadRequest},
		{name: "before check-in", date: "2024-05-01", wantCode: http.StatusBadRequest},
		{name: "garbage", date: "next friday", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fixture()

			next, mutation, err := state.ExtendStay(s, "B-act01", tt.date, now)
			if tt.wantCode != 0 {
				assertCode(t, err, tt.wantCode)

				booking, _ := next.Booking("B-act01")
				assert.Equal(t, "2024-06-01", booking.CheckOutDate)
				assert.True(t, mutation.Empty())

				return
			}

			require.NoError(t, err)

			booking, _ := next.Booking("B-act01")
			assert.Equal(t, tt.date, booking.CheckOutDate)
			assert.Equal(t, "2024-05-30", booking.CheckInDate)
		})
	}
}

func TestPostChargeAndPayment(t *testing.T) {
	next, mutation, err := state.PostCharge(fixture(), "B-act01", state.ChargeInput{Description: " Laundry ", Amount: 250}, now)
	require.NoError(t, err)

	booking, _ := next.Booking("B-act01")
	require.Len(t, booking.Charges, 1)
	assert.Equal(t, "Laundry", booking.Charges[0].Description)
	assert.Equal(t, "CHG-1717252200000", booking.Charges[0].ID)
	assert.Equal(t, state.EventChargePosted, mutation.Events[0].Type)

	next, _, err = state.PostPayment(next, "B-res01", state.PaymentInput{Amount: 1000}, now)
	require.NoError(t, err, "reservations accept advances")

	reservation, _ := next.Booking("B-res01")
	require.Len(t, reservation.Payments, 1)
	assert.Equal(t, state.DefaultPaymentMethod, reservation.Payments[0].Method)
}

func TestPostChargeAndPayment_Rejections(t *testing.T) {
	vip := fixture()
	vip.Bookings[0].IsVIP = true

	completed := fixture()
	completed.Bookings[0].Status = bookingModel.StatusCompleted

	tests := []struct {
		name     string
		state    state.State
		charge   state.ChargeInput
		payment  state.PaymentInput
		wantCode int
	}{
		{name: "vip", state: vip, charge: state.ChargeInput{Description: "Bar", Amount: 10}, payment: state.PaymentInput{Amount: 10}, wantCode: http.StatusConflict},
		{name: "completed", state: completed, charge: state.ChargeInput{Description: "Bar", Amount: 10}, payment: state.PaymentInput{Amount: 10}, wantCode: http.StatusConflict},
		{name: "non positive", state: fixture(), charge: state.ChargeInput{Description: "Bar"}, payment: state.PaymentInput{Amount: -5}, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, err := state.PostCharge(tt.state, "B-act01", tt.charge, now)
			assertCode(t, err, tt.wantCode)
			assert.Equal(t, tt.state, next)

			next, _, err = state.PostPayment(tt.state, "B-act01", tt.payment, now)
			assertCode(t, err, tt.wantCode)
			assert.Equal(t, tt.state, next)
		})
	}

	_, _, err := state.PostCharge(fixture(), "B-act01", state.ChargeInput{Amount: 10}, now)
	assertCode(t, err, http.StatusBadRequest)
}

func TestAdmit(t *testing.T) {
	group := &groupModel.GroupProfile{ID: "GRP-9", GroupName: "Sharma Wedding"}
	admission := state.Admission{
		Guest: guestModel.Guest{ID: "G-2", Name: "Anita Sharma", Phone: "9000000001"},
		Group: group,
		Bookings: []bookingModel.Booking{
			{ID: "B-new01", RoomID: "A102", GroupID: "GRP-9", Status: bookingModel.StatusActive},
			{ID: "B-new02", RoomID: "A103", GroupID: "GRP-9", Status: bookingModel.StatusActive},
			{ID: "B-new03", RoomID: "A104", GroupID: "GRP-9", Status: bookingModel.StatusReserved, CheckInDate: "2024-06-10"},
		},
	}

	next, mutation, err := state.Admit(fixture(), admission, now)
	require.NoError(t, err)

	for _, id := range []string{"A102", "A103"} {
		room, _ := next.Room(id)
		assert.Equal(t, roomModel.StatusOccupied, room.Status, id)
	}

	repair, _ := next.Room("A104")
	assert.Equal(t, roomModel.StatusRepair, repair.Status, "reservations do not touch the room")

	for _, booking := range mutation.Bookings {
		assert.Equal(t, "G-2", booking.GuestID)
	}

	_, found := next.Guest("G-2")
	assert.True(t, found)
	_, found = next.Group("GRP-9")
	assert.True(t, found)
	assert.Len(t, mutation.Rooms, 2)
	assert.Len(t, mutation.Events, 3)
	assert.Equal(t, state.EventReserved, mutation.Events[2].Type)
}

func TestAdmit_Rejections(t *testing.T) {
	guest := guestModel.Guest{ID: "G-2", Name: "Anita Sharma", Phone: "9000000001"}
	active := func(id, room string) bookingModel.Booking {
		return bookingModel.Booking{ID: id, RoomID: room, Status: bookingModel.StatusActive}
	}

	tests := []struct {
		name      string
		admission state.Admission
		wantCode  int
	}{
		{name: "no rooms", admission: state.Admission{Guest: guest}, wantCode: http.StatusBadRequest},
		{name: "no phone", admission: state.Admission{Guest: guestModel.Guest{ID: "G-2", Name: "Anita"}, Bookings: []bookingModel.Booking{active("B-n1", "A102")}}, wantCode: http.StatusBadRequest},
		{name: "occupied room", admission: state.Admission{Guest: guest, Bookings: []bookingModel.Booking{active("B-n1", "A102"), active("B-n2", "A101")}}, wantCode: http.StatusConflict},
		{name: "repair room", admission: state.Admission{Guest: guest, Bookings: []bookingModel.Booking{active("B-n1", "A104")}}, wantCode: http.StatusConflict},
		{name: "unknown room", admission: state.Admission{Guest: guest, Bookings: []bookingModel.Booking{active("B-n1", "Z999")}}, wantCode: http.StatusNotFound},
		{name: "same room twice", admission: state.Admission{Guest: guest, Bookings: []bookingModel.Booking{active("B-n1", "A102"), active("B-n2", "A102")}}, wantCode: http.StatusBadRequest},
		{name: "duplicate booking id", admission: state.Admission{Guest: guest, Bookings: []bookingModel.Booking{active("B-act01", "A102")}}, wantCode: http.StatusConflict},
		{
			name: "new guest id already issued",
			admission: state.Admission{
				Guest:    guestModel.Guest{ID: "G-1", Name: "Anita Sharma", Phone: "9000000001"},
				NewGuest: true,
				Bookings: []bookingModel.Booking{active("B-n1", "A102")},
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fixture()

			next, mutation, err := state.Admit(s, tt.admission, now)

			assertCode(t, err, tt.wantCode)
			assert.Equal(t, s, next)
			assert.True(t, mutation.Empty())
		})
	}
}

func TestSetRoomStatus(t *testing.T) {
	next, mutation, err := state.SetRoomStatus(fixture(), "A103", roomModel.StatusVacant, now)
	require.NoError(t, err)

	room, _ := next.Room("A103")
	assert.Equal(t, roomModel.StatusVacant, room.Status)
	assert.Len(t, mutation.Rooms, 1)

	_, _, err = state.SetRoomStatus(fixture(), "A101", roomModel.StatusRepair, now)
	assertCode(t, err, http.StatusConflict)

	_, _, err = state.SetRoomStatus(fixture(), "A102", roomModel.StatusOccupied, now)
	assertCode(t, err, http.StatusBadRequest)

	_, _, err = state.SetRoomStatus(fixture(), "A102", roomModel.Status("BROKEN"), now)
	assertCode(t, err, http.StatusBadRequest)
}

func TestUpdateGuest(t *testing.T) {
	next, _, err := state.UpdateGuest(fixture(), guestModel.Guest{ID: "G-1", Name: "Ravi K", Phone: "9876543210", City: "Patna"}, now)
	require.NoError(t, err)

	guest, _ := next.Guest("G-1")
	assert.Equal(t, "Patna", guest.City)

	_, _, err = state.UpdateGuest(fixture(), guestModel.Guest{ID: "G-404", Name: "x", Phone: "1"}, now)
	assertCode(t, err, http.StatusNotFound)
}

func TestLookups(t *testing.T) {
	s := fixture()

	guest, ok := s.GuestByPhone("9876543210")
	require.True(t, ok)
	assert.Equal(t, "G-1", guest.ID)

	_, ok = s.GuestByPhone("")
	assert.False(t, ok)

	history := s.BookingsOfGuest("G-1")
	require.Len(t, history, 3)
	assert.Equal(t, "B-res01", history[0].ID)
}
