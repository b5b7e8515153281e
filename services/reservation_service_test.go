package services

import (
	"testing"

	"aquavalle-backend/config"
	"aquavalle-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFullDayInput(t *testing.T) CreateReservationInput {
	t.Helper()
	return CreateReservationInput{
		Client: ClientInput{
			FullName:   "Ana Perez",
			IDDocument: "V12345678",
			Phone:      "+58 424 1234567",
		},
		Type:        models.TypeFullDay,
		CheckInDate: d(t, "2025-06-10"),
		NumGuests:   15,
	}
}

func validLodgingInput(t *testing.T) CreateReservationInput {
	t.Helper()
	return CreateReservationInput{
		Client: ClientInput{
			FullName:   "Carlos Ruiz",
			IDDocument: "V99999999",
			Phone:      "+58 414 7654321",
		},
		Type:         models.TypeLodging,
		CheckInDate:  d(t, "2025-07-10"),
		CheckOutDate: dp(t, "2025-07-12"),
		NumGuests:    4,
		RoomIDs:      []uint{1},
	}
}

func TestCreateReservationInputValidate(t *testing.T) {
	t.Run("valid fullday", func(t *testing.T) {
		in := validFullDayInput(t)
		require.NoError(t, in.Validate())
	})

	t.Run("valid lodging", func(t *testing.T) {
		in := validLodgingInput(t)
		require.NoError(t, in.Validate())
	})

	cases := []struct {
		name   string
		mutate func(t *testing.T) CreateReservationInput
		code   string
	}{
		{
			"missing document",
			func(t *testing.T) CreateReservationInput {
				in := validFullDayInput(t)
				in.Client.IDDocument = ""
				return in
			},
			CodeValidation,
		},
		{
			"missing name",
			func(t *testing.T) CreateReservationInput {
				in := validFullDayInput(t)
				in.Client.FullName = ""
				return in
			},
			CodeValidation,
		},
		{
			"zero guests",
			func(t *testing.T) CreateReservationInput {
				in := validFullDayInput(t)
				in.NumGuests = 0
				return in
			},
			CodeValidation,
		},
		{
			"fullday over per-request maximum",
			func(t *testing.T) CreateReservationInput {
				in := validFullDayInput(t)
				in.NumGuests = config.MaxFullDayCapacity + 1
				return in
			},
			CodeValidation,
		},
		{
			"fullday with checkout",
			func(t *testing.T) CreateReservationInput {
				in := validFullDayInput(t)
				in.CheckOutDate = dp(t, "2025-06-11")
				return in
			},
			CodeValidation,
		},
		{
			"lodging without checkout",
			func(t *testing.T) CreateReservationInput {
				in := validLodgingInput(t)
				in.CheckOutDate = nil
				return in
			},
			CodeValidation,
		},
		{
			"lodging checkout equals checkin",
			func(t *testing.T) CreateReservationInput {
				in := validLodgingInput(t)
				in.CheckOutDate = dp(t, "2025-07-10")
				return in
			},
			CodeValidation,
		},
		{
			"lodging checkout before checkin",
			func(t *testing.T) CreateReservationInput {
				in := validLodgingInput(t)
				in.CheckOutDate = dp(t, "2025-07-09")
				return in
			},
			CodeValidation,
		},
		{
			"lodging without rooms",
			func(t *testing.T) CreateReservationInput {
				in := validLodgingInput(t)
				in.RoomIDs = nil
				return in
			},
			CodeValidation,
		},
		{
			"unknown type",
			func(t *testing.T) CreateReservationInput {
				in := validFullDayInput(t)
				in.Type = "daytrip"
				return in
			},
			CodeValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.mutate(t)
			err := in.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.code, AsAppError(err).Code)
		})
	}
}

func TestBusinessConstants(t *testing.T) {
	assert.Equal(t, 5.0, config.FullDayPricePerGuest)
	assert.Equal(t, 20, config.MaxFullDayCapacity)
}

func TestFullDayPrice(t *testing.T) {
	assert.Equal(t, 75.0, FullDayPrice(15))
	assert.Equal(t, 5.0, FullDayPrice(1))
	assert.Equal(t, 100.0, FullDayPrice(20))
}

func TestLodgingPrice(t *testing.T) {
	rooms := []models.Room{
		{Name: "Pacho", PricePerNight: 70},
		{Name: "D'Jesus", PricePerNight: 80},
	}

	assert.Equal(t, 150.0, LodgingPrice(rooms, 1))
	assert.Equal(t, 450.0, LodgingPrice(rooms, 3))
	assert.Equal(t, 140.0, LodgingPrice(rooms[:1], 2))
	assert.Equal(t, 0.0, LodgingPrice(nil, 3))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusPending, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCompleted, models.StatusConfirmed, false},
		{models.StatusPending, models.StatusPending, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}
