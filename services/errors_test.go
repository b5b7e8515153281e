package services

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	capErr := ErrCapacityExceeded("2025-06-10", 5)
	assert.Equal(t, CodeCapacityExceeded, capErr.Code)
	assert.Equal(t, http.StatusConflict, capErr.HTTPStatus)
	assert.Equal(t, 5, capErr.Details["available_capacity"])
	assert.Equal(t, "2025-06-10", capErr.Details["date"])

	roomErr := ErrRoomUnavailable(3, "Pacho")
	assert.Equal(t, CodeRoomUnavailable, roomErr.Code)
	assert.Equal(t, uint(3), roomErr.Details["room_id"])
	assert.Equal(t, "Pacho", roomErr.Details["room_name"])

	idErr := ErrIdentityConflict("V99999999", "Carlos Ruiz")
	assert.Equal(t, CodeIdentityConflict, idErr.Code)
	assert.Equal(t, "Carlos Ruiz", idErr.Details["stored_name"])

	nf := ErrNotFound("reservation")
	assert.Equal(t, http.StatusNotFound, nf.HTTPStatus)
	assert.Contains(t, nf.Message, "reservation")

	val := ErrValidation("check_out_date must be after check_in_date")
	assert.Equal(t, http.StatusBadRequest, val.HTTPStatus)
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	storeErr := ErrStore(cause)

	assert.Equal(t, CodeStore, storeErr.Code)
	assert.ErrorIs(t, storeErr, cause)
	assert.Contains(t, storeErr.Error(), "connection refused")
}

func TestAsAppError(t *testing.T) {
	appErr := ErrValidation("bad input")
	assert.Same(t, appErr, AsAppError(appErr))

	wrapped := fmt.Errorf("creating booking: %w", appErr)
	assert.Same(t, appErr, AsAppError(wrapped))

	plain := errors.New("boom")
	converted := AsAppError(plain)
	require.NotNil(t, converted)
	assert.Equal(t, CodeStore, converted.Code)
	assert.Equal(t, http.StatusInternalServerError, converted.HTTPStatus)
}
