package services

import (
	"testing"

	"aquavalle-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlockInputValidate(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		in := CreateBlockInput{
			StartDate: d(t, "2025-07-01"),
			EndDate:   d(t, "2025-07-05"),
			BlockType: models.BlockMaintenance,
		}
		require.NoError(t, in.Validate())
	})

	t.Run("single-day block", func(t *testing.T) {
		in := CreateBlockInput{
			StartDate: d(t, "2025-07-01"),
			EndDate:   d(t, "2025-07-01"),
			BlockType: models.BlockPrivateEvent,
		}
		require.NoError(t, in.Validate())
	})

	t.Run("end before start", func(t *testing.T) {
		in := CreateBlockInput{
			StartDate: d(t, "2025-07-05"),
			EndDate:   d(t, "2025-07-01"),
			BlockType: models.BlockOther,
		}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, CodeValidation, AsAppError(err).Code)
	})

	t.Run("unknown block type", func(t *testing.T) {
		in := CreateBlockInput{
			StartDate: d(t, "2025-07-01"),
			EndDate:   d(t, "2025-07-05"),
			BlockType: "renovation",
		}
		err := in.Validate()
		require.Error(t, err)
		assert.Equal(t, CodeValidation, AsAppError(err).Code)
	})
}
