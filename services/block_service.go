package services

import (
	"time"

	"aquavalle-backend/models"

	"gorm.io/gorm"
)

// BlockService maintains the administrative availability overlay. Blocks
// have no update operation: changing one is delete-then-recreate.
type BlockService struct {
	DB *gorm.DB
}

func NewBlockService(db *gorm.DB) *BlockService {
	return &BlockService{DB: db}
}

// CreateBlockInput carries a new block. RoomID nil means every room.
type CreateBlockInput struct {
	RoomID        *uint
	StartDate     time.Time
	EndDate       time.Time
	BlockType     string
	Reason        string
	BlocksFullDay bool
}

func (in *CreateBlockInput) Validate() error {
	switch in.BlockType {
	case models.BlockMaintenance, models.BlockPrivateEvent, models.BlockOther:
	default:
		return ErrValidation("block_type must be maintenance, private_event or other")
	}
	if DateOnly(in.EndDate).Before(DateOnly(in.StartDate)) {
		return ErrValidation("end_date must be equal to or after start_date")
	}
	return nil
}

func (s *BlockService) Create(in CreateBlockInput) (*models.AvailabilityBlock, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if in.RoomID != nil {
		var count int64
		if err := s.DB.Model(&models.Room{}).Where("id = ?", *in.RoomID).Count(&count).Error; err != nil {
			return nil, ErrStore(err)
		}
		if count == 0 {
			return nil, ErrNotFound("room")
		}
	}

	block := models.AvailabilityBlock{
		RoomID:        in.RoomID,
		StartDate:     DateOnly(in.StartDate),
		EndDate:       DateOnly(in.EndDate),
		BlockType:     in.BlockType,
		Reason:        in.Reason,
		BlocksFullDay: in.BlocksFullDay,
	}
	if err := s.DB.Create(&block).Error; err != nil {
		return nil, ErrStore(err)
	}
	return &block, nil
}

// List returns all blocks ordered by start date, with the room preloaded
// for display.
func (s *BlockService) List() ([]models.AvailabilityBlock, error) {
	var blocks []models.AvailabilityBlock
	if err := s.DB.Preload("Room").Order("start_date ASC").Find(&blocks).Error; err != nil {
		return nil, ErrStore(err)
	}
	return blocks, nil
}

// Delete removes a block by id. A missing id is reported as not-found, not
// silently ignored.
func (s *BlockService) Delete(id uint) error {
	result := s.DB.Delete(&models.AvailabilityBlock{}, id)
	if result.Error != nil {
		return ErrStore(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound("block")
	}
	return nil
}
