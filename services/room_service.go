package services

import (
	"errors"

	"aquavalle-backend/models"

	"gorm.io/gorm"
)

// RoomService exposes the read-only room catalog.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("is_active = ?", true).Order("id").Find(&rooms).Error; err != nil {
		return nil, ErrStore(err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Where("is_active = ?", true).First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("room")
		}
		return nil, ErrStore(err)
	}
	return &room, nil
}
