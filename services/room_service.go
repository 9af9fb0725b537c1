package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"gorm.io/gorm"
)

var (
	ErrRoomNotFound  = errors.New("room_not_found")
	ErrRoomDuplicate = errors.New("room_number_taken")
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		return &ValidationError{Result: rejected("room number is required")}
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}

	if err := s.DB.Create(room).Error; err != nil {
		msg := err.Error()
		if strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed") {
			return ErrRoomDuplicate
		}
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// GetAll lists rooms, optionally filtered by status.
func (s *RoomService) GetAll(status models.RoomStatus) ([]models.Room, error) {
	q := s.DB.Order("number ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room %d: %w", id, err)
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	if raw, okStatus := fields["status"]; okStatus {
		status := models.RoomStatus(fmt.Sprintf("%v", raw))
		switch status {
		case models.RoomAvailable, models.RoomOccupied, models.RoomMaintenance, models.RoomReserved, models.RoomOutOfService:
		default:
			return &ValidationError{Result: rejected(fmt.Sprintf("unknown room status %q", status))}
		}
	}

	result := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *RoomService) Delete(id uint) error {
	result := s.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
