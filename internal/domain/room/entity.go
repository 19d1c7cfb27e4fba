package room

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyRoomName      = errors.New("room name cannot be empty")
	ErrRoomNameTooLong    = errors.New("room name is too long (max 255 characters)")
	ErrInvalidCapacity    = errors.New("capacity must be a positive integer")
	ErrDescriptionTooLong = errors.New("description is too long (max 2000 characters)")
)

const (
	MaxRoomNameLength    = 255
	MaxDescriptionLength = 2000
)

type Room struct {
	id          int64
	name        string
	capacity    int
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(name string, capacity int, description string) (*Room, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := validate(name, capacity, description); err != nil {
		return nil, err
	}

	return &Room{
		name:        name,
		capacity:    capacity,
		description: description,
	}, nil
}

func ReconstructRoom(id int64, name string, capacity int, description string, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:          id,
		name:        name,
		capacity:    capacity,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// WithDetails returns a validated copy with new attributes. Identity is kept.
func (r *Room) WithDetails(name string, capacity int, description string) (*Room, error) {
	next, err := NewRoom(name, capacity, description)
	if err != nil {
		return nil, err
	}
	next.id = r.id
	next.createdAt = r.createdAt
	next.updatedAt = r.updatedAt
	return next, nil
}

func (r *Room) WithID(id int64) *Room {
	cp := *r
	cp.id = id
	return &cp
}

func validate(name string, capacity int, description string) error {
	if name == "" {
		return ErrEmptyRoomName
	}
	if utf8.RuneCountInString(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func (r *Room) ID() int64            { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Description() string  { return r.description }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
