package request

import (
	"room-booking/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Description string `json:"description" binding:"max=2000"`
}

func (r CreateRoomRequest) ToInput() commands.RoomInput {
	return commands.RoomInput{Name: r.Name, Capacity: r.Capacity, Description: r.Description}
}

// UpdateRoomRequest keeps absent fields as they are.
type UpdateRoomRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

func (r UpdateRoomRequest) ToPatch() commands.RoomPatch {
	return commands.RoomPatch{Name: r.Name, Capacity: r.Capacity, Description: r.Description}
}
