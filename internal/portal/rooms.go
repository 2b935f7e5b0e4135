package portal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/hotel-portal/internal/db"
)

const entityRoom = "room"

// Rooms returns rooms ordered by their display order.
func (m *Manager) Rooms(ctx context.Context, includeInactive bool) ([]Room, error) {
	list, err := m.repo.Rooms(ctx, !includeInactive)
	if err != nil {
		return nil, storageErr("get rooms", err)
	}

	rooms := make([]Room, len(list))
	for i := range list {
		rooms[i] = m.newRoom(ctx, &list[i])
	}

	return rooms, nil
}

func (m *Manager) RoomByID(ctx context.Context, id string) (*Room, error) {
	row, err := m.repo.RoomByID(ctx, id)
	if err != nil {
		return nil, storageErr("get room by id", err)
	} else if row == nil {
		return nil, ErrNotFound
	}

	room := m.newRoom(ctx, row)
	return &room, nil
}

func (m *Manager) CreateRoom(ctx context.Context, in RoomInput) (*Room, error) {
	room, err := BuildRoom(in, m.now())
	if err != nil {
		return nil, err
	}

	_, err = m.repo.AddRoom(ctx, newDBRoom(room))
	countWrite(entityRoom, "create", err)
	if db.IsUniqueViolation(err) {
		return nil, newValidationError("id", fmt.Sprintf("room %q already exists", room.ID))
	} else if err != nil {
		return nil, storageErr("create room", err)
	}

	return &room, nil
}

func (m *Manager) UpdateRoom(ctx context.Context, id string, patch RoomInput) (*Room, error) {
	existing, err := m.RoomByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Version != nil && *patch.Version != existing.Version {
		return nil, ErrConflict
	}

	room, err := MergeRoom(*existing, patch, m.now())
	if err != nil {
		return nil, err
	}

	ok, err := m.repo.UpdateRoom(ctx, newDBRoom(room), existing.Version)
	countWrite(entityRoom, "update", err)
	if err != nil {
		return nil, storageErr("update room", err)
	} else if !ok {
		return nil, ErrConflict
	}

	return &room, nil
}

func (m *Manager) DeleteRoom(ctx context.Context, id string) error {
	ok, err := m.repo.DeleteRoom(ctx, id)
	countWrite(entityRoom, "delete", err)
	if err != nil {
		return storageErr("delete room", err)
	} else if !ok {
		return ErrNotFound
	}

	return nil
}

func (m *Manager) newRoom(ctx context.Context, row *db.Room) Room {
	room, malformed := NewRoom(row)
	m.warnMalformed(ctx, db.Tables.Room.Name, row.ID, malformed)

	return room
}
