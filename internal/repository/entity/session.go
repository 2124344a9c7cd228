package entity

import (
	"encoding/json"
	"time"

	"queueup/karaoke-backend/internal/domain"
)

type Session struct {
	ID              string `gorm:"primary_key"`
	AccessCode      string `gorm:"uniqueIndex;size:6"`
	Status          string
	ConnectedUsers  string // JSON array of user ids
	RotationOrder   string // JSON array of user ids, rotation order
	RotationPointer int
	CreatedAt       time.Time
}

func (Session) TableName() string {
	return "sessions"
}

func (s Session) ToDomain() (domain.Session, domain.Rotation) {
	var users, order []string
	// empty columns decode to nil slices; ignore malformed JSON from
	// manual edits rather than failing the whole load
	_ = json.Unmarshal([]byte(s.ConnectedUsers), &users)
	_ = json.Unmarshal([]byte(s.RotationOrder), &order)

	return domain.Session{
			ID:             s.ID,
			AccessCode:     s.AccessCode,
			Status:         domain.SessionStatus(s.Status),
			ConnectedUsers: users,
			CreatedAt:      s.CreatedAt,
		}, domain.Rotation{
			Order:   order,
			Pointer: s.RotationPointer,
		}
}

func SessionFromDomain(s domain.Session, rot domain.Rotation) Session {
	users, _ := json.Marshal(s.ConnectedUsers)
	order, _ := json.Marshal(rot.Order)
	return Session{
		ID:              s.ID,
		AccessCode:      s.AccessCode,
		Status:          string(s.Status),
		ConnectedUsers:  string(users),
		RotationOrder:   string(order),
		RotationPointer: rot.Pointer,
		CreatedAt:       s.CreatedAt,
	}
}
