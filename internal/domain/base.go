package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel contains common fields for all persisted entities.
// Records are never physically removed: deletion flips IsDeleted and the
// only allowed transition is active -> deleted. Version backs the
// optimistic lock and is incremented by the repository on every update.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID      string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`
	Code      *string   `gorm:"type:varchar(50);uniqueIndex" json:"code,omitempty"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
	CreatedBy string    `gorm:"type:varchar(100)" json:"createdBy,omitempty"`
	UpdatedBy string    `gorm:"type:varchar(100)" json:"updatedBy,omitempty"`
	Version   int64     `gorm:"not null;default:0" json:"version"`
}

// Entity is the contract the generic repository and service require of
// every persisted record. *BaseModel satisfies it, so embedding BaseModel
// is enough.
type Entity interface {
	GetID() uint
	GetUUID() string
	SetUUID(string)
	GetCode() string
	GetVersion() int64
	SetVersion(int64)
	Deleted() bool
	MarkDeleted()
	SetCreatedBy(string)
	SetUpdatedBy(string)
}

func (m *BaseModel) GetID() uint          { return m.ID }
func (m *BaseModel) GetUUID() string      { return m.UUID }
func (m *BaseModel) SetUUID(u string)     { m.UUID = u }
func (m *BaseModel) GetVersion() int64    { return m.Version }
func (m *BaseModel) SetVersion(v int64)   { m.Version = v }
func (m *BaseModel) Deleted() bool        { return m.IsDeleted }
func (m *BaseModel) MarkDeleted()         { m.IsDeleted = true }
func (m *BaseModel) SetCreatedBy(a string) { m.CreatedBy = a }
func (m *BaseModel) SetUpdatedBy(a string) { m.UpdatedBy = a }

func (m *BaseModel) GetCode() string {
	if m.Code == nil {
		return ""
	}
	return *m.Code
}

// BeforeCreate assigns a UUID when the caller did not supply one
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.NewString()
	}
	return nil
}
