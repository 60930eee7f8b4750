package dbmodels

import (
	"time"
)

// json-теги в camelCase, это формат обмена с фронтом и публичной анкетой
type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
