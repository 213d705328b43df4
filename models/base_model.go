package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// contextUserIDKey audit alanları için context'te taşınan kullanıcı ID anahtarı.
const contextUserIDKey contextKey = "user_id"

// ContextWithUserID işlemi yapan oyuncunun ID'sini context'e ekler.
// BeforeCreate/BeforeUpdate hook'ları bu değeri okur.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, contextUserIDKey, userID)
}

// UserIDFromContext context'teki kullanıcı ID'sini döndürür (yoksa 0).
func UserIDFromContext(ctx context.Context) uint {
	if id, ok := ctx.Value(contextUserIDKey).(uint); ok {
		return id
	}
	return 0
}

// BaseModel tüm modellere gömülen ortak alanlar.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy *uint          `gorm:"index"`
	UpdatedBy *uint
	DeletedBy *uint
}

// BeforeCreate context'teki kullanıcı ID'sini CreatedBy alanına yazar.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID := UserIDFromContext(tx.Statement.Context); userID != 0 {
		m.CreatedBy = &userID
	}
	return nil
}

// BeforeUpdate context'teki kullanıcı ID'sini UpdatedBy alanına yazar.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID := UserIDFromContext(tx.Statement.Context); userID != 0 {
		m.UpdatedBy = &userID
	}
	return nil
}
