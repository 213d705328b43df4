package models

import "time"

// Event oyuncuların katılım bildirebileceği bir spor etkinliği.
// TimeFrom/TimeTo "HH:MM" biçiminde duvar saati olarak tutulur; bitişin
// başlangıçtan sonra olması beklenir ama veritabanında zorlanmaz.
type Event struct {
	BaseModel
	Title     string    `gorm:"type:varchar(255);not null" form:"title"`
	Location  string    `gorm:"type:varchar(255);not null" form:"location"`
	EventDate time.Time `gorm:"type:date;index;not null" form:"-"`
	TimeFrom  string    `gorm:"type:varchar(5);not null" form:"time_from"`
	TimeTo    string    `gorm:"type:varchar(5);not null" form:"time_to"`

	// Etkinliği oluşturan oyuncu (opsiyonel, oyuncu silinirse NULL kalır).
	CreatedByPlayerID *uint   `gorm:"index"`
	CreatedByPlayer   *Player `gorm:"foreignKey:CreatedByPlayerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`

	// İlişkiler
	Responses []EventResponse `gorm:"foreignKey:EventID"`
}
