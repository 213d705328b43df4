package models

// ResponseType bir oyuncunun etkinliğe verdiği cevabın türü.
type ResponseType string

// Değerler veritabanında özgün veri setiyle uyumlu Almanca tutulur.
const (
	ResponseTypeAccept  ResponseType = "zusage" // Katılacak
	ResponseTypeDecline ResponseType = "absage" // Katılmayacak
)

// IsValid bilinen bir cevap türü olup olmadığını döndürür.
func (t ResponseType) IsValid() bool {
	return t == ResponseTypeAccept || t == ResponseTypeDecline
}

// EventResponse bir oyuncunun tek bir etkinliğe verdiği cevap.
// Bir (etkinlik, oyuncu) çifti için en fazla bir kayıt bulunur; bu kural
// hem upsert mantığı hem de unique index ile korunur.
type EventResponse struct {
	BaseModel
	EventID  uint  `gorm:"not null;uniqueIndex:idx_response_event_player"`
	Event    Event `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PlayerID uint  `gorm:"not null;uniqueIndex:idx_response_event_player;index"`
	Player   Player `gorm:"foreignKey:PlayerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	ResponseType ResponseType `gorm:"type:varchar(10);not null;index" form:"response_type"`
	Comment      string       `gorm:"type:text" form:"comment"`
	GuestCount   int          `gorm:"type:integer;default:0" form:"guest_count"`

	// Cevapla birlikte getirilecek utensiller (mevcut akışlarda yalnızca okunur).
	ResponseUtensils []ResponseUtensil `gorm:"foreignKey:ResponseID"`
}
