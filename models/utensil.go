package models

// Utensil etkinliklere getirilebilecek bir malzemeyi tanımlar (referans verisi).
type Utensil struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Icon string `gorm:"type:varchar(20)"`
}

// ResponseUtensil bir cevap ile bir malzemeyi ilişkilendirir.
type ResponseUtensil struct {
	BaseModel
	ResponseID uint          `gorm:"not null;index:idx_response_utensil,unique"`
	Response   EventResponse `gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UtensilID  uint          `gorm:"not null;index:idx_response_utensil,unique"`
	Utensil    Utensil       `gorm:"foreignKey:UtensilID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
