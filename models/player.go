package models

// Player sisteme giriş yapabilen bir oyuncuyu temsil eder.
// Oyuncular kayıt akışıyla değil, seeder veya yönetici tarafından oluşturulur;
// parola saklanmaz (bkz. AuthService).
type Player struct {
	BaseModel
	Email    string `gorm:"type:varchar(150);uniqueIndex;not null" form:"email"`
	Nickname string `gorm:"type:varchar(100);not null;index" form:"nickname"`
	// default tag yok: GORM, default taşıyan sıfır değerli alanı INSERT
	// dışında bırakır; IsActive=false başka türlü yazılamaz.
	IsActive bool `gorm:"index" form:"is_active"`
	IsAdmin  bool `form:"is_admin"`

	// İlişkiler
	Responses []EventResponse `gorm:"foreignKey:PlayerID"`
}
