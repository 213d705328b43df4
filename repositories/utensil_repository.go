package repositories

import (
	"context"

	"sportevent.link/configs"
	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUtensilRepository malzeme referans verisi için arayüz (salt okunur).
type IUtensilRepository interface {
	FindAll(ctx context.Context) ([]models.Utensil, error)
}

// UtensilRepository IUtensilRepository arayüzünü uygular.
type UtensilRepository struct {
	db *gorm.DB
}

// NewUtensilRepository yeni bir UtensilRepository örneği oluşturur.
func NewUtensilRepository() IUtensilRepository {
	return &UtensilRepository{db: configs.GetDB()}
}

// NewUtensilRepositoryTx transaction içinde çalışan bir repository döndürür.
func NewUtensilRepositoryTx(tx *gorm.DB) IUtensilRepository {
	return &UtensilRepository{db: tx}
}

// FindAll tüm malzemeleri isme göre sıralı getirir.
func (r *UtensilRepository) FindAll(ctx context.Context) ([]models.Utensil, error) {
	var utensils []models.Utensil
	err := r.db.WithContext(ctx).Order("name asc").Find(&utensils).Error
	if err != nil {
		configslog.Log.Error("UtensilRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return utensils, nil
}

var _ IUtensilRepository = (*UtensilRepository)(nil)
