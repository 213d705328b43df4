package repositories

import (
	"context"
	"errors"

	"sportevent.link/configs"
	"sportevent.link/configs/configslog"
	"sportevent.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IEventResponseRepository cevap veritabanı işlemleri için arayüz.
type IEventResponseRepository interface {
	CreateOrUpdate(ctx context.Context, response *models.EventResponse) error
	FindByEventAndPlayer(ctx context.Context, eventID uint, playerID uint) (*models.EventResponse, error)
	FindAllExpanded(ctx context.Context) ([]models.EventResponse, error)
}

// EventResponseRepository IEventResponseRepository arayüzünü uygular.
type EventResponseRepository struct {
	db *gorm.DB
}

// NewEventResponseRepository yeni bir EventResponseRepository örneği oluşturur.
func NewEventResponseRepository() IEventResponseRepository {
	return &EventResponseRepository{db: configs.GetDB()}
}

// NewEventResponseRepositoryTx transaction içinde çalışan bir repository döndürür.
func NewEventResponseRepositoryTx(tx *gorm.DB) IEventResponseRepository {
	return &EventResponseRepository{db: tx}
}

func (r *EventResponseRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// CreateOrUpdate bir cevabı bulur veya oluşturur/günceller.
// Aynı (EventID, PlayerID) çifti varsa cevabı yerinde günceller, yoksa
// varsayılan misafir sayısı ve boş yorumla oluşturur. Aynı cevabın tekrar
// gönderilmesi de güncelleme olarak işlenir.
func (r *EventResponseRepository) CreateOrUpdate(ctx context.Context, response *models.EventResponse) error {
	if response == nil || response.EventID == 0 || response.PlayerID == 0 {
		return errors.New("geçersiz cevap verisi (EventID veya PlayerID eksik)")
	}
	db := r.getDB(ctx)

	// Where ile bulur, Assign'daki alanları günceller; bulamazsa tümünü oluşturur.
	return db.Where(models.EventResponse{
		EventID:  response.EventID,
		PlayerID: response.PlayerID,
	}).Assign(models.EventResponse{
		ResponseType: response.ResponseType,
		Comment:      response.Comment,
		GuestCount:   response.GuestCount,
	}).FirstOrCreate(response).Error
}

// FindByEventAndPlayer belirli bir oyuncunun belirli bir etkinliğe cevabını bulur.
func (r *EventResponseRepository) FindByEventAndPlayer(ctx context.Context, eventID uint, playerID uint) (*models.EventResponse, error) {
	if eventID == 0 || playerID == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var response models.EventResponse
	err := r.getDB(ctx).Where("event_id = ? AND player_id = ?", eventID, playerID).
		First(&response).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventResponseRepository.FindByEventAndPlayer: DB error",
			zap.Uint("eventID", eventID), zap.Uint("playerID", playerID), zap.Error(err))
		return nil, err
	}
	return &response, nil
}

// FindAllExpanded tüm cevapları oyuncu ve utensil ilişkileriyle birlikte getirir.
// Senkronizasyon okuması budur; filtreleme servis katmanında yapılır.
func (r *EventResponseRepository) FindAllExpanded(ctx context.Context) ([]models.EventResponse, error) {
	var responses []models.EventResponse
	err := r.getDB(ctx).
		Preload("Player").
		Preload("ResponseUtensils.Utensil").
		Find(&responses).Error
	if err != nil {
		configslog.Log.Error("EventResponseRepository.FindAllExpanded: DB error", zap.Error(err))
		return nil, err
	}
	return responses, nil
}

var _ IEventResponseRepository = (*EventResponseRepository)(nil)
