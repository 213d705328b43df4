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

// IEventRepository etkinlik veritabanı işlemleri için arayüz.
type IEventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAllOrdered(ctx context.Context) ([]models.Event, error)
}

// EventRepository IEventRepository arayüzünü uygular.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository yeni bir EventRepository örneği oluşturur.
func NewEventRepository() IEventRepository {
	return &EventRepository{db: configs.GetDB()}
}

// NewEventRepositoryTx transaction içinde çalışan bir repository döndürür.
func NewEventRepositoryTx(tx *gorm.DB) IEventRepository {
	return &EventRepository{db: tx}
}

func (r *EventRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yeni bir etkinlik oluşturur.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event == nil {
		return errors.New("geçersiz etkinlik verisi")
	}
	return r.getDB(ctx).Create(event).Error
}

// FindByID belirli bir etkinliği bulur.
func (r *EventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Event ID")
	}
	var event models.Event
	err := r.getDB(ctx).First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("EventRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &event, nil
}

// FindAllOrdered tüm etkinlikleri tarihe göre artan sırada getirir.
func (r *EventRepository) FindAllOrdered(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.getDB(ctx).Order("event_date asc").Find(&events).Error
	if err != nil {
		configslog.Log.Error("EventRepository.FindAllOrdered: DB error", zap.Error(err))
		return nil, err
	}
	return events, nil
}

var _ IEventRepository = (*EventRepository)(nil)
