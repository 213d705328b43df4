package services

import (
	"context"
	"errors"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"
	"sportevent.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RSVPServiceError özel servis hataları
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPInvalidInput    RSVPServiceError = "geçersiz cevap verisi"
	ErrRSVPInvalidType     RSVPServiceError = "geçersiz cevap türü"
	ErrRSVPEventNotFound   RSVPServiceError = "etkinlik bulunamadı"
	ErrRSVPWriteFailed     RSVPServiceError = "cevap kaydedilemedi"
)

// IRSVPService katılım cevabı işlemleri için arayüz.
type IRSVPService interface {
	SetResponse(ctx context.Context, eventID uint, playerID uint, responseType models.ResponseType) error
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	responseRepo repositories.IEventResponseRepository
	eventRepo    repositories.IEventRepository
}

// NewRSVPService yeni bir RSVPService örneği oluşturur.
func NewRSVPService() IRSVPService {
	return &RSVPService{
		responseRepo: repositories.NewEventResponseRepository(),
		eventRepo:    repositories.NewEventRepository(),
	}
}

// NewRSVPServiceTx transaction/testlerde verilen bağlantıyla çalışan servis döndürür.
func NewRSVPServiceTx(tx *gorm.DB) IRSVPService {
	return &RSVPService{
		responseRepo: repositories.NewEventResponseRepositoryTx(tx),
		eventRepo:    repositories.NewEventRepositoryTx(tx),
	}
}

// SetResponse oyuncunun bir etkinliğe cevabını upsert eder: (etkinlik, oyuncu)
// için kayıt varsa türü yerinde güncellenir, yoksa varsayılan misafir sayısı
// ve boş yorumla yeni kayıt açılır. Başarı yalnızca hata yokluğudur; güncel
// görünüm, çağıranın ardından yapacağı tam senkronizasyonla oluşur.
func (s *RSVPService) SetResponse(ctx context.Context, eventID uint, playerID uint, responseType models.ResponseType) error {
	if eventID == 0 || playerID == 0 {
		return ErrRSVPInvalidInput
	}
	if !responseType.IsValid() {
		return ErrRSVPInvalidType
	}

	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRSVPEventNotFound
		}
		return ErrRSVPWriteFailed
	}

	response := models.EventResponse{
		EventID:      eventID,
		PlayerID:     playerID,
		ResponseType: responseType,
	}
	txCtx := models.ContextWithUserID(ctx, playerID)
	if err := s.responseRepo.CreateOrUpdate(txCtx, &response); err != nil {
		configslog.Log.Error("RSVPService.SetResponse: upsert başarısız",
			zap.Uint("eventID", eventID), zap.Uint("playerID", playerID), zap.Error(err))
		return ErrRSVPWriteFailed
	}

	configslog.SLog.Infof("Cevap kaydedildi: etkinlik %d, oyuncu %d, tür %s", eventID, playerID, responseType)
	return nil
}

var _ IRSVPService = (*RSVPService)(nil)
