package services

import (
	"context"
	"errors"
	"time"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"
	"sportevent.link/pkg/queryparams"
	"sportevent.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AdminServiceError özel servis hataları
type AdminServiceError string

func (e AdminServiceError) Error() string { return string(e) }

const (
	ErrAdminPlayerNotFound    AdminServiceError = "oyuncu bulunamadı"
	ErrAdminInvalidInput      AdminServiceError = "geçersiz girdi verisi"
	ErrAdminEventFieldMissing AdminServiceError = "tüm etkinlik alanları zorunludur"
	ErrAdminEventDateInvalid  AdminServiceError = "geçersiz etkinlik tarihi"
	ErrAdminWriteFailed       AdminServiceError = "değişiklik kaydedilemedi"
)

// EventForm etkinlik oluşturma formunun alanları.
type EventForm struct {
	Title     string `form:"title" json:"title"`
	Location  string `form:"location" json:"location"`
	EventDate string `form:"event_date" json:"event_date"` // YYYY-MM-DD
	TimeFrom  string `form:"time_from" json:"time_from"`   // HH:MM
	TimeTo    string `form:"time_to" json:"time_to"`       // HH:MM
}

// IAdminService yönetim işlemleri için arayüz.
type IAdminService interface {
	GetPlayersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	SetPlayerActive(ctx context.Context, playerID uint, active bool, adminUserID uint) error
	CreateEvent(ctx context.Context, creatorPlayerID uint, form EventForm) (*models.Event, error)
}

// AdminService IAdminService arayüzünü uygular.
type AdminService struct {
	playerRepo repositories.IPlayerRepository
	eventRepo  repositories.IEventRepository
}

// NewAdminService yeni bir AdminService örneği oluşturur.
func NewAdminService() IAdminService {
	return &AdminService{
		playerRepo: repositories.NewPlayerRepository(),
		eventRepo:  repositories.NewEventRepository(),
	}
}

// NewAdminServiceTx transaction/testlerde verilen bağlantıyla çalışan servis döndürür.
func NewAdminServiceTx(tx *gorm.DB) IAdminService {
	return &AdminService{
		playerRepo: repositories.NewPlayerRepositoryTx(tx),
		eventRepo:  repositories.NewEventRepositoryTx(tx),
	}
}

// ValidateEventForm beş zorunlu alanın dolu olduğunu denetler.
// Başlangıç/bitiş sıralaması denetlenmez; özgün uygulama da denetlemez.
func ValidateEventForm(form EventForm) error {
	if form.Title == "" || form.Location == "" || form.EventDate == "" ||
		form.TimeFrom == "" || form.TimeTo == "" {
		return ErrAdminEventFieldMissing
	}
	return nil
}

// GetPlayersPaginated tüm oyuncuları yönetim ekranı için listeler.
// Varsayılan sıralama takma ada göredir.
func (s *AdminService) GetPlayersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	players, totalCount, err := s.playerRepo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: players,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// SetPlayerActive oyuncunun aktiflik bayrağını yazar. Hata özel olarak ele
// alınmaz, çağırana iletilir; liste güncelliğini çağıranın yapacağı tam
// yeniden yükleme sağlar. Pasifleştirilen oyuncunun oturumu bir sonraki
// doğrulamada düşer.
func (s *AdminService) SetPlayerActive(ctx context.Context, playerID uint, active bool, adminUserID uint) error {
	if playerID == 0 || adminUserID == 0 {
		return ErrAdminInvalidInput
	}
	err := s.playerRepo.UpdateActive(ctx, playerID, active, adminUserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAdminPlayerNotFound
		}
		return err
	}
	configslog.SLog.Infof("Oyuncu durumu güncellendi: ID %d, aktif=%t (yönetici: %d)", playerID, active, adminUserID)
	return nil
}

// CreateEvent yeni bir etkinlik oluşturur. Beş alanın da dolu olması gerekir;
// saat aralığının tutarlılığı denetlenmez.
func (s *AdminService) CreateEvent(ctx context.Context, creatorPlayerID uint, form EventForm) (*models.Event, error) {
	if creatorPlayerID == 0 {
		return nil, ErrAdminInvalidInput
	}
	if err := ValidateEventForm(form); err != nil {
		return nil, err
	}
	eventDate, err := time.Parse("2006-01-02", form.EventDate)
	if err != nil {
		return nil, ErrAdminEventDateInvalid
	}

	event := models.Event{
		Title:             form.Title,
		Location:          form.Location,
		EventDate:         eventDate,
		TimeFrom:          form.TimeFrom,
		TimeTo:            form.TimeTo,
		CreatedByPlayerID: &creatorPlayerID,
	}
	txCtx := models.ContextWithUserID(ctx, creatorPlayerID)
	if err := s.eventRepo.Create(txCtx, &event); err != nil {
		configslog.Log.Error("AdminService.CreateEvent: oluşturma başarısız",
			zap.String("title", form.Title), zap.Uint("creator", creatorPlayerID), zap.Error(err))
		return nil, ErrAdminWriteFailed
	}

	configslog.SLog.Infof("Etkinlik oluşturuldu: %q (ID %d, oluşturan: %d)", event.Title, event.ID, creatorPlayerID)
	return &event, nil
}

var _ IAdminService = (*AdminService)(nil)
