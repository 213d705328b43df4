package services

import (
	"context"
	"sync"

	"sportevent.link/configs/configslog"
	"sportevent.link/models"
	"sportevent.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventServiceError özel servis hataları
type EventServiceError string

func (e EventServiceError) Error() string { return string(e) }

const (
	ErrEventSyncFailed EventServiceError = "etkinlik verileri yüklenemedi"
)

// EventView tek bir yüklemede üretilen görünüm modeli.
// Her yenilemede bütün olarak yeniden kurulur; alan alan güncellenmez.
type EventView struct {
	PlayerID    uint
	Events      []models.Event
	MyResponses map[uint]models.EventResponse // event ID -> görüntüleyenin cevabı
	Utensils    []models.Utensil
}

// ResponseCountFor görüntüleyenin etkinliğe cevabı varsa 1, yoksa 0 döndürür.
// Özgün uygulamadaki davranıştır: tüm oyuncular üzerinden gerçek bir katılımcı
// sayısı değil, yalnızca görüntüleyenin kendi cevabını sayar.
func (v *EventView) ResponseCountFor(eventID uint) int {
	if v == nil {
		return 0
	}
	if _, ok := v.MyResponses[eventID]; ok {
		return 1
	}
	return 0
}

// IEventService etkinlik görünümü senkronizasyonu için arayüz.
type IEventService interface {
	LoadAll(ctx context.Context, playerID uint) (*EventView, error)
	CurrentView(playerID uint) *EventView
}

// EventService IEventService arayüzünü uygular.
// Son başarılı yüklemeler oyuncu bazında, sıra numarasıyla birlikte tutulur:
// geç biten eski bir yükleme, aynı oyuncu için daha yeni bir yüklemenin
// uyguladığı görünümün üzerine yazamaz. Görünüm modeli görüntüleyene aittir;
// oyuncular arasında hiçbir durum paylaşılmaz.
type EventService struct {
	eventRepo    repositories.IEventRepository
	responseRepo repositories.IEventResponseRepository
	utensilRepo  repositories.IUtensilRepository

	mu      sync.Mutex
	loadSeq uint64
	views   map[uint]*playerViewState
}

// playerViewState bir oyuncunun son uygulanan görünümü ve sıra numarası.
type playerViewState struct {
	appliedSeq uint64
	view       *EventView
}

// NewEventService yeni bir EventService örneği oluşturur.
func NewEventService() IEventService {
	return &EventService{
		eventRepo:    repositories.NewEventRepository(),
		responseRepo: repositories.NewEventResponseRepository(),
		utensilRepo:  repositories.NewUtensilRepository(),
		views:        map[uint]*playerViewState{},
	}
}

// NewEventServiceTx transaction/testlerde verilen bağlantıyla çalışan servis döndürür.
func NewEventServiceTx(tx *gorm.DB) IEventService {
	return &EventService{
		eventRepo:    repositories.NewEventRepositoryTx(tx),
		responseRepo: repositories.NewEventResponseRepositoryTx(tx),
		utensilRepo:  repositories.NewUtensilRepositoryTx(tx),
		views:        map[uint]*playerViewState{},
	}
}

// LoadAll üç bağımsız okumayla görünüm modelini kurar: tarihe göre sıralı
// etkinlikler, oyuncu ve utensil ilişkileriyle genişletilmiş tüm cevaplar ve
// malzeme listesi. Cevaplar görüntüleyen oyuncuya indirgenip etkinlik ID'si
// ile anahtarlanır. Okumalardan herhangi biri başarısız olursa yenileme
// bütünüyle iptal edilir; oyuncunun önceki görünümü olduğu gibi kalır.
func (s *EventService) LoadAll(ctx context.Context, playerID uint) (*EventView, error) {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	events, err := s.eventRepo.FindAllOrdered(ctx)
	if err != nil {
		configslog.Log.Error("EventService.LoadAll: etkinlikler okunamadı", zap.Error(err))
		return nil, ErrEventSyncFailed
	}
	responses, err := s.responseRepo.FindAllExpanded(ctx)
	if err != nil {
		configslog.Log.Error("EventService.LoadAll: cevaplar okunamadı", zap.Error(err))
		return nil, ErrEventSyncFailed
	}
	utensils, err := s.utensilRepo.FindAll(ctx)
	if err != nil {
		configslog.Log.Error("EventService.LoadAll: malzemeler okunamadı", zap.Error(err))
		return nil, ErrEventSyncFailed
	}

	// Hızlı erişim için cevapları haritaya çevir; oyuncu başına etkinlik
	// başına en fazla bir cevap beklenir.
	myResponses := make(map[uint]models.EventResponse)
	for _, resp := range responses {
		if resp.PlayerID == playerID {
			myResponses[resp.EventID] = resp
		}
	}

	view := &EventView{
		PlayerID:    playerID,
		Events:      events,
		MyResponses: myResponses,
		Utensils:    utensils,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.views[playerID]; ok && seq < st.appliedSeq {
		// Aynı oyuncu için daha yeni bir yükleme tamamlandı; eski sonucu
		// uygulamadan, uygulanmış olanı dön.
		return st.view, nil
	}
	s.views[playerID] = &playerViewState{appliedSeq: seq, view: view}
	return view, nil
}

// CurrentView oyuncunun son uygulanan görünümünü döndürür (hiç yükleme yoksa nil).
func (s *EventService) CurrentView(playerID uint) *EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.views[playerID]; ok {
		return st.view
	}
	return nil
}

var _ IEventService = (*EventService)(nil)
