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

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthenticationFailed AuthServiceError = "giriş başarısız: aktif oyuncu bulunamadı"
	ErrAuthInvalidInput     AuthServiceError = "geçersiz giriş verisi"
)

// IAuthService oturum işlemleri için arayüz.
type IAuthService interface {
	SignIn(ctx context.Context, email string, passphrase string) (*models.Player, error)
	CheckAuth(ctx context.Context, playerID uint) (*models.Player, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	playerRepo repositories.IPlayerRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{playerRepo: repositories.NewPlayerRepository()}
}

// NewAuthServiceTx transaction/testlerde verilen bağlantıyla çalışan servis döndürür.
func NewAuthServiceTx(tx *gorm.DB) IAuthService {
	return &AuthService{playerRepo: repositories.NewPlayerRepositoryTx(tx)}
}

// SignIn e-posta ile tam olarak bir aktif oyuncu arar.
// Parola alanı formdan alınır ama hiçbir kimlik bilgisiyle karşılaştırılmaz:
// oyuncular haricen oluşturulur ve veri modelinde parola saklanmaz. Aktif bir
// e-posta eşleşmesi her parola değeriyle başarılıdır.
func (s *AuthService) SignIn(ctx context.Context, email string, passphrase string) (*models.Player, error) {
	_ = passphrase

	if email == "" {
		return nil, ErrAuthInvalidInput
	}
	player, err := s.playerRepo.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		// Okuma hatası girişte "başarısız oturum"a düşer, asla panik olmaz.
		configslog.Log.Error("AuthService.SignIn: oyuncu sorgusu başarısız", zap.String("email", email), zap.Error(err))
		return nil, ErrAuthenticationFailed
	}

	configslog.SLog.Infof("Oyuncu giriş yaptı: %s (ID %d)", player.Nickname, player.ID)
	return player, nil
}

// CheckAuth kalıcı kimlikteki oyuncuyu yeniden çözer.
// Oyuncu silinmiş veya pasifleştirilmişse ErrAuthenticationFailed döner;
// çağıran oturumu temizlemekle yükümlüdür. Token, süre veya imza yoktur.
func (s *AuthService) CheckAuth(ctx context.Context, playerID uint) (*models.Player, error) {
	if playerID == 0 {
		return nil, ErrAuthenticationFailed
	}
	player, err := s.playerRepo.FindActiveByID(ctx, playerID)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("AuthService.CheckAuth: oyuncu sorgusu başarısız", zap.Uint("playerID", playerID), zap.Error(err))
		}
		return nil, ErrAuthenticationFailed
	}
	return player, nil
}

var _ IAuthService = (*AuthService)(nil)
