package repositories

import (
	"context"
	"errors"
	"strings"

	"sportevent.link/configs"
	"sportevent.link/configs/configslog"
	"sportevent.link/models"
	"sportevent.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IPlayerRepository oyuncu veritabanı işlemleri için arayüz.
type IPlayerRepository interface {
	FindActiveByID(ctx context.Context, id uint) (*models.Player, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.Player, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Player, int64, error)
	UpdateActive(ctx context.Context, id uint, active bool, updatedByUserID uint) error
}

// PlayerRepository IPlayerRepository arayüzünü uygular.
type PlayerRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Player]
}

// NewPlayerRepository yeni bir PlayerRepository örneği oluşturur.
func NewPlayerRepository() IPlayerRepository {
	return newPlayerRepository(configs.GetDB())
}

// NewPlayerRepositoryTx transaction içinde çalışan bir repository döndürür.
func NewPlayerRepositoryTx(tx *gorm.DB) IPlayerRepository {
	return newPlayerRepository(tx)
}

func newPlayerRepository(db *gorm.DB) *PlayerRepository {
	base := NewBaseRepository[models.Player]()
	base.SetAllowedSortColumns([]string{"id", "created_at", "nickname", "email", "is_active"})
	return &PlayerRepository{db: db, base: base}
}

// Context ile çalışan DB örneği döndüren yardımcı.
func (r *PlayerRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindActiveByID yalnızca aktif oyuncuyu ID ile bulur.
// Oturum doğrulamasının tek yolu budur; pasif oyuncu ErrNotFound alır.
func (r *PlayerRepository) FindActiveByID(ctx context.Context, id uint) (*models.Player, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Player ID")
	}
	var player models.Player
	err := r.getDB(ctx).Where("id = ? AND is_active = ?", id, true).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PlayerRepository.FindActiveByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &player, nil
}

// FindActiveByEmail yalnızca aktif oyuncuyu e-posta ile bulur.
func (r *PlayerRepository) FindActiveByEmail(ctx context.Context, email string) (*models.Player, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, errors.New("geçersiz e-posta")
	}
	var player models.Player
	err := r.getDB(ctx).Where("lower(email) = ? AND is_active = ?", email, true).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("PlayerRepository.FindActiveByEmail: DB error", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &player, nil
}

// FindAllPaginated tüm oyuncuları sayfalayarak bulur (yönetim ekranı).
// Varsayılan sıralama takma ada göredir.
func (r *PlayerRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Player, int64, error) {
	var players []models.Player
	var totalCount int64
	db := r.getDB(ctx)

	query := db.Model(&models.Player{})
	if params.Name != "" {
		like := "%" + strings.ToLower(params.Name) + "%"
		query = query.Where("lower(nickname) LIKE ? OR lower(email) LIKE ?", like, like)
	}
	if params.Status != "" {
		query = query.Where("is_active = ?", params.Status == "true")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("PlayerRepository.Count (Paginated): DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return players, 0, nil
	}

	orderColumn := "nickname"
	if r.base.AllowedSortColumn(params.SortBy) {
		orderColumn = params.SortBy
	} else if params.SortBy != "" {
		configslog.SLog.Warnw("Geçersiz Player sıralama alanı istendi, varsayılan kullanılıyor.", "requestedSortBy", params.SortBy)
	}
	query = query.Order(orderColumn + " " + params.OrderBy)

	err := query.Limit(params.PerPage).Offset(params.CalculateOffset()).Find(&players).Error
	if err != nil {
		configslog.Log.Error("PlayerRepository.Find (Paginated): DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return players, totalCount, nil
}

// UpdateActive oyuncunun aktiflik bayrağını günceller.
func (r *PlayerRepository) UpdateActive(ctx context.Context, id uint, active bool, updatedByUserID uint) error {
	if id == 0 {
		return errors.New("geçersiz Player ID")
	}
	result := r.getDB(ctx).Model(&models.Player{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_by": &updatedByUserID})
	if result.Error != nil {
		configslog.Log.Error("PlayerRepository.UpdateActive: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IPlayerRepository = (*PlayerRepository)(nil)
