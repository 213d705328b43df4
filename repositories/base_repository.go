package repositories

import "errors"

// ErrNotFound kayıt bulunamadığında tüm repository'lerin döndürdüğü hata.
var ErrNotFound = errors.New("kayıt bulunamadı")

// IBaseRepository liste sorgularının ortak kuralları için generik arayüz.
type IBaseRepository[T any] interface {
	SetAllowedSortColumns(columns []string)
	AllowedSortColumn(column string) bool
}

// BaseRepository IBaseRepository'nin uygulaması; sıralama sütunu beyaz
// listesini tutar.
type BaseRepository[T any] struct {
	sortColumns map[string]struct{}
}

// NewBaseRepository generik bir base repository oluşturur.
func NewBaseRepository[T any]() *BaseRepository[T] {
	return &BaseRepository[T]{sortColumns: map[string]struct{}{}}
}

// SetAllowedSortColumns sıralamada kabul edilen sütunları belirler.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.sortColumns = make(map[string]struct{}, len(columns))
	for _, col := range columns {
		r.sortColumns[col] = struct{}{}
	}
}

// AllowedSortColumn sütunun sıralamada kullanılabilir olup olmadığını döndürür.
func (r *BaseRepository[T]) AllowedSortColumn(column string) bool {
	_, ok := r.sortColumns[column]
	return ok
}

var _ IBaseRepository[struct{}] = (*BaseRepository[struct{}])(nil)
