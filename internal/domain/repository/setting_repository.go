package repository

import "github.com/itsales/pos-api/internal/domain/entity"

// SettingRepository define el puerto de persistencia para la configuración
// de la tienda (fila única).
type SettingRepository interface {
	Get() (*entity.Setting, error)
	Update(setting *entity.Setting) error
}
