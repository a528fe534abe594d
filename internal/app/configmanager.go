package app

import (
	"sync"
	"time"

	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConfigManager caches the sys_config table and hands out typed values.
type ConfigManager struct {
	mu    sync.RWMutex
	db    *gorm.DB
	cache map[string]string
}

func NewConfigManager(db *gorm.DB) *ConfigManager {
	cm := &ConfigManager{db: db, cache: map[string]string{}}
	cm.Reload()
	return cm
}

func cacheKey(category, name string) string {
	return category + "." + name
}

// Reload refreshes the cache from the database.
func (cm *ConfigManager) Reload() {
	var rows []domain.SysConfig
	if err := cm.db.Find(&rows).Error; err != nil {
		zap.L().Warn("config reload failed", zap.Error(err))
		return
	}
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.cache = make(map[string]string, len(rows))
	for _, row := range rows {
		cm.cache[cacheKey(row.Type, row.Name)] = row.Value
	}
}

func (cm *ConfigManager) GetString(category, name string) string {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.cache[cacheKey(category, name)]
}

func (cm *ConfigManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(cm.GetString(category, name))
}

func (cm *ConfigManager) GetInt(category, name string) int {
	return cast.ToInt(cm.GetString(category, name))
}

func (cm *ConfigManager) GetBool(category, name string) bool {
	return cast.ToBool(cm.GetString(category, name))
}

// SetValue updates one setting in the database and the cache.
func (cm *ConfigManager) SetValue(category, name, value string) error {
	err := cm.db.Model(&domain.SysConfig{}).
		Where("type = ? and name = ?", category, name).
		Updates(map[string]interface{}{"value": value, "updated_at": time.Now()}).Error
	if err != nil {
		return err
	}
	cm.mu.Lock()
	cm.cache[cacheKey(category, name)] = value
	cm.mu.Unlock()
	return nil
}

// ListByCategory returns the raw rows of one settings category.
func (cm *ConfigManager) ListByCategory(category string) ([]domain.SysConfig, error) {
	var rows []domain.SysConfig
	err := cm.db.Where("type = ?", category).Order("sort").Find(&rows).Error
	return rows, err
}
