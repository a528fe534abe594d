package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/powerfitbr/powerfit/config"
	"github.com/powerfitbr/powerfit/internal/statestore"
	"github.com/powerfitbr/powerfit/internal/store"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SettingsProvider provides system settings access
type SettingsProvider interface {
	GetSettingsStringValue(category, key string) string
	GetSettingsInt64Value(category, key string) int64
	GetSettingsBoolValue(category, key string) bool
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// ConfigManagerProvider provides configuration manager access
type ConfigManagerProvider interface {
	ConfigMgr() *ConfigManager
}

// StoreProvider provides access to the state containers.
type StoreProvider interface {
	Cart() *store.CartStore
	Contacts() *store.ContactStore
	AdminSession() *store.AdminSessionStore
	StudentSession() *store.StudentSessionStore
	StateStore() *statestore.Store
	Bus() EventBus.Bus
}

// AppContext combines all provider interfaces for full application context.
// Handlers should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	SettingsProvider
	SchedulerProvider
	ConfigManagerProvider
	StoreProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
}
