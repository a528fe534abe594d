package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/powerfitbr/powerfit/config"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/notify"
	"github.com/powerfitbr/powerfit/internal/statestore"
	"github.com/powerfitbr/powerfit/internal/store"
	"github.com/powerfitbr/powerfit/pkg/metrics"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

type Application struct {
	appConfig     *config.AppConfig
	gormDB        *gorm.DB
	sched         *cron.Cron
	configManager *ConfigManager
	stateDB       *statestore.Store
	bus           EventBus.Bus

	cart           *store.CartStore
	contacts       *store.ContactStore
	adminSession   *store.AdminSessionStore
	studentSession *store.StudentSessionStore

	notifier *notify.Notifier
}

// Ensure Application implements all interfaces
var _ AppContext = (*Application)(nil)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig         { return a.appConfig }
func (a *Application) DB() *gorm.DB                      { return a.gormDB }
func (a *Application) ConfigMgr() *ConfigManager         { return a.configManager }
func (a *Application) Scheduler() *cron.Cron             { return a.sched }
func (a *Application) StateStore() *statestore.Store     { return a.stateDB }
func (a *Application) Bus() EventBus.Bus                 { return a.bus }
func (a *Application) Cart() *store.CartStore            { return a.cart }
func (a *Application) Contacts() *store.ContactStore     { return a.contacts }
func (a *Application) AdminSession() *store.AdminSessionStore {
	return a.adminSession
}
func (a *Application) StudentSession() *store.StudentSessionStore {
	return a.studentSession
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	if err := metrics.InitMetrics(cfg.System.Workdir); err != nil {
		zap.S().Warn("Failed to initialize metrics:", err)
	}

	if cfg.Database.Type == "" {
		cfg.Database.Type = "postgres"
	}
	a.gormDB = getDatabase(cfg.Database)
	zap.S().Infof("Database connection successful, type: %s", cfg.Database.Type)

	if err := a.MigrateDB(false); err != nil {
		zap.S().Errorf("database migration failed: %v", err)
	}

	a.stateDB, err = statestore.Open(cfg.StateFile())
	if err != nil {
		zap.S().Panicf("state store open failed: %v", err)
	}

	a.bus = EventBus.New()
	a.cart = store.NewCartStore(a.stateDB, a.bus)
	a.contacts = store.NewContactStore(a.stateDB, a.bus)
	a.adminSession = store.NewAdminSessionStore(a.stateDB, a.bus)
	a.studentSession = store.NewStudentSessionStore(a.stateDB, a.bus)

	a.SeedData()

	a.configManager = NewConfigManager(a.gormDB)

	a.notifier = notify.New(&cfg.Mailer, &cfg.Webhook, a.bus)

	a.initJob()
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func (a *Application) MigrateDB(track bool) (err error) {
	if track {
		if err := a.gormDB.Debug().Migrator().AutoMigrate(domain.Tables...); err != nil {
			zap.S().Error(err)
		}
	} else {
		if err := a.gormDB.Migrator().AutoMigrate(domain.Tables...); err != nil {
			zap.S().Error(err)
		}
	}
	return nil
}

func (a *Application) DropAll() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
}

func (a *Application) InitDb() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
	if err := a.gormDB.Migrator().AutoMigrate(domain.Tables...); err != nil {
		zap.S().Error(err)
	}
}

// GetSettingsStringValue retrieves a string configuration value
func (a *Application) GetSettingsStringValue(category, key string) string {
	return a.configManager.GetString(category, key)
}

// GetSettingsInt64Value retrieves an int64 configuration value
func (a *Application) GetSettingsInt64Value(category, key string) int64 {
	return a.configManager.GetInt64(category, key)
}

// GetSettingsBoolValue retrieves a boolean configuration value
func (a *Application) GetSettingsBoolValue(category, key string) bool {
	return a.configManager.GetBool(category, key)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.notifier != nil {
		a.notifier.Close()
	}
	if a.stateDB != nil {
		_ = a.stateDB.Close()
	}
	_ = metrics.Close()
	_ = zap.L().Sync()
}
