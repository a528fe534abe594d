package app

import (
	"errors"
	"strings"
	"time"

	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/store"
	"github.com/powerfitbr/powerfit/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedData populates an empty database with the default operator, settings
// and catalog fixtures. Idempotent: existing rows are left alone.
func (a *Application) SeedData() {
	a.checkSuper()
	a.checkSettings()
	a.checkPlans()
	a.checkClasses()
	a.checkProducts()
	a.checkContactFixtures()
}

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "powerfit"

	hashedPassword := common.Sha256HashWithSalt(defaultPassword, common.GetSecretSalt())

	var operator domain.SysOpr
	err := a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysOpr{
			ID:        common.UUIDint64(),
			Realname:  "administrator",
			Mobile:    "0000",
			Email:     "admin@powerfit.com",
			Username:  superUsername,
			Password:  hashedPassword,
			Level:     "super",
			Status:    common.ENABLED,
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("username", superUsername))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	if strings.TrimSpace(operator.Password) != "" && strings.EqualFold(operator.Level, "super") {
		return
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if strings.TrimSpace(operator.Password) == "" {
		updates["password"] = hashedPassword
	}
	if !strings.EqualFold(operator.Level, "super") {
		updates["level"] = "super"
	}
	if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}
	zap.L().Warn("repaired default super admin account", zap.String("username", superUsername))
}

type settingSchema struct {
	Key         string
	Default     string
	Description string
}

var defaultSettings = []settingSchema{
	{"site.Name", "PowerFit", "Site title"},
	{"site.Slogan", "Transforme seu corpo, transforme sua vida", "Home page slogan"},
	{"site.ContactEmail", "contato@powerfit.com", "Public contact e-mail"},
	{"site.ContactPhone", "(11) 3333-4444", "Public contact phone"},
	{"site.Address", "Av. Paulista, 1000 - São Paulo/SP", "Gym street address"},
	{"site.OpeningHours", "Seg-Sex 06h-23h, Sáb-Dom 08h-18h", "Opening hours text"},
	{"site.Instagram", "https://instagram.com/powerfit", "Instagram profile URL"},
	{"checkout.OrderPrefix", "PF", "Prefix of generated order numbers"},
	{"contact.RetentionDays", "0", "Days to keep resolved contacts, 0 keeps forever"},
}

func (a *Application) checkSettings() {
	for sortid, schema := range defaultSettings {
		parts := strings.SplitN(schema.Key, ".", 2)
		if len(parts) != 2 {
			zap.L().Warn("invalid config key format", zap.String("key", schema.Key))
			continue
		}
		category, name := parts[0], parts[1]

		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", category, name).
			Count(&count)
		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				Sort:   sortid,
				Type:   category,
				Name:   name,
				Value:  schema.Default,
				Remark: schema.Description,
			})
			zap.L().Info("initialized config",
				zap.String("key", schema.Key),
				zap.String("default", schema.Default))
		}
	}
}

// checkPlans initializes the default membership plans
func (a *Application) checkPlans() {
	defaultPlans := []domain.MembershipPlan{
		{
			Name: "Básico", Price: 89.90, DurationDays: 30,
			Description: "Acesso à musculação em horário comercial",
			Features:    "Musculação\nAvaliação física trimestral",
			Status:      common.ENABLED,
		},
		{
			Name: "Premium", Price: 129.90, DurationDays: 30,
			Description: "Acesso completo incluindo aulas coletivas",
			Features:    "Musculação\nAulas coletivas\nAvaliação física mensal",
			Highlight:   true,
			Status:      common.ENABLED,
		},
		{
			Name: "VIP", Price: 199.90, DurationDays: 30,
			Description: "Tudo do Premium mais acompanhamento personalizado",
			Features:    "Musculação\nAulas coletivas\nPersonal trainer 2x semana\nAvaliação física mensal",
			Status:      common.ENABLED,
		},
	}

	for _, p := range defaultPlans {
		var count int64
		a.gormDB.Model(&domain.MembershipPlan{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			p.ID = common.UUIDint64()
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default plan", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default plan", zap.String("name", p.Name))
			}
		}
	}
}

// checkClasses initializes the default weekly class schedule
func (a *Application) checkClasses() {
	defaultClasses := []domain.GymClass{
		{Name: "Spinning", Instructor: "Carla Mendes", Weekday: "monday", StartTime: "07:00", EndTime: "08:00", Capacity: 20, Room: "Sala 1", Status: common.ENABLED},
		{Name: "Muay Thai", Instructor: "Rafael Souza", Weekday: "tuesday", StartTime: "19:00", EndTime: "20:30", Capacity: 16, Room: "Tatame", Status: common.ENABLED},
		{Name: "Yoga", Instructor: "Juliana Prado", Weekday: "wednesday", StartTime: "08:00", EndTime: "09:00", Capacity: 15, Room: "Sala 2", Status: common.ENABLED},
		{Name: "CrossTraining", Instructor: "Bruno Lima", Weekday: "thursday", StartTime: "18:00", EndTime: "19:00", Capacity: 12, Room: "Box", Status: common.ENABLED},
		{Name: "Zumba", Instructor: "Carla Mendes", Weekday: "friday", StartTime: "19:00", EndTime: "20:00", Capacity: 25, Room: "Sala 1", Status: common.ENABLED},
	}

	for _, c := range defaultClasses {
		var count int64
		a.gormDB.Model(&domain.GymClass{}).
			Where("name = ? and weekday = ?", c.Name, c.Weekday).
			Count(&count)
		if count == 0 {
			c.ID = common.UUIDint64()
			c.CreatedAt = time.Now()
			c.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&c).Error; err != nil {
				zap.L().Error("failed to create default class", zap.String("name", c.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default class", zap.String("name", c.Name))
			}
		}
	}
}

// checkProducts initializes the default storefront catalog
func (a *Application) checkProducts() {
	intp := func(v int) *int { return &v }
	defaultProducts := []domain.Product{
		{Name: "Whey Protein Isolado", Price: 149.90, Image: "/images/products/whey.jpg", Category: "supplement", Stock: intp(40), Status: common.ENABLED},
		{Name: "Creatina Monohidratada 300g", Price: 89.90, Image: "/images/products/creatina.jpg", Category: "supplement", Stock: intp(60), Status: common.ENABLED},
		{Name: "Pré-treino PowerFit", Price: 119.90, Image: "/images/products/pretreino.jpg", Category: "supplement", Stock: intp(25), Status: common.ENABLED},
		{Name: "Camiseta PowerFit", Price: 59.90, Image: "/images/products/camiseta.jpg", Category: "apparel", Stock: intp(80), Status: common.ENABLED},
		{Name: "Garrafa Térmica 1L", Price: 45.00, Image: "/images/products/garrafa.jpg", Category: "accessory", Stock: intp(50), Status: common.ENABLED},
		{Name: "Luvas de Treino", Price: 39.90, Image: "/images/products/luvas.jpg", Category: "accessory", Stock: intp(35), Status: common.ENABLED},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("name", p.Name))
			}
		}
	}
}

// checkContactFixtures seeds the demo inbox on first boot only.
func (a *Application) checkContactFixtures() {
	if a.contacts.CountByStatus("") > 0 {
		return
	}
	for _, msg := range store.ContactFixtures() {
		if _, err := a.contacts.Add(msg); err != nil {
			zap.L().Error("failed to seed contact fixture", zap.String("id", msg.ID), zap.Error(err))
		}
	}
	zap.L().Info("initialized demo contact inbox")
}
