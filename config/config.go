package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/random"
	"gopkg.in/yaml.v2"
)

// Version is the release tag stamped at build time.
var Version = "dev"

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host          string `yaml:"host" json:"host"`
	Port          int    `yaml:"port" json:"port"`
	JwtSecret     string `yaml:"jwt_secret" json:"jwt_secret"`
	SessionSecret string `yaml:"session_secret" json:"session_secret"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type MailerConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	SmtpHost string `yaml:"smtp_host" json:"smtp_host"`
	SmtpPort int    `yaml:"smtp_port" json:"smtp_port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
	NotifyTo string `yaml:"notify_to" json:"notify_to"`
}

type WebhookConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	URL     string `yaml:"url" json:"url"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system" json:"system"`
	Web      WebConfig     `yaml:"web" json:"web"`
	Database DBConfig      `yaml:"database" json:"database"`
	Logger   LogConfig     `yaml:"logger" json:"logger"`
	Mailer   MailerConfig  `yaml:"mailer" json:"mailer"`
	Webhook  WebhookConfig `yaml:"webhook" json:"webhook"`
}

// StateFile returns the path of the bbolt file holding container snapshots.
func (c *AppConfig) StateFile() string {
	return filepath.Join(c.System.Workdir, "data", "powerfit-state.db")
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "PowerFit",
		Location: "America/Sao_Paulo",
		Workdir:  "/var/powerfit",
		Debug:    true,
	},
	Web: WebConfig{
		Host:      "0.0.0.0",
		Port:      1816,
		JwtSecret: "9b6de5cc-powerfit-b24cf35f",
	},
	Database: DBConfig{
		Type:   "postgres",
		Host:   "127.0.0.1",
		Port:   5432,
		Name:   "powerfit",
		User:   "postgres",
		Passwd: "myroot",
		Debug:  false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/powerfit/powerfit.log",
	},
	Mailer:  MailerConfig{SmtpPort: 587},
	Webhook: WebhookConfig{},
}

func setEnvValue(name string, f func(v string)) {
	var evalue = os.Getenv(name)
	if evalue != "" {
		f(evalue)
	}
}

func setEnvInt(name string, f func(v int)) {
	var evalue = os.Getenv(name)
	if evalue == "" {
		return
	}
	var ivalue int
	if _, err := fmt.Sscanf(evalue, "%d", &ivalue); err == nil {
		f(ivalue)
	}
}

// LoadConfig reads the YAML configuration file and applies PF_* environment
// overrides. A missing file falls back to DefaultAppConfig.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig

	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "config parse error: %v\n", err)
			}
		}
	}

	setEnvValue("PF_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("PF_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvInt("PF_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvValue("PF_WEB_JWT_SECRET", func(v string) { cfg.Web.JwtSecret = v })
	setEnvValue("PF_WEB_SESSION_SECRET", func(v string) { cfg.Web.SessionSecret = v })
	setEnvValue("PF_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvInt("PF_DB_PORT", func(v int) { cfg.Database.Port = v })
	setEnvValue("PF_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("PF_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("PF_DB_PWD", func(v string) { cfg.Database.Passwd = v })
	setEnvValue("PF_MAILER_PWD", func(v string) { cfg.Mailer.Password = v })

	if cfg.Web.SessionSecret == "" {
		cfg.Web.SessionSecret = random.String(32)
	}

	return cfg
}
