// Package notify delivers best-effort notifications for new contact-form
// submissions. Failures are logged and never reach the submitting caller.
package notify

import (
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/guonaihong/gout"
	"github.com/panjf2000/ants/v2"
	"github.com/powerfitbr/powerfit/config"
	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/internal/store"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const workerPoolSize = 4

type Notifier struct {
	mailer  *config.MailerConfig
	webhook *config.WebhookConfig
	bus     EventBus.Bus
	pool    *ants.Pool
}

// New wires the notifier onto the application bus. Dispatch happens on a
// bounded worker pool so a slow SMTP server never blocks a form submission.
func New(mailer *config.MailerConfig, webhook *config.WebhookConfig, bus EventBus.Bus) *Notifier {
	pool, err := ants.NewPool(workerPoolSize)
	if err != nil {
		zap.L().Warn("notify pool init failed", zap.Error(err))
		return &Notifier{mailer: mailer, webhook: webhook}
	}
	n := &Notifier{mailer: mailer, webhook: webhook, bus: bus, pool: pool}
	if bus != nil {
		if err := bus.Subscribe(store.TopicContactAdded, n.onContactAdded); err != nil {
			zap.L().Warn("notify subscribe failed", zap.Error(err))
		}
	}
	return n
}

func (n *Notifier) onContactAdded(msg domain.ContactMessage) {
	if n.pool == nil {
		return
	}
	if n.mailer.Enabled {
		_ = n.pool.Submit(func() { n.sendMail(msg) })
	}
	if n.webhook.Enabled && n.webhook.URL != "" {
		_ = n.pool.Submit(func() { n.sendWebhook(msg) })
	}
}

func (n *Notifier) sendMail(msg domain.ContactMessage) {
	m := gomail.NewMessage()
	m.SetHeader("From", n.mailer.From)
	m.SetHeader("To", n.mailer.NotifyTo)
	m.SetHeader("Subject", fmt.Sprintf("[PowerFit] Novo contato: %s", msg.Subject))
	m.SetBody("text/plain", fmt.Sprintf(
		"Nome: %s\nEmail: %s\nTelefone: %s\nAssunto: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message))

	d := gomail.NewDialer(n.mailer.SmtpHost, n.mailer.SmtpPort, n.mailer.Username, n.mailer.Password)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Warn("contact mail notify failed", zap.String("id", msg.ID), zap.Error(err))
		return
	}
	zap.L().Info("contact mail notify sent", zap.String("id", msg.ID))
}

func (n *Notifier) sendWebhook(msg domain.ContactMessage) {
	err := gout.POST(n.webhook.URL).
		SetTimeout(10 * time.Second).
		SetJSON(gout.H{
			"event":   "contact.created",
			"id":      msg.ID,
			"name":    msg.Name,
			"email":   msg.Email,
			"subject": msg.Subject,
			"date":    msg.Date,
		}).
		Do()
	if err != nil {
		zap.L().Warn("contact webhook notify failed", zap.String("id", msg.ID), zap.Error(err))
		return
	}
	zap.L().Info("contact webhook notify sent", zap.String("id", msg.ID))
}

// Close drains the worker pool.
func (n *Notifier) Close() {
	if n.pool != nil {
		n.pool.Release()
	}
}
