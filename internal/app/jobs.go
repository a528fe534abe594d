package app

import (
	"time"

	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/powerfitbr/powerfit/pkg/metrics"
	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
		go a.SchedStoreMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.gormDB.
			Where("opt_time < ? ", time.Now().
				Add(-time.Hour*24*365)).Delete(domain.SysOprLog{})
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedContactRetentionTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask samples host gauges for the dashboard
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	_cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(_cpuuse) > 0 {
		metrics.SetGauge(metrics.SystemCpuUse, int64(_cpuuse[0]*100)) // percentage * 100
	}

	_meminfo, err := mem.VirtualMemory()
	if err == nil {
		metrics.SetGauge(metrics.SystemMemUse, int64(_meminfo.Used/1024/1024))
	}
}

// SchedStoreMonitorTask samples container gauges for the dashboard
func (a *Application) SchedStoreMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	metrics.SetGauge(metrics.CartItems, int64(a.cart.ItemCount()))
	metrics.SetGauge(metrics.CartTotal, int64(a.cart.Total()*100))
	metrics.SetGauge(metrics.ContactsTotal, int64(a.contacts.CountByStatus("")))
	metrics.SetGauge(metrics.ContactsNew, int64(a.contacts.CountByStatus(domain.ContactStatusNew)))
}

// SchedContactRetentionTask drops resolved contacts past the configured
// retention window. A zero retention keeps everything.
func (a *Application) SchedContactRetentionTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	days := a.configManager.GetInt("contact", "RetentionDays")
	if days <= 0 {
		return
	}
	cutoff := time.Now().Add(-time.Hour * 24 * time.Duration(days))
	if dropped := a.contacts.PurgeResolvedBefore(cutoff); dropped > 0 {
		zap.L().Info("purged resolved contacts", zap.Int("count", dropped), zap.Int("retention_days", days))
	}
}
