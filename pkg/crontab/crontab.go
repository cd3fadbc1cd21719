package crontab

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

var crontab = cron.New()

// RegisterCron registers fn to run every period. A tick firing while a
// previous run is still in progress is skipped.
func RegisterCron(period time.Duration, fn func()) error {
	var running atomic.Bool
	_, err := crontab.AddFunc(fmt.Sprintf("@every %s", period.String()), func() {
		if !running.CompareAndSwap(false, true) {
			return
		}
		defer running.Store(false)
		fn()
	})
	return err
}

// Start ...
func Start() {
	crontab.Start()
}

// Stop ...
func Stop() context.Context {
	return crontab.Stop()
}
