// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with the six field
// (seconds) format.
//
// # Available Jobs
//
// 1. StatusPollJob - Polls the status of watched orders until each one is completed or failed
//
// # Usage
//
//	poll := jobs.NewStatusPollJob(lookupHandler, cfg.StatusPollSchedule, render, logger)
//	_ = poll.Watch(orderID)
//
//	jobManager := jobs.NewJobManager()
//	jobManager.Add("status poll", poll)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Failed lookups are logged and retried on the next tick
// - A poll still running when the next tick fires causes that tick to be skipped
// - Failed job starts will stop any already running jobs
package jobs
