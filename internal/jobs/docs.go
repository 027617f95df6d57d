// Package jobs provides scheduled background tasks for the order entry system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Drains the notification outbox every five
// seconds and publishes pending confirmations to the message broker.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outbox, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed publish leaves the notification pending, so it is retried on the
// next tick. Notifications are marked sent only after a successful publish.
package jobs
