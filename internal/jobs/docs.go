// Package jobs provides scheduled background tasks for the delivery platform.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. DeliveryDispatchJob - Periodically assigns the oldest pending delivery
// to the best available courier.
//
// # Usage
//
// Jobs are managed through JobManager, which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job treats "no pending deliveries" and "no available couriers"
// as quiet passes; everything else is logged as a system issue.
package jobs
