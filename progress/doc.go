// Package progress defines the injectable progress-reporting collaborator
// used by long-running stages of the distance engine.
//
// The engine never prints. Stages call Reporter.Report(stage, done, total)
// and the caller decides what that means: nothing (Nop), a structured log
// line (LogReporter), Prometheus gauges (MetricsReporter) or any function
// (Func). Multi fans one report out to several reporters.
//
// All reporters in this package are safe for concurrent use; stages that
// fan out across goroutines report through a Tracker.
package progress
