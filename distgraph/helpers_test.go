package distgraph_test

import "github.com/katalvlaran/syncdist/progress"

// distgraphReporter forwards every done count to ch.
func distgraphReporter(ch chan<- int) progress.Reporter {
	return progress.Func(func(stage progress.Stage, done, total int) {
		if stage == progress.StageDistanceGraph {
			ch <- done
		}
	})
}
