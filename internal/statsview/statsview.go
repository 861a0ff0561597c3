//go:build statsview

package statsview

import (
	"context"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// Address the stats server listens on
const Address = "localhost:12600"

// Launch serves the graphs in the background until ctx is cancelled. It
// always reports true in builds with the stats server.
func Launch(ctx context.Context, logger *log.Logger) bool {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	manager := statsview.New()

	go manager.Start()
	go func() {
		<-ctx.Done()
		manager.Stop()
	}()

	logger.Info("Serving runtime stats",
		log.String("graphs", "http://"+Address+"/debug/statsview"),
		log.String("pprof", "http://"+Address+"/debug/pprof/"))
	return true
}
