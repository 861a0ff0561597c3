//go:build !statsview

package statsview

import (
	"context"

	"github.com/retroenv/retrogolib/log"
)

// Launch warns that the stats server is not part of this build and reports
// false
func Launch(_ context.Context, logger *log.Logger) bool {
	logger.Warn("Ignoring -stats, rebuild with -tags statsview to include the stats server")
	return false
}
