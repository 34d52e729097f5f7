package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kbukum/zipkit/component"
	"github.com/kbukum/zipkit/version"
)

// Summary prints what the application started with: version, components
// and their health.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	out             io.Writer
}

// NewSummary creates a summary printing to stdout.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{serviceName: serviceName, version: version, out: os.Stdout}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// Display prints the summary with live health from the registry.
func (s *Summary) Display(ctx context.Context, registry *component.Registry) {
	w := s.out
	info := version.Get()

	fmt.Fprintf(w, "\n🚀 %s v%s started in %.2fs\n", s.serviceName, s.version, s.startupDuration.Seconds())
	fmt.Fprintf(w, "   %s %s (%s)\n\n", info.Short(), info.GoVersion, info.Platform)

	health := registry.HealthAll(ctx)
	if len(health) == 0 {
		fmt.Fprintf(w, "   └── No components registered\n")
		return
	}

	fmt.Fprintf(w, "📦 Components\n")
	healthy := 0
	for i, h := range health {
		prefix := "├──"
		if i == len(health)-1 {
			prefix = "└──"
		}
		line := fmt.Sprintf("   %s %s %s (%s)", prefix, statusIcon(h.Status), h.Name, h.Status)
		if d, ok := registry.Get(h.Name).(component.Describable); ok {
			line += ": " + d.Describe()
		}
		fmt.Fprintln(w, line)
		if h.Status == component.StatusHealthy {
			healthy++
		}
	}
	fmt.Fprintln(w)

	if healthy == len(health) {
		fmt.Fprintf(w, "✅ All components healthy (%d/%d)\n\n", healthy, len(health))
	} else {
		fmt.Fprintf(w, "⚠️  Some components have issues (%d/%d healthy)\n\n", healthy, len(health))
	}
}

func statusIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	default:
		return "❌"
	}
}
