package cli

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rmarchan/tablero/pkg/domain/metrics"
)

func TestSeverityStyle(t *testing.T) {
	tests := []struct {
		name     string
		severity string
		want     lipgloss.Color
	}{
		{"delivery on track", metrics.DeliveryOnTrack.Severity(), lipgloss.Color("42")},
		{"delivery behind", metrics.DeliveryBehind.Severity(), lipgloss.Color("196")},
		{"over consumed", metrics.ConsumptionOver.Severity(), lipgloss.Color("196")},
		{"under consumed", metrics.ConsumptionUnder.Severity(), lipgloss.Color("39")},
		{"at limit", metrics.ConsumptionAtLimit.Severity(), lipgloss.Color("220")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := severityStyle(tt.severity).GetForeground(); got != tt.want {
				t.Errorf("severityStyle(%q) foreground = %v, want %v", tt.severity, got, tt.want)
			}
		})
	}
}
