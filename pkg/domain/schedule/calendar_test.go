package schedule_test

import (
	"testing"
	"time"

	"github.com/rmarchan/tablero/pkg/domain/schedule"
)

// fixedNow pins the calculator to Monday 2025-06-16.
func fixedNow() time.Time {
	return time.Date(2025, time.June, 16, 14, 30, 0, 0, time.Local)
}

func newCalc(jurisdiction string) *schedule.Calculator {
	return schedule.NewCalculator(schedule.NewHolidayCalendar(jurisdiction), fixedNow)
}

func TestDaysUntilDelivery(t *testing.T) {
	tests := []struct {
		name         string
		jurisdiction string
		due          time.Time
		want         int
	}{
		{"same day", "AR", time.Date(2025, time.June, 16, 0, 0, 0, 0, time.Local), 0},
		{"past date", "AR", time.Date(2025, time.June, 2, 0, 0, 0, 0, time.Local), 0},
		{"next day", "AR", time.Date(2025, time.June, 17, 0, 0, 0, 0, time.Local), 1},
		// Through the following Monday: the weekend drops out and June 20
		// (Belgrano day) is a holiday in AR.
		{"over weekend and holiday", "AR", time.Date(2025, time.June, 23, 0, 0, 0, 0, time.Local), 4},
		// ES has no June 20 holiday, so the same span counts one more day.
		{"over weekend only", "ES", time.Date(2025, time.June, 23, 0, 0, 0, 0, time.Local), 5},
		{"unknown jurisdiction counts weekdays", "XX", time.Date(2025, time.June, 23, 0, 0, 0, 0, time.Local), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := newCalc(tt.jurisdiction)
			if got := calc.DaysUntilDelivery(tt.due); got != tt.want {
				t.Errorf("DaysUntilDelivery(%s) = %d, want %d", tt.due.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestDaysUntilDelivery_Monotonic(t *testing.T) {
	calc := newCalc("AR")

	prev := 0
	for offset := 0; offset < 60; offset++ {
		due := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)
		got := calc.DaysUntilDelivery(due)
		if got < prev {
			t.Fatalf("days decreased from %d to %d at offset %d", prev, got, offset)
		}
		prev = got
	}
}

func TestIsBusinessDay(t *testing.T) {
	calc := newCalc("AR")

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"weekday", time.Date(2025, time.June, 17, 0, 0, 0, 0, time.Local), true},
		{"saturday", time.Date(2025, time.June, 21, 0, 0, 0, 0, time.Local), false},
		{"sunday", time.Date(2025, time.June, 22, 0, 0, 0, 0, time.Local), false},
		{"new year", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local), false},
		{"independence day", time.Date(2025, time.July, 9, 0, 0, 0, 0, time.Local), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.IsBusinessDay(tt.day); got != tt.want {
				t.Errorf("IsBusinessDay(%s) = %v, want %v", tt.day.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestHolidayCalendar_AddHoliday(t *testing.T) {
	cal := schedule.NewHolidayCalendar("AR")
	bridge := time.Date(2025, time.June, 17, 0, 0, 0, 0, time.Local)

	if cal.IsHoliday(bridge) {
		t.Fatal("bridge day should not be a holiday before AddHoliday")
	}
	cal.AddHoliday(bridge)
	if !cal.IsHoliday(bridge) {
		t.Error("bridge day should be a holiday after AddHoliday")
	}

	calc := schedule.NewCalculator(cal, fixedNow)
	if got := calc.DaysUntilDelivery(time.Date(2025, time.June, 18, 0, 0, 0, 0, time.Local)); got != 1 {
		t.Errorf("DaysUntilDelivery over bridge day = %d, want 1", got)
	}
}
