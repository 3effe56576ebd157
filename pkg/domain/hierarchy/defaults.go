package hierarchy

import (
	"time"

	"github.com/rmarchan/tablero/pkg/domain/tracking"
)

// DefaultStages is the built-in stage table used when no stages.yaml has
// been written yet. Dates not yet agreed with the client stay zero.
func DefaultStages() []Stage {
	return []Stage{
		{
			ID:               1,
			Name:             "Stage 1",
			DeliverableRange: Range{Start: 0, End: 13},
			StartDate:        tracking.NewDate(2025, time.January, 3),
			DueDate:          tracking.NewDate(2025, time.May, 23),
		},
		{
			ID:               2,
			Name:             "Stage 2",
			DeliverableRange: Range{Start: 14, End: 34},
			DueDate:          tracking.NewDate(2025, time.September, 26),
		},
		{
			ID:               3,
			Name:             "Stage 3",
			DeliverableRange: Range{Start: 35, End: 55},
			DueDate:          tracking.NewDate(2025, time.December, 19),
		},
		{
			ID:               4,
			Name:             "Stage 4",
			DeliverableRange: Range{Start: 56, End: 70},
			DueDate:          tracking.NewDate(2026, time.February, 27),
		},
	}
}

// DefaultSchedule is the built-in deliverable date table. Only the
// deliverables with a committed plan carry dates; the rest are added to
// stages.yaml as the plan firms up.
func DefaultSchedule() DeliverableSchedule {
	start := map[int]tracking.Date{
		0:  tracking.NewDate(2024, time.December, 31),
		1:  tracking.NewDate(2025, time.January, 2),
		2:  tracking.NewDate(2025, time.January, 2),
		3:  tracking.NewDate(2025, time.January, 2),
		4:  tracking.NewDate(2025, time.February, 14),
		5:  tracking.NewDate(2025, time.February, 28),
		6:  tracking.NewDate(2025, time.February, 28),
		7:  tracking.NewDate(2025, time.March, 14),
		8:  tracking.NewDate(2025, time.March, 14),
		9:  tracking.NewDate(2025, time.March, 14),
		10: tracking.NewDate(2025, time.April, 14),
		11: tracking.NewDate(2025, time.April, 28),
		12: tracking.NewDate(2025, time.April, 28),
		13: tracking.NewDate(2025, time.May, 12),
		14: tracking.NewDate(2025, time.April, 28),
	}

	due := map[int]tracking.Date{
		0:  tracking.NewDate(2025, time.January, 31),
		1:  tracking.NewDate(2025, time.January, 31),
		2:  tracking.NewDate(2025, time.February, 14),
		3:  tracking.NewDate(2025, time.February, 14),
		4:  tracking.NewDate(2025, time.February, 28),
		5:  tracking.NewDate(2025, time.March, 14),
		6:  tracking.NewDate(2025, time.March, 14),
		7:  tracking.NewDate(2025, time.April, 11),
		8:  tracking.NewDate(2025, time.April, 11),
		9:  tracking.NewDate(2025, time.April, 11),
		10: tracking.NewDate(2025, time.April, 25),
		11: tracking.NewDate(2025, time.May, 9),
		12: tracking.NewDate(2025, time.May, 9),
		13: tracking.NewDate(2025, time.May, 23),
		14: tracking.NewDate(2025, time.May, 9),
		15: tracking.NewDate(2025, time.May, 23),
		16: tracking.NewDate(2025, time.June, 6),
		17: tracking.NewDate(2025, time.June, 6),
		18: tracking.NewDate(2025, time.June, 6),
		19: tracking.NewDate(2025, time.June, 6),
		20: tracking.NewDate(2025, time.June, 20),
		21: tracking.NewDate(2025, time.June, 20),
		22: tracking.NewDate(2025, time.July, 4),
		23: tracking.NewDate(2025, time.July, 4),
		24: tracking.NewDate(2025, time.August, 1),
		25: tracking.NewDate(2025, time.August, 1),
		26: tracking.NewDate(2025, time.August, 1),
		27: tracking.NewDate(2025, time.August, 1),
		28: tracking.NewDate(2025, time.August, 1),
		29: tracking.NewDate(2025, time.August, 15),
		30: tracking.NewDate(2025, time.August, 15),
		31: tracking.NewDate(2025, time.September, 12),
		32: tracking.NewDate(2025, time.September, 12),
		33: tracking.NewDate(2025, time.September, 26),
		34: tracking.NewDate(2025, time.September, 26),
		35: tracking.NewDate(2025, time.October, 10),
		36: tracking.NewDate(2025, time.October, 10),
		37: tracking.NewDate(2025, time.October, 10),
		38: tracking.NewDate(2025, time.October, 10),
		39: tracking.NewDate(2025, time.October, 24),
		40: tracking.NewDate(2025, time.October, 24),
		41: tracking.NewDate(2025, time.October, 24),
		42: tracking.NewDate(2025, time.October, 24),
		43: tracking.NewDate(2025, time.October, 24),
		44: tracking.NewDate(2025, time.October, 24),
		45: tracking.NewDate(2025, time.November, 7),
		46: tracking.NewDate(2025, time.November, 7),
		47: tracking.NewDate(2025, time.November, 7),
		48: tracking.NewDate(2025, time.November, 7),
		49: tracking.NewDate(2025, time.November, 7),
		50: tracking.NewDate(2025, time.November, 21),
		51: tracking.NewDate(2025, time.November, 21),
		52: tracking.NewDate(2025, time.December, 5),
		53: tracking.NewDate(2025, time.December, 5),
		54: tracking.NewDate(2025, time.December, 19),
		55: tracking.NewDate(2025, time.December, 5),
		56: tracking.NewDate(2025, time.December, 5),
		57: tracking.NewDate(2025, time.December, 5),
		58: tracking.NewDate(2026, time.January, 16),
		59: tracking.NewDate(2026, time.January, 16),
		60: tracking.NewDate(2026, time.January, 16),
		61: tracking.NewDate(2026, time.January, 30),
		62: tracking.NewDate(2026, time.January, 30),
		63: tracking.NewDate(2026, time.January, 30),
		64: tracking.NewDate(2026, time.January, 30),
		65: tracking.NewDate(2026, time.January, 30),
		66: tracking.NewDate(2026, time.February, 13),
		67: tracking.NewDate(2026, time.February, 13),
		68: tracking.NewDate(2026, time.February, 27),
		69: tracking.NewDate(2026, time.February, 27),
	}

	return DeliverableSchedule{StartDates: start, DueDates: due}
}
