package tracking_test

import (
	"testing"

	"github.com/rmarchan/tablero/pkg/domain/tracking"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantKind   tracking.TagKind
		wantNumber int
	}{
		{"spanish stage", "Etapa 2", tracking.TagStage, 2},
		{"english stage", "stage 1", tracking.TagStage, 1},
		{"compact stage", "stage3", tracking.TagStage, 3},
		{"uppercase deliverable", "ENTREGABLE 15", tracking.TagDeliverable, 15},
		{"english deliverable", "Deliverable 7", tracking.TagDeliverable, 7},
		{"deliverable without number", "entregable", tracking.TagDeliverable, 0},
		{"leading whitespace", "  Etapa 4  ", tracking.TagStage, 4},
		{"unrelated tag", "bug", tracking.TagOther, 0},
		{"unrelated with number", "sprint 12", tracking.TagOther, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := tracking.ParseTag(tt.raw)
			if tag.Kind != tt.wantKind {
				t.Errorf("ParseTag(%q).Kind = %v, want %v", tt.raw, tag.Kind, tt.wantKind)
			}
			if tag.Number != tt.wantNumber {
				t.Errorf("ParseTag(%q).Number = %v, want %v", tt.raw, tag.Number, tt.wantNumber)
			}
		})
	}
}

func TestTagsOfKind(t *testing.T) {
	tags := tracking.ParseTags([]string{"Etapa 1", "bug", "Entregable 5", "Entregable 9"})

	stages := tracking.TagsOfKind(tags, tracking.TagStage)
	if len(stages) != 1 || stages[0].Number != 1 {
		t.Errorf("stage tags = %v, want one tag numbered 1", stages)
	}

	delivs := tracking.TagsOfKind(tags, tracking.TagDeliverable)
	if len(delivs) != 2 || delivs[0].Number != 5 || delivs[1].Number != 9 {
		t.Errorf("deliverable tags = %v, want [5 9] in tracker order", delivs)
	}
}
