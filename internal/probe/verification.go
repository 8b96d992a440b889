package probe

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// verifyPersons checks the pipeline's output guarantees over every
// assembled person and reports violations.
func verifyPersons(ctx context.Context, persons []*model.Person, stats *Stats) error {
	log.Println("🔍 Verifying output guarantees...")

	if len(persons) == 0 {
		return fmt.Errorf("no persons to verify")
	}

	known := map[model.Classification]bool{}
	for _, c := range model.Classifications() {
		known[c] = true
	}

	seen := map[string]bool{}
	for _, p := range persons {
		for _, violation := range checkPerson(p, known) {
			stats.Violations++
			log.Printf("⚠️  %s: %s", p.ID, violation)
		}
		if seen[p.ID] {
			stats.Violations++
			log.Printf("⚠️  %s: duplicate identifier in output", p.ID)
		}
		seen[p.ID] = true
	}

	if stats.Violations > 0 {
		return fmt.Errorf("%d guarantee violations across %d persons", stats.Violations, len(persons))
	}

	log.Printf("✅ All guarantees hold for %d persons", len(persons))
	return nil
}

// checkPerson returns the list of guarantee violations for one person.
func checkPerson(p *model.Person, known map[model.Classification]bool) []string {
	var violations []string

	if p.ID == "" || !strings.Contains(p.ID, ":") {
		violations = append(violations, "identifier missing source namespace")
	}
	if len(p.Images) == 0 {
		violations = append(violations, "empty image list")
	}
	if p.ThumbnailURL == "" {
		violations = append(violations, "empty thumbnail")
	} else if len(p.Images) > 0 && p.Images[0] != p.ThumbnailURL {
		violations = append(violations, "thumbnail is not the first image")
	}
	if !known[p.Classification] {
		violations = append(violations, fmt.Sprintf("unknown classification %q", p.Classification))
	}
	if p.CaseTypeDescription == "" {
		violations = append(violations, "empty case type description")
	}
	if !p.Classification.Criminal() && p.Charges != nil {
		violations = append(violations, "charges present on non-criminal classification")
	}
	if p.Raw != nil && p.Raw.Status != "" &&
		strings.EqualFold(p.Raw.Status, "captured") && p.Classification != model.Captured {
		violations = append(violations, "captured status not reflected in classification")
	}
	if p.Height != "" && !strings.Contains(p.Height, "m") {
		violations = append(violations, fmt.Sprintf("height %q not formatted in meters", p.Height))
	}

	return violations
}
