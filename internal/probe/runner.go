package probe

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dragnet-io/dragnet/internal/adapters/source"
	"github.com/dragnet-io/dragnet/internal/domain/assemble"
	"github.com/dragnet-io/dragnet/internal/domain/images"
	"github.com/dragnet-io/dragnet/internal/domain/model"
	"github.com/dragnet-io/dragnet/pkg/logger"
)

// Run executes the complete probe: fetch, assemble, verify, report.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime:  time.Now(),
		ByCategory: map[string]int{},
	}

	logger.Get().Info(ctx, "starting dragnet source probe",
		logger.String("baseURL", config.BaseURL),
		logger.Int("pages", config.Pages),
		logger.Int("pageSize", config.PageSize),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verbose", config.Verbose))

	// Step 1: Fetch a bounded slice of the listing
	raws, err := fetchRecords(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("source fetch failed: %w", err)
	}

	// Step 2: Run the pipeline over every record
	persons := assembleRecords(ctx, config, raws, stats)

	// Step 3: Verify the output guarantees
	if err := verifyPersons(ctx, persons, stats); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "probe completed successfully")
	return nil
}

// fetchRecords pulls up to config.Pages pages from the live source.
func fetchRecords(ctx context.Context, config *Config, stats *Stats) ([]model.RawRecord, error) {
	log.Println("📡 Fetching source listing...")

	client := source.NewClient(
		source.WithBaseURL(config.BaseURL),
		source.WithPageSize(config.PageSize),
		source.WithMaxPages(config.Pages),
		source.WithPageDelay(time.Duration(config.DelayMS)*time.Millisecond),
		source.WithHTTPClient(&http.Client{Timeout: config.Timeout}),
	)

	raws := client.FetchAll(ctx)
	if len(raws) == 0 {
		return nil, fmt.Errorf("source returned no records")
	}

	stats.RecordsFetched = len(raws)
	log.Printf("✅ Fetched %d records", len(raws))
	return raws, nil
}

// assembleRecords runs the normalization pipeline over each raw record.
func assembleRecords(ctx context.Context, config *Config, raws []model.RawRecord, stats *Stats) []*model.Person {
	log.Println("⚙️  Running normalization pipeline...")

	persons := make([]*model.Person, 0, len(raws))
	for i := range raws {
		p, err := assemble.Person(&raws[i])
		if err != nil {
			stats.AssembleFailures++
			if config.Verbose {
				log.Printf("   dropped record %q: %v", raws[i].UID, err)
			}
			continue
		}
		stats.ByCategory[p.Classification.String()]++
		if images.IsPlaceholder(p.ThumbnailURL) {
			stats.Placeholders++
		}
		persons = append(persons, p)
	}

	stats.PersonsAssembled = len(persons)
	log.Printf("✅ Assembled %d persons (%d dropped)", len(persons), stats.AssembleFailures)
	return persons
}

// displayFinalStats shows the final probe statistics.
func displayFinalStats(stats *Stats) {
	log.Println("📊 Final Statistics:")
	log.Printf("   Duration: %v", stats.Duration)
	log.Printf("   Records fetched: %d", stats.RecordsFetched)
	log.Printf("   Persons assembled: %d", stats.PersonsAssembled)
	log.Printf("   Assembly failures: %d", stats.AssembleFailures)
	log.Printf("   Placeholder thumbnails: %d", stats.Placeholders)
	log.Printf("   Guarantee violations: %d", stats.Violations)
	log.Println("   Classification distribution:")
	for _, category := range model.Classifications() {
		if n := stats.ByCategory[category.String()]; n > 0 {
			log.Printf("      %-24s %d", category.String(), n)
		}
	}
}
