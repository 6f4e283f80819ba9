package uuidkit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/uuidkit/tracing"
)

// Result is the outcome of digesting one location.
type Result struct {
	URL string
	ID  *uuid.UUID
	Err error
}

// DigestURLs digests URLs concurrently with Processor.WorkerCount workers.
// Results are returned in input order; a failure affects only its own entry.
// Once ctx is done remaining locations are not opened.
func (s *Service) DigestURLs(ctx context.Context, URLs ...string) []Result {
	results := make([]Result, len(URLs))
	if len(URLs) == 0 {
		return results
	}
	ctx, span := tracing.StartSpan(ctx, "uuidkit.DigestURLs")
	defer tracing.EndSpan(span, nil)

	workers := s.config.Processor.WorkerCount
	if workers > len(URLs) {
		workers = len(URLs)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				result := &results[index]
				result.URL = URLs[index]
				if err := ctx.Err(); err != nil {
					result.Err = err
					continue
				}
				result.ID, result.Err = s.FromURL(ctx, URLs[index])
			}
		}()
	}
	for i := range URLs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
