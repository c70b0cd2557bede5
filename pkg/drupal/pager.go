package drupal

import (
	"context"
	"fmt"

	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/query"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// Pages calls fetch with increasing page offsets and hands every entity to
// callback, until fetch returns fewer entities than pageSize. Every call to
// fetch is an independent request. Drupal never returns more than
// MaxPageLimit entities per page, so larger page sizes are lowered to it.
func Pages[T any](ctx context.Context, pageSize int, fetch func(context.Context, query.Page) ([]T, error), callback func(t T)) (count int, err error) {
	if pageSize < 1 {
		pageSize = DefaultPageLimit
	}

	pageSize = min(pageSize, MaxPageLimit)

	logger := logging.GetFromContext(ctx)

	page := query.Page{Limit: pageSize}

	for {
		var result []T

		logger.Debug("fetching page", "limit", page.Limit, "offset", page.Offset)

		result, err = fetch(ctx, page)
		if err != nil {
			err = fmt.Errorf("failed to fetch page at offset %d: %w", page.Offset, err)
			return
		}

		for _, e := range result {
			callback(e)
		}

		batchSize := len(result)
		count += batchSize

		if batchSize < pageSize {
			break
		}

		page.Offset += pageSize
	}

	return
}
