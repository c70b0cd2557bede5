package drupal

import (
	"context"
	"errors"
	"testing"

	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/query"
	"github.com/matryer/is"
)

func TestPagesStopsAtAShortPage(t *testing.T) {
	is := is.New(t)

	all := []string{"a", "b", "c", "d", "e"}
	offsets := []int{}

	fetch := func(ctx context.Context, page query.Page) ([]string, error) {
		offsets = append(offsets, page.Offset)
		end := min(page.Offset+page.Limit, len(all))
		return all[page.Offset:end], nil
	}

	seen := []string{}
	count, err := Pages(context.Background(), 2, fetch, func(s string) { seen = append(seen, s) })

	is.NoErr(err)
	is.Equal(count, 5)
	is.Equal(seen, all)
	is.Equal(offsets, []int{0, 2, 4})
}

func TestPagesMakesOneExtraCallWhenTheLastPageIsFull(t *testing.T) {
	is := is.New(t)

	calls := 0
	fetch := func(ctx context.Context, page query.Page) ([]int, error) {
		calls++
		if page.Offset >= 4 {
			return []int{}, nil
		}
		return []int{page.Offset, page.Offset + 1}, nil
	}

	count, err := Pages(context.Background(), 2, fetch, func(int) {})

	is.NoErr(err)
	is.Equal(count, 4)
	is.Equal(calls, 3)
}

func TestPagesReturnsFetchErrors(t *testing.T) {
	is := is.New(t)

	failure := errors.New("cms unavailable")
	fetch := func(ctx context.Context, page query.Page) ([]int, error) {
		if page.Offset > 0 {
			return nil, failure
		}
		return []int{1, 2}, nil
	}

	count, err := Pages(context.Background(), 2, fetch, func(int) {})

	is.True(errors.Is(err, failure))
	is.Equal(count, 2)
}

func TestPagesNeverAsksForMoreThanTheCMSReturns(t *testing.T) {
	is := is.New(t)

	all := make([]int, 120)
	limits := []int{}

	fetch := func(ctx context.Context, page query.Page) ([]int, error) {
		limits = append(limits, page.Limit)
		end := min(page.Offset+min(page.Limit, 50), len(all))
		return all[page.Offset:end], nil
	}

	count, err := Pages(context.Background(), 100, fetch, func(int) {})

	is.NoErr(err)
	is.Equal(count, 120)
	is.Equal(limits, []int{MaxPageLimit, MaxPageLimit, MaxPageLimit})
}
