package contentapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/WizzAIWig/dcg-websites/internal/pkg/application/storefront"
	"github.com/WizzAIWig/dcg-websites/internal/pkg/presentation/api/content-api/problems"
	"github.com/WizzAIWig/dcg-websites/pkg/content"
	"github.com/WizzAIWig/dcg-websites/pkg/drupal"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/query"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	jsonapierrors "github.com/WizzAIWig/dcg-websites/pkg/jsonapi/errors"
)

var tracer = otel.Tracer("storefront-api/content")

type brandResponse struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Domains  []string         `json:"domains"`
	Features featuresResponse `json:"features"`
}

type featuresResponse struct {
	Blog          bool `json:"blog"`
	Events        bool `json:"events"`
	LearningPaths bool `json:"learningPaths"`
}

func NewListBrandsHandler(app storefront.Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brands := []brandResponse{}

		for _, b := range app.Brands() {
			brands = append(brands, newBrandResponse(b))
		}

		writeJSON(w, drupal.DefaultCacheTTL, brands)
	}
}

// NewResolveBrandHandler finds the brand serving the host given in the
// host parameter, or the request's own host when the parameter is missing
func NewResolveBrandHandler(app storefront.Storefront) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		host := r.URL.Query().Get("host")
		if host == "" {
			host = r.Host
		}

		brand, ok := app.BrandByHost(host)
		if !ok {
			problems.ReportUnknownBrandError(w, "no brand is configured for host "+host)
			return
		}

		writeJSON(w, drupal.DefaultCacheTTL, newBrandResponse(brand))
	}
}

func newBrandResponse(b storefront.Brand) brandResponse {
	return brandResponse{
		ID:      b.ID,
		Name:    b.Name,
		Domains: append([]string{}, b.Domains...),
		Features: featuresResponse{
			Blog:          b.Features.Blog,
			Events:        b.Features.Events,
			LearningPaths: b.Features.LearningPaths,
		},
	}
}

// NewListCoursesHandler lists the brand's courses. A q parameter turns the
// listing into a title search, category narrows it to one category slug.
// A search only honours limit.
func NewListCoursesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset, err := paging(r)
		if err != nil {
			problems.ReportNewInvalidRequest(w, err.Error())
			return
		}

		if text := r.URL.Query().Get("q"); text != "" {
			if r.URL.Query().Has("offset") || r.URL.Query().Has("category") {
				problems.ReportNewInvalidRequest(w, "q can not be combined with offset or category")
				return
			}

			serveList(w, r, "search-courses", func(ctx context.Context, c drupal.Client) ([]content.Course, error) {
				return c.SearchCourses(ctx, text, limit)
			})
			return
		}

		params := query.New(query.Limit(limit), query.Offset(offset))
		if category := r.URL.Query().Get("category"); category != "" {
			params.SetFilter("field_category.field_slug", query.Eq(category))
		}

		serveList(w, r, "list-courses", func(ctx context.Context, c drupal.Client) ([]content.Course, error) {
			return c.Courses(ctx, params)
		})
	}
}

func NewRetrieveCourseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		serveOne(w, r, "retrieve-course", func(ctx context.Context, c drupal.Client) (*content.Course, error) {
			return c.Course(ctx, slug)
		})
	}
}

func NewRetrieveCourseByIDHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := entityID(r)
		if !ok {
			problems.ReportNotFoundError(w, "not found")
			return
		}

		serveOne(w, r, "retrieve-course-by-id", func(ctx context.Context, c drupal.Client) (*content.Course, error) {
			return c.CourseByID(ctx, id)
		})
	}
}

func NewListCourseSchedulesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := entityID(r)
		if !ok {
			problems.ReportNotFoundError(w, "not found")
			return
		}

		serveList(w, r, "list-course-schedules", func(ctx context.Context, c drupal.Client) ([]content.CourseSchedule, error) {
			return c.Schedules(ctx, id)
		})
	}
}

func NewListUpcomingSchedulesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _, err := paging(r)
		if err != nil {
			problems.ReportNewInvalidRequest(w, err.Error())
			return
		}

		serveList(w, r, "list-upcoming-schedules", func(ctx context.Context, c drupal.Client) ([]content.CourseSchedule, error) {
			return c.UpcomingSchedules(ctx, limit)
		})
	}
}

func NewListTrainersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveList(w, r, "list-trainers", func(ctx context.Context, c drupal.Client) ([]content.Trainer, error) {
			return c.Trainers(ctx)
		})
	}
}

func NewRetrieveTrainerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		serveOne(w, r, "retrieve-trainer", func(ctx context.Context, c drupal.Client) (*content.Trainer, error) {
			return c.Trainer(ctx, slug)
		})
	}
}

func NewListBlogPostsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset, err := paging(r)
		if err != nil {
			problems.ReportNewInvalidRequest(w, err.Error())
			return
		}

		params := query.New(query.Limit(limit), query.Offset(offset))

		serveList(w, r, "list-blog-posts", func(ctx context.Context, c drupal.Client) ([]content.BlogPost, error) {
			return c.BlogPosts(ctx, params)
		})
	}
}

func NewRetrieveBlogPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		serveOne(w, r, "retrieve-blog-post", func(ctx context.Context, c drupal.Client) (*content.BlogPost, error) {
			return c.BlogPost(ctx, slug)
		})
	}
}

func NewListEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset, err := paging(r)
		if err != nil {
			problems.ReportNewInvalidRequest(w, err.Error())
			return
		}

		params := query.New(query.Limit(limit), query.Offset(offset))

		if eventType := r.URL.Query().Get("type"); eventType != "" {
			if !content.IsEventType(eventType) {
				problems.ReportNewInvalidRequest(w, fmt.Sprintf("unknown event type %q", eventType))
				return
			}
			params.SetFilter("field_event_type", query.Eq(eventType))
		}

		serveList(w, r, "list-events", func(ctx context.Context, c drupal.Client) ([]content.Event, error) {
			return c.Events(ctx, params)
		})
	}
}

func NewRetrieveEventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		serveOne(w, r, "retrieve-event", func(ctx context.Context, c drupal.Client) (*content.Event, error) {
			return c.Event(ctx, slug)
		})
	}
}

func NewListLearningPathsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveList(w, r, "list-learning-paths", func(ctx context.Context, c drupal.Client) ([]content.LearningPath, error) {
			return c.LearningPaths(ctx)
		})
	}
}

func NewRetrieveLearningPathHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		serveOne(w, r, "retrieve-learning-path", func(ctx context.Context, c drupal.Client) (*content.LearningPath, error) {
			return c.LearningPath(ctx, slug)
		})
	}
}

func NewListFAQsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		serveList(w, r, "list-faqs", func(ctx context.Context, c drupal.Client) ([]content.Faq, error) {
			return c.FAQs(ctx, category)
		})
	}
}

func NewListTestimonialsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID := r.URL.Query().Get("course")
		if courseID != "" {
			if _, err := uuid.Parse(courseID); err != nil {
				problems.ReportNewInvalidRequest(w, "course must be a course id")
				return
			}
		}

		serveList(w, r, "list-testimonials", func(ctx context.Context, c drupal.Client) ([]content.Testimonial, error) {
			return c.Testimonials(ctx, courseID)
		})
	}
}

func NewListCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveList(w, r, "list-categories", func(ctx context.Context, c drupal.Client) ([]content.Category, error) {
			return c.Categories(ctx)
		})
	}
}

func serveList[T any](w http.ResponseWriter, r *http.Request, operation string, fetch func(context.Context, drupal.Client) ([]T, error)) {
	var err error

	ctx, span := tracer.Start(r.Context(), operation)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	client := getClientFromContext(ctx)

	result, err := fetch(ctx, client)
	if err != nil {
		reportError(ctx, w, err)
		return
	}

	if result == nil {
		result = []T{}
	}

	span.SetAttributes(attribute.Int("count", len(result)))

	writeJSON(w, client.CacheTTL(), result)
}

// serveOne writes the entity returned by fetch, or a 404 problem when fetch
// found nothing
func serveOne[T any](w http.ResponseWriter, r *http.Request, operation string, fetch func(context.Context, drupal.Client) (*T, error)) {
	var err error

	ctx, span := tracer.Start(r.Context(), operation)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	client := getClientFromContext(ctx)

	result, err := fetch(ctx, client)
	if err != nil {
		reportError(ctx, w, err)
		return
	}

	if result == nil {
		problems.ReportNotFoundError(w, "not found")
		return
	}

	writeJSON(w, client.CacheTTL(), result)
}

func reportError(ctx context.Context, w http.ResponseWriter, err error) {
	log := logging.GetFromContext(ctx)

	var apiErr *jsonapierrors.APIError
	if errors.As(err, &apiErr) {
		log.Error("cms responded with an error", "status", apiErr.StatusCode, "err", err.Error())
		problems.ReportUpstreamError(w, fmt.Sprintf("cms responded with status %d", apiErr.StatusCode))
		return
	}

	log.Error("failed to read content", "err", err.Error())
	problems.ReportNewInternalError(w, "failed to read content")
}

func writeJSON(w http.ResponseWriter, ttl time.Duration, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		problems.ReportNewInternalError(w, "failed to encode response")
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(ttl.Seconds())))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func entityID(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func paging(r *http.Request) (limit, offset int, err error) {
	if limit, err = nonNegative(r, "limit"); err != nil {
		return
	}
	offset, err = nonNegative(r, "offset")
	return
}

func nonNegative(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non negative number", name)
	}

	return n, nil
}
