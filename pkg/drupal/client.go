package drupal

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/WizzAIWig/dcg-websites/pkg/content"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/query"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	jsonapierrors "github.com/WizzAIWig/dcg-websites/pkg/jsonapi/errors"
)

//go:generate moq -rm -out ../test/drupalclient_mock.go . Client

// Client reads storefront content from the CMS JSON:API. Single entity
// lookups return nil and no error when the entity does not exist.
type Client interface {
	Brand() string
	CacheTTL() time.Duration

	Courses(ctx context.Context, params query.Params) ([]content.Course, error)
	Course(ctx context.Context, slug string) (*content.Course, error)
	CourseByID(ctx context.Context, id string) (*content.Course, error)
	CoursesByCategory(ctx context.Context, categorySlug string) ([]content.Course, error)
	SearchCourses(ctx context.Context, text string, limit int) ([]content.Course, error)

	Schedules(ctx context.Context, courseID string) ([]content.CourseSchedule, error)
	UpcomingSchedules(ctx context.Context, limit int) ([]content.CourseSchedule, error)

	Trainers(ctx context.Context) ([]content.Trainer, error)
	Trainer(ctx context.Context, slug string) (*content.Trainer, error)

	BlogPosts(ctx context.Context, params query.Params) ([]content.BlogPost, error)
	BlogPost(ctx context.Context, slug string) (*content.BlogPost, error)

	Events(ctx context.Context, params query.Params) ([]content.Event, error)
	Event(ctx context.Context, slug string) (*content.Event, error)

	LearningPaths(ctx context.Context) ([]content.LearningPath, error)
	LearningPath(ctx context.Context, slug string) (*content.LearningPath, error)

	FAQs(ctx context.Context, category string) ([]content.Faq, error)
	Testimonials(ctx context.Context, courseID string) ([]content.Testimonial, error)
	Categories(ctx context.Context) ([]content.Category, error)
}

const (
	DefaultCacheTTL   time.Duration = 300 * time.Second
	DefaultPageLimit  int           = 10
	MaxPageLimit      int           = 50
	TenantKey         string        = "field_brand.id"
	ScheduleTenantKey string        = "field_course.field_brand.id"
)

const (
	TraceAttributeBrand    string = "brand"
	TraceAttributeSlug     string = "slug"
	TraceAttributeEntityID string = "entity-id"
)

var tracer = otel.Tracer("drupal-client")

var courseRelations = []string{"field_category", "field_trainer", "field_image"}

type Option func(*drupalClient)

func APIKey(key string) Option {
	return func(c *drupalClient) {
		c.apiKey = key
	}
}

func Brand(brand string) Option {
	return func(c *drupalClient) {
		c.brand = brand
	}
}

// CacheTTL sets the revalidation interval that callers of the client may
// use when caching responses. The client itself does not cache.
func CacheTTL(ttl time.Duration) Option {
	return func(c *drupalClient) {
		c.cacheTTL = ttl
	}
}

func Clock(now func() time.Time) Option {
	return func(c *drupalClient) {
		c.now = now
	}
}

func Debug(enabled string) Option {
	return func(c *drupalClient) {
		c.debug = (enabled == "true")
	}
}

func HTTPClient(httpClient *http.Client) Option {
	return func(c *drupalClient) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, options ...Option) Client {
	c := &drupalClient{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		cacheTTL: DefaultCacheTTL,
		now:      time.Now,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

type drupalClient struct {
	baseURL    string
	brand      string
	apiKey     string
	cacheTTL   time.Duration
	debug      bool
	now        func() time.Time
	httpClient *http.Client
}

func (c *drupalClient) Brand() string {
	return c.brand
}

func (c *drupalClient) CacheTTL() time.Duration {
	return c.cacheTTL
}

func (c *drupalClient) Courses(ctx context.Context, params query.Params) (courses []content.Course, err error) {
	ctx, span := c.startSpan(ctx, "get-courses")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(params, TenantKey)
	p.Include = union(courseRelations, params.Include)
	if len(p.Sort) == 0 {
		p.Sort = []string{"-created"}
	}

	courses, err = list(ctx, c, "/node/course", p, content.MapCourse)
	return
}

func (c *drupalClient) Course(ctx context.Context, slug string) (course *content.Course, err error) {
	ctx, span := c.startSpan(ctx, "get-course", attribute.String(TraceAttributeSlug, slug))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(query.New(
		query.Where("field_slug", query.Eq(slug)),
		query.Include(append(slices.Clone(courseRelations), "field_related_courses")...),
	), TenantKey)

	course, err = first(ctx, c, "/node/course", p, content.MapCourse)
	return
}

// CourseByID fetches a course directly by its id. Drupal answers 404 for
// unknown ids, which is reported as a nil course.
func (c *drupalClient) CourseByID(ctx context.Context, id string) (course *content.Course, err error) {
	ctx, span := c.startSpan(ctx, "get-course-by-id", attribute.String(TraceAttributeEntityID, id))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	doc, err := c.getDocument(ctx, "/node/course/"+url.PathEscape(id), query.New(query.Include(courseRelations...)))
	if err != nil {
		if errors.Is(err, jsonapierrors.ErrNotFound) {
			err = nil
		}
		return nil, err
	}

	if doc.Data.ID == "" {
		return nil, nil
	}

	mapped := content.MapCourse(doc.Data, jsonapi.NewIndex(doc.Included))
	return &mapped, nil
}

func (c *drupalClient) CoursesByCategory(ctx context.Context, categorySlug string) ([]content.Course, error) {
	return c.Courses(ctx, query.New(
		query.Where("field_category.field_slug", query.Eq(categorySlug)),
	))
}

// SearchCourses returns courses whose title contains text. A limit below one
// is replaced by the default page limit.
func (c *drupalClient) SearchCourses(ctx context.Context, text string, limit int) ([]content.Course, error) {
	if limit < 1 {
		limit = DefaultPageLimit
	}

	return c.Courses(ctx, query.New(
		query.Where("title", query.Condition(query.Contains, text)),
		query.Limit(limit),
	))
}

func (c *drupalClient) Schedules(ctx context.Context, courseID string) (schedules []content.CourseSchedule, err error) {
	ctx, span := c.startSpan(ctx, "get-schedules", attribute.String(TraceAttributeEntityID, courseID))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(query.New(
		query.Where("field_course.id", query.Eq(courseID)),
		query.Include("field_location", "field_instructor"),
		query.SortBy("field_start_date"),
	), ScheduleTenantKey)
	c.notBeforeToday(&p, "field_start_date")

	schedules, err = list(ctx, c, "/node/course_schedule", p, content.MapSchedule)
	return
}

func (c *drupalClient) UpcomingSchedules(ctx context.Context, limit int) (schedules []content.CourseSchedule, err error) {
	ctx, span := c.startSpan(ctx, "get-upcoming-schedules")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if limit < 1 {
		limit = DefaultPageLimit
	}

	p := c.scoped(query.New(
		query.Include("field_course", "field_location", "field_instructor"),
		query.SortBy("field_start_date"),
		query.Limit(limit),
	), ScheduleTenantKey)
	c.notBeforeToday(&p, "field_start_date")

	schedules, err = list(ctx, c, "/node/course_schedule", p, content.MapSchedule)
	return
}

func (c *drupalClient) Trainers(ctx context.Context) (trainers []content.Trainer, err error) {
	ctx, span := c.startSpan(ctx, "get-trainers")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	trainers, err = list(ctx, c, "/node/trainer", query.New(query.SortBy("title")), withoutIncluded(content.MapTrainer))
	return
}

func (c *drupalClient) Trainer(ctx context.Context, slug string) (trainer *content.Trainer, err error) {
	ctx, span := c.startSpan(ctx, "get-trainer", attribute.String(TraceAttributeSlug, slug))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := query.New(query.Where("field_slug", query.Eq(slug)))

	trainer, err = first(ctx, c, "/node/trainer", p, withoutIncluded(content.MapTrainer))
	return
}

func (c *drupalClient) BlogPosts(ctx context.Context, params query.Params) (posts []content.BlogPost, err error) {
	ctx, span := c.startSpan(ctx, "get-blog-posts")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(params, TenantKey)
	if len(p.Sort) == 0 {
		p.Sort = []string{"-created"}
	}

	posts, err = list(ctx, c, "/node/blog", p, withoutIncluded(content.MapBlogPost))
	return
}

func (c *drupalClient) BlogPost(ctx context.Context, slug string) (post *content.BlogPost, err error) {
	ctx, span := c.startSpan(ctx, "get-blog-post", attribute.String(TraceAttributeSlug, slug))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(query.New(query.Where("field_slug", query.Eq(slug))), TenantKey)

	post, err = first(ctx, c, "/node/blog", p, withoutIncluded(content.MapBlogPost))
	return
}

func (c *drupalClient) Events(ctx context.Context, params query.Params) (events []content.Event, err error) {
	ctx, span := c.startSpan(ctx, "get-events")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(params, TenantKey)
	c.notBeforeToday(&p, "field_event_date")
	if len(p.Sort) == 0 {
		p.Sort = []string{"field_event_date"}
	}

	events, err = list(ctx, c, "/node/event", p, withoutIncluded(content.MapEvent))
	return
}

func (c *drupalClient) Event(ctx context.Context, slug string) (event *content.Event, err error) {
	ctx, span := c.startSpan(ctx, "get-event", attribute.String(TraceAttributeSlug, slug))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(query.New(query.Where("field_slug", query.Eq(slug))), TenantKey)

	event, err = first(ctx, c, "/node/event", p, withoutIncluded(content.MapEvent))
	return
}

func (c *drupalClient) LearningPaths(ctx context.Context) (paths []content.LearningPath, err error) {
	ctx, span := c.startSpan(ctx, "get-learning-paths")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(query.New(
		query.Include("field_courses"),
		query.SortBy("title"),
	), TenantKey)

	paths, err = list(ctx, c, "/node/learning_path", p, content.MapLearningPath)
	return
}

func (c *drupalClient) LearningPath(ctx context.Context, slug string) (path *content.LearningPath, err error) {
	ctx, span := c.startSpan(ctx, "get-learning-path", attribute.String(TraceAttributeSlug, slug))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := c.scoped(query.New(
		query.Where("field_slug", query.Eq(slug)),
		query.Include("field_courses"),
	), TenantKey)

	path, err = first(ctx, c, "/node/learning_path", p, content.MapLearningPath)
	return
}

// FAQs lists questions in their configured order, optionally limited to
// one category
func (c *drupalClient) FAQs(ctx context.Context, category string) (faqs []content.Faq, err error) {
	ctx, span := c.startSpan(ctx, "get-faqs")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := query.New(query.SortBy("field_order"))
	if category != "" {
		p.SetFilter("field_category", query.Eq(category))
	}

	faqs, err = list(ctx, c, "/node/faq", p, withoutIncluded(content.MapFaq))
	return
}

func (c *drupalClient) Testimonials(ctx context.Context, courseID string) (testimonials []content.Testimonial, err error) {
	ctx, span := c.startSpan(ctx, "get-testimonials")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	p := query.New(query.Limit(DefaultPageLimit))
	if courseID != "" {
		p.SetFilter("field_course.id", query.Eq(courseID))
	}

	testimonials, err = list(ctx, c, "/node/testimonial", p, withoutIncluded(content.MapTestimonial))
	return
}

func (c *drupalClient) Categories(ctx context.Context) (categories []content.Category, err error) {
	ctx, span := c.startSpan(ctx, "get-categories")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	categories, err = list(ctx, c, "/taxonomy_term/course_category", query.New(query.SortBy("name")), withoutIncluded(content.MapCategory))
	return
}

func (c *drupalClient) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithAttributes(attribute.String(TraceAttributeBrand, c.brand)),
		trace.WithAttributes(attrs...),
	)
}

// scoped returns a copy of params with the tenant filter set. The tenant
// filter replaces any filter the caller supplied under the same key or
// nested below it.
func (c *drupalClient) scoped(params query.Params, tenantKey string) query.Params {
	p := params.Clone()
	p.RemoveFilter(tenantKey)
	p.SetFilter(tenantKey, query.Eq(c.brand))
	return p
}

// notBeforeToday restricts field to dates on or after the current UTC day
func (c *drupalClient) notBeforeToday(p *query.Params, field string) {
	p.RemoveFilter(field)
	p.SetFilter(field, query.Condition(query.GreaterOrEqual, content.Day(c.now())))
}

func union(required, extra []string) []string {
	result := slices.Clone(required)
	for _, s := range extra {
		if !slices.Contains(result, s) {
			result = append(result, s)
		}
	}
	return result
}
