package contentapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/WizzAIWig/dcg-websites/internal/pkg/application/storefront"
	"github.com/WizzAIWig/dcg-websites/internal/pkg/presentation/api/content-api/auth"
	"github.com/WizzAIWig/dcg-websites/internal/pkg/presentation/api/content-api/problems"
	"github.com/WizzAIWig/dcg-websites/pkg/drupal"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const TraceAttributeBrand string = "brand"

func RegisterHandlers(ctx context.Context, r chi.Router, authz auth.Authorizer, app storefront.Storefront) {

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		r.Get("/brands", NewListBrandsHandler(app))
		r.Get("/brands/resolve", NewResolveBrandHandler(app))

		r.Route("/{brand}", func(r chi.Router) {
			r.Use(BrandMiddleware(app), Authorize(authz))

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", NewListCoursesHandler())
				r.Get("/{slug}", NewRetrieveCourseHandler())
				r.Get("/id/{id}", NewRetrieveCourseByIDHandler())
				r.Get("/id/{id}/schedules", NewListCourseSchedulesHandler())
			})

			r.Get("/schedules/upcoming", NewListUpcomingSchedulesHandler())

			r.Get("/trainers", NewListTrainersHandler())
			r.Get("/trainers/{slug}", NewRetrieveTrainerHandler())

			r.Group(func(r chi.Router) {
				r.Use(RequireFeature(func(f storefront.Features) bool { return f.Blog }))
				r.Get("/blog", NewListBlogPostsHandler())
				r.Get("/blog/{slug}", NewRetrieveBlogPostHandler())
			})

			r.Group(func(r chi.Router) {
				r.Use(RequireFeature(func(f storefront.Features) bool { return f.Events }))
				r.Get("/events", NewListEventsHandler())
				r.Get("/events/{slug}", NewRetrieveEventHandler())
			})

			r.Group(func(r chi.Router) {
				r.Use(RequireFeature(func(f storefront.Features) bool { return f.LearningPaths }))
				r.Get("/learning-paths", NewListLearningPathsHandler())
				r.Get("/learning-paths/{slug}", NewRetrieveLearningPathHandler())
			})

			r.Get("/faqs", NewListFAQsHandler())
			r.Get("/testimonials", NewListTestimonialsHandler())
			r.Get("/categories", NewListCategoriesHandler())
		})
	})
}

type brandContextKey struct {
	name string
}

var brandCtxKey = &brandContextKey{"storefront-brand"}
var clientCtxKey = &brandContextKey{"storefront-client"}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BrandMiddleware resolves the {brand} path parameter and packs the brand
// and its CMS client into the context
func BrandMiddleware(app storefront.Storefront) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := chi.URLParam(r, "brand")

			brand, ok := app.BrandBySlug(slug)
			if !ok {
				problems.ReportUnknownBrandError(w, "brand "+slug+" is not configured")
				return
			}

			client, err := app.Client(brand.ID)
			if err != nil {
				problems.ReportUnknownBrandError(w, err.Error())
				return
			}

			if labeler, found := otelhttp.LabelerFromContext(r.Context()); found {
				labeler.Add(attribute.String(TraceAttributeBrand, brand.ID))
			}

			ctx := context.WithValue(r.Context(), brandCtxKey, brand)
			ctx = context.WithValue(ctx, clientCtxKey, client)

			ctx = logging.NewContextWithLogger(
				ctx,
				logging.GetFromContext(r.Context()),
				"brand",
				brand.ID,
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize lets the policy decide on every brand scoped request
func Authorize(authz auth.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			brand, _ := GetBrandFromContext(ctx)

			if err := authz.CheckAccess(ctx, r, brand.ID); err != nil {
				logging.GetFromContext(ctx).Info("access denied", "path", r.URL.Path, "err", err.Error())
				problems.ReportForbiddenError(w, "access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireFeature hides routes of features the brand has not enabled
func RequireFeature(enabled func(storefront.Features) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			brand, ok := GetBrandFromContext(r.Context())
			if !ok || !enabled(brand.Features) {
				problems.ReportNotFoundError(w, "not found")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetBrandFromContext extracts the brand resolved by BrandMiddleware, if any
func GetBrandFromContext(ctx context.Context) (storefront.Brand, bool) {
	brand, ok := ctx.Value(brandCtxKey).(storefront.Brand)
	return brand, ok
}

func getClientFromContext(ctx context.Context) drupal.Client {
	client, _ := ctx.Value(clientCtxKey).(drupal.Client)
	return client
}
