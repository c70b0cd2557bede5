package content

import (
	"testing"
	"time"

	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi"
	"github.com/matryer/is"
)

func TestCourseWithoutLevelDefaultsToIntermediate(t *testing.T) {
	is := is.New(t)

	c := MapCourse(jsonapi.Resource{Type: "node--course", ID: "c-1", Attributes: map[string]any{}}, jsonapi.NewIndex(nil))

	is.Equal(c.Level, LevelIntermediate)
	is.Equal(c.DurationUnit, Days)
	is.Equal(c.Title, "")
	is.Equal(c.Duration, 0.0)
	is.True(c.ImageURL == nil)
	is.Equal(len(c.Categories), 0)
	is.True(c.Categories != nil)
	is.True(c.RelatedCourses != nil)
}

func TestUnknownLevelIsCopiedVerbatim(t *testing.T) {
	is := is.New(t)

	c := MapCourse(resource("node--course", "c-1", map[string]any{"field_level": "expert"}), jsonapi.NewIndex(nil))
	is.Equal(c.Level, LevelExpert)

	c = MapCourse(resource("node--course", "c-1", map[string]any{"field_level": "guru"}), jsonapi.NewIndex(nil))
	is.Equal(string(c.Level), "guru")
}

func TestCourseWithUnresolvedCategoryHasNoCategories(t *testing.T) {
	is := is.New(t)

	r := resource("node--course", "c-1", map[string]any{"title": "Kubernetes"})
	r.Relationships = map[string]jsonapi.Relationship{
		"field_category": jsonapi.ToMany(jsonapi.ResourceRef{Type: "taxonomy_term--course_category", ID: "gone"}),
	}

	c := MapCourse(r, jsonapi.NewIndex(nil))

	is.Equal(c.Title, "Kubernetes")
	is.Equal(len(c.Categories), 0)
}

func TestCourseMapsFullResponse(t *testing.T) {
	is := is.New(t)

	c, err := jsonapi.NewCollectionFromJSON([]byte(courseResponse))
	is.NoErr(err)

	course := MapCourse(c.Data[0], jsonapi.NewIndex(c.Included))

	is.Equal(course.ID, "c-1")
	is.Equal(course.Slug, "go-basics")
	is.Equal(course.Description, "<p>Learn Go</p>")
	is.Equal(course.Duration, 3.0)
	is.Equal(course.DurationUnit, Days)
	is.Equal(course.SEO.Title, "Go Basics") // falls back to the title
	is.Equal(*course.ImageURL, "/img/x.jpg")
	is.Equal(len(course.Categories), 1)
	is.Equal(course.Categories[0].Name, "Programming")
	is.Equal(*course.Categories[0].ParentID, "cat-root")
	is.Equal(len(course.Trainers), 1)
	is.Equal(course.Trainers[0].Name, "Ada Lovelace")
	is.Equal(course.Trainers[0].Specializations, []string{"go", "rust"})
	is.Equal(*course.Trainers[0].SocialLinks.LinkedIn, "https://linkedin.com/in/ada")
	is.True(course.Trainers[0].SocialLinks.Twitter == nil)
	is.Equal(len(course.RelatedCourses), 1)
	is.Equal(course.RelatedCourses[0].Slug, "go-advanced")
	is.Equal(len(course.RelatedCourses[0].RelatedCourses), 0) // mapped one level deep
}

func TestCourseImageFromUnresolvedFileIsAbsent(t *testing.T) {
	is := is.New(t)

	r := resource("node--course", "c-1", nil)
	r.Relationships = map[string]jsonapi.Relationship{
		"field_image": jsonapi.ToOne("media--image", "m-1"),
	}

	media := resource("media--image", "m-1", nil)
	media.Relationships = map[string]jsonapi.Relationship{
		jsonapi.MediaImageField: jsonapi.ToOne("file--file", "f-missing"),
	}

	c := MapCourse(r, jsonapi.NewIndex([]jsonapi.Resource{media}))

	is.True(c.ImageURL == nil)
}

func TestNumericStringsAreAccepted(t *testing.T) {
	is := is.New(t)

	c := MapCourse(resource("node--course", "c-1", map[string]any{"field_duration": "2.5"}), jsonapi.NewIndex(nil))
	is.Equal(c.Duration, 2.5)

	c = MapCourse(resource("node--course", "c-1", map[string]any{"field_duration": "two"}), jsonapi.NewIndex(nil))
	is.Equal(c.Duration, 0.0)
}

func TestWrongTypedTextBecomesEmpty(t *testing.T) {
	is := is.New(t)

	c := MapCourse(resource("node--course", "c-1", map[string]any{
		"title":             42.0,
		"field_description": "not wrapped",
	}), jsonapi.NewIndex(nil))

	is.Equal(c.Title, "")
	is.Equal(c.Description, "")
}

func TestScheduleFallsBackToOnlineLocation(t *testing.T) {
	is := is.New(t)

	r := resource("node--course_schedule", "s-1", map[string]any{"field_start_date": "2024-01-15"})
	r.Relationships = map[string]jsonapi.Relationship{
		"field_course":   jsonapi.ToOne("node--course", "c-1"),
		"field_location": jsonapi.ToOne("node--location", "nowhere"),
	}

	s := MapSchedule(r, jsonapi.NewIndex(nil))

	is.Equal(s.CourseID, "c-1")
	is.True(s.Course == nil)
	is.Equal(s.Location.Name, "Online")
	is.Equal(s.Location.Type, Online)
	is.Equal(s.Status, StatusScheduled)
	is.True(s.Instructor == nil)
}

func TestScheduleEmbedsIncludedRelations(t *testing.T) {
	is := is.New(t)

	r := resource("node--course_schedule", "s-1", map[string]any{"field_status": "confirmed"})
	r.Relationships = map[string]jsonapi.Relationship{
		"field_course":     jsonapi.ToOne("node--course", "c-1"),
		"field_location":   jsonapi.ToOne("node--location", "l-1"),
		"field_instructor": jsonapi.ToOne("node--trainer", "t-1"),
	}

	idx := jsonapi.NewIndex([]jsonapi.Resource{
		resource("node--course", "c-1", map[string]any{"title": "Go Basics"}),
		resource("node--location", "l-1", map[string]any{"title": "Utrecht Centrum", "field_city": "Utrecht"}),
		resource("node--trainer", "t-1", map[string]any{"title": "Ada Lovelace"}),
	})

	s := MapSchedule(r, idx)

	is.Equal(s.Status, StatusConfirmed)
	is.Equal(s.Course.Title, "Go Basics")
	is.Equal(s.Location.City, "Utrecht")
	is.Equal(s.Location.Type, Classroom)
	is.True(s.Location.Address == nil)
	is.Equal(s.Instructor.Name, "Ada Lovelace")
}

func TestCategoryWithVirtualParentHasNoParent(t *testing.T) {
	is := is.New(t)

	r := resource("taxonomy_term--course_category", "cat-1", map[string]any{
		"name":        "Cloud",
		"description": map[string]any{"value": "All things cloud"},
	})
	r.Relationships = map[string]jsonapi.Relationship{
		"parent": jsonapi.ToMany(jsonapi.ResourceRef{Type: "taxonomy_term--course_category", ID: "virtual"}),
	}

	c := MapCategory(r)

	is.True(c.ParentID == nil)
	is.Equal(*c.Description, "All things cloud")
}

func TestEventDefaults(t *testing.T) {
	is := is.New(t)

	e := MapEvent(resource("node--event", "e-1", map[string]any{
		"field_event_date":       "2024-02-01T10:00:00",
		"field_registration_url": "",
	}))

	is.Equal(e.Type, Webinar)
	is.True(e.RegistrationURL == nil)
	is.True(e.EventEndDate == nil)

	start, ok := e.Starts()
	is.True(ok)
	is.True(start.Equal(time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)))
}

func TestIsEventType(t *testing.T) {
	is := is.New(t)

	is.True(IsEventType("workshop"))
	is.True(!IsEventType("Workshop"))
	is.True(!IsEventType(""))
}

func TestLearningPathMapsIncludedCourses(t *testing.T) {
	is := is.New(t)

	r := resource("node--learning_path", "lp-1", map[string]any{
		"title":                "Cloud Engineer",
		"field_total_duration": 12.0,
		"field_certification":  "CKA",
	})
	r.Relationships = map[string]jsonapi.Relationship{
		"field_courses": jsonapi.ToMany(
			jsonapi.ResourceRef{Type: "node--course", ID: "c-2"},
			jsonapi.ResourceRef{Type: "node--course", ID: "c-1"},
		),
	}

	lp := MapLearningPath(r, jsonapi.NewIndex([]jsonapi.Resource{
		resource("node--course", "c-1", map[string]any{"title": "Docker"}),
		resource("node--course", "c-2", map[string]any{"title": "Linux"}),
	}))

	is.Equal(lp.Level, LevelIntermediate)
	is.Equal(lp.TotalDuration, 12.0)
	is.Equal(*lp.Certification, "CKA")
	is.Equal(len(lp.Courses), 2)
	is.Equal(lp.Courses[0].Title, "Linux")
}

func TestBlogPostFaqAndTestimonial(t *testing.T) {
	is := is.New(t)

	post := MapBlogPost(resource("node--blog", "b-1", map[string]any{
		"title":            "Why Go",
		"field_tags":       []any{"go", 7.0, "backend"},
		"created":          "2024-01-01T00:00:00+00:00",
		"field_categories": nil,
	}))
	is.Equal(post.Tags, []string{"go", "backend"})
	is.Equal(post.Categories, []string{})
	is.Equal(post.PublishedAt, "2024-01-01T00:00:00+00:00")

	faq := MapFaq(resource("node--faq", "f-1", map[string]any{
		"title":       "Can I cancel?",
		"body":        map[string]any{"value": "Yes", "format": "basic_html"},
		"field_order": 3.0,
	}))
	is.Equal(faq.Question, "Can I cancel?")
	is.Equal(faq.Answer, "Yes")
	is.Equal(faq.Order, 3)

	tr := resource("node--testimonial", "t-1", map[string]any{
		"field_quote":  "Great!",
		"field_rating": 4.5,
	})
	tr.Relationships = map[string]jsonapi.Relationship{
		"field_course": jsonapi.ToOne("node--course", "c-1"),
	}
	testimonial := MapTestimonial(tr)
	is.Equal(*testimonial.Rating, 4.5)
	is.Equal(*testimonial.CourseID, "c-1")
	is.True(testimonial.AuthorCompany == nil)
}

func TestMappingIsDeterministic(t *testing.T) {
	is := is.New(t)

	c, err := jsonapi.NewCollectionFromJSON([]byte(courseResponse))
	is.NoErr(err)

	first := MapCourse(c.Data[0], jsonapi.NewIndex(c.Included))
	second := MapCourse(c.Data[0], jsonapi.NewIndex(c.Included))

	is.Equal(first, second)
}

func resource(resourceType, id string, attrs map[string]any) jsonapi.Resource {
	return jsonapi.Resource{Type: resourceType, ID: id, Attributes: attrs}
}

const courseResponse string = `{
	"data": [{
		"type": "node--course",
		"id": "c-1",
		"attributes": {
			"title": "Go Basics",
			"field_slug": "go-basics",
			"field_description": {"value": "<p>Learn Go</p>", "format": "full_html"},
			"field_duration": 3
		},
		"relationships": {
			"field_category": {"data": [{"type": "taxonomy_term--course_category", "id": "cat-1"}]},
			"field_trainer": {"data": [{"type": "node--trainer", "id": "t-1"}]},
			"field_image": {"data": {"type": "media--image", "id": "m-1"}},
			"field_related_courses": {"data": [{"type": "node--course", "id": "c-2"}]}
		}
	}],
	"included": [
		{
			"type": "taxonomy_term--course_category", "id": "cat-1",
			"attributes": {"name": "Programming", "field_slug": "programming"},
			"relationships": {"parent": {"data": [{"type": "taxonomy_term--course_category", "id": "cat-root"}]}}
		},
		{
			"type": "node--trainer", "id": "t-1",
			"attributes": {
				"title": "Ada Lovelace",
				"field_specializations": ["go", "rust"],
				"field_linkedin": "https://linkedin.com/in/ada"
			}
		},
		{
			"type": "media--image", "id": "m-1", "attributes": {},
			"relationships": {"field_media_image": {"data": {"type": "file--file", "id": "f-1"}}}
		},
		{"type": "file--file", "id": "f-1", "attributes": {"uri": {"url": "/img/x.jpg"}}},
		{
			"type": "node--course", "id": "c-2",
			"attributes": {"title": "Go Advanced", "field_slug": "go-advanced"},
			"relationships": {"field_related_courses": {"data": [{"type": "node--course", "id": "c-1"}]}}
		}
	]
}`
