package content

import (
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi"
)

var courseSchema = Schema{
	{Attribute: "title", Kind: Text},
	{Attribute: "field_slug", Kind: Text},
	{Attribute: "field_description", Kind: RichText},
	{Attribute: "field_short_description", Kind: Text},
	{Attribute: "field_duration", Kind: Number},
	{Attribute: "field_duration_unit", Kind: Enum, Default: string(Days)},
	{Attribute: "field_level", Kind: Enum, Default: string(LevelIntermediate)},
	{Attribute: "field_price_display", Kind: Text},
	{Attribute: "field_seo_title", Kind: Text, Fallback: "title"},
	{Attribute: "field_seo_description", Kind: Text},
	{Attribute: "field_basz_id", Kind: Text},
	{Attribute: "created", Kind: Text},
	{Attribute: "changed", Kind: Text},
}

var scheduleSchema = Schema{
	{Attribute: "field_start_date", Kind: Text},
	{Attribute: "field_end_date", Kind: Text},
	{Attribute: "field_seats_display", Kind: Text},
	{Attribute: "field_status", Kind: Enum, Default: string(StatusScheduled)},
	{Attribute: "field_basz_id", Kind: Text},
}

var trainerSchema = Schema{
	{Attribute: "title", Kind: Text},
	{Attribute: "field_slug", Kind: Text},
	{Attribute: "field_bio", Kind: RichText},
	{Attribute: "field_photo_url", Kind: OptionalText},
	{Attribute: "field_specializations", Kind: TextList},
	{Attribute: "field_linkedin", Kind: OptionalText},
	{Attribute: "field_twitter", Kind: OptionalText},
}

var categorySchema = Schema{
	{Attribute: "name", Kind: Text},
	{Attribute: "field_slug", Kind: Text},
	{Attribute: "description", Kind: OptionalRichText},
}

var locationSchema = Schema{
	{Attribute: "title", Kind: Text},
	{Attribute: "field_city", Kind: Text},
	{Attribute: "field_address", Kind: OptionalText},
	{Attribute: "field_type", Kind: Enum, Default: string(Classroom)},
}

var learningPathSchema = Schema{
	{Attribute: "title", Kind: Text},
	{Attribute: "field_slug", Kind: Text},
	{Attribute: "body", Kind: RichText},
	{Attribute: "field_total_duration", Kind: Number},
	{Attribute: "field_certification", Kind: OptionalText},
	{Attribute: "field_level", Kind: Enum, Default: string(LevelIntermediate)},
}

var blogPostSchema = Schema{
	{Attribute: "title", Kind: Text},
	{Attribute: "field_slug", Kind: Text},
	{Attribute: "field_excerpt", Kind: Text},
	{Attribute: "body", Kind: RichText},
	{Attribute: "field_author", Kind: Text},
	{Attribute: "field_image_url", Kind: OptionalText},
	{Attribute: "field_categories", Kind: TextList},
	{Attribute: "field_tags", Kind: TextList},
	{Attribute: "created", Kind: Text},
}

var eventSchema = Schema{
	{Attribute: "title", Kind: Text},
	{Attribute: "field_slug", Kind: Text},
	{Attribute: "body", Kind: RichText},
	{Attribute: "field_event_date", Kind: Text},
	{Attribute: "field_event_end_date", Kind: OptionalText},
	{Attribute: "field_location", Kind: Text},
	{Attribute: "field_event_type", Kind: Enum, Default: string(Webinar)},
	{Attribute: "field_registration_url", Kind: OptionalText},
	{Attribute: "field_image_url", Kind: OptionalText},
}

var faqSchema = Schema{
	{Attribute: "title", Kind: Text},
	{Attribute: "body", Kind: RichText},
	{Attribute: "field_category", Kind: Text},
	{Attribute: "field_order", Kind: Number},
}

var testimonialSchema = Schema{
	{Attribute: "field_quote", Kind: Text},
	{Attribute: "field_author_name", Kind: Text},
	{Attribute: "field_author_company", Kind: OptionalText},
	{Attribute: "field_author_role", Kind: OptionalText},
	{Attribute: "field_rating", Kind: OptionalNumber},
}

// OnlineLocation is used for schedules whose location cannot be resolved
var OnlineLocation = Location{Name: "Online", Type: Online}

// MapCourse maps a course resource. Related courses are mapped one level
// deep, their own related courses are left empty.
func MapCourse(r jsonapi.Resource, included jsonapi.Index) Course {
	return mapCourse(r, included, true)
}

func mapCourse(r jsonapi.Resource, included jsonapi.Index, withRelated bool) Course {
	rec := courseSchema.Decode(r.Attributes)

	c := Course{
		ID:               r.ID,
		Title:            rec.Text("title"),
		Slug:             rec.Text("field_slug"),
		Description:      rec.Text("field_description"),
		ShortDescription: rec.Text("field_short_description"),
		Duration:         rec.Number("field_duration"),
		DurationUnit:     DurationUnit(rec.Text("field_duration_unit")),
		Level:            Level(rec.Text("field_level")),
		PriceDisplay:     rec.Text("field_price_display"),
		Categories:       mapAll(included.Many(r.Relationship("field_category")), MapCategory),
		Trainers:         mapAll(included.Many(r.Relationship("field_trainer")), MapTrainer),
		RelatedCourses:   []Course{},
		SEO: SEO{
			Title:       rec.Text("field_seo_title"),
			Description: rec.Text("field_seo_description"),
		},
		BaszID:    rec.Text("field_basz_id"),
		CreatedAt: rec.Text("created"),
		UpdatedAt: rec.Text("changed"),
	}

	if url, ok := included.MediaURL(r.Relationship("field_image")); ok {
		c.ImageURL = &url
	}

	if withRelated {
		c.RelatedCourses = mapAll(
			included.Many(r.Relationship("field_related_courses")),
			func(related jsonapi.Resource) Course {
				return mapCourse(related, included, false)
			},
		)
	}

	return c
}

// MapSchedule maps a course schedule resource. The course itself is only
// embedded when it was included in the response.
func MapSchedule(r jsonapi.Resource, included jsonapi.Index) CourseSchedule {
	rec := scheduleSchema.Decode(r.Attributes)

	s := CourseSchedule{
		ID:           r.ID,
		CourseID:     refID(r.Relationship("field_course")),
		StartDate:    rec.Text("field_start_date"),
		EndDate:      rec.Text("field_end_date"),
		Location:     OnlineLocation,
		SeatsDisplay: rec.Text("field_seats_display"),
		Status:       ScheduleStatus(rec.Text("field_status")),
		BaszID:       rec.Text("field_basz_id"),
	}

	if course, ok := included.One(r.Relationship("field_course")); ok {
		c := mapCourse(course, included, false)
		s.Course = &c
	}

	if location, ok := included.One(r.Relationship("field_location")); ok {
		s.Location = MapLocation(location)
	}

	if instructor, ok := included.One(r.Relationship("field_instructor")); ok {
		t := MapTrainer(instructor)
		s.Instructor = &t
	}

	return s
}

func MapTrainer(r jsonapi.Resource) Trainer {
	rec := trainerSchema.Decode(r.Attributes)

	return Trainer{
		ID:              r.ID,
		Name:            rec.Text("title"),
		Slug:            rec.Text("field_slug"),
		Bio:             rec.Text("field_bio"),
		PhotoURL:        rec.Optional("field_photo_url"),
		Specializations: rec.List("field_specializations"),
		SocialLinks: SocialLinks{
			LinkedIn: rec.Optional("field_linkedin"),
			Twitter:  rec.Optional("field_twitter"),
		},
	}
}

// MapCategory maps a taxonomy term. Drupal reports root terms with the
// parent id "virtual", which is treated as no parent.
func MapCategory(r jsonapi.Resource) Category {
	rec := categorySchema.Decode(r.Attributes)

	c := Category{
		ID:          r.ID,
		Name:        rec.Text("name"),
		Slug:        rec.Text("field_slug"),
		Description: rec.Optional("description"),
	}

	if parent := r.Relationship("parent"); parent != nil {
		var ref jsonapi.ResourceRef
		if refs := parent.Refs(); len(refs) > 0 {
			ref = refs[0]
		} else if single, ok := parent.Ref(); ok {
			ref = single
		}

		if ref.ID != "" && ref.ID != "virtual" {
			c.ParentID = &ref.ID
		}
	}

	return c
}

func MapLocation(r jsonapi.Resource) Location {
	rec := locationSchema.Decode(r.Attributes)

	return Location{
		ID:      r.ID,
		Name:    rec.Text("title"),
		City:    rec.Text("field_city"),
		Address: rec.Optional("field_address"),
		Type:    LocationType(rec.Text("field_type")),
	}
}

func MapLearningPath(r jsonapi.Resource, included jsonapi.Index) LearningPath {
	rec := learningPathSchema.Decode(r.Attributes)

	return LearningPath{
		ID:          r.ID,
		Title:       rec.Text("title"),
		Slug:        rec.Text("field_slug"),
		Description: rec.Text("body"),
		Courses: mapAll(
			included.Many(r.Relationship("field_courses")),
			func(course jsonapi.Resource) Course {
				return mapCourse(course, included, false)
			},
		),
		TotalDuration: rec.Number("field_total_duration"),
		Certification: rec.Optional("field_certification"),
		Level:         Level(rec.Text("field_level")),
	}
}

func MapBlogPost(r jsonapi.Resource) BlogPost {
	rec := blogPostSchema.Decode(r.Attributes)

	return BlogPost{
		ID:          r.ID,
		Title:       rec.Text("title"),
		Slug:        rec.Text("field_slug"),
		Excerpt:     rec.Text("field_excerpt"),
		Body:        rec.Text("body"),
		Author:      rec.Text("field_author"),
		ImageURL:    rec.Optional("field_image_url"),
		Categories:  rec.List("field_categories"),
		Tags:        rec.List("field_tags"),
		PublishedAt: rec.Text("created"),
	}
}

func MapEvent(r jsonapi.Resource) Event {
	rec := eventSchema.Decode(r.Attributes)

	return Event{
		ID:              r.ID,
		Title:           rec.Text("title"),
		Slug:            rec.Text("field_slug"),
		Description:     rec.Text("body"),
		EventDate:       rec.Text("field_event_date"),
		EventEndDate:    rec.Optional("field_event_end_date"),
		Location:        rec.Text("field_location"),
		Type:            EventType(rec.Text("field_event_type")),
		RegistrationURL: rec.Optional("field_registration_url"),
		ImageURL:        rec.Optional("field_image_url"),
	}
}

func MapFaq(r jsonapi.Resource) Faq {
	rec := faqSchema.Decode(r.Attributes)

	return Faq{
		ID:       r.ID,
		Question: rec.Text("title"),
		Answer:   rec.Text("body"),
		Category: rec.Text("field_category"),
		Order:    int(rec.Number("field_order")),
	}
}

func MapTestimonial(r jsonapi.Resource) Testimonial {
	rec := testimonialSchema.Decode(r.Attributes)

	t := Testimonial{
		ID:            r.ID,
		Quote:         rec.Text("field_quote"),
		AuthorName:    rec.Text("field_author_name"),
		AuthorCompany: rec.Optional("field_author_company"),
		AuthorRole:    rec.Optional("field_author_role"),
		Rating:        rec.OptionalNumber("field_rating"),
	}

	if id := refID(r.Relationship("field_course")); id != "" {
		t.CourseID = &id
	}

	return t
}

func mapAll[T any](resources []jsonapi.Resource, mapper func(jsonapi.Resource) T) []T {
	result := make([]T, 0, len(resources))
	for _, r := range resources {
		result = append(result, mapper(r))
	}
	return result
}

// refID returns the id of a to-one reference without resolving it
func refID(rel *jsonapi.Relationship) string {
	if rel == nil {
		return ""
	}
	ref, _ := rel.Ref()
	return ref.ID
}
