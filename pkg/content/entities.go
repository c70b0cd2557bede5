package content

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

type DurationUnit string

const (
	Days  DurationUnit = "days"
	Hours DurationUnit = "hours"
)

type ScheduleStatus string

const (
	StatusScheduled ScheduleStatus = "scheduled"
	StatusConfirmed ScheduleStatus = "confirmed"
	StatusCancelled ScheduleStatus = "cancelled"
)

type LocationType string

const (
	Classroom LocationType = "classroom"
	Online    LocationType = "online"
	Hybrid    LocationType = "hybrid"
)

type EventType string

const (
	Webinar    EventType = "webinar"
	Workshop   EventType = "workshop"
	Conference EventType = "conference"
	Meetup     EventType = "meetup"
)

func IsEventType(s string) bool {
	switch EventType(s) {
	case Webinar, Workshop, Conference, Meetup:
		return true
	}
	return false
}

type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Course struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Slug             string       `json:"slug"`
	Description      string       `json:"description"`
	ShortDescription string       `json:"shortDescription"`
	Duration         float64      `json:"duration"`
	DurationUnit     DurationUnit `json:"durationUnit"`
	Level            Level        `json:"level"`
	PriceDisplay     string       `json:"priceDisplay"`
	ImageURL         *string      `json:"imageUrl,omitempty"`
	Categories       []Category   `json:"categories"`
	Trainers         []Trainer    `json:"trainers"`
	RelatedCourses   []Course     `json:"relatedCourses"`
	SEO              SEO          `json:"seo"`
	BaszID           string       `json:"baszId"`
	CreatedAt        string       `json:"createdAt"`
	UpdatedAt        string       `json:"updatedAt"`
}

type CourseSchedule struct {
	ID           string         `json:"id"`
	CourseID     string         `json:"courseId"`
	Course       *Course        `json:"course,omitempty"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Location     Location       `json:"location"`
	Instructor   *Trainer       `json:"instructor,omitempty"`
	SeatsDisplay string         `json:"seatsDisplay"`
	Status       ScheduleStatus `json:"status"`
	BaszID       string         `json:"baszId"`
}

type SocialLinks struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	Twitter  *string `json:"twitter,omitempty"`
}

type Trainer struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Slug            string      `json:"slug"`
	Bio             string      `json:"bio"`
	PhotoURL        *string     `json:"photoUrl,omitempty"`
	Specializations []string    `json:"specializations"`
	SocialLinks     SocialLinks `json:"socialLinks"`
}

type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"`
}

type Location struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	City    string       `json:"city"`
	Address *string      `json:"address,omitempty"`
	Type    LocationType `json:"type"`
}

type LearningPath struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Courses       []Course `json:"courses"`
	TotalDuration float64  `json:"totalDuration"`
	Certification *string  `json:"certification,omitempty"`
	Level         Level    `json:"level"`
}

type BlogPost struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Body        string   `json:"body"`
	Author      string   `json:"author"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"publishedAt"`
}

type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	EventDate       string    `json:"eventDate"`
	EventEndDate    *string   `json:"eventEndDate,omitempty"`
	Location        string    `json:"location"`
	Type            EventType `json:"type"`
	RegistrationURL *string   `json:"registrationUrl,omitempty"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
}

type Faq struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

type Testimonial struct {
	ID            string   `json:"id"`
	Quote         string   `json:"quote"`
	AuthorName    string   `json:"authorName"`
	AuthorCompany *string  `json:"authorCompany,omitempty"`
	AuthorRole    *string  `json:"authorRole,omitempty"`
	CourseID      *string  `json:"courseId,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}
