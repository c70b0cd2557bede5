package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	jsonapierrors "github.com/WizzAIWig/dcg-websites/pkg/jsonapi/errors"
	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
)

var Expects = testutils.Expects
var Returns = testutils.Returns

func TestCoursesGetAsJSON(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			expects.RequestPath("/jsonapi/node/course"),
			expects.QueryParamEquals("filter[field_slug]", "go-basics"),
			expects.QueryParamEquals("filter[field_brand.id]", "vijfhart"),
		),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(courseCollection("go-basics"))),
		),
	)
	defer s.Close()

	setupViper(s.URL(), OutputFormatJSON)

	out, err := execute(NewCoursesCommand(), "get", "go-basics")
	is.NoErr(err)

	course := map[string]any{}
	is.NoErr(json.Unmarshal([]byte(out), &course))
	is.Equal(course["slug"], "go-basics")
	is.Equal(course["level"], "intermediate")
}

func TestCoursesGetReportsMissingCourse(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, expects.AnyInput()),
		Returns(response.Code(http.StatusOK), response.Body([]byte(`{"data":[]}`))),
	)
	defer s.Close()

	setupViper(s.URL(), OutputFormatTable)

	_, err := execute(NewCoursesCommand(), "get", "nope")
	is.True(errors.Is(err, jsonapierrors.ErrNotFound))
}

func TestCoursesListByCategoryAsTable(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			expects.RequestPath("/jsonapi/node/course"),
			expects.QueryParamEquals("filter[field_category.field_slug]", "cloud"),
		),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(courseCollection("aws-intro", "azure-intro"))),
		),
	)
	defer s.Close()

	setupViper(s.URL(), OutputFormatTable)

	out, err := execute(NewCoursesCommand(), "list", "--category", "cloud")
	is.NoErr(err)
	is.True(strings.Contains(out, "aws-intro"))
	is.True(strings.Contains(out, "azure-intro"))
	is.True(strings.Contains(out, "3 days"))
}

func TestCoursesSearchAsYAMLUsesFieldNames(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			expects.QueryParamEquals("filter[title][operator]", "CONTAINS"),
			expects.QueryParamEquals("filter[title][value]", "go"),
		),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(courseCollection("go-basics"))),
		),
	)
	defer s.Close()

	setupViper(s.URL(), OutputFormatYAML)

	out, err := execute(NewCoursesCommand(), "search", "go")
	is.NoErr(err)
	is.True(strings.Contains(out, "slug: go-basics"))
	is.True(strings.Contains(out, "durationUnit: days"))
}

func TestExportCoursesWalksAllPages(t *testing.T) {
	is := is.New(t)

	offsets := []string{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset := r.URL.Query().Get("page[offset]")
		offsets = append(offsets, offset)

		w.Header().Set("Content-Type", "application/vnd.api+json")
		switch offset {
		case "":
			w.Write([]byte(courseCollection("a", "b")))
		case "2":
			w.Write([]byte(courseCollection("c")))
		default:
			w.Write([]byte(`{"data":[]}`))
		}
	}))
	defer ts.Close()

	setupViper(ts.URL, OutputFormatTable)

	out, err := execute(NewExportCommand(), "courses", "--page-size", "2")
	is.NoErr(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	is.Equal(len(lines), 3)
	is.True(strings.Contains(lines[2], `"slug":"c"`))
	is.Equal(offsets, []string{"", "2"}) // offset 0 is left out of the query
}

func TestSchedulesUpcomingTableShowsStartAndEnd(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, expects.RequestPath("/jsonapi/node/course_schedule")),
		Returns(
			response.Code(http.StatusOK),
			response.Body([]byte(`{"data": [{
				"type": "node--course_schedule",
				"id": "s-1",
				"attributes": {"field_start_date": "2030-03-04T09:00:00", "field_end_date": "2030-03-05T17:00:00", "field_status": "confirmed"},
				"relationships": {"field_course": {"data": {"type": "node--course", "id": "c-1"}}}
			}]}`)),
		),
	)
	defer s.Close()

	setupViper(s.URL(), OutputFormatTable)

	out, err := execute(NewSchedulesCommand(), "upcoming")
	is.NoErr(err)
	is.True(strings.Contains(out, "2030-03-04 09:00"))
	is.True(strings.Contains(out, "2030-03-05 17:00"))
	is.True(strings.Contains(out, "confirmed"))
}

func TestEventsListRejectsUnknownType(t *testing.T) {
	is := is.New(t)

	setupViper("http://localhost:1", OutputFormatTable)

	_, err := execute(NewEventsCommand(), "list", "--type", "party")
	is.True(err != nil)
}

func TestClientRequiresBaseURLAndBrand(t *testing.T) {
	is := is.New(t)

	viper.Reset()
	_, err := CreateClient()
	is.True(errors.Is(err, ErrBaseURLRequired))

	viper.Set("base-url", "http://localhost:1")
	_, err = CreateClient()
	is.True(errors.Is(err, ErrBrandRequired))
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func setupViper(baseURL, output string) {
	viper.Reset()
	viper.Set("base-url", baseURL)
	viper.Set("brand", "vijfhart")
	viper.Set("output", output)
}

func courseCollection(slugs ...string) string {
	resources := []string{}

	for i, slug := range slugs {
		resources = append(resources, fmt.Sprintf(`{
			"type": "node--course",
			"id": "course-%d",
			"attributes": {"title": "Course %s", "field_slug": %q, "field_duration": 3},
			"relationships": {"field_category": {"data": null}, "field_trainer": {"data": []}}
		}`, i, slug, slug))
	}

	return `{"data": [` + strings.Join(resources, ",") + `]}`
}
