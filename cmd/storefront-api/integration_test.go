package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"

	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var method = expects.RequestMethod
var path = expects.RequestPath

func DefaultTestFlags() FlagMap {
	return FlagMap{
		servicePort: "0",
		apiKey:      "from-env",
		debugMode:   "false",
	}
}

func TestIntegrateListCoursesForBrand(t *testing.T) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodGet),
			path("/jsonapi/node/course"),
			expects.QueryParamEquals("filter[field_brand.id]", "itmasters"),
			expects.QueryParamEquals("page[limit]", "2"),
		),
		Returns(
			response.ContentType("application/vnd.api+json"),
			response.Code(http.StatusOK),
			response.Body([]byte(courseCollectionBody)),
		),
	)
	defer ms.Close()

	ts := newTestServer(is, ms.URL(), allowAllPolicy)
	defer ts.Close()

	resp, body := testRequest(is, ts, "/api/v1/itmasters/courses?limit=2")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Cache-Control"), "public, max-age=60")
	is.True(strings.Contains(body, `"slug":"go-basics"`))
	is.True(strings.Contains(body, `"level":"intermediate"`))
	is.Equal(ms.RequestCount(), 1)
}

func TestIntegrateUpstreamFailure(t *testing.T) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, expects.AnyInput()),
		Returns(
			response.Code(http.StatusServiceUnavailable),
			response.Body([]byte(`{"errors":[{"status":"503","title":"Service Unavailable"}]}`)),
		),
	)
	defer ms.Close()

	ts := newTestServer(is, ms.URL(), allowAllPolicy)
	defer ts.Close()

	resp, _ := testRequest(is, ts, "/api/v1/vijfhart/trainers")

	is.Equal(resp.StatusCode, http.StatusBadGateway)
}

func TestIntegratePolicyDeniesRequest(t *testing.T) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, expects.AnyInput()),
		Returns(response.Code(http.StatusOK), response.Body([]byte(`{"data":[]}`))),
	)
	defer ms.Close()

	ts := newTestServer(is, ms.URL(), vijfhartOnlyPolicy)
	defer ts.Close()

	resp, _ := testRequest(is, ts, "/api/v1/itmasters/categories")
	is.Equal(resp.StatusCode, http.StatusForbidden)
	is.Equal(ms.RequestCount(), 0)

	resp, _ = testRequest(is, ts, "/api/v1/vijfhart/categories")
	is.Equal(resp.StatusCode, http.StatusOK)
}

func TestIntegrateResolveBrandFromHost(t *testing.T) {
	is := is.New(t)

	ts := newTestServer(is, "http://localhost:1", allowAllPolicy)
	defer ts.Close()

	resp, body := testRequest(is, ts, "/api/v1/brands/resolve?host=www.itmasters.nl:443")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"id":"itmasters"`))

	resp, body = testRequest(is, ts, "/api/v1/brands/resolve")
	is.Equal(resp.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"id":"vijfhart"`)) // unknown hosts fall back to the default brand
}

func TestInitializeRejectsInvalidConfiguration(t *testing.T) {
	is := is.New(t)

	_, err := initialize(context.Background(), DefaultTestFlags(), bytes.NewBufferString("brands: []"), bytes.NewBufferString(allowAllPolicy))
	is.True(err != nil)
}

func newTestServer(is *is.I, cmsURL, policy string) *httptest.Server {
	handler, err := initialize(
		context.Background(),
		DefaultTestFlags(),
		bytes.NewBufferString(fmt.Sprintf(configFileFmt, cmsURL)),
		bytes.NewBufferString(policy),
	)
	is.NoErr(err)

	return httptest.NewServer(handler)
}

func testRequest(is *is.I, ts *httptest.Server, path string) (*http.Response, string) {
	resp, err := http.Get(ts.URL + path)
	is.NoErr(err)
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	return resp, string(respBody)
}

var configFileFmt string = `
cms:
  baseURL: %s
  cacheTTL: 60
defaultBrand: vijfhart
brands:
  - id: vijfhart
    name: Vijfhart
    domains: [vijfhart.nl]
  - id: itmasters
    name: IT Masters
    domains: [itmasters.nl]
`

const allowAllPolicy string = `
package example.authz

default allow := false

allow = response {
    response := {}
}
`

const vijfhartOnlyPolicy string = `
package example.authz

default allow := false

allow = response {
    input.brand == "vijfhart"
    response := {}
}
`

const courseCollectionBody string = `{
  "data": [
    {
      "type": "node--course",
      "id": "8d5c2a4e-1f0b-4f57-9c1e-2b6f0f6d8a11",
      "attributes": {
        "title": "Go Basics",
        "field_slug": "go-basics",
        "field_duration": 3
      },
      "relationships": {
        "field_category": {"data": null},
        "field_trainer": {"data": []},
        "field_image": {"data": null}
      }
    }
  ],
  "links": {}
}`
