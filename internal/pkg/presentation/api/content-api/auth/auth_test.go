package auth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/matryer/is"
)

func TestAllowAll(t *testing.T) {
	is := is.New(t)
	authz := newTestAuthorizer(is, allowAllPolicy)

	req, _ := http.NewRequest(http.MethodGet, "http://localhost/api/v1/vijfhart/courses", nil)

	is.NoErr(authz.CheckAccess(context.Background(), req, "vijfhart"))
}

func TestPolicySeesBrandAndAPIKey(t *testing.T) {
	is := is.New(t)
	authz := newTestAuthorizer(is, apiKeyPolicy)

	req, _ := http.NewRequest(http.MethodGet, "http://localhost/api/v1/itmasters/courses", nil)
	err := authz.CheckAccess(context.Background(), req, "itmasters")
	is.True(errors.Is(err, ErrAccessDenied)) // itmasters requires an api key

	req.Header.Set(APIKeyHeader, "s3cret")
	is.NoErr(authz.CheckAccess(context.Background(), req, "itmasters"))

	req, _ = http.NewRequest(http.MethodGet, "http://localhost/api/v1/vijfhart/courses", nil)
	is.NoErr(authz.CheckAccess(context.Background(), req, "vijfhart"))
}

func TestPolicySeesPathSegments(t *testing.T) {
	is := is.New(t)
	authz := newTestAuthorizer(is, noBlogPolicy)

	req, _ := http.NewRequest(http.MethodGet, "http://localhost/api/v1/vijfhart/blog/", nil)
	is.True(errors.Is(authz.CheckAccess(context.Background(), req, "vijfhart"), ErrAccessDenied))

	req, _ = http.NewRequest(http.MethodGet, "http://localhost/api/v1/vijfhart/events", nil)
	is.NoErr(authz.CheckAccess(context.Background(), req, "vijfhart"))
}

func TestInvalidPolicyFailsToCompile(t *testing.T) {
	is := is.New(t)

	_, err := NewAuthorizer(context.Background(), bytes.NewBufferString("package example.authz\n\nallow = {"))
	is.True(err != nil)
}

func newTestAuthorizer(is *is.I, policy string) Authorizer {
	authz, err := NewAuthorizer(context.Background(), bytes.NewBufferString(policy))
	is.NoErr(err)
	return authz
}

const allowAllPolicy string = `
package example.authz

default allow := false

allow = response {
    response := {}
}
`

const apiKeyPolicy string = `
package example.authz

default allow := false

allow = response {
    input.method == "GET"
    input.brand == "vijfhart"
    response := {}
}

allow = response {
    input.method == "GET"
    input.apikey == "s3cret"
    response := {}
}
`

const noBlogPolicy string = `
package example.authz

default allow := false

allow = response {
    input.path[3] != "blog"
    response := {}
}
`
