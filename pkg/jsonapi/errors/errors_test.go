package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/matryer/is"
)

func TestNotFoundAPIErrorMatchesSentinel(t *testing.T) {
	is := is.New(t)

	err := fmt.Errorf("get course: %w", NewAPIError(http.StatusNotFound, []byte(notFoundBody)))

	is.True(errors.Is(err, ErrNotFound))

	apiErr := &APIError{}
	is.True(errors.As(err, &apiErr))
	is.Equal(apiErr.StatusCode, http.StatusNotFound)
	is.Equal(apiErr.Errors[0].Detail, "The \"node\" parameter was not converted for the path \"/jsonapi/node/course/{entity}\".")
}

func TestServerErrorIsNotNotFound(t *testing.T) {
	is := is.New(t)

	err := NewAPIError(http.StatusInternalServerError, []byte("upstream exploded"))

	is.True(!errors.Is(err, ErrNotFound))
	is.Equal(err.StatusCode, 500)
	is.Equal(err.Body, "upstream exploded")
	is.Equal(len(err.Errors), 0)
	is.Equal(err.Error(), "drupal api error: 500 Internal Server Error")
}

func TestSentinelErrors(t *testing.T) {
	is := is.New(t)

	is.True(errors.Is(NewUnknownBrandError("no brand acme"), ErrUnknownBrand))
	is.True(errors.Is(NewBadResponseError("garbage"), ErrBadResponse))
	is.True(!errors.Is(NewBadResponseError("garbage"), ErrNotFound))
}

func TestIsSuccess(t *testing.T) {
	is := is.New(t)

	is.True(IsSuccess(http.StatusOK))
	is.True(IsSuccess(http.StatusNoContent))
	is.True(!IsSuccess(http.StatusMovedPermanently))
	is.True(!IsSuccess(http.StatusForbidden))
}

const notFoundBody string = `{
	"jsonapi": {"version": "1.0"},
	"errors": [{
		"title": "Not Found",
		"status": "404",
		"detail": "The \"node\" parameter was not converted for the path \"/jsonapi/node/course/{entity}\"."
	}]
}`
