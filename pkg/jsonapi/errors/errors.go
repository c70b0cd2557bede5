package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

var ErrBadResponse = fmt.Errorf("bad response")
var ErrInternal = fmt.Errorf("internal error")
var ErrNotFound = fmt.Errorf("not found")
var ErrRequest = fmt.Errorf("request error")
var ErrUnknownBrand = fmt.Errorf("unknown brand")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewBadResponseError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadResponse,
	}
}

func NewInternalError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInternal,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewUnknownBrandError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnknownBrand,
	}
}

// ErrorObject is one entry of the errors member of a JSON:API error document
type ErrorObject struct {
	Status string `json:"status,omitempty"`
	Code   string `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// APIError is returned when the CMS answers with a non success status. It
// carries the status code and the raw response body.
type APIError struct {
	StatusCode int
	Body       string
	Errors     []ErrorObject
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("drupal api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))

	if len(e.Errors) > 0 {
		details := make([]string, 0, len(e.Errors))
		for _, eo := range e.Errors {
			if eo.Detail != "" {
				details = append(details, eo.Detail)
			} else if eo.Title != "" {
				details = append(details, eo.Title)
			}
		}
		if len(details) > 0 {
			msg += " (" + strings.Join(details, "; ") + ")"
		}
	}

	return msg
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// NewAPIError creates an APIError from a response. The errors member of the
// body is parsed on a best effort basis and a body that is not a JSON:API
// error document is kept as is.
func NewAPIError(code int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: code,
		Body:       string(body),
	}

	doc := struct {
		Errors []ErrorObject `json:"errors"`
	}{}

	if json.Unmarshal(body, &doc) == nil {
		apiErr.Errors = doc.Errors
	}

	return apiErr
}

// IsSuccess reports whether code is a 2xx status
func IsSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
