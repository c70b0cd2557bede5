package problems

import (
	"encoding/json"
	"net/http"
)

// ProblemDetails stores details about a certain problem according to RFC7807
// See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	Type() string
	Title() string
	Detail() string
	ResponseCode() int
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

type ProblemDetailsImpl struct {
	typ    string
	title  string
	detail string
	code   int
}

const (
	// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"
)

const typePrefix string = "urn:dcg:problems:"

// NotFound reports that the requested content does not exist for the brand
type NotFound struct {
	ProblemDetailsImpl
}

func NewNotFound(detail string) *NotFound {
	return &NotFound{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    typePrefix + "NotFound",
			title:  "Not Found",
			detail: detail,
			code:   http.StatusNotFound,
		},
	}
}

// ReportNotFoundError creates a NotFound instance and sends it to the supplied http.ResponseWriter
func ReportNotFoundError(w http.ResponseWriter, detail string) {
	NewNotFound(detail).WriteResponse(w)
}

// UnknownBrand reports that the request addresses a brand that is not configured
type UnknownBrand struct {
	ProblemDetailsImpl
}

func NewUnknownBrand(detail string) *UnknownBrand {
	return &UnknownBrand{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    typePrefix + "UnknownBrand",
			title:  "Unknown Brand",
			detail: detail,
			code:   http.StatusNotFound,
		},
	}
}

func ReportUnknownBrandError(w http.ResponseWriter, detail string) {
	NewUnknownBrand(detail).WriteResponse(w)
}

// InvalidRequest reports that a query parameter could not be used
type InvalidRequest struct {
	ProblemDetailsImpl
}

func NewInvalidRequest(detail string) *InvalidRequest {
	return &InvalidRequest{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    typePrefix + "InvalidRequest",
			title:  "Invalid Request",
			detail: detail,
			code:   http.StatusBadRequest,
		},
	}
}

func ReportNewInvalidRequest(w http.ResponseWriter, detail string) {
	NewInvalidRequest(detail).WriteResponse(w)
}

// Forbidden reports that the authorization policy denied the request
type Forbidden struct {
	ProblemDetailsImpl
}

func NewForbidden(detail string) *Forbidden {
	return &Forbidden{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    typePrefix + "Forbidden",
			title:  "Forbidden",
			detail: detail,
			code:   http.StatusForbidden,
		},
	}
}

func ReportForbiddenError(w http.ResponseWriter, detail string) {
	NewForbidden(detail).WriteResponse(w)
}

// UpstreamError reports that the CMS answered with an error status
type UpstreamError struct {
	ProblemDetailsImpl
}

func NewUpstreamError(detail string) *UpstreamError {
	return &UpstreamError{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    typePrefix + "UpstreamError",
			title:  "Bad Gateway",
			detail: detail,
			code:   http.StatusBadGateway,
		},
	}
}

func ReportUpstreamError(w http.ResponseWriter, detail string) {
	NewUpstreamError(detail).WriteResponse(w)
}

// InternalError reports that there has been an error during the operation execution
type InternalError struct {
	ProblemDetailsImpl
}

func NewInternalError(detail string) *InternalError {
	return &InternalError{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:    typePrefix + "InternalError",
			title:  "Internal Error",
			detail: detail,
			code:   http.StatusInternalServerError,
		},
	}
}

func ReportNewInternalError(w http.ResponseWriter, detail string) {
	NewInternalError(detail).WriteResponse(w)
}

func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetailsImpl) Type() string {
	return p.typ
}

func (p *ProblemDetailsImpl) Title() string {
	return p.title
}

func (p *ProblemDetailsImpl) Detail() string {
	return p.detail
}

// MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}{
		Type:   p.typ,
		Title:  p.title,
		Status: p.ResponseCode(),
		Detail: p.detail,
	})
}

// ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetailsImpl) ResponseCode() int {
	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

// WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
