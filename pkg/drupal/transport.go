package drupal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/errors"
	"github.com/WizzAIWig/dcg-websites/pkg/jsonapi/query"
	"github.com/andybalholm/brotli"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/klauspost/compress/gzip"
)

const acceptedEncodings string = "br, gzip"

// get issues a single GET against the JSON:API root and returns the status
// code and the decoded response body.
func (c *drupalClient) get(ctx context.Context, path string, params query.Params) (int, []byte, error) {
	endpoint := query.URL(c.baseURL+"/jsonapi"+path, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Add("Accept", jsonapi.MediaType)
	req.Header.Add("Accept-Encoding", acceptedEncodings)

	if c.apiKey != "" {
		req.Header.Add("X-Api-Key", c.apiKey)
	}

	log := logging.GetFromContext(ctx)
	log.Debug("calling cms", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w (%w)", err, errors.ErrRequest)
	}
	defer resp.Body.Close()

	respBody, err := readBody(resp)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusNotFound {
			reqbytes, _ := httputil.DumpRequest(req, false)
			respbytes, _ := httputil.DumpResponse(resp, false)

			log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
		}
	}

	return resp.StatusCode, respBody, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var body io.Reader = resp.Body

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		body = brotli.NewReader(resp.Body)
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		body = gz
	}

	return io.ReadAll(body)
}

func (c *drupalClient) getCollection(ctx context.Context, path string, params query.Params) (*jsonapi.Collection, error) {
	code, body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	if !errors.IsSuccess(code) {
		return nil, errors.NewAPIError(code, body)
	}

	collection, err := jsonapi.NewCollectionFromJSON(body)
	if err != nil {
		return nil, fmt.Errorf("%s (%w)", err.Error(), errors.ErrBadResponse)
	}

	return collection, nil
}

func (c *drupalClient) getDocument(ctx context.Context, path string, params query.Params) (*jsonapi.Document, error) {
	code, body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	if !errors.IsSuccess(code) {
		return nil, errors.NewAPIError(code, body)
	}

	doc, err := jsonapi.NewDocumentFromJSON(body)
	if err != nil {
		return nil, fmt.Errorf("%s (%w)", err.Error(), errors.ErrBadResponse)
	}

	return doc, nil
}

// list fetches a collection and maps every primary resource. The result is
// never nil.
func list[T any](ctx context.Context, c *drupalClient, path string, params query.Params, mapper func(jsonapi.Resource, jsonapi.Index) T) ([]T, error) {
	collection, err := c.getCollection(ctx, path, params)
	if err != nil {
		return nil, err
	}

	included := jsonapi.NewIndex(collection.Included)

	result := make([]T, 0, len(collection.Data))
	for _, r := range collection.Data {
		result = append(result, mapper(r, included))
	}

	return result, nil
}

// first fetches a collection and maps its first primary resource, or
// returns nil when the collection is empty.
func first[T any](ctx context.Context, c *drupalClient, path string, params query.Params, mapper func(jsonapi.Resource, jsonapi.Index) T) (*T, error) {
	collection, err := c.getCollection(ctx, path, params)
	if err != nil {
		return nil, err
	}

	if len(collection.Data) == 0 {
		return nil, nil
	}

	entity := mapper(collection.Data[0], jsonapi.NewIndex(collection.Included))
	return &entity, nil
}

func withoutIncluded[T any](mapper func(jsonapi.Resource) T) func(jsonapi.Resource, jsonapi.Index) T {
	return func(r jsonapi.Resource, _ jsonapi.Index) T {
		return mapper(r)
	}
}
