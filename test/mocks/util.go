// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mocks

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// CreateHttpResponseWithBody serializes body as JSON into a response for the given request.
func CreateHttpResponseWithBody[T any](request *http.Request, statusCode int, body T) (*http.Response, error) {
	responseJson, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return &http.Response{
		Request:    request,
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBuffer(responseJson)),
	}, nil
}

// CreateEmptyHttpResponse creates a response with no body for the given request.
func CreateEmptyHttpResponse(request *http.Request, statusCode int) (*http.Response, error) {
	return &http.Response{
		Request:    request,
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       http.NoBody,
	}, nil
}
