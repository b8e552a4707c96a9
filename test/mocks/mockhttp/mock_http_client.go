// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mockhttp

import (
	"fmt"
	"net/http"
	"sync"
)

// MockHttpClient is a policy.Transporter that answers requests from registered expressions.
type MockHttpClient struct {
	mu          sync.Mutex
	expressions []*HttpExpression
	requests    []*http.Request
}

type HttpExpression struct {
	http        *MockHttpClient
	predicateFn RequestPredicate
	response    *http.Response
	responseFn  RespondFn
	error       error
}

type RequestPredicate func(request *http.Request) bool
type RespondFn func(request *http.Request) (*http.Response, error)

func NewMockHttpUtil() *MockHttpClient {
	return &MockHttpClient{
		expressions: []*HttpExpression{},
	}
}

func (c *MockHttpClient) Do(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)

	var match *HttpExpression
	for _, expr := range c.expressions {
		if expr.predicateFn(req) {
			match = expr
			break
		}
	}
	c.mu.Unlock()

	if match == nil {
		panic(fmt.Sprintf("No mock found for request: '%s %s'", req.Method, req.URL))
	}

	// If the response function has been set, return the value
	if match.responseFn != nil {
		return match.responseFn(req)
	}

	return match.response, match.error
}

// Requests returns every request seen so far, in arrival order.
func (c *MockHttpClient) Requests() []*http.Request {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]*http.Request{}, c.requests...)
}

func (c *MockHttpClient) When(predicate RequestPredicate) *HttpExpression {
	expr := HttpExpression{
		http:        c,
		predicateFn: predicate,
	}

	c.mu.Lock()
	c.expressions = append(c.expressions, &expr)
	c.mu.Unlock()

	return &expr
}

func (c *MockHttpClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.expressions = []*HttpExpression{}
	c.requests = nil
}

func (e *HttpExpression) Respond(response *http.Response) *MockHttpClient {
	e.response = response
	return e.http
}

func (e *HttpExpression) RespondFn(responseFn RespondFn) *MockHttpClient {
	e.responseFn = responseFn
	return e.http
}

func (e *HttpExpression) SetError(err error) *MockHttpClient {
	e.error = err
	return e.http
}
