// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package azsdk

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

type userAgentPolicy struct {
	userAgent string
}

// Policy to add the user agent header to the HTTP request.
// The value is prepended to whatever the SDK pipeline already set.
func NewUserAgentPolicy(userAgent string) policy.Policy {
	return &userAgentPolicy{
		userAgent: userAgent,
	}
}

func (p *userAgentPolicy) Do(req *policy.Request) (*http.Response, error) {
	if p.userAgent == "" {
		return req.Next()
	}

	rawRequest := req.Raw()
	existing := strings.TrimSpace(rawRequest.Header.Get("User-Agent"))
	if existing == "" {
		rawRequest.Header.Set("User-Agent", p.userAgent)
	} else if !strings.Contains(existing, p.userAgent) {
		rawRequest.Header.Set("User-Agent", fmt.Sprintf("%s %s", p.userAgent, existing))
	}

	return req.Next()
}
