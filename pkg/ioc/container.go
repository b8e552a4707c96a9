// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package ioc wraps golobby/container with lazy resolvers, instance registration
// and resolve errors that keep the failure of the resolver itself.
package ioc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golobby/container/v3"
)

// ErrResolveInstance is returned when the container has no usable registration for a type.
var ErrResolveInstance = errors.New("failed resolving instance from container")

// NestedContainer is the IoC container of one acactl invocation.
// Registering a type again replaces the earlier registration.
type NestedContainer struct {
	inner container.Container
}

func NewNestedContainer() *NestedContainer {
	return &NestedContainer{
		inner: container.New(),
	}
}

// Registers a resolver with a singleton lifetime
// Panics if the resolver is not valid
func (c *NestedContainer) RegisterSingleton(resolveFn any) {
	container.MustSingletonLazy(c.inner, resolveFn)
}

// Registers a named resolver with a transient lifetime (instance per resolution)
func (c *NestedContainer) RegisterNamedTransient(name string, resolveFn any) error {
	return c.inner.NamedTransientLazy(name, resolveFn)
}

// Resolve populates instance from the container.
func (c *NestedContainer) Resolve(instance any) error {
	if err := c.inner.Resolve(instance); err != nil {
		return inspectResolveError(err)
	}

	return nil
}

// ResolveNamed populates instance from the named registration.
func (c *NestedContainer) ResolveNamed(name string, instance any) error {
	if err := c.inner.NamedResolve(instance, name); err != nil {
		return inspectResolveError(err)
	}

	return nil
}

// Registers a constructed instance of the specified type
// Panics if the registration fails
func RegisterInstance[F any](c *NestedContainer, instance F) {
	container.MustSingletonLazy(c.inner, func() F {
		return instance
	})
}

// golobby prefixes its own errors with "container:" and wraps the error of a failing resolver once.
// A resolver error is returned as is, so callers can match it.
func inspectResolveError(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		err = cause
	}

	if strings.HasPrefix(err.Error(), "container:") {
		return fmt.Errorf("%w: %s", ErrResolveInstance, err.Error())
	}

	return err
}
