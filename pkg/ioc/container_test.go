// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ioc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type greeter struct {
	greeting string
}

var errNoGreeting = errors.New("no greeting configured")

func Test_Resolve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		container := NewNestedContainer()
		container.RegisterSingleton(func() string {
			return "hello"
		})
		container.RegisterSingleton(func(greeting string) *greeter {
			return &greeter{greeting: greeting}
		})

		var instance *greeter
		require.NoError(t, container.Resolve(&instance))
		require.Equal(t, "hello", instance.greeting)
	})

	t.Run("FailWithContainerError", func(t *testing.T) {
		container := NewNestedContainer()

		var instance *greeter
		err := container.Resolve(&instance)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrResolveInstance))
	})

	t.Run("FailWithResolverError", func(t *testing.T) {
		container := NewNestedContainer()
		container.RegisterSingleton(func() (*greeter, error) {
			return nil, errNoGreeting
		})

		var instance *greeter
		err := container.Resolve(&instance)
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrResolveInstance))
		require.True(t, errors.Is(err, errNoGreeting))
	})

	t.Run("FailWithDependencyResolverError", func(t *testing.T) {
		container := NewNestedContainer()
		container.RegisterSingleton(func() (string, error) {
			return "", errNoGreeting
		})
		container.RegisterSingleton(func(greeting string) *greeter {
			return &greeter{greeting: greeting}
		})

		var instance *greeter
		err := container.Resolve(&instance)
		require.True(t, errors.Is(err, errNoGreeting))
		require.Equal(t, errNoGreeting.Error(), err.Error())
	})

	t.Run("FailWithMissingDependency", func(t *testing.T) {
		container := NewNestedContainer()
		container.RegisterSingleton(func(greeting string) *greeter {
			return &greeter{greeting: greeting}
		})

		var instance *greeter
		err := container.Resolve(&instance)
		require.True(t, errors.Is(err, ErrResolveInstance))
		require.Contains(t, err.Error(), "string")
	})

	t.Run("LaterRegistrationWins", func(t *testing.T) {
		container := NewNestedContainer()
		RegisterInstance(container, &greeter{greeting: "hi"})
		RegisterInstance(container, &greeter{greeting: "hello"})

		var instance *greeter
		require.NoError(t, container.Resolve(&instance))
		require.Equal(t, "hello", instance.greeting)
	})
}

func Test_ResolveNamed(t *testing.T) {
	container := NewNestedContainer()
	calls := 0
	require.NoError(t, container.RegisterNamedTransient("list", func() *greeter {
		calls++
		return &greeter{greeting: "list"}
	}))

	var first, second *greeter
	require.NoError(t, container.ResolveNamed("list", &first))
	require.NoError(t, container.ResolveNamed("list", &second))
	require.Equal(t, "list", first.greeting)
	require.Equal(t, 2, calls)

	var missing *greeter
	err := container.ResolveNamed("stop", &missing)
	require.True(t, errors.Is(err, ErrResolveInstance))
}
