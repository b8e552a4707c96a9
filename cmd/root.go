// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"

	"github.com/azure/acactl/cmd/actions"
	"github.com/azure/acactl/internal"
	"github.com/azure/acactl/internal/tracing"
	"github.com/azure/acactl/pkg/input"
	"github.com/azure/acactl/pkg/ioc"
	"github.com/azure/acactl/pkg/output"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
)

// ContainerOverride replaces registrations after the defaults are in place.
type ContainerOverride func(container *ioc.NestedContainer)

// NewRootCmd creates the acactl command. Callers should pass arguments through
// NormalizeLegacyShorthands before executing it.
func NewRootCmd(overrides ...ContainerOverride) *cobra.Command {
	global := &internal.GlobalCommandOptions{}

	rootCmd := &cobra.Command{
		Use:   "acactl",
		Short: "List, stop, start, restart and follow the logs of Azure Container Apps across subscriptions.",
		Long: `List, stop, start, restart and follow the logs of Azure Container Apps across every subscription
the Azure CLI is signed in to. Subscriptions with "Test" in their name are always skipped.

When several modes are requested, logs wins over stop, then start, then restart. Listing is the default.`,
		Example: `  acactl -g "web-*"
  acactl --restart -g "api-*" -te "Prod*"
  acactl -fl "worker*"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       internal.Version,
	}

	flags := newRootFlags(rootCmd.Flags(), global)
	output.AddOutputParam(rootCmd, []output.Format{output.TableFormat, output.JsonFormat}, output.TableFormat)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		mode := flags.Mode()

		ctx, span := tracing.Start(cmd.Context(), "cmd."+string(mode), attribute.String("acactl.mode", string(mode)))
		defer span.End()

		container := ioc.NewNestedContainer()
		ioc.RegisterInstance[context.Context](container, ctx)
		ioc.RegisterInstance(container, cmd)
		ioc.RegisterInstance(container, global)
		ioc.RegisterInstance(container, flags)
		registerCommonDependencies(container)
		if err := registerActions(container); err != nil {
			return err
		}

		for _, override := range overrides {
			override(container)
		}

		var err error
		if flags.save {
			err = saveDefaults(ctx, container, flags)
		}

		var action actions.Action
		if err == nil {
			action, err = resolveAction(container, mode)
		}
		if err == nil {
			var result *actions.ActionResult
			result, err = action.Run(ctx)
			if err == nil {
				err = reportResult(ctx, container, result)
			}
		}

		if err != nil {
			span.RecordError(err)
			return &internal.ErrorWithTraceId{
				TraceId: tracing.TraceId(ctx),
				Err:     err,
			}
		}

		return nil
	}

	return rootCmd
}

func reportResult(ctx context.Context, container *ioc.NestedContainer, result *actions.ActionResult) error {
	if result == nil || result.Message == nil {
		return nil
	}

	var console input.Console
	if err := container.Resolve(&console); err != nil {
		return err
	}

	console.Message(ctx, output.WithSuccessFormat("%s", result.Message.Header))
	if result.Message.FollowUp != "" {
		console.Message(ctx, result.Message.FollowUp)
	}

	return nil
}
