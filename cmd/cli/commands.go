package main

import (
	"context"
	"encoding/json"
	"fmt"

	"pix_direct_sales/internal/infrastructure/bootstrap"

	"github.com/spf13/cobra"
)

type appOpener func(ctx context.Context) (*bootstrap.App, error)

func newRootCmd(open appOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pixctl",
		Short:         "Operator tool for the PIX direct-sales backend",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(refreshCmd(open))
	rootCmd.AddCommand(subscriptionCmd(open))
	return rootCmd
}

// withApp opens the application for one command and closes it afterwards.
func withApp(cmd *cobra.Command, open appOpener, fn func(ctx context.Context, app *bootstrap.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	app, err := open(ctx)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(ctx, app)
}

func refreshCmd(open appOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Reconcile local state with Mercado Pago",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "sale [payment-id]",
		Short: "Reconcile a product sale and its membership",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *bootstrap.App) error {
				status, err := app.PaymentStatus.Refresh(ctx, args[0], "")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "payment %s: %s\n", args[0], status)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "subscription [user-id]",
		Short: "Reconcile a seller subscription from its last payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *bootstrap.App) error {
				status, err := app.PaymentStatus.Refresh(ctx, "", args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "subscription %s: %s\n", args[0], status)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "membership [product-id] [buyer-email]",
		Short: "Reconcile the latest sale of a product for a buyer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *bootstrap.App) error {
				status, err := app.PaymentStatus.RefreshMembership(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "membership %s/%s: %s\n", args[0], args[1], status)
				return nil
			})
		},
	})

	return cmd
}

func subscriptionCmd(open appOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Inspect seller subscriptions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "access [user-id]",
		Short: "Print the plan state of a seller (marks lapsed plans expired)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(ctx context.Context, app *bootstrap.App) error {
				access, err := app.Seller.SubscriptionAccess(ctx, args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(access)
			})
		},
	})

	return cmd
}
