package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
	"github.com/storo-shop/backend/modules/core/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/core/services"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/configuration"
	"github.com/storo-shop/backend/pkg/eventbus"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "superadmin",
		Short:        "Manage tenants without going through the HTTP API",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		tenantListCmd(),
		tenantCreateCmd(),
		tenantBlockCmd(true),
		tenantBlockCmd(false),
		tenantSetPlanCmd(),
		tenantExtendTrialCmd(),
	)
	return cmd
}

// withTenantService opens a pool for the duration of one command.
func withTenantService(fn func(ctx context.Context, svc *services.TenantService) error) error {
	conf := configuration.Use()
	defer conf.Unload()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	svc := services.NewTenantService(
		persistence.NewTenantRepository(),
		eventbus.NewEventPublisher(conf.Logger()),
	)
	return fn(composables.WithPool(ctx, pool), svc)
}

func tenantListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTenantService(func(ctx context.Context, svc *services.TenantService) error {
				tenants, err := svc.List(ctx)
				if err != nil {
					return err
				}
				for _, t := range tenants {
					state := "active"
					if t.Blocked() {
						state = "blocked"
					}
					fmt.Printf("%s\t%s\t%s\t%s\t%s\n", t.ID(), t.Name(), t.Subdomain(), t.Plan(), state)
				}
				return nil
			})
		},
	}
}

func tenantCreateCmd() *cobra.Command {
	var subdomain, customDomain, plan, email string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTenantService(func(ctx context.Context, svc *services.TenantService) error {
				opts := []tenant.Option{
					tenant.WithSubdomain(subdomain),
					tenant.WithCustomDomain(customDomain),
					tenant.WithContactEmail(email),
				}
				if plan != "" {
					p := tenant.Plan(plan)
					if !p.Valid() {
						return fmt.Errorf("unknown plan %q", plan)
					}
					opts = append(opts, tenant.WithPlan(p))
				}
				created, err := svc.Create(ctx, tenant.New(args[0], opts...))
				if err != nil {
					return err
				}
				fmt.Println(created.ID())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&subdomain, "subdomain", "", "subdomain label under the base domain")
	cmd.Flags().StringVar(&customDomain, "custom-domain", "", "fully qualified custom domain")
	cmd.Flags().StringVar(&plan, "plan", "", "billing plan (free, basic, pro)")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	return cmd
}

func tenantBlockCmd(block bool) *cobra.Command {
	use, short := "block <id>", "Block a tenant"
	if !block {
		use, short = "unblock <id>", "Unblock a tenant"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant id: %w", err)
			}
			return withTenantService(func(ctx context.Context, svc *services.TenantService) error {
				if block {
					_, err = svc.Block(ctx, id)
				} else {
					_, err = svc.Unblock(ctx, id)
				}
				return err
			})
		},
	}
}

func tenantSetPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-plan <id> <plan>",
		Short: "Change a tenant's billing plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant id: %w", err)
			}
			return withTenantService(func(ctx context.Context, svc *services.TenantService) error {
				_, err := svc.SetPlan(ctx, id, tenant.Plan(args[1]))
				return err
			})
		},
	}
}

func tenantExtendTrialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extend-trial <id> <until RFC3339>",
		Short: "Extend a tenant's trial",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid tenant id: %w", err)
			}
			until, err := time.Parse(time.RFC3339, args[1])
			if err != nil {
				return fmt.Errorf("invalid timestamp: %w", err)
			}
			return withTenantService(func(ctx context.Context, svc *services.TenantService) error {
				_, err := svc.ExtendTrial(ctx, id, until)
				return err
			})
		},
	}
}
