package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/solatis/rulebuilders/internal/catalog"
	"github.com/solatis/rulebuilders/internal/config"
	"github.com/solatis/rulebuilders/internal/log"
	"github.com/solatis/rulebuilders/internal/types"
)

func newCustomersCmd(flags *globalFlags) *cobra.Command {
	var opts catalog.FilterOptions
	var minRef, maxRef int

	c := &cobra.Command{
		Use:   "customers",
		Short: "List customers matching a filter, with their labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.MinRef = types.CustomerRef(minRef)
			opts.MaxRef = types.CustomerRef(maxRef)
			return runCustomers(cmd, flags, opts)
		},
	}

	c.Flags().String("format", "", "output format (json, proto)")
	c.Flags().IntVar(&minRef, "min-ref", 0, "lowest customer ref to include")
	c.Flags().IntVar(&maxRef, "max-ref", 0, "highest customer ref to include")
	c.Flags().StringSliceVar(&opts.LegalEntities, "legal-entity", nil, "legal entity code; repeat to match any of several")
	c.Flags().StringVar(&opts.FirstNamePrefix, "first-name-prefix", "", "first name prefix")
	c.Flags().BoolVar(&opts.Invert, "invert", false, "select customers NOT matching the filter")

	return c
}

func newCustomerCmd(flags *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "customer <ref>",
		Short: "Show one customer by ref",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid ref %q: %w", args[0], err)
			}
			return runCustomer(cmd, flags, types.CustomerRef(ref))
		},
	}

	c.Flags().String("format", "", "output format (json, proto)")

	return c
}

// setup configures logging and loads the catalog for a subcommand run.
func setup(cmd *cobra.Command, flags *globalFlags) (*config.CatalogConfig, *catalog.Repo, types.RunID, error) {
	if err := log.Configure(flags.logFormat, flags.logLevel); err != nil {
		return nil, nil, "", err
	}
	runID := types.NewRunID()

	cfg, err := config.LoadConfig(flags.configFile)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("format") {
		format, _ := cmd.Flags().GetString("format")
		cfg.Format = format
		if err := config.Validate(cfg); err != nil {
			return nil, nil, "", err
		}
	}

	repo, err := catalog.NewRepo(cfg)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to build catalog: %w", err)
	}

	log.Debug(map[string]any{
		"run_id":    runID,
		"first_ref": cfg.FirstRef,
		"count":     cfg.Count,
	}, "catalog loaded")

	return cfg, repo, runID, nil
}

func runCustomers(cmd *cobra.Command, flags *globalFlags, opts catalog.FilterOptions) error {
	cfg, repo, runID, err := setup(cmd, flags)
	if err != nil {
		return err
	}
	defer log.Sync()

	labeler := catalog.NewLabeler()
	selected := catalog.Select(repo.FindAll(), catalog.Filter(opts))

	entries := make([]catalog.Entry, 0, len(selected))
	for _, c := range selected {
		entries = append(entries, catalog.Entry{Customer: c, Labels: labeler.Labels(c)})
	}

	data, err := catalog.EncodeList(entries, cfg.Format)
	if err != nil {
		return err
	}

	log.Info(map[string]any{
		"run_id":  runID,
		"matched": len(entries),
		"format":  cfg.Format,
	}, "customers listed")

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runCustomer(cmd *cobra.Command, flags *globalFlags, ref types.CustomerRef) error {
	cfg, repo, runID, err := setup(cmd, flags)
	if err != nil {
		return err
	}
	defer log.Sync()

	var data []byte
	c, err := repo.FindByRef(ref)
	switch {
	case errors.Is(err, types.ErrCustomerNotFound):
		log.Warn(map[string]any{"run_id": runID, "ref": ref}, "customer not found")
		data, err = catalog.EncodeError(catalog.NotFoundCode, catalog.NotFoundMessage, cfg.Format)
	case err != nil:
		return err
	default:
		data, err = catalog.EncodeResult(catalog.Entry{Customer: c, Labels: catalog.NewLabeler().Labels(c)}, cfg.Format)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
