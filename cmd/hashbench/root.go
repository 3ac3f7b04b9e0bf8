package main

import (
	"fmt"
	"hashbench/catalog"
	"hashbench/config"
	"hashbench/harness"
	"hashbench/report"
	"hashbench/sweep"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hashbench",
		Short: "Measure hash and checksum throughput over growing inputs",
		Long: `Runs every cataloged hash once per input size, from 1 byte up to
2^max-exp bytes, prints the size-0 check run and writes one CSV row per
measurement.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSweep,
	}
	config.RegisterFlags(root.PersistentFlags())
	root.AddCommand(newCheckCmd(), newListCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Hash the fixed test vector with every algorithm and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, algos, err := setup(cmd)
			if err != nil {
				return err
			}
			return printCheck(cmd, algos, cfg.CheckSeed)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the cataloged algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, algos, err := setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range algos {
				fmt.Fprintf(out, "%-34s %s\n", a.Name, a.Shape)
			}
			fmt.Fprintf(out, "%s algorithms\n", humanize.Comma(int64(len(algos))))
			return nil
		},
	}
}

func setup(cmd *cobra.Command) (config.Config, []harness.Algorithm, error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, err
	}
	algos, err := catalog.Select(cfg.Filter)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, algos, nil
}

func printCheck(cmd *cobra.Command, algos []harness.Algorithm, seed uint32) error {
	p := report.NewPrinter(cmd.OutOrStdout())
	for _, s := range harness.RunSuite(algos, 0, seed) {
		if err := p.Write(s); err != nil {
			return err
		}
	}
	return nil
}

func runSweep(cmd *cobra.Command, _ []string) (err error) {
	cfg, algos, err := setup(cmd)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

	if cfg.Check {
		if err := printCheck(cmd, algos, cfg.CheckSeed); err != nil {
			return err
		}
	}

	plan := sweep.Plan{
		Algorithms: algos,
		Sizes:      sweep.Ladder(cfg.MaxExponent),
		Seed:       cfg.Seed,
	}
	table, err := report.CreateTable(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := table.Close(); err == nil {
			err = cerr
		}
	}()

	log.Info("sweep started",
		"algorithms", len(plan.Algorithms),
		"largest", humanize.IBytes(uint64(plan.Sizes[len(plan.Sizes)-1])),
		"cases", humanize.Comma(int64(plan.Cases())),
		"seed", plan.Seed,
		"out", cfg.Output)

	sinks := []sweep.Sink{table}
	if cfg.Progress {
		bar := progressbar.NewOptions(plan.Cases(),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("hashing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish())
		defer bar.Finish()
		sinks = append(sinks, sweep.SinkFunc(func(harness.Stat) error { return bar.Add(1) }))
	}

	if err := sweep.Run(plan, sinks...); err != nil {
		return errors.Wrap(err, "sweep")
	}
	log.Info("sweep done", "rows", humanize.Comma(int64(table.Rows())), "out", cfg.Output)
	return nil
}
