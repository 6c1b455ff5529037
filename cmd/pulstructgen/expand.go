package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/mathieupost/pulstruct/log"
	"github.com/mathieupost/pulstruct/source"
)

var (
	toStdout bool
	output   string
	suffix   string
	jobs     int
)

var expandCmd = &cobra.Command{
	Use:   "expand [file...]",
	Short: "Expand every #[pulstruct_api] item in the given files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExpand,
}

func init() {
	flags := expandCmd.Flags()
	flags.BoolVar(&toStdout, "stdout", false, "print expansions instead of writing files")
	flags.StringVarP(&output, "output", "o", "", "output directory (default next to each input)")
	flags.StringVar(&suffix, "suffix", "", "suffix replacing the input extension")
	flags.IntVarP(&jobs, "jobs", "j", 0, "files expanded in parallel")
}

func runExpand(cmd *cobra.Command, args []string) error {
	ctx, span := otel.Tracer("").Start(cmd.Context(), "pulstructgen.expand")
	defer span.End()

	if output != "" {
		cfg.Output = output
	}
	if suffix != "" {
		cfg.Suffix = suffix
	}
	if jobs > 0 {
		cfg.Jobs = jobs
	}

	results := make([]*source.Result, len(args))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Jobs > 0 {
		g.SetLimit(cfg.Jobs)
	}
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			res, err := source.ExpandFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			if toStdout {
				return nil
			}
			target := outputPath(path)
			log.Info().Str("path", path).Str("output", target).Int("labels", len(res.Labels)).Msg("writing expansion")
			return writeFile(target, res.Output)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if toStdout {
			fmt.Fprint(cmd.OutOrStdout(), res.Output)
		}
		failed += len(res.Diagnostics)
	}
	if failed > 0 {
		return errors.Errorf("%d expansion(s) produced a diagnostic", failed)
	}
	return nil
}

// outputPath maps src/api.rs to <output>/api<suffix>.
func outputPath(path string) string {
	dir := cfg.Output
	if dir == "" {
		dir = filepath.Dir(path)
	}
	base := filepath.Base(path)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+cfg.Suffix)
}

func writeFile(path, content string) error {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return errors.Wrap(err, "creating directory")
	}
	err = os.WriteFile(path, []byte(content), 0o644)
	return errors.Wrap(err, "writing to file")
}
