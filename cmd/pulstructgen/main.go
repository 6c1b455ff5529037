// Command pulstructgen expands pulstruct_api attributes outside of a
// compiler, writing the generated signature enums next to their sources.
package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/mathieupost/pulstruct/config"
	"github.com/mathieupost/pulstruct/log"
	"github.com/mathieupost/pulstruct/tracing"
)

var (
	configPath    string
	verbose       bool
	traceExporter string
	traceEndpoint string

	cfg             = config.Default()
	shutdownTracing = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "pulstructgen",
	Short: "Generate signature enums for implementation blocks",
	Long: `pulstructgen derives a signature enum from every implementation block
annotated with #[pulstruct_api(Label)]. Each method taking a receiver becomes a
variant carrying the types of its remaining parameters.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./"+config.FileName+" when present)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&traceExporter, "trace", "", "trace exporter: none, stdout or otlp")
	flags.StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP HTTP endpoint")

	rootCmd.AddCommand(expandCmd, apiCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if traceExporter != "" {
		cfg.Tracing.Exporter = traceExporter
	}
	if traceEndpoint != "" {
		cfg.Tracing.Endpoint = traceEndpoint
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return err
	}

	tp, shutdown, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return err
	}
	otel.SetTracerProvider(tp)
	shutdownTracing = shutdown
	return nil
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	shutdownTracing()
	if err != nil {
		log.Fatal(err)
	}
}
