package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mathieupost/pulstruct"
)

var label string

var apiCmd = &cobra.Command{
	Use:   "api [file|-]",
	Short: "Expand one raw implementation block",
	Long: `Reads a single implementation block (from a file, or stdin when the
argument is "-" or missing) and prints it followed by its signature enum. With
an output directory configured the result is written to
<output>/<label>_signature.rs instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApi,
}

func init() {
	flags := apiCmd.Flags()
	flags.StringVarP(&label, "label", "l", "", "label appended to the enum name")
	flags.StringVarP(&output, "output", "o", "", "write <label>_signature.rs into this directory")
	apiCmd.MarkFlagRequired("label")
}

func runApi(cmd *cobra.Command, args []string) error {
	if output != "" {
		cfg.Output = output
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out, err := pulstruct.Transform(cmd.Context(), label, input)
	if err != nil {
		out = pulstruct.Diagnostic(err)
	}

	if cfg.Output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	} else if werr := writeFile(signaturePath(label), out+"\n"); werr != nil {
		return werr
	}
	return errors.Wrap(err, "expanding implementation block")
}

func signaturePath(label string) string {
	return filepath.Join(cfg.Output, strcase.ToSnake(label)+"_signature.rs")
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		bytes, err := io.ReadAll(cmd.InOrStdin())
		return string(bytes), errors.Wrap(err, "reading stdin")
	}
	bytes, err := os.ReadFile(args[0])
	return string(bytes), errors.Wrap(err, "reading input file")
}
