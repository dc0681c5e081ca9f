package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MalithGihan/pdfparser-service/internal/smoke"
)

var (
	baseURL string
	timeout time.Duration
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:           "pdfparser-smoke [path-to-pdf]",
	Short:         "Smoke-test a running pdf-parser service",
	Long:          "Checks GET /health and, if a PDF path is given, uploads it to POST /parse.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&baseURL, "url", "u", "http://localhost:8001", "Service base URL")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Per-request timeout")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func run(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	return smoke.Run(context.Background(), smoke.NewClient(baseURL, timeout), cmd.OutOrStdout(), path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, smoke.ErrFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
