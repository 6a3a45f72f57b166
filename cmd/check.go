package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"phishguard/internal/config"
	"phishguard/internal/detector"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/storage/memory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// checkResult is one entry of the check command output.
type checkResult struct {
	URL     string          `json:"url"             yaml:"url"`
	Verdict *domain.Verdict `json:"verdict,omitempty" yaml:"verdict,omitempty"`
	Error   string          `json:"error,omitempty" yaml:"error,omitempty"`
}

func writeResults(w io.Writer, format string, results []checkResult) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(results) //nolint: wrapcheck
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()

		return enc.Encode(results) //nolint: wrapcheck
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// checkURLs scores every URL with det. A failed check is reported in its
// entry and does not stop the others.
func checkURLs(ctx context.Context, det detector.Detector, urls []string) []checkResult {
	results := make([]checkResult, 0, len(urls))
	for _, u := range urls {
		v, err := det.CheckURL(ctx, u, "")
		if err != nil {
			results = append(results, checkResult{URL: u, Error: err.Error()})

			continue
		}
		results = append(results, checkResult{URL: u, Verdict: &v})
	}

	return results
}

func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <url>...",
		Short: "Scores URLs once and prints their verdicts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			format, _ := cmd.Flags().GetString("output")
			refresh, _ := cmd.Flags().GetBool("blacklist-refresh")

			deps, err := newDetectorDeps(ctx, cfg, memory.New())
			if err != nil {
				return err
			}
			det, err := detector.New(deps, detector.NewOptions(cfg))
			if err != nil {
				return err //nolint: wrapcheck
			}

			if refresh {
				res, err := det.RefreshBlacklist(ctx)
				if err != nil {
					// checks still run on scoring alone
					logger.Warn(ctx, "could not refresh blacklist", zap.Error(err))
				} else {
					logger.Info(ctx, "blacklist refreshed", zap.Int("added", res.Added), zap.Int("size", res.Size))
				}
			}

			return writeResults(cmd.OutOrStdout(), format, checkURLs(ctx, det, args))
		},
	}

	cmd.Flags().StringP("output", "o", outputJSON, "Output format (json or yaml)")
	cmd.Flags().Bool("blacklist-refresh", false, "Download the blacklist feed before checking")

	return cmd
}
