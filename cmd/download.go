// Package cmd implements the command-line interface for castgrab.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/castgrab/castgrab/archive"
	"github.com/castgrab/castgrab/color"
	"github.com/castgrab/castgrab/constant"
	"github.com/castgrab/castgrab/downloader"
	"github.com/castgrab/castgrab/feed"
	"github.com/castgrab/castgrab/icon"
	"github.com/castgrab/castgrab/key"
	"github.com/castgrab/castgrab/log"
	"github.com/castgrab/castgrab/network"
	"github.com/castgrab/castgrab/style"
	"github.com/castgrab/castgrab/util"
	"github.com/castgrab/castgrab/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringP("output-dir", "o", "", "Base directory; a folder named after the feed title is created inside it")
	lo.Must0(viper.BindPFlag(key.DownloadOutputDir, downloadCmd.Flags().Lookup("output-dir")))

	downloadCmd.Flags().IntP("chunks", "c", downloader.DefaultChunks, "Number of parallel chunks per episode")
	lo.Must0(viper.BindPFlag(key.DownloadChunks, downloadCmd.Flags().Lookup("chunks")))

	downloadCmd.Flags().BoolP("verbose", "v", false, "Print informational progress lines")

	downloadCmd.SetOut(os.Stdout)
}

// downloadCmd mirrors a single feed.
var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download every episode of a podcast feed",
	Long: `Download every episode of a podcast feed into <output-dir>/<feed title>.

Episodes are fetched oldest first. Files that already exist are skipped, so
re-running the command only picks up new episodes. Each file is stamped with
the episode's published date.

Exit codes: 0 on success, 1 on a fatal error, 2 when interrupted.`,
	Example:       "  castgrab download https://example.com/feed.xml -o ~/Podcasts -v",
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose := lo.Must(cmd.Flags().GetBool("verbose"))
		if code := runDownload(cmd.Context(), cmd.OutOrStdout(), args[0], verbose); code != constant.ExitOK {
			return &exitError{code: code}
		}
		return nil
	},
}

func runDownload(ctx context.Context, out io.Writer, url string, verbose bool) int {
	logger, closeLog, err := log.New(verbose)
	if err != nil {
		logger.Warnf("Logs will not be written to disk: %v", err)
	}
	defer util.Ignore(closeLog)

	base, err := where.Downloads(viper.GetString(key.DownloadOutputDir))
	if err != nil {
		logger.Errorf("Failed to resolve the output directory: %v", err)
		return constant.ExitFatal
	}

	timeout, err := time.ParseDuration(viper.GetString(key.NetworkTimeout))
	if err != nil {
		logger.Warnf("Invalid %s %q, using %s", key.NetworkTimeout, viper.GetString(key.NetworkTimeout), network.DefaultTimeout)
		timeout = network.DefaultTimeout
	}
	client := network.New(timeout)

	archiver := archive.New(archive.Options{
		OutputDir:  base,
		Fetcher:    feed.NewFetcher(client, logger),
		Downloader: downloader.NewGot(client, viper.GetInt(key.DownloadChunks)),
		Logger:     logger,
	})

	summary, err := archiver.Run(ctx, url)
	code := exitCode(err)
	printSummary(out, summary, code)
	return code
}

// exitError carries the process exit code of a command that already reported its own failure.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// exitCode classifies the outcome of a run.
func exitCode(err error) int {
	switch {
	case err == nil:
		return constant.ExitOK
	case errors.Is(err, archive.ErrCancelled), errors.Is(err, context.Canceled):
		return constant.ExitCancelled
	default:
		return constant.ExitFatal
	}
}

func printSummary(out io.Writer, summary archive.Summary, code int) {
	switch code {
	case constant.ExitOK:
		_, _ = fmt.Fprintf(out, "%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), summary)
	case constant.ExitCancelled:
		_, _ = fmt.Fprintf(out, "%s interrupted: %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), summary)
	}
}
