package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/showline/report-cli/internal/embed"
	"github.com/showline/report-cli/internal/fetcher"
	"github.com/showline/report-cli/internal/model"
	"github.com/showline/report-cli/internal/registry"
	"github.com/showline/report-cli/internal/report"
)

var (
	reportVideoPath  string
	reportLivePath   string
	reportCaseType   string
	reportIndustries []string
	reportCountry    string
	reportPage       int
	reportCheck      bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the merge/filter/aggregate pipeline over two workbooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		video, err := loadWorkbook(reportVideoPath, "video")
		if err != nil {
			return err
		}
		live, err := loadWorkbook(reportLivePath, "live")
		if err != nil {
			return err
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			Timeout: time.Duration(cfg.Registry.TimeoutSecs) * time.Second,
		})
		refs, err := registry.NewClient(f, cfg.Registry).FetchReference(ctx)
		if err != nil {
			return err
		}

		source := model.SourceType(reportCaseType)
		if source != model.SourceLive {
			source = model.SourceVideo
		}

		result, err := report.Run(video, live, refs, report.RunParams{
			Source:          source,
			Industries:      reportIndustries,
			Country:         reportCountry,
			Page:            reportPage,
			PageSize:        cfg.Report.PageSize,
			MaxRowsPerGroup: cfg.Report.MaxRowsPerGroup,
		})
		if err != nil {
			return err
		}

		var classifications map[string]model.Classification
		if reportCheck {
			checkTimeout := time.Duration(cfg.Check.TimeoutSecs) * time.Second
			pageFetcher := embed.NewHTTPPageFetcher(checkTimeout, cfg.Check.UserAgent, cfg.Check.MaxBodyBytes)
			checker := embed.NewChecker(pageFetcher, cfg.Check.Concurrency, checkTimeout)
			classifications = checker.CheckURLs(ctx, report.URLs(result.Records))
		}

		printReport(result, classifications)

		zap.L().Info("report complete",
			zap.Int("page", result.Page.CurrentPage),
			zap.Int("groups_on_page", len(result.Page.Groups)),
			zap.Int("total_groups", result.Page.TotalGroupCount),
			zap.Bool("has_next", result.Page.HasNext),
		)
		return nil
	},
}

func loadWorkbook(path, table string) ([]model.PerformanceRecord, error) {
	rows, err := fetcher.ReadXLSX(path, fetcher.XLSXOptions{})
	if err != nil {
		return nil, eris.Wrapf(err, "read %s workbook", table)
	}
	return report.ParsePerformanceTable(table, rows)
}

func printReport(result *report.RunResult, classifications map[string]model.Classification) {
	for _, g := range result.Page.Groups {
		fmt.Printf("%s  views=%.0f  urls=%d  industry=%s  region=%s\n",
			g.GroupKey, g.TotalViews, g.URLCount, g.Industry, g.Region)
	}
	fmt.Println()
	for _, row := range report.Rows(result.Records, classifications) {
		line := fmt.Sprintf("  %-30s %12.0f  %s", row.ChannelName, row.ViewCount, row.PageURL)
		if row.HasMarker != nil {
			line += fmt.Sprintf("  marker=%t format=%s", *row.HasMarker, row.Format)
		}
		fmt.Println(line)
	}
	fmt.Printf("\npage %d  (%d groups total, has_next=%t)\n",
		result.Page.CurrentPage, result.Page.TotalGroupCount, result.Page.HasNext)
}

func init() {
	reportCmd.Flags().StringVar(&reportVideoPath, "video", "", "short-video performance workbook (.xlsx)")
	reportCmd.Flags().StringVar(&reportLivePath, "live", "", "live-stream performance workbook (.xlsx)")
	reportCmd.Flags().StringVar(&reportCaseType, "case-type", string(model.SourceVideo), "authoritative table: short_video or live_stream")
	reportCmd.Flags().StringSliceVar(&reportIndustries, "industry", nil, "industry filter (repeatable, OR semantics)")
	reportCmd.Flags().StringVar(&reportCountry, "country", "", "country filter, resolved to region labels")
	reportCmd.Flags().IntVar(&reportPage, "page", 1, "result page (1-based)")
	reportCmd.Flags().BoolVar(&reportCheck, "check", false, "detect the embed widget on each result URL")
	_ = reportCmd.MarkFlagRequired("video")
	_ = reportCmd.MarkFlagRequired("live")
	rootCmd.AddCommand(reportCmd)
}
