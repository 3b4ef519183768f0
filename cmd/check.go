package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/showline/report-cli/internal/embed"
)

var (
	checkFile        string
	checkConcurrency int
)

var checkCmd = &cobra.Command{
	Use:   "check [url...]",
	Short: "Detect the embed widget and its format on the given pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := args
		if checkFile != "" {
			fromFile, err := readURLFile(checkFile)
			if err != nil {
				return err
			}
			urls = append(urls, fromFile...)
		}
		if len(urls) == 0 {
			return eris.New("no urls given (pass arguments or --file)")
		}

		concurrency := checkConcurrency
		if concurrency == 0 {
			concurrency = cfg.Check.Concurrency
		}
		checkTimeout := time.Duration(cfg.Check.TimeoutSecs) * time.Second
		pageFetcher := embed.NewHTTPPageFetcher(checkTimeout, cfg.Check.UserAgent, cfg.Check.MaxBodyBytes)
		checker := embed.NewChecker(pageFetcher, concurrency, checkTimeout)

		results := checker.CheckURLs(cmd.Context(), urls)
		for _, u := range urls {
			cls := results[u]
			fmt.Printf("%-60s marker=%-5t format=%s\n", u, cls.HasMarker, cls.Format)
		}
		return nil
	},
}

func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "open url file")
	}
	defer func() { _ = f.Close() }()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrap(err, "read url file")
	}
	return urls, nil
}

func init() {
	checkCmd.Flags().StringVar(&checkFile, "file", "", "file with one url per line")
	checkCmd.Flags().IntVar(&checkConcurrency, "concurrency", 0, "max in-flight fetches (default from config)")
	rootCmd.AddCommand(checkCmd)
}
