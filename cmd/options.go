package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/showline/report-cli/internal/fetcher"
	"github.com/showline/report-cli/internal/registry"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the industry and country filter options from the registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			Timeout: time.Duration(cfg.Registry.TimeoutSecs) * time.Second,
		})
		refs, err := registry.NewClient(f, cfg.Registry).FetchReference(cmd.Context())
		if err != nil {
			return err
		}

		industries, countries := registry.Options(refs)
		fmt.Println("Industries:")
		for _, v := range industries {
			fmt.Printf("  %s\n", v)
		}
		fmt.Println("Countries:")
		for _, v := range countries {
			fmt.Printf("  %s\n", v)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
