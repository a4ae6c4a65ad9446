package main

import (
	"time"

	"housepricing/internal/platform/config"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	apiBase string
	timeout time.Duration
	lang    string
}

func newRootCmd(cfg config.Conf) *cobra.Command {
	qc := cfg.Prefix("QUERY_")
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "housepricing-query",
		Short:         "Query square meter prices per house type and quarter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&f.apiBase, "api-base", qc.MayURL("API_BASE", ""),
		"housepricing-api base URL; empty queries the statistics API directly")
	root.PersistentFlags().DurationVar(&f.timeout, "timeout", qc.MayDuration("TIMEOUT", defaultAPITimeout),
		"overall request timeout")
	root.PersistentFlags().StringVar(&f.lang, "lang", qc.MayString("LANG", "nb"),
		"locale for number formatting")

	root.AddCommand(newSearchCmd(cfg, f), newHistoryCmd(f))
	return root
}
