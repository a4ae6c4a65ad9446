package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"housepricing/internal/core/housetype"
	perr "housepricing/internal/platform/errors"

	"github.com/spf13/cobra"
)

func newHistoryCmd(rf *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List searches saved on the API, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rf.apiBase == "" {
				return perr.InvalidArgf("history needs --api-base")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), rf.timeout)
			defer cancel()

			entries, err := newAPIClient(rf.apiBase, rf.timeout).History(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "no saved searches")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSAVED\tSTART\tEND\tTYPES")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.ID.String()[:8], e.Date.Local().Format("2006-01-02 15:04"),
					e.StartQuarter, e.EndQuarter, housetype.Join(e.HouseTypes))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "max entries; 0 uses the API default")
	return cmd
}
