package main

import (
	"context"
	"fmt"
	"net/url"

	"housepricing/internal/adapters/ssb"
	"housepricing/internal/core/filter"
	"housepricing/internal/core/housetype"
	"housepricing/internal/core/urlstate"
	"housepricing/internal/core/version"
	"housepricing/internal/platform/config"
	perr "housepricing/internal/platform/errors"
	"housepricing/internal/platform/logger"
	pricedomain "housepricing/internal/services/api/prices/domain"
	pricesmod "housepricing/internal/services/api/prices/module"
	pricesvc "housepricing/internal/services/api/prices/service"

	"github.com/spf13/cobra"
)

type searchFlags struct {
	start, end, types string
	share             string
	save              bool
}

func newSearchCmd(cfg config.Conf, rf *rootFlags) *cobra.Command {
	f := &searchFlags{}
	def := filter.Default()
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Fetch prices for a quarter range",
		Example: `  housepricing-query search --start 2015K1 --end 2016K2 --types 00,03
  housepricing-query search --url 'https://example.org/?start=2009K1&end=2010K1&houseTypes=02'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := f.selection()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), rf.timeout)
			defer cancel()

			var res pricedomain.SearchResult
			if rf.apiBase != "" {
				res, err = newAPIClient(rf.apiBase, rf.timeout).Search(ctx, sel)
			} else {
				res, err = localSearch(ctx, cfg, sel)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := writeTable(out, rf.lang, res); err != nil {
				return err
			}
			fmt.Fprintln(out, "share:", shareLink(rf.apiBase, sel))

			if !f.save {
				return nil
			}
			if rf.apiBase == "" {
				logger.Get().Warn().Msg("--save needs --api-base; search not saved")
				return nil
			}
			e, err := newAPIClient(rf.apiBase, rf.timeout).AppendHistory(ctx, sel)
			if err != nil {
				logger.Get().Warn().Err(err).Stringer("code", perr.CodeOf(err)).Msg("search not saved")
				return nil
			}
			fmt.Fprintln(out, "saved:", e.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.start, "start", def.StartQuarter, "first quarter, YYYYKQ")
	cmd.Flags().StringVar(&f.end, "end", def.EndQuarter, "last quarter, YYYYKQ")
	cmd.Flags().StringVar(&f.types, "types", housetype.Join(def.HouseTypes), "comma separated house type codes")
	cmd.Flags().StringVar(&f.share, "url", "", "replay a shared search link; overrides the other search flags")
	cmd.Flags().BoolVar(&f.save, "save", false, "append the search to the API's history")
	return cmd
}

// selection builds the search from flags, or from a share link when given
func (f *searchFlags) selection() (filter.Selection, error) {
	if f.share != "" {
		sel, ok := urlstate.DecodeURL(f.share)
		if !ok {
			return filter.Selection{}, perr.WithField(perr.InvalidArgf("link does not carry a complete search"), "url")
		}
		return sel, nil
	}
	codes, ok := housetype.ParseList(f.types)
	if !ok {
		return filter.Selection{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "unknown house type in %q", f.types), "houseTypes")
	}
	return filter.Selection{HouseTypes: codes, StartQuarter: f.start, EndQuarter: f.end}, nil
}

// localSearch runs the search in process against the statistics API
func localSearch(ctx context.Context, cfg config.Conf, sel filter.Selection) (pricedomain.SearchResult, error) {
	so := pricesmod.FromConfig(cfg).SSB
	if so.UserAgent == "" {
		so.UserAgent = version.UserAgent("housepricing-query")
	}
	client := ssb.NewClient(so)
	logger.Get().Debug().Str("endpoint", client.Endpoint()).Msg("querying statistics api")
	return pricesvc.New(client, pricesvc.Options{}).Search(ctx, sel)
}

// shareLink is the replay URL for sel: the API's replay route when a base is
// known, otherwise just the query string
func shareLink(apiBase string, sel filter.Selection) string {
	if apiBase == "" {
		return "?" + urlstate.Query(sel)
	}
	u, err := url.Parse(apiBase + apiPrefix + "/prices/search")
	if err != nil {
		return "?" + urlstate.Query(sel)
	}
	return urlstate.Encode(u, sel).String()
}
