package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	pricedomain "housepricing/internal/services/api/prices/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// missing marks a suppressed cell, as the statistics tables do
const missing = ".."

// writeTable prints one row per quarter and one column per house type, with
// prices grouped for lang
func writeTable(out io.Writer, lang string, res pricedomain.SearchResult) error {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Norwegian
	}
	p := message.NewPrinter(tag)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	head := []string{"QUARTER"}
	for _, s := range res.Datasets {
		head = append(head, strings.ToUpper(s.Label))
	}
	fmt.Fprintln(w, strings.Join(head, "\t")+"\t")

	for i, q := range res.Labels {
		row := []string{q}
		for _, s := range res.Datasets {
			if i >= len(s.Data) || s.Data[i] == nil {
				row = append(row, missing)
				continue
			}
			row = append(row, p.Sprintf("%.0f", *s.Data[i]))
		}
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	}
	return w.Flush()
}
