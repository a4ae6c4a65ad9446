// Package jsonstat reshapes json-stat2 price responses into chart series
package jsonstat

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"

	"housepricing/internal/core/housetype"
	perr "housepricing/internal/platform/errors"
)

// Dimension ids used by the price table
const (
	DimHouseType = "Boligtype"
	DimTime      = "Tid"
)

// Series is one labeled line of the chart. Data holds one value per time
// label; nil marks a cell the table suppressed
type Series struct {
	Code  housetype.Code `json:"code"`
	Label string         `json:"label"`
	Data  []*float64     `json:"data"`
}

// GraphData is what a chart needs to draw a response
type GraphData struct {
	Datasets []Series `json:"datasets"`
	Labels   []string `json:"labels"`
}

type category struct {
	Index categoryIndex   `json:"index"`
	Label ordered[string] `json:"label"`
}

type dimension struct {
	Label    string    `json:"label"`
	Category *category `json:"category"`
}

type envelope struct {
	Dimension map[string]dimension `json:"dimension"`
	Value     []*float64           `json:"value"`
}

// PrepareGraphData parses a json-stat2 response and splits its flat value
// array into one series per house type, in declared category order
func PrepareGraphData(raw []byte) (GraphData, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return GraphData{}, perr.Wrap(err, perr.ErrorCodeMalformedResponse, "error in data")
	}

	tid, ok := env.Dimension[DimTime]
	if !ok || tid.Category == nil {
		return GraphData{}, missing(DimTime)
	}
	bt, ok := env.Dimension[DimHouseType]
	if !ok || bt.Category == nil || len(bt.Category.Index) == 0 {
		return GraphData{}, missing(DimHouseType)
	}

	labels := make([]string, len(tid.Category.Label))
	for i, e := range tid.Category.Label {
		labels[i] = e.Value
	}

	cats := slices.Clone(bt.Category.Index)
	slices.SortStableFunc(cats, func(a, b entry[int]) int { return a.Value - b.Value })

	n := len(cats)
	if len(env.Value)%n != 0 {
		err := perr.New(perr.ErrorCodeMalformedResponse, "error in data")
		err = perr.WithMeta(err, "values", fmt.Sprint(len(env.Value)))
		return GraphData{}, perr.WithMeta(err, "categories", fmt.Sprint(n))
	}

	chunks := chunk(env.Value, len(env.Value)/n)
	out := GraphData{Datasets: make([]Series, n), Labels: labels}
	for i, c := range cats {
		code := housetype.Code(c.Key)
		data := []*float64{}
		if i < len(chunks) {
			data = chunks[i]
		}
		out.Datasets[i] = Series{Code: code, Label: housetype.Label(code), Data: data}
	}
	return out, nil
}

func missing(dim string) error {
	return perr.WithMeta(perr.MalformedResponsef("error in data: dimension %s missing", dim), "dimension", dim)
}

// chunk splits s into consecutive slices of size n; the last may be shorter
func chunk[T any](s []T, n int) [][]T {
	if n <= 0 {
		return nil
	}
	out := make([][]T, 0, (len(s)+n-1)/n)
	for i := 0; i < len(s); i += n {
		out = append(out, s[i:min(i+n, len(s))])
	}
	return out
}

// Palette returns count+1 random rgb() colors, one per series with a spare
func Palette(count int, rnd *rand.Rand) []string {
	if count < 0 {
		count = 0
	}
	out := make([]string, 0, count+1)
	for i := 0; i <= count; i++ {
		out = append(out, fmt.Sprintf("rgb(%d, %d, %d)", rnd.IntN(256), rnd.IntN(256), rnd.IntN(256)))
	}
	return out
}
