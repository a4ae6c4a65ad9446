// Package ssb talks to the Statistics Norway (SSB) table API for the
// quarterly house price table
package ssb

import (
	"encoding/json"

	"housepricing/internal/core/housetype"
)

// Dimension codes and fixed selectors of table 07241
const (
	CodeHouseType = "Boligtype"
	CodeContents  = "ContentsCode"
	CodeTime      = "Tid"

	ContentsSquareMeterPrice = "KvPris"
	FormatJSONStat2          = "json-stat2"
	filterItem               = "item"
)

// Selection picks items from one dimension
type Selection struct {
	Filter string   `json:"filter"`
	Values []string `json:"values"`
}

// Clause is one dimension filter of a query
type Clause struct {
	Code      string    `json:"code"`
	Selection Selection `json:"selection"`
}

// ResponseFormat selects the payload format
type ResponseFormat struct {
	Format string `json:"format"`
}

// QueryBody is the POST body the table endpoint accepts
type QueryBody struct {
	Query    []Clause       `json:"query"`
	Response ResponseFormat `json:"response"`
}

// BuildQueryBody maps house types and quarters onto the table query. Inputs
// are taken as already validated
func BuildQueryBody(houseTypes []housetype.Code, quarters []string) QueryBody {
	return QueryBody{
		Query: []Clause{
			{Code: CodeHouseType, Selection: Selection{Filter: filterItem, Values: nonNil(housetype.Strings(houseTypes))}},
			{Code: CodeContents, Selection: Selection{Filter: filterItem, Values: []string{ContentsSquareMeterPrice}}},
			{Code: CodeTime, Selection: Selection{Filter: filterItem, Values: nonNil(append([]string(nil), quarters...))}},
		},
		Response: ResponseFormat{Format: FormatJSONStat2},
	}
}

// JSON serializes the body
func (q QueryBody) JSON() ([]byte, error) { return json.Marshal(q) }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
