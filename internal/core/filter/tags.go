package filter

import (
	"sync"

	"housepricing/internal/core/housetype"
	"housepricing/internal/core/quarter"
	perr "housepricing/internal/platform/errors"
	"housepricing/internal/platform/net/http/bind"
)

// Validation tags used on Selection
const (
	TagQuarter   = "quarter"
	TagHouseType = "housetype"
)

var tagsOnce sync.Once

// RegisterTags teaches the request binder the quarter and housetype tags.
// Safe to call more than once
func RegisterTags() {
	tagsOnce.Do(func() {
		must(bind.RegisterTag(TagQuarter, perr.ErrorCodeInvalidFormat,
			"{0} should be in the format YYYYKQ",
			func(s string) bool {
				_, err := quarter.Parse(s)
				return err == nil
			}))
		must(bind.RegisterTag(TagHouseType, perr.ErrorCodeValidation,
			"{0} contains an unknown house type",
			func(s string) bool { return housetype.Valid(housetype.Code(s)) }))
	})
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
