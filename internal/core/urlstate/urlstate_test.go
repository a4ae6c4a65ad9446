package urlstate

import (
	"net/url"
	"testing"

	"housepricing/internal/core/filter"
	"housepricing/internal/core/housetype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	sels := []filter.Selection{
		{HouseTypes: []housetype.Code{"00"}, StartQuarter: "2009K1", EndQuarter: "2010K1"},
		{HouseTypes: []housetype.Code{"03", "00", "02"}, StartQuarter: "2015K3", EndQuarter: "2015K3"},
	}
	base, err := url.Parse("https://example.test/prices?lang=nb")
	require.NoError(t, err)

	for _, sel := range sels {
		u := Encode(base, sel)
		got, ok := Decode(u.Query())
		require.True(t, ok)
		assert.True(t, sel.Equal(got), "got %+v want %+v", got, sel)
		assert.Equal(t, "nb", u.Query().Get("lang"))
	}
	assert.Equal(t, "lang=nb", base.RawQuery, "Encode must not touch its input")
}

func TestEncode_ReplacesExisting(t *testing.T) {
	u, _ := url.Parse("/?start=2001K1&start=2002K1&houseTypes=00")
	out := Encode(u, filter.Selection{HouseTypes: []housetype.Code{"02", "03"}, StartQuarter: "2010K2", EndQuarter: "2011K1"})
	q := out.Query()
	assert.Equal(t, []string{"2010K2"}, q[ParamStart])
	assert.Equal(t, "02,03", q.Get(ParamHouseTypes))
	assert.Equal(t, "2011K1", q.Get(ParamEnd))
}

func TestEncode_NilURL(t *testing.T) {
	out := Encode(nil, filter.Default())
	assert.Equal(t, "end=2010K1&houseTypes=00%2C02%2C03&start=2009K1", out.RawQuery)
	assert.Equal(t, out.RawQuery, Query(filter.Default()))
}

func TestDecode_Absent(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing start":  "end=2010K1&houseTypes=00",
		"missing end":    "start=2009K1&houseTypes=00",
		"missing types":  "start=2009K1&end=2010K1",
		"blank types":    "start=2009K1&end=2010K1&houseTypes=",
		"unknown type":   "start=2009K1&end=2010K1&houseTypes=00,42",
		"trailing comma": "start=2009K1&end=2010K1&houseTypes=00,",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			q, err := url.ParseQuery(raw)
			require.NoError(t, err)
			_, ok := Decode(q)
			assert.False(t, ok)
		})
	}
}

func TestDecode_DoesNotValidateQuarters(t *testing.T) {
	q, _ := url.ParseQuery("start=garbage&end=2010K1&houseTypes=00")
	sel, ok := Decode(q)
	require.True(t, ok)
	assert.Equal(t, "garbage", sel.StartQuarter)
}

func TestDecodeURLAndDefault(t *testing.T) {
	sel, ok := DecodeURL("http://localhost:3000/?start=2012K1&end=2013K2&houseTypes=02")
	require.True(t, ok)
	assert.Equal(t, []housetype.Code{"02"}, sel.HouseTypes)

	_, ok = DecodeURL("%zz")
	assert.False(t, ok)

	def, from := DecodeOrDefault(url.Values{})
	assert.False(t, from)
	assert.True(t, def.Equal(filter.Default()))
}
