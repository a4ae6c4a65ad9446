package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "housepricing/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saveReq struct {
	Label string `json:"label" validate:"required,min=2"`
	Limit int    `json:"limit,omitempty" validate:"min=1,max=500"`
}

func post(body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	}
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func requireCode(t *testing.T, want perr.ErrorCode, err error) *perr.Error {
	t.Helper()
	require.Error(t, err)
	e, ok := perr.As(err)
	require.True(t, ok, "not a perr error: %v", err)
	require.Equal(t, want, e.Code(), err.Error())
	return e
}

func TestParseJSON_OK(t *testing.T) {
	t.Parallel()

	got, err := ParseJSON[saveReq](post(`{"label":"kvartal","limit":10}`))
	require.NoError(t, err)
	assert.Equal(t, saveReq{Label: "kvartal", Limit: 10}, got)

	_, err = ParseJSON[saveReq](post(`{"label":"kvartal","limit":10}` + "\n\t "))
	assert.NoError(t, err, "trailing whitespace is fine")
}

func TestParseJSON_DecodeFailures(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":    "",
		"broken":   `{"label":`,
		"unknown":  `{"label":"ab","limit":1,"extra":true}`,
		"trailing": `{"label":"ab","limit":1}{}`,
		"garbage":  `{"label":"ab","limit":1} x`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseJSON[saveReq](post(body))
			requireCode(t, perr.ErrorCodeJSON, err)
			assert.Zero(t, got)
		})
	}
}

func TestParseJSON_Options(t *testing.T) {
	t.Parallel()

	got, err := ParseJSON[struct{ Note string }](post(""), AllowEmptyBody())
	require.NoError(t, err)
	assert.Zero(t, got)

	got2, err := ParseJSON[saveReq](post(`{"label":"ab","limit":2,"extra":1}`), AllowUnknownFields())
	require.NoError(t, err)
	assert.Equal(t, "ab", got2.Label)

	_, err = ParseJSON[saveReq](post(`{"label":"kvartal","limit":10}`), MaxBytes(8))
	requireCode(t, perr.ErrorCodeJSON, err)

	_, err = ParseJSON[saveReq](post(`{"label":"kvartal","limit":10}`), MaxBytes(0))
	assert.NoError(t, err)
}

func TestParseJSON_Validation(t *testing.T) {
	t.Parallel()

	_, err := ParseJSON[saveReq](post(`{"label":"a","limit":1}`))
	e := requireCode(t, perr.ErrorCodeValidation, err)
	assert.Equal(t, "label", e.Field())
	assert.Equal(t, "label must be at least 2", e.Message())

	_, err = ParseJSON[saveReq](post(`{"label":"ab","limit":501}`))
	e = requireCode(t, perr.ErrorCodeValidation, err)
	assert.Equal(t, "limit must be at most 500", e.Message())

	_, err = ParseJSON[int](post(`5`))
	requireCode(t, perr.ErrorCodeJSON, err)
}

func TestValidate_FieldNames(t *testing.T) {
	t.Parallel()

	type named struct {
		Hidden int `json:"-" validate:"min=1"`
	}
	e := requireCode(t, perr.ErrorCodeValidation, Validate(named{}))
	assert.Equal(t, "Hidden", e.Field())

	type plain struct {
		Count int `validate:"min=1"`
	}
	e = requireCode(t, perr.ErrorCodeValidation, Validate(plain{}))
	assert.Equal(t, "Count", e.Field())
	assert.Equal(t, "Count must be at least 1", e.Message())
}

func TestRegisterTag(t *testing.T) {
	type code string
	require.NoError(t, RegisterTag("even_len", perr.ErrorCodeInvalidFormat,
		"{0} must have an even length", func(s string) bool { return len(s)%2 == 0 }))

	type req struct {
		Tag   string `json:"tag" validate:"required,even_len"`
		Codes []code `json:"codes" validate:"dive,even_len"`
	}

	assert.NoError(t, Validate(req{Tag: "ab", Codes: []code{"cd"}}))

	e := requireCode(t, perr.ErrorCodeInvalidFormat, Validate(req{Tag: "abc"}))
	assert.Equal(t, "tag", e.Field())
	assert.Equal(t, "tag must have an even length", e.Message())

	e = requireCode(t, perr.ErrorCodeInvalidFormat, Validate(req{Tag: "ab", Codes: []code{"cd", "e"}}))
	assert.Equal(t, "codes", e.Field())

	require.NoError(t, RegisterTag("even_len", perr.ErrorCodeRangeOrder, "{0} is odd", func(string) bool { return false }))
	e = requireCode(t, perr.ErrorCodeRangeOrder, Validate(req{Tag: "ab"}))
	assert.Equal(t, "tag is odd", e.Message())
}

func TestTopField(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Selection.houseTypes[1]": "houseTypes",
		"req.tag":                 "tag",
		"plain":                   "plain",
		"a.b.c":                   "b",
	}
	for in, want := range cases {
		assert.Equal(t, want, topField(in), in)
	}
}
