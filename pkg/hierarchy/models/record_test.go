package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NumberValue(1), "1"},
		{NumberValue(1.5), "1.5"},
		{NumberValue(-0.25), "-0.25"},
		{NumberValue(1000000), "1000000"},
		{TextValue("1"), "1"},
		{TextValue(""), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestRecordJSONKeepsOrder(t *testing.T) {
	var r Record
	err := json.Unmarshal([]byte(`{"zeta": "a", "alpha": 1, "mid": 2.5, "flag": true, "none": null}`), &r)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid", "flag", "none"}, r.Names())
	assert.Equal(t, MustRecord(
		"zeta", "a",
		"alpha", 1,
		"mid", 2.5,
		"flag", "true",
		"none", "null",
	), r)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"a","alpha":1,"mid":2.5,"flag":"true","none":"null"}`, string(out))
}

func TestRecordJSONRejectsNested(t *testing.T) {
	var r Record
	assert.Error(t, json.Unmarshal([]byte(`{"a": {"b": 1}}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &r))
}

func TestRecordYAMLKeepsOrder(t *testing.T) {
	src := `
- {country: A, region: 1, value: 824.5}
- country: B
  region: "2"
  value: 0x10
`
	var ds Dataset
	require.NoError(t, yaml.Unmarshal([]byte(src), &ds))
	require.Len(t, ds, 2)

	assert.Equal(t, MustRecord("country", "A", "region", 1, "value", 824.5), ds[0])
	assert.Equal(t, MustRecord("country", "B", "region", "2", "value", 16), ds[1])
}

func TestRecordYAMLNonFiniteStaysText(t *testing.T) {
	var r Record
	require.NoError(t, yaml.Unmarshal([]byte("{g: .inf, v: .nan, w: 2}"), &r))
	assert.Equal(t, MustRecord("g", ".inf", "v", ".nan", "w", 2), r)
}

func TestRequestJSON(t *testing.T) {
	src := `{
		"chartType": "sunburst",
		"dataset": [{"g": "x", "v": 1}],
		"dimensions": ["g"],
		"showLeafNodes": false
	}`
	var req Request
	require.NoError(t, json.Unmarshal([]byte(src), &req))

	assert.Equal(t, ChartSunburst, req.ChartType)
	assert.Equal(t, Dataset{MustRecord("g", "x", "v", 1)}, req.Dataset)
	assert.False(t, req.ShouldShowLeafNodes())
	assert.True(t, req.ShouldShowParentNodes())
	assert.True(t, req.DrillEnabled(true))
	assert.Equal(t, "name", req.DrillFieldOrDefault())
}

func TestDatasetMissingFields(t *testing.T) {
	ds := Dataset{
		MustRecord("a", 1, "b", 2),
		MustRecord("a", 1),
		MustRecord("b", 1),
	}
	assert.Equal(t, 2, ds.MissingFields([]string{"a", "b"}))
	assert.Equal(t, 1, ds.MissingFields([]string{"a"}))

	_, ok := Dataset{}.Sample()
	assert.False(t, ok)
}

func TestMustRecordPanics(t *testing.T) {
	assert.Panics(t, func() { MustRecord("a") })
	assert.Panics(t, func() { MustRecord(1, 2) })
	assert.Panics(t, func() { MustRecord("a", true) })
}
