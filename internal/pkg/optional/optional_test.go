package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patch struct {
	Title    Field[string]   `json:"title"`
	DemoURL  Field[*string]  `json:"demo_url"`
	Scale    Field[float64]  `json:"scale"`
	Tags     Field[[]string] `json:"tags"`
	Featured Field[bool]     `json:"is_featured"`
}

func TestField_AbsentNullValue(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"demo_url": null, "scale": 0, "is_featured": false}`), &p))

	assert.False(t, p.Title.Set)
	assert.False(t, p.Tags.Set)

	assert.True(t, p.DemoURL.Set)
	assert.True(t, p.DemoURL.Null)
	assert.Nil(t, p.DemoURL.Value)

	scale, ok := p.Scale.Get()
	assert.True(t, ok)
	assert.False(t, p.Scale.Null)
	assert.Equal(t, 0.0, scale)

	assert.True(t, p.Featured.Set)
	assert.False(t, p.Featured.Value)
}

func TestField_ValueDecoded(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Gallery","demo_url":"https://demo","tags":["go","3d"]}`), &p))

	assert.Equal(t, Of("Gallery"), p.Title)
	require.NotNil(t, p.DemoURL.Value)
	assert.Equal(t, "https://demo", *p.DemoURL.Value)
	assert.Equal(t, []string{"go", "3d"}, p.Tags.Value)
}

func TestField_TypeMismatch(t *testing.T) {
	var p patch
	err := json.Unmarshal([]byte(`{"scale":"big"}`), &p)
	assert.Error(t, err)
}

func TestField_Marshal(t *testing.T) {
	raw, err := json.Marshal(patch{Title: Of("x"), DemoURL: Null[*string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"x","demo_url":null,"scale":null,"tags":null,"is_featured":null}`, string(raw))
}
