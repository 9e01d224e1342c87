// internal/filter/filter_test.go
package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestParseEnumFilters(t *testing.T) {
	specs, err := Parse(url.Values{
		"property_color": {"red", "blue"},
		"property_size":  {"m"},
		"page":           {"2"},
		"name":           {"shirt"},
	})
	require.NoError(t, err)
	require.Len(t, specs, 2)

	require.NotNil(t, specs["color"].Enum)
	assert.Nil(t, specs["color"].Range)
	assert.ElementsMatch(t, []string{"red", "blue"}, specs["color"].Enum.Values)

	require.NotNil(t, specs["size"].Enum)
	assert.Equal(t, []string{"m"}, specs["size"].Enum.Values)
}

func TestParseRangeFilters(t *testing.T) {
	specs, err := Parse(url.Values{
		"property_price_from":  {"10"},
		"property_price_to":    {"20"},
		"property_weight_from": {"100"},
	})
	require.NoError(t, err)
	require.Len(t, specs, 2)

	price := specs["price"]
	require.NotNil(t, price.Range)
	assert.Nil(t, price.Enum)
	assert.Equal(t, int64Ptr(10), price.Range.From)
	assert.Equal(t, int64Ptr(20), price.Range.To)

	weight := specs["weight"]
	require.NotNil(t, weight.Range)
	assert.Equal(t, int64Ptr(100), weight.Range.From)
	assert.Nil(t, weight.Range.To)
}

func TestParseSkipsMalformedBounds(t *testing.T) {
	specs, err := Parse(url.Values{
		"property_price_from": {"abc"},
		"property_price_to":   {"20"},
	})
	require.NoError(t, err)

	price := specs["price"]
	require.NotNil(t, price.Range)
	assert.Nil(t, price.Range.From)
	assert.Equal(t, int64Ptr(20), price.Range.To)
}

func TestParseSkipsSignedAndNegativeBounds(t *testing.T) {
	specs, err := Parse(url.Values{
		"property_price_from": {"-5"},
		"property_price_to":   {"+20"},
	})
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestParseDropsRangeWithOnlyMalformedBounds(t *testing.T) {
	specs, err := Parse(url.Values{
		"property_price_from": {"abc"},
		"property_color":      {"red"},
	})
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.NotNil(t, specs["color"].Enum)
}

func TestParseLastValidBoundWins(t *testing.T) {
	specs, err := Parse(url.Values{
		"property_price_from": {"10", "xyz", "30"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64Ptr(30), specs["price"].Range.From)
}

func TestParseRejectsMixedKinds(t *testing.T) {
	_, err := Parse(url.Values{
		"property_color":      {"red"},
		"property_color_from": {"10"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "color")
}

func TestParseRejectsMixedKindsEvenWithMalformedBound(t *testing.T) {
	// The key shape decides, not the validity of its value.
	_, err := Parse(url.Values{
		"property_color":    {"red"},
		"property_color_to": {"abc"},
	})
	require.Error(t, err)
}

func TestParseEmptyQuery(t *testing.T) {
	specs, err := Parse(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, specs)
}
