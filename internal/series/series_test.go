// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/artworks/pkg/types"
)

// rec builds a record from alternating name/value pairs.
func rec(kv ...string) types.Record {
	r := make(types.Record, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		r = append(r, types.Field{Name: kv[i], Value: kv[i+1]})
	}
	return r
}

func testDataset() types.Dataset {
	return types.Dataset{
		rec("series", "Night Paintings", "order", "2", "sub_order", "2", "title", "Starry Night",
			"subcategories", "landscape, sky", "image_file", "img/starry.jpg", "series_description", "After dark."),
		rec("series", "Night Paintings", "order", "2", "sub_order", "1", "title", "Café Terrace",
			"subcategories", "street", "thumb_file", "thumb/cafe.jpg"),
		rec("series", "Flowers", "order", "1", "title", "Sunflowers", "subcategories", "still life,"),
		rec("series", "Flowers", "order", "1", "title", "Irises", "subcategories", ""),
		rec("series", "", "title", "Sketch"),
	}
}

func TestBuild(t *testing.T) {
	got := Build(testDataset())
	require.Len(t, got, 3)

	assert.Equal(t, "Flowers", got[0].Name)
	assert.Equal(t, "flowers", got[0].Slug)
	assert.Equal(t, 1.0, got[0].Order)
	assert.Equal(t, []string{"still life"}, got[0].Subcategories)
	assert.Empty(t, got[0].Cover)
	require.Len(t, got[0].Works, 2)
	assert.Equal(t, "Irises", got[0].Works[0].Title, "equal sub_order falls back to title")
	assert.Equal(t, "Sunflowers", got[0].Works[1].Title)

	night := got[1]
	assert.Equal(t, "Night Paintings", night.Name)
	assert.Equal(t, "night-paintings", night.Slug)
	assert.Equal(t, "img/starry.jpg", night.Cover, "cover comes from the first record with an image")
	assert.Equal(t, "After dark.", night.Description)
	assert.Equal(t, []string{"landscape", "sky", "street"}, night.Subcategories)
	require.Len(t, night.Works, 2)
	assert.Equal(t, "Café Terrace", night.Works[0].Title)
	assert.Equal(t, "Starry Night", night.Works[1].Title)
	assert.Equal(t, "Starry Night", night.Works[1].Record.Value("title"))

	untitled := got[2]
	assert.Equal(t, "Untitled Series", untitled.Name)
	assert.Equal(t, "untitled-series", untitled.Slug)
	assert.Equal(t, float64(DefaultOrder), untitled.Order)
	assert.Equal(t, []string{}, untitled.Subcategories)
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(nil))
	assert.Empty(t, Build(types.Dataset{}))
}

func TestBuild_CoverPrefersThumb(t *testing.T) {
	got := Build(types.Dataset{
		rec("series", "A", "image_file", "img/a.jpg", "thumb_file", "thumb/a.jpg"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "thumb/a.jpg", got[0].Cover)
}

func TestBuild_SlugMatchesSite(t *testing.T) {
	got := Build(types.Dataset{rec("series", "Études & Nocturnes")})
	require.Len(t, got, 1)
	assert.Equal(t, "tudes-nocturnes", got[0].Slug)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Night Paintings", "night-paintings"},
		{"Land & Sea", "land-sea"},
		{"Études", "tudes"},
		{"Café Nights", "caf-nights"},
		{"  2024: New Work!  ", "2024-new-work"},
		{"snake_case -- title", "snake-case-title"},
		{"Untitled Series", "untitled-series"},
		{"日本", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), "Slug(%q)", tt.in)
	}
}

func TestFilter(t *testing.T) {
	all := Build(testDataset())

	tests := []struct {
		name    string
		subcats []string
		want    []string
	}{
		{name: "no filter keeps all", subcats: nil, want: []string{"Flowers", "Night Paintings", "Untitled Series"}},
		{name: "single match", subcats: []string{"street"}, want: []string{"Night Paintings"}},
		{name: "any of several", subcats: []string{"still life", "sky"}, want: []string{"Flowers", "Night Paintings"}},
		{name: "no match", subcats: []string{"portrait"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var names []string
			for _, s := range Filter(all, tt.subcats) {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSubcategories(t *testing.T) {
	assert.Equal(t, []string{"landscape", "sky", "still life", "street"}, Subcategories(Build(testDataset())))
}

func TestSplitSubcategories(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SplitSubcategories(" a ,, b c ,"))
	assert.Nil(t, SplitSubcategories(""))
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"3", 3},
		{" 2.5 ", 2.5},
		{"0", 0},
		{"", DefaultOrder},
		{"first", DefaultOrder},
		{"NaN", DefaultOrder},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseOrder(tt.in), "parseOrder(%q)", tt.in)
	}
}
