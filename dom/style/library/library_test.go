package library

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/selector"
	"github.com/npillmayer/styling/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sel(t *testing.T, text string) *selector.Selector {
	s, err := selector.Parse(text)
	require.NoError(t, err, text)
	return s
}

func padding(px float64) *style.Declaration {
	return style.NewDeclaration(style.KeyValue{Key: "padding-top", Value: value.Dim(px, value.PX)})
}

func paddingOf(t *testing.T, d *style.Declaration) float64 {
	v, ok := d.Get("padding-top")
	require.True(t, ok, "padding-top not set in %s", d)
	n, _, _ := v.Unit()
	return n
}

func TestButtonScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.library")
	defer teardown()
	//
	lib := New()
	lib.Insert(sel(t, ".button"), padding(8), "")
	lib.Insert(sel(t, ".button.primary"), padding(4), "")
	assert.Equal(t, 4.0, paddingOf(t, lib.SelectWithCache(sel(t, "div.button.primary"))))
	assert.Equal(t, 8.0, paddingOf(t, lib.SelectWithCache(sel(t, "div.button"))))
	//
	// specificity beats insertion order
	lib = New()
	lib.Insert(sel(t, ".button.primary"), padding(4), "")
	lib.Insert(sel(t, ".button"), padding(8), "")
	assert.Equal(t, 4.0, paddingOf(t, lib.SelectWithCache(sel(t, ".primary.button"))))
}

func TestCacheCoherence(t *testing.T) {
	lib := New()
	lib.Insert(sel(t, ".button"), padding(8), "")
	q := sel(t, "body .button.primary")
	assert.Equal(t, 8.0, paddingOf(t, lib.SelectWithCache(q)))
	assert.Equal(t, 8.0, paddingOf(t, lib.SelectWithCache(q)))
	assert.Equal(t, uint64(1), lib.Stats().Hits)
	assert.Equal(t, 1, lib.Stats().CacheEntries)
	lib.Insert(sel(t, "body .primary"), padding(4), "")
	assert.Equal(t, 0, lib.Stats().CacheEntries, "insert must invalidate the cache")
	assert.Equal(t, 4.0, paddingOf(t, lib.SelectWithCache(q)))
	//
	d := lib.SelectWithCache(q)
	d.Add("padding-top", value.Dim(99, value.PX))
	assert.Equal(t, 4.0, paddingOf(t, lib.SelectWithCache(q)), "cached entries must not be shared")
}

func TestDescendantMatching(t *testing.T) {
	lib := New()
	lib.Insert(sel(t, "div p"), padding(1), "")
	lib.Insert(sel(t, "div.x p:hover"), padding(2), "")
	lib.Insert(sel(t, "#main * p"), padding(3), "")
	cases := map[string][]float64{
		"body div span p":          {1},
		"body p":                   nil,
		"div.y.x p":                {1},
		"div.y.x p:hover":          {2, 1},
		"section#main div.x p":     {3, 1},
		"section#main p":           nil,
		"div#main section p:hover": {3, 1},
	}
	for query, want := range cases {
		rules := lib.Query(sel(t, query))
		var have []float64
		for _, r := range rules {
			have = append(have, paddingOf(t, r.Declaration))
		}
		assert.Equal(t, want, have, query)
	}
}

func TestQueryOrder(t *testing.T) {
	lib := New()
	lib.Insert(sel(t, "p"), padding(1), "")
	lib.Insert(sel(t, ".a"), padding(2), "")
	lib.Insert(sel(t, ".b"), padding(3), "")
	lib.Insert(sel(t, "*"), padding(4), "")
	rules := lib.Query(sel(t, "p.a.b"))
	require.Len(t, rules, 4)
	var order []float64
	for _, r := range rules {
		order = append(order, paddingOf(t, r.Declaration))
	}
	assert.Equal(t, []float64{3, 2, 1, 4}, order)
	assert.Equal(t, 3.0, paddingOf(t, lib.SelectWithCache(sel(t, "p.a.b"))))
}

func TestRemoveNamespace(t *testing.T) {
	lib := New(WithoutCache())
	lib.Insert(sel(t, "p"), padding(1), "ua")
	lib.Insert(sel(t, "p.x"), padding(2), "sheet")
	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, 2.0, paddingOf(t, lib.SelectWithCache(sel(t, "p.x"))))
	assert.Equal(t, 1, lib.RemoveNamespace("sheet"))
	assert.Equal(t, 1, lib.Len())
	assert.Equal(t, 1.0, paddingOf(t, lib.SelectWithCache(sel(t, "p.x"))))
	assert.Equal(t, 0, lib.RemoveNamespace("sheet"))
	assert.Equal(t, 0, lib.Stats().CacheEntries)
}

func TestManyClassesFallBackToCovers(t *testing.T) {
	lib := New()
	lib.Insert(sel(t, ".c3"), padding(5), "")
	var b strings.Builder
	b.WriteString("div")
	for i := 0; i <= selector.MaxVariantParts; i++ {
		b.WriteString(".c" + string(rune('0'+i%10)) + string(rune('a'+i)))
	}
	b.WriteString(".c3")
	assert.Len(t, lib.Query(sel(t, b.String())), 1)
}

func TestDump(t *testing.T) {
	lib := New()
	lib.Insert(sel(t, "div p"), padding(1), "")
	lib.Insert(sel(t, "p"), padding(1), "")
	var out strings.Builder
	require.NoError(t, lib.Dump(&out))
	assert.Contains(t, out.String(), "library (2 rules)")
	assert.Contains(t, out.String(), "div")
	t.Logf("\n%s", out.String())
}
