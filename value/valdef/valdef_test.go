package valdef

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *Registry {
	r := NewRegistry()
	require.NoError(t, r.RegisterType("length", value.ParseLength))
	require.NoError(t, r.RegisterType("percentage", value.ParsePercentage))
	require.NoError(t, r.RegisterType("color", value.ParseColor))
	require.NoError(t, r.RegisterType("number", value.ParseNumber))
	require.NoError(t, r.RegisterType("family-name", value.ParseFamilyName))
	require.NoError(t, r.RegisterAlias("line-width", "<length> | thin | medium | thick"))
	require.NoError(t, r.RegisterAlias("line-style",
		"none | hidden | dotted | dashed | solid | double | groove | ridge | inset | outset"))
	return r
}

func TestTokenize(t *testing.T) {
	for text, want := range map[string][]string{
		"rgba(1, 2, 3, 0.5) solid":   {"rgba(1, 2, 3, 0.5)", "solid"},
		`"Times New Roman", serif`:   {`"Times New Roman"`, ",", "serif"},
		"1px/2px":                    {"1px", "/", "2px"},
		"  solid   #eee\t1px ":       {"solid", "#eee", "1px"},
		`url("a b.png") calc((1 + 2))`: {`url("a b.png")`, "calc((1 + 2))"},
		"":                           nil,
	} {
		var have []string
		for _, tok := range tokenize(text) {
			have = append(have, tok.text)
			assert.Equal(t, tok.text, text[tok.start:tok.end])
		}
		assert.Equal(t, want, have, "tokens of %q", text)
	}
}

func TestBorderScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.valdef")
	defer teardown()
	//
	r := testRegistry(t)
	g, err := r.Compile("<line-width> || <line-style> || <color>")
	require.NoError(t, err)
	for _, input := range []string{"solid #eee 1px", "1px solid #eee", "#eee 1px solid"} {
		v, consumed, ok := g.Match(input)
		require.True(t, ok, "expected %q to match", input)
		assert.Equal(t, len(input), consumed)
		require.Equal(t, 3, v.Len())
		assert.Equal(t, value.UnitT, v.At(0).Type())
		assert.Equal(t, value.Keyword, v.At(1).Type())
		assert.Equal(t, value.ColorT, v.At(2).Type())
		assert.Equal(t, "1px solid #eeeeee", v.String())
	}
	v, ok := g.MatchAll("dashed")
	require.True(t, ok)
	assert.True(t, v.At(0).IsAbsent())
	assert.True(t, v.At(1).IsKeyword("dashed"))
	assert.True(t, v.At(2).IsAbsent())
}

func TestRoundTripPerKind(t *testing.T) {
	r := testRegistry(t)
	cases := []struct {
		kind    Kind
		grammar string
		input   string
		want    string
	}{
		{KindKeyword, "auto", "AUTO", "auto"},
		{KindType, "<color>", "#eee", "#eeeeee"},
		{KindAlias, "<line-style>", "dashed", "dashed"},
		{KindJuxtapose, "<length> <color>", "1px red", "1px #ff0000"},
		{KindJuxtapose, "<length> / <length>", "1px/2px", "1px / 2px"},
		{KindJuxtapose, "<length> <length>? <color>", "1px blue", "1px #0000ff"},
		{KindOneOf, "<length> | auto", "auto", "auto"},
		{KindAnyOf, "<length> || <color>", "red", "#ff0000"},
		{KindAllOf, "<length> && <color>", "red 2px", "2px #ff0000"},
		{KindGroup, "[ <length> | auto ]", "3pt", "3pt"},
		{KindType, "<length>{1,4}", "1px 2px 3px", "1px 2px 3px"},
		{KindType, "<family-name>#", `Arial, "Times New Roman"`, `"Arial", "Times New Roman"`},
		{KindGroup, "[ <length> / <length> ]#", "1px / 2px, 3px / 4px", "1px / 2px, 3px / 4px"},
	}
	for _, c := range cases {
		g, err := r.Compile(c.grammar)
		require.NoError(t, err, c.grammar)
		assert.Equal(t, c.kind, g.Kind, c.grammar)
		v, ok := g.MatchAll(c.input)
		if !ok {
			t.Errorf("grammar %q did not accept %q", c.grammar, c.input)
			continue
		}
		text, ok := g.Format(v)
		require.True(t, ok, "%q cannot format %v", c.grammar, v)
		assert.Equal(t, c.want, text, c.grammar)
		w, ok := g.MatchAll(text)
		if !ok {
			t.Errorf("formatted text %q rejected by %q", text, c.grammar)
			continue
		}
		assert.True(t, v.Equal(w), "%q: %v != %v", c.grammar, v, w)
	}
}

func TestFormatRejectsForeignValues(t *testing.T) {
	r := testRegistry(t)
	g := r.MustCompile("<length> / <length>")
	v, ok := r.MustCompile("<color>").MatchAll("red")
	require.True(t, ok)
	_, ok = g.Format(v)
	assert.False(t, ok)
	_, ok = r.MustCompile("auto").Format(v)
	assert.False(t, ok)
}

func TestGrammarString(t *testing.T) {
	r := testRegistry(t)
	for _, grammar := range []string{
		"[ <length> | auto ]{1,4}",
		"<family-name>#",
		"<length>#{2,3}",
		"a || b && c",
		"a? b* c+ d{2} e{2,}",
		"none | [ <length> <length> <color>? ]",
		"<length> / <length>",
	} {
		g, err := r.Compile(grammar)
		require.NoError(t, err, grammar)
		assert.Equal(t, grammar, g.String())
		again, err := r.Compile(g.String())
		require.NoError(t, err)
		assert.Equal(t, g.String(), again.String())
	}
}

func TestPrecedence(t *testing.T) {
	r := testRegistry(t)
	g := r.MustCompile("a b | c && d || e")
	require.Equal(t, KindOneOf, g.Kind)
	assert.Equal(t, KindJuxtapose, g.Children[0].Kind)
	assert.Equal(t, KindAnyOf, g.Children[1].Kind)
	assert.Equal(t, KindAllOf, g.Children[1].Children[0].Kind)
}

func TestLongestAlternativeWins(t *testing.T) {
	r := testRegistry(t)
	g := r.MustCompile("<length> | <length> <length>")
	v, consumed, ok := g.Match("1px 2px")
	require.True(t, ok)
	assert.Equal(t, 7, consumed)
	assert.Equal(t, 2, v.Len())
	//
	g = r.MustCompile("<number> | <number>")
	v, _, ok = g.Match("1")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestRepetition(t *testing.T) {
	r := testRegistry(t)
	g := r.MustCompile("<length>{2,3}")
	_, _, ok := g.Match("1px")
	assert.False(t, ok, "too few repetitions")
	v, consumed, ok := g.Match("1px 2px 3px 4px")
	require.True(t, ok)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 11, consumed)
	_, ok = g.MatchAll("1px 2px 3px 4px")
	assert.False(t, ok)
	//
	g = r.MustCompile("<length>?")
	v, ok = g.MatchAll("")
	require.True(t, ok)
	assert.True(t, v.At(0).IsAbsent())
	//
	g = r.MustCompile("[ <length>? ]*")
	_, _, ok = g.Match("red")
	assert.True(t, ok, "zero-width repetition must terminate")
}

func TestAllOfRequiresEveryChild(t *testing.T) {
	r := testRegistry(t)
	g := r.MustCompile("<length> && <color>")
	_, _, ok := g.Match("1px")
	assert.False(t, ok)
	g = r.MustCompile("<length> && <color>?")
	v, ok := g.MatchAll("1px")
	require.True(t, ok)
	assert.True(t, v.At(1).IsAbsent())
}

func TestKeywordInterning(t *testing.T) {
	r := NewRegistry()
	g := r.MustCompile("Auto | none")
	id, ok := r.LookupKeyword("AUTO")
	require.True(t, ok)
	assert.Equal(t, "auto", r.KeywordName(id))
	assert.Equal(t, id, g.Children[0].Keyword)
	assert.Equal(t, id, r.Keyword("auto"))
	assert.True(t, r.KeywordValue("none").IsKeyword("none"))
	assert.Equal(t, "", r.KeywordName(999))
}

func TestCompileErrors(t *testing.T) {
	r := testRegistry(t)
	for grammar, pos := range map[string]int{
		"<unknown>":     0,
		"[ a":           3,
		"a &b":          2,
		"a |":           3,
		"<length>{2,1}": 8,
		"a ]":           2,
		"a?+":           2,
		"":              0,
		"a <":           2,
		"a $":           2,
	} {
		_, err := r.Compile(grammar)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("expected syntax error for %q, have %v", grammar, err)
			continue
		}
		assert.Equal(t, pos, serr.Pos, "position of error in %q: %s", grammar, serr.Msg)
	}
	err := r.RegisterAlias("line-style", "a | b")
	assert.True(t, errors.Is(err, ErrDuplicate))
	err = r.RegisterType("color", value.ParseColor)
	assert.True(t, errors.Is(err, ErrDuplicate))
}
