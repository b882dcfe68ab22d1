package css

// Keyword properties are stored as small enums. Every enum has a table of
// CSS keywords, indexed by enum value; index 0 is "unset".

// Visibility is the enum type for property "visibility".
type Visibility uint8

const (
	VisibilityUnset Visibility = iota
	Visible
	Hidden
	Collapse
)

var visibilityNames = []string{"", "visible", "hidden", "collapse"}

// BoxSizing is the enum type for property "box-sizing".
type BoxSizing uint8

const (
	BoxSizingUnset BoxSizing = iota
	ContentBox
	BorderBox
)

var boxSizingNames = []string{"", "content-box", "border-box"}

// BorderStyle is the enum type for properties "border-*-style".
type BorderStyle uint8

const (
	BorderStyleUnset BorderStyle = iota
	BorderNone
	BorderHidden
	BorderDotted
	BorderDashed
	BorderSolid
	BorderDouble
	BorderGroove
	BorderRidge
	BorderInset
	BorderOutset
)

var borderStyleNames = []string{"", "none", "hidden", "dotted", "dashed", "solid",
	"double", "groove", "ridge", "inset", "outset"}

// FontStyle is the enum type for property "font-style".
type FontStyle uint8

const (
	FontStyleUnset FontStyle = iota
	FontNormal
	FontItalic
	FontOblique
)

var fontStyleNames = []string{"", "normal", "italic", "oblique"}

// TextAlign is the enum type for property "text-align".
type TextAlign uint8

const (
	TextAlignUnset TextAlign = iota
	TextStart
	TextEnd
	TextLeft
	TextRight
	TextCenter
	TextJustify
)

var textAlignNames = []string{"", "start", "end", "left", "right", "center", "justify"}

// WhiteSpace is the enum type for property "white-space".
type WhiteSpace uint8

const (
	WhiteSpaceUnset WhiteSpace = iota
	WhiteSpaceNormal
	WhiteSpacePre
	WhiteSpaceNowrap
	WhiteSpacePreWrap
	WhiteSpacePreLine
)

var whiteSpaceNames = []string{"", "normal", "pre", "nowrap", "pre-wrap", "pre-line"}

// FlexDirection is the enum type for property "flex-direction".
type FlexDirection uint8

const (
	FlexDirectionUnset FlexDirection = iota
	FlexRow
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

var flexDirectionNames = []string{"", "row", "row-reverse", "column", "column-reverse"}

// FlexWrap is the enum type for property "flex-wrap".
type FlexWrap uint8

const (
	FlexWrapUnset FlexWrap = iota
	FlexNowrap
	FlexWrapOn
	FlexWrapReverse
)

var flexWrapNames = []string{"", "nowrap", "wrap", "wrap-reverse"}

// Alignment is the enum type for properties "justify-content", "align-items"
// and "align-content".
type Alignment uint8

const (
	AlignUnset Alignment = iota
	AlignNormal
	AlignStretch
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
	AlignStart
	AlignEnd
)

var alignmentNames = []string{"", "normal", "stretch", "flex-start", "flex-end", "center",
	"baseline", "space-between", "space-around", "space-evenly", "start", "end"}

// PointerEvents is the enum type for property "pointer-events".
type PointerEvents uint8

const (
	PointerEventsUnset PointerEvents = iota
	PointerEventsAuto
	PointerEventsNone
)

var pointerEventsNames = []string{"", "auto", "none"}

func (v Visibility) String() string { return enumName(visibilityNames, v) }
func (v BoxSizing) String() string { return enumName(boxSizingNames, v) }
func (v BorderStyle) String() string { return enumName(borderStyleNames, v) }
func (v FontStyle) String() string { return enumName(fontStyleNames, v) }
func (v TextAlign) String() string { return enumName(textAlignNames, v) }
func (v WhiteSpace) String() string { return enumName(whiteSpaceNames, v) }
func (v FlexDirection) String() string { return enumName(flexDirectionNames, v) }
func (v FlexWrap) String() string { return enumName(flexWrapNames, v) }
func (v Alignment) String() string { return enumName(alignmentNames, v) }
func (v PointerEvents) String() string { return enumName(pointerEventsNames, v) }

func enumName[E ~uint8](names []string, e E) string {
	if int(e) < len(names) {
		return names[e]
	}
	return "?"
}

func enumValue[E ~uint8](names []string, keyword string) (E, bool) {
	for i, name := range names {
		if i > 0 && name == keyword {
			return E(i), true
		}
	}
	return 0, false
}
