package main

import "image/color"

// Color Palette
var (
	ColorBackground    = color.RGBA{0x12, 0x12, 0x14, 0xff} // Main window background
	ColorPanelBg       = color.RGBA{0x22, 0x22, 0x2a, 0xff} // Section background
	ColorPanelBorder   = color.RGBA{0x44, 0x44, 0x50, 0xff} // Section and preview border
	ColorTrack         = color.RGBA{0x18, 0x18, 0x1c, 0xff} // Unfilled slider track
	ColorThumb         = color.RGBA{0xf2, 0xf2, 0xf5, 0xff} // Slider thumb
	ColorBoxBg         = color.RGBA{0x18, 0x18, 0x1c, 0xff} // Numeric and hex box background
	ColorFocus         = color.RGBA{0x66, 0x88, 0xff, 0xff} // Focused row / editing box outline
	ColorButtonBg      = color.RGBA{0x11, 0x11, 0x16, 0xff} // Copy button background
	ColorButtonHover   = color.RGBA{0x33, 0x55, 0xff, 0xff} // Copy button hover
	ColorText          = color.White                        // Standard text
	ColorTextDim       = color.RGBA{0x99, 0x99, 0xa4, 0xff} // Captions and hints
	ColorToastBg       = color.RGBA{0x0c, 0x0c, 0x0e, 0xee} // Toast background
	ColorToastBorder   = color.RGBA{0x66, 0x88, 0xff, 0xff} // Toast accent
	ColorMenuBg        = color.RGBA{0x10, 0x10, 0x12, 0xff} // Context menu background
	ColorMenuBorder    = color.RGBA{0x44, 0x44, 0x50, 0xff} // Context menu border
	ColorMenuHighlight = color.RGBA{0x33, 0x55, 0xff, 0xff} // Context menu hover highlight
	ColorMenuDisabled  = color.RGBA{0x55, 0x55, 0x60, 0xff} // Disabled menu item text
)

// Layout Constants
const (
	Margin        = 16
	TitleHeight   = 40
	PreviewSize   = 168
	ColumnGap     = 24
	RowHeight     = 28
	RowGap        = 6
	LabelWidth    = 24
	ValueBoxW     = 52
	ButtonHeight  = 24
	SectionGap    = 14
	CaptionHeight = 18
	BorderWidth   = 2
	ThumbWidth    = 6
	InnerPadding  = 6
	PanelPadding  = 4

	SwatchSize = 26
	SwatchGap  = 6

	ToastWidth  = 300
	ToastHeight = 44
	ToastGap    = 8

	MenuItemH = 28
	MenuWidth = 220
)
