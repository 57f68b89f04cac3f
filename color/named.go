// SPDX-License-Identifier: MIT

package color

import (
	"sort"
	"strings"
)

// CSS named colors. Each factory returns a fresh linear-space value built
// from the sRGB bytes of the CSS Color Module Level 4 table.

// AliceBlue returns CSS aliceblue (#F0F8FF).
func AliceBlue() Color { return FromGammaBytes(0xF0, 0xF8, 0xFF) }

// AntiqueWhite returns CSS antiquewhite (#FAEBD7).
func AntiqueWhite() Color { return FromGammaBytes(0xFA, 0xEB, 0xD7) }

// Aqua returns CSS aqua (#00FFFF).
func Aqua() Color { return FromGammaBytes(0x00, 0xFF, 0xFF) }

// Aquamarine returns CSS aquamarine (#7FFFD4).
func Aquamarine() Color { return FromGammaBytes(0x7F, 0xFF, 0xD4) }

// Azure returns CSS azure (#F0FFFF).
func Azure() Color { return FromGammaBytes(0xF0, 0xFF, 0xFF) }

// Beige returns CSS beige (#F5F5DC).
func Beige() Color { return FromGammaBytes(0xF5, 0xF5, 0xDC) }

// Bisque returns CSS bisque (#FFE4C4).
func Bisque() Color { return FromGammaBytes(0xFF, 0xE4, 0xC4) }

// Black returns CSS black (#000000).
func Black() Color { return FromGammaBytes(0x00, 0x00, 0x00) }

// BlanchedAlmond returns CSS blanchedalmond (#FFEBCD).
func BlanchedAlmond() Color { return FromGammaBytes(0xFF, 0xEB, 0xCD) }

// Blue returns CSS blue (#0000FF).
func Blue() Color { return FromGammaBytes(0x00, 0x00, 0xFF) }

// BlueViolet returns CSS blueviolet (#8A2BE2).
func BlueViolet() Color { return FromGammaBytes(0x8A, 0x2B, 0xE2) }

// Brown returns CSS brown (#A52A2A).
func Brown() Color { return FromGammaBytes(0xA5, 0x2A, 0x2A) }

// BurlyWood returns CSS burlywood (#DEB887).
func BurlyWood() Color { return FromGammaBytes(0xDE, 0xB8, 0x87) }

// CadetBlue returns CSS cadetblue (#5F9EA0).
func CadetBlue() Color { return FromGammaBytes(0x5F, 0x9E, 0xA0) }

// Chartreuse returns CSS chartreuse (#7FFF00).
func Chartreuse() Color { return FromGammaBytes(0x7F, 0xFF, 0x00) }

// Chocolate returns CSS chocolate (#D2691E).
func Chocolate() Color { return FromGammaBytes(0xD2, 0x69, 0x1E) }

// Coral returns CSS coral (#FF7F50).
func Coral() Color { return FromGammaBytes(0xFF, 0x7F, 0x50) }

// CornflowerBlue returns CSS cornflowerblue (#6495ED).
func CornflowerBlue() Color { return FromGammaBytes(0x64, 0x95, 0xED) }

// Cornsilk returns CSS cornsilk (#FFF8DC).
func Cornsilk() Color { return FromGammaBytes(0xFF, 0xF8, 0xDC) }

// Crimson returns CSS crimson (#DC143C).
func Crimson() Color { return FromGammaBytes(0xDC, 0x14, 0x3C) }

// Cyan returns CSS cyan (#00FFFF).
func Cyan() Color { return FromGammaBytes(0x00, 0xFF, 0xFF) }

// DarkBlue returns CSS darkblue (#00008B).
func DarkBlue() Color { return FromGammaBytes(0x00, 0x00, 0x8B) }

// DarkCyan returns CSS darkcyan (#008B8B).
func DarkCyan() Color { return FromGammaBytes(0x00, 0x8B, 0x8B) }

// DarkGoldenRod returns CSS darkgoldenrod (#B8860B).
func DarkGoldenRod() Color { return FromGammaBytes(0xB8, 0x86, 0x0B) }

// DarkGray returns CSS darkgray (#A9A9A9).
func DarkGray() Color { return FromGammaBytes(0xA9, 0xA9, 0xA9) }

// DarkGrey returns CSS darkgrey (#A9A9A9).
func DarkGrey() Color { return FromGammaBytes(0xA9, 0xA9, 0xA9) }

// DarkGreen returns CSS darkgreen (#006400).
func DarkGreen() Color { return FromGammaBytes(0x00, 0x64, 0x00) }

// DarkKhaki returns CSS darkkhaki (#BDB76B).
func DarkKhaki() Color { return FromGammaBytes(0xBD, 0xB7, 0x6B) }

// DarkMagenta returns CSS darkmagenta (#8B008B).
func DarkMagenta() Color { return FromGammaBytes(0x8B, 0x00, 0x8B) }

// DarkOliveGreen returns CSS darkolivegreen (#556B2F).
func DarkOliveGreen() Color { return FromGammaBytes(0x55, 0x6B, 0x2F) }

// DarkOrange returns CSS darkorange (#FF8C00).
func DarkOrange() Color { return FromGammaBytes(0xFF, 0x8C, 0x00) }

// DarkOrchid returns CSS darkorchid (#9932CC).
func DarkOrchid() Color { return FromGammaBytes(0x99, 0x32, 0xCC) }

// DarkRed returns CSS darkred (#8B0000).
func DarkRed() Color { return FromGammaBytes(0x8B, 0x00, 0x00) }

// DarkSalmon returns CSS darksalmon (#E9967A).
func DarkSalmon() Color { return FromGammaBytes(0xE9, 0x96, 0x7A) }

// DarkSeaGreen returns CSS darkseagreen (#8FBC8F).
func DarkSeaGreen() Color { return FromGammaBytes(0x8F, 0xBC, 0x8F) }

// DarkSlateBlue returns CSS darkslateblue (#483D8B).
func DarkSlateBlue() Color { return FromGammaBytes(0x48, 0x3D, 0x8B) }

// DarkSlateGray returns CSS darkslategray (#2F4F4F).
func DarkSlateGray() Color { return FromGammaBytes(0x2F, 0x4F, 0x4F) }

// DarkSlateGrey returns CSS darkslategrey (#2F4F4F).
func DarkSlateGrey() Color { return FromGammaBytes(0x2F, 0x4F, 0x4F) }

// DarkTurquoise returns CSS darkturquoise (#00CED1).
func DarkTurquoise() Color { return FromGammaBytes(0x00, 0xCE, 0xD1) }

// DarkViolet returns CSS darkviolet (#9400D3).
func DarkViolet() Color { return FromGammaBytes(0x94, 0x00, 0xD3) }

// DeepPink returns CSS deeppink (#FF1493).
func DeepPink() Color { return FromGammaBytes(0xFF, 0x14, 0x93) }

// DeepSkyBlue returns CSS deepskyblue (#00BFFF).
func DeepSkyBlue() Color { return FromGammaBytes(0x00, 0xBF, 0xFF) }

// DimGray returns CSS dimgray (#696969).
func DimGray() Color { return FromGammaBytes(0x69, 0x69, 0x69) }

// DimGrey returns CSS dimgrey (#696969).
func DimGrey() Color { return FromGammaBytes(0x69, 0x69, 0x69) }

// DodgerBlue returns CSS dodgerblue (#1E90FF).
func DodgerBlue() Color { return FromGammaBytes(0x1E, 0x90, 0xFF) }

// FireBrick returns CSS firebrick (#B22222).
func FireBrick() Color { return FromGammaBytes(0xB2, 0x22, 0x22) }

// FloralWhite returns CSS floralwhite (#FFFAF0).
func FloralWhite() Color { return FromGammaBytes(0xFF, 0xFA, 0xF0) }

// ForestGreen returns CSS forestgreen (#228B22).
func ForestGreen() Color { return FromGammaBytes(0x22, 0x8B, 0x22) }

// Fuchsia returns CSS fuchsia (#FF00FF).
func Fuchsia() Color { return FromGammaBytes(0xFF, 0x00, 0xFF) }

// Gainsboro returns CSS gainsboro (#DCDCDC).
func Gainsboro() Color { return FromGammaBytes(0xDC, 0xDC, 0xDC) }

// GhostWhite returns CSS ghostwhite (#F8F8FF).
func GhostWhite() Color { return FromGammaBytes(0xF8, 0xF8, 0xFF) }

// Gold returns CSS gold (#FFD700).
func Gold() Color { return FromGammaBytes(0xFF, 0xD7, 0x00) }

// GoldenRod returns CSS goldenrod (#DAA520).
func GoldenRod() Color { return FromGammaBytes(0xDA, 0xA5, 0x20) }

// Gray returns CSS gray (#808080).
func Gray() Color { return FromGammaBytes(0x80, 0x80, 0x80) }

// Grey returns CSS grey (#808080).
func Grey() Color { return FromGammaBytes(0x80, 0x80, 0x80) }

// Green returns CSS green (#008000).
func Green() Color { return FromGammaBytes(0x00, 0x80, 0x00) }

// GreenYellow returns CSS greenyellow (#ADFF2F).
func GreenYellow() Color { return FromGammaBytes(0xAD, 0xFF, 0x2F) }

// HoneyDew returns CSS honeydew (#F0FFF0).
func HoneyDew() Color { return FromGammaBytes(0xF0, 0xFF, 0xF0) }

// HotPink returns CSS hotpink (#FF69B4).
func HotPink() Color { return FromGammaBytes(0xFF, 0x69, 0xB4) }

// IndianRed returns CSS indianred (#CD5C5C).
func IndianRed() Color { return FromGammaBytes(0xCD, 0x5C, 0x5C) }

// Indigo returns CSS indigo (#4B0082).
func Indigo() Color { return FromGammaBytes(0x4B, 0x00, 0x82) }

// Ivory returns CSS ivory (#FFFFF0).
func Ivory() Color { return FromGammaBytes(0xFF, 0xFF, 0xF0) }

// Khaki returns CSS khaki (#F0E68C).
func Khaki() Color { return FromGammaBytes(0xF0, 0xE6, 0x8C) }

// Lavender returns CSS lavender (#E6E6FA).
func Lavender() Color { return FromGammaBytes(0xE6, 0xE6, 0xFA) }

// LavenderBlush returns CSS lavenderblush (#FFF0F5).
func LavenderBlush() Color { return FromGammaBytes(0xFF, 0xF0, 0xF5) }

// LawnGreen returns CSS lawngreen (#7CFC00).
func LawnGreen() Color { return FromGammaBytes(0x7C, 0xFC, 0x00) }

// LemonChiffon returns CSS lemonchiffon (#FFFACD).
func LemonChiffon() Color { return FromGammaBytes(0xFF, 0xFA, 0xCD) }

// LightBlue returns CSS lightblue (#ADD8E6).
func LightBlue() Color { return FromGammaBytes(0xAD, 0xD8, 0xE6) }

// LightCoral returns CSS lightcoral (#F08080).
func LightCoral() Color { return FromGammaBytes(0xF0, 0x80, 0x80) }

// LightCyan returns CSS lightcyan (#E0FFFF).
func LightCyan() Color { return FromGammaBytes(0xE0, 0xFF, 0xFF) }

// LightGoldenRodYellow returns CSS lightgoldenrodyellow (#FAFAD2).
func LightGoldenRodYellow() Color { return FromGammaBytes(0xFA, 0xFA, 0xD2) }

// LightGray returns CSS lightgray (#D3D3D3).
func LightGray() Color { return FromGammaBytes(0xD3, 0xD3, 0xD3) }

// LightGrey returns CSS lightgrey (#D3D3D3).
func LightGrey() Color { return FromGammaBytes(0xD3, 0xD3, 0xD3) }

// LightGreen returns CSS lightgreen (#90EE90).
func LightGreen() Color { return FromGammaBytes(0x90, 0xEE, 0x90) }

// LightPink returns CSS lightpink (#FFB6C1).
func LightPink() Color { return FromGammaBytes(0xFF, 0xB6, 0xC1) }

// LightSalmon returns CSS lightsalmon (#FFA07A).
func LightSalmon() Color { return FromGammaBytes(0xFF, 0xA0, 0x7A) }

// LightSeaGreen returns CSS lightseagreen (#20B2AA).
func LightSeaGreen() Color { return FromGammaBytes(0x20, 0xB2, 0xAA) }

// LightSkyBlue returns CSS lightskyblue (#87CEFA).
func LightSkyBlue() Color { return FromGammaBytes(0x87, 0xCE, 0xFA) }

// LightSlateGray returns CSS lightslategray (#778899).
func LightSlateGray() Color { return FromGammaBytes(0x77, 0x88, 0x99) }

// LightSlateGrey returns CSS lightslategrey (#778899).
func LightSlateGrey() Color { return FromGammaBytes(0x77, 0x88, 0x99) }

// LightSteelBlue returns CSS lightsteelblue (#B0C4DE).
func LightSteelBlue() Color { return FromGammaBytes(0xB0, 0xC4, 0xDE) }

// LightYellow returns CSS lightyellow (#FFFFE0).
func LightYellow() Color { return FromGammaBytes(0xFF, 0xFF, 0xE0) }

// Lime returns CSS lime (#00FF00).
func Lime() Color { return FromGammaBytes(0x00, 0xFF, 0x00) }

// LimeGreen returns CSS limegreen (#32CD32).
func LimeGreen() Color { return FromGammaBytes(0x32, 0xCD, 0x32) }

// Linen returns CSS linen (#FAF0E6).
func Linen() Color { return FromGammaBytes(0xFA, 0xF0, 0xE6) }

// Magenta returns CSS magenta (#FF00FF).
func Magenta() Color { return FromGammaBytes(0xFF, 0x00, 0xFF) }

// Maroon returns CSS maroon (#800000).
func Maroon() Color { return FromGammaBytes(0x80, 0x00, 0x00) }

// MediumAquaMarine returns CSS mediumaquamarine (#66CDAA).
func MediumAquaMarine() Color { return FromGammaBytes(0x66, 0xCD, 0xAA) }

// MediumBlue returns CSS mediumblue (#0000CD).
func MediumBlue() Color { return FromGammaBytes(0x00, 0x00, 0xCD) }

// MediumOrchid returns CSS mediumorchid (#BA55D3).
func MediumOrchid() Color { return FromGammaBytes(0xBA, 0x55, 0xD3) }

// MediumPurple returns CSS mediumpurple (#9370DB).
func MediumPurple() Color { return FromGammaBytes(0x93, 0x70, 0xDB) }

// MediumSeaGreen returns CSS mediumseagreen (#3CB371).
func MediumSeaGreen() Color { return FromGammaBytes(0x3C, 0xB3, 0x71) }

// MediumSlateBlue returns CSS mediumslateblue (#7B68EE).
func MediumSlateBlue() Color { return FromGammaBytes(0x7B, 0x68, 0xEE) }

// MediumSpringGreen returns CSS mediumspringgreen (#00FA9A).
func MediumSpringGreen() Color { return FromGammaBytes(0x00, 0xFA, 0x9A) }

// MediumTurquoise returns CSS mediumturquoise (#48D1CC).
func MediumTurquoise() Color { return FromGammaBytes(0x48, 0xD1, 0xCC) }

// MediumVioletRed returns CSS mediumvioletred (#C71585).
func MediumVioletRed() Color { return FromGammaBytes(0xC7, 0x15, 0x85) }

// MidnightBlue returns CSS midnightblue (#191970).
func MidnightBlue() Color { return FromGammaBytes(0x19, 0x19, 0x70) }

// MintCream returns CSS mintcream (#F5FFFA).
func MintCream() Color { return FromGammaBytes(0xF5, 0xFF, 0xFA) }

// MistyRose returns CSS mistyrose (#FFE4E1).
func MistyRose() Color { return FromGammaBytes(0xFF, 0xE4, 0xE1) }

// Moccasin returns CSS moccasin (#FFE4B5).
func Moccasin() Color { return FromGammaBytes(0xFF, 0xE4, 0xB5) }

// NavajoWhite returns CSS navajowhite (#FFDEAD).
func NavajoWhite() Color { return FromGammaBytes(0xFF, 0xDE, 0xAD) }

// Navy returns CSS navy (#000080).
func Navy() Color { return FromGammaBytes(0x00, 0x00, 0x80) }

// OldLace returns CSS oldlace (#FDF5E6).
func OldLace() Color { return FromGammaBytes(0xFD, 0xF5, 0xE6) }

// Olive returns CSS olive (#808000).
func Olive() Color { return FromGammaBytes(0x80, 0x80, 0x00) }

// OliveDrab returns CSS olivedrab (#6B8E23).
func OliveDrab() Color { return FromGammaBytes(0x6B, 0x8E, 0x23) }

// Orange returns CSS orange (#FFA500).
func Orange() Color { return FromGammaBytes(0xFF, 0xA5, 0x00) }

// OrangeRed returns CSS orangered (#FF4500).
func OrangeRed() Color { return FromGammaBytes(0xFF, 0x45, 0x00) }

// Orchid returns CSS orchid (#DA70D6).
func Orchid() Color { return FromGammaBytes(0xDA, 0x70, 0xD6) }

// PaleGoldenRod returns CSS palegoldenrod (#EEE8AA).
func PaleGoldenRod() Color { return FromGammaBytes(0xEE, 0xE8, 0xAA) }

// PaleGreen returns CSS palegreen (#98FB98).
func PaleGreen() Color { return FromGammaBytes(0x98, 0xFB, 0x98) }

// PaleTurquoise returns CSS paleturquoise (#AFEEEE).
func PaleTurquoise() Color { return FromGammaBytes(0xAF, 0xEE, 0xEE) }

// PaleVioletRed returns CSS palevioletred (#DB7093).
func PaleVioletRed() Color { return FromGammaBytes(0xDB, 0x70, 0x93) }

// PapayaWhip returns CSS papayawhip (#FFEFD5).
func PapayaWhip() Color { return FromGammaBytes(0xFF, 0xEF, 0xD5) }

// PeachPuff returns CSS peachpuff (#FFDAB9).
func PeachPuff() Color { return FromGammaBytes(0xFF, 0xDA, 0xB9) }

// Peru returns CSS peru (#CD853F).
func Peru() Color { return FromGammaBytes(0xCD, 0x85, 0x3F) }

// Pink returns CSS pink (#FFC0CB).
func Pink() Color { return FromGammaBytes(0xFF, 0xC0, 0xCB) }

// Plum returns CSS plum (#DDA0DD).
func Plum() Color { return FromGammaBytes(0xDD, 0xA0, 0xDD) }

// PowderBlue returns CSS powderblue (#B0E0E6).
func PowderBlue() Color { return FromGammaBytes(0xB0, 0xE0, 0xE6) }

// Purple returns CSS purple (#800080).
func Purple() Color { return FromGammaBytes(0x80, 0x00, 0x80) }

// RebeccaPurple returns CSS rebeccapurple (#663399).
func RebeccaPurple() Color { return FromGammaBytes(0x66, 0x33, 0x99) }

// Red returns CSS red (#FF0000).
func Red() Color { return FromGammaBytes(0xFF, 0x00, 0x00) }

// RosyBrown returns CSS rosybrown (#BC8F8F).
func RosyBrown() Color { return FromGammaBytes(0xBC, 0x8F, 0x8F) }

// RoyalBlue returns CSS royalblue (#4169E1).
func RoyalBlue() Color { return FromGammaBytes(0x41, 0x69, 0xE1) }

// SaddleBrown returns CSS saddlebrown (#8B4513).
func SaddleBrown() Color { return FromGammaBytes(0x8B, 0x45, 0x13) }

// Salmon returns CSS salmon (#FA8072).
func Salmon() Color { return FromGammaBytes(0xFA, 0x80, 0x72) }

// SandyBrown returns CSS sandybrown (#F4A460).
func SandyBrown() Color { return FromGammaBytes(0xF4, 0xA4, 0x60) }

// SeaGreen returns CSS seagreen (#2E8B57).
func SeaGreen() Color { return FromGammaBytes(0x2E, 0x8B, 0x57) }

// SeaShell returns CSS seashell (#FFF5EE).
func SeaShell() Color { return FromGammaBytes(0xFF, 0xF5, 0xEE) }

// Sienna returns CSS sienna (#A0522D).
func Sienna() Color { return FromGammaBytes(0xA0, 0x52, 0x2D) }

// Silver returns CSS silver (#C0C0C0).
func Silver() Color { return FromGammaBytes(0xC0, 0xC0, 0xC0) }

// SkyBlue returns CSS skyblue (#87CEEB).
func SkyBlue() Color { return FromGammaBytes(0x87, 0xCE, 0xEB) }

// SlateBlue returns CSS slateblue (#6A5ACD).
func SlateBlue() Color { return FromGammaBytes(0x6A, 0x5A, 0xCD) }

// SlateGray returns CSS slategray (#708090).
func SlateGray() Color { return FromGammaBytes(0x70, 0x80, 0x90) }

// SlateGrey returns CSS slategrey (#708090).
func SlateGrey() Color { return FromGammaBytes(0x70, 0x80, 0x90) }

// Snow returns CSS snow (#FFFAFA).
func Snow() Color { return FromGammaBytes(0xFF, 0xFA, 0xFA) }

// SpringGreen returns CSS springgreen (#00FF7F).
func SpringGreen() Color { return FromGammaBytes(0x00, 0xFF, 0x7F) }

// SteelBlue returns CSS steelblue (#4682B4).
func SteelBlue() Color { return FromGammaBytes(0x46, 0x82, 0xB4) }

// Tan returns CSS tan (#D2B48C).
func Tan() Color { return FromGammaBytes(0xD2, 0xB4, 0x8C) }

// Teal returns CSS teal (#008080).
func Teal() Color { return FromGammaBytes(0x00, 0x80, 0x80) }

// Thistle returns CSS thistle (#D8BFD8).
func Thistle() Color { return FromGammaBytes(0xD8, 0xBF, 0xD8) }

// Tomato returns CSS tomato (#FF6347).
func Tomato() Color { return FromGammaBytes(0xFF, 0x63, 0x47) }

// Turquoise returns CSS turquoise (#40E0D0).
func Turquoise() Color { return FromGammaBytes(0x40, 0xE0, 0xD0) }

// Violet returns CSS violet (#EE82EE).
func Violet() Color { return FromGammaBytes(0xEE, 0x82, 0xEE) }

// Wheat returns CSS wheat (#F5DEB3).
func Wheat() Color { return FromGammaBytes(0xF5, 0xDE, 0xB3) }

// White returns CSS white (#FFFFFF).
func White() Color { return FromGammaBytes(0xFF, 0xFF, 0xFF) }

// WhiteSmoke returns CSS whitesmoke (#F5F5F5).
func WhiteSmoke() Color { return FromGammaBytes(0xF5, 0xF5, 0xF5) }

// Yellow returns CSS yellow (#FFFF00).
func Yellow() Color { return FromGammaBytes(0xFF, 0xFF, 0x00) }

// YellowGreen returns CSS yellowgreen (#9ACD32).
func YellowGreen() Color { return FromGammaBytes(0x9A, 0xCD, 0x32) }

// namedTable lists every CSS name in lower case with its factory.
var namedTable = []struct {
	name string
	fn   func() Color
}{
	{"aliceblue", AliceBlue},
	{"antiquewhite", AntiqueWhite},
	{"aqua", Aqua},
	{"aquamarine", Aquamarine},
	{"azure", Azure},
	{"beige", Beige},
	{"bisque", Bisque},
	{"black", Black},
	{"blanchedalmond", BlanchedAlmond},
	{"blue", Blue},
	{"blueviolet", BlueViolet},
	{"brown", Brown},
	{"burlywood", BurlyWood},
	{"cadetblue", CadetBlue},
	{"chartreuse", Chartreuse},
	{"chocolate", Chocolate},
	{"coral", Coral},
	{"cornflowerblue", CornflowerBlue},
	{"cornsilk", Cornsilk},
	{"crimson", Crimson},
	{"cyan", Cyan},
	{"darkblue", DarkBlue},
	{"darkcyan", DarkCyan},
	{"darkgoldenrod", DarkGoldenRod},
	{"darkgray", DarkGray},
	{"darkgrey", DarkGrey},
	{"darkgreen", DarkGreen},
	{"darkkhaki", DarkKhaki},
	{"darkmagenta", DarkMagenta},
	{"darkolivegreen", DarkOliveGreen},
	{"darkorange", DarkOrange},
	{"darkorchid", DarkOrchid},
	{"darkred", DarkRed},
	{"darksalmon", DarkSalmon},
	{"darkseagreen", DarkSeaGreen},
	{"darkslateblue", DarkSlateBlue},
	{"darkslategray", DarkSlateGray},
	{"darkslategrey", DarkSlateGrey},
	{"darkturquoise", DarkTurquoise},
	{"darkviolet", DarkViolet},
	{"deeppink", DeepPink},
	{"deepskyblue", DeepSkyBlue},
	{"dimgray", DimGray},
	{"dimgrey", DimGrey},
	{"dodgerblue", DodgerBlue},
	{"firebrick", FireBrick},
	{"floralwhite", FloralWhite},
	{"forestgreen", ForestGreen},
	{"fuchsia", Fuchsia},
	{"gainsboro", Gainsboro},
	{"ghostwhite", GhostWhite},
	{"gold", Gold},
	{"goldenrod", GoldenRod},
	{"gray", Gray},
	{"grey", Grey},
	{"green", Green},
	{"greenyellow", GreenYellow},
	{"honeydew", HoneyDew},
	{"hotpink", HotPink},
	{"indianred", IndianRed},
	{"indigo", Indigo},
	{"ivory", Ivory},
	{"khaki", Khaki},
	{"lavender", Lavender},
	{"lavenderblush", LavenderBlush},
	{"lawngreen", LawnGreen},
	{"lemonchiffon", LemonChiffon},
	{"lightblue", LightBlue},
	{"lightcoral", LightCoral},
	{"lightcyan", LightCyan},
	{"lightgoldenrodyellow", LightGoldenRodYellow},
	{"lightgray", LightGray},
	{"lightgrey", LightGrey},
	{"lightgreen", LightGreen},
	{"lightpink", LightPink},
	{"lightsalmon", LightSalmon},
	{"lightseagreen", LightSeaGreen},
	{"lightskyblue", LightSkyBlue},
	{"lightslategray", LightSlateGray},
	{"lightslategrey", LightSlateGrey},
	{"lightsteelblue", LightSteelBlue},
	{"lightyellow", LightYellow},
	{"lime", Lime},
	{"limegreen", LimeGreen},
	{"linen", Linen},
	{"magenta", Magenta},
	{"maroon", Maroon},
	{"mediumaquamarine", MediumAquaMarine},
	{"mediumblue", MediumBlue},
	{"mediumorchid", MediumOrchid},
	{"mediumpurple", MediumPurple},
	{"mediumseagreen", MediumSeaGreen},
	{"mediumslateblue", MediumSlateBlue},
	{"mediumspringgreen", MediumSpringGreen},
	{"mediumturquoise", MediumTurquoise},
	{"mediumvioletred", MediumVioletRed},
	{"midnightblue", MidnightBlue},
	{"mintcream", MintCream},
	{"mistyrose", MistyRose},
	{"moccasin", Moccasin},
	{"navajowhite", NavajoWhite},
	{"navy", Navy},
	{"oldlace", OldLace},
	{"olive", Olive},
	{"olivedrab", OliveDrab},
	{"orange", Orange},
	{"orangered", OrangeRed},
	{"orchid", Orchid},
	{"palegoldenrod", PaleGoldenRod},
	{"palegreen", PaleGreen},
	{"paleturquoise", PaleTurquoise},
	{"palevioletred", PaleVioletRed},
	{"papayawhip", PapayaWhip},
	{"peachpuff", PeachPuff},
	{"peru", Peru},
	{"pink", Pink},
	{"plum", Plum},
	{"powderblue", PowderBlue},
	{"purple", Purple},
	{"rebeccapurple", RebeccaPurple},
	{"red", Red},
	{"rosybrown", RosyBrown},
	{"royalblue", RoyalBlue},
	{"saddlebrown", SaddleBrown},
	{"salmon", Salmon},
	{"sandybrown", SandyBrown},
	{"seagreen", SeaGreen},
	{"seashell", SeaShell},
	{"sienna", Sienna},
	{"silver", Silver},
	{"skyblue", SkyBlue},
	{"slateblue", SlateBlue},
	{"slategray", SlateGray},
	{"slategrey", SlateGrey},
	{"snow", Snow},
	{"springgreen", SpringGreen},
	{"steelblue", SteelBlue},
	{"tan", Tan},
	{"teal", Teal},
	{"thistle", Thistle},
	{"tomato", Tomato},
	{"turquoise", Turquoise},
	{"violet", Violet},
	{"wheat", Wheat},
	{"white", White},
	{"whitesmoke", WhiteSmoke},
	{"yellow", Yellow},
	{"yellowgreen", YellowGreen},
}

// Named looks a CSS color up by name, ignoring case. The bool is false for
// unknown names.
func Named(name string) (Color, bool) {
	for _, e := range namedTable {
		if strings.EqualFold(e.name, name) {
			return e.fn(), true
		}
	}
	return Color{}, false
}

// Names returns the lower-case names known to Named, sorted.
func Names() []string {
	out := make([]string, len(namedTable))
	for i, e := range namedTable {
		out[i] = e.name
	}
	sort.Strings(out)
	return out
}
