package keycode

// X11 keysym values for the keys the translator understands. Printable
// Latin-1 keysyms equal their character codes; everything else lives in the
// 0xff00 function-key block.
const (
	xkBackSpace  = 0xff08
	xkTab        = 0xff09
	xkReturn     = 0xff0d
	xkPause      = 0xff13
	xkScrollLock = 0xff14
	xkEscape     = 0xff1b
	xkHome       = 0xff50
	xkLeft       = 0xff51
	xkUp         = 0xff52
	xkRight      = 0xff53
	xkDown       = 0xff54
	xkPageUp     = 0xff55
	xkPageDown   = 0xff56
	xkEnd        = 0xff57
	xkPrint      = 0xff61
	xkInsert     = 0xff63
	xkMenu       = 0xff67
	xkNumLock    = 0xff7f
	xkDelete     = 0xffff

	xkKPSpace     = 0xff80
	xkKPTab       = 0xff89
	xkKPEnter     = 0xff8d
	xkKPHome      = 0xff95
	xkKPLeft      = 0xff96
	xkKPUp        = 0xff97
	xkKPRight     = 0xff98
	xkKPDown      = 0xff99
	xkKPPageUp    = 0xff9a
	xkKPPageDown  = 0xff9b
	xkKPEnd       = 0xff9c
	xkKPInsert    = 0xff9e
	xkKPDelete    = 0xff9f
	xkKPMultiply  = 0xffaa
	xkKPAdd       = 0xffab
	xkKPSeparator = 0xffac
	xkKPSubtract  = 0xffad
	xkKPDecimal   = 0xffae
	xkKPDivide    = 0xffaf
	xkKP0         = 0xffb0
	xkKP9         = 0xffb9
	xkKPEqual     = 0xffbd

	xkF1  = 0xffbe
	xkF12 = 0xffc9

	xkShiftL   = 0xffe1
	xkShiftR   = 0xffe2
	xkControlL = 0xffe3
	xkControlR = 0xffe4
	xkCapsLock = 0xffe5
	xkMetaL    = 0xffe7
	xkMetaR    = 0xffe8
	xkAltL     = 0xffe9
	xkAltR     = 0xffea
	xkSuperL   = 0xffeb
	xkSuperR   = 0xffec
)

// keysymTable maps function-block keysyms to virtual keys.
var keysymTable = map[uint32]VirtualKey{
	xkBackSpace:  {KeyBackspace, LocationStandard},
	xkTab:        {KeyTab, LocationStandard},
	xkReturn:     {KeyEnter, LocationStandard},
	xkPause:      {KeyPause, LocationStandard},
	xkScrollLock: {KeyScrollLock, LocationStandard},
	xkEscape:     {KeyEscape, LocationStandard},
	xkHome:       {KeyHome, LocationStandard},
	xkLeft:       {KeyLeft, LocationStandard},
	xkUp:         {KeyUp, LocationStandard},
	xkRight:      {KeyRight, LocationStandard},
	xkDown:       {KeyDown, LocationStandard},
	xkPageUp:     {KeyPageUp, LocationStandard},
	xkPageDown:   {KeyPageDown, LocationStandard},
	xkEnd:        {KeyEnd, LocationStandard},
	xkPrint:      {KeyPrintScreen, LocationStandard},
	xkInsert:     {KeyInsert, LocationStandard},
	xkMenu:       {KeyMenu, LocationStandard},
	xkNumLock:    {KeyNumLock, LocationNumpad},
	xkDelete:     {KeyDelete, LocationStandard},

	xkKPSpace:     {KeySpace, LocationNumpad},
	xkKPTab:       {KeyTab, LocationNumpad},
	xkKPEnter:     {KeyEnter, LocationNumpad},
	xkKPHome:      {KeyHome, LocationNumpad},
	xkKPLeft:      {KeyLeft, LocationNumpad},
	xkKPUp:        {KeyUp, LocationNumpad},
	xkKPRight:     {KeyRight, LocationNumpad},
	xkKPDown:      {KeyDown, LocationNumpad},
	xkKPPageUp:    {KeyPageUp, LocationNumpad},
	xkKPPageDown:  {KeyPageDown, LocationNumpad},
	xkKPEnd:       {KeyEnd, LocationNumpad},
	xkKPInsert:    {KeyInsert, LocationNumpad},
	xkKPDelete:    {KeyDelete, LocationNumpad},
	xkKPMultiply:  {KeyKPMultiply, LocationNumpad},
	xkKPAdd:       {KeyKPAdd, LocationNumpad},
	xkKPSeparator: {KeyKPSeparator, LocationNumpad},
	xkKPSubtract:  {KeyKPSubtract, LocationNumpad},
	xkKPDecimal:   {KeyKPDecimal, LocationNumpad},
	xkKPDivide:    {KeyKPDivide, LocationNumpad},
	xkKPEqual:     {KeyKPEquals, LocationNumpad},

	xkShiftL:   {KeyShift, LocationLeft},
	xkShiftR:   {KeyShift, LocationRight},
	xkControlL: {KeyControl, LocationLeft},
	xkControlR: {KeyControl, LocationRight},
	xkCapsLock: {KeyCapsLock, LocationStandard},
	xkMetaL:    {KeyMeta, LocationLeft},
	xkMetaR:    {KeyMeta, LocationRight},
	xkAltL:     {KeyAlt, LocationLeft},
	xkAltR:     {KeyAlt, LocationRight},
	xkSuperL:   {KeyMeta, LocationLeft},
	xkSuperR:   {KeyMeta, LocationRight},
}

// punctTable maps Latin-1 punctuation keysyms to virtual keys. The shifted
// forms resolve to the same physical key as their unshifted partner.
var punctTable = map[uint32]Key{
	' ':  KeySpace,
	'-':  KeyMinus,
	'_':  KeyMinus,
	'=':  KeyEquals,
	'+':  KeyEquals,
	'[':  KeyBracketLeft,
	'{':  KeyBracketLeft,
	']':  KeyBracketRight,
	'}':  KeyBracketRight,
	'\\': KeyBackslash,
	'|':  KeyBackslash,
	';':  KeySemicolon,
	':':  KeySemicolon,
	'\'': KeyQuote,
	'"':  KeyQuote,
	'`':  KeyBackquote,
	'~':  KeyBackquote,
	',':  KeyComma,
	'<':  KeyComma,
	'.':  KeyPeriod,
	'>':  KeyPeriod,
	'/':  KeySlash,
	'?':  KeySlash,
}

// shiftedDigits maps the shifted top-row symbols back to their digit keys.
var shiftedDigits = map[uint32]Key{
	')': Key0,
	'!': Key1,
	'@': Key2,
	'#': Key3,
	'$': Key4,
	'%': Key5,
	'^': Key6,
	'&': Key7,
	'*': Key8,
	'(': Key9,
}

// FromKeysym maps a native keysym to its portable virtual key. Unmapped
// keysyms return Undefined, never an error.
func FromKeysym(keysym uint32) VirtualKey {
	switch {
	case keysym >= 'a' && keysym <= 'z':
		return VirtualKey{KeyA + Key(keysym-'a'), LocationStandard}
	case keysym >= 'A' && keysym <= 'Z':
		return VirtualKey{KeyA + Key(keysym-'A'), LocationStandard}
	case keysym >= '0' && keysym <= '9':
		return VirtualKey{Key0 + Key(keysym-'0'), LocationStandard}
	case keysym >= xkKP0 && keysym <= xkKP9:
		return VirtualKey{KeyKP0 + Key(keysym-xkKP0), LocationNumpad}
	case keysym >= xkF1 && keysym <= xkF12:
		return VirtualKey{KeyF1 + Key(keysym-xkF1), LocationStandard}
	}
	if vk, ok := keysymTable[keysym]; ok {
		return vk
	}
	if k, ok := punctTable[keysym]; ok {
		return VirtualKey{k, LocationStandard}
	}
	if k, ok := shiftedDigits[keysym]; ok {
		return VirtualKey{k, LocationStandard}
	}
	return Undefined
}
