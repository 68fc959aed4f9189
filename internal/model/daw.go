package model

import "strings"

// DAWKind identifies the authoring application that owns a project file
type DAWKind string

const (
	KindLogicPro    DAWKind = "logic_pro"
	KindFLStudio    DAWKind = "fl_studio"
	KindAbletonLive DAWKind = "ableton_live"
)

// Project file extensions
const (
	ExtLogicPro    = ".logicx"
	ExtFLStudio    = ".flp"
	ExtAbletonLive = ".als"
)

// LogoExtension is the file extension used for DAW logo artwork
const LogoExtension = ".png"

// DefaultProjectExtensions maps lowercase project extensions to DAW kinds
var DefaultProjectExtensions = map[string]DAWKind{
	ExtLogicPro:    KindLogicPro,
	ExtFLStudio:    KindFLStudio,
	ExtAbletonLive: KindAbletonLive,
}

// AllKinds returns every known DAW kind in display order
func AllKinds() []DAWKind {
	return []DAWKind{KindLogicPro, KindFLStudio, KindAbletonLive}
}

// KindForExtension returns the DAW kind for a file extension (".flp", ".ALS", ...)
func KindForExtension(ext string) (DAWKind, bool) {
	kind, ok := DefaultProjectExtensions[strings.ToLower(ext)]
	return kind, ok
}

// String returns the human-readable DAW name
func (k DAWKind) String() string {
	switch k {
	case KindLogicPro:
		return "Logic Pro"
	case KindFLStudio:
		return "FL Studio"
	case KindAbletonLive:
		return "Ableton Live"
	default:
		return string(k)
	}
}

// LogoFileName returns the conventional artwork file name, e.g. "fl_studio.png"
func (k DAWKind) LogoFileName() string {
	return string(k) + LogoExtension
}

// IsValid reports whether k is one of the known kinds
func (k DAWKind) IsValid() bool {
	switch k {
	case KindLogicPro, KindFLStudio, KindAbletonLive:
		return true
	}
	return false
}
