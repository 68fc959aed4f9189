package model

import "testing"

func TestKindForExtension(t *testing.T) {
	tests := []struct {
		ext      string
		expected DAWKind
		ok       bool
	}{
		{".flp", KindFLStudio, true},
		{".FLP", KindFLStudio, true},
		{".als", KindAbletonLive, true},
		{".logicx", KindLogicPro, true},
		{".LogicX", KindLogicPro, true},
		{".wav", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		kind, ok := KindForExtension(test.ext)
		if ok != test.ok || kind != test.expected {
			t.Errorf("KindForExtension(%q) = (%q, %v), expected (%q, %v)", test.ext, kind, ok, test.expected, test.ok)
		}
	}
}

func TestDAWKind_String(t *testing.T) {
	tests := []struct {
		kind     DAWKind
		expected string
	}{
		{KindLogicPro, "Logic Pro"},
		{KindFLStudio, "FL Studio"},
		{KindAbletonLive, "Ableton Live"},
		{DAWKind("reaper"), "reaper"},
	}

	for _, test := range tests {
		if result := test.kind.String(); result != test.expected {
			t.Errorf("DAWKind(%s).String() = %s, expected %s", string(test.kind), result, test.expected)
		}
	}
}

func TestDAWKind_LogoFileName(t *testing.T) {
	tests := []struct {
		kind     DAWKind
		expected string
	}{
		{KindLogicPro, "logic_pro.png"},
		{KindFLStudio, "fl_studio.png"},
		{KindAbletonLive, "ableton_live.png"},
	}

	for _, test := range tests {
		if result := test.kind.LogoFileName(); result != test.expected {
			t.Errorf("LogoFileName() for %s = %s, expected %s", test.kind, result, test.expected)
		}
	}
}

func TestAllKindsAreValid(t *testing.T) {
	for _, kind := range AllKinds() {
		if !kind.IsValid() {
			t.Errorf("Expected %s to be valid", kind)
		}
	}
	if DAWKind("cubase").IsValid() {
		t.Error("Unknown kind should not be valid")
	}
}
