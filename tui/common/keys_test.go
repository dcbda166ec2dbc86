package common

import "testing"

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ToggleHints.Keys()) == 0 || km.ToggleHints.Keys()[0] != "?" {
		t.Fatalf("expected ? key binding for hints")
	}
	if len(km.ForceQuit.Keys()) == 0 || km.ForceQuit.Keys()[0] != "ctrl+c" {
		t.Fatalf("expected ctrl+c force quit binding")
	}
	if km.React.Keys()[0] != "l" || km.ReactPicker.Keys()[0] != "L" {
		t.Fatalf("expected l/L reaction bindings")
	}
}

func TestPickerDigit(t *testing.T) {
	if i, ok := PickerDigit("1"); !ok || i != 0 {
		t.Fatalf("1 must map to first reaction")
	}
	if i, ok := PickerDigit("6"); !ok || i != 5 {
		t.Fatalf("6 must map to last reaction")
	}
	for _, k := range []string{"0", "7", "12", "a", ""} {
		if _, ok := PickerDigit(k); ok {
			t.Fatalf("%q must not map to a reaction", k)
		}
	}
}
