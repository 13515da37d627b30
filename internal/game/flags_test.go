package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func init() {
	RegisterFlags("flag_a", "flag_b", "flag_scalar")
}

func TestFlags_SetHasClear(t *testing.T) {
	f := Flags{}

	f.Set("flag_a")
	if !f.Has("flag_a") {
		t.Error("expected flag_a to be present")
	}
	if f.Has("flag_b") {
		t.Error("did not expect flag_b")
	}

	f.Clear("flag_a")
	if f.Has("flag_a") {
		t.Error("expected flag_a to be cleared")
	}
}

func TestFlags_ScalarValue(t *testing.T) {
	f := Flags{}

	f.SetValue("flag_scalar", "MAGUS")

	if !f.Has("flag_scalar") {
		t.Error("a scalar flag is still present")
	}
	testutil.AssertEqual(t, "value", f.Value("flag_scalar"), "MAGUS")
	testutil.AssertEqual(t, "unset value", f.Value("flag_a"), "")
}

func TestFlags_SetOnNilMap(t *testing.T) {
	var f Flags

	f.Set("flag_a")

	if !f.Has("flag_a") {
		t.Error("expected Set to initialize the nil map")
	}
}

func TestFlags_UnregisteredNamePanics(t *testing.T) {
	f := Flags{}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unregistered flag name")
		}
	}()
	f.Set("never_registered_flag")
}

func TestFlags_Names(t *testing.T) {
	f := Flags{}
	f.Set("flag_b")
	f.Set("flag_a")

	names := f.Names()

	testutil.AssertEqual(t, "count", len(names), 2)
	testutil.AssertEqual(t, "first", names[0], "flag_a")
	testutil.AssertEqual(t, "second", names[1], "flag_b")
}

func TestValidateVocabulary(t *testing.T) {
	if err := ValidateVocabulary("flag_a", "flag_b"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateVocabulary("flag_a", "no_such_flag"); err == nil {
		t.Error("expected an error for an unregistered name")
	}
}
