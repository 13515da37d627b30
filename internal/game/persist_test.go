package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestRoomRecord_Validate(t *testing.T) {
	tests := map[string]struct {
		rec    *RoomRecord
		expErr bool
	}{
		"valid record": {
			rec: &RoomRecord{State: "one", Progress: 50, HintsUsed: 1},
		},
		"missing state": {
			rec:    &RoomRecord{Progress: 50},
			expErr: true,
		},
		"progress out of range": {
			rec:    &RoomRecord{State: "one", Progress: 101},
			expErr: true,
		},
		"negative hints": {
			rec:    &RoomRecord{State: "one", HintsUsed: -1},
			expErr: true,
		},
		"character without name": {
			rec: &RoomRecord{
				State:      "one",
				Characters: map[string]*CharacterRecord{"ada": {}},
			},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.expErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.expErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	makeSet := func() *StateSet {
		set, err := NewStateSet(
			&State{
				Name:     "one",
				Next:     "two",
				Progress: 50,
				Hints:    []string{"look at the anvil"},
				Init: func(r *Room) {
					anvil := NewObject("anvil", nil)
					anvil.Persistent = true
					r.AddObject(anvil)
				},
			},
			&State{Name: "two", Progress: 100},
		)
		if err != nil {
			t.Fatalf("building state set: %v", err)
		}
		return set
	}

	r := NewRoom("test", makeSet(), &recorder{}, 20, nil)
	ch := r.Join("Ada")
	ch.Flags.SetValue("flag_scalar", "MAGUS")
	r.Achievement(ch, "Early Bird", "first in")
	r.Score(3, "found the anvil")
	r.Object("anvil").Flags.Set("test_taken")
	_ = r.UseHint()

	rec := r.Snapshot()
	if err := rec.Validate(); err != nil {
		t.Fatalf("snapshot failed validation: %v", err)
	}

	restored, err := RestoreRoom("test", makeSet(), &recorder{}, 20, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "state", restored.StateName(), "one")
	testutil.AssertEqual(t, "score", restored.TotalScore(), 3)
	testutil.AssertEqual(t, "hints used", restored.HintsUsed(), 1)
	if !restored.Object("anvil").Flags.Has("test_taken") {
		t.Error("expected the object flag to survive")
	}

	back := restored.Character("ada")
	if back == nil {
		t.Fatal("expected the character to be restored")
	}
	testutil.AssertEqual(t, "char name", back.Name, "Ada")
	testutil.AssertEqual(t, "char flag", back.Flags.Value("flag_scalar"), "MAGUS")
	testutil.AssertEqual(t, "achievement", back.Achievements["Early Bird"], "first in")

	// A scored name stays one-shot after the restore.
	restored.Score(3, "found the anvil")
	testutil.AssertEqual(t, "score after re-earn", restored.TotalScore(), 3)
}

func TestRestoreRoom_DropsFlagsForMissingObjects(t *testing.T) {
	set, err := NewStateSet(&State{Name: "one", Progress: 100})
	if err != nil {
		t.Fatalf("building state set: %v", err)
	}

	rec := &RoomRecord{
		State:   "one",
		Objects: map[string]Flags{"ghost": {"test_taken": ""}},
	}

	r, err := RestoreRoom("test", set, &recorder{}, 20, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Object("ghost") != nil {
		t.Error("restore must not invent objects")
	}
}

func TestRestoreRoom_UnknownState(t *testing.T) {
	set, err := NewStateSet(&State{Name: "one", Progress: 100})
	if err != nil {
		t.Fatalf("building state set: %v", err)
	}

	_, err = RestoreRoom("test", set, &recorder{}, 20, &RoomRecord{State: "gone"}, nil)
	if err == nil {
		t.Error("expected an error for an unknown recorded state")
	}
}
