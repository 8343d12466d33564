package answers

import (
	"errors"
	"testing"

	"github.com/abhisek/triage/internal/catalog"
)

func TestSetScale_StoresRawOrInverted(t *testing.T) {
	for v := catalog.ScaleMin; v <= catalog.ScaleMax; v++ {
		s := NewStore()
		if err := s.SetScale("q", v, false); err != nil {
			t.Fatalf("SetScale(%d): %v", v, err)
		}
		if got := s.Value("q"); got != v {
			t.Errorf("plain %d stored as %d", v, got)
		}
		if err := s.SetScale("q", v, true); err != nil {
			t.Fatalf("SetScale(%d, inverted): %v", v, err)
		}
		if got := s.Value("q"); got != 11-v {
			t.Errorf("inverted %d stored as %d, want %d", v, got, 11-v)
		}
	}
}

func TestSetScale_RejectsOutOfRange(t *testing.T) {
	s := NewStore()
	_ = s.SetScale("q", 4, false)

	for _, v := range []int{-1, 0, 11, 100} {
		err := s.SetScale("q", v, false)
		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("SetScale(%d) error = %v, want *RangeError", v, err)
		}
		if re.Value != v {
			t.Errorf("RangeError.Value = %d, want %d", re.Value, v)
		}
	}
	if got := s.Value("q"); got != 4 {
		t.Errorf("rejected writes changed stored value to %d", got)
	}
}

func TestInvert_RoundTrip(t *testing.T) {
	for v := catalog.ScaleMin; v <= catalog.ScaleMax; v++ {
		if got := Invert(Invert(v)); got != v {
			t.Errorf("Invert(Invert(%d)) = %d", v, got)
		}
	}
}

func TestSetBoolean(t *testing.T) {
	s := NewStore()
	s.SetBoolean("yes", true)
	s.SetBoolean("no", false)
	if s.Value("yes") != 1 || s.Value("no") != 0 {
		t.Errorf("got yes=%d no=%d", s.Value("yes"), s.Value("no"))
	}
	if _, ok := s.Get("no"); !ok {
		t.Error("false answer should still be recorded")
	}
}

func TestSet_DispatchesOnKind(t *testing.T) {
	s := NewStore()
	inv := catalog.Question{ID: "sleep_2", Kind: catalog.KindScale, Inverted: true}
	if err := s.Set(inv, 3); err != nil {
		t.Fatal(err)
	}
	if got := s.Value("sleep_2"); got != 8 {
		t.Errorf("inverted scale stored %d, want 8", got)
	}

	b := catalog.Question{ID: "emergency_1", Kind: catalog.KindBoolean}
	if err := s.Set(b, 1); err != nil {
		t.Fatal(err)
	}
	var re *RangeError
	if err := s.Set(b, 2); !errors.As(err, &re) {
		t.Errorf("boolean value 2: got %v, want *RangeError", err)
	}
	if got := s.Value("emergency_1"); got != 1 {
		t.Errorf("rejected boolean write changed value to %d", got)
	}
}

func TestIsComplete(t *testing.T) {
	qs := []catalog.Question{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	s := NewStore()
	if !s.IsComplete(nil) {
		t.Error("empty question list should be complete")
	}
	_ = s.SetScale("a", 1, false)
	_ = s.SetScale("b", 1, false)
	if s.IsComplete(qs) {
		t.Error("2 of 3 answered should be incomplete")
	}
	_ = s.SetScale("c", 1, false)
	if !s.IsComplete(qs) {
		t.Error("all answered should be complete")
	}
}

func TestGet_MissingIsUnanswered(t *testing.T) {
	s := NewStore()
	if v, ok := s.Get("x"); ok || v != 0 {
		t.Errorf("Get on empty store = (%d, %v)", v, ok)
	}
}

func TestSnapshotAndReset(t *testing.T) {
	s := NewStore()
	_ = s.SetScale("a", 5, false)
	snap := s.Snapshot()
	snap["a"] = 9
	if s.Value("a") != 5 {
		t.Error("mutating a snapshot changed the store")
	}

	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len after Reset = %d", s.Len())
	}
	if snap["a"] != 9 {
		t.Error("Reset cleared an earlier snapshot")
	}
}

func TestZeroValueStore(t *testing.T) {
	var s Store
	if s.Len() != 0 || s.Snapshot() == nil {
		t.Fatal("zero Store should read as empty")
	}
	if err := s.SetScale("anxiety_1", 4, false); err != nil {
		t.Fatalf("SetScale: %v", err)
	}
	s.SetBoolean("emergency_1", true)
	if v, ok := s.Get("anxiety_1"); !ok || v != 4 {
		t.Errorf("anxiety_1 = %d, %v; want 4, true", v, ok)
	}
	if s.Value("emergency_1") != 1 {
		t.Errorf("emergency_1 = %d, want 1", s.Value("emergency_1"))
	}
}
