package queue

import (
	"fmt"
	"math/rand"
	"testing"

	"queueup/karaoke-backend/internal/domain"
)

func TestEnsureUser_EmptyRotation(t *testing.T) {
	rot := domain.Rotation{}
	Track(&rot).EnsureUser("a")

	if len(rot.Order) != 1 || rot.Order[0] != "a" {
		t.Fatalf("expected order [a], got %v", rot.Order)
	}
	if rot.Pointer != 0 {
		t.Errorf("expected pointer 0, got %d", rot.Pointer)
	}
}

func TestEnsureUser_InsertsAfterCurrentTurn(t *testing.T) {
	rot := domain.Rotation{Order: []string{"a", "b", "c"}, Pointer: 1}
	Track(&rot).EnsureUser("d")

	want := []string{"a", "b", "d", "c"}
	if len(rot.Order) != len(want) {
		t.Fatalf("expected order %v, got %v", want, rot.Order)
	}
	for i := range want {
		if rot.Order[i] != want[i] {
			t.Errorf("order mismatch at %d: expected %s, got %s", i, want[i], rot.Order[i])
		}
	}
	if rot.Pointer != 1 {
		t.Errorf("pointer moved: expected 1, got %d", rot.Pointer)
	}
}

func TestEnsureUser_PointerAtLastWrapsToEnd(t *testing.T) {
	rot := domain.Rotation{Order: []string{"a", "b"}, Pointer: 1}
	Track(&rot).EnsureUser("c")

	want := []string{"a", "b", "c"}
	for i := range want {
		if rot.Order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, rot.Order)
		}
	}
}

func TestEnsureUser_ExistingUserIsNoOp(t *testing.T) {
	rot := domain.Rotation{Order: []string{"a", "b"}, Pointer: 0}
	Track(&rot).EnsureUser("b")

	if len(rot.Order) != 2 {
		t.Errorf("duplicate slot added: %v", rot.Order)
	}
}

func TestAdvance_Wraps(t *testing.T) {
	rot := domain.Rotation{Order: []string{"a", "b", "c"}, Pointer: 2}
	Track(&rot).Advance()
	if rot.Pointer != 0 {
		t.Errorf("expected pointer to wrap to 0, got %d", rot.Pointer)
	}
}

func TestAdvance_EmptyRotationNoOp(t *testing.T) {
	rot := domain.Rotation{}
	Track(&rot).Advance()
	if rot.Pointer != 0 {
		t.Errorf("expected pointer 0, got %d", rot.Pointer)
	}
}

func TestAdvanceIfCurrent(t *testing.T) {
	rot := domain.Rotation{Order: []string{"a", "b"}, Pointer: 0}
	tr := Track(&rot)

	tr.AdvanceIfCurrent("b")
	if rot.Pointer != 0 {
		t.Errorf("advanced on non-current user: pointer %d", rot.Pointer)
	}

	tr.AdvanceIfCurrent("a")
	if rot.Pointer != 1 {
		t.Errorf("expected pointer 1 after current user consumed, got %d", rot.Pointer)
	}
}

// Pointer stays within [0, len(order)) (or 0 when empty) under any
// operation sequence.
func TestRotation_PointerInvariantUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rot := domain.Rotation{}
	tr := Track(&rot)

	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			tr.EnsureUser(fmt.Sprintf("user-%d", rng.Intn(10)))
		case 1:
			tr.Advance()
		case 2:
			tr.AdvanceIfCurrent(fmt.Sprintf("user-%d", rng.Intn(10)))
		}

		if len(rot.Order) == 0 {
			if rot.Pointer != 0 {
				t.Fatalf("op %d: pointer %d with empty rotation", i, rot.Pointer)
			}
		} else if rot.Pointer < 0 || rot.Pointer >= len(rot.Order) {
			t.Fatalf("op %d: pointer %d out of range for %d slots", i, rot.Pointer, len(rot.Order))
		}
	}
}
