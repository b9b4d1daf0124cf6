package selector

import (
	"testing"

	"github.com/bent101/wordlet/internal/constraint"
)

// TestFindBestTiesResolveToEarliestIndex exercises two candidates
// sharing no letters beyond the fixed starter: each guess only ever
// "counts" its own self-match (spec.md §4.4 step 4 excludes the
// k=1-but-not-the-target case), so both score an expected remaining
// of exactly 1 and the tie must resolve to the lower index.
func TestFindBestTiesResolveToEarliestIndex(t *testing.T) {
	candidates := []string{"abcde", "afghi"}
	c := constraint.New('a', 5)

	result, err := FindBest(c, candidates)
	if err != nil {
		t.Fatal(err)
	}
	if result.Index != 0 {
		t.Errorf("FindBest index = %d, want 0 (tie-break to earliest)", result.Index)
	}
	if result.ExpectedRemaining != 1 {
		t.Errorf("ExpectedRemaining = %v, want 1", result.ExpectedRemaining)
	}
}

func TestFindBestLengthMismatch(t *testing.T) {
	c := constraint.New('c', 5)
	_, err := FindBest(c, []string{"crane", "cram"})
	if _, ok := err.(ErrLengthMismatch); !ok {
		t.Errorf("error type = %T, want ErrLengthMismatch", err)
	}
}

func TestFindBestNoCandidates(t *testing.T) {
	c := constraint.New('x', 5)
	_, err := FindBest(c, []string{"crane", "cramp"})
	if _, ok := err.(ErrNoCandidates); !ok {
		t.Errorf("error type = %T, want ErrNoCandidates", err)
	}
}

// TestFindBestDeterministic is spec.md invariant 6: find_best is
// deterministic regardless of how the candidate evaluations happen to
// interleave across goroutines. We run it repeatedly and require the
// same winner every time.
func TestFindBestDeterministic(t *testing.T) {
	candidates := []string{"crane", "cramp", "crate", "crone", "crime", "croak"}
	c := constraint.New('c', 5)

	var firstIdx int
	for i := 0; i < 20; i++ {
		result, err := FindBest(c, candidates)
		if err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			firstIdx = result.Index
			continue
		}
		if result.Index != firstIdx {
			t.Errorf("run %d picked index %d, want %d (run 0's pick)", i, result.Index, firstIdx)
		}
	}
}
