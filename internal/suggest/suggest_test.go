package suggest

import "testing"

func TestBestFindsCloseTypo(t *testing.T) {
	got, ok := Best("lenght", []string{"length", "push", "pop"})
	if !ok || got != "length" {
		t.Fatalf("Best(lenght) = %q, %v, want \"length\", true", got, ok)
	}
}

func TestBestNoCandidateClearsThreshold(t *testing.T) {
	_, ok := Best("zzz", []string{"length", "push", "pop"})
	if ok {
		t.Error("expected no candidate to clear the similarity threshold")
	}
}

func TestBestSkipsExactMatch(t *testing.T) {
	// an exact match isn't a "typo" to correct, so it must not win even
	// though it would trivially score 1.0
	got, ok := Best("push", []string{"push", "pop"})
	if ok && got == "push" {
		t.Error("Best should not suggest the name itself as a correction")
	}
}

func TestHintFormatsMessage(t *testing.T) {
	got := Hint("lenght", []string{"length"})
	want := ", did you mean 'length'?"
	if got != want {
		t.Errorf("Hint = %q, want %q", got, want)
	}
}

func TestHintEmptyWhenNothingCloseEnough(t *testing.T) {
	if got := Hint("zzz", []string{"length"}); got != "" {
		t.Errorf("Hint = %q, want empty string", got)
	}
}
