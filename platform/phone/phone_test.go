package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	t.Parallel()

	if got := NormalizeE164("7217619794"); got != "+917217619794" {
		t.Fatalf("expected IN default region applied, got %q", got)
	}
	if got := NormalizeE164(" +91 72176 19794 "); got != "+917217619794" {
		t.Fatalf("expected formatted number, got %q", got)
	}
	if got := NormalizeE164("not a number"); got != "not a number" {
		t.Fatalf("unparseable input must pass through trimmed, got %q", got)
	}
	if got := NormalizeE164("  "); got != "" {
		t.Fatalf("blank input must normalize to empty, got %q", got)
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	if !IsValid("7217619794") {
		t.Fatalf("expected valid IN mobile number")
	}
	if IsValid("12345") {
		t.Fatalf("expected short number rejected")
	}
	if IsValid("") {
		t.Fatalf("expected empty input rejected")
	}
}
