package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	full := append([]string{"fmsi"}, args...)
	code = Run(strings.NewReader(stdin), &out, &errOut, full)
	return out.String(), errOut.String(), code
}

// TestIndexQueryExportRoundTrip builds an index from a masked superstring,
// queries it, exports it, and checks every stage against spec §8 scenario 1
// (CaGGTag, k=3).
func TestIndexQueryExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "idx")
	input := ">s\nCaGGTag\n"

	_, stderr, code := run(t, input, "index", "-k", "3", "-", base)
	if code != 0 {
		t.Fatalf("index: code=%d stderr=%s", code, stderr)
	}

	out, stderr, code := run(t, ">q\nACGCGGTAA\n", "query", "-k", "3", "-q", "-", base)
	if code != 0 {
		t.Fatalf("query: code=%d stderr=%s", code, stderr)
	}
	if !strings.HasPrefix(out, "q\t") {
		t.Fatalf("query output missing record name: %q", out)
	}

	out, stderr, code = run(t, "", "export", base)
	if code != 0 {
		t.Fatalf("export: code=%d stderr=%s", code, stderr)
	}
	if !strings.Contains(out, "CaGGTag") {
		t.Errorf("export = %q, want to contain CaGGTag", out)
	}
}

// TestIndex_RejectsMissingArgs checks the argument-count error path.
func TestIndex_RejectsMissingArgs(t *testing.T) {
	_, _, code := run(t, "", "index", "onlyonearg")
	if code == 0 {
		t.Error("expected a non-zero exit for a missing <base-name>")
	}
}

// TestClean_RemovesWhatIndexWrote checks the index->clean round trip; a
// second clean on an already-clean base name still succeeds.
func TestClean_RemovesWhatIndexWrote(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "idx")

	if _, _, code := run(t, ">s\nACGTACGT\n", "index", "-k", "3", "-", base); code != 0 {
		t.Fatalf("index failed")
	}
	if _, stderr, code := run(t, "", "clean", base); code != 0 {
		t.Fatalf("clean: code=%d stderr=%s", code, stderr)
	}
	if _, stderr, code := run(t, "", "clean", base); code != 0 {
		t.Fatalf("second clean: code=%d stderr=%s", code, stderr)
	}
	if _, _, code := run(t, "", "export", base); code == 0 {
		t.Error("expected export after clean to fail")
	}
}

// TestUnion_OfTwoBuiltIndexes checks scenario 6's disjoint-set union via the
// CLI surface.
func TestUnion_OfTwoBuiltIndexes(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	u := filepath.Join(dir, "u")

	if _, _, code := run(t, ">a\nACG\n", "index", "-k", "3", "-", a); code != 0 {
		t.Fatalf("index a failed")
	}
	if _, _, code := run(t, ">b\nCGG\n", "index", "-k", "3", "-", b); code != 0 {
		t.Fatalf("index b failed")
	}
	if _, stderr, code := run(t, "", "union", "-p", a, "-p", b, "-r", u, "-k", "3"); code != 0 {
		t.Fatalf("union: code=%d stderr=%s", code, stderr)
	}
	if out, _, code := run(t, "", "export", u); code != 0 || len(out) == 0 {
		t.Fatalf("export of union failed: code=%d out=%q", code, out)
	}
}

// TestVersionAndHelp check the global flags exit 0 and print something.
func TestVersionAndHelp(t *testing.T) {
	if out, _, code := run(t, "", "-v"); code != 0 || !strings.Contains(out, "fmsi version") {
		t.Errorf("-v: code=%d out=%q", code, out)
	}
	if out, _, code := run(t, "", "-h"); code != 0 || !strings.Contains(out, "Usage") {
		t.Errorf("-h: code=%d out=%q", code, out)
	}
}

// TestUnknownCommand_ExitsNonZero checks the dispatch error path.
func TestUnknownCommand_ExitsNonZero(t *testing.T) {
	_, stderr, code := run(t, "", "frobnicate")
	if code == 0 {
		t.Error("expected a non-zero exit for an unknown command")
	}
	if !strings.Contains(stderr, "frobnicate") {
		t.Errorf("stderr = %q, want to mention the unknown command", stderr)
	}
}
