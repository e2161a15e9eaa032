package vcard

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vcard_phone_tools/platform/apperr"
)

func TestRewriteStandardizesTelLines(t *testing.T) {
	rw := &Rewriter{DefaultRegion: "MX"}

	in := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"N:Doe;John;;;\n" +
		"FN:John Doe\n" +
		"TEL:6623402020\n" +
		"TEL:+526623402021\n" +
		"END:VCARD\n"
	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"N:Doe;John;;;\n" +
		"FN:John Doe\n" +
		"TEL;TYPE=CELL:+52 662 340 2020\n" +
		"TEL;TYPE=CELL:+52 662 340 2021\n" +
		"END:VCARD\n"

	got, stats := rw.Rewrite(in)
	if got != want {
		t.Errorf("Rewrite mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if stats.Matched != 2 || stats.Rewritten != 2 || stats.Alternates != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRewriteOverwritesAnnotationsByDefault(t *testing.T) {
	rw := &Rewriter{DefaultRegion: "MX"}

	in := "TEL;TYPE=HOME:+526623402021\n" +
		"item2.TEL;TYPE=CELL:6623402020\n"
	want := "TEL;TYPE=CELL:+52 662 340 2021\n" +
		"TEL;TYPE=CELL:+52 662 340 2020\n"

	got, _ := rw.Rewrite(in)
	if got != want {
		t.Errorf("Rewrite mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRewritePreservesAnnotationsWhenConfigured(t *testing.T) {
	rw := &Rewriter{DefaultRegion: "MX", PreserveType: true}

	in := "TEL;TYPE=HOME:+526623402021\n" +
		"item1.TEL:+526623402020\n" +
		"item2.TEL;TYPE=CELL:6623402020\n"
	// Lines with an existing ;TYPE= keep their whole prefix segment; lines
	// without one fall back to the standardized label.
	want := "TEL;TYPE=HOME:+52 662 340 2021\n" +
		"TEL;TYPE=CELL:+52 662 340 2020\n" +
		"item2.TEL;TYPE=CELL:+52 662 340 2020\n"

	got, _ := rw.Rewrite(in)
	if got != want {
		t.Errorf("Rewrite mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRewriteEmitsLegacyAlternate(t *testing.T) {
	rw := &Rewriter{DefaultRegion: "BR"}

	in := "BEGIN:VCARD\n" +
		"FN:Maria Silva\n" +
		"TEL:+5527912345678\n" +
		"END:VCARD\n"
	want := "BEGIN:VCARD\n" +
		"FN:Maria Silva\n" +
		"TEL;TYPE=CELL:+55 27 91234-5678\n" +
		"TEL;TYPE=CELL:+55 27 1234-5678\n" +
		"END:VCARD\n"

	got, stats := rw.Rewrite(in)
	if got != want {
		t.Errorf("Rewrite mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if stats.Alternates != 1 {
		t.Errorf("Alternates = %d, want 1", stats.Alternates)
	}
	if stats.Lines+stats.Alternates != strings.Count(got, "\n") {
		t.Errorf("output line count %d, want input lines %d plus alternates %d",
			strings.Count(got, "\n"), stats.Lines, stats.Alternates)
	}
}

func TestRewriteKeepsUnparseableLines(t *testing.T) {
	rw := &Rewriter{DefaultRegion: "MX"}

	in := "TEL:123\n" +
		"TEL:not a number\n" +
		"EMAIL:tom@example.com\n" +
		"TEL:+526623402020\n"
	want := "TEL:123\n" +
		"TEL:not a number\n" +
		"EMAIL:tom@example.com\n" +
		"TEL;TYPE=CELL:+52 662 340 2020\n"

	got, stats := rw.Rewrite(in)
	if got != want {
		t.Errorf("Rewrite mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if stats.Matched != 3 || stats.Rewritten != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRewriteLeavesNonTelDocumentsUntouched(t *testing.T) {
	rw := &Rewriter{DefaultRegion: "MX"}

	in := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"N:Davis;Tom;;;\n" +
		"FN:Tom Davis\n" +
		"EMAIL:tom@example.com\n" +
		"END:VCARD\n"

	got, stats := rw.Rewrite(in)
	if got != in {
		t.Errorf("document changed:\ngot:\n%s", got)
	}
	if stats.Matched != 0 {
		t.Errorf("Matched = %d, want 0", stats.Matched)
	}
}

func TestRewritePreservesMissingFinalNewline(t *testing.T) {
	rw := &Rewriter{DefaultRegion: "MX"}

	in := "FN:Jane Smith\nNOTE:no trailing newline"
	got, _ := rw.Rewrite(in)
	if got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestRewriteIdempotentOnCanonicalDocument(t *testing.T) {
	rw := &Rewriter{DefaultRegion: "MX"}

	in := "BEGIN:VCARD\n" +
		"FN:Juan Garcia\n" +
		"TEL:6623402020\n" +
		"TEL:+1 650 253 0000\n" +
		"END:VCARD\n"

	once, _ := rw.Rewrite(in)
	twice, _ := rw.Rewrite(once)
	if twice != once {
		t.Errorf("second pass changed output:\nonce:\n%s\ntwice:\n%s", once, twice)
	}
}

func TestProcessFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "contacts.vcf")
	out := filepath.Join(dir, "contacts_out.vcf")

	doc := "BEGIN:VCARD\nTEL:+5527912345678\nEND:VCARD\n"
	if err := os.WriteFile(in, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	rw := &Rewriter{DefaultRegion: "BR"}
	stats, err := rw.ProcessFile(in, out)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if stats.Rewritten != 1 || stats.Alternates != 1 {
		t.Errorf("stats = %+v", stats)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "BEGIN:VCARD\nTEL;TYPE=CELL:+55 27 91234-5678\nTEL;TYPE=CELL:+55 27 1234-5678\nEND:VCARD\n"
	if string(data) != want {
		t.Errorf("output file:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestProcessFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	rw := &Rewriter{DefaultRegion: "BR"}

	_, err := rw.ProcessFile(filepath.Join(dir, "missing.vcf"), filepath.Join(dir, "out.vcf"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("error kind = %v, want KindNotFound", apperr.GetKind(err))
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.vcf")); !os.IsNotExist(statErr) {
		t.Error("output file should not exist after a failed run")
	}
}
