package domain

import (
	"strings"
	"testing"

	"github.com/mouse-blink/bannerfmt/internal/adapter"
	m "github.com/mouse-blink/bannerfmt/internal/model"
)

func TestFixGenerator_InsertionsForBareFunction(t *testing.T) {
	det := NewRegexDetector()
	s := NewViolationScanner(det)
	g := NewFixGenerator(det)

	doc := docOf(
		"def foo():",
		"    return 1",
	)

	insertions := g.GenerateFix(doc, s.Scan(doc))
	if len(insertions) != 2 {
		t.Fatalf("expected 2 insertions, got %d", len(insertions))
	}

	opening := insertions[0]
	if opening.Line != 0 || opening.Column != 0 {
		t.Errorf("expected opening at (0,0), got (%d,%d)", opening.Line, opening.Column)
	}
	if opening.Text != TopRule+"\n"+"# foo"+"\n"+TopRule+"\n" {
		t.Errorf("unexpected opening text %q", opening.Text)
	}

	closing := insertions[1]
	if closing.Line != 2 || closing.Column != 0 {
		t.Errorf("expected closing at (2,0), got (%d,%d)", closing.Line, closing.Column)
	}
	if closing.Text != "\n"+BottomRule("foo")+"\n" {
		t.Errorf("unexpected closing text %q", closing.Text)
	}
}

func TestFixGenerator_RoundTrip(t *testing.T) {
	det := NewRegexDetector()
	s := NewViolationScanner(det)
	g := NewFixGenerator(det)

	doc := docOf(
		"import os",
		"",
		"",
		"def foo():",
		"    return 1",
	)

	violations := s.Scan(doc)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation before fixing, got %d", len(violations))
	}

	fixed := adapter.ApplyInsertions(doc, g.GenerateFix(doc, violations))

	if after := s.Scan(m.NewDocument(fixed)); len(after) != 0 {
		t.Fatalf("expected 0 violations after fixing, got %d: %+v", len(after), after)
	}

	if !strings.Contains(fixed, BottomRule("foo")) {
		t.Errorf("expected closing banner in fixed text")
	}
}

func TestFixGenerator_RoundTripMultipleFunctions(t *testing.T) {
	det := NewRegexDetector()
	s := NewViolationScanner(det)
	g := NewFixGenerator(det)

	doc := docOf(
		"def a():",
		"    return 1",
		"",
		"def b():",
		"    return 2",
	)

	violations := s.Scan(doc)
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations before fixing, got %d", len(violations))
	}

	// Both fixes are computed against the same snapshot and applied in
	// one batch.
	fixed := adapter.ApplyInsertions(doc, g.GenerateFix(doc, violations))

	if after := s.Scan(m.NewDocument(fixed)); len(after) != 0 {
		t.Fatalf("expected 0 violations after fixing, got %d: %+v", len(after), after)
	}

	for _, name := range []string{"a", "b"} {
		if !strings.Contains(fixed, "# "+name+"\n") {
			t.Errorf("expected name line for %s in fixed text", name)
		}
		if !strings.Contains(fixed, BottomRule(name)) {
			t.Errorf("expected closing banner for %s in fixed text", name)
		}
	}
}

func TestFixGenerator_DecoratedFunction(t *testing.T) {
	det := NewRegexDetector()
	s := NewViolationScanner(det)
	g := NewFixGenerator(det)

	doc := docOf(
		"@route",
		"def handler():",
		"    return 1",
	)

	insertions := g.GenerateFix(doc, s.Scan(doc))
	if len(insertions) != 2 {
		t.Fatalf("expected 2 insertions, got %d", len(insertions))
	}

	// The opening banner goes directly above the def line, splitting it
	// from its decorator. Fixing the decorator placement would be a
	// behavior change; the insertion point follows the violation's
	// resolved start line.
	if insertions[0].Line != 1 {
		t.Errorf("expected opening at line 1, got %d", insertions[0].Line)
	}
}

func TestFixGenerator_SkipsUnparseableStart(t *testing.T) {
	g := NewFixGenerator(NewRegexDetector())

	doc := docOf(
		"x = 1",
		"y = 2",
	)

	violations := []m.Violation{{StartLine: 0, Name: "ghost"}}

	if insertions := g.GenerateFix(doc, violations); len(insertions) != 0 {
		t.Fatalf("expected no insertions for unparseable start, got %d", len(insertions))
	}
}
