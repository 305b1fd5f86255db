package lineview

import (
	"errors"
	"testing"
)

func TestCompileRegexFind(t *testing.T) {
	buf := New("Line1\nLine2\nLine3")

	p, err := Compile(`\d+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	line0, _ := buf.Get(0)
	m, ok := p.Find(line0)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start() != 4 || m.Stop() != 5 {
		t.Errorf("expected (4,5), got (%d,%d)", m.Start(), m.Stop())
	}
	if m.Text() != "1" {
		t.Errorf("expected %q, got %q", "1", m.Text())
	}
}

func TestCompileNoMatchIsNotError(t *testing.T) {
	p, err := Compile(`[0-9]{4}`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if _, ok := p.Find(NewView("no digits")); ok {
		t.Error("expected no match")
	}
	if p.Match(NewView("no digits")) {
		t.Error("Match must agree with Find")
	}
}

func TestCompileLeftmost(t *testing.T) {
	p, err := Compile(`\d+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	m, ok := p.Find(NewView("ab12cd34"))
	if !ok || m.Text() != "12" {
		t.Errorf("expected leftmost match %q, got %q ok=%v", "12", m.Text(), ok)
	}
}

func TestCompileBadPattern(t *testing.T) {
	if _, err := Compile("("); !errors.Is(err, ErrBadPattern) {
		t.Errorf("expected ErrBadPattern, got %v", err)
	}
}

func TestCompileMemoized(t *testing.T) {
	a, err := Compile(`memo-[a-z]+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	b, err := Compile(`memo-[a-z]+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if a != b {
		t.Error("compiling the same pattern text twice must return the identical pattern")
	}
	if a.String() != `memo-[a-z]+` {
		t.Errorf("pattern must retain its source, got %q", a.String())
	}
}

func TestMustCompile(t *testing.T) {
	p := MustCompile(`^x`)
	if p == nil || p.String() != `^x` {
		t.Fatalf("unexpected pattern %v", p)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustCompile must panic on malformed syntax")
		}
	}()
	MustCompile("(")
}

func TestPatternCacheIsolated(t *testing.T) {
	pc := NewPatternCache(2)

	a, err := pc.Compile("a+")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	b, err := pc.Compile("a+")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if a != b {
		t.Error("cache must memoize by pattern text")
	}

	// Overflow the two-entry bound; "a+" is the least recently used.
	if _, err := pc.Compile("b+"); err != nil {
		t.Fatal(err)
	}
	if _, err := pc.Compile("c+"); err != nil {
		t.Fatal(err)
	}
	if pc.Len() != 2 {
		t.Errorf("expected 2 cached patterns, got %d", pc.Len())
	}
	if pc.Stats().Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", pc.Stats().Evictions)
	}

	again, err := pc.Compile("a+")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if again == a {
		t.Error("an evicted pattern must be recompiled")
	}
}

func TestViewFindPattern(t *testing.T) {
	p := MustCompile(`L\w+2`)
	buf := New("Line1\nLine2")
	line1, _ := buf.Get(1)

	m, ok := line1.FindPattern(p)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start() != 6 || m.Stop() != 11 {
		t.Errorf("expected arena-absolute (6,11), got (%d,%d)", m.Start(), m.Stop())
	}
}
