package location

import (
	"testing"
)

var testSource = NewSourceID("test://unit")

func TestPoint(t *testing.T) {
	s := Point(testSource, 10, 5)

	if s.Source != testSource {
		t.Error("Source mismatch")
	}
	if s.Start.Line != 10 || s.Start.Column != 5 {
		t.Errorf("Start = %v; want {10, 5}", s.Start)
	}
	if !s.IsPoint() {
		t.Error("Point should report IsPoint() == true")
	}
}

func TestRange(t *testing.T) {
	s := Range(testSource, 10, 5, 10, 15)

	if s.Start.Line != 10 || s.Start.Column != 5 {
		t.Errorf("Start = %v; want {10, 5}", s.Start)
	}
	if s.End.Line != 10 || s.End.Column != 15 {
		t.Errorf("End = %v; want {10, 15}", s.End)
	}
	if s.IsPoint() {
		t.Error("Range should not be a point")
	}
}

func TestRange_Panics_EndBeforeStart(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Range with end before start should panic")
		}
	}()

	Range(testSource, 10, 15, 10, 5) // End column before start column
}

func TestSpan_IsZero(t *testing.T) {
	var zeroSpan Span
	if !zeroSpan.IsZero() {
		t.Error("zero value should report IsZero() == true")
	}

	s := Point(testSource, 1, 1)
	if s.IsZero() {
		t.Error("valid span should not be zero")
	}
}

func TestSpan_String(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want string
	}{
		{
			name: "zero span",
			span: Span{},
			want: "<no location>",
		},
		{
			name: "point span",
			span: Point(testSource, 10, 5),
			want: "test://unit:10:5",
		},
		{
			name: "range span",
			span: Range(testSource, 10, 5, 10, 15),
			want: "test://unit:10:5-10:15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Span
		b    Span
		want int
	}{
		{
			name: "equal",
			a:    Range(testSource, 5, 10, 5, 20),
			b:    Range(testSource, 5, 10, 5, 20),
			want: 0,
		},
		{
			name: "a before b (line)",
			a:    Range(testSource, 4, 10, 4, 20),
			b:    Range(testSource, 5, 10, 5, 20),
			want: -1,
		},
		{
			name: "a after b (line)",
			a:    Range(testSource, 6, 10, 6, 20),
			b:    Range(testSource, 5, 10, 5, 20),
			want: 1,
		},
		{
			name: "a before b (column)",
			a:    Range(testSource, 5, 5, 5, 15),
			b:    Range(testSource, 5, 10, 5, 20),
			want: -1,
		},
		{
			name: "same start, different end",
			a:    Range(testSource, 5, 10, 5, 15),
			b:    Range(testSource, 5, 10, 5, 20),
			want: -1,
		},
		{
			name: "different source (alphabetic)",
			a:    Range(NewSourceID("aaa://"), 5, 10, 5, 20),
			b:    Range(NewSourceID("bbb://"), 5, 10, 5, 20),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestSpan_Equality(t *testing.T) {
	// Go struct equality should work
	s1 := Range(testSource, 5, 10, 5, 20)
	s2 := Range(testSource, 5, 10, 5, 20)
	s3 := Range(testSource, 5, 10, 5, 21)

	if s1 != s2 {
		t.Error("equal spans should be equal")
	}
	if s1 == s3 {
		t.Error("different spans should not be equal")
	}
}

func TestSpan_MapKey(t *testing.T) {
	s1 := Range(testSource, 5, 10, 5, 20)
	s2 := Range(testSource, 5, 10, 5, 20)

	m := make(map[Span]int)
	m[s1] = 42

	if m[s2] != 42 {
		t.Error("equal spans should work as map keys")
	}
}
