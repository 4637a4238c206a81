package lists_test

import (
	"testing"

	"github.com/hasbyte1/go-handy-utils/lists"
)

func TestSequenceConstruction(t *testing.T) {
	s := lists.New(1, 2, 3)
	assertSlice(t, s.All(), []int{1, 2, 3})

	if got := lists.From([]string{"a"}).Count(); got != 1 {
		t.Fatalf("Count = %d; want 1", got)
	}

	e := lists.Empty[int]()
	if !e.IsEmpty() || e.IsNotEmpty() {
		t.Fatal("Empty sequence should report empty")
	}
}

func TestSequenceFromCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	s := lists.From(src)
	src[0] = 99
	assertSlice(t, s.All(), []int{1, 2, 3})
}

func TestSequenceAllCopiesOut(t *testing.T) {
	s := lists.New(1, 2, 3)
	out := s.All()
	out[0] = 99
	assertSlice(t, s.All(), []int{1, 2, 3})
}

func TestSequenceChaining(t *testing.T) {
	got := lists.New(5, 1, 4, 2, 3, 2).
		Filter(func(n int) bool { return n < 5 }).
		UniqueBy(func(n int) any { return n }).
		Sort(func(a, b int) bool { return a < b }).
		All()
	assertSlice(t, got, []int{1, 2, 3, 4})
}

func TestSequenceAccessors(t *testing.T) {
	s := lists.New("a", "b", "c")

	v, ok := s.Get(1)
	if !ok || v != "b" {
		t.Fatalf("Get(1) = %q, %v; want b, true", v, ok)
	}
	if got := s.GetOr(9, "zz"); got != "zz" {
		t.Fatalf("GetOr = %q; want zz", got)
	}

	first, _ := s.First()
	last, _ := s.Last()
	if first != "a" || last != "c" {
		t.Fatalf("First/Last = %q/%q; want a/c", first, last)
	}

	match, ok := s.First(func(v string) bool { return v > "a" })
	if !ok || match != "b" {
		t.Fatalf("First with predicate = %q; want b", match)
	}
}

func TestSequenceEach(t *testing.T) {
	var seen []int
	lists.New(1, 2, 3).Each(func(n int) { seen = append(seen, n) })
	assertSlice(t, seen, []int{1, 2, 3})
}

func TestSequenceTap(t *testing.T) {
	var seen int
	result := lists.New(1, 2, 3).
		Tap(func(s *lists.Sequence[int]) { seen = s.Count() }).
		Count()
	if seen != 3 || result != 3 {
		t.Fatal("Tap failed")
	}
}

func TestSequenceContains(t *testing.T) {
	s := lists.New(1, 2, 3)
	if !s.Contains(func(n int) bool { return n == 2 }) {
		t.Fatal("Contains should be true")
	}
	if s.Contains(func(n int) bool { return n == 9 }) {
		t.Fatal("Contains should be false")
	}
}

func TestSequenceRejectReverse(t *testing.T) {
	got := lists.New(1, 2, 3, 4).
		Reject(func(n int) bool { return n%2 == 0 }).
		Reverse().
		All()
	assertSlice(t, got, []int{3, 1})
}

func TestSequencePushDoesNotMutate(t *testing.T) {
	s := lists.New(1, 2)
	grown := s.Push(3, 4)
	assertSlice(t, s.All(), []int{1, 2})
	assertSlice(t, grown.All(), []int{1, 2, 3, 4})
}

func TestSequenceConcat(t *testing.T) {
	got := lists.New(1, 2).Concat(lists.New(3)).All()
	assertSlice(t, got, []int{1, 2, 3})
}

func TestSequencePartition(t *testing.T) {
	pass, fail := lists.New(1, 2, 3, 4).Partition(func(n int) bool { return n > 2 })
	assertSlice(t, pass.All(), []int{3, 4})
	assertSlice(t, fail.All(), []int{1, 2})
}

func TestSequenceChunk(t *testing.T) {
	chunks, err := lists.New(1, 2, 3).Chunk(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 2 {
		t.Fatalf("chunk count = %d; want 2", len(chunks))
	}

	if _, err := lists.New(1).Chunk(0); err == nil {
		t.Fatal("Chunk(0) should fail")
	}
}

func TestSequenceShuffleKeepsElements(t *testing.T) {
	s := lists.New(1, 2, 3, 4, 5)
	got := s.Shuffle().Sort(func(a, b int) bool { return a < b }).All()
	assertSlice(t, got, []int{1, 2, 3, 4, 5})
}

func TestSequenceString(t *testing.T) {
	if got := lists.New(1, 2, 3).String(); got != "[1,2,3]" {
		t.Fatalf("String = %q; want [1,2,3]", got)
	}
	if got := lists.Empty[int]().String(); got != "[]" {
		t.Fatalf("String of empty = %q; want []", got)
	}
}
