package main

import (
	"testing"

	"github.com/ppopth/galois/field"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts(" 1, 1,0 ,1")
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 1, 0, 1}
	if len(got) != len(want) {
		t.Fatalf("parseInts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("parseInts = %v, want %v", got, want)
		}
	}
	if got, err := parseInts(""); err != nil || got != nil {
		t.Errorf("parseInts(\"\") = %v, %v", got, err)
	}
	if _, err := parseInts("1,x"); err == nil {
		t.Errorf("expected error for non-integer")
	}
}

func TestParseCurve(t *testing.T) {
	f, err := field.NewExtensionField(2, 3, []int{1, 1, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	coefs, err := parseCurve(f, "e2,e3,0,e5")
	if err != nil {
		t.Fatal(err)
	}
	point, _ := f.At(6)
	value, err := f.Evaluate(coefs, point)
	if err != nil {
		t.Fatal(err)
	}
	if value.Index() != 2 {
		t.Errorf("curve at index 6 = index %d, want 2", value.Index())
	}

	if _, err := parseCurve(f, "e9"); err == nil {
		t.Errorf("expected error for index outside GF(8)")
	}
	if _, err := parseCurve(f, "ex"); err == nil {
		t.Errorf("expected error for malformed element token")
	}
}
