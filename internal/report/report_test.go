package report

import (
	"bytes"
	"testing"
)

/*
TestNewWriter verifies one line per event, formatted.
*/
func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf)

	s.Eventf("dropped %d rows", 3)
	s.Eventf("done")

	want := "dropped 3 rows\ndone\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

/*
TestNop verifies the discard sink is callable with any arguments.
*/
func TestNop(t *testing.T) {
	Nop.Eventf("ignored %v %v", nil, struct{}{})
}
