package overlayscroll_test

import (
	"testing"

	ovs "github.com/npillmayer/overlayscroll"
)

func TestTeardownOrder(t *testing.T) {
	var td ovs.Teardown
	var order []int
	td.Add(func() { order = append(order, 1) }, nil, func() { order = append(order, 2) })
	td.Add(func() { order = append(order, 3) })
	if td.Len() != 3 {
		t.Fatalf("expected 3 pending closures, have %d", td.Len())
	}
	td.Run()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("expected closures to run in registration order, got %v", order)
	}
}

func TestTeardownIdempotent(t *testing.T) {
	var td ovs.Teardown
	calls := 0
	td.Add(func() {
		calls++
		td.Run() // re-entrant destroy must not run us twice
	})
	off := td.Func()
	off()
	off()
	td.Run()
	if calls != 1 {
		t.Errorf("expected exactly one call, have %d", calls)
	}
}
