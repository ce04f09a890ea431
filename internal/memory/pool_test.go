package memory

import "testing"

type item struct{ n int }

func TestPoolReusesReleased(t *testing.T) {
	p := NewPool(func() *item { return &item{} }, 2)

	a := p.Get()
	b := p.Get()
	if a == b {
		t.Fatal("expected distinct allocations")
	}
	if !p.Put(a) {
		t.Fatal("Put refused with free capacity")
	}
	if got := p.Get(); got != a {
		t.Errorf("expected released object back, got %p want %p", got, a)
	}

	st := p.Stats()
	if st.Allocated != 2 || st.Reused != 1 || st.Released != 1 {
		t.Errorf("unexpected stats %+v", st)
	}
	if b == nil {
		t.Error("second Get returned nil")
	}
}

func TestPoolDropsWhenFull(t *testing.T) {
	p := NewPool[item](nil, 1)
	if !p.Put(&item{n: 1}) {
		t.Fatal("first Put should be kept")
	}
	if p.Put(&item{n: 2}) {
		t.Error("second Put should be dropped")
	}
	if p.Len() != 1 {
		t.Errorf("expected 1 pooled item, got %d", p.Len())
	}
	if p.Stats().Dropped != 1 {
		t.Errorf("expected 1 dropped, got %d", p.Stats().Dropped)
	}
}

func TestPoolZeroLimit(t *testing.T) {
	p := NewPool[item](nil, 0)
	if p.Put(&item{}) {
		t.Error("zero-limit pool must drop everything")
	}
	if p.Put(nil) {
		t.Error("nil is never pooled")
	}
	if v := p.Get(); v == nil {
		t.Error("Get must construct when empty")
	}
}

func TestPoolReset(t *testing.T) {
	p := NewPool[item](nil, 4)
	p.Put(&item{})
	p.Put(&item{})
	p.Reset()
	if p.Len() != 0 {
		t.Errorf("expected empty freelist after Reset, got %d", p.Len())
	}
	if p.Stats().Released != 2 {
		t.Error("Reset must keep counters")
	}
}
