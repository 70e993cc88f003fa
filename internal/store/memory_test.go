package store

import (
	"sync"
	"testing"
)

func TestMemory_GetPut(t *testing.T) {
	s := NewMemory[string]()

	if _, ok := s.Get("missing"); ok {
		t.Error("expected missing key to report !ok")
	}

	s.Put("a", "one")
	v, ok := s.Get("a")
	if !ok || v != "one" {
		t.Errorf("expected (one, true), got (%s, %v)", v, ok)
	}

	s.Put("a", "two")
	v, _ = s.Get("a")
	if v != "two" {
		t.Errorf("Put should replace, got %s", v)
	}
}

func TestMemory_Delete(t *testing.T) {
	s := NewMemory[int]()
	s.Put("a", 1)
	s.Delete("a")
	if _, ok := s.Get("a"); ok {
		t.Error("expected deleted key to be gone")
	}

	// Deleting a missing key is a no-op
	s.Delete("never-existed")
}

func TestMemory_List(t *testing.T) {
	s := NewMemory[int]()
	for i, id := range []string{"a", "b", "c"} {
		s.Put(id, i)
	}
	if got := len(s.List()); got != 3 {
		t.Errorf("expected 3 values, got %d", got)
	}
}

func TestMemory_Concurrent(t *testing.T) {
	s := NewMemory[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Put("key", n)
		}(i)
		go func() {
			defer wg.Done()
			s.Get("key")
		}()
	}
	wg.Wait()
}
