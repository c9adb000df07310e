package storage

import (
	"errors"
	"fmt"
	"testing"
)

func TestPrefixDB_Isolation(t *testing.T) {
	inner := NewMemory()
	phrases := NewPrefixDB(inner, []byte("phrase/"))
	meta := NewPrefixDB(inner, []byte("meta/"))

	if err := phrases.Put([]byte("main"), []byte("a")); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := meta.Put([]byte("main"), []byte("b")); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := phrases.Get([]byte("main"))
	if err != nil || string(got) != "a" {
		t.Fatalf("phrases.Get() = %q, %v; want \"a\"", got, err)
	}
	got, err = inner.Get([]byte("meta/main"))
	if err != nil || string(got) != "b" {
		t.Fatalf("inner.Get(meta/main) = %q, %v; want \"b\"", got, err)
	}

	if ok, _ := phrases.Has([]byte("meta/main")); ok {
		t.Error("prefixed view should not see raw keys of another namespace")
	}

	if err := phrases.Delete([]byte("main")); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := phrases.Get([]byte("main")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
}

func TestPrefixDB_ForEachStripsPrefix(t *testing.T) {
	inner := NewMemory()
	db := NewPrefixDB(inner, []byte("phrase/"))
	inner.Put([]byte("phrasebook"), []byte("not ours"))
	db.Put([]byte("cold"), []byte("1"))
	db.Put([]byte("hot"), []byte("2"))

	var keys []string
	if err := db.ForEach(nil, func(key, _ []byte) error {
		keys = append(keys, string(key))
		return nil
	}); err != nil {
		t.Fatalf("ForEach() error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "cold" || keys[1] != "hot" {
		t.Fatalf("ForEach keys = %v, want [cold hot]", keys)
	}
}

func TestPrefixDB_ForEachStopEarly(t *testing.T) {
	db := NewPrefixDB(NewMemory(), []byte("p/"))
	for i := 0; i < 10; i++ {
		db.Put([]byte(fmt.Sprintf("k%d", i)), []byte("v"))
	}

	count := 0
	stopErr := errors.New("stop")
	err := db.ForEach(nil, func(key, value []byte) error {
		count++
		if count >= 3 {
			return stopErr
		}
		return nil
	})
	if err != stopErr {
		t.Fatalf("ForEach err = %v, want stopErr", err)
	}
	if count != 3 {
		t.Fatalf("ForEach called %d times, want 3", count)
	}
}

func TestPrefixDB_DeleteAll(t *testing.T) {
	inner := NewMemory()
	a := NewPrefixDB(inner, []byte("a/"))
	b := NewPrefixDB(inner, []byte("b/"))

	a.Put([]byte("k1"), []byte("v1"))
	a.Put([]byte("k2"), []byte("v2"))
	b.Put([]byte("k1"), []byte("other"))

	if err := a.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll() error: %v", err)
	}
	for _, k := range []string{"k1", "k2"} {
		if ok, _ := a.Has([]byte(k)); ok {
			t.Errorf("a still has %q after DeleteAll()", k)
		}
	}
	if got, err := b.Get([]byte("k1")); err != nil || string(got) != "other" {
		t.Errorf("b.Get() = %q, %v; want \"other\"", got, err)
	}
	if err := NewPrefixDB(inner, []byte("empty/")).DeleteAll(); err != nil {
		t.Errorf("DeleteAll() on empty namespace error: %v", err)
	}
}
