package keystore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/theekrystallee/hedera-mnemonic/internal/storage"
	"github.com/theekrystallee/hedera-mnemonic/pkg/mnemonic"
)

const zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art"

func newTestKeystore(t *testing.T, db storage.DB) (*Keystore, *mnemonic.WordList) {
	t.Helper()
	words := make([]string, 4096)
	for i := range words {
		words[i] = fmt.Sprintf("word%04d", i)
	}
	wl, err := mnemonic.NewWordList(words)
	if err != nil {
		t.Fatalf("NewWordList() error: %v", err)
	}
	ks, err := New(db, testParams, wl)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return ks, wl
}

func TestImportLoad_Standard(t *testing.T) {
	ks, _ := newTestKeystore(t, storage.NewMemory())
	m := mnemonic.FromString(zeroPhrase)

	entry, err := ks.Import("main", m, []byte("pw"))
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if entry.Name != "main" || entry.Format != "standard" {
		t.Errorf("entry = %+v", entry)
	}

	key, err := m.ToPrivateKey("")
	if err != nil {
		t.Fatalf("ToPrivateKey() error: %v", err)
	}
	if entry.Fingerprint != key.Fingerprint().String() {
		t.Errorf("fingerprint = %s, want %s", entry.Fingerprint, key.Fingerprint())
	}

	loaded, err := ks.Load("main", []byte("pw"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.String() != zeroPhrase {
		t.Errorf("Load() = %q, want %q", loaded.String(), zeroPhrase)
	}

	if _, err := ks.Load("main", []byte("nope")); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Load() wrong password error = %v, want ErrWrongPassword", err)
	}
}

func TestImportLoad_Legacy(t *testing.T) {
	ks, wl := newTestKeystore(t, storage.NewMemory())
	words, err := mnemonic.EncodeLegacy(make([]byte, mnemonic.EntropySize), wl)
	if err != nil {
		t.Fatalf("EncodeLegacy() error: %v", err)
	}
	m := mnemonic.FromWords(words, mnemonic.WithLegacyWordList(wl))

	entry, err := ks.Import("old", m, []byte("pw"))
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if entry.Format != "legacy" {
		t.Errorf("Format = %q, want legacy", entry.Format)
	}

	loaded, err := ks.Load("old", []byte("pw"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !loaded.IsLegacy() {
		t.Fatal("loaded phrase should be legacy")
	}
	// The keystore re-attaches its legacy list, so the key is recoverable.
	key, err := loaded.ToLegacyPrivateKey()
	if err != nil {
		t.Fatalf("ToLegacyPrivateKey() error: %v", err)
	}
	if key.Fingerprint().String() != entry.Fingerprint {
		t.Error("loaded legacy key does not match stored fingerprint")
	}
}

func TestImport_Rejects(t *testing.T) {
	ks, _ := newTestKeystore(t, storage.NewMemory())
	good := mnemonic.FromString(zeroPhrase)

	if _, err := ks.Import("main", good, []byte("pw")); err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if _, err := ks.Import("main", good, []byte("pw")); !errors.Is(err, ErrExists) {
		t.Errorf("duplicate Import() error = %v, want ErrExists", err)
	}

	for _, name := range []string{"", "a/b", "has space"} {
		if _, err := ks.Import(name, good, []byte("pw")); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Import(%q) error = %v, want ErrInvalidName", name, err)
		}
	}

	badChecksum := mnemonic.FromString(zeroPhrase[:len(zeroPhrase)-len("art")] + "abandon")
	if _, err := ks.Import("bad", badChecksum, []byte("pw")); !errors.Is(err, ErrInvalidPhrase) {
		t.Errorf("Import() bad checksum error = %v, want ErrInvalidPhrase", err)
	}
	if ok, _ := ks.db.Has([]byte("bad")); ok {
		t.Error("rejected phrase should not be stored")
	}
}

func TestListDelete(t *testing.T) {
	ks, _ := newTestKeystore(t, storage.NewMemory())
	m := mnemonic.FromString(zeroPhrase)
	for _, name := range []string{"cold", "alpha", "hot"} {
		if _, err := ks.Import(name, m, []byte("pw")); err != nil {
			t.Fatalf("Import(%q) error: %v", name, err)
		}
	}

	entries, err := ks.List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"alpha", "cold", "hot"}
	if len(entries) != len(want) {
		t.Fatalf("List() returned %d entries, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Name, want[i])
		}
	}

	if err := ks.Delete("cold"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := ks.Info("cold"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Info() after Delete() error = %v, want ErrNotFound", err)
	}
	if err := ks.Delete("cold"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
	if _, err := ks.Load("missing", []byte("pw")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() missing error = %v, want ErrNotFound", err)
	}
}

func TestKeystore_BadgerPersistence(t *testing.T) {
	dir := t.TempDir()

	db1, err := storage.NewBadger(dir)
	if err != nil {
		t.Fatalf("NewBadger() error: %v", err)
	}
	ks1, _ := newTestKeystore(t, db1)
	if _, err := ks1.Import("main", mnemonic.FromString(zeroPhrase), []byte("pw")); err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	db1.Close()

	db2, err := storage.NewBadger(dir)
	if err != nil {
		t.Fatalf("NewBadger() reopen error: %v", err)
	}
	defer db2.Close()
	ks2, _ := newTestKeystore(t, db2)

	m, err := ks2.Load("main", []byte("pw"))
	if err != nil {
		t.Fatalf("Load() after reopen error: %v", err)
	}
	if m.String() != zeroPhrase {
		t.Errorf("Load() = %q, want %q", m.String(), zeroPhrase)
	}
}

func TestNew_RejectsBadParams(t *testing.T) {
	if _, err := New(storage.NewMemory(), Params{}, nil); err == nil {
		t.Error("New() with zero params should fail")
	}
}
