// Package keystore stores mnemonic phrases encrypted at rest.
//
// Each phrase is sealed with a password-derived key and kept as a JSON
// record under the "phrase/" prefix of a storage.DB. Records carry the
// phrase format and the fingerprint of its account key so they can be
// listed without the password.
package keystore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theekrystallee/hedera-mnemonic/internal/log"
	"github.com/theekrystallee/hedera-mnemonic/internal/storage"
	"github.com/theekrystallee/hedera-mnemonic/pkg/crypto"
	"github.com/theekrystallee/hedera-mnemonic/pkg/mnemonic"
)

const recordVersion = 1

var phrasePrefix = []byte("phrase/")

// Keystore errors.
var (
	ErrExists        = errors.New("phrase already exists")
	ErrNotFound      = errors.New("phrase not found")
	ErrInvalidName   = errors.New("invalid phrase name")
	ErrInvalidPhrase = errors.New("invalid phrase")
)

// Entry is the public metadata of a stored phrase.
type Entry struct {
	Name        string    `json:"name"`
	Format      string    `json:"format"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}

// record is the stored JSON form.
type record struct {
	Version int `json:"version"`
	Entry
	Sealed []byte `json:"sealed_phrase"`
}

// Keystore manages encrypted phrases in a key-value store.
type Keystore struct {
	db     *storage.PrefixDB
	params Params
	legacy *mnemonic.WordList
}

// New creates a keystore over db. The legacy word list is attached to
// loaded phrases and may be nil when only standard phrases are handled.
func New(db storage.DB, params Params, legacy *mnemonic.WordList) (*Keystore, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Keystore{
		db:     storage.NewPrefixDB(db, phrasePrefix),
		params: params,
		legacy: legacy,
	}, nil
}

func checkName(name string) error {
	if name == "" || len(name) > 64 || strings.ContainsAny(name, "/ \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Import validates m and stores it sealed under name.
func (ks *Keystore) Import(name string, m *mnemonic.Mnemonic, password []byte) (*Entry, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	exists, err := ks.db.Has([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", name, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrExists, name)
	}

	if res := m.Validate(); !res.OK() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPhrase, res.Status)
	}
	fp, err := fingerprint(m)
	if err != nil {
		return nil, err
	}

	done := log.Benchmark("keystore seal")
	sealed, err := seal([]byte(m.String()), password, []byte(name), ks.params)
	done()
	if err != nil {
		return nil, fmt.Errorf("seal phrase: %w", err)
	}

	rec := record{
		Version: recordVersion,
		Entry: Entry{
			Name:        name,
			Format:      m.Format().String(),
			Fingerprint: fp.String(),
			CreatedAt:   time.Now().UTC(),
		},
		Sealed: sealed,
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if err := ks.db.Put([]byte(name), data); err != nil {
		return nil, fmt.Errorf("store %q: %w", name, err)
	}

	log.Keystore.Info().
		Str("name", name).
		Str("format", rec.Format).
		Str("fingerprint", rec.Fingerprint).
		Msg("Imported phrase")
	return &rec.Entry, nil
}

// fingerprint identifies the account key a phrase controls.
func fingerprint(m *mnemonic.Mnemonic) (crypto.Fingerprint, error) {
	var (
		key *crypto.PrivateKey
		err error
	)
	if m.IsLegacy() {
		key, err = m.ToLegacyPrivateKey()
	} else {
		key, err = m.ToPrivateKey("")
	}
	if err != nil {
		return crypto.Fingerprint{}, fmt.Errorf("derive account key: %w", err)
	}
	defer key.Zero()
	return key.Fingerprint(), nil
}

// Load decrypts the phrase stored under name.
func (ks *Keystore) Load(name string, password []byte) (*mnemonic.Mnemonic, error) {
	rec, err := ks.get(name)
	if err != nil {
		return nil, err
	}
	phrase, err := open(rec.Sealed, password, []byte(name))
	if err != nil {
		log.Keystore.Warn().Str("name", name).Msg("Failed to unlock phrase")
		return nil, err
	}
	defer zero(phrase)
	return mnemonic.FromString(string(phrase), mnemonic.WithLegacyWordList(ks.legacy)), nil
}

// Info returns the metadata stored under name without decrypting it.
func (ks *Keystore) Info(name string) (*Entry, error) {
	rec, err := ks.get(name)
	if err != nil {
		return nil, err
	}
	return &rec.Entry, nil
}

// List returns the metadata of all stored phrases ordered by name.
func (ks *Keystore) List() ([]Entry, error) {
	var entries []Entry
	err := ks.db.ForEach(nil, func(key, value []byte) error {
		var rec record
		if err := json.Unmarshal(value, &rec); err != nil {
			return fmt.Errorf("decode record %q: %w", key, err)
		}
		entries = append(entries, rec.Entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the phrase stored under name.
func (ks *Keystore) Delete(name string) error {
	if _, err := ks.get(name); err != nil {
		return err
	}
	if err := ks.db.Delete([]byte(name)); err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	log.Keystore.Info().Str("name", name).Msg("Deleted phrase")
	return nil
}

func (ks *Keystore) get(name string) (*record, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	data, err := ks.db.Get([]byte(name))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode record %q: %w", name, err)
	}
	if rec.Version != recordVersion {
		return nil, fmt.Errorf("record %q: unsupported version %d", name, rec.Version)
	}
	return &rec, nil
}
