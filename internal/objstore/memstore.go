// Package objstore catalogs decoded armor objects in memory, with optional
// SQLite persistence. Objects are deduplicated by payload digest; the store
// never interprets the DER payloads it holds.
package objstore

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/sensiblebit/pemscan"
)

// Record holds one cataloged object and its provenance.
type Record struct {
	SHA256    string // hex digest of the payload, the dedup key
	Kind      pemscan.Kind
	Length    int
	DER       []byte
	Source    string // path or "(inline)" that contributed the object
	FirstSeen time.Time
}

// MemStore is an in-memory catalog of decoded objects, deduplicated by
// payload digest. Insertion order is preserved for listing.
type MemStore struct {
	byDigest map[string]*Record
	order    []string
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{byDigest: make(map[string]*Record)}
}

// Add catalogs one decoded object. Objects already present (same payload
// digest) are skipped, keeping their original source attribution.
func (s *MemStore) Add(obj *pemscan.Object, source string) error {
	if obj == nil {
		return errors.New("object is nil")
	}
	sum := sha256.Sum256(obj.DER)
	digest := hex.EncodeToString(sum[:])

	if _, exists := s.byDigest[digest]; exists {
		slog.Debug("skipping duplicate object", "sha256", digest, "source", source)
		return nil
	}

	s.byDigest[digest] = &Record{
		SHA256:    digest,
		Kind:      obj.Kind,
		Length:    obj.Len(),
		DER:       obj.DER,
		Source:    source,
		FirstSeen: time.Now().UTC(),
	}
	s.order = append(s.order, digest)
	return nil
}

// AddSet catalogs every object of a load result under one source.
func (s *MemStore) AddSet(set *pemscan.Set, source string) error {
	for _, obj := range set.Objects() {
		if err := s.Add(obj, source); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the record with the given hex digest, or nil.
func (s *MemStore) Get(digest string) *Record {
	return s.byDigest[digest]
}

// All returns every record in insertion order.
func (s *MemStore) All() []*Record {
	out := make([]*Record, 0, len(s.order))
	for _, digest := range s.order {
		out = append(out, s.byDigest[digest])
	}
	return out
}

// Len returns the number of cataloged records.
func (s *MemStore) Len() int {
	return len(s.order)
}

// Summary holds aggregate counts of cataloged objects.
type Summary struct {
	Certificates int
	PrivateKeys  int
	RSAKeys      int
	TotalBytes   int
}

// Summarize returns aggregate counts across the catalog.
func (s *MemStore) Summarize() Summary {
	var sum Summary
	for _, rec := range s.byDigest {
		switch rec.Kind {
		case pemscan.KindCertificate:
			sum.Certificates++
		case pemscan.KindPrivateKey:
			sum.PrivateKeys++
		case pemscan.KindRSAPrivateKey:
			sum.RSAKeys++
		}
		sum.TotalBytes += rec.Length
	}
	return sum
}

// Reset clears the catalog.
func (s *MemStore) Reset() {
	s.byDigest = make(map[string]*Record)
	s.order = nil
}
