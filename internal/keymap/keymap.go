// Package keymap provides an xxhash-backed lookup from index labels to
// values. Labels are dynamically typed and not always comparable, so entries
// are keyed on a canonical string form of the label and bucketed by its
// 64-bit xxhash.
package keymap

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/egret-data/egret/internal/errors"
)

const (
	minCapacity  = 16
	loadFactor   = 0.75
	growthFactor = 2
)

type entry struct {
	key   string
	label any
	value any
}

// Map is a label -> value hash map with duplicate detection. It is built
// once and read many times; there is no delete.
type Map struct {
	buckets  [][]entry
	capacity int
	size     int
}

// New creates a map sized for an estimated number of labels.
func New(estimatedSize int) *Map {
	capacity := nextPowerOfTwo(estimatedSize * growthFactor)
	if capacity < minCapacity {
		capacity = minCapacity
	}
	return &Map{
		buckets:  make([][]entry, capacity),
		capacity: capacity,
	}
}

// KeyOf returns the canonical string form a label is hashed under.
func KeyOf(label any) string {
	return fmt.Sprintf("%T:%v", label, label)
}

// Put adds a label -> value entry. A label already present fails with
// DuplicateKey; op names the operation building the map.
func (m *Map) Put(op string, label, value any) error {
	key := KeyOf(label)
	idx := m.bucketIndex(key, m.capacity)
	for _, e := range m.buckets[idx] {
		if e.key == key {
			return errors.NewDuplicateKeyError(op, label)
		}
	}
	m.buckets[idx] = append(m.buckets[idx], entry{key: key, label: label, value: value})
	m.size++

	if float64(m.size) > float64(m.capacity)*loadFactor {
		m.grow()
	}
	return nil
}

// Get retrieves the value stored under label.
func (m *Map) Get(label any) (any, bool) {
	key := KeyOf(label)
	idx := m.bucketIndex(key, m.capacity)
	for _, e := range m.buckets[idx] {
		if e.key == key {
			return e.value, true
		}
	}
	return nil, false
}

// Len returns the number of stored entries.
func (m *Map) Len() int { return m.size }

func (m *Map) bucketIndex(key string, capacity int) int {
	hash := xxhash.Sum64String(key)
	return int(hash % uint64(capacity))
}

func (m *Map) grow() {
	newCapacity := m.capacity * growthFactor
	newBuckets := make([][]entry, newCapacity)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			idx := m.bucketIndex(e.key, newCapacity)
			newBuckets[idx] = append(newBuckets[idx], e)
		}
	}
	m.buckets = newBuckets
	m.capacity = newCapacity
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
