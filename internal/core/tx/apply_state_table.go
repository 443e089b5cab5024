package tx

import (
	"bytes"
	"encoding/hex"
	"errors"
	"sort"
	"strings"

	"github.com/LeJamon/goMemeLedger/internal/core/ledger/keylet"
	"github.com/LeJamon/goMemeLedger/internal/core/tx/sle"
)

var (
	ErrEntryExists   = errors.New("entry already exists")
	ErrEntryNotFound = errors.New("entry not found")
)

// Action represents the type of modification to a ledger entry
type Action int

const (
	// ActionCache means the entry was read but not modified
	ActionCache Action = iota
	// ActionInsert means a new entry was created
	ActionInsert
	// ActionModify means an existing entry was modified
	ActionModify
	// ActionErase means an entry was deleted
	ActionErase
)

// TrackedEntry represents a ledger entry being tracked for changes
type TrackedEntry struct {
	Action   Action
	Original []byte // Original state (nil for inserts)
	Current  []byte // Current state
}

// ApplyStateTable stages every write of one transaction on top of a read-only
// base. Nothing reaches the base until the caller commits the changes
// returned by Apply; dropping the table discards them.
type ApplyStateTable struct {
	base  sle.ReadView
	items map[[32]byte]*TrackedEntry
}

// NewApplyStateTable creates a new ApplyStateTable wrapping the given base view
func NewApplyStateTable(base sle.ReadView) *ApplyStateTable {
	return &ApplyStateTable{
		base:  base,
		items: make(map[[32]byte]*TrackedEntry),
	}
}

// Read reads a ledger entry, tracking it as cached
func (t *ApplyStateTable) Read(k keylet.Keylet) ([]byte, error) {
	if entry, exists := t.items[k.Key]; exists {
		if entry.Action == ActionErase {
			return nil, nil
		}
		return entry.Current, nil
	}

	data, err := t.base.Read(k)
	if err != nil {
		return nil, err
	}

	// Only track entries that exist in the base
	if data != nil {
		t.items[k.Key] = &TrackedEntry{
			Action:   ActionCache,
			Original: data,
			Current:  data,
		}
	}

	return data, nil
}

// Exists checks if an entry exists
func (t *ApplyStateTable) Exists(k keylet.Keylet) (bool, error) {
	if entry, exists := t.items[k.Key]; exists {
		return entry.Action != ActionErase, nil
	}
	return t.base.Exists(k)
}

// Insert adds a new entry
func (t *ApplyStateTable) Insert(k keylet.Keylet, data []byte) error {
	if entry, exists := t.items[k.Key]; exists {
		if entry.Action != ActionErase {
			return ErrEntryExists
		}
		// Re-inserting a deleted entry becomes a modify
		entry.Action = ActionModify
		entry.Current = data
		return nil
	}

	exists, err := t.base.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return ErrEntryExists
	}

	t.items[k.Key] = &TrackedEntry{
		Action:  ActionInsert,
		Current: data,
	}
	return nil
}

// Update modifies an existing entry
func (t *ApplyStateTable) Update(k keylet.Keylet, data []byte) error {
	if entry, exists := t.items[k.Key]; exists {
		if entry.Action == ActionErase {
			return ErrEntryNotFound
		}
		if entry.Action == ActionCache {
			entry.Action = ActionModify
		}
		// For insert, keep it as insert with new data
		entry.Current = data
		return nil
	}

	original, err := t.base.Read(k)
	if err != nil {
		return err
	}
	if original == nil {
		return ErrEntryNotFound
	}

	t.items[k.Key] = &TrackedEntry{
		Action:   ActionModify,
		Original: original,
		Current:  data,
	}
	return nil
}

// Erase removes an entry
func (t *ApplyStateTable) Erase(k keylet.Keylet) error {
	if entry, exists := t.items[k.Key]; exists {
		if entry.Action == ActionErase {
			return ErrEntryNotFound
		}
		if entry.Action == ActionInsert {
			// Inserting then deleting = no change
			delete(t.items, k.Key)
			return nil
		}
		entry.Action = ActionErase
		return nil
	}

	original, err := t.base.Read(k)
	if err != nil {
		return err
	}
	if original == nil {
		return ErrEntryNotFound
	}

	t.items[k.Key] = &TrackedEntry{
		Action:   ActionErase,
		Original: original,
		Current:  original,
	}
	return nil
}

// Apply returns the staged writes in key order together with the metadata
// describing them. The base is not touched.
func (t *ApplyStateTable) Apply() ([]sle.Change, []AffectedNode) {
	keys := make([][32]byte, 0, len(t.items))
	for key := range t.items {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})

	var (
		changes []sle.Change
		nodes   []AffectedNode
	)
	for _, key := range keys {
		entry := t.items[key]
		var nodeType string
		switch entry.Action {
		case ActionCache:
			continue
		case ActionInsert:
			nodeType = "CreatedNode"
			changes = append(changes, sle.Change{Key: key, Data: entry.Current})
		case ActionModify:
			if bytes.Equal(entry.Original, entry.Current) {
				continue
			}
			nodeType = "ModifiedNode"
			changes = append(changes, sle.Change{Key: key, Data: entry.Current})
		case ActionErase:
			nodeType = "DeletedNode"
			changes = append(changes, sle.Change{Key: key})
		}

		data := entry.Current
		if data == nil {
			data = entry.Original
		}
		entryType, _ := sle.GetEntryType(data)
		nodes = append(nodes, AffectedNode{
			NodeType:        nodeType,
			LedgerEntryType: entryType.String(),
			LedgerIndex:     strings.ToUpper(hex.EncodeToString(key[:])),
		})
	}
	return changes, nodes
}
