package libplanar

import (
	"github.com/arcspace/go-arc-sdk/stdlib/symbol"
	"github.com/arcspace/go-arc-sdk/stdlib/symbol/memory_table"
	"github.com/dgraph-io/badger/v3"

	"github.com/fine-structures/planar.SDK/goplanar"
)

// NewMemorySet returns a CanonicSet backed by an in-process symbol table,
// the right choice for a single enumeration run.
func NewMemorySet() goplanar.CanonicSet {
	return &memorySet{}
}

type memorySet struct {
	table symbol.Table
}

func (set *memorySet) autoOpen() {
	if set.table == nil {
		tableOpts := memory_table.DefaultOpts()
		table, err := tableOpts.CreateTable()
		if err != nil {
			panic(err)
		}
		set.table = table
	}
}

func (set *memorySet) TryAdd(sol *goplanar.Solution) bool {
	set.autoOpen()
	if set.table.GetSymbolID(sol.Canonic, false) != 0 {
		return false
	}
	set.table.GetSymbolID(sol.Canonic, true)
	return true
}

func (set *memorySet) Close() {
	if set.table != nil {
		set.table.Close()
		set.table = nil
	}
}

// NewLsmSet returns a CanonicSet backed by an in-memory LSM store, which
// stays efficient when the set outgrows what a flat table handles well.
func NewLsmSet() goplanar.CanonicSet {
	return &lsmSet{}
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) TryAdd(sol *goplanar.Solution) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(sol.Canonic)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(sol.Canonic, nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
