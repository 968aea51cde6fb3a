package catalog

import (
	"runtime"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/fine-structures/planar.SDK/goplanar"
	"github.com/fine-structures/planar.SDK/libplanar/graph"
)

/***

Catalog database format:

	gCatalogStateKey => CatalogState

	byte(1 + HexCount), CanonicForm ([]byte)  => SolutionDef
		...
	...

Solutions sort by hexagon count first and canonical form second, so a
catalog walk enumerates in (hexes, canonic) order and a Select over a hex
range is a single contiguous seek.

***/

var gCatalogStateKey = []byte{0x00, 0x00, 0x01}

// catalog is a db wrapper for a catalog of distinct planar graph solutions
type catalog struct {
	ctx        goplanar.CatalogContext
	readOnly   bool
	stateDirty bool
	state      graph.CatalogState
	db         *badger.DB
}

func OpenCatalog(ctx goplanar.CatalogContext, opts goplanar.CatalogOpts) (goplanar.Catalog, error) {

	if opts.MaxFaces <= 0 {
		opts.MaxFaces = goplanar.DefaultMaxFaces
	}

	cat := &catalog{
		ctx:      ctx,
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	var err error

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(goplanar.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, we consider the catalog ctx blocked until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = 2026
		cat.state.MinorVers = 1
		cat.state.MaxFaces = opts.MaxFaces
	}

	if err == nil {
		if cat.state.MajorVers != 2026 || cat.state.MinorVers != 1 {
			err = errors.New("Catalog version is incompatible")
		} else if opts.MaxFaces > cat.state.MaxFaces {
			err = errors.New("Catalog's MaxFaces is below the requested MaxFaces")
		}
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			item.Value(func(val []byte) error {
				return cat.state.Unmarshal(val)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() {
	if cat.stateDirty && !cat.readOnly {
		err := cat.db.Update(func(txn *badger.Txn) error {
			stateBuf, err := cat.state.Marshal()
			if err != nil {
				return err
			}
			return txn.Set(gCatalogStateKey, stateBuf)
		})
		if err != nil {
			panic(err)
		}
		cat.stateDirty = false
	}
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumSolutions(hexCount int32) int64 {
	if hexCount < 0 || int(hexCount) >= len(cat.state.NumSolutions) {
		return 0
	}
	return int64(cat.state.NumSolutions[hexCount])
}

func (cat *catalog) TotalSolutions() int64 {
	total := int64(0)
	for _, n := range cat.state.NumSolutions {
		total += int64(n)
	}
	return total
}

func (cat *catalog) tallySolution(hexCount int32) {
	for int(hexCount) >= len(cat.state.NumSolutions) {
		cat.state.NumSolutions = append(cat.state.NumSolutions, 0)
	}
	cat.state.NumSolutions[hexCount]++
	cat.stateDirty = true
}

// formSolutionKey appends the catalog key of the given solution: the hexagon
// count byte followed by the canonical form.  Hex count 0 maps to 0x01 so
// that every solution key sorts after gCatalogStateKey.
func formSolutionKey(key []byte, hexCount int32, canonic []byte) []byte {
	key = append(key, byte(1+hexCount))
	key = append(key, canonic...)
	return key
}

// TryAddSolution adds the given solution if it doesn't already exist.
//
// If true is returned, no isomorphic solution was present and sol was added.
//
// If false is returned, an isomorphic solution already exists in the catalog
// (or the catalog is read-only).
func (cat *catalog) TryAddSolution(sol *goplanar.Solution) bool {
	if cat.readOnly || len(sol.Canonic) == 0 {
		return false
	}

	var keyBuf [192]byte
	solKey := formSolutionKey(keyBuf[:0], sol.HexCount, sol.Canonic)

	// First see if we have this solution
	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err := txn.Get(solKey)
	if err == nil {
		return false
	} else if err != badger.ErrKeyNotFound {
		panic(err)
	}

	val, err := graph.DefFromSolution(sol).Marshal()
	if err != nil {
		panic(err)
	}
	if err = txn.Set(solKey, val); err != nil {
		panic(err)
	}
	if err = txn.Commit(); err != nil {
		panic(err)
	}

	cat.tallySolution(sol.HexCount)
	return true
}

// Select will call onHit() with all stored solutions matching the given
// search criteria, in (hex count, canonical form) order.
//
// Enumeration stops when there are no more matches.  The caller owns each
// Solution sent to onHit.
func (cat *catalog) Select(sel goplanar.SolutionSelector, onHit goplanar.OnSolutionHit) {
	minHex := uint32(1)
	if sel.MinHexes > 0 {
		minHex += uint32(sel.MinHexes)
	}
	if minHex > 0xFF {
		minHex = 0xFF
	}
	maxHex := uint32(1)
	if sel.MaxHexes > 0 {
		maxHex += uint32(sel.MaxHexes)
	}
	if maxHex > 0xFF {
		maxHex = 0xFF
	}
	minKey := [1]byte{byte(minHex)}

	txn := cat.db.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: true,
		PrefetchSize:   300,
	})
	defer it.Close()

	for it.Seek(minKey[:]); it.Valid(); it.Next() {
		curItem := it.Item()
		curKey := curItem.Key()

		// Stop when the hex count is over the max
		if uint32(curKey[0]) > maxHex {
			break
		}

		err := curItem.Value(func(val []byte) error {
			var def graph.SolutionDef
			if err := def.Unmarshal(val); err != nil {
				return err
			}
			sol, err := def.AsSolution()
			if err != nil {
				return err
			}
			if sel.SelectsSolution(sol) {
				onHit <- sol
			}
			return nil
		})
		if err != nil {
			panic(err)
		}
	}
}
