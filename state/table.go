package state

import (
	"math"

	"github.com/fanlia/luaz/luaerr"
)

// Table is Lua's hybrid associative container: a dense array part for the
// contiguous integer keys 1..len(arr), and a hash part for everything
// else, with array-part contiguity maintained by the migration rules
// documented on Put below.
type Table struct {
	arr []luaValue
	m   map[luaValue]luaValue
}

func newTable(nArr, nRec int) *Table {
	t := &Table{}
	if nArr > 0 {
		t.arr = make([]luaValue, 0, nArr)
	}
	if nRec > 0 {
		t.m = make(map[luaValue]luaValue, nRec)
	}
	return t
}

// Len returns the array part's length. Lua's "#t" only guarantees some
// border (n where t[n]~=nil and t[n+1]==nil), and the array part's length
// is always a valid border as long as callers only ever reach it via
// Put/Get (no raw mutation of holes in the array part).
func (t *Table) Len() int {
	return len(t.arr)
}

func (t *Table) Get(k luaValue) luaValue {
	k = normalizeKey(k)
	if i, ok := k.(int64); ok && i >= 1 && int(i) <= len(t.arr) {
		return t.arr[i-1]
	}
	if t.m == nil {
		return nil
	}
	return t.m[k]
}

// Put writes k=v following the array/hash migration rules: an integer key
// one past the end of arr appends (and then drains any contiguous run
// waiting in the hash part); writing nil to the last array slot shrinks
// arr past the new trailing nils; anything else falls through to the hash
// part, where a nil value deletes the key.
func (t *Table) Put(k, v luaValue) error {
	if k == nil {
		return luaerr.New(luaerr.TableIndexIsNil, "table index is nil")
	}
	if f, ok := k.(float64); ok && math.IsNaN(f) {
		return luaerr.New(luaerr.TableIndexIsNan, "table index is NaN")
	}
	k = normalizeKey(k)

	if i, ok := k.(int64); ok && i >= 1 {
		n := int64(len(t.arr))
		switch {
		case i <= n:
			t.arr[i-1] = v
			if v == nil && i == n {
				t.shrink()
			}
			return nil
		case i == n+1:
			if v == nil {
				return nil
			}
			t.arr = append(t.arr, v)
			t.migrateFromMap()
			return nil
		}
	}

	if v == nil {
		if t.m != nil {
			delete(t.m, k)
		}
		return nil
	}
	if t.m == nil {
		t.m = make(map[luaValue]luaValue, 8)
	}
	t.m[k] = v
	return nil
}

// migrateFromMap drains successive integer keys out of the hash part into
// the array part after an append, so #t stays cheap to compute.
func (t *Table) migrateFromMap() {
	if t.m == nil {
		return
	}
	for {
		next := int64(len(t.arr) + 1)
		v, ok := t.m[next]
		if !ok {
			break
		}
		t.arr = append(t.arr, v)
		delete(t.m, next)
	}
}

// shrink trims trailing nils off the array part after a nil write to its
// last slot.
func (t *Table) shrink() {
	n := len(t.arr)
	for n > 0 && t.arr[n-1] == nil {
		n--
	}
	t.arr = t.arr[:n]
}
