package state

import "testing"

func TestTablePutGetArrayPart(t *testing.T) {
	tbl := newTable(0, 0)
	for i, v := range []luaValue{int64(10), int64(20), int64(30)} {
		if err := tbl.Put(int64(i+1), v); err != nil {
			t.Fatalf("Put(%d, %v): %v", i+1, v, err)
		}
	}
	if got := tbl.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for i, want := range []luaValue{int64(10), int64(20), int64(30)} {
		if got := tbl.Get(int64(i + 1)); got != want {
			t.Errorf("Get(%d) = %v, want %v", i+1, got, want)
		}
	}
}

func TestTableFloatKeyNormalizesToArraySlot(t *testing.T) {
	tbl := newTable(0, 0)
	if err := tbl.Put(int64(1), "x"); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Get(float64(1.0)); got != "x" {
		t.Errorf("Get(1.0) = %v, want %q (float key should normalize to int64)", got, "x")
	}
}

func TestTableMigratesContiguousKeysFromMap(t *testing.T) {
	tbl := newTable(0, 0)
	// Insert key 2 before key 1 exists: it must live in the hash part.
	if err := tbl.Put(int64(2), "b"); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Len(); got != 0 {
		t.Fatalf("Len() = %d before key 1 exists, want 0", got)
	}
	// Appending key 1 should drain key 2 out of the hash part too.
	if err := tbl.Put(int64(1), "a"); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Len(); got != 2 {
		t.Fatalf("Len() = %d after migration, want 2", got)
	}
	if got := tbl.Get(int64(2)); got != "b" {
		t.Errorf("Get(2) = %v, want migrated value %q", got, "b")
	}
}

func TestTableNilWriteToLastArraySlotShrinks(t *testing.T) {
	tbl := newTable(0, 0)
	for i, v := range []luaValue{"a", "b", "c"} {
		if err := tbl.Put(int64(i+1), v); err != nil {
			t.Fatal(err)
		}
	}
	if err := tbl.Put(int64(3), nil); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Len(); got != 2 {
		t.Fatalf("Len() = %d after nil-ing the last slot, want 2", got)
	}
}

func TestTableNilKeyErrors(t *testing.T) {
	tbl := newTable(0, 0)
	if err := tbl.Put(nil, "x"); err == nil {
		t.Fatal("Put(nil, x) should error")
	}
}

func TestTableNanKeyErrors(t *testing.T) {
	tbl := newTable(0, 0)
	nan := float64(0)
	nan = nan / nan // NaN without invoking math.NaN() directly is just clearer here
	if err := tbl.Put(nan, "x"); err == nil {
		t.Fatal("Put(NaN, x) should error")
	}
}

func TestTableDeleteHashKey(t *testing.T) {
	tbl := newTable(0, 0)
	if err := tbl.Put("k", "v"); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Get("k"); got != "v" {
		t.Fatalf("Get(k) = %v, want v", got)
	}
	if err := tbl.Put("k", nil); err != nil {
		t.Fatal(err)
	}
	if got := tbl.Get("k"); got != nil {
		t.Errorf("Get(k) after nil-write = %v, want nil", got)
	}
}
