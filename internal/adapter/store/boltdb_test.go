package store

import (
	"path/filepath"
	"testing"

	"rearranger/config"
)

func openStore(t *testing.T, path string) *BoltStore {
	t.Helper()
	st, err := NewBoltStore(path)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func TestBoltStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordmap.db")

	st := openStore(t, path)
	if err := st.PutAll(map[string]string{"cat": "feline", "dog": "canine"}); err != nil {
		t.Fatal(err)
	}
	if err := st.PutAll(map[string]string{"owl": "bird", "dog": "hound"}); err != nil {
		t.Fatal(err)
	}
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}

	st = openStore(t, path)
	defer st.Close()

	entries, err := st.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries["cat"] != "feline" || entries["owl"] != "bird" {
		t.Errorf("unexpected entries %v", entries)
	}
	if entries["dog"] != "hound" {
		t.Errorf("expected later PutAll to overwrite, got %q", entries["dog"])
	}
	if n, _ := st.Count(); n != 3 {
		t.Errorf("expected 3 entries, got %d", n)
	}
}

func TestBoltStore_PrepareClearsOnClassificationChange(t *testing.T) {
	st := openStore(t, filepath.Join(t.TempDir(), "wordmap.db"))
	defer st.Close()

	cfg := config.DefaultConfig()
	result, err := st.Prepare(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !result.NeedsMigration {
		t.Error("expected a fresh store to need schema initialization")
	}
	if err := st.PutAll(map[string]string{"cat": "cow"}); err != nil {
		t.Fatal(err)
	}

	result, err = st.Prepare(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if result.NeedsRebuild || result.NeedsMigration {
		t.Errorf("expected no work for unchanged settings, got %+v", result)
	}

	changed := config.DefaultConfig()
	changed.Classify.Length = false
	result, err = st.Prepare(changed)
	if err != nil {
		t.Fatal(err)
	}
	if !result.NeedsRebuild {
		t.Fatal("expected rebuild after classification change")
	}
	if n, _ := st.Count(); n != 0 {
		t.Errorf("expected cleared store, got %d entries", n)
	}

	info, err := st.GetSchemaInfo()
	if err != nil {
		t.Fatal(err)
	}
	if info.Version != CurrentSchemaVersion || info.ConfigHash != ComputeConfigHash(changed) {
		t.Errorf("unexpected schema info %+v", info)
	}
}

func TestComputeConfigHash_IgnoresPolicy(t *testing.T) {
	a := config.DefaultConfig()
	b := config.DefaultConfig()
	b.Policy.MapWords = true
	b.Jabberwocky.Chance = 50

	if ComputeConfigHash(a) != ComputeConfigHash(b) {
		t.Error("policy changes should not invalidate stored word maps")
	}
}
