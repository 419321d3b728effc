package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/andy/rolodex/internal/book"
	"github.com/andy/rolodex/internal/domain"
)

func sampleBook(t *testing.T) *book.AddressBook {
	t.Helper()
	b := book.New()

	john, err := domain.NewRecord("John")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	for _, p := range []string{"1234567890", "5555555555", "1234567890"} {
		if err := john.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q): %v", p, err)
		}
	}
	if err := john.SetBirthday("24.12.1990"); err != nil {
		t.Fatalf("SetBirthday: %v", err)
	}
	b.AddRecord(john)

	jane, err := domain.NewRecord("Jane")
	if err != nil {
		t.Fatalf("NewRecord: %v", err)
	}
	if err := jane.AddPhone("0987654321"); err != nil {
		t.Fatalf("AddPhone: %v", err)
	}
	b.AddRecord(jane)

	return b
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := sampleBook(t)

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	restored, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if restored.Len() != original.Len() {
		t.Fatalf("restored %d records, want %d", restored.Len(), original.Len())
	}

	origRecs := original.Records()
	restRecs := restored.Records()
	for i := range origRecs {
		if restRecs[i].Name != origRecs[i].Name {
			t.Errorf("record %d name = %q, want %q (order preserved)", i, restRecs[i].Name, origRecs[i].Name)
		}
		if len(restRecs[i].Phones) != len(origRecs[i].Phones) {
			t.Fatalf("record %q: %d phones, want %d (duplicates preserved)",
				origRecs[i].Name, len(restRecs[i].Phones), len(origRecs[i].Phones))
		}
		for j := range origRecs[i].Phones {
			if restRecs[i].Phones[j] != origRecs[i].Phones[j] {
				t.Errorf("record %q phone %d = %q, want %q", origRecs[i].Name, j,
					restRecs[i].Phones[j], origRecs[i].Phones[j])
			}
		}
	}

	john, err := restored.Find("John")
	if err != nil || john == nil {
		t.Fatalf("Find(John): %v, %v", john, err)
	}
	if john.Birthday == nil || john.Birthday.String() != "24.12.1990" {
		t.Errorf("birthday = %v, want 24.12.1990", john.Birthday)
	}
	jane, err := restored.Find("Jane")
	if err != nil || jane == nil {
		t.Fatalf("Find(Jane): %v, %v", jane, err)
	}
	if jane.Birthday != nil {
		t.Errorf("Jane birthday = %v, want unset", jane.Birthday)
	}
}

func TestDecodeCorruptData(t *testing.T) {
	if _, err := Decode([]byte("definitely not a gob stream")); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Decode(garbage) = %v, want ErrCorrupt", err)
	}
}

func TestFileStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.gob")
	store := NewFileStore(path)

	if err := store.Save(sampleBook(t), ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored, err := store.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Len() != 2 {
		t.Errorf("restored %d records, want 2", restored.Len())
	}
}

func TestFileStoreExplicitPathOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "default.gob"))
	other := filepath.Join(dir, "backup.gob")

	if err := store.Save(sampleBook(t), other); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(store.DefaultPath); !os.IsNotExist(err) {
		t.Errorf("default path written, want only the explicit path")
	}

	restored, err := store.Load(other)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Len() != 2 {
		t.Errorf("restored %d records, want 2", restored.Len())
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.gob"))

	b, err := store.Load("")
	if err != nil {
		t.Fatalf("Load(missing) = %v, want empty book without error", err)
	}
	if b.Len() != 0 {
		t.Errorf("Load(missing) = %d records, want 0", b.Len())
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gob")
	if err := os.WriteFile(path, []byte{0x01, 0x02, 0x03}, 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store := NewFileStore(path)
	if _, err := store.Load(""); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Load(corrupt) = %v, want ErrCorrupt", err)
	}
}
