package otutable

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitGoogleStoragePath(t *testing.T) {
	bucket, object, err := SplitGoogleStoragePath("gs://seq-runs/namibia/emu-combined-abundance-tax_id-counts.tsv")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "seq-runs" || object != "namibia/emu-combined-abundance-tax_id-counts.tsv" {
		t.Errorf("Got bucket %q and object %q", bucket, object)
	}

	for _, bad := range []string{"gs://seq-runs", "gs://seq-runs/", "gs:///object"} {
		if _, _, err := SplitGoogleStoragePath(bad); err == nil {
			t.Errorf("%s: expected an error", bad)
		}
	}
}

func TestExistsLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counts.tsv")
	if err := os.WriteFile(path, []byte("tax_id\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()

	if ok, err := Exists(ctx, path, nil); err != nil || !ok {
		t.Errorf("Expected %s to exist (err: %v)", path, err)
	}
	if ok, err := Exists(ctx, filepath.Join(dir, "absent.tsv"), nil); err != nil || ok {
		t.Errorf("Expected absent.tsv not to exist (err: %v)", err)
	}
}

func TestGoogleStorageNeedsClient(t *testing.T) {
	ctx := context.Background()

	if _, err := Exists(ctx, "gs://bucket/object", nil); err == nil {
		t.Error("Exists: expected an error without a client")
	}
	if _, err := Open(ctx, "gs://bucket/object", nil); err == nil {
		t.Error("Open: expected an error without a client")
	}
	if _, err := Create(ctx, "gs://bucket/object", nil); err == nil {
		t.Error("Create: expected an error without a client")
	}
}

func TestCreateOpenLocal(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.tsv")

	w, err := Create(ctx, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("tax_id\tSoil_A\n")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	if string(buf[:n]) != "tax_id\tSoil_A\n" {
		t.Errorf("Got %q", buf[:n])
	}
}
