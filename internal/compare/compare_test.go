package compare

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSnapshot(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestSnapshotsIdentical(t *testing.T) {
	dir := t.TempDir()
	a := writeSnapshot(t, dir, "a.txt", "not(x0) 1\nand(x0,x1) 2\n")
	b := writeSnapshot(t, dir, "b.txt", "not(x0) 1\nand(x0,x1) 2\n")

	report, err := Snapshots(a, b)
	if err != nil {
		t.Fatalf("Snapshots: %v", err)
	}
	if !report.Equal {
		t.Fatalf("expected identical snapshots to compare equal")
	}
}

func TestSnapshotsDiffer(t *testing.T) {
	dir := t.TempDir()
	a := writeSnapshot(t, dir, "a.txt", "not(x0) 1\n")
	b := writeSnapshot(t, dir, "b.txt", "not(x0) 1\nand(x0,x1) 2\n")

	report, err := Snapshots(a, b)
	if err != nil {
		t.Fatalf("Snapshots: %v", err)
	}
	if report.Equal {
		t.Fatalf("expected differing snapshots to compare unequal")
	}
	if report.Text == "" {
		t.Fatalf("expected a non-empty unified diff")
	}
}
