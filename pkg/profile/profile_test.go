package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfilesValidate(t *testing.T) {
	f := Default()
	for name, p := range f.Profiles {
		if err := validate.Struct(&p); err != nil {
			t.Fatalf("built-in profile %q failed validation: %v", name, err)
		}
	}
}

func TestGetUnknownProfile(t *testing.T) {
	f := Default()
	if _, err := f.Get("does-not-exist"); err == nil {
		t.Fatalf("expected an error looking up an unknown profile")
	}
}

func TestGetKnownProfile(t *testing.T) {
	f := Default()
	p, err := f.Get("andnot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Variables != 3 || p.Cost != 5 {
		t.Fatalf("unexpected andnot profile: %+v", p)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	contents := `
profiles:
  custom:
    variables: 4
    cost: 6
    operators: [not, and, or]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, err := f.Get("custom")
	if err != nil {
		t.Fatalf("Get(custom): %v", err)
	}
	if p.Variables != 4 || p.Cost != 6 || len(p.Operators) != 3 {
		t.Fatalf("unexpected round-tripped profile: %+v", p)
	}
}

func TestLoadRejectsMissingOperators(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	contents := `
profiles:
  broken:
    variables: 2
    cost: 3
    operators: []
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected Load to reject a profile with no operators")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/profiles.yaml"); err == nil {
		t.Fatalf("expected Load to error on a missing file")
	}
}
