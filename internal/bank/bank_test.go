package bank

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeBank(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write bank file: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "behavioral.json", `[
		{"id": "q1", "question": "Tell me about a conflict you resolved.", "category": "Teamwork"},
		{"id": 2, "text": "Describe a failed project.", "timeLimit": "240"}
	]`)

	raws, err := Load(Path(dir, "behavioral"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(raws))
	}
	if raws[0].ID != "q1" || raws[0].Prompt != "Tell me about a conflict you resolved." {
		t.Fatalf("first question = %+v", raws[0])
	}
	if raws[1].ID != "2" || raws[1].Prompt != "Describe a failed project." || raws[1].TimeLimit != 240 {
		t.Fatalf("second question = %+v", raws[1])
	}
}

func TestLoadEmptyBank(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "empty.json", `[]`)
	_, err := Load(Path(dir, "empty"))
	if err == nil || !strings.Contains(err.Error(), "question bank is empty") {
		t.Fatalf("expected empty-bank error, got %v", err)
	}
}

func TestLoadMalformedBank(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "bad.json", `{not json`)
	if _, err := Load(Path(dir, "bad")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadForTypeMissingFile(t *testing.T) {
	raws, err := LoadForType(t.TempDir(), "behavioral")
	if err != nil {
		t.Fatalf("missing bank should not error: %v", err)
	}
	if raws != nil {
		t.Fatalf("expected nil for missing bank, got %+v", raws)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "technical.json", `[{"question": "x"}]`)
	writeBank(t, dir, "behavioral.json", `[{"question": "y"}]`)
	writeBank(t, dir, "notes.txt", `ignored`)
	if err := os.Mkdir(filepath.Join(dir, "archive.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	names, err := List(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"behavioral", "technical"}) {
		t.Fatalf("names = %v", names)
	}
}

func TestListMissingDir(t *testing.T) {
	names, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
	if names != nil {
		t.Fatalf("expected nil, got %v", names)
	}
}
