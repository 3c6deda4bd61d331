package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestHeadRevision(t *testing.T) {
	repoPath := t.TempDir()

	repo, err := git.PlainInit(repoPath, false)
	if err != nil {
		t.Fatalf("Failed to init repo: %v", err)
	}

	viewsDir := filepath.Join(repoPath, "src", "views", "home")
	if mkdirErr := os.MkdirAll(viewsDir, 0o750); mkdirErr != nil {
		t.Fatalf("Failed to create views dir: %v", mkdirErr)
	}
	if writeErr := os.WriteFile(filepath.Join(viewsDir, "main.js"), []byte("console.log(1)"), 0o600); writeErr != nil {
		t.Fatalf("Failed to write entry: %v", writeErr)
	}

	w, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, addErr := w.Add("."); addErr != nil {
		t.Fatalf("Failed to add files: %v", addErr)
	}
	commit, err := w.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test User", Email: "test@example.com"},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}

	// Lookup from a nested directory walks up to the repository root.
	got, err := HeadRevision(viewsDir)
	if err != nil {
		t.Fatalf("HeadRevision failed: %v", err)
	}
	if got != commit.String() {
		t.Errorf("HeadRevision = %s, want %s", got, commit.String())
	}
}

func TestHeadRevision_NoRepository(t *testing.T) {
	_, err := HeadRevision(t.TempDir())
	if !errors.Is(err, ErrNoRepository) {
		t.Fatalf("expected ErrNoRepository, got %v", err)
	}
}
