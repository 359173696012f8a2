package gitinfo

import (
	"strings"
	"testing"
)

func TestParsePorcelain_CleanBranch(t *testing.T) {
	out := []byte(strings.Join([]string{
		"# branch.oid 1234567890abcdef",
		"# branch.head main",
		"# branch.upstream origin/main",
		"# branch.ab +0 -0",
	}, "\n"))

	st := parsePorcelain(out)
	if st.Branch != "main" {
		t.Errorf("Branch = %q, want main", st.Branch)
	}
	if !st.Clean() {
		t.Errorf("want clean, got staged=%d unstaged=%d", st.Staged, st.Unstaged)
	}
	if st.Ahead != 0 || st.Behind != 0 {
		t.Errorf("ahead/behind = %d/%d, want 0/0", st.Ahead, st.Behind)
	}
}

func TestParsePorcelain_Changes(t *testing.T) {
	out := []byte(strings.Join([]string{
		"# branch.head feature",
		"1 M. N... 100644 100644 100644 aaaa bbbb staged.go",
		"1 .M N... 100644 100644 100644 aaaa bbbb unstaged.go",
		"1 MM N... 100644 100644 100644 aaaa bbbb both.go",
		"2 R. N... 100644 100644 100644 aaaa bbbb R100 new.go\told.go",
		"? untracked.go",
	}, "\n"))

	st := parsePorcelain(out)
	// staged: staged.go, both.go, new.go; unstaged: unstaged.go, both.go, untracked.go
	if st.Staged != 3 {
		t.Errorf("Staged = %d, want 3", st.Staged)
	}
	if st.Unstaged != 3 {
		t.Errorf("Unstaged = %d, want 3", st.Unstaged)
	}
	if st.Clean() {
		t.Error("Clean() = true with pending changes")
	}
}

func TestParsePorcelain_AheadBehind(t *testing.T) {
	out := []byte("# branch.head main\n# branch.ab +3 -2\n")
	st := parsePorcelain(out)
	if st.Ahead != 3 || st.Behind != 2 {
		t.Errorf("ahead/behind = %d/%d, want 3/2", st.Ahead, st.Behind)
	}
}

func TestParsePorcelain_Detached(t *testing.T) {
	out := []byte("# branch.oid abc123\n# branch.head (detached)\n")
	st := parsePorcelain(out)
	if st.Branch != "" {
		t.Errorf("Branch = %q, want empty for detached HEAD", st.Branch)
	}
}

func TestParsePorcelain_UnmergedCountsUnstaged(t *testing.T) {
	out := []byte(strings.Join([]string{
		"# branch.head main",
		"u UU N... 100644 100644 100644 100644 aaaa bbbb cccc conflict.go",
	}, "\n"))

	st := parsePorcelain(out)
	if st.Unstaged != 1 {
		t.Errorf("Unstaged = %d, want 1 for the unmerged path", st.Unstaged)
	}
	if st.Staged != 0 {
		t.Errorf("Staged = %d, want 0", st.Staged)
	}
}

func TestParsePorcelain_Empty(t *testing.T) {
	st := parsePorcelain(nil)
	if st.Branch != "" || !st.Clean() {
		t.Errorf("empty output should yield a zero state: %+v", st)
	}
}

func TestTruncateBranch(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"main", "main"},
		{"feature/x", "feature/x"},
		{"exactly12chr", "exactly12chr"},                // 12 chars, untouched
		{"feature/auth-rate-limit", "feature/au.."},     // keep 10, mark 2
		{"release/2026-08-26", "release/20.."},
	}
	for _, tt := range tests {
		if got := TruncateBranch(tt.name); got != tt.want {
			t.Errorf("TruncateBranch(%q) = %q, want %q", tt.name, got, tt.want)
		}
		if len(TruncateBranch(tt.name)) > 12 {
			t.Errorf("TruncateBranch(%q) longer than 12 display chars", tt.name)
		}
	}
}

func TestInspect_NotARepository(t *testing.T) {
	st := Inspect(t.TempDir())
	if st.Present {
		t.Errorf("Present = true outside a work tree: %+v", st)
	}
}

func TestInspect_MissingDirectory(t *testing.T) {
	st := Inspect("/nonexistent/path/for/sure")
	if st.Present {
		t.Errorf("Present = true for a missing directory: %+v", st)
	}
}
