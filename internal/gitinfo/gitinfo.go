// Package gitinfo inspects the version-control state of a working directory.
//
// Every query is path-scoped with `git -C`; the process working directory is
// never changed, so concurrent renders inside one host process stay safe.
package gitinfo

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"
)

// State describes the git status of a directory. A zero State
// (Present false) means the directory is not inside a work tree.
type State struct {
	Present  bool
	Branch   string // full name; use DisplayBranch for the truncated form
	Staged   int
	Unstaged int
	Ahead    int
	Behind   int
}

// Clean reports whether there are no staged or unstaged changes.
// Ahead/behind counts do not affect cleanliness.
func (s State) Clean() bool {
	return s.Staged == 0 && s.Unstaged == 0
}

const (
	branchDisplayMax = 12
	branchKeep       = 10
	branchEllipsis   = ".."
)

// DisplayBranch returns the branch name truncated for display. Names longer
// than 12 characters keep the first 10 plus a two-character marker.
func (s State) DisplayBranch() string {
	return TruncateBranch(s.Branch)
}

// TruncateBranch shortens a branch name to at most 12 display characters.
func TruncateBranch(name string) string {
	if len(name) <= branchDisplayMax {
		return name
	}
	return name[:branchKeep] + branchEllipsis
}

// Inspect queries git for the state of dir. Any failure (not a repository,
// inaccessible path, git missing) yields State{Present: false}; inspection
// problems never abort a render.
func Inspect(dir string) State {
	out, err := runGit(dir, "status", "--porcelain=v2", "--branch")
	if err != nil {
		return State{}
	}

	st := parsePorcelain(out)
	st.Present = true

	if st.Branch == "" {
		// Detached HEAD: porcelain reports "(detached)". Fall back to a
		// short commit description, then the literal "HEAD".
		if desc, err := runGit(dir, "rev-parse", "--short", "HEAD"); err == nil {
			st.Branch = strings.TrimSpace(string(desc))
		}
		if st.Branch == "" {
			st.Branch = "HEAD"
		}
	}

	return st
}

func runGit(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	return cmd.Output()
}

// parsePorcelain extracts branch, ahead/behind, and change counts from
// `git status --porcelain=v2 --branch` output. Staged and unstaged are
// independent counts: a path modified after staging counts in both.
func parsePorcelain(out []byte) State {
	var st State

	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(line) == 0 {
			continue
		}

		switch line[0] {
		case '#':
			s := string(line)
			if head, ok := strings.CutPrefix(s, "# branch.head "); ok {
				if head != "(detached)" {
					st.Branch = head
				}
				continue
			}
			if ab, ok := strings.CutPrefix(s, "# branch.ab "); ok {
				// "+N -M" relative to the upstream. No upstream means the
				// header is absent and the counts stay 0/0.
				for _, f := range strings.Fields(ab) {
					if len(f) < 2 {
						continue
					}
					n, err := strconv.Atoi(f[1:])
					if err != nil {
						continue
					}
					switch f[0] {
					case '+':
						st.Ahead = n
					case '-':
						st.Behind = n
					}
				}
			}
		case '1', '2':
			// Changed or renamed entry: "1 XY ..." / "2 XY ...".
			fields := bytes.Fields(line)
			if len(fields) < 2 || len(fields[1]) != 2 {
				continue
			}
			if fields[1][0] != '.' {
				st.Staged++
			}
			if fields[1][1] != '.' {
				st.Unstaged++
			}
		case 'u':
			// Unmerged path: shows up as unstaged work.
			st.Unstaged++
		case '?':
			// Untracked files count toward the unstaged total.
			st.Unstaged++
		}
	}

	return st
}
