// Package git reads build metadata from the git repository enclosing a
// path. paramctl uses it to report a commit when the binary was built
// without one.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Info holds information about a git checkout.
type Info struct {
	// CommitHash is the current HEAD commit hash
	CommitHash string
	// Branch is the current branch name (empty on a detached HEAD)
	Branch string
	// Tags lists tags pointing at HEAD
	Tags []string
	// IsDirty indicates uncommitted changes in the working tree
	IsDirty bool
}

// ShortHash returns the first seven characters of the commit hash.
func (i *Info) ShortHash() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// Describe renders the commit for version output, e.g. "1a2b3c4-dirty".
func (i *Info) Describe() string {
	desc := i.ShortHash()
	if len(i.Tags) > 0 {
		desc = i.Tags[0] + " (" + desc + ")"
	}
	if i.IsDirty {
		desc += "-dirty"
	}
	return desc
}

// GetInfo opens the repository that path belongs to, searching parent
// directories, and reports the state of HEAD.
func GetInfo(path string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to find a Git repository that path %q belongs to: %w", path, err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference for repository %q: %w", path, err)
	}

	info := &Info{CommitHash: headRef.Hash().String()}
	if headRef.Name().IsBranch() {
		info.Branch = headRef.Name().Short()
	}

	tagRefs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	err = tagRefs.ForEach(func(ref *plumbing.Reference) error {
		revHash, err := repo.ResolveRevision(plumbing.Revision(ref.Name()))
		if err != nil {
			return fmt.Errorf("failed to resolve tag %q: %w", ref.Name().Short(), err)
		}
		if *revHash == headRef.Hash() {
			info.Tags = append(info.Tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over tags: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree for repository %q: %w", path, err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status for repository %q: %w", path, err)
	}
	info.IsDirty = !status.IsClean()

	return info, nil
}
