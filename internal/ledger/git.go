package ledger

import (
	"errors"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	git "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"go.uber.org/zap"

	"rspass/internal/domain"
)

// The credential history lives on a single branch pushed to a single
// remote, recorded under a fixed identity.
const (
	branchName  = "master"
	remoteName  = "origin"
	authorName  = "rspass"
	authorEmail = "rspass@rspass"
)

var (
	branchRef = plumbing.NewBranchReferenceName(branchName)
	remoteRef = plumbing.NewRemoteReferenceName(remoteName, branchName)
)

// GitLedger is the domain.Ledger implementation backed by a git repository
// whose working tree is the credential tree itself. The filesystem is
// injected, so tests run it entirely in memory.
type GitLedger struct {
	fs  billy.Filesystem
	log *zap.Logger
}

// NewGitLedger returns a ledger over the given working tree filesystem.
func NewGitLedger(fs billy.Filesystem, log *zap.Logger) *GitLedger {
	return &GitLedger{fs: fs, log: log}
}

// NewOSLedger returns a ledger over the directory at root.
func NewOSLedger(root string, log *zap.Logger) *GitLedger {
	return NewGitLedger(osfs.New(root), log)
}

// storage builds the .git storage for the working tree filesystem.
func (l *GitLedger) storage() (*filesystem.Storage, error) {
	dot, err := l.fs.Chroot(git.GitDirName)
	if err != nil {
		return nil, err
	}
	return filesystem.NewStorage(dot, cache.NewObjectLRUDefault()), nil
}

// Init creates a fresh repository at the ledger root.
func (l *GitLedger) Init() error {
	st, err := l.storage()
	if err != nil {
		return domain.Wrap(domain.KindInitialization, err, "failed to initialize repository")
	}
	if _, err := git.Init(st, l.fs); err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			return domain.E(domain.KindInitialization, "repository already initialized at %s", l.fs.Root())
		}
		return domain.Wrap(domain.KindInitialization, err, "failed to initialize repository")
	}
	l.log.Info("initialized repository", zap.String("root", l.fs.Root()))
	return nil
}

// Open verifies the ledger root contains a repository.
func (l *GitLedger) Open() error {
	_, err := l.open()
	return err
}

// open opens the repository, failing NotInitialized when the root does not
// contain one.
func (l *GitLedger) open() (*git.Repository, error) {
	st, err := l.storage()
	if err != nil {
		return nil, domain.Wrap(domain.KindInternal, err, "open repository storage")
	}
	repo, err := git.Open(st, l.fs)
	if err != nil {
		return nil, domain.Wrap(domain.KindNotInitialized, err,
			"failed to access repository, initialize one first")
	}
	return repo, nil
}

// Commit stages additions and removals and records one commit on the
// tracked branch under the fixed rspass identity.
func (l *GitLedger) Commit(additions, removals []string, message string) (string, error) {
	repo, err := l.open()
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", domain.Wrap(domain.KindInternal, err, "open work tree")
	}

	for _, path := range additions {
		if _, err := wt.Add(path); err != nil {
			return "", domain.Wrap(domain.KindInternal, err, "stage %s", path)
		}
	}
	for _, path := range removals {
		if _, err := wt.Remove(path); err != nil {
			return "", domain.Wrap(domain.KindInternal, err, "unstage %s", path)
		}
	}

	sig := &object.Signature{Name: authorName, Email: authorEmail, When: time.Now()}
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: true,
	})
	if err != nil {
		return "", domain.Wrap(domain.KindInternal, err, "commit %q", message)
	}

	l.log.Debug("recorded commit",
		zap.String("hash", hash.String()),
		zap.String("message", message))
	return hash.String(), nil
}

// AddRemote registers the origin remote.
func (l *GitLedger) AddRemote(uri string) error {
	repo, err := l.open()
	if err != nil {
		return err
	}
	_, err = repo.CreateRemote(&gitcfg.RemoteConfig{
		Name: remoteName,
		URLs: []string{uri},
	})
	if err != nil {
		if errors.Is(err, git.ErrRemoteExists) {
			return domain.E(domain.KindRemote, "remote %s already registered", remoteName)
		}
		return domain.Wrap(domain.KindRemote, err, "failed to add remote")
	}
	l.log.Info("registered remote", zap.String("name", remoteName), zap.String("uri", uri))
	return nil
}

// Fetch downloads the tracked branch from origin and reconciles the local
// branch against the remote tip.
func (l *GitLedger) Fetch(auth domain.RemoteAuth) (domain.FetchStatus, error) {
	repo, err := l.open()
	if err != nil {
		return domain.FetchUpToDate, err
	}
	remote, err := repo.Remote(remoteName)
	if err != nil {
		return domain.FetchUpToDate, domain.Wrap(domain.KindRemote, err, "failed to find remote")
	}

	err = remote.Fetch(&git.FetchOptions{
		RefSpecs: []gitcfg.RefSpec{
			gitcfg.RefSpec("+" + branchRef.String() + ":" + remoteRef.String()),
		},
		Auth: basicAuth(auth),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return domain.FetchUpToDate, domain.Wrap(domain.KindFetch, err,
			"failed to fetch %s from %s", branchName, remoteName)
	}

	status, err := l.reconcile(repo)
	if err != nil {
		return domain.FetchUpToDate, err
	}
	l.log.Info("fetched", zap.Stringer("status", status))
	return status, nil
}

// reconcile compares the local branch tip with the fetched remote tip and
// fast-forwards when possible. Diverged histories are reported as
// FetchMergeRequired with both branches left untouched.
func (l *GitLedger) reconcile(repo *git.Repository) (domain.FetchStatus, error) {
	remote, err := repo.Reference(remoteRef, true)
	if err != nil {
		return domain.FetchUpToDate, domain.Wrap(domain.KindFetch, err,
			"remote branch %s not found after fetch", branchName)
	}

	local, err := repo.Reference(branchRef, true)
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// No local commits yet; adopt the remote tip wholesale.
		return domain.FetchFastForwarded, l.fastForward(repo, remote.Hash())
	case err != nil:
		return domain.FetchUpToDate, domain.Wrap(domain.KindFetch, err, "resolve local branch")
	}

	if local.Hash() == remote.Hash() {
		return domain.FetchUpToDate, nil
	}

	localCommit, err := repo.CommitObject(local.Hash())
	if err != nil {
		return domain.FetchUpToDate, domain.Wrap(domain.KindInternal, err, "load local tip")
	}
	remoteCommit, err := repo.CommitObject(remote.Hash())
	if err != nil {
		return domain.FetchUpToDate, domain.Wrap(domain.KindInternal, err, "load remote tip")
	}

	forward, err := localCommit.IsAncestor(remoteCommit)
	if err != nil {
		return domain.FetchUpToDate, domain.Wrap(domain.KindFetch, err, "walk history")
	}
	if forward {
		return domain.FetchFastForwarded, l.fastForward(repo, remote.Hash())
	}

	behind, err := remoteCommit.IsAncestor(localCommit)
	if err != nil {
		return domain.FetchUpToDate, domain.Wrap(domain.KindFetch, err, "walk history")
	}
	if behind {
		// Remote is strictly behind; push will catch it up.
		return domain.FetchUpToDate, nil
	}

	return domain.FetchMergeRequired, nil
}

// fastForward moves the local branch to hash and force-checkouts the work
// tree to match, discarding uncommitted changes.
func (l *GitLedger) fastForward(repo *git.Repository, hash plumbing.Hash) error {
	if err := repo.Storer.SetReference(plumbing.NewHashReference(branchRef, hash)); err != nil {
		return domain.Wrap(domain.KindFetch, err, "advance local branch")
	}
	wt, err := repo.Worktree()
	if err != nil {
		return domain.Wrap(domain.KindInternal, err, "open work tree")
	}
	if err := wt.Reset(&git.ResetOptions{Commit: hash, Mode: git.HardReset}); err != nil {
		return domain.Wrap(domain.KindFetch, err, "check out remote tip")
	}
	return nil
}

// Push uploads the tracked branch to the same-named branch on origin. An
// already up to date remote is a success; a rejected push surfaces as a
// push failure and the caller decides whether to fetch first.
func (l *GitLedger) Push(auth domain.RemoteAuth) error {
	repo, err := l.open()
	if err != nil {
		return err
	}
	if _, err := repo.Remote(remoteName); err != nil {
		return domain.Wrap(domain.KindRemote, err, "failed to find remote")
	}

	err = repo.Push(&git.PushOptions{
		RemoteName: remoteName,
		RefSpecs: []gitcfg.RefSpec{
			gitcfg.RefSpec(branchRef.String() + ":" + branchRef.String()),
		},
		Auth: basicAuth(auth),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return domain.Wrap(domain.KindPush, err,
			"failed to push %s to %s", branchName, remoteName)
	}
	l.log.Info("pushed", zap.String("branch", branchName))
	return nil
}

// basicAuth converts per-call credentials into transport auth, or nil when
// none were supplied.
func basicAuth(auth domain.RemoteAuth) *githttp.BasicAuth {
	if auth.Username == "" && auth.Token == "" {
		return nil
	}
	return &githttp.BasicAuth{Username: auth.Username, Password: auth.Token}
}

// Compile-time assertion that GitLedger implements domain.Ledger.
var _ domain.Ledger = (*GitLedger)(nil)
