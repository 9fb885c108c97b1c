package ledger_test

import (
	"path"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rspass/internal/domain"
	"rspass/internal/ledger"
)

func newLedger(t *testing.T) (*ledger.GitLedger, billy.Filesystem) {
	t.Helper()
	fs := memfs.New()
	return ledger.NewGitLedger(fs, zap.NewNop()), fs
}

func openRepo(t *testing.T, fs billy.Filesystem) *git.Repository {
	t.Helper()
	dot, err := fs.Chroot(git.GitDirName)
	require.NoError(t, err)
	repo, err := git.Open(filesystem.NewStorage(dot, cache.NewObjectLRUDefault()), fs)
	require.NoError(t, err)
	return repo
}

func writeFile(t *testing.T, fs billy.Filesystem, name, content string) {
	t.Helper()
	if dir := path.Dir(name); dir != "." {
		require.NoError(t, fs.MkdirAll(dir, 0o755))
	}
	require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o600))
}

func commitFile(t *testing.T, l *ledger.GitLedger, fs billy.Filesystem, name, content, message string) plumbing.Hash {
	t.Helper()
	writeFile(t, fs, name, content)
	hash, err := l.Commit([]string{name}, nil, message)
	require.NoError(t, err)
	return plumbing.NewHash(hash)
}

func setRemoteTip(t *testing.T, fs billy.Filesystem, hash plumbing.Hash) {
	t.Helper()
	repo := openRepo(t, fs)
	name := plumbing.NewRemoteReferenceName("origin", "master")
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(name, hash)))
}

func resetTo(t *testing.T, fs billy.Filesystem, hash plumbing.Hash) {
	t.Helper()
	repo := openRepo(t, fs)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Reset(&git.ResetOptions{Commit: hash, Mode: git.HardReset}))
}

func TestInitCreatesRepository(t *testing.T) {
	l, fs := newLedger(t)

	require.NoError(t, l.Init())
	openRepo(t, fs)
}

func TestInitTwiceFails(t *testing.T) {
	l, _ := newLedger(t)
	require.NoError(t, l.Init())

	err := l.Init()
	require.True(t, domain.IsKind(err, domain.KindInitialization), "got %v", err)
}

func TestOpenRequiresInit(t *testing.T) {
	l, _ := newLedger(t)

	err := l.Open()
	require.True(t, domain.IsKind(err, domain.KindNotInitialized), "got %v", err)

	require.NoError(t, l.Init())
	require.NoError(t, l.Open())
}

func TestCommitWithoutInit(t *testing.T) {
	l, fs := newLedger(t)
	writeFile(t, fs, "cred", "ciphertext")

	_, err := l.Commit([]string{"cred"}, nil, `add "cred"`)
	require.True(t, domain.IsKind(err, domain.KindNotInitialized), "got %v", err)
}

func TestCommitRecordsAdditionWithFixedIdentity(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())

	hash := commitFile(t, l, fs, "email/github", "ciphertext", `add "email/github"`)

	repo := openRepo(t, fs)
	head, err := repo.Head()
	require.NoError(t, err)
	require.Equal(t, hash, head.Hash())
	require.Equal(t, plumbing.NewBranchReferenceName("master"), head.Name())

	commit, err := repo.CommitObject(hash)
	require.NoError(t, err)
	require.Equal(t, `add "email/github"`, commit.Message)
	require.Equal(t, "rspass", commit.Author.Name)
	require.Equal(t, "rspass@rspass", commit.Author.Email)
	require.Equal(t, "rspass", commit.Committer.Name)
	require.Zero(t, commit.NumParents())

	tree, err := commit.Tree()
	require.NoError(t, err)
	_, err = tree.File("email/github")
	require.NoError(t, err)
}

func TestCommitParentsOnPreviousTip(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())

	first := commitFile(t, l, fs, "one", "1", `add "one"`)
	second := commitFile(t, l, fs, "two", "2", `add "two"`)

	repo := openRepo(t, fs)
	commit, err := repo.CommitObject(second)
	require.NoError(t, err)
	require.Equal(t, 1, commit.NumParents())

	parent, err := commit.Parent(0)
	require.NoError(t, err)
	require.Equal(t, first, parent.Hash)
}

func TestCommitRecordsRemoval(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())
	commitFile(t, l, fs, "cred", "ciphertext", `add "cred"`)

	require.NoError(t, fs.Remove("cred"))
	hash, err := l.Commit(nil, []string{"cred"}, `remove "cred"`)
	require.NoError(t, err)

	repo := openRepo(t, fs)
	commit, err := repo.CommitObject(plumbing.NewHash(hash))
	require.NoError(t, err)
	tree, err := commit.Tree()
	require.NoError(t, err)
	_, err = tree.File("cred")
	require.Error(t, err)
}

func TestAddRemote(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())

	require.NoError(t, l.AddRemote("https://example.com/vault.git"))

	repo := openRepo(t, fs)
	remote, err := repo.Remote("origin")
	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/vault.git"}, remote.Config().URLs)
}

func TestAddRemoteTwiceFails(t *testing.T) {
	l, _ := newLedger(t)
	require.NoError(t, l.Init())
	require.NoError(t, l.AddRemote("https://example.com/vault.git"))

	err := l.AddRemote("https://example.com/other.git")
	require.True(t, domain.IsKind(err, domain.KindRemote), "got %v", err)
}

func TestFetchWithoutRemote(t *testing.T) {
	l, _ := newLedger(t)
	require.NoError(t, l.Init())

	_, err := l.Fetch(domain.RemoteAuth{Username: "user", Token: "token"})
	require.True(t, domain.IsKind(err, domain.KindRemote), "got %v", err)
}

func TestFetchTransportFailure(t *testing.T) {
	l, _ := newLedger(t)
	require.NoError(t, l.Init())
	require.NoError(t, l.AddRemote("http://127.0.0.1:1/vault.git"))

	_, err := l.Fetch(domain.RemoteAuth{Username: "user", Token: "token"})
	require.True(t, domain.IsKind(err, domain.KindFetch), "got %v", err)
}

func TestPushWithoutRemote(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())
	commitFile(t, l, fs, "cred", "ciphertext", `add "cred"`)

	err := l.Push(domain.RemoteAuth{Username: "user", Token: "token"})
	require.True(t, domain.IsKind(err, domain.KindRemote), "got %v", err)
}

func TestPushTransportFailure(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())
	commitFile(t, l, fs, "cred", "ciphertext", `add "cred"`)
	require.NoError(t, l.AddRemote("http://127.0.0.1:1/vault.git"))

	err := l.Push(domain.RemoteAuth{Username: "user", Token: "token"})
	require.True(t, domain.IsKind(err, domain.KindPush), "got %v", err)
}

func TestReconcileEqualTips(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())
	tip := commitFile(t, l, fs, "cred", "ciphertext", `add "cred"`)
	setRemoteTip(t, fs, tip)

	status, err := l.Reconcile()
	require.NoError(t, err)
	require.Equal(t, domain.FetchUpToDate, status)
}

func TestReconcileFastForward(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())

	first := commitFile(t, l, fs, "one", "1", `add "one"`)
	second := commitFile(t, l, fs, "two", "2", `add "two"`)

	// Rewind the local branch so the remote tip is strictly ahead.
	resetTo(t, fs, first)
	setRemoteTip(t, fs, second)

	status, err := l.Reconcile()
	require.NoError(t, err)
	require.Equal(t, domain.FetchFastForwarded, status)

	repo := openRepo(t, fs)
	head, err := repo.Head()
	require.NoError(t, err)
	require.Equal(t, second, head.Hash())

	// The working tree matches the remote tip again.
	content, err := util.ReadFile(fs, "two")
	require.NoError(t, err)
	require.Equal(t, "2", string(content))
}

func TestReconcileRemoteBehind(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())

	first := commitFile(t, l, fs, "one", "1", `add "one"`)
	second := commitFile(t, l, fs, "two", "2", `add "two"`)
	setRemoteTip(t, fs, first)

	status, err := l.Reconcile()
	require.NoError(t, err)
	require.Equal(t, domain.FetchUpToDate, status)

	repo := openRepo(t, fs)
	head, err := repo.Head()
	require.NoError(t, err)
	require.Equal(t, second, head.Hash())
}

func TestReconcileDivergedHistories(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())

	base := commitFile(t, l, fs, "base", "0", `add "base"`)
	theirs := commitFile(t, l, fs, "theirs", "1", `add "theirs"`)

	resetTo(t, fs, base)
	ours := commitFile(t, l, fs, "ours", "2", `add "ours"`)
	setRemoteTip(t, fs, theirs)

	status, err := l.Reconcile()
	require.NoError(t, err)
	require.Equal(t, domain.FetchMergeRequired, status)

	// Both histories stay untouched.
	repo := openRepo(t, fs)
	head, err := repo.Head()
	require.NoError(t, err)
	require.Equal(t, ours, head.Hash())

	content, err := util.ReadFile(fs, "ours")
	require.NoError(t, err)
	require.Equal(t, "2", string(content))
}

func TestReconcileUnbornLocalBranch(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())

	tip := commitFile(t, l, fs, "cred", "ciphertext", `add "cred"`)

	// Drop the local branch so HEAD is unborn again; the commit objects
	// stay in storage, as after a fetch into a fresh clone.
	repo := openRepo(t, fs)
	require.NoError(t, repo.Storer.RemoveReference(plumbing.NewBranchReferenceName("master")))
	setRemoteTip(t, fs, tip)

	status, err := l.Reconcile()
	require.NoError(t, err)
	require.Equal(t, domain.FetchFastForwarded, status)

	head, err := openRepo(t, fs).Head()
	require.NoError(t, err)
	require.Equal(t, tip, head.Hash())
}

func TestReconcileMissingRemoteRef(t *testing.T) {
	l, fs := newLedger(t)
	require.NoError(t, l.Init())
	commitFile(t, l, fs, "cred", "ciphertext", `add "cred"`)

	_, err := l.Reconcile()
	require.True(t, domain.IsKind(err, domain.KindFetch), "got %v", err)
}
