package domain

// RemoteAuth carries the per-call basic credentials for fetch and push.
// They are never persisted.
type RemoteAuth struct {
	Username string
	Token    string
}

// FetchStatus reports how a fetch reconciled the local branch against the
// remote tip.
type FetchStatus int

const (
	// FetchUpToDate means the tips already agreed, or the remote is strictly
	// behind the local branch; nothing was mutated.
	FetchUpToDate FetchStatus = iota

	// FetchFastForwarded means the local branch was moved to the remote tip
	// and the working tree now matches it exactly.
	FetchFastForwarded

	// FetchMergeRequired means local and remote histories diverged. The
	// ledger leaves both untouched; reconciling them is up to the caller.
	FetchMergeRequired
)

// String returns the status name for logs and CLI output.
func (s FetchStatus) String() string {
	switch s {
	case FetchUpToDate:
		return "up-to-date"
	case FetchFastForwarded:
		return "fast-forwarded"
	case FetchMergeRequired:
		return "merge-required"
	default:
		return "unknown"
	}
}

// Ledger is the version-control capability the credential store mutates
// through. Every store mutation maps to exactly one Commit call; fetch and
// push operate on the same tracked branch independently of the store.
type Ledger interface {
	// Init creates a new repository at the ledger root. It fails when the
	// root is already a repository.
	Init() error

	// Open verifies the ledger root contains a repository, failing with
	// NotInitialized otherwise. Mutating operations call it before touching
	// the filesystem so a missing repository never strands a half-done
	// change.
	Open() error

	// Commit stages the given additions and removals (paths relative to the
	// repository root, slash-separated) and records one commit with the
	// given message, parented on the current branch tip or none for the
	// first commit. It returns the new commit id in hex.
	Commit(additions, removals []string, message string) (string, error)

	// AddRemote registers the "origin" remote with the given URI. It fails
	// when a remote is already registered.
	AddRemote(uri string) error

	// Fetch downloads the tracked branch from origin and reconciles the
	// local branch with the remote tip. Fast-forwards discard local
	// uncommitted changes; diverged histories are reported, not merged.
	Fetch(auth RemoteAuth) (FetchStatus, error)

	// Push uploads the local tracked branch to the same-named branch on
	// origin. A rejected push (for example a diverged remote) is an error;
	// the caller decides whether to fetch and retry.
	Push(auth RemoteAuth) error
}
