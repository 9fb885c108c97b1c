package ledger

import "rspass/internal/domain"

// Reconcile runs the post-fetch reconciliation alone, letting tests drive
// it against manufactured remote refs without a network transport.
func (l *GitLedger) Reconcile() (domain.FetchStatus, error) {
	repo, err := l.open()
	if err != nil {
		return domain.FetchUpToDate, err
	}
	return l.reconcile(repo)
}
