package rspass

import "rspass/internal/domain"

// Type aliases expose domain types at the module root for compact imports.
type (
	Credential       = domain.Credential
	Metadata         = domain.Metadata
	MetadataPair     = domain.MetadataPair
	MetadataChange   = domain.MetadataChange
	CredentialUpdate = domain.CredentialUpdate
	FetchStatus      = domain.FetchStatus
	RemoteAuth       = domain.RemoteAuth
	Error            = domain.Error
	Kind             = domain.Kind
)

// Fetch outcomes.
const (
	FetchUpToDate      = domain.FetchUpToDate
	FetchFastForwarded = domain.FetchFastForwarded
	FetchMergeRequired = domain.FetchMergeRequired
)

// Error kinds surfaced by rspass operations.
const (
	KindInternal         = domain.KindInternal
	KindInitialization   = domain.KindInitialization
	KindPermissionDenied = domain.KindPermissionDenied
	KindNotInitialized   = domain.KindNotInitialized
	KindBadConfig        = domain.KindBadConfig
	KindInsertion        = domain.KindInsertion
	KindAlreadyExists    = domain.KindAlreadyExists
	KindEncryption       = domain.KindEncryption
	KindDecryption       = domain.KindDecryption
	KindNotFound         = domain.KindNotFound
	KindRemote           = domain.KindRemote
	KindFetch            = domain.KindFetch
	KindPush             = domain.KindPush
	KindConfigAlreadySet = domain.KindConfigAlreadySet
)

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool { return domain.IsKind(err, kind) }

// KindOf returns the kind carried by err, or KindInternal for errors from
// outside the taxonomy.
func KindOf(err error) Kind { return domain.KindOf(err) }
