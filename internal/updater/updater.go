// Package updater defines the narrow interface the startup sequence calls
// through for --check-update and the auto_check_updates config key
// (spec §6, SPEC_FULL §12). The update mechanism itself — checking GitHub
// releases and self-replacing the binary, as original_source/src/updater.rs
// does — is an external collaborator per spec §1 and out of scope for the
// core; this package ships only the port and a stub that always reports no
// update available.
package updater

import "context"

// UpdateInfo describes an available update.
type UpdateInfo struct {
	Version     string
	DownloadURL string
}

// Checker probes for a newer release.
type Checker interface {
	// CheckForUpdate returns nil, nil when the running version is already
	// current.
	CheckForUpdate(ctx context.Context) (*UpdateInfo, error)
}

// NopChecker is the stub Checker: it never finds an update. A real
// implementation (GitHub releases API, a private update server) can
// satisfy the same interface without the core changing.
type NopChecker struct{}

func (NopChecker) CheckForUpdate(ctx context.Context) (*UpdateInfo, error) {
	return nil, nil
}
