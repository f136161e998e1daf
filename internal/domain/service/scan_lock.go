package service

import "context"

// ScanLock serialises queue scans across processes.
type ScanLock interface {
	// TryAcquire takes the named lock. It returns a release func and true on success,
	// or false when another holder owns it.
	TryAcquire(ctx context.Context, name string) (release func(), acquired bool, err error)
}
