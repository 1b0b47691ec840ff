package core

import pcore "gol3d/pkg/core"

// Sim is the contract the runner and the report tooling drive. Advance is
// synchronous and must not be called concurrently with itself or Snapshot.
type Sim interface {
	Name() string
	Size() int
	Generation() uint64
	Advance()
	Snapshot() pcore.Snapshot
}
