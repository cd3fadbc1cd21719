// Package errs defines the error classes surfaced by the orchestrator.
//
// Fatal classes abort the current operation and reach the caller.
// Best-effort failures (disk resize, deferred start, rollback sub-steps,
// status pre-checks) are logged at their call sites and never surface here.
package errs

import (
	"errors"
	"fmt"
)

// ValidationError reports bad input. No remote call has been issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnknownClusterError reports a cluster name absent from configuration.
type UnknownClusterError struct {
	Cluster string
}

func (e *UnknownClusterError) Error() string {
	return fmt.Sprintf("unknown cluster: %s", e.Cluster)
}

// ConnectionError reports a failure constructing a cluster client handle.
type ConnectionError struct {
	Cluster string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to cluster %s: %v", e.Cluster, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// NoAvailableNodesError reports that placement is impossible: the node
// snapshot is empty or every node is unreachable.
type NoAvailableNodesError struct {
	Cluster string
}

func (e *NoAvailableNodesError) Error() string {
	return fmt.Sprintf("no available nodes in cluster %s", e.Cluster)
}

// RemoteOperationError reports a failure of the virtualization service
// during a mutating step, with enough context to diagnose.
type RemoteOperationError struct {
	Op      string
	Cluster string
	Node    string
	VMID    int
	Err     error
}

func (e *RemoteOperationError) Error() string {
	if e.VMID != 0 {
		return fmt.Sprintf("%s failed on cluster %s node %s vmid %d: %v", e.Op, e.Cluster, e.Node, e.VMID, e.Err)
	}
	return fmt.Sprintf("%s failed on cluster %s node %s: %v", e.Op, e.Cluster, e.Node, e.Err)
}

func (e *RemoteOperationError) Unwrap() error { return e.Err }

// IsValidation ...
func IsValidation(err error) bool {
	var t *ValidationError
	return errors.As(err, &t)
}

// IsUnknownCluster ...
func IsUnknownCluster(err error) bool {
	var t *UnknownClusterError
	return errors.As(err, &t)
}

// IsNoAvailableNodes ...
func IsNoAvailableNodes(err error) bool {
	var t *NoAvailableNodesError
	return errors.As(err, &t)
}
