package consts

// Component is the component name
const Component = "pve-orchestrator"

// vm status reported by the virtualization service
const (
	VMRunning = "running"
	VMStopped = "stopped"
	VMPaused  = "paused"
	VMUnknown = "unknown"
)

// node status labels
const (
	NodeOnline   = "online"
	NodeHighLoad = "high-load"
	NodeOffline  = "offline"
)

// provision request bounds
const (
	MinCPUCores = 1
	MaxCPUCores = 16
	MinMemoryMB = 1024
	MaxMemoryMB = 24576
	MinDiskGB   = 10
	MaxDiskGB   = 200
)

// PrimaryDisk is the disk resized after clone
const PrimaryDisk = "scsi0"
