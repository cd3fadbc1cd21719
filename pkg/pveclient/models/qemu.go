package models

// QemuVM is one entry of GET /nodes/{node}/qemu.
type QemuVM struct {
	VMID   int     `json:"vmid"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	CPU    float64 `json:"cpu,omitempty"`
	Mem    int64   `json:"mem,omitempty"`
	MaxMem int64   `json:"maxmem,omitempty"`
	Uptime int64   `json:"uptime,omitempty"`
}

// QemuStatus is the response of GET /nodes/{node}/qemu/{vmid}/status/current.
type QemuStatus struct {
	Status string  `json:"status"`
	CPU    float64 `json:"cpu,omitempty"`
	Mem    int64   `json:"mem,omitempty"`
	MaxMem int64   `json:"maxmem,omitempty"`
	Uptime int64   `json:"uptime,omitempty"`
}

// CloneQemuRequest clones a template into a new VMID. Node and TemplateID
// address the request path; the tagged fields go on the wire.
type CloneQemuRequest struct {
	Node       string
	TemplateID int

	NewID int    `pve:"newid"`
	Name  string `pve:"name"`
}

// ConfigureQemuRequest is the body of POST /nodes/{node}/qemu/{vmid}/config.
type ConfigureQemuRequest struct {
	Node string
	VMID int

	Cores      int    `pve:"cores"`
	MemoryMB   int    `pve:"memory"`
	CPU        string `pve:"cpu"`
	Agent      int    `pve:"agent"`
	CICustom   string `pve:"cicustom"`
	CIUser     string `pve:"ciuser"`
	CIPassword string `pve:"cipassword"`
	IPConfig0  string `pve:"ipconfig0"`
}

// ResizeQemuDiskRequest is the body of PUT /nodes/{node}/qemu/{vmid}/resize.
type ResizeQemuDiskRequest struct {
	Node string
	VMID int

	Disk string `pve:"disk"`
	Size string `pve:"size"`
}
