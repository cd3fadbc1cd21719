package models

// Node is one entry of GET /nodes.
type Node struct {
	Node   string `json:"node"`
	Status string `json:"status,omitempty"`
}

// NodeStatus is the response of GET /nodes/{node}/status.
type NodeStatus struct {
	// CPU is the load as a fraction of 1.0
	CPU    float64     `json:"cpu"`
	Memory *NodeMemory `json:"memory,omitempty"`
}

// NodeMemory ...
type NodeMemory struct {
	Used  int64 `json:"used"`
	Free  int64 `json:"free"`
	Total int64 `json:"total"`
}
