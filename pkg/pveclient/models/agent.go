package models

// AgentNetworkResponse is the response of
// GET /nodes/{node}/qemu/{vmid}/agent/network-get-interfaces.
type AgentNetworkResponse struct {
	Result []*AgentInterface `json:"result"`
}

// AgentInterface ...
type AgentInterface struct {
	Name        string            `json:"name"`
	IPAddresses []*AgentIPAddress `json:"ip-addresses,omitempty"`
}

// AgentIPAddress ...
type AgentIPAddress struct {
	Type    string `json:"ip-address-type"`
	Address string `json:"ip-address"`
	Prefix  int    `json:"prefix,omitempty"`
}
