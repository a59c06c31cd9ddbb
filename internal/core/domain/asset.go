package domain

// Asset statuses as reported by the backend.
const (
	StatusOnline  = "Online"
	StatusOffline = "Offline"
)

// Condition vocabulary. The backend is the source of truth; these are the
// values it writes today. Unknown values still render, with a neutral badge.
const (
	ConditionAvailable   = "Disponível"
	ConditionMaintenance = "Manutenção"
	ConditionAllocated   = "Alocado"
	ConditionCritical    = "Crítico"
	ConditionAlert       = "Alerta"
	ConditionHealthy     = "Saudável"
)

// Asset represents a tracked network device. Field tags match the backend's
// Portuguese wire names.
type Asset struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"nome"`
	MACAddress string `json:"mac_address"`
	IPAddress  string `json:"ip_address"`
	Status     string `json:"status"`
	Condition  string `json:"condicao"`
	Type       string `json:"tipo"`
}

// IsNew reports whether the asset has not been persisted yet. The backend
// assigns ids; the client never mints them.
func (a Asset) IsNew() bool {
	return a.ID == 0
}

// Online reports whether the asset's status is Online. Anything else,
// including unknown statuses, counts as offline.
func (a Asset) Online() bool {
	return a.Status == StatusOnline
}

// DisplayName returns the name or the "-" placeholder.
func (a Asset) DisplayName() string { return orDash(a.Name) }

// DisplayMAC returns the MAC address or the "-" placeholder.
func (a Asset) DisplayMAC() string { return orDash(a.MACAddress) }

// DisplayIP returns the IP address or the "-" placeholder.
func (a Asset) DisplayIP() string { return orDash(a.IPAddress) }

// DisplayStatus returns the status or the "-" placeholder.
func (a Asset) DisplayStatus() string { return orDash(a.Status) }

// DisplayCondition returns the condition or the "-" placeholder.
func (a Asset) DisplayCondition() string { return orDash(a.Condition) }

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
