package domain

// Branch is the organizational unit almost every other entity references.
type Branch struct {
	RecordMeta
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
}
