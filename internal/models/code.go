package models

import "time"

// CodeStatus is the lifecycle state of a serial code.
type CodeStatus string

const (
	StatusUnused    CodeStatus = "UNUSED"
	StatusActivated CodeStatus = "ACTIVATED"
	StatusBlocked   CodeStatus = "BLOCKED"
)

// Valid reports whether s is one of the known statuses.
func (s CodeStatus) Valid() bool {
	switch s {
	case StatusUnused, StatusActivated, StatusBlocked:
		return true
	}
	return false
}

// Badge returns the display tone for the status badge.
func (s CodeStatus) Badge() string {
	switch s {
	case StatusUnused:
		return "green"
	case StatusActivated:
		return "yellow"
	case StatusBlocked:
		return "red"
	}
	return ""
}

// CodeInfo is the record stored for a single serial code.
type CodeInfo struct {
	Status   CodeStatus `json:"status" yaml:"status"`
	Product  string     `json:"product" yaml:"product"`
	Category string     `json:"category" yaml:"category"`
	Note     string     `json:"note,omitempty" yaml:"note,omitempty"`
	// PIN is only checked when the portal runs with PIN verification enabled.
	// CodeInfo never leaves the server; views carry ResultView instead.
	PIN string `json:"pin,omitempty" yaml:"pin,omitempty"`
}

// ActivationMeta holds the owner contact captured when a code is activated.
type ActivationMeta struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Phone     string `json:"phone" yaml:"phone"`
}

// MaskedOwner is ActivationMeta after masking, safe to render.
type MaskedOwner struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Override replaces the catalog status of a code for one session.
type Override struct {
	Status      CodeStatus `json:"status"`
	Note        string     `json:"note,omitempty"`
	ActivatedAt time.Time  `json:"activated_at"`
}

// Dataset is the on-disk shape of a code catalog.
type Dataset struct {
	Categories []string                  `json:"categories" yaml:"categories"`
	Codes      map[string]CodeInfo       `json:"codes" yaml:"codes"`
	Owners     map[string]ActivationMeta `json:"owners,omitempty" yaml:"owners,omitempty"`
}
