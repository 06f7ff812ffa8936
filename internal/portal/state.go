package portal

import (
	"sync"
	"time"

	"github.com/harrylevesque/qrverify/internal/models"
)

// Form is the activation form as typed by the user.
type Form struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	AgreePolicy     bool   `json:"agree_policy"`
	ConfirmAccuracy bool   `json:"confirm_accuracy"`
}

// wizard is the activation modal: closed, edit step or confirm step.
type wizard struct {
	open        bool
	confirmStep bool
	form        Form
	errKey      string
	submitting  bool
}

// State is everything one browser session remembers. All access goes
// through Portal methods, which hold mu.
type State struct {
	mu sync.Mutex

	serial    string
	category  string
	pin       string
	hasResult bool

	wizard wizard

	overrides map[string]models.Override
	owners    map[string]models.ActivationMeta

	flashKey   string
	flashUntil time.Time
}

// NewState returns an empty session state.
func NewState() *State {
	return &State{
		overrides: make(map[string]models.Override),
		owners:    make(map[string]models.ActivationMeta),
	}
}

// activatedNow reports whether an activation just happened; it suppresses
// the already-activated warning while the success banner is up.
func (s *State) activatedNow(now time.Time) bool {
	return s.flashKey != "" && now.Before(s.flashUntil)
}

func (s *State) clearFlash() {
	s.flashKey = ""
	s.flashUntil = time.Time{}
}
