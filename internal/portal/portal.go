// Package portal implements serial code verification and the two-step
// activation wizard on top of the catalog and per-session state.
package portal

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/harrylevesque/qrverify/internal/catalog"
	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/models"
)

var (
	// ErrNotActivatable is returned when the current result is not an UNUSED
	// code with a matching category.
	ErrNotActivatable = errors.New("code is not activatable")
	// ErrNoActivation is returned for wizard steps while the wizard is not in
	// the required step.
	ErrNoActivation = errors.New("no open activation")
	// ErrBusy is returned while an activation is being confirmed.
	ErrBusy = errors.New("activation in progress")
)

// Options tunes a Portal.
type Options struct {
	// Delay simulates the round trip of an activation request.
	Delay time.Duration
	// FlashDuration is how long the success banner stays up.
	FlashDuration time.Duration
	// RequirePIN makes codes that carry a PIN verifiable only with it.
	RequirePIN bool
	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// Portal serves verification and activation for any number of sessions.
type Portal struct {
	catalog *catalog.Catalog
	opts    Options
	logger  *zap.Logger
}

// New creates a portal over cat.
func New(cat *catalog.Catalog, opts Options, logger *zap.Logger) *Portal {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FlashDuration <= 0 {
		opts.FlashDuration = 4 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Portal{catalog: cat, opts: opts, logger: logger}
}

// Categories returns the selectable categories.
func (p *Portal) Categories() []string { return p.catalog.Categories() }

// RequirePIN reports whether verification asks for a PIN.
func (p *Portal) RequirePIN() bool { return p.opts.RequirePIN }

// View is the rendered state of a session in one language.
type View struct {
	Lang       string          `json:"lang"`
	Dir        string          `json:"dir"`
	Serial     string          `json:"serial"`
	Category   string          `json:"category"`
	Result     *ResultView     `json:"result,omitempty"`
	Activation *ActivationView `json:"activation,omitempty"`
	Flash      string          `json:"flash,omitempty"`
}

// ActivationView is the rendered activation wizard.
type ActivationView struct {
	ConfirmStep bool   `json:"confirm_step"`
	Submitting  bool   `json:"submitting"`
	Form        Form   `json:"form"`
	ErrorKey    string `json:"error_key,omitempty"`
	Error       string `json:"error,omitempty"`
	Code        string `json:"code"`
	Product     string `json:"product,omitempty"`
	Category    string `json:"category,omitempty"`
}

// View renders st using tr.
func (p *Portal) View(st *State, tr *i18n.Translator) View {
	st.mu.Lock()
	defer st.mu.Unlock()
	return p.view(st, tr)
}

func (p *Portal) view(st *State, tr *i18n.Translator) View {
	now := p.opts.Now()
	v := View{
		Lang:     tr.Lang,
		Dir:      tr.Dir(),
		Serial:   st.serial,
		Category: st.category,
	}
	if st.flashKey != "" {
		if now.Before(st.flashUntil) {
			v.Flash = tr.T(st.flashKey)
		} else {
			st.clearFlash()
		}
	}
	if st.hasResult {
		r := p.evaluate(st, now, tr)
		v.Result = &r
	}
	if st.wizard.open {
		a := &ActivationView{
			ConfirmStep: st.wizard.confirmStep,
			Submitting:  st.wizard.submitting,
			Form:        st.wizard.form,
			ErrorKey:    st.wizard.errKey,
			Code:        catalog.Normalize(st.serial),
		}
		if a.ErrorKey != "" {
			a.Error = tr.T(a.ErrorKey)
		}
		if info, err := p.effective(st, a.Code); err == nil {
			a.Product = info.Product
			a.Category = info.Category
		}
		v.Activation = a
	}
	return v
}

// effective returns the catalog record with the session's overrides applied.
func (p *Portal) effective(st *State, code string) (models.CodeInfo, error) {
	info, err := p.catalog.Lookup(code)
	if err != nil {
		return info, err
	}
	if o, ok := st.overrides[code]; ok {
		info.Status = o.Status
		info.Note = o.Note
	}
	return info, nil
}

// owner returns the session's owner record for code, falling back to the
// catalog presets.
func (p *Portal) owner(st *State, code string) (models.ActivationMeta, bool) {
	if m, ok := st.owners[code]; ok {
		return m, true
	}
	m, ok := p.catalog.Owners()[code]
	return m, ok
}

// sleep waits for the simulated round trip or until ctx is done.
func (p *Portal) sleep(ctx context.Context) error {
	if p.opts.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.opts.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
