package portal

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/harrylevesque/qrverify/internal/catalog"
	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/models"
)

const activationNoteLayout = "02.01.2006"

var phonePattern = regexp.MustCompile(`^\+?[0-9\s-]{10,14}$`)

// Validation errors. Each maps to the message key of the same meaning.
var (
	ErrFillAll = errors.New("errFillAll")
	ErrPhone   = errors.New("errPhone")
	ErrChecks  = errors.New("errChecks")
)

// Validate checks an activation form. Fields are checked in order: required
// fields, phone shape, then both consents.
func Validate(f Form) error {
	if strings.TrimSpace(f.FirstName) == "" ||
		strings.TrimSpace(f.LastName) == "" ||
		strings.TrimSpace(f.Phone) == "" {
		return ErrFillAll
	}
	if !phonePattern.MatchString(f.Phone) {
		return ErrPhone
	}
	if !f.AgreePolicy || !f.ConfirmAccuracy {
		return ErrChecks
	}
	return nil
}

// OpenActivation opens the wizard at the edit step with an empty form.
func (p *Portal) OpenActivation(st *State, tr *i18n.Translator) (View, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.wizard.submitting {
		return View{}, ErrBusy
	}
	if !p.canActivate(st) {
		return View{}, ErrNotActivatable
	}
	st.wizard = wizard{open: true}
	return p.view(st, tr), nil
}

// UpdateForm stores the typed form. It is ignored outside the edit step and
// while a confirmation is in flight.
func (p *Portal) UpdateForm(st *State, f Form, tr *i18n.Translator) (View, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.wizard.open {
		return View{}, ErrNoActivation
	}
	if !st.wizard.confirmStep && !st.wizard.submitting {
		st.wizard.form = f
	}
	return p.view(st, tr), nil
}

// Next toggles the wizard step. From the edit step it validates the form and
// moves on to the confirm step; a validation failure is not an error, the
// wizard stays put with the error shown. From the confirm step it goes back
// to editing with the form intact.
func (p *Portal) Next(st *State, tr *i18n.Translator) (View, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.wizard.open {
		return View{}, ErrNoActivation
	}
	if st.wizard.submitting {
		return View{}, ErrBusy
	}
	if st.wizard.confirmStep {
		st.wizard.confirmStep = false
		return p.view(st, tr), nil
	}
	if err := Validate(st.wizard.form); err != nil {
		st.wizard.errKey = err.Error()
		return p.view(st, tr), nil
	}
	st.wizard.errKey = ""
	st.wizard.confirmStep = true
	return p.view(st, tr), nil
}

// Confirm waits for the simulated round trip, then activates the code in the
// session: status becomes ACTIVATED, the owner is recorded, the wizard
// closes, the form and result are cleared and the success banner is raised.
// If ctx ends first nothing changes and the wizard stays at the confirm step.
func (p *Portal) Confirm(ctx context.Context, st *State, tr *i18n.Translator) (View, error) {
	st.mu.Lock()
	if !st.wizard.open || !st.wizard.confirmStep {
		st.mu.Unlock()
		return View{}, ErrNoActivation
	}
	if st.wizard.submitting {
		st.mu.Unlock()
		return View{}, ErrBusy
	}
	if !p.canActivate(st) {
		st.mu.Unlock()
		return View{}, ErrNotActivatable
	}
	code := catalog.Normalize(st.serial)
	form := st.wizard.form
	st.wizard.submitting = true
	st.mu.Unlock()

	err := p.sleep(ctx)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.wizard.submitting = false
	if err != nil {
		return View{}, err
	}

	now := p.opts.Now()
	st.overrides[code] = models.Override{
		Status:      models.StatusActivated,
		Note:        now.Format(activationNoteLayout) + " tarihinde etkinleştirildi",
		ActivatedAt: now,
	}
	st.owners[code] = models.ActivationMeta{
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Phone:     strings.TrimSpace(form.Phone),
	}
	st.wizard = wizard{}
	st.serial = ""
	st.category = ""
	st.pin = ""
	st.hasResult = false
	st.flashKey = "activatedSuccess"
	st.flashUntil = now.Add(p.opts.FlashDuration)

	p.logger.Info("code activated", zap.String("code", code))
	return p.view(st, tr), nil
}

// CloseActivation dismisses the wizard and discards the form. It is ignored
// while a confirmation is in flight.
func (p *Portal) CloseActivation(st *State, tr *i18n.Translator) View {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.wizard.submitting {
		st.wizard = wizard{}
	}
	return p.view(st, tr)
}
