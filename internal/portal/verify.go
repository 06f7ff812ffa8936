package portal

import (
	"crypto/subtle"
	"time"

	"go.uber.org/zap"

	"github.com/harrylevesque/qrverify/internal/catalog"
	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/models"
)

// Warning is a highlighted message on the result card.
type Warning struct {
	Key   string `json:"key"`
	Text  string `json:"text"`
	Level string `json:"level"` // "warn" or "danger"
}

// ResultView is the rendered result card.
type ResultView struct {
	Code        string              `json:"code"`
	Found       bool                `json:"found"`
	Status      models.CodeStatus   `json:"status,omitempty"`
	Badge       string              `json:"badge,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Product     string              `json:"product,omitempty"`
	Category    string              `json:"category,omitempty"`
	Note        string              `json:"note,omitempty"`
	Warnings    []Warning           `json:"warnings,omitempty"`
	Owner       *models.MaskedOwner `json:"owner,omitempty"`
	CanActivate bool                `json:"can_activate"`
}

// Verify looks serial up and makes it the session's current result.
func (p *Portal) Verify(st *State, serial, category, pin string, tr *i18n.Translator) (View, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.wizard.submitting {
		return View{}, ErrBusy
	}
	st.serial = serial
	st.category = category
	st.pin = pin
	st.hasResult = true
	st.wizard = wizard{}
	st.clearFlash()

	v := p.view(st, tr)
	p.logger.Debug("code verified",
		zap.String("code", v.Result.Code),
		zap.Bool("found", v.Result.Found),
		zap.String("status", string(v.Result.Status)))
	return v, nil
}

// SetCategory changes the selected category and re-evaluates the current result.
func (p *Portal) SetCategory(st *State, category string, tr *i18n.Translator) (View, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.wizard.submitting {
		return View{}, ErrBusy
	}
	st.category = category
	if st.wizard.open && !p.canActivate(st) {
		st.wizard = wizard{}
	}
	return p.view(st, tr), nil
}

// lookup applies the PIN rule on top of effective. A wrong PIN looks exactly
// like an unknown code.
func (p *Portal) lookup(st *State, code string) (models.CodeInfo, bool) {
	info, err := p.effective(st, code)
	if err != nil {
		return models.CodeInfo{}, false
	}
	if p.opts.RequirePIN && info.PIN != "" &&
		subtle.ConstantTimeCompare([]byte(info.PIN), []byte(st.pin)) != 1 {
		return models.CodeInfo{}, false
	}
	return info, true
}

func (p *Portal) canActivate(st *State) bool {
	if !st.hasResult || st.category == "" {
		return false
	}
	info, ok := p.lookup(st, catalog.Normalize(st.serial))
	return ok && info.Status == models.StatusUnused && info.Category == st.category
}

func (p *Portal) evaluate(st *State, now time.Time, tr *i18n.Translator) ResultView {
	code := catalog.Normalize(st.serial)
	r := ResultView{Code: code}

	info, ok := p.lookup(st, code)
	if !ok {
		r.Title = tr.T("codeNotFound")
		r.Description = tr.T("codeNotFoundDesc")
		return r
	}

	r.Found = true
	r.Status = info.Status
	r.Badge = info.Status.Badge()
	r.Title = tr.T("status." + string(info.Status) + ".label")
	r.Description = tr.T("status." + string(info.Status) + ".desc")
	r.Product = info.Product
	r.Category = info.Category
	r.Note = info.Note

	categoryOK := false
	switch {
	case st.category == "":
		r.Warnings = append(r.Warnings, Warning{Key: "warnSelectCategory", Text: tr.T("warnSelectCategory"), Level: "warn"})
	case st.category != info.Category:
		r.Warnings = append(r.Warnings, Warning{
			Key:   "warnCategoryMismatch",
			Text:  tr.T("warnCategoryMismatch") + " " + info.Category,
			Level: "warn",
		})
	default:
		categoryOK = true
	}

	if info.Status == models.StatusActivated {
		if !st.activatedNow(now) {
			r.Warnings = append(r.Warnings, Warning{Key: "warnAlreadyActivated", Text: tr.T("warnAlreadyActivated"), Level: "danger"})
		}
		if meta, ok := p.owner(st, code); ok {
			masked := catalog.MaskOwner(meta)
			r.Owner = &masked
		}
	}

	r.CanActivate = info.Status == models.StatusUnused && categoryOK
	return r
}
