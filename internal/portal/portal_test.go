package portal

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrylevesque/qrverify/internal/catalog"
	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/models"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPortal(t *testing.T, opts Options) (*Portal, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 11, 3, 14, 0, 0, 0, time.Local)}
	opts.Now = clock.now
	return New(catalog.MustSample(), opts, nil), clock
}

var en = i18n.NewTranslator("en")

func TestVerifyUnusedWithMatchingCategory(t *testing.T) {
	p, _ := newTestPortal(t, Options{})
	st := NewState()

	v, err := p.Verify(st, "  tr-bal-001 ", "Balistik yelek", "", en)
	require.NoError(t, err)
	require.NotNil(t, v.Result)

	want := ResultView{
		Code:        "TR-BAL-001",
		Found:       true,
		Status:      models.StatusUnused,
		Badge:       "green",
		Title:       en.T("status.UNUSED.label"),
		Description: en.T("status.UNUSED.desc"),
		Product:     "Balistik Yelek M12",
		Category:    "Balistik yelek",
		CanActivate: true,
	}
	if diff := cmp.Diff(want, *v.Result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "  tr-bal-001 ", v.Serial, "the typed serial is kept as entered")
}

func TestVerifyUnknownCode(t *testing.T) {
	p, _ := newTestPortal(t, Options{})
	v, err := p.Verify(NewState(), "XX-000", "", "", en)
	require.NoError(t, err)

	want := ResultView{
		Code:        "XX-000",
		Title:       en.T("codeNotFound"),
		Description: en.T("codeNotFoundDesc"),
	}
	if diff := cmp.Diff(want, *v.Result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestVerifyWarnings(t *testing.T) {
	p, _ := newTestPortal(t, Options{})

	tests := []struct {
		name     string
		serial   string
		category string
		keys     []string
		can      bool
	}{
		{"no category", "TR-BAL-001", "", []string{"warnSelectCategory"}, false},
		{"wrong category", "TR-BAL-001", "Taktik bot", []string{"warnCategoryMismatch"}, false},
		{"activated", "TR-PLK-777", "Seramik plaka", []string{"warnAlreadyActivated"}, false},
		{"activated wrong category", "TR-PLK-777", "Taktik bot", []string{"warnCategoryMismatch", "warnAlreadyActivated"}, false},
		{"blocked", "TR-BOT-404", "Taktik bot", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := p.Verify(NewState(), tt.serial, tt.category, "", en)
			require.NoError(t, err)
			var keys []string
			for _, w := range v.Result.Warnings {
				keys = append(keys, w.Key)
			}
			assert.Equal(t, tt.keys, keys)
			assert.Equal(t, tt.can, v.Result.CanActivate)
		})
	}
}

func TestCategoryMismatchNamesExpectedCategory(t *testing.T) {
	p, _ := newTestPortal(t, Options{})
	v, err := p.Verify(NewState(), "TR-BAL-001", "Taktik bot", "", en)
	require.NoError(t, err)
	require.Len(t, v.Result.Warnings, 1)
	assert.Equal(t, en.T("warnCategoryMismatch")+" Balistik yelek", v.Result.Warnings[0].Text)
}

func TestActivatedShowsMaskedOwner(t *testing.T) {
	p, _ := newTestPortal(t, Options{})
	v, err := p.Verify(NewState(), "TR-PLK-777", "Seramik plaka", "", en)
	require.NoError(t, err)

	require.NotNil(t, v.Result.Owner)
	assert.Equal(t, models.MaskedOwner{FirstName: "Ah****", LastName: "Yı****", Phone: "******67"}, *v.Result.Owner)
	assert.Equal(t, "yellow", v.Result.Badge)
	assert.Equal(t, "10.10.2025 tarihinde etkinleştirildi", v.Result.Note)
}

func TestSetCategoryReevaluates(t *testing.T) {
	p, _ := newTestPortal(t, Options{})
	st := NewState()
	_, err := p.Verify(st, "TR-KSK-003", "", "", en)
	require.NoError(t, err)

	v, err := p.SetCategory(st, "Balistik kask", en)
	require.NoError(t, err)
	assert.True(t, v.Result.CanActivate)
	assert.Empty(t, v.Result.Warnings)
}

func TestRequirePIN(t *testing.T) {
	p, _ := newTestPortal(t, Options{RequirePIN: true})

	v, err := p.Verify(NewState(), "TR-BAL-001", "Balistik yelek", "0000", en)
	require.NoError(t, err)
	assert.False(t, v.Result.Found, "a wrong PIN is indistinguishable from an unknown code")

	v, err = p.Verify(NewState(), "TR-BAL-001", "Balistik yelek", "", en)
	require.NoError(t, err)
	assert.False(t, v.Result.Found)
	assert.False(t, v.Result.CanActivate)

	v, err = p.Verify(NewState(), "TR-BAL-001", "Balistik yelek", "4821", en)
	require.NoError(t, err)
	assert.True(t, v.Result.Found)
	assert.True(t, v.Result.CanActivate)
}

func TestRequirePINSkipsCodesWithoutPIN(t *testing.T) {
	ds := catalog.SampleDataset()
	info := ds.Codes["TR-PLK-002"]
	info.PIN = ""
	ds.Codes["TR-PLK-002"] = info
	cat, err := catalog.New(ds)
	require.NoError(t, err)

	v, err := New(cat, Options{RequirePIN: true}, nil).Verify(NewState(), "TR-PLK-002", "Seramik plaka", "", en)
	require.NoError(t, err)
	assert.True(t, v.Result.Found)
}

func TestPINIgnoredWhenNotRequired(t *testing.T) {
	p, _ := newTestPortal(t, Options{})
	v, err := p.Verify(NewState(), "TR-BAL-001", "Balistik yelek", "", en)
	require.NoError(t, err)
	assert.True(t, v.Result.Found)
}

func TestViewIsLocalized(t *testing.T) {
	p, _ := newTestPortal(t, Options{})
	st := NewState()
	_, err := p.Verify(st, "XX", "", "", en)
	require.NoError(t, err)

	ar := i18n.NewTranslator("ar")
	v := p.View(st, ar)
	assert.Equal(t, "rtl", v.Dir)
	assert.Equal(t, ar.T("codeNotFound"), v.Result.Title)
	assert.NotEqual(t, en.T("codeNotFound"), v.Result.Title)
}

func TestSessionsAreIsolated(t *testing.T) {
	p, _ := newTestPortal(t, Options{})
	a, b := NewState(), NewState()

	activate(t, p, a, "TR-BOT-004", "Taktik bot", validForm())

	v, err := p.Verify(b, "TR-BOT-004", "Taktik bot", "", en)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnused, v.Result.Status)
	assert.True(t, v.Result.CanActivate)
}

func TestConfirmHonorsContext(t *testing.T) {
	p, _ := newTestPortal(t, Options{Delay: time.Hour})
	st := NewState()
	_, err := p.Verify(st, "TR-BAL-001", "Balistik yelek", "", en)
	require.NoError(t, err)
	_, err = p.OpenActivation(st, en)
	require.NoError(t, err)
	_, err = p.UpdateForm(st, validForm(), en)
	require.NoError(t, err)
	_, err = p.Next(st, en)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Confirm(ctx, st, en)
	require.ErrorIs(t, err, context.Canceled)

	v := p.View(st, en)
	require.NotNil(t, v.Activation)
	assert.True(t, v.Activation.ConfirmStep)
	assert.False(t, v.Activation.Submitting)
	assert.Equal(t, models.StatusUnused, v.Result.Status)
}
