package catalog

import "github.com/harrylevesque/qrverify/internal/models"

// SampleCategories are the selectable product categories of the demo dataset.
var SampleCategories = []string{
	"Balistik yelek",
	"Seramik plaka",
	"Balistik kask",
	"Taktik bot",
	"Plaka taşıyıcı",
}

// SampleDataset returns a fresh copy of the built-in demo dataset. Every code
// carries the PIN printed next to it on the label; PINs are only checked when
// PIN verification is enabled.
func SampleDataset() models.Dataset {
	return models.Dataset{
		Categories: append([]string(nil), SampleCategories...),
		Codes: map[string]models.CodeInfo{
			// UNUSED
			"TR-BAL-001": {Status: models.StatusUnused, Product: "Balistik Yelek M12", Category: "Balistik yelek", PIN: "4821"},
			"TR-PLK-002": {Status: models.StatusUnused, Product: "Seramik Plaka S2", Category: "Seramik plaka", PIN: "3170"},
			"TR-KSK-003": {Status: models.StatusUnused, Product: "Balistik Kask K3", Category: "Balistik kask", PIN: "5094"},
			"TR-BOT-004": {Status: models.StatusUnused, Product: "Taktik Bot T4", Category: "Taktik bot", PIN: "2648"},
			"TR-PTC-005": {Status: models.StatusUnused, Product: "Plaka Taşıyıcı P5", Category: "Plaka taşıyıcı", PIN: "7315"},

			// ACTIVATED
			"TR-PLK-777": {Status: models.StatusActivated, Product: "Seramik Plaka S4", Category: "Seramik plaka", Note: "10.10.2025 tarihinde etkinleştirildi", PIN: "9023"},
			"TR-KSK-778": {Status: models.StatusActivated, Product: "Balistik Kask K7", Category: "Balistik kask", Note: "05.09.2025 tarihinde etkinleştirildi", PIN: "1486"},

			// BLOCKED
			"TR-BOT-404": {Status: models.StatusBlocked, Product: "Taktik Bot T9", Category: "Taktik bot", Note: "Tedarikçi tarafından engellendi", PIN: "6652"},
			"TR-BAL-999": {Status: models.StatusBlocked, Product: "Balistik Yelek M99", Category: "Balistik yelek", Note: "Seri iptal edildi", PIN: "8307"},
		},
		Owners: map[string]models.ActivationMeta{
			"TR-PLK-777": {FirstName: "Ahmet", LastName: "Yılmaz", Phone: "+90 555 123 45 67"},
			"TR-KSK-778": {FirstName: "Zeynep", LastName: "Demir", Phone: "+90 530 987 65 43"},
		},
	}
}

// MustSample builds a catalog from the demo dataset.
func MustSample() *Catalog {
	c, err := New(SampleDataset())
	if err != nil {
		panic(err)
	}
	return c
}
