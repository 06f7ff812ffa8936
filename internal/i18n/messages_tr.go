package i18n

import "golang.org/x/text/language"

func init() {
	register(language.Turkish, map[string]string{
		// Header / page
		"title":            "Ekvador Savunma Doğrulama Portalı",
		"subtitle":         "Güvenli ürün, güvenli sistem • Ekvador",
		"pageSectionTitle": "Ürün Doğrulama (Ekvador)",
		"pageSectionHint":  "Seri numarasını girin ve kategori seçin. Örnek seri:",
		"footer":           "Ekvador Savunma Doğrulama Portalı • “Güvenli ürün, güvenli sistem”",
		"activatedSuccess": "Ürün başarıyla etkinleştirildi!",
		"demoNote":         "KVKK: Bu demo arayüzde girilen kişisel veriler sadece gösterim amaçlıdır. Gerçek sistemde verileriniz; Ekvador’da sunulan ürünlerin doğrulama güvenliği, sahtecilik önleme ve destek süreçleri için ilgili mevzuata uygun şekilde işlenir ve saklanır.",

		// Verify form
		"serialPlaceholder": "Seri numarası örn: TR-BAL-001",
		"pinPlaceholder":    "PIN",
		"selectCategory":    "Kategori seçin",
		"verify":            "Doğrula",

		// Wizard errors
		"errFillAll": "Lütfen ad, soyad ve telefon alanlarını doldurun",
		"errPhone":   "Telefon formatı geçersiz",
		"errChecks":  "Lütfen gerekli onay kutucuklarını işaretleyin",

		// Request errors
		"errNotActivatable": "Bu kod şu anda etkinleştirilemez",
		"errNoActivation":   "Açık bir aktivasyon yok",
		"errBusy":           "Aktivasyon zaten onaylanıyor",
		"errBadRequest":     "Geçersiz istek",

		// Result card
		"enteredCode":          "Girilen kod:",
		"codeNotFound":         "Kod bulunamadı",
		"codeNotFoundDesc":     "Yazımı kontrol edin veya satıcı ile iletişime geçin.",
		"warnSelectCategory":   "Lütfen kategori seçin",
		"warnCategoryMismatch": "Seçilen kategori bu kod ile uyuşmuyor. Beklenen:",
		"warnAlreadyActivated": "Bu kod daha önce etkinleştirilmiş. Ürün orijinal olmayabilir, lütfen destek birimi ile iletişime geçin.",
		"product":              "Ürün",
		"note":                 "Not:",
		"category":             "Kategori",
		"registeredOwner":      "Kayıtlı Sahip (maskeli)",
		"firstName":            "Ad",
		"lastName":             "Soyad",
		"phone":                "Telefon",
		"activate":             "Etkinleştir",
		"qrCode":               "QR kodu",

		// Activation modal
		"activationTitle":    "Aktivasyon Bilgileri",
		"activationSubtitle": "Daha güvenli doğrulama için bilgilerinizi girin.",
		"phonePlaceholder":   "Telefon (örn: +90 555 555 55 55)",
		"agreePolicy":        "Politikayı okudum ve kabul ediyorum.",
		"confirmAccuracy":    "Bilgilerimin doğru olduğunu beyan ederim.",
		"kvkkText":           "KVKK Aydınlatma Metni kapsamında bilgileriniz; doğrulama güvenliği, sahtecilik tespiti ve destek süreçleri için mevzuata uygun şekilde işlenir.",
		"cancel":             "İptal",
		"continue":           "Devam et",
		"summaryTitle":       "Özet ve Onay",
		"code":               "Kod",
		"fullName":           "Ad Soyad",
		"edit":               "Düzenle",
		"confirming":         "Onaylanıyor…",
		"confirmActivation":  "Aktivasyonu Onayla",

		"category.uniform1": "Üniforma 1",
		"category.uniform2": "Üniforma 2",
		"category.uniform3": "Üniforma 3",

		"status.UNUSED.label":    "Orijinal: etkinleştirilmedi",
		"status.UNUSED.desc":     "Kod bulundu. Satın alımda etkinleştirilebilir.",
		"status.ACTIVATED.label": "Kod zaten etkinleştirildi",
		"status.ACTIVATED.desc":  "Bu ürün daha önce doğrulandı.",
		"status.BLOCKED.label":   "Kod engellendi",
		"status.BLOCKED.desc":    "Lütfen satıcı veya destek ile iletişime geçin.",
	})
}
