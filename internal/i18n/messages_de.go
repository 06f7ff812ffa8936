package i18n

import "golang.org/x/text/language"

func init() {
	register(language.German, map[string]string{
		"title":            "Ecuador Verteidigungs-Verifizierungsportal",
		"subtitle":         "Sicheres Produkt, sicheres System • Ecuador",
		"pageSectionTitle": "Produktverifizierung (Ecuador)",
		"pageSectionHint":  "Seriennummer eingeben und Kategorie wählen. Beispiel:",
		"footer":           "Ecuador Verteidigungs-Verifizierungsportal • „Sicheres Produkt, sicheres System“",
		"activatedSuccess": "Produkt erfolgreich aktiviert!",
		"demoNote":         "Hinweis: In dieser Demo eingegebene personenbezogene Daten dienen nur der Vorführung. Im Produktivsystem werden sie gemäß den Vorschriften in Ecuador verarbeitet.",

		"serialPlaceholder": "Seriennummer z. B.: TR-BAL-001",
		"pinPlaceholder":    "PIN",
		"selectCategory":    "Kategorie wählen",
		"verify":            "Prüfen",

		"errFillAll": "Bitte Vorname, Nachname und Telefonnummer ausfüllen",
		"errPhone":   "Telefonformat ist ungültig",
		"errChecks":  "Bitte erforderliche Bestätigungsfelder ankreuzen",

		"errNotActivatable": "Dieser Code kann derzeit nicht aktiviert werden",
		"errNoActivation":   "Keine offene Aktivierung",
		"errBusy":           "Die Aktivierung wird bereits bestätigt",
		"errBadRequest":     "Ungültige Anfrage",

		"enteredCode":          "Eingegebener Code:",
		"codeNotFound":         "Code nicht gefunden",
		"codeNotFoundDesc":     "Bitte Schreibweise prüfen oder den Verkäufer kontaktieren.",
		"warnSelectCategory":   "Bitte eine Kategorie wählen",
		"warnCategoryMismatch": "Die gewählte Kategorie stimmt nicht überein. Erwartet:",
		"warnAlreadyActivated": "Dieser Code wurde bereits aktiviert. Das Produkt könnte nicht original sein. Bitte Support kontaktieren.",
		"product":              "Produkt",
		"note":                 "Hinweis:",
		"category":             "Kategorie",
		"registeredOwner":      "Registrierter Besitzer (maskiert)",
		"firstName":            "Vorname",
		"lastName":             "Nachname",
		"phone":                "Telefon",
		"activate":             "Aktivieren",
		"qrCode":               "QR-Code",

		"activationTitle":    "Aktivierungsdaten",
		"activationSubtitle": "Geben Sie Ihre Daten für eine sichere Verifizierung ein.",
		"phonePlaceholder":   "Telefon (z. B.: +49 151 23456789)",
		"agreePolicy":        "Ich habe die Richtlinie gelesen und stimme zu.",
		"confirmAccuracy":    "Ich bestätige die Richtigkeit meiner Angaben.",
		"kvkkText":           "Ihre Daten werden gemäß den Vorschriften zum Zwecke der Verifizierungssicherheit, Betrugserkennung und des Supports verarbeitet.",
		"cancel":             "Abbrechen",
		"continue":           "Weiter",
		"summaryTitle":       "Zusammenfassung & Bestätigung",
		"code":               "Code",
		"fullName":           "Vollständiger Name",
		"edit":               "Bearbeiten",
		"confirming":         "Wird bestätigt…",
		"confirmActivation":  "Aktivierung bestätigen",

		"category.uniform1": "Uniform 1",
		"category.uniform2": "Uniform 2",
		"category.uniform3": "Uniform 3",

		"status.UNUSED.label":    "Original: nicht aktiviert",
		"status.UNUSED.desc":     "Code gefunden. Kann beim Kauf aktiviert werden.",
		"status.ACTIVATED.label": "Code bereits aktiviert",
		"status.ACTIVATED.desc":  "Dieses Produkt wurde bereits verifiziert.",
		"status.BLOCKED.label":   "Code gesperrt",
		"status.BLOCKED.desc":    "Bitte Verkäufer oder Support kontaktieren.",
	})
}
