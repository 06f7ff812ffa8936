package i18n

import "golang.org/x/text/language"

func init() {
	register(language.French, map[string]string{
		"title":            "Portail de Vérification de Défense de l’Équateur",
		"subtitle":         "Produit sûr, système sûr • Équateur",
		"pageSectionTitle": "Vérification du Produit (Équateur)",
		"pageSectionHint":  "Saisissez le numéro de série et choisissez la catégorie. Exemple :",
		"footer":           "Portail de Vérification de Défense de l’Équateur • « Produit sûr, système sûr »",
		"activatedSuccess": "Produit activé avec succès !",
		"demoNote":         "Note : Les données personnelles saisies dans cette démo servent uniquement d’illustration. En production elles sont traitées selon la réglementation en vigueur en Équateur.",

		"serialPlaceholder": "N° de série ex. : TR-BAL-001",
		"pinPlaceholder":    "PIN",
		"selectCategory":    "Choisir une catégorie",
		"verify":            "Vérifier",

		"errFillAll": "Veuillez renseigner le prénom, le nom et le téléphone",
		"errPhone":   "Format de téléphone invalide",
		"errChecks":  "Veuillez cocher les cases de confirmation requises",

		"errNotActivatable": "Ce code ne peut pas être activé pour le moment",
		"errNoActivation":   "Aucune activation en cours",
		"errBusy":           "L’activation est déjà en cours de confirmation",
		"errBadRequest":     "Requête invalide",

		"enteredCode":          "Code saisi :",
		"codeNotFound":         "Code introuvable",
		"codeNotFoundDesc":     "Vérifiez la saisie ou contactez le vendeur.",
		"warnSelectCategory":   "Veuillez choisir une catégorie",
		"warnCategoryMismatch": "La catégorie choisie ne correspond pas. Attendu :",
		"warnAlreadyActivated": "Ce code a déjà été activé. Le produit peut ne pas être original ; veuillez contacter le support.",
		"product":              "Produit",
		"note":                 "Note :",
		"category":             "Catégorie",
		"registeredOwner":      "Propriétaire enregistré (masqué)",
		"firstName":            "Prénom",
		"lastName":             "Nom",
		"phone":                "Téléphone",
		"activate":             "Activer",
		"qrCode":               "Code QR",

		"activationTitle":    "Données d’Activation",
		"activationSubtitle": "Saisissez vos informations pour une vérification plus sûre.",
		"phonePlaceholder":   "Téléphone (ex. : +33 6 12 34 56 78)",
		"agreePolicy":        "J’ai lu et j’accepte la politique.",
		"confirmAccuracy":    "Je certifie l’exactitude de mes informations.",
		"kvkkText":           "Vos données sont traitées, conformément à la réglementation, pour la sécurité de vérification, la détection de fraude et l’assistance.",
		"cancel":             "Annuler",
		"continue":           "Continuer",
		"summaryTitle":       "Récapitulatif & Confirmation",
		"code":               "Code",
		"fullName":           "Nom complet",
		"edit":               "Modifier",
		"confirming":         "Confirmation…",
		"confirmActivation":  "Confirmer l’Activation",

		"category.uniform1": "Uniforme 1",
		"category.uniform2": "Uniforme 2",
		"category.uniform3": "Uniforme 3",

		"status.UNUSED.label":    "Original : non activé",
		"status.UNUSED.desc":     "Code trouvé. Peut être activé lors de l’achat.",
		"status.ACTIVATED.label": "Code déjà activé",
		"status.ACTIVATED.desc":  "Ce produit a déjà été vérifié.",
		"status.BLOCKED.label":   "Code bloqué",
		"status.BLOCKED.desc":    "Veuillez contacter le vendeur ou le support.",
	})
}
