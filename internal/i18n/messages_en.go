package i18n

import "golang.org/x/text/language"

func init() {
	register(language.English, map[string]string{
		"title":            "Ecuador Defense Verification Portal",
		"subtitle":         "Secure product, secure system • Ecuador",
		"pageSectionTitle": "Product Verification (Ecuador)",
		"pageSectionHint":  "Enter serial and choose category. Example:",
		"footer":           "Ecuador Defense Verification Portal • “Secure product, secure system”",
		"activatedSuccess": "Product activated successfully!",
		"demoNote":         "Note: Personal data entered in this demo is for demonstration only. In production it is processed under applicable regulations in Ecuador.",

		"serialPlaceholder": "Serial e.g. TR-BAL-001",
		"pinPlaceholder":    "PIN",
		"selectCategory":    "Select category",
		"verify":            "Verify",

		"errFillAll": "Please fill first name, last name and phone",
		"errPhone":   "Invalid phone format",
		"errChecks":  "Please tick the required confirmation boxes",

		"errNotActivatable": "This code cannot be activated right now",
		"errNoActivation":   "There is no open activation",
		"errBusy":           "The activation is already being confirmed",
		"errBadRequest":     "Invalid request",

		"enteredCode":          "Entered code:",
		"codeNotFound":         "Code not found",
		"codeNotFoundDesc":     "Check the spelling or contact the seller.",
		"warnSelectCategory":   "Please select a category",
		"warnCategoryMismatch": "Selected category does not match. Expected:",
		"warnAlreadyActivated": "This code has already been activated. The product may not be original; please contact support.",
		"product":              "Product",
		"note":                 "Note:",
		"category":             "Category",
		"registeredOwner":      "Registered Owner (masked)",
		"firstName":            "First name",
		"lastName":             "Last name",
		"phone":                "Phone",
		"activate":             "Activate",
		"qrCode":               "QR code",

		"activationTitle":    "Activation Details",
		"activationSubtitle": "Enter your details for a more secure verification.",
		"phonePlaceholder":   "Phone (e.g.: +1 555 555 5555)",
		"agreePolicy":        "I have read and accept the policy.",
		"confirmAccuracy":    "I confirm my information is accurate.",
		"kvkkText":           "Your data is processed for verification security, fraud detection, and support under applicable regulations.",
		"cancel":             "Cancel",
		"continue":           "Continue",
		"summaryTitle":       "Summary & Confirmation",
		"code":               "Code",
		"fullName":           "Full name",
		"edit":               "Edit",
		"confirming":         "Confirming…",
		"confirmActivation":  "Confirm Activation",

		"category.uniform1": "Uniform 1",
		"category.uniform2": "Uniform 2",
		"category.uniform3": "Uniform 3",

		"status.UNUSED.label":    "Original: not activated",
		"status.UNUSED.desc":     "Code found. Can be activated on purchase.",
		"status.ACTIVATED.label": "Code already activated",
		"status.ACTIVATED.desc":  "This product has been verified before.",
		"status.BLOCKED.label":   "Code blocked",
		"status.BLOCKED.desc":    "Please contact the seller or support.",
	})
}
