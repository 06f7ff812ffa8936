package i18n

import "golang.org/x/text/language"

func init() {
	register(language.Spanish, map[string]string{
		"title":            "Portal de Verificación de Defensa de Ecuador",
		"subtitle":         "Producto seguro, sistema seguro • Ecuador",
		"pageSectionTitle": "Verificación de Producto (Ecuador)",
		"pageSectionHint":  "Introduzca el número de serie y seleccione la categoría. Ejemplo:",
		"footer":           "Portal de Verificación de Defensa de Ecuador • “Producto seguro, sistema seguro”",
		"activatedSuccess": "¡Producto activado correctamente!",
		"demoNote":         "Aviso: Los datos personales introducidos en esta demo son solo para demostración. En un sistema real se procesan conforme a la normativa aplicable en Ecuador.",

		"serialPlaceholder": "Número de serie ej.: TR-BAL-001",
		"pinPlaceholder":    "PIN",
		"selectCategory":    "Seleccione categoría",
		"verify":            "Verificar",

		"errFillAll": "Por favor, complete nombre, apellido y teléfono",
		"errPhone":   "Formato de teléfono no válido",
		"errChecks":  "Marque las casillas de confirmación requeridas",

		"errNotActivatable": "Este código no se puede activar ahora",
		"errNoActivation":   "No hay ninguna activación abierta",
		"errBusy":           "La activación ya se está confirmando",
		"errBadRequest":     "Solicitud no válida",

		"enteredCode":          "Código introducido:",
		"codeNotFound":         "Código no encontrado",
		"codeNotFoundDesc":     "Verifique la escritura o contacte con el vendedor.",
		"warnSelectCategory":   "Seleccione una categoría",
		"warnCategoryMismatch": "La categoría elegida no coincide. Esperado:",
		"warnAlreadyActivated": "Este código ya fue activado. El producto podría no ser original; póngase en contacto con soporte.",
		"product":              "Producto",
		"note":                 "Nota:",
		"category":             "Categoría",
		"registeredOwner":      "Propietario registrado (enmascarado)",
		"firstName":            "Nombre",
		"lastName":             "Apellido",
		"phone":                "Teléfono",
		"activate":             "Activar",
		"qrCode":               "Código QR",

		"activationTitle":    "Datos de Activación",
		"activationSubtitle": "Introduzca sus datos para una verificación más segura.",
		"phonePlaceholder":   "Teléfono (p. ej.: +593 99 999 9999)",
		"agreePolicy":        "He leído y acepto la política.",
		"confirmAccuracy":    "Declaro que mis datos son correctos.",
		"kvkkText":           "Sus datos se procesarán conforme a la normativa aplicable con fines de seguridad de verificación, detección de fraude y soporte.",
		"cancel":             "Cancelar",
		"continue":           "Continuar",
		"summaryTitle":       "Resumen y Confirmación",
		"code":               "Código",
		"fullName":           "Nombre y Apellido",
		"edit":               "Editar",
		"confirming":         "Confirmando…",
		"confirmActivation":  "Confirmar Activación",

		"category.uniform1": "Uniforme 1",
		"category.uniform2": "Uniforme 2",
		"category.uniform3": "Uniforme 3",

		"status.UNUSED.label":    "Original: no activado",
		"status.UNUSED.desc":     "Código encontrado. Puede activarse en la compra.",
		"status.ACTIVATED.label": "Código ya activado",
		"status.ACTIVATED.desc":  "Este producto ya fue verificado.",
		"status.BLOCKED.label":   "Código bloqueado",
		"status.BLOCKED.desc":    "Póngase en contacto con el vendedor o soporte.",
	})
}
