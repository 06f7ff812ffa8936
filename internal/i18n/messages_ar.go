package i18n

import "golang.org/x/text/language"

func init() {
	register(language.Arabic, map[string]string{
		"title":            "بوابة التحقق الدفاعية في الإكوادور",
		"subtitle":         "منتج آمن، نظام آمن • الإكوادور",
		"pageSectionTitle": "التحقق من المنتج (الإكوادور)",
		"pageSectionHint":  "أدخل الرقم التسلسلي واختر الفئة. مثال:",
		"footer":           "بوابة التحقق الدفاعية في الإكوادور • «منتج آمن، نظام آمن»",
		"activatedSuccess": "تم تفعيل المنتج بنجاح!",
		"demoNote":         "ملاحظة: البيانات الشخصية المُدخلة في هذا العرض لأغراض توضيحية فقط. في النظام الفعلي تُعالج وفق القوانين المعمول بها في الإكوادور.",

		"serialPlaceholder": "رقم تسلسلي مثال: TR-BAL-001",
		"pinPlaceholder":    "PIN",
		"selectCategory":    "اختر الفئة",
		"verify":            "تحقق",

		"errFillAll": "يرجى إدخال الاسم والكنية ورقم الهاتف",
		"errPhone":   "صيغة رقم الهاتف غير صحيحة",
		"errChecks":  "يرجى تحديد مربعات التأكيد المطلوبة",

		"errNotActivatable": "لا يمكن تفعيل هذا الرمز الآن",
		"errNoActivation":   "لا توجد عملية تفعيل مفتوحة",
		"errBusy":           "جارٍ تأكيد التفعيل بالفعل",
		"errBadRequest":     "طلب غير صالح",

		"enteredCode":          "الرمز المُدخل:",
		"codeNotFound":         "لم يتم العثور على الرمز",
		"codeNotFoundDesc":     "تحقق من الكتابة أو تواصل مع البائع.",
		"warnSelectCategory":   "يرجى اختيار فئة",
		"warnCategoryMismatch": "الفئة المختارة لا تطابق هذا الرمز. المتوقعة:",
		"warnAlreadyActivated": "تم تفعيل هذا الرمز سابقًا. قد لا يكون المنتج أصليًا، يُرجى التواصل مع الدعم.",
		"product":              "المنتج",
		"note":                 "ملاحظة:",
		"category":             "الفئة",
		"registeredOwner":      "المالك المسجل (مخفي)",
		"firstName":            "الاسم",
		"lastName":             "الكنية",
		"phone":                "الهاتف",
		"activate":             "تفعيل",
		"qrCode":               "رمز QR",

		"activationTitle":    "بيانات التفعيل",
		"activationSubtitle": "أدخل بياناتك لضمان تحقق أكثر أمانًا.",
		"phonePlaceholder":   "الهاتف (مثال: +90 555 555 55 55)",
		"agreePolicy":        "قرأت السياسة وأوافق عليها.",
		"confirmAccuracy":    "أقرّ بصحة بياناتي.",
		"kvkkText":           "تُعالج بياناتك وفق القوانين لأغراض أمان التحقق وكشف الاحتيال ودعم العملاء.",
		"cancel":             "إلغاء",
		"continue":           "متابعة",
		"summaryTitle":       "ملخص وتأكيد",
		"code":               "الرمز",
		"fullName":           "الاسم الكامل",
		"edit":               "تعديل",
		"confirming":         "جارٍ التأكيد…",
		"confirmActivation":  "تأكيد التفعيل",

		"category.uniform1": "الزي 1",
		"category.uniform2": "الزي 2",
		"category.uniform3": "الزي 3",

		"status.UNUSED.label":    "أصلي: غير مُفعّل",
		"status.UNUSED.desc":     "تم العثور على الرمز. يمكن تفعيله عند الشراء.",
		"status.ACTIVATED.label": "الرمز مُفعّل سابقًا",
		"status.ACTIVATED.desc":  "تم التحقق من هذا المنتج مسبقًا.",
		"status.BLOCKED.label":   "الرمز محظور",
		"status.BLOCKED.desc":    "يرجى التواصل مع البائع أو الدعم.",
	})
}
