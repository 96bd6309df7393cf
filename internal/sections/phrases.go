// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sections

import "shamai-scan/internal/detector"

// Header phrases per section kind, most specific / longest first. Order is
// a tie-break: when several phrases match a document, the one earliest in
// the list wins regardless of where it appears in the text. The lists are
// tuned empirically against published decisive-appraiser decisions and can
// be extended through configuration without recompiling.
var defaultPhrases = map[detector.SectionKind][]string{
	detector.KindPartyA: {
		"עיקרי טענות המבקשת",
		"עיקרי טענות המבקש",
		"תמצית טענות המבקשת",
		"תמצית טענות המבקש",
		"טענות שמאי המבקשת",
		"טענות שמאי המבקש",
		"טענות המבקשים",
		"טענות המבקשת",
		"טענות המבקש",
		"טענות העוררת",
		"טענות העורר",
		"טענות בעל המקרקעין",
	},
	detector.KindPartyB: {
		"עיקרי טענות המשיבה",
		"עיקרי טענות המשיב",
		"תמצית טענות המשיבה",
		"טענות שמאי המשיבה",
		"טענות הוועדה המקומית",
		"טענות הועדה המקומית",
		"טענות המשיבה",
		"טענות המשיב",
	},
	detector.KindPartiesClaims: {
		"עיקרי טענות הצדדים",
		"תמצית טענות הצדדים",
		"טענות הצדדים ושמאי הצדדים",
		"טענות הצדדים",
		"טענות שמאי הצדדים",
	},
	detector.KindRuling: {
		"דיון והכרעה",
		"דיון והחלטה",
		"הכרעת השמאי המכריע",
		"הכרעה",
		"החלטה",
		"שומה מכרעת",
	},
	detector.KindComparisons: {
		"עסקאות השוואה",
		"עסקאות להשוואה",
		"נתוני השוואה",
		"סקר עסקאות",
		"עסקאות שנסקרו",
		"שומות להשוואה",
	},
	detector.KindCalculation: {
		"חישוב היטל ההשבחה",
		"תחשיב ההשבחה",
		"חישוב ההשבחה",
		"עקרונות השומה",
		"תחשיב השומה",
		"התחשיב",
		"תחשיב",
	},
}

// Informal inline markers used when no formal header is present. These are
// sentence openers, not headings, so they are located by plain substring
// search and produce a fixed window rather than a bounded section.
var defaultFallbacks = map[detector.SectionKind][]string{
	detector.KindPartyA: {
		"לטענת המבקשת",
		"לטענת המבקש",
		"לטענת העוררת",
		"לטענת העורר",
		"המבקש טוען",
		"המבקשת טוענת",
	},
	detector.KindPartyB: {
		"לטענת המשיבה",
		"לטענת המשיב",
		"לטענת הוועדה המקומית",
		"המשיבה טוענת",
	},
	detector.KindRuling: {
		"לאחר ששקלתי",
		"לאחר שבחנתי",
		"לאחר שעיינתי",
		"הגעתי לכלל מסקנה",
		"אני קובע",
		"אני קובעת",
	},
	detector.KindComparisons: {
		"מניתוח העסקאות",
		"להלן עסקאות",
		"עסקאות שנמצאו",
	},
	detector.KindCalculation: {
		"להלן התחשיב",
		"להלן חישוב",
		"שווי במצב קודם",
		"שווי במצב חדש",
	},
}
