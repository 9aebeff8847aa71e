// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lookupui

import "fmt"

// Screen text. The interface is Marathi throughout, matching the
// ward office's paper rolls.
const (
	headerTitle    = "प्रवीण डोंगरे प्रभाग क्रमांक 7"
	headerSubtitle = "मतदार शोध प्रणाली"

	searchPlaceholder = "नाव, मतदान कार्ड क्र., मोबाईल नं. टाइप करा..."
	clearMarker       = "✕"

	loadingText   = "डेटा लोड होत आहे..."
	summaryLabel  = "कुल मतदार"
	noResultsText = "कोणतेही परिणाम सापडले नाही"

	columnLocalName   = "नाव (मराठी)"
	columnEnglishName = "नाव (इंग्रजी)"
	columnVoterID     = "मतदान कार्ड क्र."
	columnMobile      = "मोबाईल नं."
	columnAction      = "क्रिया"
	rowAction         = "पहा"
	cardAction        = "सर्व तपशील पहा"

	detailTitle      = "संपूर्ण मतदार माहिती"
	detailClose      = "बंद करा"
	sectionBasic     = "📌 मूलभूत माहिती"
	sectionCard      = "🪪 मतदान कार्ड माहिती"
	sectionAddress   = "📍 पत्ता"
	sectionContact   = "📞 संपर्क माहिती"
	labelNameEnglish = "नाव (इंग्रजी)"
	labelNameLocal   = "नाव (मराठी)"
	labelLastEnglish = "उपनाव (इंग्रजी)"
	labelLastLocal   = "उपनाव (मराठी)"
	labelAge         = "वय"
	labelGender      = "लिंग"
	labelVoterID     = "मतदान कार्ड क्र."
	labelEPIC        = "EPIC NO"
	labelAssembly    = "AC NO"
	labelPart        = "PART NO"
	labelAddrEnglish = "पत्ता (इंग्रजी)"
	labelAddrLocal   = "पत्ता (मराठी)"
	labelHouse       = "घर क्र."
	labelMobile      = "मोबाईल नं."
)

func suggestionHeader(count int) string {
	return fmt.Sprintf("%d सुझाव", count)
}

func resultCountText(count int) string {
	return fmt.Sprintf("%d परिणाम सापडले", count)
}
