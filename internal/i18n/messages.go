package i18n

// Transient messages shown by the screens. Only English and Arabic have
// dedicated wording; every other language falls back to English.
const (
	MsgLoggedInGoogle    = "loggedInGoogle"
	MsgLoginFailed       = "loginFailed"
	MsgEnteringGuest     = "enteringGuest"
	MsgSignedOut         = "signedOut"
	MsgSavedToLibrary    = "savedToLibrary"
	MsgAlreadySaved      = "alreadySaved"
	MsgRecordingDeleted  = "recordingDeleted"
	MsgRecordingsDeleted = "recordingsDeleted"
	MsgDeleteFailed      = "deleteFailed"
	MsgCacheCleared      = "cacheCleared"
	MsgGenerationFailed  = "generationFailed"
	MsgInvalidPDF        = "invalidPDF"
	MsgExtractLimit      = "extractLimit"
	MsgExtractFailed     = "extractFailed"
	MsgScanNoText        = "scanNoText"
	MsgScanLimit         = "scanLimit"
	MsgScanFailed        = "scanFailed"
	MsgVoiceLimit        = "voiceLimit"
	MsgVoiceFailed       = "voiceFailed"
	MsgScanning          = "scanning"
	MsgConfirmDelete     = "confirmDelete"
	MsgConfirmSignOut    = "confirmSignOut"
)

var messages = map[Language]map[string]string{
	English: {
		MsgLoggedInGoogle:    "Logged in with Google",
		MsgLoginFailed:       "Google Login failed",
		MsgEnteringGuest:     "Entering as Guest",
		MsgSignedOut:         "Signed out successfully",
		MsgSavedToLibrary:    "Saved to Library",
		MsgAlreadySaved:      "Already saved",
		MsgRecordingDeleted:  "Recording deleted",
		MsgRecordingsDeleted: "%d recordings deleted",
		MsgDeleteFailed:      "Failed to delete item",
		MsgCacheCleared:      "Cache cleared successfully",
		MsgGenerationFailed:  "Generation failed. Please try again.",
		MsgInvalidPDF:        "Please select a valid PDF file",
		MsgExtractLimit:      "Extraction limit reached. Please wait a moment and try again.",
		MsgExtractFailed:     "Failed to extract article text. Try copying the text manually.",
		MsgScanNoText:        "No text found in image. Please try again.",
		MsgScanLimit:         "Daily limit reached. Please try again in a few minutes.",
		MsgScanFailed:        "Scan failed. Please check your connection.",
		MsgVoiceLimit:        "Voice limit reached. Please wait a moment before trying again.",
		MsgVoiceFailed:       "Voice generation failed.",
		MsgScanning:          "Scanning Image...",
		MsgConfirmDelete:     "Delete this recording? It will be permanently removed from your cloud library.",
		MsgConfirmSignOut:    "Are you sure you want to sign out?",
	},
	Arabic: {
		MsgLoggedInGoogle:   "تم تسجيل الدخول بواسطة جوجل",
		MsgLoginFailed:      "فشل تسجيل الدخول",
		MsgEnteringGuest:    "تم الدخول كضيف",
		MsgSignedOut:        "تم تسجيل الخروج بنجاح",
		MsgSavedToLibrary:   "تم الحفظ بنجاح",
		MsgRecordingDeleted: "تم الحذف بنجاح",
		MsgScanning:         "جاري المسح...",
		MsgConfirmDelete:    "هل أنت متأكد من حذف هذا التسجيل؟ سيتم إزالته نهائياً من حسابك.",
		MsgConfirmSignOut:   "هل أنت متأكد من تسجيل الخروج؟",
	},
}

// Message returns the transient message for key in the table's language.
func (t Translations) Message(key string) string {
	if m, ok := messages[t.lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[English][key]; ok {
		return s
	}
	return key
}
