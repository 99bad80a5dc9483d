package i18n

// Text keys.
const (
	KeyWelcomeBack         = "welcomeBack"
	KeyAppName             = "appName"
	KeySearchPlaceholder   = "searchPlaceholder"
	KeyListenAnywhere      = "listenAnywhere"
	KeyListenAnywhereSub   = "listenAnywhereSub"
	KeyCreateAudio         = "createAudio"
	KeyViewAll             = "viewAll"
	KeyWriteText           = "writeText"
	KeyWriteTextSub        = "writeTextSub"
	KeyUploadPDF           = "uploadPDF"
	KeyUploadPDFSub        = "uploadPDFSub"
	KeyPasteLink           = "pasteLink"
	KeyPasteLinkSub        = "pasteLinkSub"
	KeyScanText            = "scanText"
	KeyScanTextSub         = "scanTextSub"
	KeyActivity            = "activity"
	KeySavedAudios         = "savedAudios"
	KeyReadingTime         = "readingTime"
	KeyMins                = "mins"
	KeyHome                = "home"
	KeyLibrary             = "library"
	KeySettings            = "settings"
	KeyProfile             = "profile"
	KeyLogout              = "logout"
	KeyLanguage            = "language"
	KeyDarkMode            = "darkMode"
	KeyAutoSave            = "autoSave"
	KeyDelete              = "delete"
	KeyPlay                = "play"
	KeyConvertToAudio      = "convertToAudio"
	KeyAbout               = "about"
	KeyAccount             = "account"
	KeySignUp              = "signUp"
	KeySignIn              = "signIn"
	KeyGoogle              = "google"
	KeyAutoDetect          = "autoDetect"
	KeyAutoDetectSub       = "autoDetectSub"
	KeyHighlighting        = "highlighting"
	KeyHighlightingSub     = "highlightingSub"
	KeyClearCache          = "clearCache"
	KeyContinueReading     = "continueReading"
	KeyJumpBackIn          = "jumpBackIn"
	KeyTotal               = "total"
	KeyRead                = "read"
	KeyVersion             = "version"
	KeyEmailPlaceholder    = "emailPlaceholder"
	KeyPasswordPlaceholder = "passwordPlaceholder"
	KeyFullNamePlaceholder = "fullNamePlaceholder"
	KeyAlreadyHaveAccount  = "alreadyHaveAccount"
	KeyDontHaveAccount     = "dontHaveAccount"
	KeyWelcomeBackLogin    = "welcomeBackLogin"
	KeyStartJourney        = "startJourney"
	KeySignInSaved         = "signInSaved"
	KeyCreateAccount       = "createAccount"
	KeyQuickActions        = "quickActions"
	KeyScanResults         = "scanResults"
	KeyOpenCamera          = "openCamera"
	KeyChooseGallery       = "chooseGallery"
	KeyEdit                = "edit"
	KeyRetake              = "retake"
	KeyNowPlaying          = "nowPlaying"
	KeySave                = "save"
	KeySaved               = "saved"
	KeySpeed               = "speed"
	KeyGender              = "gender"
	KeyMale                = "male"
	KeyFemale              = "female"
	KeyVoiceSettings       = "voiceSettings"
	KeyAppearance          = "appearance"
	KeyStorageSupport      = "storageSupport"
	KeySkip                = "skip"
)

// allKeys lists every key each table must define.
var allKeys = []string{
	KeyWelcomeBack,
	KeyAppName,
	KeySearchPlaceholder,
	KeyListenAnywhere,
	KeyListenAnywhereSub,
	KeyCreateAudio,
	KeyViewAll,
	KeyWriteText,
	KeyWriteTextSub,
	KeyUploadPDF,
	KeyUploadPDFSub,
	KeyPasteLink,
	KeyPasteLinkSub,
	KeyScanText,
	KeyScanTextSub,
	KeyActivity,
	KeySavedAudios,
	KeyReadingTime,
	KeyMins,
	KeyHome,
	KeyLibrary,
	KeySettings,
	KeyProfile,
	KeyLogout,
	KeyLanguage,
	KeyDarkMode,
	KeyAutoSave,
	KeyDelete,
	KeyPlay,
	KeyConvertToAudio,
	KeyAbout,
	KeyAccount,
	KeySignUp,
	KeySignIn,
	KeyGoogle,
	KeyAutoDetect,
	KeyAutoDetectSub,
	KeyHighlighting,
	KeyHighlightingSub,
	KeyClearCache,
	KeyContinueReading,
	KeyJumpBackIn,
	KeyTotal,
	KeyRead,
	KeyVersion,
	KeyEmailPlaceholder,
	KeyPasswordPlaceholder,
	KeyFullNamePlaceholder,
	KeyAlreadyHaveAccount,
	KeyDontHaveAccount,
	KeyWelcomeBackLogin,
	KeyStartJourney,
	KeySignInSaved,
	KeyCreateAccount,
	KeyQuickActions,
	KeyScanResults,
	KeyOpenCamera,
	KeyChooseGallery,
	KeyEdit,
	KeyRetake,
	KeyNowPlaying,
	KeySave,
	KeySaved,
	KeySpeed,
	KeyGender,
	KeyMale,
	KeyFemale,
	KeyVoiceSettings,
	KeyAppearance,
	KeyStorageSupport,
	KeySkip,
}

var english = map[string]string{
	KeyWelcomeBack:         "Welcome Back!",
	KeyAppName:             "Educalm",
	KeySearchPlaceholder:   "Search Library",
	KeyListenAnywhere:      "Listen to anything, anywhere.",
	KeyListenAnywhereSub:   "Turn any document or web link into clear AI speech.",
	KeyCreateAudio:         "Create Audio",
	KeyViewAll:             "View All",
	KeyWriteText:           "Write Text",
	KeyWriteTextSub:        "Type or paste text directly",
	KeyUploadPDF:           "Upload PDF",
	KeyUploadPDFSub:        "Extract text from files",
	KeyPasteLink:           "Paste Link",
	KeyPasteLinkSub:        "Convert web articles",
	KeyScanText:            "Scan Text",
	KeyScanTextSub:         "Extract text using your camera",
	KeyActivity:            "Activity",
	KeySavedAudios:         "Saved Audios",
	KeyReadingTime:         "Reading Time",
	KeyMins:                "Mins",
	KeyHome:                "Home",
	KeyLibrary:             "Library",
	KeySettings:            "Settings",
	KeyProfile:             "Profile",
	KeyLogout:              "Logout",
	KeyLanguage:            "Language",
	KeyDarkMode:            "Dark Mode",
	KeyAutoSave:            "Auto-Save Audio",
	KeyDelete:              "Delete",
	KeyPlay:                "Play",
	KeyConvertToAudio:      "Generate Audio",
	KeyAbout:               "About Educalm",
	KeyAccount:             "Account",
	KeySignUp:              "Sign Up",
	KeySignIn:              "Sign In",
	KeyGoogle:              "Google",
	KeyAutoDetect:          "Auto Language Detection",
	KeyAutoDetectSub:       "Identifies language automatically",
	KeyHighlighting:        "Word Highlighting",
	KeyHighlightingSub:     "Highlight words during playback",
	KeyClearCache:          "Clear Cached Files",
	KeyContinueReading:     "Continue Reading",
	KeyJumpBackIn:          "Jump Back In",
	KeyTotal:               "Total",
	KeyRead:                "Read",
	KeyVersion:             "Version 1.0.0",
	KeyEmailPlaceholder:    "Email Address",
	KeyPasswordPlaceholder: "Password",
	KeyFullNamePlaceholder: "Full Name",
	KeyAlreadyHaveAccount:  "Already have an account? Sign In",
	KeyDontHaveAccount:     "Don't have an account? Sign Up",
	KeyWelcomeBackLogin:    "Welcome Back",
	KeyStartJourney:        "Start your journey with Educalm",
	KeySignInSaved:         "Sign in to access your saved library",
	KeyCreateAccount:       "Create Account",
	KeyQuickActions:        "Quick Actions",
	KeyScanResults:         "Scan Results",
	KeyOpenCamera:          "Open Camera",
	KeyChooseGallery:       "Choose from Gallery",
	KeyEdit:                "Edit",
	KeyRetake:              "Retake",
	KeyNowPlaying:          "Now Playing",
	KeySave:                "Save",
	KeySaved:               "Saved",
	KeySpeed:               "Speed",
	KeyGender:              "Gender",
	KeyMale:                "Male",
	KeyFemale:              "Female",
	KeyVoiceSettings:       "Voice Settings",
	KeyAppearance:          "Appearance",
	KeyStorageSupport:      "Storage & Support",
	KeySkip:                "Skip",
}

var arabic = map[string]string{
	KeyWelcomeBack:         "مرحباً بك مجدداً!",
	KeyAppName:             "إديوكالم",
	KeySearchPlaceholder:   "البحث في المكتبة",
	KeyListenAnywhere:      "استمع لأي شيء في أي مكان.",
	KeyListenAnywhereSub:   "حول أي مستند أو رابط ويب إلى صوت ذكاء اصطناعي واضح.",
	KeyCreateAudio:         "إنشاء ملف صوتي",
	KeyViewAll:             "عرض الكل",
	KeyWriteText:           "كتابة نص",
	KeyWriteTextSub:        "اكتب أو الصق النص مباشرة",
	KeyUploadPDF:           "رفع ملف PDF",
	KeyUploadPDFSub:        "استخراج النص من الملفات",
	KeyPasteLink:           "لصق رابط",
	KeyPasteLinkSub:        "تحويل مقالات الويب",
	KeyScanText:            "مسح ضوئي",
	KeyScanTextSub:         "استخراج النص باستخدام الكاميرا",
	KeyActivity:            "النشاط",
	KeySavedAudios:         "الملفات المحفوظة",
	KeyReadingTime:         "وقت القراءة",
	KeyMins:                "دقيقة",
	KeyHome:                "الرئيسية",
	KeyLibrary:             "المكتبة",
	KeySettings:            "الإعدادات",
	KeyProfile:             "الملف الشخصي",
	KeyLogout:              "تسجيل الخروج",
	KeyLanguage:            "اللغة",
	KeyDarkMode:            "الوضع الداكن",
	KeyAutoSave:            "حفظ تلقائي",
	KeyDelete:              "حذف",
	KeyPlay:                "تشغيل",
	KeyConvertToAudio:      "إنشاء الصوت",
	KeyAbout:               "عن إديوكالم",
	KeyAccount:             "الحساب",
	KeySignUp:              "إنشاء حساب",
	KeySignIn:              "تسجيل الدخول",
	KeyGoogle:              "جوجل",
	KeyAutoDetect:          "التعرف التلقائي على اللغة",
	KeyAutoDetectSub:       "يتعرف على اللغة تلقائياً",
	KeyHighlighting:        "تحديد الكلمات",
	KeyHighlightingSub:     "تحديد الكلمات أثناء التشغيل",
	KeyClearCache:          "مسح الملفات المؤقتة",
	KeyContinueReading:     "متابعة القراءة",
	KeyJumpBackIn:          "عد للاستماع",
	KeyTotal:               "المجموع",
	KeyRead:                "قرأت",
	KeyVersion:             "الإصدار 1.0.0",
	KeyEmailPlaceholder:    "البريد الإلكتروني",
	KeyPasswordPlaceholder: "كلمة المرور",
	KeyFullNamePlaceholder: "الاسم الكامل",
	KeyAlreadyHaveAccount:  "لديك حساب بالفعل؟ سجل دخولك",
	KeyDontHaveAccount:     "ليس لديك حساب؟ أنشئ حساباً",
	KeyWelcomeBackLogin:    "مرحباً بك",
	KeyStartJourney:        "ابدأ رحلتك مع إديوكالم",
	KeySignInSaved:         "سجل دخولك للوصول إلى مكتبتك",
	KeyCreateAccount:       "إنشاء حساب",
	KeyQuickActions:        "إجراءات سريعة",
	KeyScanResults:         "نتائج المسح",
	KeyOpenCamera:          "فتح الكاميرا",
	KeyChooseGallery:       "اختر من المعرض",
	KeyEdit:                "تعديل",
	KeyRetake:              "إعادة المحاولة",
	KeyNowPlaying:          "يعمل الآن",
	KeySave:                "حفظ",
	KeySaved:               "تم الحفظ",
	KeySpeed:               "السرعة",
	KeyGender:              "الجنس",
	KeyMale:                "ذكر",
	KeyFemale:              "أنثى",
	KeyVoiceSettings:       "إعدادات الصوت",
	KeyAppearance:          "المظهر",
	KeyStorageSupport:      "التخزين والدعم",
	KeySkip:                "تخطي",
}

var french = map[string]string{
	KeyWelcomeBack:         "Bon retour !",
	KeyAppName:             "Educalm",
	KeySearchPlaceholder:   "Rechercher dans la bibliothèque",
	KeyListenAnywhere:      "Écoutez n'importe quoi, n'importe où.",
	KeyListenAnywhereSub:   "Transformez n'importe quel document ou lien web en voix IA claire.",
	KeyCreateAudio:         "Créer un audio",
	KeyViewAll:             "Voir tout",
	KeyWriteText:           "Écrire du texte",
	KeyWriteTextSub:        "Tapez ou collez du texte directement",
	KeyUploadPDF:           "Télécharger un PDF",
	KeyUploadPDFSub:        "Extraire le texte des fichiers",
	KeyPasteLink:           "Coller un lien",
	KeyPasteLinkSub:        "Convertir des articles web",
	KeyScanText:            "Scanner du texte",
	KeyScanTextSub:         "Extraire du texte avec l'appareil photo",
	KeyActivity:            "Activité",
	KeySavedAudios:         "Audios enregistrés",
	KeyReadingTime:         "Temps de lecture",
	KeyMins:                "Mins",
	KeyHome:                "Accueil",
	KeyLibrary:             "Bibliothèque",
	KeySettings:            "Paramètres",
	KeyProfile:             "Profil",
	KeyLogout:              "Déconnexion",
	KeyLanguage:            "Langue",
	KeyDarkMode:            "Mode sombre",
	KeyAutoSave:            "Enregistrement auto",
	KeyDelete:              "Supprimer",
	KeyPlay:                "Lire",
	KeyConvertToAudio:      "Générer l'audio",
	KeyAbout:               "À propos d'Educalm",
	KeyAccount:             "Compte",
	KeySignUp:              "S'inscrire",
	KeySignIn:              "Se connecter",
	KeyGoogle:              "Google",
	KeyAutoDetect:          "Détection auto de la langue",
	KeyAutoDetectSub:       "Identifie la langue automatiquement",
	KeyHighlighting:        "Surlignage des mots",
	KeyHighlightingSub:     "Surligne les mots pendant la lecture",
	KeyClearCache:          "Effacer le cache",
	KeyContinueReading:     "Continuer la lecture",
	KeyJumpBackIn:          "Reprendre l'écoute",
	KeyTotal:               "Total",
	KeyRead:                "Lu",
	KeyVersion:             "Version 1.0.0",
	KeyEmailPlaceholder:    "Adresse e-mail",
	KeyPasswordPlaceholder: "Mot de passe",
	KeyFullNamePlaceholder: "Nom complet",
	KeyAlreadyHaveAccount:  "Déjà un compte ? Se connecter",
	KeyDontHaveAccount:     "Pas de compte ? S'inscrire",
	KeyWelcomeBackLogin:    "Bienvenue",
	KeyStartJourney:        "Commencez votre voyage avec Educalm",
	KeySignInSaved:         "Connectez-vous pour accéder à votre bibliothèque",
	KeyCreateAccount:       "Créer un compte",
	KeyQuickActions:        "Actions rapides",
	KeyScanResults:         "Résultats du scan",
	KeyOpenCamera:          "Ouvrir la caméra",
	KeyChooseGallery:       "Choisir dans la galerie",
	KeyEdit:                "Modifier",
	KeyRetake:              "Reprendre",
	KeyNowPlaying:          "Lecture en cours",
	KeySave:                "Sauvegarder",
	KeySaved:               "Enregistré",
	KeySpeed:               "Vitesse",
	KeyGender:              "Genre",
	KeyMale:                "Masculin",
	KeyFemale:              "Féminin",
	KeyVoiceSettings:       "Paramètres vocaux",
	KeyAppearance:          "Apparence",
	KeyStorageSupport:      "Stockage et assistance",
	KeySkip:                "Passer",
}

var spanish = map[string]string{
	KeyWelcomeBack:         "¡Bienvenido de nuevo!",
	KeyAppName:             "Educalm",
	KeySearchPlaceholder:   "Buscar en la biblioteca",
	KeyListenAnywhere:      "Escucha lo que quieras, donde quieras.",
	KeyListenAnywhereSub:   "Convierte cualquier documento o enlace web en voz de IA clara.",
	KeyCreateAudio:         "Crear audio",
	KeyViewAll:             "Ver todo",
	KeyWriteText:           "Escribir texto",
	KeyWriteTextSub:        "Escribe o pega texto directamente",
	KeyUploadPDF:           "Subir PDF",
	KeyUploadPDFSub:        "Extraer texto de archivos",
	KeyPasteLink:           "Pegar enlace",
	KeyPasteLinkSub:        "Convertir artículos web",
	KeyScanText:            "Escanear texto",
	KeyScanTextSub:         "Extraer texto con tu cámara",
	KeyActivity:            "Actividad",
	KeySavedAudios:         "Audios guardados",
	KeyReadingTime:         "Tiempo de lectura",
	KeyMins:                "Mins",
	KeyHome:                "Inicio",
	KeyLibrary:             "Biblioteca",
	KeySettings:            "Ajustes",
	KeyProfile:             "Perfil",
	KeyLogout:              "Cerrar sesión",
	KeyLanguage:            "Idioma",
	KeyDarkMode:            "Modo oscuro",
	KeyAutoSave:            "Autoguardado de audio",
	KeyDelete:              "Eliminar",
	KeyPlay:                "Reproducir",
	KeyConvertToAudio:      "Generar audio",
	KeyAbout:               "Acerca de Educalm",
	KeyAccount:             "Cuenta",
	KeySignUp:              "Registrarse",
	KeySignIn:              "Iniciar sesión",
	KeyGoogle:              "Google",
	KeyAutoDetect:          "Detección automática de idioma",
	KeyAutoDetectSub:       "Identifica el idioma automáticamente",
	KeyHighlighting:        "Resaltado de palabras",
	KeyHighlightingSub:     "Resalta palabras durante la reproducción",
	KeyClearCache:          "Borrar caché",
	KeyContinueReading:     "Continuar leyendo",
	KeyJumpBackIn:          "Volver a escuchar",
	KeyTotal:               "Total",
	KeyRead:                "Leído",
	KeyVersion:             "Versión 1.0.0",
	KeyEmailPlaceholder:    "Correo electrónico",
	KeyPasswordPlaceholder: "Contraseña",
	KeyFullNamePlaceholder: "Nombre completo",
	KeyAlreadyHaveAccount:  "¿Ya tienes cuenta? Inicia sesión",
	KeyDontHaveAccount:     "¿No tienes cuenta? Regístrate",
	KeyWelcomeBackLogin:    "Bienvenido",
	KeyStartJourney:        "Comienza tu viaje con Educalm",
	KeySignInSaved:         "Inicia sesión para acceder a tu biblioteca",
	KeyCreateAccount:       "Crear cuenta",
	KeyQuickActions:        "Acciones rápidas",
	KeyScanResults:         "Resultados del escaneo",
	KeyOpenCamera:          "Abrir cámara",
	KeyChooseGallery:       "Elegir de la galería",
	KeyEdit:                "Editar",
	KeyRetake:              "Reintentar",
	KeyNowPlaying:          "Reproduciendo ahora",
	KeySave:                "Guardar",
	KeySaved:               "Guardado",
	KeySpeed:               "Velocidad",
	KeyGender:              "Género",
	KeyMale:                "Masculino",
	KeyFemale:              "Femenino",
	KeyVoiceSettings:       "Ajustes de voz",
	KeyAppearance:          "Apariencia",
	KeyStorageSupport:      "Almacenamiento y soporte",
	KeySkip:                "Omitir",
}

var turkish = map[string]string{
	KeyWelcomeBack:         "Tekrar Hoş Geldiniz!",
	KeyAppName:             "Educalm",
	KeySearchPlaceholder:   "Kütüphanede Ara",
	KeyListenAnywhere:      "Her şeyi, her yerde dinleyin.",
	KeyListenAnywhereSub:   "Herhangi bir belgeyi veya bağlantıyı net yapay zeka sesine dönüştürün.",
	KeyCreateAudio:         "Ses Oluştur",
	KeyViewAll:             "Hepsini Gör",
	KeyWriteText:           "Metin Yaz",
	KeyWriteTextSub:        "Metni doğrudan yazın veya yapıştırın",
	KeyUploadPDF:           "PDF Yükle",
	KeyUploadPDFSub:        "Dosyalardan metin ayıkla",
	KeyPasteLink:           "Bağlantı Yapıştır",
	KeyPasteLinkSub:        "Web makalelerini dönüştür",
	KeyScanText:            "Metni Tara",
	KeyScanTextSub:         "Kameranızı kullanarak metin ayıklayın",
	KeyActivity:            "Etkinlik",
	KeySavedAudios:         "Kaydedilen Sesler",
	KeyReadingTime:         "Okuma Süresi",
	KeyMins:                "Dak",
	KeyHome:                "Ana Sayfa",
	KeyLibrary:             "Kütüphane",
	KeySettings:            "Ayarlar",
	KeyProfile:             "Profil",
	KeyLogout:              "Çıkış Yap",
	KeyLanguage:            "Dil",
	KeyDarkMode:            "Karanlık Mod",
	KeyAutoSave:            "Sesi Otomatik Kaydet",
	KeyDelete:              "Sil",
	KeyPlay:                "Oynat",
	KeyConvertToAudio:      "Ses Oluştur",
	KeyAbout:               "Educalm Hakkında",
	KeyAccount:             "Hesap",
	KeySignUp:              "Kayıt Ol",
	KeySignIn:              "Giriş Yap",
	KeyGoogle:              "Google",
	KeyAutoDetect:          "Otomatik Dil Algılama",
	KeyAutoDetectSub:       "Dili otomatik olarak tanımlar",
	KeyHighlighting:        "Kelime Vurgulama",
	KeyHighlightingSub:     "Oynatma sırasında kelimeleri vurgular",
	KeyClearCache:          "Önbelleği Temizle",
	KeyContinueReading:     "Okumaya Devam Et",
	KeyJumpBackIn:          "Dinlemeye Geri Dön",
	KeyTotal:               "Toplam",
	KeyRead:                "Okundu",
	KeyVersion:             "Sürüm 1.0.0",
	KeyEmailPlaceholder:    "E-posta Adresi",
	KeyPasswordPlaceholder: "Şifre",
	KeyFullNamePlaceholder: "Ad Soyad",
	KeyAlreadyHaveAccount:  "Zaten hesabınız var mı? Giriş yapın",
	KeyDontHaveAccount:     "Hesabınız yok mu? Kayıt olun",
	KeyWelcomeBackLogin:    "Hoş Geldiniz",
	KeyStartJourney:        "Educalm ile yolculuğunuza başlayın",
	KeySignInSaved:         "Kütüphanenize erişmek için giriş yapın",
	KeyCreateAccount:       "Hesap Oluştur",
	KeyQuickActions:        "Hızlı İşlemler",
	KeyScanResults:         "Tarama Sonuçları",
	KeyOpenCamera:          "Kamerayı Aç",
	KeyChooseGallery:       "Galeriden Seç",
	KeyEdit:                "Düzenle",
	KeyRetake:              "Yeniden Dene",
	KeyNowPlaying:          "Şu An Çalıyor",
	KeySave:                "Kaydet",
	KeySaved:               "Kaydedildi",
	KeySpeed:               "Hız",
	KeyGender:              "Cinsiyet",
	KeyMale:                "Erkek",
	KeyFemale:              "Kadın",
	KeyVoiceSettings:       "Ses Ayarları",
	KeyAppearance:          "Görünüm",
	KeyStorageSupport:      "Depolama ve Destek",
	KeySkip:                "Atla",
}

var german = map[string]string{
	KeyWelcomeBack:         "Willkommen zurück!",
	KeyAppName:             "Educalm",
	KeySearchPlaceholder:   "Bibliothek durchsuchen",
	KeyListenAnywhere:      "Hören Sie alles, überall.",
	KeyListenAnywhereSub:   "Verwandeln Sie jedes Dokument oder jeden Link in klare KI-Sprache.",
	KeyCreateAudio:         "Audio erstellen",
	KeyViewAll:             "Alle ansehen",
	KeyWriteText:           "Text schreiben",
	KeyWriteTextSub:        "Text direkt eingeben oder einfügen",
	KeyUploadPDF:           "PDF hochladen",
	KeyUploadPDFSub:        "Text aus Dateien extrahieren",
	KeyPasteLink:           "Link einfügen",
	KeyPasteLinkSub:        "Webartikel umwandeln",
	KeyScanText:            "Text scannen",
	KeyScanTextSub:         "Text mit der Kamera extrahieren",
	KeyActivity:            "Aktivität",
	KeySavedAudios:         "Gespeicherte Audios",
	KeyReadingTime:         "Lesezeit",
	KeyMins:                "Min",
	KeyHome:                "Startseite",
	KeyLibrary:             "Bibliothek",
	KeySettings:            "Einstellungen",
	KeyProfile:             "Profil",
	KeyLogout:              "Abmelden",
	KeyLanguage:            "Sprache",
	KeyDarkMode:            "Dunkelmodus",
	KeyAutoSave:            "Audio autom. speichern",
	KeyDelete:              "Löschen",
	KeyPlay:                "Abspielen",
	KeyConvertToAudio:      "Audio generieren",
	KeyAbout:               "Über Educalm",
	KeyAccount:             "Konto",
	KeySignUp:              "Registrieren",
	KeySignIn:              "Anmelden",
	KeyGoogle:              "Google",
	KeyAutoDetect:          "Automatische Spracherkennung",
	KeyAutoDetectSub:       "Identifiziert die Sprache automatisch",
	KeyHighlighting:        "Worthervorhebung",
	KeyHighlightingSub:     "Wörter während der Wiedergabe hervorheben",
	KeyClearCache:          "Cache leeren",
	KeyContinueReading:     "Weiterlesen",
	KeyJumpBackIn:          "Wieder reinhören",
	KeyTotal:               "Gesamt",
	KeyRead:                "Gelesen",
	KeyVersion:             "Version 1.0.0",
	KeyEmailPlaceholder:    "E-Mail-Adresse",
	KeyPasswordPlaceholder: "Passwort",
	KeyFullNamePlaceholder: "Vollständiger Name",
	KeyAlreadyHaveAccount:  "Haben Sie bereits ein Konto? Anmelden",
	KeyDontHaveAccount:     "Haben Sie noch kein Konto? Registrieren",
	KeyWelcomeBackLogin:    "Willkommen zurück",
	KeyStartJourney:        "Starten Sie Ihre Reise mit Educalm",
	KeySignInSaved:         "Melden Sie sich an, um auf Ihre Bibliothek zuzugreifen",
	KeyCreateAccount:       "Konto erstellen",
	KeyQuickActions:        "Schnellzugriff",
	KeyScanResults:         "Scan-Ergebnisse",
	KeyOpenCamera:          "Kamera öffnen",
	KeyChooseGallery:       "Aus Galerie wählen",
	KeyEdit:                "Bearbeiten",
	KeyRetake:              "Wiederholen",
	KeyNowPlaying:          "Aktuelle Wiedergabe",
	KeySave:                "Speichern",
	KeySaved:               "Gespeichert",
	KeySpeed:               "Geschwindigkeit",
	KeyGender:              "Geschlecht",
	KeyMale:                "Männlich",
	KeyFemale:              "Weiblich",
	KeyVoiceSettings:       "Spracheinstellungen",
	KeyAppearance:          "Erscheinungsbild",
	KeyStorageSupport:      "Speicher & Support",
	KeySkip:                "Überspringen",
}
