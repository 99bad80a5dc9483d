package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	Verbose     bool
	StoragePath string
	Prefix      string

	// Speech flags
	Gender    string
	BatchFile string
	Play      bool
	TTSModel  string
	Fallback  string

	// Import flags
	Speak bool

	// Library flags
	ExportDir string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Gender:    "female",
		TTSModel:  "gemini-2.5-flash-preview-tts",
		ExportDir: "educalm-export",
	}
}
