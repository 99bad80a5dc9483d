package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/educalm/internal"
)

// Runner executes the commands. It is created after the configuration
// has been read.
type Runner interface {
	Speak(ctx context.Context, text string) error
	SpeakBatch(ctx context.Context, file string) error
	ListLibrary(ctx context.Context) error
	SearchLibrary(ctx context.Context, query string) error
	DeleteFromLibrary(ctx context.Context, ids []string) error
	ExportLibrary(ctx context.Context, dir string) error
	ClearLibrary(ctx context.Context) error
	GetSetting(ctx context.Context, key string) error
	SetSetting(ctx context.Context, key, value string) error
	Login(ctx context.Context) error
	Skip(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ImportLink(ctx context.Context, rawURL string) error
	ImportPDF(ctx context.Context, path string) error
	ImportScan(ctx context.Context, path string) error
	Play(ctx context.Context, id string) error
	ListModels(ctx context.Context) error
	Close() error
}

// RunnerFactory builds the Runner for one invocation
type RunnerFactory func(flags *Flags) (Runner, error)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags, newRunner RunnerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "educalm",
		Short: "Turn text into calm, natural speech",
		Long: `educalm turns text, web articles, PDFs and photographed pages into
natural speech and keeps the results in a personal audio library.

Speech is generated with Gemini TTS, falling back to OpenAI when configured.

Examples:
  educalm speak "The mitochondria is the powerhouse of the cell"
  educalm speak --batch notes.txt --gender male
  educalm import link https://example.com/article --speak
  educalm library list
  educalm play 1714564800000`,
		Version:      internal.Version,
		SilenceUsage: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	run := func(fn func(ctx context.Context, r Runner) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			r, err := newRunner(flags)
			if err != nil {
				return err
			}
			defer r.Close()
			return fn(cmd.Context(), r)
		}
	}

	rootCmd.AddCommand(
		speakCommand(flags, run),
		libraryCommand(flags, run),
		settingsCommand(run),
		&cobra.Command{
			Use:   "login",
			Short: "Sign in with Google",
			Args:  cobra.NoArgs,
			RunE:  run(func(ctx context.Context, r Runner) error { return r.Login(ctx) }),
		},
		&cobra.Command{
			Use:   "skip",
			Short: "Continue as guest",
			Args:  cobra.NoArgs,
			RunE:  run(func(ctx context.Context, r Runner) error { return r.Skip(ctx) }),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Sign out",
			Args:  cobra.NoArgs,
			RunE:  run(func(ctx context.Context, r Runner) error { return r.Logout(ctx) }),
		},
		&cobra.Command{
			Use:   "whoami",
			Short: "Show the signed in user",
			Args:  cobra.NoArgs,
			RunE:  run(func(ctx context.Context, r Runner) error { return r.WhoAmI(ctx) }),
		},
		importCommand(flags, run),
		playCommand(run),
		&cobra.Command{
			Use:   "models",
			Short: "List available Gemini and OpenAI models",
			Args:  cobra.NoArgs,
			RunE:  run(func(ctx context.Context, r Runner) error { return r.ListModels(ctx) }),
		},
	)

	return rootCmd
}

type runWrapper func(fn func(ctx context.Context, r Runner) error) func(*cobra.Command, []string) error

func speakCommand(flags *Flags, run runWrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speak [text]",
		Short: "Generate speech for text and save it to the library",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if flags.BatchFile == "" && len(args) == 0 {
			return fmt.Errorf("provide text or --batch file")
		}
		return run(func(ctx context.Context, r Runner) error {
			if flags.BatchFile != "" {
				return r.SpeakBatch(ctx, flags.BatchFile)
			}
			return r.Speak(ctx, args[0])
		})(c, args)
	}
	cmd.Flags().StringVarP(&flags.Gender, "gender", "g", flags.Gender, "Voice gender: male or female")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process texts from file (one per line)")
	cmd.Flags().BoolVar(&flags.Play, "play", false, "Play the generated audio")
	return cmd
}

func libraryCommand(flags *Flags, run runWrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the audio library",
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Export the library as WAV files",
		Args:  cobra.NoArgs,
		RunE:  run(func(ctx context.Context, r Runner) error { return r.ExportLibrary(ctx, flags.ExportDir) }),
	}
	export.Flags().StringVarP(&flags.ExportDir, "output", "o", flags.ExportDir, "Export directory")

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search saved recordings",
		Args:  cobra.ExactArgs(1),
	}
	search.RunE = func(c *cobra.Command, args []string) error {
		return run(func(ctx context.Context, r Runner) error { return r.SearchLibrary(ctx, args[0]) })(c, args)
	}

	del := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete recordings",
		Args:  cobra.MinimumNArgs(1),
	}
	del.RunE = func(c *cobra.Command, args []string) error {
		return run(func(ctx context.Context, r Runner) error { return r.DeleteFromLibrary(ctx, args) })(c, args)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved recordings",
			Args:  cobra.NoArgs,
			RunE:  run(func(ctx context.Context, r Runner) error { return r.ListLibrary(ctx) }),
		},
		search,
		del,
		export,
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the library and the last played clip",
			Args:  cobra.NoArgs,
			RunE:  run(func(ctx context.Context, r Runner) error { return r.ClearLibrary(ctx) }),
		},
	)
	return cmd
}

func settingsCommand(run runWrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}
	get := &cobra.Command{
		Use:   "get [key]",
		Short: "Show one or all settings",
		Args:  cobra.MaximumNArgs(1),
	}
	get.RunE = func(c *cobra.Command, args []string) error {
		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		return run(func(ctx context.Context, r Runner) error { return r.GetSetting(ctx, key) })(c, args)
	}
	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Args:  cobra.ExactArgs(2),
	}
	set.RunE = func(c *cobra.Command, args []string) error {
		return run(func(ctx context.Context, r Runner) error { return r.SetSetting(ctx, args[0], args[1]) })(c, args)
	}
	cmd.AddCommand(get, set)
	return cmd
}

func importCommand(flags *Flags, run runWrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Extract text from a link, PDF or image",
	}
	cmd.PersistentFlags().BoolVar(&flags.Speak, "speak", false, "Generate speech from the extracted text")

	sub := func(use, short string, fn func(r Runner, ctx context.Context, arg string) error) *cobra.Command {
		c := &cobra.Command{Use: use, Short: short, Args: cobra.ExactArgs(1)}
		c.RunE = func(c *cobra.Command, args []string) error {
			return run(func(ctx context.Context, r Runner) error { return fn(r, ctx, args[0]) })(c, args)
		}
		return c
	}
	cmd.AddCommand(
		sub("link <url>", "Extract the article at a URL", Runner.ImportLink),
		sub("pdf <file>", "Extract the text of a PDF file", Runner.ImportPDF),
		sub("scan <image>", "Read the text in a photo", Runner.ImportScan),
	)
	return cmd
}

func playCommand(run runWrapper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <id>",
		Short: "Play a saved recording",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		return run(func(ctx context.Context, r Runner) error { return r.Play(ctx, args[0]) })(c, args)
	}
	return cmd
}

// DefaultStoragePath returns the database file used when none is
// configured
func DefaultStoragePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "educalm", "educalm.db")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.educalm.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.StoragePath, "storage", DefaultStoragePath(), "Path of the library database")
	cmd.PersistentFlags().StringVar(&flags.Prefix, "prefix", "", "Key prefix isolating this instance's data")

	// Speech flags
	cmd.PersistentFlags().StringVar(&flags.TTSModel, "tts-model", flags.TTSModel, "Gemini TTS model")
	cmd.PersistentFlags().StringVar(&flags.Fallback, "fallback", "", "Fallback TTS provider: openai, espeak or none (default: openai when a key is set)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("storage.path", cmd.PersistentFlags().Lookup("storage"))
	viper.BindPFlag("storage.prefix", cmd.PersistentFlags().Lookup("prefix"))
	viper.BindPFlag("tts.model", cmd.PersistentFlags().Lookup("tts-model"))
	viper.BindPFlag("tts.fallback", cmd.PersistentFlags().Lookup("fallback"))
	viper.BindPFlag("log.verbose", cmd.PersistentFlags().Lookup("verbose"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	setDefaults()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".educalm" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".educalm")
	}

	// Environment variables
	viper.SetEnvPrefix("EDUCALM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	for _, env := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return viper.GetString("gemini.api_key")
}
