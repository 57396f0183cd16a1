// Package main provides the entry point for the ruvox CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	gap "github.com/muesli/go-app-paths"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/xilec/ruvox/pkg/render"
	"github.com/xilec/ruvox/pkg/words"
	"github.com/xilec/ruvox/speech"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile    string
	width         uint
	debug         bool
	showMap       bool
	showChunks    bool
	readOperators bool
	codeBlocks    string
	urlDetail     string

	speechConfig speech.Config

	keyword = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).
		Render
	paragraph = lipgloss.NewStyle().
			Width(78).
			Padding(0, 0, 0, 2).
			Render

	rootCmd = &cobra.Command{
		Use:   "ruvox [FILE|-]",
		Short: "Rewrite technical text into speech-ready Russian prose",
		Long: paragraph(
			fmt.Sprintf("\nRewrite mixed-language technical text into %s Russian prose, with an exact map from every spoken word back to the source.", keyword("speech-ready")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: execute,
	}
)

// source provides a readable text source.
type source struct {
	reader io.ReadCloser
	path   string
}

// sourceFromArg creates a readable source for a file argument or "-".
func sourceFromArg(arg string) (*source, error) {
	if arg == "-" {
		return &source{reader: os.Stdin}, nil
	}

	r, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	p, err := filepath.Abs(arg)
	if err != nil {
		return nil, fmt.Errorf("unable to get absolute path: %w", err)
	}
	return &source{r, p}, nil
}

func validateOptions(cmd *cobra.Command) error {
	width = viper.GetUint("width")
	debug = viper.GetBool("debug")

	if err := speech.InitLogging(debug); err != nil {
		return err
	}

	cfg, err := speech.LoadConfigFromViper()
	if err != nil {
		return err
	}

	// CLI flags take precedence over the config file.
	if cmd.Flags().Changed("operators") {
		cfg.ReadOperators = readOperators
	}
	if cmd.Flags().Changed("code-blocks") {
		cfg.CodeBlocks = codeBlocks
	}
	if cmd.Flags().Changed("url-detail") {
		cfg.URLDetail = urlDetail
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	speechConfig = cfg

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	if !cmd.Flags().Changed("width") { //nolint:nestif
		if isTerminal && width == 0 {
			w, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				width = uint(w) //nolint:gosec
			}
			if width > 120 {
				width = 120
			}
		}
		if width == 0 {
			width = 80
		}
	}
	return nil
}

func stdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to stat stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 || stat.Size() > 0 {
		return true, nil
	}
	return false, nil
}

func execute(cmd *cobra.Command, args []string) error {
	// If stdin is a pipe then use stdin for input. A - argument reads
	// from stdin explicitly.
	if yes, err := stdinIsPipe(); err != nil {
		return err
	} else if yes {
		src := &source{reader: os.Stdin}
		defer src.reader.Close() //nolint:errcheck
		return executeCLI(cmd, src, os.Stdout)
	}

	if len(args) == 0 {
		return cmd.Help()
	}
	src, err := sourceFromArg(args[0])
	if err != nil {
		return err
	}
	defer src.reader.Close() //nolint:errcheck
	return executeCLI(cmd, src, os.Stdout)
}

func executeCLI(_ *cobra.Command, src *source, w io.Writer) error {
	b, err := io.ReadAll(src.reader)
	if err != nil {
		return fmt.Errorf("unable to read from reader: %w", err)
	}
	log.Debug("input read", "source", src.path, "size", humanize.Bytes(uint64(len(b))))

	pipeline := speech.NewPipeline(speechConfig.NormalizeOptions())

	switch {
	case showMap:
		if err := writeWordMap(w, pipeline, string(b)); err != nil {
			return err
		}
	case showChunks:
		out := pipeline.Process(string(b))
		for i, c := range speech.SplitChunks(out, speechConfig.MaxChunkLen) {
			if _, err := fmt.Fprintf(w, "[%d] %d+%d\t%s\n", i, c.Start, len([]rune(c.Text)), c.Text); err != nil {
				return fmt.Errorf("unable to write to writer: %w", err)
			}
		}
	default:
		out := pipeline.Process(string(b))
		if term.IsTerminal(int(os.Stdout.Fd())) {
			out = wordwrap.String(out, int(width)) //nolint:gosec
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return fmt.Errorf("unable to write to writer: %w", err)
		}
	}

	if unknown := pipeline.UnknownWords(); len(unknown) > 0 {
		log.Debug("words without a known pronunciation", "count", len(unknown), "words", unknown)
	}
	return nil
}

// writeWordMap prints one line per word of the normalized text with
// the source rune range responsible for it and, when the markup
// survives flattening, the matching range in the rendered view.
func writeWordMap(w io.Writer, pipeline *speech.Pipeline, text string) error {
	out, cm := pipeline.ProcessWithMap(text)
	mapper := render.NewMarkdownPositionMapper()
	mapper.Align(text)
	for _, span := range words.Tokenize(out) {
		r := cm.OriginalRange(span.Start, span.End)
		line := fmt.Sprintf("%s\t%d..%d", span.Text, r.Start, r.End)
		if rs, re, ok := mapper.GetRenderedRange(r.Start, r.End); ok {
			line += fmt.Sprintf("\t%d..%d", rs, re)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("unable to write to writer: %w", err)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().UintVarP(&width, "width", "w", 0, "word-wrap at width (set to 0 to disable)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "debug logging of normalization passes")
	rootCmd.Flags().BoolVarP(&showMap, "map", "m", false, "print per-word source ranges instead of prose")
	rootCmd.Flags().BoolVar(&showChunks, "chunks", false, "print synthesis chunk splitting instead of prose")
	rootCmd.Flags().BoolVar(&readOperators, "operators", false, "read plain operators and brackets aloud")
	rootCmd.Flags().StringVar(&codeBlocks, "code-blocks", "", "fenced code blocks: full or brief")
	rootCmd.Flags().StringVar(&urlDetail, "url-detail", "", "URL detail: full, domainOnly or minimal")

	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))

	viper.SetDefault("width", 0)
	viper.SetDefault("debug", false)
	speech.SetDefaults()

	rootCmd.AddCommand(configCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "ruvox")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "ruvox")}, dirs...)
	}
	if c := os.Getenv("RUVOX_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("ruvox")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("ruvox")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", used)
		return
	}

	configFile = filepath.Join(dirs[0], "ruvox.yml")
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
