package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/n2code/docstash"
	"github.com/n2code/docstash/cmd/docstash/flags"
	"github.com/n2code/docstash/internal/config"
	"github.com/n2code/docstash/internal/logging"
	"github.com/n2code/docstash/internal/output"
)

// session carries everything a single invocation needs, set up by the root command before any action runs.
type session struct {
	verbose    bool
	quiet      bool
	plain      bool
	configFile string
	forceCloud bool
	forceLocal bool

	out      io.Writer
	errOut   io.Writer
	settings *config.Config
	logger   *zap.Logger
	printer  output.Printer
	stash    docstash.Stash
	choose   requestChoice //set by actions that need confirmation
}

var errReported = errors.New("already reported")

func run(args []string, out io.Writer, errOut io.Writer) (exitCode int) {
	s := &session{out: out, errOut: errOut}
	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if s.logger != nil {
		_ = s.logger.Sync()
	}
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(errOut, "Error: %s\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "docstash",
		Short: "Locate, list and name the documents of your cloud or local documents folder",
		Long: `docstash manages one flat folder of documents sharing a single file extension.

The folder lives in a synced cloud container while a cloud identity is active
(see DOCSTASH_CLOUD_IDENTITY_FILE) and in the local documents directory otherwise.
Every command resolves the location anew.

Settings are read from the config file and DOCSTASH_* environment variables:
  DOCSTASH_EXTENSION, DOCSTASH_LOCAL_DOCUMENTS, DOCSTASH_CLOUD_CONTAINER,
  DOCSTASH_CLOUD_IDENTITY_FILE, DOCSTASH_CACHE_DIR, DOCSTASH_LOG_LEVEL, DOCSTASH_LOG_DEV`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&s.verbose, flags.Verbose, flags.VerboseShort, false, "output more details on what is done (verbose mode)")
	pf.BoolVarP(&s.quiet, flags.Quiet, flags.QuietShort, false, "output only requested information (quiet mode)")
	pf.BoolVar(&s.plain, flags.Plain, false, "do not use escape sequences for colors and prompts")
	pf.StringVar(&s.configFile, flags.Config, "", "config file (default "+config.DefaultPath()+")")
	pf.BoolVar(&s.forceCloud, flags.ForceCloud, false, "act as if a cloud identity was active")
	pf.BoolVar(&s.forceLocal, flags.ForceLocal, false, "act as if no cloud identity was active")
	root.MarkFlagsMutuallyExclusive(flags.Verbose, flags.Quiet)
	root.MarkFlagsMutuallyExclusive(flags.ForceCloud, flags.ForceLocal)

	root.AddCommand(
		newWhereCommand(s),
		newPathCommand(s),
		newListCommand(s),
		newAvailableCommand(s),
		newInfoCommand(s),
		newNewCommand(s),
	)
	return root
}

func (s *session) setup() error {
	settings, err := config.Load(s.configFile)
	if err != nil {
		return err
	}
	s.settings = settings

	logCfg := settings.Logging()
	switch {
	case s.verbose:
		logCfg.Level = "debug"
	case s.quiet:
		logCfg.Level = "error"
	}
	if s.logger, err = logging.New(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	classes := []output.Class{output.Required, output.Error}
	switch {
	case s.verbose:
		classes = append(classes, output.Normal, output.Verbose)
	case !s.quiet:
		classes = append(classes, output.Normal)
	}
	s.printer = output.NewPrinter(s.out, s.errOut, classes, !s.plain)

	s.stash, err = docstash.New(s.signal(), docstash.StaticDirectories{
		Local:           settings.LocalDocuments,
		Container:       settings.CloudContainer,
		RequireExisting: true,
	}, docstash.CreateConfig{
		Extension:     string(settings.ManagedExtension()),
		CacheDir:      settings.CacheDir,
		Logger:        s.logger,
		FancyTerminal: s.printer.Escapes(),
	})
	if err != nil {
		return err
	}
	s.logger.Debug("session ready", zap.Stringer("root", s.stash.ActiveRoot()))
	return nil
}

func (s *session) signal() docstash.Signal {
	switch {
	case s.forceCloud:
		return docstash.StaticSignal(true)
	case s.forceLocal:
		return docstash.StaticSignal(false)
	default:
		return docstash.FileSignal(s.settings.CloudIdentityFile)
	}
}

// fail prints a problem in the error class and makes the command exit non-zero without repeating it.
func (s *session) fail(format string, values ...interface{}) error {
	s.printer.Out(output.Error, "%s\n", s.printer.Failure(fmt.Sprintf(format, values...)))
	return errReported
}
