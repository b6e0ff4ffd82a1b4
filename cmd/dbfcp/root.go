package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ulysses-Xu/go-dbfcp"
	"github.com/Ulysses-Xu/go-dbfcp/internal/cli"
	"github.com/Ulysses-Xu/go-dbfcp/internal/cli/config"
	"github.com/Ulysses-Xu/go-dbfcp/internal/cli/logging"
)

var (
	// Set at build time with -ldflags.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// newRootCmd builds the command tree. Commands read from in and write
// results to the command's output stream and logs to its error stream.
func newRootCmd(in io.Reader) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "dbfcp",
		Short: "Reads and sets the code page mark of DBF files.",
		Long: `dbfcp checks that files are valid dBASE/FoxPro DBF files and reads or
sets the code page mark (offset 29) in their header.

Targets are file names or glob patterns such as "data/*.DBF".
Code pages are given as a name (` + strings.Join(codePageNames(), ",") + `),
a mark byte such as 0x57, or a Windows code page number such as 1252.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default ./dbfcp.yaml or $HOME/.config/dbfcp/dbfcp.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().Bool("strict", false, "Stop at the first file that fails and report the cause")
	root.PersistentFlags().StringSlice("types", nil, "Accept only these DBF file types (names or bytes, e.g. DBase3,0x83)")
	root.PersistentFlags().String("format", config.FormatTable, `Output format ("table" or "json")`)
	root.PersistentFlags().String("log-format", "text", `Log format ("text" or "json")`)

	newRunner := func(cmd *cobra.Command) (*cli.Runner, error) {
		opts, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return nil, &cli.ExitError{Code: cli.ExitInvalidInput, Err: err}
		}
		logger := logging.Setup(opts.LogLevel(), opts.LogFormat, cmd.ErrOrStderr())
		if opts.ConfigFilePath != "" {
			logger.Debug("using configuration file", "path", opts.ConfigFilePath)
		}
		return &cli.Runner{Opts: opts, In: in, Out: cmd.OutOrStdout(), Log: logger}, nil
	}

	getCmd := &cobra.Command{
		Use:   "get TARGET...",
		Short: "Show the header fields and code page mark of DBF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return r.Get(cmd.Context(), args)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set CODEPAGE TARGET...",
		Short: "Set the code page mark of DBF files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return r.Set(cmd.Context(), args[0], args[1:])
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check CODEPAGE TARGET...",
		Short: "Check that DBF files carry a code page mark",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return r.Check(cmd.Context(), args[0], args[1:])
		},
	}

	var resolveCodePage string
	resolveCmd := &cobra.Command{
		Use:   "resolve TARGET...",
		Short: "Validate DBF files and print the encoding to read them with",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return r.Resolve(cmd.Context(), resolveCodePage, args)
		},
	}
	resolveCmd.Flags().StringVar(&resolveCodePage, "codepage", cli.DefaultCodePage, "Code page name or number; DEFAULT uses the mark stored in each file")

	codePagesCmd := &cobra.Command{
		Use:   "codepages",
		Short: "List the supported code page marks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return r.CodePages()
		},
	}

	var decodeCodePage string
	decodeCmd := &cobra.Command{
		Use:   "decode --codepage CODEPAGE",
		Short: "Convert character data on stdin to UTF-8",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return r.Decode(decodeCodePage)
		},
	}
	decodeCmd.Flags().StringVar(&decodeCodePage, "codepage", "", "Code page name or number")
	_ = decodeCmd.MarkFlagRequired("codepage")

	root.AddCommand(getCmd, setCmd, checkCmd, resolveCmd, codePagesCmd, decodeCmd)
	return root
}

func codePageNames() []string {
	var names []string
	for _, cp := range godbfcp.CodePages() {
		names = append(names, cp.String())
	}
	return names
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitOK
	}
	fmt.Fprintln(stderr, "Error:", err)

	var exitErr *cli.ExitError
	switch {
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, context.Canceled):
		return cli.ExitFileFailed
	}
	// Anything cobra rejects before a command runs is a usage error.
	fmt.Fprintln(stderr, "Run 'dbfcp --help' for usage.")
	return cli.ExitUsage
}
