// Command invariant renders YAML or JSON documents as culture-invariant
// diagnostic text, one line per document.
//
//	echo '{a: [1, 2, 3]}' | invariant
//	invariant --max-items 5 --show-dims config.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/invariant"
)

var (
	nullString  string
	maxDepth    int
	maxItems    int
	noCount     bool
	showDims    bool
	separator   string
	kvSeparator string
	timeLayout  string
	verbose     bool

	logger = log.New(os.Stderr)

	rootCmd = &cobra.Command{
		Use:   "invariant [file...]",
		Short: "Render YAML or JSON documents as invariant diagnostic text",
		Long: `Render YAML or JSON documents as deterministic, culture-invariant
diagnostic text. Each document in each input renders on its own line.

With no file arguments, documents are read from stdin. JSON input works
because YAML is a superset of it.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&nullString, "null-string", invariant.DefaultNullString, "text for null values")
	flags.IntVar(&maxDepth, "max-depth", invariant.DefaultMaxNestingDepth, "nesting depth budget")
	flags.IntVar(&maxItems, "max-items", 0, "max rendered elements per level, 0 for unlimited")
	flags.BoolVar(&noCount, "no-count", false, "omit the \" (<N> items)\" suffix")
	flags.BoolVar(&showDims, "show-dims", false, "prepend dimension headers to multi-dimensional arrays")
	flags.StringVar(&separator, "separator", invariant.DefaultCollectionSeparator, "element separator")
	flags.StringVar(&kvSeparator, "kv-separator", invariant.DefaultKeyValueSeparator, "key-value separator")
	flags.StringVar(&timeLayout, "time-layout", invariant.DefaultTimeLayout, "Go layout for timestamps")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log per-document timings to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	opts := invariant.DefaultOptions()
	opts.NullString = nullString
	opts.MaxNestingDepth = maxDepth
	opts.MaxCollectionItems = maxItems
	opts.ShowCollectionCount = !noCount
	opts.ShowArrayDimensions = showDims
	opts.CollectionSeparator = separator
	opts.KeyValueSeparator = kvSeparator
	opts.TimeLayout = timeLayout

	if len(args) == 0 {
		return renderStream(cmd.OutOrStdout(), os.Stdin, "stdin", &opts)
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = renderStream(cmd.OutOrStdout(), f, path, &opts)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// renderStream decodes every document in r and renders each on its own
// line.
func renderStream(w io.Writer, r io.Reader, source string, opts *invariant.Options) error {
	dec := yaml.NewDecoder(r)
	for n := 0; ; n++ {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		start := time.Now()
		if err := invariant.Write(w, doc, opts); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		logger.Debug("rendered document", "source", source, "index", n, "elapsed", time.Since(start))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
