package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/xq"
	"github.com/jacoelho/xq/pkg/xmldom"
)

// errDocument marks failures reading or parsing the input document.
var errDocument = errors.New("document error")

type options struct {
	query    string
	attempts string
	format   string
}

var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "xq [flags] <document.xml>",
		Short: "Run terse queries against an XML document",
		Long: "xq evaluates terse path expressions (for example " +
			"'What/Param[name=FAR]/0') against an XML document, or tries a " +
			"YAML list of fallback expressions in order and prints the first " +
			"one that succeeds.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.format, validFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "path expression to evaluate")
	cmd.Flags().StringVar(&opts.attempts, "attempts", "", "YAML file of fallback path expressions")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format (text|json)")

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}

func run(opts *options, documentPath string, out io.Writer) error {
	if (opts.query == "") == (opts.attempts == "") {
		return fmt.Errorf("exactly one of --query or --attempts is required")
	}

	root, err := loadDocument(documentPath)
	if err != nil {
		return err
	}

	var res xq.Result
	if opts.query != "" {
		key, err := xq.Compile(opts.query)
		if err != nil {
			return err
		}
		res, err = xq.Index(root, key)
		if err != nil {
			return err
		}
	} else {
		res, err = runAttempts(root, opts.attempts)
		if err != nil {
			return err
		}
	}

	return writeResult(out, res, opts.format)
}

func loadDocument(path string) (*xmldom.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errDocument, err)
	}
	defer f.Close()

	root, err := xmldom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errDocument, path, err)
	}
	return root, nil
}

// attemptsFile lists candidate path expressions, tried in file order.
type attemptsFile struct {
	Queries []string `yaml:"queries"`
}

func runAttempts(root *xmldom.Element, path string) (xq.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return xq.Result{}, fmt.Errorf("%w: %v", errDocument, err)
	}

	var file attemptsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return xq.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(file.Queries) == 0 {
		return xq.Result{}, fmt.Errorf("%s: no queries listed", path)
	}

	handle := xq.Attempt(root)
	for _, query := range file.Queries {
		key, err := xq.Compile(query)
		if err != nil {
			return xq.Result{}, fmt.Errorf("%s: %w", query, err)
		}
		handle.Register(key)
	}
	return handle.Get()
}

func writeResult(out io.Writer, res xq.Result, format string) error {
	if format == "json" {
		var payload any
		if el, ok := res.Element(); ok {
			payload = el
		} else {
			elements := res.Elements()
			if elements == nil {
				elements = []*xmldom.Element{}
			}
			payload = elements
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	for _, el := range res.Elements() {
		if _, err := fmt.Fprintln(out, el.String()); err != nil {
			return err
		}
	}
	return nil
}
