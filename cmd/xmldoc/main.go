// xmldoc converts between XML documents and JSON or YAML document trees
// using the xmlformat codec.
//
// Subcommands:
//
//	decode     read XML, write the document tree as JSON or YAML
//	encode     read a JSON or YAML document, write XML
//	roundtrip  decode with settings imported from the document, then encode
//	           the result again with those settings
//	settings   write the effective settings as YAML, TOML or JSON
//
// Input is read from the file named by the first argument, or from stdin.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/markupdoc/xmlformat"
	"github.com/markupdoc/xmlformat/document"
	"github.com/markupdoc/xmlformat/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flags shared by all subcommands.
type options struct {
	settingsPath   string
	root           string
	attributes     []string
	textKey        string
	importSettings bool
	falseAsFalse   bool
	verbose        bool
	pretty         bool
	format         string
	query          string
	exportSettings string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr, nil)
		return fmt.Errorf("missing subcommand")
	}

	command := args[0]
	var opts options

	flagSet := pflag.NewFlagSet("xmldoc "+command, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.settingsPath, "settings", "", "load settings from a .yaml, .toml or .json file")
	flagSet.StringVar(&opts.root, "root", "", "root element name")
	flagSet.StringSliceVar(&opts.attributes, "attr", nil, "keys written as attributes (repeatable)")
	flagSet.StringVar(&opts.textKey, "text-key", "", "key holding character data next to child elements")
	flagSet.BoolVar(&opts.falseAsFalse, "false-as-false", false, `decode the literal "false" as boolean false`)
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log warnings and debug messages to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	switch command {
	case "decode":
		flagSet.StringVarP(&opts.format, "format", "f", "json", "output format: json or yaml")
		flagSet.StringVarP(&opts.query, "query", "q", "", "JMESPath expression applied to the decoded document")
		flagSet.BoolVar(&opts.importSettings, "import-settings", false, "derive settings from the document")
		flagSet.StringVar(&opts.exportSettings, "export-settings", "", "write the settings in effect after decoding to this file")
		flagSet.BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	case "encode":
		flagSet.StringVarP(&opts.format, "format", "f", "", "input format: json or yaml (default from file extension, else json)")
		flagSet.BoolVar(&opts.pretty, "pretty", false, "indent XML output")
	case "roundtrip":
		flagSet.BoolVar(&opts.pretty, "pretty", false, "indent XML output")
		flagSet.StringVar(&opts.exportSettings, "export-settings", "", "write the imported settings to this file")
	case "settings":
		flagSet.StringVarP(&opts.format, "format", "f", "yaml", "output format: yaml, toml or json")
	case "help", "-h", "--help":
		printUsage(stdout, nil)
		return nil
	default:
		printUsage(stderr, nil)
		return fmt.Errorf("unknown subcommand %q", command)
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printUsage(stdout, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printUsage(stdout, flagSet)
		return nil
	}

	settings, err := opts.loadSettings()
	if err != nil {
		return err
	}

	// warnings always reach stderr, debug messages only with --verbose
	logger := logging.WithClassifications(logging.StandardLogger{Logger: log.New(stderr, "XMLFORMAT ", 0)}, logging.Warn)
	if opts.verbose {
		logger = logging.NewStandardLogger(stderr)
	}

	if command == "settings" {
		b, err := settings.Export(xmlformat.SettingsFormat(opts.format))
		if err != nil {
			return err
		}
		_, err = stdout.Write(b)
		return err
	}

	rest := flagSet.Args()
	if len(rest) > 1 {
		return fmt.Errorf("unexpected argument: %s", rest[1])
	}
	input, err := readInput(rest, stdin)
	if err != nil {
		return err
	}

	switch command {
	case "decode":
		return runDecode(input, settings, logger, &opts, stdout)
	case "encode":
		if len(opts.format) == 0 {
			opts.format = formatFromArgs(rest)
		}
		return runEncode(input, settings, logger, &opts, stdout)
	default:
		return runRoundTrip(input, settings, logger, &opts, stdout)
	}
}

// loadSettings starts from the settings file, or the defaults, and applies
// the flag overrides.
func (o *options) loadSettings() (xmlformat.Settings, error) {
	settings := xmlformat.DefaultSettings()
	if len(o.settingsPath) != 0 {
		s, err := xmlformat.LoadSettingsFile(o.settingsPath)
		if err != nil {
			return xmlformat.Settings{}, err
		}
		settings = s
	}

	if len(o.root) != 0 {
		settings.RootName = o.root
	}
	if len(o.attributes) != 0 {
		settings.AttributeNames = append(settings.AttributeNames, o.attributes...)
	}
	if len(o.textKey) != 0 {
		settings.TextNodeName = o.textKey
	}
	if o.importSettings {
		settings.ImportSettingsFromXML = true
	}
	if o.falseAsFalse {
		settings.ParseFalseAsFalse = true
	}
	return settings, nil
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("unable to read stdin, %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("unable to read input, %w", err)
	}
	return b, nil
}

func formatFromArgs(args []string) string {
	if len(args) != 0 {
		name := strings.ToLower(args[0])
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			return "yaml"
		}
	}
	return "json"
}

func runDecode(input []byte, settings xmlformat.Settings, logger logging.Logger, opts *options, stdout io.Writer) error {
	result, err := xmlformat.NewDecoder(func(o *xmlformat.DecoderOptions) {
		o.Settings = settings
		o.Logger = logger
	}).Decode(input)
	if err != nil {
		return err
	}

	if len(opts.exportSettings) != 0 {
		if err := exportSettings(result.Settings, opts.exportSettings); err != nil {
			return err
		}
	}

	var out interface{} = result.Value
	if len(opts.query) != 0 {
		if out, err = document.Search(opts.query, result.Value); err != nil {
			return err
		}
	}

	return writeValue(stdout, out, opts.format, opts.pretty)
}

func runEncode(input []byte, settings xmlformat.Settings, logger logging.Logger, opts *options, stdout io.Writer) error {
	var value document.Value
	var err error
	switch opts.format {
	case "json":
		value, err = document.ParseJSON(input)
	case "yaml", "yml":
		value, err = document.ParseYAML(input)
	default:
		return fmt.Errorf("unsupported input format %q", opts.format)
	}
	if err != nil {
		return err
	}

	out, err := xmlformat.NewEncoder(func(o *xmlformat.EncoderOptions) {
		o.Settings = settings
		o.Logger = logger
	}).Encode(value, opts.pretty)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func runRoundTrip(input []byte, settings xmlformat.Settings, logger logging.Logger, opts *options, stdout io.Writer) error {
	settings.ImportSettingsFromXML = true
	f := xmlformat.NewFormat(settings, logger)

	result, err := f.Decode(input)
	if err != nil {
		return err
	}
	if len(opts.exportSettings) != 0 {
		if err := exportSettings(f.Settings(), opts.exportSettings); err != nil {
			return err
		}
	}

	out, err := f.Encode(result.Value, opts.pretty)
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, out)
	return err
}

func exportSettings(settings xmlformat.Settings, path string) error {
	format, err := xmlformat.SettingsFormatFromPath(path)
	if err != nil {
		return err
	}
	b, err := settings.Export(format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("unable to write settings file, %w", err)
	}
	return nil
}

func writeValue(w io.Writer, v interface{}, format string, pretty bool) error {
	var b []byte
	var err error
	switch format {
	case "json":
		if pretty {
			b, err = json.MarshalIndent(v, "", "  ")
		} else {
			b, err = json.Marshal(v)
		}
		if err == nil {
			b = append(b, '\n')
		}
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
		b = buf.Bytes()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("unable to write %s output, %w", format, err)
	}

	_, err = w.Write(b)
	return err
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `xmldoc converts between XML and JSON or YAML document trees.

Usage:
  xmldoc decode [flags] [file]
  xmldoc encode [flags] [file]
  xmldoc roundtrip [flags] [file]
  xmldoc settings [flags]

Examples:
  # Decode a document and select a field
  xmldoc decode --query 'user.name' request.xml

  # Capture the shape of a document as reusable settings
  xmldoc decode --import-settings --export-settings shape.yaml request.xml

  # Encode a JSON document with those settings
  xmldoc encode --settings shape.yaml --pretty response.json
`)
	if flagSet != nil {
		fmt.Fprint(w, "\nFlags:\n")
		flagSet.SetOutput(w)
		flagSet.PrintDefaults()
	}
}
