package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/recordnorm"
	"github.com/reoring/recordnorm/format"
	"github.com/reoring/recordnorm/i18n"
	"github.com/reoring/recordnorm/internal/jsonl"
	"github.com/reoring/recordnorm/jsonschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "normalize":
		normalizeCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "recordnorm CLI\n\nUsage:\n  recordnorm normalize -schema schema.json [-in records.jsonl] [-out out.jsonl] [-flags default,custom|none] [-v]\n  recordnorm check -schema schema.yaml\n\nNotes:\n  - Records are newline-delimited JSON objects; stdin/stdout are used when -in/-out are omitted.\n  - Schemas ending in .yaml or .yml are read as YAML, anything else as JSON.")
}

func normalizeCmd(args []string) {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	var schemaPath, in, out, flagsCSV, lang string
	var verbose bool
	fs.StringVar(&schemaPath, "schema", "", "schema file (JSON or YAML)")
	fs.StringVar(&in, "in", "", "input JSONL file (default stdin)")
	fs.StringVar(&out, "o", "", "output JSONL file (default stdout)")
	fs.StringVar(&out, "out", "", "alias of -o")
	fs.StringVar(&flagsCSV, "flags", "default", "comma-separated normalizations: default, custom, none")
	fs.StringVar(&lang, "lang", "en", "language of skip messages (en/ja)")
	fs.BoolVar(&verbose, "v", false, "log skipped fields")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	log.SetFlags(0)
	log.SetPrefix("recordnorm: ")
	i18n.SetLanguage(lang)

	cfg, err := parseFlags(flagsCSV)
	if err != nil {
		fatalf("%v", err)
	}
	if err := normalizeFiles(schemaPath, in, out, cfg, verbose); err != nil {
		fatalf("%v", err)
	}
}

// normalizeFiles runs the transform from in to out ("" meaning stdin and
// stdout). Files are closed before it returns, including on errors.
func normalizeFiles(schemaPath, in, out string, cfg recordnorm.Config, verbose bool) (err error) {
	doc, err := loadSchema(schemaPath, verbose)
	if err != nil {
		return err
	}

	var skipped recordnorm.Issues
	opts := []recordnorm.Option{recordnorm.WithCustomNormalizer(format.Standard())}
	if verbose {
		opts = append(opts, recordnorm.WithIssueHandler(recordnorm.Collect(&skipped)))
	}
	tr, err := recordnorm.New(cfg, opts...)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}
	var w io.Writer = os.Stdout
	if out != "" {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		f, cerr := os.Create(out)
		if cerr != nil {
			return fmt.Errorf("creating output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output: %w", cerr)
			}
		}()
		w = f
	}

	return run(tr, doc, jsonl.NewReader(r), jsonl.NewWriter(w), func(n int) {
		for _, it := range skipped {
			log.Printf("record %d: %s", n, it)
		}
		skipped = skipped[:0]
	})
}

// run transforms every record from r into w. afterRecord is called with the
// 1-based record number once the record has been written.
func run(tr *recordnorm.Transformer, doc *jsonschema.Document, r *jsonl.Reader, w *jsonl.Writer, afterRecord func(int)) error {
	for {
		rec, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		tr.Transform(rec, doc)
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing record %d: %w", r.Count(), err)
		}
		if afterRecord != nil {
			afterRecord(r.Count())
		}
	}
	return w.Flush()
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema file (JSON or YAML)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	log.SetFlags(0)
	doc, err := loadSchema(schemaPath, true)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("ok: %d definitions, %d $defs\n", len(doc.Definitions), len(doc.Defs))
}

func loadSchema(path string, verbose bool) (*jsonschema.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	doc, diag, err := parseSchema(path, data)
	if err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", path, err)
	}
	if verbose && diag.HasWarnings() {
		for _, w := range diag.Warnings() {
			log.Printf("schema warning: %s", w)
		}
	}
	return doc, nil
}

func parseSchema(path string, data []byte) (*jsonschema.Document, jsonschema.Diag, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return jsonschema.ParseYAML(data)
	default:
		return jsonschema.ParseJSON(data)
	}
}

func parseFlags(csv string) (recordnorm.Config, error) {
	var cfg recordnorm.Config
	for _, p := range splitCSV(csv) {
		switch strings.ToLower(p) {
		case "none", "notransform":
			cfg |= recordnorm.NoTransform
		case "default":
			cfg |= recordnorm.DefaultSchemaNormalization
		case "custom":
			cfg |= recordnorm.CustomSchemaNormalization
		default:
			return 0, fmt.Errorf("unknown normalization %q", p)
		}
	}
	return cfg, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fatalf(msg string, a ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", a...)
	os.Exit(1)
}
