package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/formdata/multipart"
	"github.com/wippyai/formdata/sink/wire"
)

func main() {
	var (
		textFields = flag.String("text", "", "Text fields (name=value,name2=value2)")
		fileFields = flag.String("file", "", "File fields (name=path,name2=path2)")
		mimes      = flag.String("mime", "", "Media type overrides (name=type/subtype,...)")
		fileNames  = flag.String("filename", "", "File name overrides (name=fname,...)")
		boundary   = flag.String("boundary", "", "Fixed multipart boundary (default random)")
		out        = flag.String("out", "-", "Write the encoded body to this path, - for stdout")
		list       = flag.Bool("list", false, "Print the field listing and exit")
		verbose    = flag.Bool("v", false, "Verbose encoder logging")
		inter      = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			multipart.SetLogger(logger)
			defer logger.Sync()
		}
	}

	if *inter {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*boundary); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *textFields == "" && *fileFields == "" {
		fmt.Fprintln(os.Stderr, "Usage: formtool -text name=value[,...] [-file name=path,...] [-mime name=type,...] [-out body.bin]")
		fmt.Fprintln(os.Stderr, "       formtool -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*textFields, *fileFields, *mimes, *fileNames, *boundary, *out, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(textStr, fileStr, mimeStr, fnameStr, boundary, out string, listOnly bool) error {
	mimeFor := parsePairs(mimeStr)
	fnameFor := parsePairs(fnameStr)

	form := multipart.New()

	for _, kv := range splitPairs(textStr) {
		name, value := kv[0], kv[1]
		part := multipart.Text(value)
		var err error
		if part, err = applyOverrides(part, name, mimeFor, fnameFor); err != nil {
			return err
		}
		form = form.Part(name, part)
	}

	for _, kv := range splitPairs(fileStr) {
		name, path := kv[0], kv[1]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read file for field %q: %w", name, err)
		}
		part := multipart.Bytes(data).WithFileName(filepath.Base(path))
		if part, err = applyOverrides(part, name, mimeFor, fnameFor); err != nil {
			return err
		}
		form = form.Part(name, part)
	}

	if listOnly {
		fmt.Println(form.String())
		return nil
	}

	s, err := multipart.Encode(form, &wire.Factory{Boundary: boundary})
	if err != nil {
		return err
	}
	ws := s.(*wire.Sink)

	body, err := ws.Body()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Content-Type: %s\n", ws.FormDataContentType())

	if out == "-" {
		_, err = os.Stdout.Write(body)
		return err
	}
	return os.WriteFile(out, body, 0o644)
}

func applyOverrides(part multipart.Part, name string, mimeFor, fnameFor map[string]string) (multipart.Part, error) {
	if mt, ok := mimeFor[name]; ok {
		var err error
		if part, err = part.WithMediaTypeString(mt); err != nil {
			return multipart.Part{}, err
		}
	}
	if fn, ok := fnameFor[name]; ok {
		part = part.WithFileName(fn)
	}
	return part, nil
}

// splitPairs parses "a=1,b=2" into ordered pairs.
func splitPairs(s string) [][2]string {
	if s == "" {
		return nil
	}
	var pairs [][2]string
	for _, item := range strings.Split(s, ",") {
		k, v, found := strings.Cut(item, "=")
		if !found {
			continue
		}
		pairs = append(pairs, [2]string{k, v})
	}
	return pairs
}

func parsePairs(s string) map[string]string {
	m := make(map[string]string)
	for _, kv := range splitPairs(s) {
		m[kv[0]] = kv[1]
	}
	return m
}
