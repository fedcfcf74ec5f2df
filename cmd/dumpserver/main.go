// Command dumpserver reads one request header block from standard input and
// prints the parsed structure. With -tokens it prints the lexical token
// stream instead, which is handy for seeing exactly where strict framing
// rejects an input.
//
//	printf 'GET / HTTP/1.1\r\nHost: example.com\r\n\r\n' | dumpserver
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/shapestone/strict-http/internal/tokenizer"
	"github.com/shapestone/strict-http/pkg/http"
)

func main() {
	tokens := flag.Bool("tokens", false, "dump the lexical token stream instead of the parsed header")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	if *tokens {
		if err := dumpTokens(os.Stdin); err != nil {
			log.WithError(err).Fatal("tokenize failed")
		}
		return
	}

	h, err := http.ParseHeader(os.Stdin)
	if err != nil {
		entry := log.WithError(err)
		switch {
		case http.IsIO(err):
			entry.Fatal("read failed")
		case http.IsFormat(err):
			entry.Fatal("malformed request header")
		default:
			entry.Fatal("invalid request header")
		}
	}

	fmt.Printf("%s %s %s\n", h.Method, h.Target, h.Version)
	for _, f := range h.Fields {
		fmt.Printf("  %s: %s\n", f.Key, f.Value)
	}
	if !h.Version.Supported() {
		log.WithField("version", h.Version.String()).Warn("recognized but unsupported protocol version")
	}
}

func dumpTokens(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	tok := tokenizer.NewTokenizer()
	tok.Initialize(string(data))
	toks, eos := tok.Tokenize()
	for _, t := range toks {
		fmt.Printf("%-8s %q\n", t.Kind(), t.ValueString())
	}
	if !eos {
		return fmt.Errorf("tokenizer stopped before end of input")
	}
	return nil
}
