/*
 * a basic example for ovsfix usage: decode an ovs-ofctl/ovs-dpctl
 * dump-flows capture and print each flow as JSON, one line at a time.
 */
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ovsfix/ovsfix/datapath"
	"github.com/ovsfix/ovsfix/flowio"
	"github.com/ovsfix/ovsfix/openflow"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	opt_grammar = flag.String("grammar", "openflow", "grammar to parse: openflow or datapath")
	opt_strict  = flag.Bool("strict", false, "fail on unrecognized top-level keys instead of keeping them with an inferred value type")
)

func main() {
	flag.Parse()

	var parse flowio.ParseFunc
	switch *opt_grammar {
	case "openflow":
		parse = openflow.Parse
	case "datapath":
		parse = datapath.Parse
	default:
		fmt.Fprintf(os.Stderr, "unknown -grammar %q: want openflow or datapath\n", *opt_grammar)
		os.Exit(1)
	}

	var src *os.File
	switch flag.NArg() {
	case 0:
		src = os.Stdin
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal().Err(err).Msg("could not open capture")
		}
		defer f.Close()
		src = f
	default:
		fmt.Fprintf(os.Stderr, "usage: ovsfix [OPTIONS] [capture-file]\n")
		os.Exit(1)
	}

	r := flowio.NewReader(parse)
	r.Options.Strict = *opt_strict
	r.Options.Logger = zerologPtr()

	flows, err := r.ReadAll(src)
	if err != nil {
		log.Fatal().Err(err).Msg("reading capture")
	}

	for _, fl := range flows {
		fmt.Println(string(fl.ToJSON(nil)))
	}

	log.Info().
		Uint64("parsed", r.Stats.Parsed).
		Uint64("errored", r.Stats.Errored).
		Uint64("skipped", r.Stats.Skipped).
		Msg("done")
}

func zerologPtr() *zerolog.Logger {
	return &log.Logger
}
