package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ppopth/galois/field"
	"github.com/ppopth/galois/wire"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("gfinfo")

// ElementInfo is one row of the element table
type ElementInfo struct {
	Index       int    `json:"index"`
	Coordinates []int  `json:"coordinates"`
	Trace       int    `json:"trace"`
	Gchar       string `json:"gchar"`
}

// FieldInfo stores the summary written with -output
type FieldInfo struct {
	Field       string        `json:"field"`
	Order       int           `json:"order"`
	Basis       string        `json:"basis"`
	Fingerprint string        `json:"fingerprint"`
	Encoded     string        `json:"encoded"` // hex protobuf FieldDescriptor
	Elements    []ElementInfo `json:"elements,omitempty"`
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	// Parse command-line flags
	p := flag.Int("p", 2, "Characteristic of the field")
	n := flag.Int("n", 1, "Extension degree")
	polyFlag := flag.String("poly", "", "Comma-separated polynomial coefficients c_0,...,c_n")
	preset := flag.String("preset", "", "Use a built-in field instead of -p/-n/-poly (GF4, GF8, GF9, GF16, GF27, GF32, GF125)")
	sdbFlag := flag.String("sdb", "", "Comma-separated exponents of a self-dual basis to switch to")
	curveFlag := flag.String("curve", "", "Comma-separated curve coefficients c_0,...,c_k; eK is the element at index K, plain integers are k*1")
	at := flag.Int("at", -1, "Index of the point to evaluate -curve at")
	table := flag.Bool("table", true, "Print every element with its coordinates, trace and additive character")
	outputFile := flag.String("output", "", "Write a JSON summary to this file")
	logLevel := flag.String("log-level", "warn", "Log level for the field and wire subsystems")
	flag.Parse()

	for _, system := range []string{"gfinfo", "field", "wire"} {
		if err := logging.SetLogLevel(system, *logLevel); err != nil {
			fail("invalid log level %q: %v", *logLevel, err)
		}
	}

	sdb, err := parseInts(*sdbFlag)
	if err != nil {
		fail("parsing -sdb: %v", err)
	}
	var opts []field.Option
	if len(sdb) > 0 {
		opts = append(opts, field.WithSelfDualBasis(sdb...))
	}

	var f *field.GaloisField
	if *preset != "" {
		pr, ok := field.LookupPreset(*preset)
		if !ok {
			fail("unknown preset %q", *preset)
		}
		f, err = pr.Build(opts...)
	} else {
		poly, perr := parseInts(*polyFlag)
		if perr != nil {
			fail("parsing -poly: %v", perr)
		}
		f, err = field.New(*p, *n, poly, opts...)
	}
	if err != nil {
		fail("building field: %v", err)
	}
	log.Debugf("built %s, requested self-dual basis %v", f, sdb)

	encoded, err := wire.MarshalField(f)
	if err != nil {
		fail("encoding field: %v", err)
	}
	id := f.Fingerprint()

	info := FieldInfo{
		Field:       f.String(),
		Order:       f.Order(),
		Basis:       f.Basis().String(),
		Fingerprint: hex.EncodeToString(id[:]),
		Encoded:     hex.EncodeToString(encoded),
	}

	fmt.Printf("%s\n", f)
	fmt.Printf("  Order: %d\n", f.Order())
	fmt.Printf("  Primitive element: %v\n", f.Primitive())
	fmt.Printf("  Fingerprint: %s\n", info.Fingerprint)
	fmt.Printf("  Encoded: %s\n", info.Encoded)
	fmt.Println()

	if *table {
		fmt.Printf("%6s  %-16s %5s  %s\n", "index", "coordinates", "trace", "gchar")
		for _, e := range f.Elements() {
			row := ElementInfo{
				Index:       e.Index(),
				Coordinates: e.Coordinates(),
				Trace:       field.Tr(e),
				Gchar:       field.Gchar(e).String(),
			}
			info.Elements = append(info.Elements, row)
			fmt.Printf("%6d  %-16v %5d  %s\n", row.Index, row.Coordinates, row.Trace, row.Gchar)
		}
		fmt.Println()
	}

	if *curveFlag != "" {
		coefs, err := parseCurve(f, *curveFlag)
		if err != nil {
			fail("parsing -curve: %v", err)
		}
		if *at < 0 {
			fail("-curve needs -at")
		}
		point, err := f.At(*at)
		if err != nil {
			fail("evaluation point: %v", err)
		}
		value, err := f.Evaluate(coefs, point)
		if err != nil {
			fail("evaluating curve: %v", err)
		}
		fmt.Printf("Curve %v at index %d = %v (index %d)\n", coefs, *at, value, value.Index())
	}

	if *outputFile != "" {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			fail("failed to marshal summary: %v", err)
		}
		if err := os.WriteFile(*outputFile, data, 0644); err != nil {
			fail("failed to write summary to file: %v", err)
		}
		log.Infof("wrote %d bytes to %s", len(data), *outputFile)
		fmt.Printf("Summary written to: %s\n", *outputFile)
	}
}

// parseInts parses a comma-separated list of integers. An empty string is an
// empty list.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseCurve turns tokens like "e2,e3,0,e5" into coefficients of f.
func parseCurve(f *field.GaloisField, s string) ([]field.Coefficient, error) {
	var coefs []field.Coefficient
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if idx, ok := strings.CutPrefix(tok, "e"); ok {
			i, err := strconv.Atoi(idx)
			if err != nil {
				return nil, fmt.Errorf("coefficient %q: %v", tok, err)
			}
			e, err := f.At(i)
			if err != nil {
				return nil, err
			}
			coefs = append(coefs, field.Elem(e))
			continue
		}
		k, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q: %v", tok, err)
		}
		coefs = append(coefs, field.Int(k))
	}
	return coefs, nil
}
