// Command swifftgen generates the constant tables of SWIFFT and writes
// them as Go source.
//
//	swifftgen [-params standard|wide|toy] [-pkg name] [-prefix p] <outpath>
//
// The tables are derived from the published pi seed matrix (its first
// M*N values for non-standard parameters). With default flags the output
// is the checked-in swifft/zconst.go.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/benjivesterby/go-swifft/swifft"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("swifftgen: ")
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("swifftgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pkg := fs.String("pkg", "swifft", "package name of the generated source")
	prefix := fs.String("prefix", "std_", "prefix of the generated array names")
	params := fs.String("params", "standard", "parameter set: standard|wide|toy")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: swifftgen [flags] <outpath>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	path := fs.Arg(0)

	par, err := lookup_params(*params)
	if err != nil {
		log.Print(err)
		return 1
	}
	if err := par.Validate(); err != nil {
		log.Print(err)
		return 1
	}
	seed := swifft.StandardSeed()
	if len(seed) < par.M*par.N {
		log.Printf("seed matrix too small for %s", par)
		return 1
	}
	tab, err := swifft.Generate(par, seed[:par.M*par.N])
	if err != nil {
		log.Print(err)
		return 1
	}
	if err := write_file(path, tab, *pkg, *prefix); err != nil {
		log.Printf("write %s: %v", path, err)
		return 1
	}
	fp := tab.Fingerprint()
	log.Printf("wrote %s (%s, fingerprint %x)", path, par, fp[:])
	return 0
}

func lookup_params(name string) (swifft.Params, error) {
	switch name {
	case "standard":
		return swifft.Standard, nil
	case "wide":
		return swifft.Wide, nil
	case "toy":
		return swifft.Toy, nil
	}
	return swifft.Params{}, fmt.Errorf("unknown parameter set %q", name)
}

// Write the source into a temporary file in the target directory, then
// rename it, so that a failure never leaves a partial file at path.
func write_file(path string, tab *swifft.Tables, pkg string, prefix string) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".swifftgen-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	err = tab.WriteSource(f, pkg, prefix)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
	}
	return err
}
