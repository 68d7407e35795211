package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/huffbmp"
	"github.com/chronos-tachyon/huffbmp/bmp"
	"github.com/chronos-tachyon/huffbmp/internal/logger"
)

const compressedSuffix = ".compressed"

type options struct {
	output  string
	quiet   bool
	maxSize uint64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffbmp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.output, "o", "", "output file (default derived from the input name)")
	fs.BoolVar(&opts.quiet, "q", false, "only report errors")
	fs.Uint64Var(&opts.maxSize, "max-size", huffbmp.DefaultMaxPayloadSize, "largest payload accepted when decompressing (0 = unlimited)")
	fs.Usage = func() { usage(fs) }

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	logg := logger.New(stderr)
	if opts.quiet {
		logg = logger.Quiet(stderr)
	}

	var err error
	switch cmd, input := fs.Arg(0), fs.Arg(1); cmd {
	case "compress":
		err = compressCommand(logg, input, opts)
	case "decompress":
		err = decompressCommand(logg, input, opts)
	default:
		logg.Errorf("unknown command: %s", cmd)
		return 2
	}
	if err != nil {
		logg.Errorf("%v", err)
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Huffman compress/decompress tool")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  huffbmp [flags] compress <input.bmp>")
	fmt.Fprintln(w, "  huffbmp [flags] decompress <input.bmp.compressed>")
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

func compressCommand(logg logger.Logger, input string, opts options) error {
	img, err := bmp.ReadFile(input)
	if err != nil {
		return err
	}

	compressed := img.Compress()
	output := opts.output
	if output == "" {
		output = input + compressedSuffix
	}
	if err := os.WriteFile(output, compressed, 0o666); err != nil {
		return err
	}

	logg.Infof("compressed %s -> %s", input, output)
	logg.Infof("original size: %d bytes", len(img.Data))
	logg.Infof("compressed size: %d bytes", len(compressed))
	logg.Infof("compression ratio: %.2f%%", ratio(len(img.Data), len(compressed)))
	return nil
}

func decompressCommand(logg logger.Logger, input string, opts options) error {
	compressed, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	img, err := bmp.Decompress(compressed, huffbmp.WithMaxPayloadSize(opts.maxSize))
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	output := opts.output
	if output == "" {
		output = decompressedName(input)
	}
	if err := img.WriteFile(output); err != nil {
		return err
	}

	logg.Infof("decompressed %s -> %s", input, output)
	return nil
}

func decompressedName(input string) string {
	if strings.HasSuffix(input, compressedSuffix) {
		return strings.TrimSuffix(input, compressedSuffix) + ".decompressed.bmp"
	}
	return input + ".decompressed.bmp"
}

// ratio is the space saved, in percent.  An empty original reports 0.
func ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return (1 - float64(compressed)/float64(original)) * 100
}
