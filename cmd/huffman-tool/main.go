// huffman-tool compresses and decompresses single files with a
// static Huffman code.
//
//	huffman-tool --compress   --input data.txt --output data.txt.huf
//	huffman-tool --decompress --input data.txt.huf --output data.txt
//
// Exactly one mode flag must be given. On failure no output file is
// left behind, and the exit code tells the kinds apart: 1 for I/O
// errors, 2 for usage errors, 3 for a malformed archive.
package main

import (
	"flag"
	"log"
	"os"

	huffman "github.com/CPP-KT/huffman-task"
)

const (
	exitOK = iota
	exitIOError
	exitUsage
	exitFormat
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffman-tool: ")
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("huffman-tool", flag.ContinueOnError)
	var (
		compress   = fs.Bool("compress", false, "compress the input file")
		decompress = fs.Bool("decompress", false, "decompress the input file")
		input      = fs.String("input", "", "path of the file to read")
		output     = fs.String("output", "", "path of the file to write")
		verbose    = fs.Bool("verbose", false, "report sizes and ratio on success")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 0 {
		log.Printf("unexpected argument %q", fs.Arg(0))
		return exitUsage
	}
	if *compress == *decompress {
		log.Print("exactly one of --compress and --decompress must be given")
		return exitUsage
	}
	if *input == "" || *output == "" {
		log.Print("both --input and --output must be given")
		return exitUsage
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Print(err)
		return exitIOError
	}

	var result []byte
	if *compress {
		result = huffman.Compress(data)
	} else {
		result, err = huffman.Decompress(data)
		if err != nil {
			log.Printf("%s: %v", *input, err)
			return exitFormat
		}
	}

	if err := writeFile(*output, result); err != nil {
		log.Print(err)
		return exitIOError
	}
	if *verbose {
		plain, packed := len(data), len(result)
		if *decompress {
			plain, packed = packed, plain
		}
		log.Printf("%d bytes in, %d bytes out, ratio %.3f",
			len(data), len(result), float64(plain)/float64(packed))
	}
	return exitOK
}

// writeFile writes data to path, removing the file again if the write
// fails so that no truncated output survives an error.
func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
