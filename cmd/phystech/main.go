// Package main provides a command-line utility to inspect PTB measurement
// files: print the file summary, describe individual nodes and export
// aligned channel tables as CSV.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/luketudge/phystech"
)

func main() {
	// Define command-line flags
	master := flag.String("master", phystech.DefaultPosMaster, "Short name of the master position channel")
	counter := flag.String("counter", phystech.DefaultPosCounter, "Name of the position-counter field in each channel")
	node := flag.String("node", "", "Describe this node instead of printing the file summary")
	out := flag.String("out", "", "Write the assembled table to this CSV file")
	head := flag.Int("head", 5, "Number of table rows to preview")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: phystech [flags] <file.h5> [channel ...]")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	f, err := phystech.Open(args[0],
		phystech.WithPosMaster(*master),
		phystech.WithPosCounter(*counter))
	if err != nil {
		logger.Error("opening measurement file", "path", args[0], "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn("closing measurement file", "error", err)
		}
	}()

	if *node != "" {
		text, err := f.DescribeNode(*node)
		if err != nil {
			logger.Error("describing node", "node", *node, "error", err)
			os.Exit(1)
		}
		fmt.Println(text)
	} else {
		fmt.Println(f.Describe())
	}

	channels := args[1:]
	if len(channels) == 0 {
		return
	}

	var frame *phystech.Frame
	if *out != "" {
		frame, err = f.ExportFrame(*out, channels...)
		if frame != nil && err != nil {
			// The table was built; only writing it failed.
			logger.Warn("exporting table", "path", *out, "error", err)
			err = nil
		}
	} else {
		frame, err = f.Frame(channels...)
	}
	if err != nil {
		logger.Error("assembling table", "error", err)
		os.Exit(1)
	}

	preview(frame, *head)
	if *out != "" {
		fmt.Printf("\nWrote %d rows to %s\n", frame.Rows(), *out)
	}
}

// preview prints the first n table rows, NaN cells as empty columns.
func preview(frame *phystech.Frame, n int) {
	fmt.Println()
	fmt.Print("pos")
	for _, col := range frame.Columns() {
		fmt.Printf("\t%s", col)
	}
	fmt.Println()

	if n > frame.Rows() {
		n = frame.Rows()
	}
	for i := 0; i < n; i++ {
		fmt.Print(i + 1)
		for j := range frame.Columns() {
			v := frame.At(i, j)
			if math.IsNaN(v) {
				fmt.Print("\t")
			} else {
				fmt.Printf("\t%g", v)
			}
		}
		fmt.Println()
	}
	if n < frame.Rows() {
		fmt.Printf("... %d more rows\n", frame.Rows()-n)
	}
}
