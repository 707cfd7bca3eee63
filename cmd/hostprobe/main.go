package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bc-dunia/hostprobe/internal/report"
	"github.com/bc-dunia/hostprobe/internal/sysinfo"
)

func main() {
	jsonOut := flag.Bool("json", false, "Emit the snapshot as indented JSON instead of the sectioned report")
	flag.Parse()

	collector := sysinfo.NewCollector()
	snap, err := collector.Collect(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "hostprobe: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		if err := report.WriteJSON(os.Stdout, snap); err != nil {
			fmt.Fprintf(os.Stderr, "hostprobe: %v\n", err)
			os.Exit(1)
		}
		return
	}

	report.WriteText(os.Stdout, snap)
}
