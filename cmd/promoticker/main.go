package main

import (
	"flag"

	storefront "github.com/edward-ap/promoticker/internal/storefront"
)

func main() {
	var opts storefront.Options
	debugFrames := flag.Bool("debugFrames", false, "log the marquee frame rate every few seconds")
	flag.StringVar(&opts.FrameSource, "frames", "", `frame source for this run: "animation" or "ticker" (default from config.json)`)
	flag.Float64Var(&opts.DurationScale, "durationScale", 0, "multiply every banner duration for this run, e.g. 0.5 for double speed")
	flag.Parse()
	storefront.SetDebugFramesEnabled(*debugFrames)

	storefront.NewApp(opts).Run()
}
