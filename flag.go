package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	hf         bool
	configPath string
	logLevel   string
	kmzDir     string
	zoomLevel  int
	runMode    string
)

func InitFlag() {
	flag.BoolVar(&hf, "h", false, "this help")
	flag.StringVar(&configPath, "c", "./conf/conf.toml", "set config `file`")
	flag.StringVar(&logLevel, "l", "info", "set log level (default: info)")
	flag.StringVar(&kmzDir, "k", "", "kmz `dir`, 覆盖配置 input.kmzDir")
	flag.IntVar(&zoomLevel, "z", 0, "output zoom level, 覆盖配置 tile.zoom")
	flag.StringVar(&runMode, "m", "", "run mode: tile | overview, 覆盖配置 task.mode")
	// 覆盖默认的 Usage
	flag.Usage = usage
	flag.Parse()

	if hf {
		flag.Usage()
		os.Exit(0)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `s1tiler version: s1tiler/v1.0.0
Usage: s1tiler [-h] [-c filename] [-l logLevel] [-k kmzDir] [-z zoomLevel] [-m mode]
`)
	flag.PrintDefaults()
}
