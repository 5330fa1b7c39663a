package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var conf *Conf

type Conf struct {
	App struct {
		Version string `toml:"version"`
		Title   string `toml:"title"`
	} `toml:"app"`
	Output struct {
		Directory      string `toml:"directory"`
		LogDir         string `toml:"logDir"`
		OutputTerminal bool   `toml:"outputTerminal"`
	} `toml:"output"`
	Input struct {
		KmzDir string `toml:"kmzDir"`
	} `toml:"input"`
	Tile struct {
		BaseName string `toml:"baseName"`
		Zoom     int    `toml:"zoom"`
	} `toml:"tile"`
	Overview struct {
		Zoom      int     `toml:"zoom"`
		X         int     `toml:"x"`
		Y         int     `toml:"y"`
		Tolerance float64 `toml:"tolerance"`
	} `toml:"overview"`
	Task struct {
		Mode string `toml:"mode"`
	} `toml:"task"`
}

// InitConf 初始化配置
func InitConf(cfgFile string) {
	if cfgFile == "" {
		cfgFile = "conf.toml"
	}
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		fmt.Printf("config file(%s) not exist", cfgFile)
		os.Exit(1)
	}
	viper.SetConfigType("toml")
	viper.SetConfigFile(cfgFile)
	viper.AutomaticEnv() // read in environment variables that match
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Printf("read config file(%s) error, details: %s", viper.ConfigFileUsed(), err)
	}
	// 设置默认值
	viper.SetDefault("app.version", "v 1.0.0")
	viper.SetDefault("app.title", "S1 Burst Tiler")
	viper.SetDefault("output.directory", ".")
	viper.SetDefault("output.outputTerminal", true)
	viper.SetDefault("input.kmzDir", "kmz")
	viper.SetDefault("tile.baseName", "S1burst")
	viper.SetDefault("tile.zoom", 6)
	viper.SetDefault("overview.zoom", 1)
	viper.SetDefault("overview.x", 1)
	viper.SetDefault("overview.y", 0)
	viper.SetDefault("overview.tolerance", 0.05)
	viper.SetDefault("task.mode", ModeTile)

	err = viper.Unmarshal(&conf)
	if err != nil {
		panic("配置文件解析失败")
	}
}
