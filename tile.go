package main

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/paulmach/orb/maptile"
)

// Web 地图(Mercator)能显示的最大纬度, 超出的足迹直接丢弃
const maxTileLat = 84.0

// 切片时前端显示样式的固定值
const (
	colorAscending  = "#0000ff"
	colorDescending = "#ff0000"
	lineOpacity     = 0.4
	lineWidth       = 1
	fillOpacity     = 0.1
)

// latlon2tile 经纬度转瓦片编号
// 标准 Web Mercator 切片公式, 向零取整, 不做范围钳制
// 参考: https://www.trail-note.net/tech/coordinate/
func latlon2tile(lat, lon float64, zoom int) maptile.Tile {
	n := math.Exp2(float64(zoom))
	x := int((lon/180 + 1) * n / 2)
	y := int((-math.Log(math.Tan(math.Pi/4+lat*math.Pi/360)) + math.Pi) * n / (2 * math.Pi))
	return maptile.New(uint32(x), uint32(y), maptile.Zoom(zoom))
}

// pyramidDir 金字塔根目录名, 形如 S1burstA3
func pyramidDir(base string, d OrbitDirection, part int) string {
	return fmt.Sprintf("%s%s%d", base, d.Tag(), part)
}

// tilePath 单个瓦片文件路径 <dir>/<base><A|D><part>/<z>/<x>/<y>.geojson
func tilePath(outDir, base string, d OrbitDirection, part int, t maptile.Tile) string {
	return filepath.Join(outDir, pyramidDir(base, d, part),
		fmt.Sprintf("%d", t.Z), fmt.Sprintf("%d", t.X), fmt.Sprintf("%d.geojson", t.Y))
}
