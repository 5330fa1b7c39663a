package main

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/paulmach/orb/geojson"
)

// appendFeature 向瓦片文件追加一个要素
// 文件不存在时先建空 FeatureCollection, 然后整读整写
// 仅限单进程单线程写入
func appendFeature(f *geojson.Feature, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
			return err
		}
		data, err := geojson.NewFeatureCollection().MarshalJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, os.ModePerm); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return err
	}
	fc.Append(f)

	data, err = fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, os.ModePerm)
}

// resetPyramids 运行前清空 1-5 分组全部方向的旧金字塔, 再建好本次的级别目录
// 必须在第一次 appendFeature 之前执行, 否则上次的要素会混进来
func resetPyramids(outDir, base string, zoom int) error {
	for part := 1; part <= 5; part++ {
		for _, d := range []OrbitDirection{Ascending, Descending} {
			bdir := filepath.Join(outDir, pyramidDir(base, d, part))
			if err := os.RemoveAll(bdir); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Join(bdir, strconv.Itoa(zoom)), os.ModePerm); err != nil {
				return err
			}
		}
	}
	return nil
}
