package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/maptile"
	"github.com/teris-io/shortid"
	pb "gopkg.in/cheggaaa/pb.v1"
)

// 运行模式, 一次运行只能选一种
const (
	ModeTile     = "tile"     // 全分辨率切片
	ModeOverview = "overview" // 低级别概览(融合+抽稀)
)

func InitTask() {
	start := time.Now()

	task, err := NewTask()
	if err != nil {
		log.Fatalf("create task error, details: %s", err)
	}
	// 注册安全退出
	SafeExitInst.Register(task.CleanupFun)

	if err := task.Run(); err != nil {
		log.Fatalf("task %s error, details: %s", task.ID, err)
	}

	secs := time.Since(start).Seconds()
	log.Printf("\n%.3fs finished...", secs)
}

// Task 切片任务
type Task struct {
	ID        string
	Mode      string
	KmzDir    string
	OutDir    string
	BaseName  string
	Zoom      int
	Tolerance float64

	// 当前数据集的临时 geojson, 中断时清理
	tmpGeojson string
}

// NewTask 创建任务, 命令行参数覆盖配置
func NewTask() (*Task, error) {
	id, _ := shortid.Generate()

	task := &Task{
		ID:        id,
		Mode:      conf.Task.Mode,
		KmzDir:    conf.Input.KmzDir,
		OutDir:    conf.Output.Directory,
		BaseName:  conf.Tile.BaseName,
		Zoom:      conf.Tile.Zoom,
		Tolerance: conf.Overview.Tolerance,
	}
	if runMode != "" {
		task.Mode = runMode
	}
	if kmzDir != "" {
		task.KmzDir = kmzDir
	}
	if zoomLevel > 0 {
		task.Zoom = zoomLevel
	}

	switch task.Mode {
	case ModeTile:
	case ModeOverview:
		// 概览固定写到低级别瓦片, -z 不生效
		task.Zoom = conf.Overview.Zoom
	default:
		return nil, fmt.Errorf("unknown mode %q, want %s or %s", task.Mode, ModeTile, ModeOverview)
	}
	return task, nil
}

// CleanupFun 中断时清除没处理完的临时文件
func (task *Task) CleanupFun() {
	if task.tmpGeojson != "" {
		os.Remove(task.tmpGeojson)
	}
}

// Run 执行整个批处理, 数据集逐个处理
func (task *Task) Run() error {
	if err := resetPyramids(task.OutDir, task.BaseName, task.Zoom); err != nil {
		return err
	}

	kmzs, err := filepath.Glob(filepath.Join(task.KmzDir, "*.kmz"))
	if err != nil {
		return err
	}
	log.Infof("Task %s: %d kmz files in %s, mode %s, zoom %d",
		task.ID, len(kmzs), task.KmzDir, task.Mode, task.Zoom)

	for _, kmz := range kmzs {
		if err := task.processKmz(kmz); err != nil {
			return err
		}
	}
	return nil
}

// processKmz 处理单个数据集: 转换 → 解析 → 切片或融合
func (task *Task) processKmz(kmz string) error {
	start := time.Now()
	log.Infof("%s starting", kmz)

	tmp, err := convertKMZ(kmz)
	if err != nil {
		return err
	}
	task.tmpGeojson = tmp
	defer func() {
		os.Remove(tmp)
		task.tmpGeojson = ""
	}()

	dataset := strings.TrimSuffix(filepath.Base(tmp), ".geojson")
	part, err := partitionIndex(dataset)
	if err != nil {
		return err
	}
	dsid := dataset[:3]

	data, err := os.ReadFile(tmp)
	if err != nil {
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return err
	}
	log.Infof("n_feature: %d", len(fc.Features))

	if task.Mode == ModeOverview {
		err = task.overviewDataset(dsid, part, fc)
	} else {
		err = task.tileDataset(dsid, part, fc)
	}
	if err != nil {
		return err
	}

	log.Infof("  Elapsed time: %s", time.Since(start))
	return nil
}

// tileDataset 全分辨率切片: 每个足迹按外环第一个顶点归入一个瓦片
func (task *Task) tileDataset(dsid string, part int, fc *geojson.FeatureCollection) error {
	bar := pb.New(len(fc.Features)).Prefix(fmt.Sprintf("%s : ", dsid))
	bar.SetRefreshRate(time.Second)
	bar.Start()
	defer bar.Finish()

	for _, f := range fc.Features {
		bar.Increment()

		ring, ok := exteriorRing(f.Geometry)
		if !ok {
			log.Warnf("dataset %s: feature without polygon ring, skipped", dsid)
			continue
		}
		pt := ring[0]
		if pt.Lat() > maxTileLat || pt.Lat() < -maxTileLat {
			// Web 地图无法显示两极
			continue
		}

		burst, err := classify(description(f))
		if err != nil {
			return err
		}

		name := fmt.Sprintf("%s%s %s %s", dsid, burst.Direction.Tag(), burst.Swath, burst.BurstID)
		t := latlon2tile(pt.Lat(), pt.Lon(), task.Zoom)
		path := tilePath(task.OutDir, task.BaseName, burst.Direction, part, t)
		if err := appendFeature(styledFeature(f.Geometry, name, burst.Direction.Style()), path); err != nil {
			return err
		}
	}
	return nil
}

// overviewDataset 概览模式: 按方向收集所有足迹面, 融合抽稀后写入固定低级别瓦片
func (task *Task) overviewDataset(dsid string, part int, fc *geojson.FeatureCollection) error {
	byDir := map[OrbitDirection][]orb.Polygon{}

	for _, f := range fc.Features {
		ring, ok := exteriorRing(f.Geometry)
		if !ok {
			log.Warnf("dataset %s: feature without polygon ring, skipped", dsid)
			continue
		}
		if ring[0].Lat() > maxTileLat || ring[0].Lat() < -maxTileLat {
			continue
		}

		burst, err := classify(description(f))
		if err != nil {
			return err
		}
		if !validRing(ring) {
			log.Warnf("dataset %s: degenerate ring (%d points), skipped", dsid, len(ring))
			continue
		}
		byDir[burst.Direction] = append(byDir[burst.Direction], orb.Polygon{ring})
	}

	// 概览瓦片位置是部署约定: 级别足够低, 整个数据集都落在这一张瓦片里
	overviewTile := maptile.New(uint32(conf.Overview.X), uint32(conf.Overview.Y), maptile.Zoom(conf.Overview.Zoom))

	for _, d := range []OrbitDirection{Ascending, Descending} {
		polys := byDir[d]
		if len(polys) == 0 {
			continue
		}
		dissolved, err := dissolve(polys, task.Tolerance)
		if err != nil {
			return err
		}

		name := dsid + d.Tag()
		path := tilePath(task.OutDir, task.BaseName, d, part, overviewTile)
		for _, poly := range dissolved {
			log.Infof("Number of nodes: %d", len(poly[0]))
			if err := appendFeature(styledFeature(poly, name, d.Style()), path); err != nil {
				return err
			}
		}
	}
	return nil
}

// description 要素的 description 属性, 缺失时返回空串交给 classify 报错
func description(f *geojson.Feature) string {
	s, _ := f.Properties["description"].(string)
	return s
}

// exteriorRing 外环坐标, 第一个顶点就是瓦片归属的代表点
func exteriorRing(g orb.Geometry) (orb.Ring, bool) {
	switch p := g.(type) {
	case orb.Polygon:
		if len(p) > 0 && len(p[0]) > 0 {
			return p[0], true
		}
	case orb.MultiPolygon:
		if len(p) > 0 && len(p[0]) > 0 && len(p[0][0]) > 0 {
			return p[0][0], true
		}
	}
	return nil, false
}

// styledFeature 组装带固定样式的输出要素
func styledFeature(g orb.Geometry, name string, s Style) *geojson.Feature {
	f := geojson.NewFeature(g)
	f.Properties = geojson.Properties{
		"name":         name,
		"_color":       s.Color,
		"_opacity":     s.Opacity,
		"_weight":      s.Weight,
		"_fillColor":   s.Color,
		"_fillOpacity": s.FillOpacity,
	}
	return f
}
