package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// convertKMZ 调用 ogr2ogr 把 kmz 转成临时 geojson, 返回生成的文件路径
// 处理完由调用方删除
func convertKMZ(kmz string) (string, error) {
	out := strings.TrimSuffix(filepath.Base(kmz), ".kmz") + ".geojson"
	// 残留文件会让 ogr2ogr 拒绝写入
	if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
		return "", err
	}

	cmd := exec.Command("ogr2ogr", out, kmz)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ogr2ogr %s: %w", kmz, err)
	}
	return out, nil
}
