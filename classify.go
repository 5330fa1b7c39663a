package main

import (
	"fmt"
	"strconv"
	"strings"
)

// OrbitDirection 升降轨
type OrbitDirection int

const (
	Ascending OrbitDirection = iota
	Descending
)

// Tag 方向标记 A/D, 用于目录名与要素名
func (d OrbitDirection) Tag() string {
	if d == Descending {
		return "D"
	}
	return "A"
}

// Style 前端显示样式, 每个方向一套固定值
type Style struct {
	Color       string
	Opacity     float64
	Weight      int
	FillOpacity float64
}

func (d OrbitDirection) Style() Style {
	c := colorAscending
	if d == Descending {
		c = colorDescending
	}
	return Style{Color: c, Opacity: lineOpacity, Weight: lineWidth, FillOpacity: fillOpacity}
}

// Burst 从 description 解析出的单个 burst 信息
type Burst struct {
	Direction OrbitDirection
	BurstID   string
	Swath     string
}

// description 按 '>' 分段后各字段的固定位置, 值读到下一个 '<' 为止
type descField struct {
	name    string
	segment int
}

var descSchema = []descField{
	{"orbit direction", 11},
	{"burst id", 17},
	{"swath", 23},
}

// ClassificationError description 不符合已知的 burst 标记格式
type ClassificationError struct {
	Field string
	Value string
}

func (e *ClassificationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("classify: description has no %s field", e.Field)
	}
	return fmt.Sprintf("classify: bad %s %q in description", e.Field, e.Value)
}

// InvalidDatasetIDError 数据集编号前3位不是数字
type InvalidDatasetIDError struct {
	ID string
}

func (e *InvalidDatasetIDError) Error() string {
	return fmt.Sprintf("dataset id %q: first 3 chars are not numeric", e.ID)
}

// classify 按 descSchema 解析 description, 得到轨道方向/burst编号/条带号
func classify(descr string) (Burst, error) {
	segs := strings.Split(descr, ">")
	vals := make([]string, len(descSchema))
	for i, f := range descSchema {
		if f.segment >= len(segs) {
			return Burst{}, &ClassificationError{Field: f.name}
		}
		v := segs[f.segment]
		if j := strings.Index(v, "<"); j >= 0 {
			v = v[:j]
		}
		vals[i] = v
	}

	b := Burst{BurstID: vals[1], Swath: vals[2]}
	switch vals[0] {
	case "ASCENDING":
		b.Direction = Ascending
	case "DESCENDING":
		b.Direction = Descending
	default:
		return Burst{}, &ClassificationError{Field: "orbit direction", Value: vals[0]}
	}
	return b, nil
}

// partitionIndex 数据集编号前3位 mod 5, 0 记作 5, 得到 1-5 分组
func partitionIndex(id string) (int, error) {
	if len(id) < 3 {
		return 0, &InvalidDatasetIDError{ID: id}
	}
	n, err := strconv.Atoi(id[:3])
	if err != nil {
		return 0, &InvalidDatasetIDError{ID: id}
	}
	i := n % 5
	if i == 0 {
		i = 5
	}
	return i, nil
}
