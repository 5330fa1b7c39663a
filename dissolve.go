package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
	"github.com/twpayne/go-geos"
)

// validRing 闭合且至少4个点才能成面
func validRing(r orb.Ring) bool {
	return len(r) >= 4 && r.Closed()
}

// dissolve 把同方向的全部足迹面合并成互不相交的简单面, 再按容差抽稀
// 输入为空时返回空, 不算错误
func dissolve(polys []orb.Polygon, tolerance float64) ([]orb.Polygon, error) {
	if len(polys) == 0 {
		return nil, nil
	}

	ctx := geos.NewContext()
	geoms := make([]*geos.Geom, 0, len(polys))
	for _, p := range polys {
		data, err := geojson.NewGeometry(p).MarshalJSON()
		if err != nil {
			return nil, err
		}
		g, err := ctx.NewGeomFromGeoJSON(string(data))
		if err != nil {
			return nil, fmt.Errorf("dissolve: build polygon: %w", err)
		}
		geoms = append(geoms, g)
	}

	union, err := cascadedUnion(geoms)
	if err != nil {
		return nil, err
	}

	// Polygon 的 NumGeometries 为 1, MultiPolygon 按子面遍历
	var out []orb.Polygon
	for i := 0; i < union.NumGeometries(); i++ {
		part := union.Geometry(i)
		g, err := geojson.UnmarshalGeometry([]byte(part.ToGeoJSON(0)))
		if err != nil {
			return nil, fmt.Errorf("dissolve: read union result: %w", err)
		}
		poly, ok := g.Geometry().(orb.Polygon)
		if !ok || len(poly) == 0 {
			continue
		}
		// 只保留外环, 孔洞不建模
		simplified := simplify.DouglasPeucker(tolerance).Polygon(orb.Polygon{poly[0]})
		out = append(out, simplified)
	}
	return out, nil
}

// cascadedUnion 二分归并求并集, 比逐个累加少做很多次大图形运算
func cascadedUnion(geoms []*geos.Geom) (*geos.Geom, error) {
	if len(geoms) == 0 {
		return nil, fmt.Errorf("dissolve: union of empty geometry list")
	}
	if len(geoms) == 1 {
		return geoms[0], nil
	}

	mid := len(geoms) / 2
	left, err := cascadedUnion(geoms[:mid])
	if err != nil {
		return nil, err
	}
	right, err := cascadedUnion(geoms[mid:])
	if err != nil {
		return nil, err
	}

	res := left.Union(right)
	left.Destroy()
	right.Destroy()
	return res, nil
}
