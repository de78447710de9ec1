package geo

import (
	"math"
	"net/url"
	"strconv"
)

// WGS-84 → GCJ-02 変換。
// 中国圏の地図サービス（高德など）は GCJ-02 座標系を要求するため、
// 生の衛星座標をそのまま埋め込むと数百メートルずれる。
// 定数と式は既知の変換アルゴリズムそのもので、変更してはならない。
const (
	semiMajorAxis = 6378245.0
	ee            = 0.00669342162296594323
)

// The correction is only defined inside this rectangle; outside it the
// transform must be the identity.
const (
	regionLngMin = 72.004
	regionLngMax = 137.8347
	regionLatMin = 0.8293
	regionLatMax = 55.8271
)

func outsideRegion(lat, lng float64) bool {
	return lng < regionLngMin || lng > regionLngMax || lat < regionLatMin || lat > regionLatMax
}

// ToGCJ02 converts a raw WGS-84 coordinate into the GCJ-02 system.
// Pure and deterministic; returns the input unchanged outside the region.
func ToGCJ02(lat, lng float64) (float64, float64) {
	if outsideRegion(lat, lng) {
		return lat, lng
	}
	dLat := transformLat(lng-105.0, lat-35.0)
	dLng := transformLng(lng-105.0, lat-35.0)
	radLat := lat / 180.0 * math.Pi
	magic := math.Sin(radLat)
	magic = 1 - ee*magic*magic
	sqrtMagic := math.Sqrt(magic)
	dLat = (dLat * 180.0) / ((semiMajorAxis * (1 - ee)) / (magic * sqrtMagic) * math.Pi)
	dLng = (dLng * 180.0) / (semiMajorAxis / sqrtMagic * math.Cos(radLat) * math.Pi)
	return lat + dLat, lng + dLng
}

func transformLat(x, y float64) float64 {
	ret := -100.0 + 2.0*x + 3.0*y + 0.2*y*y + 0.1*x*y + 0.2*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(y*math.Pi) + 40.0*math.Sin(y/3.0*math.Pi)) * 2.0 / 3.0
	ret += (160.0*math.Sin(y/12.0*math.Pi) + 320*math.Sin(y*math.Pi/30.0)) * 2.0 / 3.0
	return ret
}

func transformLng(x, y float64) float64 {
	ret := 300.0 + x + 2.0*y + 0.1*x*x + 0.1*x*y + 0.1*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(x*math.Pi) + 40.0*math.Sin(x/3.0*math.Pi)) * 2.0 / 3.0
	ret += (150.0*math.Sin(x/12.0*math.Pi) + 300.0*math.Sin(x/30.0*math.Pi)) * 2.0 / 3.0
	return ret
}

const markerName = "扫码者位置"

// MapLinks are ready-to-open deep links for the two supported map services.
type MapLinks struct {
	AmapURL  string
	AppleURL string
}

// BuildMapLinks applies the transform once and formats both service URLs.
// Amap expects GCJ-02; Apple Maps takes the raw WGS-84 coordinate.
func BuildMapLinks(lat, lng float64) MapLinks {
	gcjLat, gcjLng := ToGCJ02(lat, lng)
	name := url.QueryEscape(markerName)
	return MapLinks{
		AmapURL:  "https://uri.amap.com/marker?position=" + formatCoord(gcjLng) + "," + formatCoord(gcjLat) + "&name=" + name,
		AppleURL: "https://maps.apple.com/?ll=" + formatCoord(lat) + "," + formatCoord(lng) + "&q=" + name,
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
