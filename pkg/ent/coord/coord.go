// Package coord parses geographic coordinates of localities. UTM grid
// references are converted to WGS84 latitude and longitude.
package coord

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/gnames/gnsyn/pkg/ent/record"
	UTM "github.com/im7mortal/UTM"
)

var utmRe = regexp.MustCompile(
	`^\s*(?P<zone>\d{1,2})(?P<band>[A-Z])\s+(?P<easting>\d+)\s+(?P<northing>\d+)\s*$`,
)

// Grid is a parsed UTM coordinate such as "30U 495000 5623000". The textual
// parts are kept as given for display.
type Grid struct {
	Zone     string
	Band     string
	Easting  string
	Northing string
}

// String returns the canonical representation of a grid reference.
func (g Grid) String() string {
	return g.Zone + g.Band + " " + g.Easting + " " + g.Northing
}

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Lat returns latitude rounded to 7 decimal places.
func (p Point) Lat() string {
	return round(p.Latitude)
}

// Lon returns longitude rounded to 7 decimal places.
func (p Point) Lon() string {
	return round(p.Longitude)
}

// OSMURL returns a link to the point on OpenStreetMap.
func (p Point) OSMURL() string {
	lat, lon := p.Lat(), p.Lon()
	return fmt.Sprintf(
		"https://www.openstreetmap.org/?mlat=%s&mlon=%s#map=6/%s/%s",
		lat, lon, lat, lon,
	)
}

// Location holds the coordinates of a locality. Grid is nil when
// coordinates were given in decimal degrees.
type Location struct {
	Grid  *Grid
	Point Point
}

// ParseUTM parses a "<zone><band> <easting> <northing>" string.
func ParseUTM(s string) (Grid, error) {
	m := utmRe.FindStringSubmatch(s)
	if m == nil {
		return Grid{}, fmt.Errorf("'%s' is not a UTM coordinate", s)
	}
	return Grid{
		Zone:     m[utmRe.SubexpIndex("zone")],
		Band:     m[utmRe.SubexpIndex("band")],
		Easting:  m[utmRe.SubexpIndex("easting")],
		Northing: m[utmRe.SubexpIndex("northing")],
	}, nil
}

// ToPoint converts a grid reference to WGS84.
func (g Grid) ToPoint() (Point, error) {
	zone, err := strconv.Atoi(g.Zone)
	if err != nil {
		return Point{}, err
	}
	easting, err := strconv.ParseFloat(g.Easting, 64)
	if err != nil {
		return Point{}, err
	}
	northing, err := strconv.ParseFloat(g.Northing, 64)
	if err != nil {
		return Point{}, err
	}
	lat, lon, err := UTM.ToLatLon(easting, northing, zone, g.Band)
	if err != nil {
		return Point{}, err
	}
	return Point{Latitude: lat, Longitude: lon}, nil
}

// ParseDecimal parses latitude and longitude in decimal degrees.
func ParseDecimal(lat, lon string) (Point, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("bad latitude '%s': %w", lat, err)
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("bad longitude '%s': %w", lon, err)
	}
	if math.Abs(la) > 90 {
		return Point{}, fmt.Errorf("latitude %s is out of range", lat)
	}
	if math.Abs(lo) > 180 {
		return Point{}, fmt.Errorf("longitude %s is out of range", lon)
	}
	return Point{Latitude: la, Longitude: lo}, nil
}

// FromSynonym returns coordinates of a synonym's locality. UTM takes
// precedence over decimal degrees. It returns nil if the record has no
// coordinates, or only one of latitude and longitude.
func FromSynonym(s record.Synonym) (*Location, error) {
	switch {
	case s.UTM != "":
		g, err := ParseUTM(s.UTM)
		if err != nil {
			return nil, CoordinateError(s.Line, s.UTM, err)
		}
		p, err := g.ToPoint()
		if err != nil {
			return nil, CoordinateError(s.Line, s.UTM, err)
		}
		return &Location{Grid: &g, Point: p}, nil
	case s.Latitude != "" && s.Longitude != "":
		p, err := ParseDecimal(s.Latitude, s.Longitude)
		if err != nil {
			val := s.Latitude + ", " + s.Longitude
			return nil, CoordinateError(s.Line, val, err)
		}
		return &Location{Point: p}, nil
	default:
		return nil, nil
	}
}

func round(f float64) string {
	f = math.Round(f*1e7) / 1e7
	return strconv.FormatFloat(f, 'f', -1, 64)
}
