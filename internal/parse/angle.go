package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/litescript/skyq/internal/angle"
	"github.com/litescript/skyq/internal/skyerr"
)

const angleHint = "expected degrees, D°M′S″, D:M:S, or a number with deg, d, ° or rad, optionally followed by n, s, e or w"

var (
	sexagesimal = regexp.MustCompile(`^([+-]?)(\d+)(?:°|:)(\d+)(?:′|'|:)?(?:(\d+(?:\.\d+)?)(?:″|")?)?$`)
	// 12d30m15s; checked before the hemisphere suffix so the trailing s is
	// read as seconds.
	sexagesimalLetters = regexp.MustCompile(`^([+-]?)(\d+)d(\d+)m(?:(\d+(?:\.\d+)?)s)?$`)
)

// Angle parses an angle token. A trailing hemisphere letter takes the
// magnitude of the rest and makes it negative for s and w.
func Angle(token string) (angle.Angle, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	if s == "" {
		return 0, skyerr.Parse("angle", token, angleHint)
	}
	if a, ok := sexa(sexagesimalLetters, s); ok {
		return a, nil
	}
	if n := len(s); n > 1 && strings.ContainsRune("nsew", rune(s[n-1])) {
		a, ok := angleBody(s[:n-1])
		if !ok {
			return 0, skyerr.Parse("angle", token, angleHint)
		}
		a = a.Abs()
		if s[n-1] == 's' || s[n-1] == 'w' {
			a = -a
		}
		return a, nil
	}
	a, ok := angleBody(s)
	if !ok {
		return 0, skyerr.Parse("angle", token, angleHint)
	}
	return a, nil
}

func angleBody(s string) (angle.Angle, bool) {
	for _, re := range []*regexp.Regexp{sexagesimal, sexagesimalLetters} {
		if a, ok := sexa(re, s); ok {
			return a, true
		}
	}
	if num, found := strings.CutSuffix(s, "rad"); found {
		n, ok := number(num)
		return angle.FromRadians(n), ok
	}
	for _, suffix := range []string{"deg", "°", "d"} {
		if num, found := strings.CutSuffix(s, suffix); found {
			n, ok := number(num)
			return angle.FromDegrees(n), ok
		}
	}
	n, ok := number(s)
	return angle.FromDegrees(n), ok
}

func sexa(re *regexp.Regexp, s string) (angle.Angle, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	d, _ := strconv.Atoi(m[2])
	mins, _ := strconv.Atoi(m[3])
	var sec float64
	if m[4] != "" {
		sec, _ = strconv.ParseFloat(m[4], 64)
	}
	return angle.FromSexagesimal(m[1] == "-", d, mins, sec), true
}

// LatLong parses an observer location "lat,long". Empty input and "none"
// mean no location and return nil. Latitude outside ±90° is rejected;
// longitude is wrapped into (-180, 180].
func LatLong(token string) (*angle.GeoCoord, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	if s == "" || s == "none" {
		return nil, nil
	}
	latTok, lonTok, found := strings.Cut(s, ",")
	if !found {
		return nil, skyerr.Parse("location", token, "expected lat,long")
	}
	lat, err := Angle(latTok)
	if err != nil {
		return nil, err
	}
	if lat.Abs() > 90 {
		return nil, skyerr.Parse("latitude", strings.TrimSpace(latTok), "must be within ±90°")
	}
	lon, err := Angle(lonTok)
	if err != nil {
		return nil, err
	}
	return &angle.GeoCoord{Lat: lat, Lon: lon.Wrap180()}, nil
}
