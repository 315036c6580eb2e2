package astro

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/litescript/skyq/internal/angle"
)

// Planet identifies one of the nine classical planets (Earth excluded, Pluto
// included).
type Planet int

const (
	Mercury Planet = iota + 1
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

var planetNames = map[Planet]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
	Pluto:   "Pluto",
}

// String returns the planet name.
func (p Planet) String() string {
	if name, ok := planetNames[p]; ok {
		return name
	}
	return "unknown"
}

// Planets lists all planets in order from the Sun.
func Planets() []Planet {
	return []Planet{Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
}

// elements are Keplerian mean elements: semi-major axis (AU), eccentricity,
// inclination, mean longitude, longitude of perihelion and longitude of the
// ascending node (degrees).
type elements struct {
	a, e, i, l, peri, node float64
}

// orbit pairs J2000 elements with their rates per Julian century.
type orbit struct {
	at, rate elements
	radiusKm float64
	// magnitude at unit distances; phase is the phase angle in degrees.
	mag func(phase float64) float64
}

// Approximate mean elements valid 1800-2050, referred to the J2000 ecliptic
// and equinox.
var orbits = map[Planet]orbit{
	Mercury: {
		at:       elements{0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593},
		rate:     elements{0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
		radiusKm: 2439.7,
		mag: func(i float64) float64 {
			return -0.42 + 0.0380*i - 0.000273*i*i + 0.000002*i*i*i
		},
	},
	Venus: {
		at:       elements{0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255},
		rate:     elements{0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
		radiusKm: 6051.8,
		mag: func(i float64) float64 {
			return -4.40 + 0.0009*i + 0.000239*i*i - 0.00000065*i*i*i
		},
	},
	Mars: {
		at:       elements{1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891},
		rate:     elements{0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
		radiusKm: 3396.2,
		mag:      func(i float64) float64 { return -1.52 + 0.016*i },
	},
	Jupiter: {
		at:       elements{5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909},
		rate:     elements{-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
		radiusKm: 71492,
		mag:      func(i float64) float64 { return -9.40 + 0.005*i },
	},
	Saturn: {
		at:       elements{9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448},
		rate:     elements{-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
		radiusKm: 60268,
		// Ring tilt is ignored.
		mag: func(i float64) float64 { return -8.88 + 0.044*i },
	},
	Uranus: {
		at:       elements{19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503},
		rate:     elements{-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
		radiusKm: 25559,
		mag:      func(float64) float64 { return -7.19 },
	},
	Neptune: {
		at:       elements{30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574},
		rate:     elements{0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664},
		radiusKm: 24764,
		mag:      func(float64) float64 { return -6.87 },
	},
	Pluto: {
		at:       elements{39.48211675, 0.24882730, 17.14001206, 238.92903833, 224.06891629, 110.30393684},
		rate:     elements{-0.00031596, 0.00005170, 0.00004818, 145.20780515, -0.04062942, -0.01183482},
		radiusKm: 1188.3,
		mag:      func(float64) float64 { return -1.00 },
	},
}

// Earth-Moon barycenter.
var earthOrbit = orbit{
	at:   elements{1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0},
	rate: elements{0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0},
}

// Light travel time across one AU, in days.
const lightDaysPerAU = 0.0057755183

// heliocentric returns the J2000 ecliptic position of the orbit's body in AU.
func heliocentric(o orbit, jd float64) r3.Vec {
	T := (jd - 2451545.0) / 36525
	el := elements{
		a:    o.at.a + o.rate.a*T,
		e:    o.at.e + o.rate.e*T,
		i:    o.at.i + o.rate.i*T,
		l:    o.at.l + o.rate.l*T,
		peri: o.at.peri + o.rate.peri*T,
		node: o.at.node + o.rate.node*T,
	}

	omega := angle.Angle(el.peri - el.node).Radians() // argument of perihelion
	node := angle.Angle(el.node).Radians()
	incl := angle.Angle(el.i).Radians()
	m := angle.Angle(el.l - el.peri).Wrap180().Radians()

	e := solveKepler(m, el.e)
	xp := el.a * (math.Cos(e) - el.e)
	yp := el.a * math.Sqrt(1-el.e*el.e) * math.Sin(e)

	cw, sw := math.Cos(omega), math.Sin(omega)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(incl), math.Sin(incl)

	return r3.Vec{
		X: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		Y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		Z: (sw*si)*xp + (cw*si)*yp,
	}
}

// solveKepler solves M = E - e sin E for the eccentric anomaly (radians).
func solveKepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)
	for range 30 {
		d := (m - (ea - e*math.Sin(ea))) / (1 - e*math.Cos(ea))
		ea += d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return ea
}

// locatePlanet returns a planet's geocentric position, corrected once for
// light time.
func locatePlanet(p Planet, jd float64) Apparent {
	o := orbits[p]
	earth := heliocentric(earthOrbit, jd)

	helio := heliocentric(o, jd)
	geo := r3.Sub(helio, earth)
	tau := r3.Norm(geo) * lightDaysPerAU
	helio = heliocentric(o, jd-tau)
	geo = r3.Sub(helio, earth)

	lon, lat, delta := fromVector(geo)
	sunLon, _, sunDist := fromVector(r3.Scale(-1, earth))
	r := r3.Norm(helio)

	cosI := (r*r + delta*delta - sunDist*sunDist) / (2 * r * delta)
	phase := math.Acos(math.Max(-1, math.Min(1, cosI)))

	eqLon, eqLat, _ := fromVector(eclipticToEquatorialVec(geo, ObliquityJ2000))
	return Apparent{
		Equatorial:  Equatorial{RA: eqLon, Dec: eqLat},
		Ecliptic:    Ecliptic{Lon: lon, Lat: lat},
		Distance:    delta,
		SunDistance: r,
		PhaseAngle:  angle.FromRadians(phase),
		Elongation:  (lon - sunLon).Wrap180(),
	}
}

// planetMagnitude combines the distance modulus with the planet's phase law.
func planetMagnitude(p Planet, a Apparent) float64 {
	return 5*math.Log10(a.SunDistance*a.Distance) + orbits[p].mag(a.PhaseAngle.Degrees())
}

