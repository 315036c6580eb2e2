package astro

import "github.com/litescript/skyq/internal/angle"

// Catalog star positions are J2000 right ascension and declination in
// degrees with apparent visual magnitude, brightest first. Names follow the
// IAU Working Group on Star Names.
func star(name string, ra, dec, mag float64) Body {
	return Body{
		Name:     name,
		Kind:     KindStar,
		Position: Equatorial{RA: angle.Angle(ra), Dec: angle.Angle(dec)},
		Mag:      mag,
	}
}

// Stars returns the bright-star catalog.
func Stars() []Body {
	out := make([]Body, len(brightStars))
	copy(out, brightStars)
	return out
}

var brightStars = []Body{
	star("Sirius", 101.287, -16.716, -1.46),
	star("Canopus", 95.988, -52.696, -0.74),
	star("Arcturus", 213.915, 19.182, -0.05),
	star("Vega", 279.235, 38.784, 0.03),
	star("Capella", 79.172, 45.998, 0.08),
	star("Rigel", 78.634, -8.202, 0.13),
	star("Procyon", 114.826, 5.225, 0.34),
	star("Achernar", 24.429, -57.237, 0.46),
	star("Betelgeuse", 88.793, 7.407, 0.50),
	star("Hadar", 210.956, -60.373, 0.61),
	star("Altair", 297.696, 8.868, 0.76),
	star("Acrux", 186.650, -63.099, 0.76),
	star("Aldebaran", 68.980, 16.509, 0.85),
	star("Antares", 247.352, -26.432, 0.96),
	star("Spica", 201.298, -11.161, 0.97),
	star("Pollux", 116.329, 28.026, 1.14),
	star("Fomalhaut", 344.413, -29.622, 1.16),
	star("Deneb", 310.358, 45.280, 1.25),
	star("Mimosa", 191.930, -59.689, 1.25),
	star("Regulus", 152.093, 11.967, 1.35),
	star("Adhara", 104.656, -28.972, 1.50),
	star("Castor", 113.650, 31.889, 1.58),
	star("Gacrux", 187.791, -57.113, 1.63),
	star("Shaula", 263.402, -37.104, 1.63),
	star("Bellatrix", 81.283, 6.350, 1.64),
	star("Elnath", 81.573, 28.608, 1.65),
	star("Miaplacidus", 138.300, -69.717, 1.68),
	star("Alnilam", 84.053, -1.202, 1.69),
	star("Alnair", 332.058, -46.961, 1.74),
	star("Alnitak", 85.190, -1.943, 1.77),
	star("Alioth", 193.507, 55.960, 1.77),
	star("Dubhe", 165.932, 61.751, 1.79),
	star("Mirfak", 51.081, 49.861, 1.79),
	star("Wezen", 107.098, -26.393, 1.84),
	star("Kaus Australis", 276.043, -34.384, 1.85),
	star("Avior", 125.629, -59.509, 1.86),
	star("Alkaid", 206.885, 49.313, 1.86),
	star("Sargas", 264.330, -42.998, 1.87),
	star("Menkalinan", 89.882, 44.948, 1.90),
	star("Atria", 252.166, -69.028, 1.92),
	star("Alhena", 99.428, 16.399, 1.93),
	star("Peacock", 306.412, -56.735, 1.94),
	star("Alsephina", 131.176, -54.709, 1.96),
	star("Mirzam", 95.675, -17.956, 1.98),
	star("Alphard", 141.897, -8.659, 2.00),
	star("Hamal", 31.793, 23.463, 2.00),
	star("Polaris", 37.954, 89.264, 2.02),
	star("Diphda", 10.897, -17.987, 2.02),
	star("Nunki", 283.816, -26.297, 2.02),
	star("Mizar", 200.981, 54.925, 2.04),
	star("Mirach", 17.433, 35.621, 2.05),
	star("Alpheratz", 2.097, 29.091, 2.06),
	star("Menkent", 211.671, -36.370, 2.06),
	star("Algieba", 146.463, 19.842, 2.08),
	star("Kochab", 222.676, 74.156, 2.08),
	star("Rasalhague", 263.734, 12.560, 2.08),
	star("Saiph", 86.939, -9.670, 2.09),
	star("Algol", 47.042, 40.957, 2.12),
	star("Denebola", 177.265, 14.572, 2.13),
	star("Muhlifain", 190.379, -48.960, 2.17),
	star("Suhail", 136.999, -43.433, 2.21),
	star("Alphecca", 233.672, 26.715, 2.23),
	star("Mintaka", 83.002, -0.299, 2.23),
	star("Sadr", 305.557, 40.257, 2.23),
	star("Eltanin", 269.152, 51.489, 2.23),
	star("Schedar", 10.127, 56.537, 2.23),
	star("Naos", 120.896, -40.003, 2.25),
	star("Aspidiske", 139.273, -59.275, 2.25),
	star("Caph", 2.295, 59.150, 2.27),
	star("Larawag", 254.655, -34.293, 2.29),
	star("Dschubba", 240.083, -22.622, 2.32),
	star("Merak", 165.460, 56.382, 2.37),
	star("Izar", 221.247, 27.074, 2.37),
	star("Ankaa", 6.571, -42.306, 2.38),
	star("Enif", 326.046, 9.875, 2.39),
	star("Girtab", 265.622, -39.030, 2.41),
	star("Scheat", 345.944, 28.083, 2.42),
	star("Sabik", 257.595, -15.725, 2.43),
	star("Phecda", 178.458, 53.695, 2.44),
	star("Aludra", 111.024, -29.303, 2.45),
	star("Markeb", 140.528, -55.011, 2.47),
	star("Navi", 14.177, 60.717, 2.47),
	star("Aljanah", 311.553, 33.970, 2.48),
	star("Markab", 346.190, 15.205, 2.49),
	star("Alderamin", 319.645, 62.586, 2.51),
	star("Menkar", 45.570, 4.090, 2.53),
	star("Zosma", 168.527, 20.524, 2.56),
	star("Arneb", 83.183, -17.822, 2.58),
	star("Gienah", 183.952, -17.542, 2.59),
	star("Zubeneschamali", 229.252, -9.383, 2.61),
	star("Unukalhai", 236.067, 6.426, 2.63),
	star("Sheratan", 28.660, 20.808, 2.64),
	star("Kraz", 188.597, -23.397, 2.65),
	star("Phact", 84.912, -34.074, 2.65),
	star("Ruchbah", 21.454, 60.235, 2.66),
	star("Muphrid", 208.671, 18.398, 2.68),
	star("Lesath", 262.691, -37.296, 2.70),
	star("Tarazed", 296.565, 10.613, 2.72),
	star("Zubenelgenubi", 222.720, -16.042, 2.75),
	star("Vindemiatrix", 195.544, 10.959, 2.83),
	star("Algorab", 187.466, -16.515, 2.95),
}
