package wheelads

import "regexp"

// WheelManufacturers lists recognised wheel brands. Matching returns the
// first entry found, so the order is significant.
var WheelManufacturers = []string{
	"BBS", "OZ", "BORBET", "RIAL", "ATS", "ALUTEC", "DEZENT", "MAK",
	"MAM", "AEZ", "RC DESIGN", "ALPINA", "AMG", "RONAL", "SCHMIDT",
	"BROCK", "RONDELL", "DOTZ", "MTM", "RH", "MSW", "VOSSEN", "ENKEI",
	"ADVANTI", "WORK", "HRE", "SPEEDLINE", "AUTEC",
}

// TyreManufacturers lists recognised tyre brands in match priority order.
var TyreManufacturers = []string{
	"MICHELIN", "CONTINENTAL", "DUNLOP", "PIRELLI", "GOODYEAR", "HANKOOK",
	"BRIDGESTONE", "FALKEN", "NOKIAN", "TOYO", "YOKOHAMA", "VREDESTEIN",
	"SEMPERIT", "KLEBER", "NEXEN", "UNIROYAL", "BF GOODRICH", "BARUM",
	"MATADOR", "KUMHO", "TRACMAX", "SAVA", "MAXXIS", "LINGLONG", "SUNNY",
}

// Colours lists recognised wheel colours (German, uppercase). Finishes come
// before their base colour so "schwarz matt" is not reported as "Schwarz".
var Colours = []string{
	"SCHWARZ MATT", "SCHWARZ GLANZ", "SCHWARZ", "SILBERN", "SILBER",
	"GRAU MATT", "GRAU", "ANTHRAZIT MATT", "ANTHRAZIT", "WEISS", "WEIß",
	"CHROM", "POLIERT", "BRONZE", "GOLD", "GUNMETAL", "GRAPHIT", "TITAN",
}

// Season keywords, checked in priority order against uppercased text.
var (
	winterKeywords    = []string{"WINTERREIF"}
	summerKeywords    = []string{"SOMMERREIF"}
	allSeasonKeywords = []string{"GANZJAHR", "ALLWETTER"}
)

var (
	// zollRe matches "19 Zoll".
	zollRe = regexp.MustCompile(`(?i)(\d{1,2})\s*ZOLL`)

	// rimRe matches the rim diameter of a tyre size, e.g. "R19" or "40R19".
	// The R must not follow a letter, so words ending in r ("für 20") do not
	// count.
	rimRe = regexp.MustCompile(`(?i)(?:^|[^\pL])R\s*(\d{2})`)

	// widthRe matches rim width and diameter, e.g. "8.5Jx19", "8,5 x 19", "9J19".
	// The diameter must not continue into a third digit so bolt patterns
	// like "5x112" are not taken for a width.
	widthRe = regexp.MustCompile(`(?i)\b(\d{1,2}(?:[,.]\d)?)\s*(?:J\s*[x×]|[jx×])\s*(\d{2})\b`)

	// boltPatternLKRe matches a bolt pattern introduced by "LK" or "Lochkreis".
	boltPatternLKRe = regexp.MustCompile(`(?i)(?:LK|LOCHKREIS)\s*:?\s*(\d)\s*[x×/]\s*(\d{2,3})`)

	// boltPatternRe matches a bare bolt pattern with a three digit circle.
	boltPatternRe = regexp.MustCompile(`(?i)\b([3-9])\s*[x×/]\s*(\d{3})\b`)

	// offsetRe matches "ET35", "ET: 35" and "Einpresstiefe 35".
	offsetRe = regexp.MustCompile(`(?i)\b(?:ET|EINPRESSTIEFE)\s*:?\s*(\d{1,3})`)

	// hubBoreRe matches "Nabendurchmesser 66,6", "Nabenbohrung: 57.1", "Zentrierung 72.6".
	hubBoreRe = regexp.MustCompile(`(?i)(?:NABEN(?:BOHRUNG|DURCHMESSER)?|ZENTRIERUNG)\s*:?\s*(\d{2,3}[,.]?\d?)`)

	// tyreSizeRe matches "225/40R19", "225/40 ZR 19" and "225/40 19".
	tyreSizeRe = regexp.MustCompile(`(?i)(\d{3})\s*/\s*(\d{2})\s*(?:ZR|R)?\s*(\d{2})`)

	// dotRe matches tyre date codes such as "DOT 2418" or "DOT:0321".
	dotRe = regexp.MustCompile(`(?i)DOT\s*[:\-]?\s*(\d{4})`)

	// priceRe matches euro prices, keeping the original separators:
	// "1.250,00 €", "450€", "1.200 €", "1200 €". The amount must start the
	// number, so digits are never dropped from its front.
	priceRe = regexp.MustCompile(`(?:^|[^\d.,])(\d{1,3}(?:\.\d{3})+(?:,\d{2})?|\d+(?:,\d{2})?)\s*€`)
)
