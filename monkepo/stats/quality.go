package stats

// Quality is the human-readable band for a creature's total IV quality.
type Quality string

const (
	QualityTerrible Quality = "terrible"
	QualityBad      Quality = "bad"
	QualityDecent   Quality = "decent"
	QualityGood     Quality = "good"
	QualityGreat    Quality = "great"
	QualityPerfect  Quality = "perfect"
)

// Classify maps the IV total onto a quality band. Thresholds are inclusive
// lower bounds, so a total of exactly 180 is perfect and 179 is great. The
// band is monotonic non-decreasing in the total.
func Classify(ivs IVSet) Quality {
	total := ivs.Total()
	switch {
	case total >= 180: // 30+ average
		return QualityPerfect
	case total >= 165: // 27.5+ average
		return QualityGreat
	case total >= 150: // 25+ average
		return QualityGood
	case total >= 135: // 22.5+ average
		return QualityDecent
	case total >= 120: // 20+ average
		return QualityBad
	default:
		return QualityTerrible
	}
}
