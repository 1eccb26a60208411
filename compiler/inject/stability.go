package inject

// StabilityBand maps a 0-100 stability score to its human-readable band.
// Pure function, no side effects.
func StabilityBand(score int) string {
	switch {
	case score >= 90:
		return "rock-solid"
	case score >= 70:
		return "stable"
	case score >= 50:
		return "wobbly"
	case score >= 30:
		return "unstable"
	case score >= 10:
		return "critical"
	default:
		return "collapsed"
	}
}
