package playback

// ORPIndex maps a word length (in runes) to the optimal recognition
// point, the character a reader's eye should fixate on.
func ORPIndex(length int) int {
	switch {
	case length <= 1:
		return 0
	case length <= 5:
		return 1
	case length <= 9:
		return 2
	case length <= 13:
		return 3
	default:
		return 4
	}
}
