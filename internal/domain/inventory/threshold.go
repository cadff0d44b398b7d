package inventory

import "math"

// CrossedThreshold indica si el cambio de before a after es una transición hacia abajo
// que deja el stock en o por debajo del umbral. Mientras el stock siga bajo el umbral
// los cambios siguientes no vuelven a cruzarlo.
func CrossedThreshold(before, after, threshold int64) bool {
	return before > threshold && after <= threshold
}

// SuggestedOrder unidades a pedir para volver a 1.5 veces el umbral. Cero si el stock ya llega.
func SuggestedOrder(stock, threshold int64) int64 {
	if threshold <= 0 {
		return 0
	}
	target := threshold + (threshold+1)/2
	if target < threshold {
		target = math.MaxInt64
	}
	if stock >= target {
		return 0
	}
	return target - stock
}
