package util

import "math"

// RoundFloat64 rounds f to n decimals, ties to even.
func RoundFloat64(f float64, n int) float64 {
	pow := math.Pow10(n)
	return math.RoundToEven(f*pow) / pow
}

// Percentage returns part/total*100 rounded to one decimal, or 0 when total is 0.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundFloat64(float64(part)/float64(total)*100, 1)
}
