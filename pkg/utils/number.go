package utils

import (
	"fmt"
	"math"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MinorToMajor converte centavos para unidades da moeda
func MinorToMajor(cents int64) float64 {
	return RoundWithTwoDecimalPlace(float64(cents) / 100)
}

// FormatMoney formata centavos como valor em reais para exibição no chat
func FormatMoney(cents int64) string {
	return fmt.Sprintf("R$ %.2f", MinorToMajor(cents))
}
