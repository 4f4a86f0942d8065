package performance

import "github.com/vfg2006/content-insights-api/internal/domain"

// PreviousPeriod calcula o período anterior equivalente: mesmo comprimento
// e imediatamente adjacente ao período atual
func PreviousPeriod(current domain.Period) domain.Period {
	days := current.LengthDays()
	prevEnd := current.Start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))

	return domain.Period{
		Start: prevStart,
		End:   prevEnd,
	}
}

// NeedsAttention sinaliza uma queda relevante de cliques. O limiar relativo
// protege contra ruído em números absolutos pequenos
func NeedsAttention(clicksChange, previousClicks int) bool {
	if clicksChange >= 0 || previousClicks < 10 {
		return false
	}
	decline := float64(-clicksChange) / float64(previousClicks)
	return decline > 0.2
}
