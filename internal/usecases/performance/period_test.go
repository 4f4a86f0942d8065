package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/content-insights-api/internal/domain"
)

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name          string
		start         time.Time
		end           time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Janela de 28 dias",
			start:         time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			end:           time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Janela de um único dia",
			start:         time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			end:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "Janela cruzando a virada do ano",
			start:         time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			end:           time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC),
			expectedStart: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := domain.Period{Start: tt.start, End: tt.end}
			previous := PreviousPeriod(current)

			assert.Equal(t, tt.expectedStart, previous.Start)
			assert.Equal(t, tt.expectedEnd, previous.End)

			// Simetria: mesmo comprimento e adjacência imediata
			assert.Equal(t, current.LengthDays(), previous.LengthDays())
			assert.Equal(t, tt.start.AddDate(0, 0, -1), previous.End)
		})
	}
}

func TestPeriodLengthDays_HorarioDeVerao(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	// A janela contém o adiantamento do relógio de março, que encurta o
	// intervalo em uma hora. A contagem deve seguir os dias de calendário
	current := domain.Period{
		Start: time.Date(2026, 3, 5, 0, 0, 0, 0, loc),
		End:   time.Date(2026, 3, 11, 0, 0, 0, 0, loc),
	}

	assert.Equal(t, 7, current.LengthDays())

	previous := PreviousPeriod(current)
	assert.Equal(t, 7, previous.LengthDays())
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, loc), previous.End)
	assert.Equal(t, time.Date(2026, 2, 26, 0, 0, 0, 0, loc), previous.Start)
}

func TestNeedsAttention(t *testing.T) {
	tests := []struct {
		name           string
		clicksChange   int
		previousClicks int
		expected       bool
	}{
		{
			name:           "Queda relevante acima do limiar",
			clicksChange:   -5,
			previousClicks: 20,
			expected:       true,
		},
		{
			name:           "Queda pequena abaixo do limiar",
			clicksChange:   -2,
			previousClicks: 20,
			expected:       false,
		},
		{
			name:           "Queda em base pequena é ruído",
			clicksChange:   -4,
			previousClicks: 5,
			expected:       false,
		},
		{
			name:           "Crescimento nunca sinaliza",
			clicksChange:   10,
			previousClicks: 20,
			expected:       false,
		},
		{
			name:           "Queda exatamente no limiar não sinaliza",
			clicksChange:   -2,
			previousClicks: 10,
			expected:       false,
		},
		{
			name:           "Base mínima de dez cliques",
			clicksChange:   -3,
			previousClicks: 10,
			expected:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NeedsAttention(tt.clicksChange, tt.previousClicks))
		})
	}
}
