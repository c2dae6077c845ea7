package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"condogate/internal/domain"
)

func sampleEvents() []domain.AccessEvent {
	return []domain.AccessEvent{
		{
			ID: "event-1", PersonName: "Carlos Silva", Direction: domain.DirectionEntry,
			Timestamp:    time.Date(2026, 3, 10, 8, 30, 15, 0, time.Local),
			HouseAddress: "Rua das Flores, 10", VehiclePlate: "ABC-1234",
		},
		{
			ID: "event-2", PersonName: `Maria "Mari" Souza`, Direction: domain.DirectionExit,
			Timestamp:    time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
			HouseAddress: "Avenida Principal, 25",
		},
	}
}

func TestCSV(t *testing.T) {
	out := CSV(sampleEvents())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "header plus one line per event")

	t.Run("header names the fixed column order", func(t *testing.T) {
		assert.Equal(t, `"Date/Time","Name","Direction","House","Vehicle"`, lines[0])
	})

	t.Run("every field is quoted", func(t *testing.T) {
		assert.Equal(t, `"10/03/2026 08:30:15","Carlos Silva","Entry","Rua das Flores, 10","ABC-1234"`, lines[1])
	})

	t.Run("embedded quotes are doubled", func(t *testing.T) {
		assert.Contains(t, lines[2], `"Maria ""Mari"" Souza"`)
	})

	t.Run("on-foot events leave the vehicle column blank", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(lines[2], `,""`))
	})

	t.Run("empty projection yields only the header", func(t *testing.T) {
		assert.Equal(t, lines[0]+"\n", CSV(nil))
	})

	t.Run("row count follows the input", func(t *testing.T) {
		var exits []domain.AccessEvent
		for _, event := range sampleEvents() {
			if event.Direction == domain.DirectionExit {
				exits = append(exits, event)
			}
		}
		exitLines := strings.Split(strings.TrimRight(CSV(exits), "\n"), "\n")
		assert.Len(t, exitLines, 1+len(exits))
	})
}

func TestCSVFilename(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "access_history_2026-03-10.csv", CSVFilename(now))
}

func TestReport(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	page, err := Report(sampleEvents(), now)
	require.NoError(t, err)

	t.Run("header carries generation date and total", func(t *testing.T) {
		assert.Contains(t, page, "Access Report - 10/03/2026")
		assert.Contains(t, page, "Total records: 2")
	})

	t.Run("directions are styled per kind", func(t *testing.T) {
		assert.Contains(t, page, `class="entry">Entry<`)
		assert.Contains(t, page, `class="exit">Exit<`)
	})

	t.Run("names are HTML-escaped", func(t *testing.T) {
		assert.Contains(t, page, "Maria &#34;Mari&#34; Souza")
	})

	t.Run("on-foot events render a dash", func(t *testing.T) {
		assert.Contains(t, page, "<td>-</td>")
	})

	t.Run("empty projection still renders", func(t *testing.T) {
		empty, err := Report(nil, now)
		require.NoError(t, err)
		assert.Contains(t, empty, "Total records: 0")
	})
}
