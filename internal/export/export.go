// Package export renders a filtered ledger projection into portable
// artifacts: a CSV blob for saving and a printable HTML report. Both are pure
// transformations of the input sequence.
package export

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"condogate/internal/domain"
)

const timestampLayout = "02/01/2006 15:04:05"

var csvHeader = []string{"Date/Time", "Name", "Direction", "House", "Vehicle"}

// CSV renders the events with a fixed column order, every field quoted and
// embedded quotes doubled. The vehicle column is blank for on-foot accesses.
func CSV(events []domain.AccessEvent) string {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)
	for _, event := range events {
		writeCSVRow(&b, []string{
			event.Timestamp.Format(timestampLayout),
			event.PersonName,
			string(event.Direction),
			event.HouseAddress,
			event.VehiclePlate,
		})
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// CSVFilename names the artifact after the generation date.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("access_history_%s.csv", now.Format("2006-01-02"))
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>Access Report</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 20px; }
      h1 { color: #333; border-bottom: 2px solid #333; padding-bottom: 10px; }
      table { width: 100%; border-collapse: collapse; margin-top: 20px; }
      th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
      th { background-color: #f2f2f2; }
      .entry { color: #22c55e; font-weight: bold; }
      .exit { color: #ef4444; font-weight: bold; }
    </style>
  </head>
  <body>
    <h1>Access Report - {{.GeneratedAt}}</h1>
    <p>Total records: {{.Total}}</p>
    <table>
      <thead>
        <tr><th>Date/Time</th><th>Name</th><th>Direction</th><th>House</th><th>Vehicle</th></tr>
      </thead>
      <tbody>
{{- range .Rows}}
        <tr>
          <td>{{.Timestamp}}</td>
          <td>{{.Name}}</td>
          <td class="{{.DirectionClass}}">{{.Direction}}</td>
          <td>{{.House}}</td>
          <td>{{.Vehicle}}</td>
        </tr>
{{- end}}
      </tbody>
    </table>
  </body>
</html>
`))

type reportRow struct {
	Timestamp      string
	Name           string
	Direction      string
	DirectionClass string
	House          string
	Vehicle        string
}

type reportData struct {
	GeneratedAt string
	Total       int
	Rows        []reportRow
}

// Report renders the printable document: the same rows as CSV plus a header
// line with generation date and total row count.
func Report(events []domain.AccessEvent, now time.Time) (string, error) {
	data := reportData{
		GeneratedAt: now.Format("02/01/2006"),
		Total:       len(events),
		Rows:        make([]reportRow, 0, len(events)),
	}
	for _, event := range events {
		vehicle := event.VehiclePlate
		if vehicle == "" {
			vehicle = "-"
		}
		class := "entry"
		if event.Direction == domain.DirectionExit {
			class = "exit"
		}
		data.Rows = append(data.Rows, reportRow{
			Timestamp:      event.Timestamp.Format(timestampLayout),
			Name:           event.PersonName,
			Direction:      string(event.Direction),
			DirectionClass: class,
			House:          event.HouseAddress,
			Vehicle:        vehicle,
		})
	}
	var b strings.Builder
	if err := reportTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
