package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ninetd/ninetd/internal/models"
)

var csvColumns = []string{"id", "type", "title", "message", "color", "createdAt", "pinned"}

// ExportJSON renders the entries as a pretty-printed JSON array.
func ExportJSON(logs []models.LogEntry) ([]byte, error) {
	if logs == nil {
		logs = []models.LogEntry{}
	}
	return json.MarshalIndent(logs, "", "  ")
}

// ExportCSV renders the entries with a fixed column order. Every field
// is quoted and internal quotes are doubled; encoding/csv is not used
// because it quotes only when necessary and the export format quotes
// unconditionally.
func ExportCSV(logs []models.LogEntry) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvColumns, ","))
	for _, e := range logs {
		fields := []string{
			e.ID,
			string(e.Type),
			e.Title,
			e.Message,
			e.Color,
			e.CreatedAt.Format(time.RFC3339),
			boolString(e.Pinned),
		}
		b.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
