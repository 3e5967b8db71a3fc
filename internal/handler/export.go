// Package handler — export.go implements GET /trips/{id}/export.
// Returns the trip's derived itinerary timeline as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tientran/tripsync/backend/internal/auth"
	"github.com/tientran/tripsync/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_title", "time", "kind", "title", "region", "detail", "cost",
}

// GetTripExport handles GET /trips/{id}/export.
// It returns the trip's date-ordered timeline: region arrivals/departures,
// planned POI visits, check-ins/outs, transport legs, and daily activities.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetTripExport(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathTripID(w, r)
	if !ok {
		return
	}

	entries, err := s.export.Timeline(r.Context(), auth.UserID(r.Context()), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, entries)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// writeCSV encodes timeline entries as CSV with a header row.
func writeCSV(w http.ResponseWriter, entries []domain.TimelineEntry) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, e := range entries {
		//nolint:errcheck
		cw.Write(entryToCSVRecord(e))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// entryToCSVRecord encodes a timeline entry as a flat string slice.
func entryToCSVRecord(e domain.TimelineEntry) []string {
	return []string{
		e.TripID,
		e.TripTitle,
		e.Time.UTC().Format(time.RFC3339),
		string(e.Kind),
		e.Title,
		e.Region,
		e.Detail,
		e.Cost,
	}
}
