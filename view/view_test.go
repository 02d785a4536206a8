package view

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sliitsesc/event-navigation-dashboard/exhibition"
)

// newViewClient serves the given mux and returns a client pointed at it.
func newViewClient(t *testing.T, mux *http.ServeMux) *exhibition.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return exhibition.NewClient(exhibition.StaticToken("test-token"), exhibition.WithBaseURL(server.URL))
}

func writeEnvelope(w http.ResponseWriter, status int, envStatus string, results ...interface{}) {
	if results == nil {
		results = []interface{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  envStatus,
		"message": http.StatusText(status),
		"results": results,
	})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, exhibition.StatusFailed,
		map[string]interface{}{"message": message})
}

func zoneJSON(id int, name string, stallCount int) map[string]interface{} {
	stalls := make([]interface{}, 0, stallCount)
	for i := 0; i < stallCount; i++ {
		stalls = append(stalls, stallJSON(i+1, fmt.Sprintf("Booth %d", i+1), id))
	}
	return map[string]interface{}{
		"id":        id,
		"zoneName":  name,
		"colorCode": "#112233",
		"createdAt": "2024-01-01T00:00:00Z",
		"updatedAt": "2024-01-01T00:00:00Z",
		"stalls":    stalls,
	}
}

func stallJSON(id int, name string, zoneID int) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"name":        name,
		"organizer":   "Acme",
		"category":    "TECHNOLOGY",
		"floorNumber": 1,
		"location":    "A-1",
		"zoneId":      zoneID,
		"createdAt":   "2024-01-02T00:00:00Z",
		"updatedAt":   "2024-01-02T00:00:00Z",
	}
}
