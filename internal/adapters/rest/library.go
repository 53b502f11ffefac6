package rest

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
)

// headerAliases maps the column spellings different library exports use onto
// canonical field names.
var headerAliases = map[string]string{
	"title":       "title",
	"track":       "title",
	"track_title": "title",
	"name":        "title",

	"artist":      "artist",
	"artist_name": "artist",
	"performer":   "artist",

	"album":       "album",
	"album_title": "album",

	"genre":       "super_genre",
	"super_genre": "super_genre",
	"supergenre":  "super_genre",

	"id":       "id",
	"track_id": "id",
}

type importResponse struct {
	Imported int `json:"imported"`
}

// ImportLibrary handles POST /library/import: a multipart CSV upload that
// replaces the stored library.
func (h *Handler) ImportLibrary(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	records, err := parseLibraryCSV(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "CSV parse failed: "+err.Error())
		return
	}

	count, err := h.svc.ImportLibrary(r.Context(), records)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Imported: count})
}

// parseLibraryCSV reads a library export. Unrecognized columns are ignored;
// rows with neither title nor artist are skipped.
func parseLibraryCSV(src io.Reader) ([]domain.TrackRecord, error) {
	reader := csv.NewReader(src)

	rawHeaders, err := reader.Read()
	if err != nil {
		return nil, err
	}

	columns := make(map[int]string)
	for i, header := range rawHeaders {
		if canonical, ok := headerAliases[strings.ToLower(strings.TrimSpace(header))]; ok {
			columns[i] = canonical
		}
	}
	if len(columns) == 0 {
		return nil, errors.New("CSV has no recognizable columns")
	}

	var records []domain.TrackRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var rec domain.TrackRecord
		for i, value := range row {
			field, ok := columns[i]
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}

			switch field {
			case "id":
				rec.ID = value
			case "title":
				rec.Title = value
			case "artist":
				rec.Artist = value
			case "album":
				rec.Album = value
			case "super_genre":
				rec.SuperGenre = value
			}
		}

		if rec.Title == "" && rec.Artist == "" {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
