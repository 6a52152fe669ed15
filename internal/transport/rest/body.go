package rest

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
)

var errBodyTooLarge = errors.New("request body too large")

// tagTextRequest is the JSON form of a tag text body.
type tagTextRequest struct {
	Tags string `json:"tags"`
}

// readTagText accepts either a plain text body or {"tags": "..."} when the
// request is sent as JSON.
func readTagText(w http.ResponseWriter, r *http.Request, limit int64) (string, error) {
	body := http.MaxBytesReader(w, r.Body, limit)

	if isJSON(r) {
		var req tagTextRequest
		if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return "", bodyError(err)
		}
		return req.Tags, nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", bodyError(err)
	}
	return string(raw), nil
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return errBodyTooLarge
	}
	return err
}

// writeBodyError answers a failed body read.
func writeBodyError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}
