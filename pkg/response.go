package pkg

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// ContentType holds the content type values used across handlers.
var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain",
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Add("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteJSONResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.JSON, []byte(message), http.StatusOK)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}
