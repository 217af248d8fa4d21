package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bmaBack/internal/models"
	"bmaBack/internal/services"
)

type DocumentHandler struct {
	Documents *services.DocumentService
	PDFs      *services.PDFService
}

// GetDocument assembles the document model for a job card and returns it as
// JSON. The ?document query selects the kind; it defaults to a quotation.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	jobID, kind, ok := h.documentParams(w, r)
	if !ok {
		return
	}

	doc, err := h.Documents.BuildDocument(r.Context(), jobID, kind)
	if err != nil {
		h.documentError(w, err)
		return
	}
	json.NewEncoder(w).Encode(doc)
}

// GeneratePDF assembles, renders and converts the document, returning the
// PDF as an attachment.
func (h *DocumentHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	jobID, kind, ok := h.documentParams(w, r)
	if !ok {
		return
	}

	doc, pdf, err := h.PDFs.GeneratePDF(r.Context(), jobID, kind)
	if err != nil {
		h.documentError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Write(pdf)
}

func (h *DocumentHandler) documentParams(w http.ResponseWriter, r *http.Request) (int, models.DocumentKind, bool) {
	jobID, err := strconv.Atoi(r.URL.Query().Get(":jobcardid"))
	if err != nil {
		http.Error(w, "Invalid JobCard ID format.", http.StatusBadRequest)
		return 0, "", false
	}

	label := r.URL.Query().Get("document")
	if label == "" {
		return jobID, models.KindQuotation, true
	}
	kind, ok := models.ParseDocumentKind(label)
	if !ok {
		http.Error(w, "Unsupported document type: "+label, http.StatusBadRequest)
		return 0, "", false
	}
	return jobID, kind, true
}

func (h *DocumentHandler) documentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrJobCardNotFound):
		http.Error(w, "JobCard not found", http.StatusNotFound)
	case errors.Is(err, models.ErrEmptyDocument), errors.Is(err, models.ErrNoRecord):
		http.Error(w, "No records found for this JobCard", http.StatusNotFound)
	case errors.Is(err, models.ErrUnsupportedDocumentKind):
		http.Error(w, "Unsupported document type", http.StatusBadRequest)
	default:
		http.Error(w, "Failed to generate document", http.StatusInternalServerError)
	}
}
