package server

import (
	"errors"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/getzep/pdffacts/pkg/analyzer"
	"github.com/getzep/pdffacts/pkg/models"
	"github.com/getzep/pdffacts/pkg/server/handlertools"
)

// uploads beyond this are spooled to temporary files
const multipartMemory = 8 << 20

// AnalyzePDFHandler godoc
//
//	@Summary		Answers pointers against an uploaded document
//	@Description	Each pointer is routed to a date, signer, currency or substring extractor.
//	@Description	Malformed pointers fall back to the default list.
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file		formData	file	true	"Document to analyze"
//	@Param			pointers	formData	string	false	"JSON array of pointers"
//	@Success		200			{object}	models.AnalyzeResponse
//	@Failure		400			{object}	models.ErrorResponse	"Bad Request"
//	@Failure		413			{object}	models.ErrorResponse	"Request Entity Too Large"
//	@Failure		422			{object}	models.ErrorResponse	"Unprocessable Entity"
//	@Failure		500			{object}	models.ErrorResponse	"Internal Server Error"
//	@Router			/analyze-pdf [post]
func AnalyzePDFHandler(appState *models.AppState) http.HandlerFunc {
	a := analyzer.New(appState)
	maxRequestSize := appState.Config.Server.MaxRequestSize
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				handlertools.HandleError(w, err)
				return
			}
			handlertools.HandleError(w, models.NewBadRequestError(err.Error()))
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Warnf("failed to remove multipart files: %s", err)
			}
		}()

		file, header, err := r.FormFile("file")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				handlertools.HandleError(w, models.NewBadRequestError("file is required"))
				return
			}
			handlertools.HandleError(w, models.NewBadRequestError(err.Error()))
			return
		}
		defer file.Close()

		pointers := analyzer.ParsePointers(r.FormValue("pointers"))

		log.WithFields(logrus.Fields{
			"filename": header.Filename,
			"size":     humanize.Bytes(uint64(header.Size)),
			"pointers": len(pointers),
		}).Debug("analyzing upload")

		response, err := a.AnalyzeDocument(r.Context(), models.Document{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		}, pointers)
		if err != nil {
			handlertools.HandleError(w, err)
			return
		}

		handlertools.JSONOK(w, response, http.StatusOK)
	}
}
