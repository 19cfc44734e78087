package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyeh/revguard/internal/dataset"
	"github.com/gyeh/revguard/internal/ingest"
)

func (s *Server) handleUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	var files []ingest.File
	for _, fh := range form.File["files"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		files = append(files, ingest.File{Name: fh.Filename, Data: data})
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "no files uploaded"})
		return
	}

	res, err := ingest.Run(s.log, s.store, files, s.force)
	if err != nil {
		var missing *ingest.MissingFilesError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":      "error",
				"message":     missing.Error(),
				"files_found": missing.Found,
			})
			return
		}
		s.log.Error().Err(err).Msg("upload failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if res.AlreadyLoaded {
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Upload matches current dataset, nothing to do",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"message":     "Data uploaded and loaded successfully",
		"files_found": res.FilesFound,
	})
}

func (s *Server) handleListFiles(c *gin.Context) {
	files := s.store.Current().Files()
	if files == nil {
		files = []dataset.FileInfo{}
	}
	c.JSON(http.StatusOK, gin.H{"files": files})
}

func (s *Server) handleFileData(c *gin.Context) {
	name := c.Param("filename")
	rows, total, ok := s.store.Current().Table(name)
	if !ok {
		notFound(c, "File '"+name+"' not found or empty")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"filename": name,
		"columns":  dataset.Schemas[name],
		"rows":     rows,
		"total":    total,
	})
}
