package upload

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/React-Acme-Solutions/pictionary-clash-ai-backend/internal/shared/logger"
)

// Describer receives a stored snapshot for asynchronous description. The
// handler never waits on it.
type Describer interface {
	DescribeAsync(path, roomID string)
}

// Handler stores end-of-game canvas snapshots on disk. The payload is opaque
// binary data, written unchanged.
type Handler struct {
	dir       string
	describer Describer
}

func NewHandler(dir string, describer Describer) (*Handler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Handler{dir: dir, describer: describer}, nil
}

func RegisterRoute(engine *gin.Engine, handler *Handler) {
	engine.POST("/upload", handler.UploadHandler)
}

// UploadHandler accepts a multipart canvas snapshot under the "file" field.
// The optional "game" field carries the ended session's id so a description
// can be routed back to whoever is still subscribed to that room.
func (h *Handler) UploadHandler(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	name := fmt.Sprintf("canvas-%d-%09d.png", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
	path := filepath.Join(h.dir, name)

	if err := ctx.SaveUploadedFile(file, path); err != nil {
		logger.Criticalf("failed to store snapshot %s: %v", name, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process file"})
		return
	}

	logger.Infof("snapshot stored: %s (%d bytes)", path, file.Size)
	if h.describer != nil {
		h.describer.DescribeAsync(path, ctx.PostForm("game"))
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "file uploaded and processed successfully"})
}
