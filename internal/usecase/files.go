package usecase

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/model"
)

type storedFile struct {
	meta model.FileMeta
	path string
	data []byte
}

// storeFileLocked returns the metadata of an input file, registering
// uploads under a new file id. Known file ids resolve to the stored file;
// unknown ids and URLs are accepted as they are.
func (h *MessageHandler) storeFileLocked(kind model.Kind, in model.InputFile) model.FileMeta {
	if !in.IsUpload() {
		if f, ok := h.files[in.FileID]; ok {
			return f.meta
		}
		meta := model.FileMeta{FileID: in.FileID, FileUniqueID: uniqueID(in.FileID)}
		h.files[in.FileID] = storedFile{meta: meta}
		return meta
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	meta := model.FileMeta{
		FileID:       id,
		FileUniqueID: uniqueID(id),
		FileSize:     int64(len(in.Data)),
	}
	p := fmt.Sprintf("%ss/file_%d%s", kind, len(h.filePaths), path.Ext(in.FileName))
	h.files[id] = storedFile{meta: meta, path: p, data: in.Data}
	h.filePaths[p] = id
	return meta
}

func uniqueID(fileID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fileID)).String()[:16]
}

// GetFile serves getFile. Only uploaded files have a download path.
func (h *MessageHandler) GetFile(req model.GetFileRequest) (model.File, error) {
	h.mu.Lock()
	f, ok := h.files[req.FileID]
	h.mu.Unlock()

	if !ok {
		h.logger.Sugar().Infow("getFile", "file_id", req.FileID, "error", descInvalidFileID)
		return model.File{}, badRequest(descInvalidFileID)
	}
	return model.File{FileMeta: f.meta, FilePath: f.path}, nil
}

// FileData returns the bytes uploaded under a download path.
func (h *MessageHandler) FileData(filePath string) ([]byte, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id, ok := h.filePaths[filePath]
	if !ok {
		return nil, false
	}
	return h.files[id].data, true
}
