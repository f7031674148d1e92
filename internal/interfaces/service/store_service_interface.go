// Package service
package service

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	c "github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
)

var (
	ErrFilePathFail       = ApiStatus{"FILE_PATH_FAIL", "Export archiving failed", ServerInternalError}
	ErrFileSaveFail       = ApiStatus{"FILE_SAVE_FAIL", "Export file could not be saved", ServerInternalError}
	ErrFileUploadFail     = ApiStatus{"FILE_UPLOAD_FAIL", "Export upload failed", ServerInternalError}
	ErrFileOverSize       = ApiStatus{"FILE_OVER_SIZE", "Export file is too large", BadRequest}
	ErrFileExtUnsupported = ApiStatus{"FILE_EXT_UNSUPPORTED", "Unsupported export file type", BadRequest}
	SuccessSaveFile       = ApiStatus{"SAVE_FILE", "Export file archived", Ok}
)

type FileType int

const (
	EXPORTS FileType = iota
	UNKNOWN
)

// StoreInfo describes one generated export on its way to the archive.
type StoreInfo struct {
	FileType      FileType
	FileLimit     *c.HttpServerStoreFileLimit
	RootPath      string
	FilePath      string
	RemotePath    string
	FileName      string
	FileExt       string
	FileContent   []byte
	StoreInServer bool
}

func NewStoreInfo(fileType FileType, fileLimit *c.HttpServerStoreFileLimit, content []byte, ext string) *StoreInfo {
	return &StoreInfo{
		FileType:      fileType,
		FileLimit:     fileLimit,
		RootPath:      fileLimit.RootPath,
		FilePath:      "",
		FileName:      "",
		RemotePath:    "",
		FileExt:       ext,
		FileContent:   content,
		StoreInServer: fileLimit.StoreInServer,
	}
}

// GenerateStoreInfo validates a generated export against the configured
// limits and assigns it a collision-free archive name.
func (fileType FileType) GenerateStoreInfo(fileLimit *c.HttpServerStoreFileLimit, content []byte, ext string) (*StoreInfo, *ApiStatus) {
	if !slices.Contains(fileLimit.AllowedFileExt, ext) {
		return nil, &ErrFileExtUnsupported
	}

	if int64(len(content)) > fileLimit.MaxFileSize {
		return nil, &ErrFileOverSize
	}

	storeInfo := NewStoreInfo(fileType, fileLimit, content, ext)

	storeInfo.FileName = filepath.Join(fileLimit.StorePrefix, fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	storeInfo.FilePath = filepath.Join(fileLimit.RootPath, storeInfo.FileName)
	storeInfo.RemotePath = strings.Replace(storeInfo.FileName, "\\", "/", -1)

	return storeInfo, nil
}

type StoreServiceInterface interface {
	SaveExportFile(content []byte, ext string) (*StoreInfo, *ApiStatus)
}
