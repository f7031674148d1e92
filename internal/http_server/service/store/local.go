// Package store archives generated report exports locally or in a cloud
// object store fronted by the local implementation.
package store

import (
	"os"

	"github.com/aeroclub-dev/clubhouse/internal/interfaces/config"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/global"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/log"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
)

type LocalStoreService struct {
	logger log.LoggerInterface
	config *config.HttpServerStore
}

func NewLocalStoreService(logger log.LoggerInterface, config *config.HttpServerStore) *LocalStoreService {
	return &LocalStoreService{
		logger: logger,
		config: config,
	}
}

func (store *LocalStoreService) SaveExportFile(content []byte, ext string) (*StoreInfo, *ApiStatus) {
	storeInfo, res := EXPORTS.GenerateStoreInfo(store.config.FileLimit.ExportLimit, content, ext)
	if res != nil {
		return nil, res
	}
	if !storeInfo.StoreInServer {
		return storeInfo, nil
	}
	if err := os.WriteFile(storeInfo.FilePath, content, global.DefaultFilePermissions); err != nil {
		store.logger.ErrorF("LocalStoreService.SaveExportFile write file error: %v", err)
		return nil, &ErrFileSaveFail
	}
	return storeInfo, nil
}
