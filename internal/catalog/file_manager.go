package catalog

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"fcd/internal/catalog/interfaces"
	"fcd/internal/structures"
)

// FileManager is the key-value persistence port: one compressed JSON file
// per blob key under the configured directory. Every save overwrites the
// blob in full via a tmp file and an atomic rename.
type FileManager struct {
	dir        string
	compressor interfaces.CompressorInterface
}

func NewFileManager(conf *structures.Config, compressor interfaces.CompressorInterface) *FileManager {
	return &FileManager{
		dir:        conf.Persistence.Dir,
		compressor: compressor,
	}
}

func (f *FileManager) blobPath(key string) string {
	return filepath.Join(f.dir, key+".dat")
}

// SaveBlob serializes v and overwrites the blob stored under key.
func (f *FileManager) SaveBlob(key string, v any) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0o750); err != nil {
		return err
	}

	fileName := f.blobPath(key)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadBlob reads the blob stored under key into out. A missing blob is not
// an error: it returns (false, nil) and out is left untouched, so each blob
// remains an independent failure domain.
func (f *FileManager) LoadBlob(key string, out any) (bool, error) {
	data, err := os.ReadFile(f.blobPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(decompressed, out); err != nil {
		return false, err
	}
	return true, nil
}

// RawBlob returns the compressed on-disk bytes for key, for backup copies.
func (f *FileManager) RawBlob(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.blobPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileManager) Close() {
	f.compressor.Close()
}
