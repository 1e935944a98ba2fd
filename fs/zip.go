package fs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteZip writes a ZIP archive of the files at paths, relative to root,
// keeping the relative paths as entry names. Missing files are skipped.
func WriteZip(w io.Writer, root string, paths []string) error {
	zw := zip.NewWriter(w)
	for _, p := range paths {
		if err := addFile(zw, root, p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			_ = zw.Close()
			return err
		}
	}
	return zw.Close()
}

func addFile(zw *zip.Writer, root, rel string) error {
	f, err := os.Open(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = filepath.ToSlash(rel)
	hdr.Method = zip.Deflate

	entry, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, f)
	return err
}

// WriteZipFile writes the archive of WriteZip to path atomically: the
// archive is built in a temporary file next to path and renamed on success.
func WriteZipFile(path, root string, paths []string) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteZip(w, root, paths)
	})
}

// writeAtomic writes to path via a temporary file in the same directory.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
