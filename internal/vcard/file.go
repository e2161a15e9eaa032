package vcard

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"vcard_phone_tools/platform/apperr"
)

// ProcessFile reads the vCard at in, rewrites its telephone lines, and
// writes the result to out. The output goes through a temp file in the
// destination directory and a rename, so a failed run never leaves a
// truncated output file behind.
func (rw *Rewriter) ProcessFile(in, out string) (Stats, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Stats{}, apperr.Wrap(apperr.KindNotFound, "input file not found", err).WithOp("vcard.ProcessFile")
		}
		return Stats{}, apperr.Wrap(apperr.KindIO, "read input file", err).WithOp("vcard.ProcessFile")
	}

	result, stats := rw.Rewrite(string(data))

	if err := writeAtomic(out, []byte(result)); err != nil {
		return Stats{}, apperr.Wrap(apperr.KindIO, "write output file", err).WithOp("vcard.ProcessFile")
	}

	return stats, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".vcard-phone-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
