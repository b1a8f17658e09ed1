package judge

import (
	"os"
	"path/filepath"

	jerrors "secjudge/errors"
)

// ScratchOutputPath derives the captured-output file path from the input
// file's basename, per spec: "<basename(stdin_path) or \"tmp\">.out" in the
// scratch directory.
func ScratchOutputPath(scratchDir, inputFilePath string) string {
	base := filepath.Base(inputFilePath)
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "tmp"
	}
	return filepath.Join(scratchDir, base+".out")
}

// EnsureScratchFile removes any pre-existing file or empty directory at
// path, then creates path as an empty regular file. A non-empty directory
// at path is left in place and its removal error propagated, matching the
// "removed, non-recursively" contract.
func EnsureScratchFile(path string) error {
	info, err := os.Lstat(path)
	if err == nil {
		if removeErr := os.Remove(path); removeErr != nil {
			return jerrors.WrapWithDetail(removeErr, jerrors.ErrJudgeIO, "ensure scratch file", "failed to remove existing "+describeEntry(info))
		}
	} else if !os.IsNotExist(err) {
		return jerrors.Wrap(err, jerrors.ErrJudgeIO, "ensure scratch file")
	}

	f, err := os.Create(path)
	if err != nil {
		return jerrors.Wrap(err, jerrors.ErrJudgeIO, "ensure scratch file")
	}
	return f.Close()
}

func describeEntry(info os.FileInfo) string {
	if info.IsDir() {
		return "directory"
	}
	return "file"
}
