package convert

import (
	"io/fs"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Failure records a single file the batch could not convert.
type Failure struct {
	Path string
	Err  error
}

// Result summarizes one batch run.
type Result struct {
	Converted int
	Failures  []Failure
}

// Failed reports whether any file in the batch failed.
func (r Result) Failed() bool { return len(r.Failures) > 0 }

// ConvertTree walks root and converts every file matching the direction's
// source extensions. The walk is lexical, so repeated runs process files in
// the same order. Output defaults to a sibling file with the extension
// swapped; when output is non-empty the source tree is mirrored below it.
// A single file's failure is logged and skipped, it never aborts the batch.
func ConvertTree(root, output string, d Direction) (Result, error) {
	var res Result

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !d.Matches(path) {
			return nil
		}

		dest := d.OutputPath(path)
		if output != "" {
			rel, err := filepath.Rel(root, dest)
			if err != nil {
				return err
			}
			dest = filepath.Join(output, rel)
		}

		if err := Convert(path, dest); err != nil {
			log.WithField("file", path).WithError(err).Error("Conversion failed, skipping file.")
			res.Failures = append(res.Failures, Failure{Path: path, Err: err})
			return nil
		}

		res.Converted++
		return nil
	})
	if err != nil {
		return res, err
	}

	if res.Converted == 0 && len(res.Failures) == 0 {
		log.WithField("root", root).Warn("No files matched the requested conversion.")
	}
	return res, nil
}
