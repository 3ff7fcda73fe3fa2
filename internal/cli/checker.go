package cli

import (
	"bytes"

	"github.com/cbout22/scaffold/internal/config"
	"github.com/cbout22/scaffold/internal/scaffold"
)

// CheckStatus describes the state of a single scaffolded file.
type CheckStatus int

const (
	CheckOK         CheckStatus = iota // File exists with the placeholder line
	CheckMissing                       // Nothing at the path
	CheckModified                      // File exists but its content differs
	CheckUnreadable                    // Path exists but could not be read
)

// CheckResult holds the outcome of checking one target.
type CheckResult struct {
	Path   config.TargetPath
	Status CheckStatus
	Err    error // set for CheckUnreadable
}

// CheckTargets compares every target against the filesystem.
// This is a pure function: it reads state through its arguments, not globals.
func CheckTargets(paths []config.TargetPath, fw scaffold.FileWriter) []CheckResult {
	results := make([]CheckResult, 0, len(paths))

	for _, p := range paths {
		result := CheckResult{Path: p}

		switch {
		case !fw.Exists(string(p)):
			result.Status = CheckMissing
		default:
			data, err := fw.ReadFile(string(p))
			switch {
			case err != nil:
				result.Status = CheckUnreadable
				result.Err = err
			case !bytes.Equal(data, p.PlaceholderContent()):
				result.Status = CheckModified
			default:
				result.Status = CheckOK
			}
		}

		results = append(results, result)
	}

	return results
}
