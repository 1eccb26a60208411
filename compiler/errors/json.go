package errors

import (
	"encoding/json"
)

// JSONOutput is the JSON structure for diagnostic output.
type JSONOutput struct {
	Status   string       `json:"status"`
	Errors   []Diagnostic `json:"errors"`
	Warnings []Diagnostic `json:"warnings"`
	Summary  Summary      `json:"summary"`
}

// Summary contains error and warning counts.
type Summary struct {
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
	TotalCount   int `json:"total_count"`
}

func buildOutput(diags []Diagnostic) JSONOutput {
	errorList := []Diagnostic{}
	warningList := []Diagnostic{}

	for _, d := range diags {
		if d.IsError() {
			errorList = append(errorList, d)
		} else {
			warningList = append(warningList, d)
		}
	}

	status := "success"
	if len(errorList) > 0 {
		status = "error"
	} else if len(warningList) > 0 {
		status = "warning"
	}

	return JSONOutput{
		Status:   status,
		Errors:   errorList,
		Warnings: warningList,
		Summary: Summary{
			ErrorCount:   len(errorList),
			WarningCount: len(warningList),
			TotalCount:   len(diags),
		},
	}
}

// FormatAsJSON formats diagnostics as indented JSON.
func FormatAsJSON(diags []Diagnostic) (string, error) {
	data, err := json.MarshalIndent(buildOutput(diags), "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatAsJSONCompact formats diagnostics as compact JSON.
func FormatAsJSONCompact(diags []Diagnostic) (string, error) {
	data, err := json.Marshal(buildOutput(diags))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
