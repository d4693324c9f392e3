package diagnostics

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

const (
	CodeOK         = "STRIP.OK"
	CodeSend       = "STRIP.SEND"
	CodeBadControl = "CONTROL.BAD"
	CodeConfig     = "CONFIG.SAVE"
)

type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	LikelyCauses   []string       `json:"likely_causes,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
}

func OK(summary string, evidence map[string]any) Diagnostic {
	return Diagnostic{Severity: Info, Code: CodeOK, Summary: summary, Evidence: evidence}
}

// SendFailed describes a frame the transmitter could not push out.
func SendFailed(pin string, err error) Diagnostic {
	return Diagnostic{
		Severity: Err,
		Code:     CodeSend,
		Summary:  "Frame was not sent",
		Detail:   err.Error(),
		LikelyCauses: []string{
			"strip data line not wired to " + pin,
			"missing permission on the gpio or spi device",
		},
		SuggestedFixes: []string{
			"check the pin setting in config.yaml",
			"run with -sim-only to confirm colors without hardware",
		},
		Evidence: map[string]any{"pin": pin},
	}
}

func BadControl(detail string) Diagnostic {
	return Diagnostic{Severity: Warn, Code: CodeBadControl, Summary: "Control message ignored", Detail: detail}
}
