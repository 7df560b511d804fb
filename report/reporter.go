package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"butter/colors"
	"butter/internal/source"
	"butter/internal/utils"
)

type PROBLEM_TYPE string

type COMPILATION_PHASE string

const (
	READING_PHASE    COMPILATION_PHASE = "reading"
	LEXING_PHASE     COMPILATION_PHASE = "lexing"
	PARSING_PHASE    COMPILATION_PHASE = "parsing"
	LINT_PHASE       COMPILATION_PHASE = "linting"
	GENERATION_PHASE COMPILATION_PHASE = "generating"
	NATIVE_PHASE     COMPILATION_PHASE = "native compilation"
)

const (
	NULL           PROBLEM_TYPE = ""
	CRITICAL_ERROR PROBLEM_TYPE = "critical error" // Stops compilation immediately
	SYNTAX_ERROR   PROBLEM_TYPE = "syntax error"   // Syntax error, also stops compilation
	NORMAL_ERROR   PROBLEM_TYPE = "error"          // Regular error that doesn't halt compilation

	WARNING PROBLEM_TYPE = "warning" // Indicates potential issues
	INFO    PROBLEM_TYPE = "info"    // Informational message
)

var colorMap = map[PROBLEM_TYPE]colors.COLOR{
	CRITICAL_ERROR: colors.BRIGHT_RED,
	SYNTAX_ERROR:   colors.RED,
	NORMAL_ERROR:   colors.RED,
	WARNING:        colors.YELLOW,
	INFO:           colors.BLUE,
}

type Reports []*Report

func (r Reports) Len() int {
	return len(r)
}

func (r *Reports) HasErrors() bool {
	for _, report := range *r {
		if report.IsError() {
			return true
		}
	}
	return false
}

func (r *Reports) HasWarnings() bool {
	for _, report := range *r {
		if report.Level == WARNING {
			return true
		}
	}
	return false
}

func (r *Reports) ShouldStopCompilation() bool {
	for _, report := range *r {
		if report.ShouldStop {
			return true
		}
	}
	return false
}

// Filter returns the reports at the given level, in the order they were added.
func (r Reports) Filter(level PROBLEM_TYPE) Reports {
	var out Reports
	for _, report := range r {
		if report.Level == level {
			out = append(out, report)
		}
	}
	return out
}

func (r *Reports) DisplayAll() {
	if len(*r) > 0 {
		colors.Plain("\n")
	}

	ln := len(*r) - 1
	for i, report := range *r {
		printReport(report)
		if i < ln {
			colors.Plain("\n\n")
		}
	}

	(*r).ShowStatus()
}

// Report represents a diagnostic report.
type Report struct {
	FilePath   string
	Location   source.Location
	Message    string
	Hint       string
	Label      string
	Level      PROBLEM_TYPE
	Phase      COMPILATION_PHASE
	ShouldStop bool // Flag to indicate if compilation should stop gracefully
}

func (r *Report) IsError() bool {
	return r.Level == NORMAL_ERROR || r.Level == CRITICAL_ERROR || r.Level == SYNTAX_ERROR
}

func (r *Report) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", r.FilePath, r.Location.Start.Line, r.Location.Start.Column, r.Level, r.Message)
}

func headline(r *Report) string {
	switch r.Level {
	case WARNING:
		return fmt.Sprintf("[Warning while %s 🚨]: ", r.Phase)
	case INFO:
		return fmt.Sprintf("[Info while %s 😓]: ", r.Phase)
	case CRITICAL_ERROR:
		return fmt.Sprintf("[Critical Error while %s 💀]: ", r.Phase)
	case SYNTAX_ERROR:
		return fmt.Sprintf("[Syntax Error while %s 😑]: ", r.Phase)
	default:
		return fmt.Sprintf("[Error while %s 😨]: ", r.Phase)
	}
}

// printReport prints a formatted diagnostic report.
// It shows file location, a code snippet, underline highlighting and any hints.
// Reports whose source can't be read are printed without a snippet.
func printReport(r *Report) {
	reportColor := colorMap[r.Level]

	reportColor.Print(headline(r))
	reportColor.Println(r.Message)

	lines, ok := sourceLines(r)
	if !ok {
		if r.FilePath != "" {
			colors.GREY.Printf("--> [%s]\n", r.FilePath)
		}
		if r.Hint != "" {
			colors.YELLOW.Printf("Help: %s\n", r.Hint)
		}
		return
	}

	currentLine := lines[r.Location.Start.Line-1]

	lineNumWidth := len(fmt.Sprint(r.Location.Start.Line))

	// Calculate underline length
	hLen := 0
	if r.Location.Start.Line == r.Location.End.Line {
		hLen = (r.Location.End.Column - r.Location.Start.Column) - 1
	} else {
		//full line
		hLen = len(currentLine) - 2
	}
	if hLen < 0 {
		hLen = 0
	}

	lineNumberStr := fmt.Sprintf("%*d | ", lineNumWidth, r.Location.Start.Line)
	barStr := fmt.Sprintf("%s |", strings.Repeat(" ", lineNumWidth))

	// columns are 1-based, the underline starts under the first character
	padding := strings.Repeat(" ", lineNumWidth+3+r.Location.Start.Column-1)

	snippet := colors.GREY.Sprintln(barStr)
	addPrevLines(r, &snippet, lines, lineNumWidth)
	snippet += colors.WHITE.Sprint(lineNumberStr) + currentLine + "\n"

	colors.GREY.Printf("%s> [%s:%d:%d]\n", strings.Repeat("-", lineNumWidth+2), r.FilePath, r.Location.Start.Line, r.Location.Start.Column)

	colors.Plain(snippet)
	underline := fmt.Sprintf("%s^%s", padding, strings.Repeat("~", hLen))

	if r.Label != "" {
		reportColor.Print(underline)
		colors.RED.Printf(" %s\n", r.Label)
	} else {
		reportColor.Println(underline)
	}

	if r.Hint != "" {
		colors.YELLOW.Printf("Help: %s\n", r.Hint)
	}
}

func sourceLines(r *Report) ([]string, bool) {
	if r.FilePath == "" || !r.Location.Start.IsValid() {
		return nil, false
	}
	fileData, err := os.ReadFile(filepath.FromSlash(r.FilePath))
	if err != nil {
		return nil, false
	}
	lines := strings.Split(string(fileData), "\n")
	if r.Location.Start.Line > len(lines) {
		return nil, false
	}
	return lines, true
}

func addPrevLines(r *Report, snippet *string, lines []string, lineNumWidth int) {
	col := colors.GREY

	// PrevLine1
	// PrevLine2
	// MainLine

	prevLines := []string{}
	// if pl1 is empty, do nothing
	if r.Location.Start.Line-2 >= 0 && strings.TrimSpace(lines[r.Location.Start.Line-2]) != "" {
		prevLines = append(prevLines, lines[r.Location.Start.Line-2])
	}
	// if has pl1, add pl2. else skip pl2 if empty
	if len(prevLines) == 1 && r.Location.Start.Line-3 >= 0 && strings.TrimSpace(lines[r.Location.Start.Line-3]) != "" {
		prevLines = append([]string{lines[r.Location.Start.Line-3]}, prevLines...)
	}

	for i, pl := range prevLines {
		*snippet += col.Sprint(fmt.Sprintf("%*d | ", lineNumWidth, r.Location.Start.Line-len(prevLines)+i)) + pl + "\n"
	}
}

// AddLabel sets the text printed next to the underline.
// It ignores empty labels.
func (r *Report) AddLabel(msg string) *Report {
	if msg == "" {
		return r
	}
	r.Label = msg
	return r
}

// AddHint sets the help line printed under the snippet.
// It ignores empty hint messages.
func (r *Report) AddHint(msg string) *Report {
	if msg == "" {
		return r
	}
	r.Hint = msg
	return r
}

// createNew creates and registers a new diagnostic report with basic position validation.
func (r *Reports) createNew(filePath string, location source.Location, msg string, phase COMPILATION_PHASE) *Report {
	report := &Report{
		FilePath: filePath,
		Location: location,
		Message:  msg,
		Level:    NULL,
		Phase:    phase,
	}

	if len(*r) == 0 {
		*r = make([]*Report, 0, 10) // Initialize with a capacity of 10
	}

	*r = append(*r, report)

	return report
}

func (r *Report) setLevel(level PROBLEM_TYPE) {
	if level == NULL {
		panic("invalid Error level")
	}
	r.Level = level
	if level == CRITICAL_ERROR || level == SYNTAX_ERROR {
		r.ShouldStop = true // Set flag instead of panicking
	}
}

// AddError creates and registers a new error report
func (r *Reports) AddError(filePath string, location source.Location, msg string, phase COMPILATION_PHASE) *Report {
	report := r.createNew(filePath, location, msg, phase)
	report.setLevel(NORMAL_ERROR)
	return report
}

// AddSyntaxError creates and registers a new syntax error report
func (r *Reports) AddSyntaxError(filePath string, location source.Location, msg string, phase COMPILATION_PHASE) *Report {
	report := r.createNew(filePath, location, msg, phase)
	report.setLevel(SYNTAX_ERROR)
	return report
}

// AddCriticalError creates and registers a new critical error report
func (r *Reports) AddCriticalError(filePath string, location source.Location, msg string, phase COMPILATION_PHASE) *Report {
	report := r.createNew(filePath, location, msg, phase)
	report.setLevel(CRITICAL_ERROR)
	return report
}

// AddWarning creates and registers a new warning report
func (r *Reports) AddWarning(filePath string, location source.Location, msg string, phase COMPILATION_PHASE) *Report {
	report := r.createNew(filePath, location, msg, phase)
	report.setLevel(WARNING)
	return report
}

// AddInfo creates and registers a new info report
func (r *Reports) AddInfo(filePath string, location source.Location, msg string, phase COMPILATION_PHASE) *Report {
	report := r.createNew(filePath, location, msg, phase)
	report.setLevel(INFO)
	return report
}

// Counts returns the number of warnings and the number of errors.
func (r Reports) Counts() (warnings, errors int) {
	for _, report := range r {
		switch {
		case report.Level == WARNING:
			warnings++
		case report.IsError():
			errors++
		}
	}
	return warnings, errors
}

// StatusLine builds the pass/fail summary printed after the reports.
func (r Reports) StatusLine() string {
	warningCount, probCount := r.Counts()

	status := "------------- Passed "
	if probCount > 0 {
		status = "------------- failed "
	}

	// Example combinations:
	// -- Passed -- // No error or warning
	// -- Passed with N warnings -- // No error, just N warnings
	// -- Failed with N errors -- // No warning, just N errors
	// -- Failed with N warnings and M errors -- // N warnings, M errors
	if warningCount > 0 && probCount == 0 {
		status += fmt.Sprintf("with %d %s ", warningCount, utils.Plural(warningCount, "warning", "warnings"))
	} else if probCount > 0 && warningCount == 0 {
		status += fmt.Sprintf("with %d %s ", probCount, utils.Plural(probCount, "error", "errors"))
	} else if probCount > 0 && warningCount > 0 {
		status += fmt.Sprintf("with %d %s and %d %s ", warningCount, utils.Plural(warningCount, "warning", "warnings"), probCount, utils.Plural(probCount, "error", "errors"))
	}

	return status + "-------------"
}

// ShowStatus displays a summary of compilation status along with counts of warnings and errors.
func (r Reports) ShowStatus() {
	_, probCount := r.Counts()
	messageColor := utils.Ternary(probCount > 0, colors.RED, colors.GREEN)
	messageColor.Println(r.StatusLine())
}
