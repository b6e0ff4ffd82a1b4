// Package cli implements the dbfcp commands on top of the godbfcp library.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Ulysses-Xu/go-dbfcp"
	"github.com/Ulysses-Xu/go-dbfcp/internal/cli/config"
	"github.com/Ulysses-Xu/go-dbfcp/internal/cli/output"
)

// DefaultCodePage selects the code page stored in each file.
const DefaultCodePage = "DEFAULT"

// Runner executes dbfcp commands. Files are processed one at a time; a
// failing file does not stop the following ones unless Opts.Strict is set.
type Runner struct {
	Opts config.Options
	In   io.Reader
	Out  io.Writer
	Log  *slog.Logger
}

// failures tracks per-file errors and the exit code they lead to.
type failures struct {
	count int
	code  int
}

func (f *failures) add(code int) {
	f.count++
	f.code = max(f.code, code)
}

func (f *failures) err(total int) error {
	if f.count == 0 {
		return nil
	}
	return exitError(f.code, "%d of %d file(s) failed", f.count, total)
}

func exitCodeFor(err error) int {
	if godbfcp.IsNotDBF(err) {
		return ExitInvalidInput
	}
	return ExitFileFailed
}

// setter always reports the cause of a failure so that it can be mapped to
// an exit code; Opts.Strict only decides whether the run stops there.
func (r *Runner) setter(cp godbfcp.CodePage) *godbfcp.Setter {
	return godbfcp.NewSetter(cp,
		godbfcp.WithStrict(true),
		godbfcp.WithEnabledFileTypes(r.Opts.EnabledTypes...))
}

// fileFailed records the failure of one file. It returns the error to stop with when
// Opts.Strict is set, or nil to continue with the next file.
func (r *Runner) fileFailed(tbl *output.Table, failed *failures, err error) error {
	code := exitCodeFor(err)
	failed.add(code)
	if !r.Opts.Strict {
		return nil
	}
	_ = r.render(tbl)
	return &ExitError{Code: code, Err: err}
}

func (r *Runner) render(tbl *output.Table) error {
	return tbl.Render(r.Out, r.Opts.Format)
}

func markString(cp godbfcp.CodePage) string {
	return fmt.Sprintf("0x%02X", byte(cp))
}

func codePageName(cp godbfcp.CodePage) string {
	if cp == godbfcp.InvalidCodePage {
		return "invalid"
	}
	return cp.String()
}

func encodingString(cp godbfcp.CodePage) string {
	if !cp.IsValid() {
		return ""
	}
	return strconv.Itoa(godbfcp.ResolveEncodingID(cp))
}

// Get prints the validated header fields of each target.
func (r *Runner) Get(ctx context.Context, targets []string) error {
	files, err := ExpandTargets(targets)
	if err != nil {
		return err
	}

	tbl := output.NewTable(
		[]string{"File", "Type", "Last Update", "Mark", "Code Page", "Encoding", "Error"},
		[]string{"file", "type", "last_update", "mark", "code_page", "encoding", "error"})
	var failed failures
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		h, err := godbfcp.ReadHeader(file, r.Opts.EnabledTypes...)
		if err != nil {
			r.Log.Warn("cannot read dbf header", "file", file, "error", err)
			tbl.AddRow(file, "", "", "", "", "", err.Error())
			if err := r.fileFailed(tbl, &failed, err); err != nil {
				return err
			}
			continue
		}
		r.Log.Debug("read dbf header", "file", file, "type", h.FileType, "code_page", h.CodePage)
		tbl.AddRow(file, h.FileType.String(), h.LastUpdateDate(),
			markString(h.CodePage), h.CodePage.String(), encodingString(h.CodePage), "")
	}
	if err := r.render(tbl); err != nil {
		return err
	}
	return failed.err(len(files))
}

// Set writes the code page mark named by codepage to each target.
func (r *Runner) Set(ctx context.Context, codepage string, targets []string) error {
	cp, err := godbfcp.ParseCodePage(codepage)
	if err != nil {
		return &ExitError{Code: ExitInvalidInput, Err: err}
	}
	files, err := ExpandTargets(targets)
	if err != nil {
		return err
	}

	setter := r.setter(cp)
	tbl := output.NewTable(
		[]string{"File", "Before", "After", "Status", "Error"},
		[]string{"file", "before", "after", "status", "error"})
	var failed failures
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		before, err := setter.GetCodepageByte(file)
		if err == nil {
			_, err = setter.SetCodepageByte(file)
		}
		if err != nil {
			r.Log.Warn("cannot set code page", "file", file, "code_page", cp, "error", err)
			tbl.AddRow(file, codePageName(before), "", "failed", err.Error())
			if err := r.fileFailed(tbl, &failed, err); err != nil {
				return err
			}
			continue
		}

		status := "changed"
		if before == cp {
			status = "unchanged"
		}
		r.Log.Debug("set code page", "file", file, "before", before, "after", cp, "status", status)
		tbl.AddRow(file, before.String(), cp.String(), status, "")
	}
	if err := r.render(tbl); err != nil {
		return err
	}
	return failed.err(len(files))
}

// Check reports whether each target already carries the code page mark
// named by codepage.
func (r *Runner) Check(ctx context.Context, codepage string, targets []string) error {
	cp, err := godbfcp.ParseCodePage(codepage)
	if err != nil {
		return &ExitError{Code: ExitInvalidInput, Err: err}
	}
	files, err := ExpandTargets(targets)
	if err != nil {
		return err
	}

	setter := r.setter(cp)
	tbl := output.NewTable(
		[]string{"File", "Expected", "Actual", "Correct", "Error"},
		[]string{"file", "expected", "actual", "correct", "error"})
	var failed failures
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		actual, err := setter.GetCodepageByte(file)
		if err != nil {
			r.Log.Warn("cannot check code page", "file", file, "error", err)
			tbl.AddRow(file, cp.String(), codePageName(actual), "", err.Error())
			if err := r.fileFailed(tbl, &failed, err); err != nil {
				return err
			}
			continue
		}
		correct := actual == cp
		if !correct {
			failed.add(ExitFileFailed)
		}
		r.Log.Debug("checked code page", "file", file, "expected", cp, "actual", actual)
		tbl.AddRow(file, cp.String(), actual.String(), strconv.FormatBool(correct), "")
	}
	if err := r.render(tbl); err != nil {
		return err
	}
	return failed.err(len(files))
}

// Resolve validates every target first and then prints the encoding a
// converter should use for each. codepage is a catalog name, a code page
// number or DEFAULT to use the mark stored in the file.
func (r *Runner) Resolve(ctx context.Context, codepage string, targets []string) error {
	fromFile := codepage == "" || strings.EqualFold(codepage, DefaultCodePage)
	var encodingID int
	if !fromFile {
		id, err := parseEncodingID(codepage)
		if err != nil {
			return err
		}
		encodingID = id
	}

	files, err := ExpandTargets(targets)
	if err != nil {
		return err
	}

	marks := make([]godbfcp.CodePage, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		cp, err := godbfcp.GetCodepageByte(file, r.Opts.EnabledTypes...)
		if err != nil {
			return &ExitError{Code: ExitInvalidInput, Err: fmt.Errorf("'%s' file invalid: %w", file, err)}
		}
		marks[i] = cp
	}

	tbl := output.NewTable(
		[]string{"File", "Code Page", "Encoding", "Decoder"},
		[]string{"file", "code_page", "encoding", "decoder"})
	for i, file := range files {
		id := encodingID
		if fromFile {
			id = godbfcp.ResolveEncodingID(marks[i])
		}
		_, derr := godbfcp.NewDecoder(id)
		r.Log.Debug("resolved encoding", "file", file, "code_page", marks[i], "encoding", id)
		tbl.AddRow(file, marks[i].String(), strconv.Itoa(id), strconv.FormatBool(derr == nil))
	}
	return r.render(tbl)
}

// parseEncodingID accepts a code page number with a known decoder or a
// catalog name.
func parseEncodingID(codepage string) (int, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(codepage)); err == nil {
		if _, err := godbfcp.NewDecoder(id); err != nil {
			return 0, exitError(ExitInvalidInput, "'%d' codepageNumber invalid: %w", id, err)
		}
		return id, nil
	}
	cp, err := godbfcp.ParseCodePage(codepage)
	if err != nil {
		return 0, exitError(ExitInvalidInput, "'%s' invalid codepage parameter: %w", codepage, err)
	}
	return godbfcp.ResolveEncodingID(cp), nil
}

// CodePages lists the catalog with the encoding each mark resolves to on
// this host.
func (r *Runner) CodePages() error {
	tbl := output.NewTable(
		[]string{"Name", "Mark", "Encoding", "Decoder"},
		[]string{"name", "mark", "encoding", "decoder"})
	for _, cp := range godbfcp.CodePages() {
		id := godbfcp.ResolveEncodingID(cp)
		enc := strconv.Itoa(id)
		if cp.HostDependent() {
			enc += " (host)"
		}
		_, err := godbfcp.NewDecoder(id)
		tbl.AddRow(cp.String(), markString(cp), enc, strconv.FormatBool(err == nil))
	}
	return r.render(tbl)
}

// Decode converts character data read from r.In to UTF-8.
func (r *Runner) Decode(codepage string) error {
	id, err := parseEncodingID(codepage)
	if err != nil {
		return err
	}
	dec, err := godbfcp.NewDecoder(id)
	if err != nil {
		return &ExitError{Code: ExitInvalidInput, Err: err}
	}
	data, err := io.ReadAll(r.In)
	if err != nil {
		return &ExitError{Code: ExitFileFailed, Err: err}
	}
	_, err = io.WriteString(r.Out, dec.ConvertString(string(data)))
	return err
}
