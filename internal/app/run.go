package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/seqdecode/internal/ctxlog"
	"github.com/specialistvlad/seqdecode/internal/decoder"
	"github.com/specialistvlad/seqdecode/internal/fsutil"
	"github.com/specialistvlad/seqdecode/internal/render"
	"github.com/specialistvlad/seqdecode/internal/sequence"
)

// Run reads the recording, decodes it and writes the presentation. Output is
// assembled in memory first so a failing run never leaves partial output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "recording_path", a.config.RecordingPath)

	src, err := fsutil.ReadRecording(a.config.RecordingPath)
	if err != nil {
		return err
	}
	logger.Debug("Recording read.", "bytes", len(src))

	seq, err := sequence.Parse(a.config.RecordingPath, src)
	if err != nil {
		var pe *sequence.ParseError
		if errors.As(err, &pe) {
			a.writeDiagnostic(pe, src)
		}
		return fmt.Errorf("failed to parse recording: %w", err)
	}
	logger.Debug("Recording parsed.", "codepoints", len(seq))

	opts := a.config.DecoderOptions()
	p, err := decoder.Run(seq, opts)
	if err != nil {
		return fmt.Errorf("failed to decode recording: %w", err)
	}
	logger.Debug("Recording decoded.", "convert_escape", opts.ConvertEscape, "split_commands", opts.SplitCommands, "segments", len(p.Segments))

	var buf bytes.Buffer
	renderOpts := render.Options{
		Format:    a.config.OutputFormat,
		Highlight: render.ShouldHighlight(a.config.Highlight, a.outW),
	}
	if err := render.Write(&buf, p, seq, renderOpts); err != nil {
		return fmt.Errorf("failed to render presentation: %w", err)
	}
	if _, err := io.Copy(a.outW, &buf); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// writeDiagnostic prints the parse error with a snippet of the offending
// source line.
func (a *App) writeDiagnostic(pe *sequence.ParseError, src []byte) {
	files := map[string]*hcl.File{
		pe.Range.Filename: {Bytes: src},
	}
	wr := hcl.NewDiagnosticTextWriter(a.errW, files, 78, false)
	if err := wr.WriteDiagnostic(pe.Diagnostic()); err != nil {
		a.logger.Warn("Could not write parse diagnostic.", "error", err)
	}
}
